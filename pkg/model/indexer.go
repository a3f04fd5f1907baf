package model

// indexer interface is design to give a unique index (a SAT variable) to a match's attributes and vice versa
type indexer interface {
	// Returns the SAT variable standing for "on day, home hosts away"
	Index(day, home, away uint64) uint64
	// Returns the match's attributes from a SAT variable
	Attributes(index uint64) (day, home, away uint64)
	// Returns the number of variables, every index lies in [1, Variables()]
	Variables() uint64
}

func newIndexer(teams, days uint64) indexer {
	if teams == 0 || days == 0 {
		panic("indexer requires a positive number of teams and days")
	}
	return &indexerImplementation{
		teams: teams,
		days:  days,
	}
}

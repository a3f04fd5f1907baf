package model

import log "github.com/sirupsen/logrus"

// Indices are the 3-digit base-teams numbers (day, home, away) shifted by one
type indexerImplementation struct {
	teams uint64
	days  uint64
}

func (indexer *indexerImplementation) Index(day, home, away uint64) uint64 {
	if day >= indexer.days || home >= indexer.teams || away >= indexer.teams {
		log.Panicf("match attributes out of range: day %v (days %v), home %v, away %v (teams %v)", day, indexer.days, home, away, indexer.teams)
	}
	return day*indexer.teams*indexer.teams + home*indexer.teams + away + 1
}

func (indexer *indexerImplementation) Attributes(index uint64) (day, home, away uint64) {
	if index == 0 || index > indexer.Variables() {
		log.Panicf("index %v out of range [1, %v]", index, indexer.Variables())
	}
	index = index - 1
	away = index % indexer.teams
	index = index / indexer.teams

	home = index % indexer.teams
	index = index / indexer.teams

	day = index

	return day, home, away
}

func (indexer *indexerImplementation) Variables() uint64 {
	return indexer.days * indexer.teams * indexer.teams
}

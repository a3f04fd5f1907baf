package main

import (
	"io"
	"os"

	"github.com/limaJavier/roundrobin/pkg/model"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newEncodeCmd(o *options) *cobra.Command {
	instanceOpts := &instanceOptions{}
	var outFile string

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Write the DIMACS-CNF instance of a tournament without solving it",
		RunE: func(cmd *cobra.Command, args []string) error {
			inst, err := instanceOpts.resolve(o.config)
			if err != nil {
				return err
			}
			satInstance, families, err := model.Encode(inst.input, inst.fairness)
			if err != nil {
				return err
			}
			for _, family := range families {
				log.WithFields(log.Fields{
					"family":  family.Name,
					"clauses": len(family.Clauses),
				}).Debug("family encoded")
			}

			var writer io.Writer = cmd.OutOrStdout()
			if outFile != "" {
				file, err := os.Create(outFile)
				if err != nil {
					return errors.Wrap(err, "cannot create output file")
				}
				defer file.Close()
				writer = file
			}
			return errors.Wrap(satInstance.WriteDIMACS(writer), "cannot write DIMACS")
		},
	}

	instanceOpts.addFlags(cmd)
	cmd.Flags().StringVar(&outFile, "out", "", "file the instance is written to; standard output when empty")
	return cmd
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aria-lang/biolib-go/internal/loader"
	"github.com/aria-lang/biolib-go/internal/sequence"
	"github.com/aria-lang/biolib-go/internal/stats"
)

func (a *app) statsCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "stats [sequence...]",
		Short: "Summarize a set of DNA sequences",
		RunE: func(cmd *cobra.Command, args []string) error {
			texts := make([]string, 0, len(args))
			if file != "" {
				var err error
				if texts, err = loader.ReadSequences(file); err != nil {
					return err
				}
			} else {
				for _, arg := range args {
					texts = append(texts, loader.Normalize(arg))
				}
			}

			seqs := make([]sequence.DNA, len(texts))
			for i, text := range texts {
				dna, err := sequence.ParseDNA(text)
				if err != nil {
					return fmt.Errorf("sequence %d: %w", i+1, err)
				}
				seqs[i] = dna
			}

			summary, err := stats.Summarize(seqs)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), summary)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "input file (FASTA or one sequence per line)")
	return cmd
}

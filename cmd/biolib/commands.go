package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aria-lang/biolib-go/internal/alphabet"
	"github.com/aria-lang/biolib-go/internal/codon"
	"github.com/aria-lang/biolib-go/internal/distance"
	"github.com/aria-lang/biolib-go/internal/loader"
	"github.com/aria-lang/biolib-go/internal/mendel"
	"github.com/aria-lang/biolib-go/internal/palindrome"
	"github.com/aria-lang/biolib-go/internal/sequence"
)

func (a *app) dnaCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "dna [sequence]",
		Short: "Count A, C, G and T in a DNA sequence",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.input(file, args)
			if err != nil {
				return err
			}
			dna, err := sequence.ParseDNA(text)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), sequence.BaseCounts(dna))
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "input file")
	return cmd
}

func (a *app) rnaCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "rna [sequence]",
		Short: "Transcribe DNA into RNA",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.input(file, args)
			if err != nil {
				return err
			}
			dna, err := sequence.ParseDNA(text)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), sequence.Transcribe(dna))
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "input file")
	return cmd
}

func (a *app) revcCmd() *cobra.Command {
	var file, alpha string
	cmd := &cobra.Command{
		Use:   "revc [sequence]",
		Short: "Reverse complement a DNA or RNA sequence",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.input(file, args)
			if err != nil {
				return err
			}
			kind, err := alphabet.ParseKind(alpha)
			if err != nil {
				return err
			}

			switch kind {
			case alphabet.KindDNA:
				dna, err := sequence.ParseDNA(text)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), sequence.ReverseComplement(dna))
			case alphabet.KindRNA:
				rna, err := sequence.ParseRNA(text)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), sequence.ReverseComplement(rna))
			default:
				return fmt.Errorf("reverse complement is only defined for DNA and RNA")
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "input file")
	cmd.Flags().StringVarP(&alpha, "alphabet", "a", "dna", "input alphabet (dna or rna)")
	return cmd
}

func (a *app) protCmd() *cobra.Command {
	var (
		file    string
		fromDNA bool
	)
	cmd := &cobra.Command{
		Use:   "prot [sequence]",
		Short: "Translate RNA into protein",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.input(file, args)
			if err != nil {
				return err
			}

			var protein sequence.Protein
			if fromDNA {
				dna, err := sequence.ParseDNA(text)
				if err != nil {
					return err
				}
				protein, err = codon.TranslateDNA(dna)
				if err != nil {
					return err
				}
			} else {
				rna, err := sequence.ParseRNA(text)
				if err != nil {
					return err
				}
				protein, err = codon.Translate(rna)
				if err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), protein)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "input file")
	cmd.Flags().BoolVar(&fromDNA, "dna", false, "input is DNA; transcribe before translating")
	return cmd
}

func (a *app) hammCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "hamm [sequence1 sequence2]",
		Short: "Hamming distance between two DNA sequences",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var texts []string
			switch {
			case file != "":
				var err error
				if texts, err = loader.ReadSequences(file); err != nil {
					return err
				}
			case len(args) == 2:
				texts = []string{loader.Normalize(args[0]), loader.Normalize(args[1])}
			}
			if len(texts) != 2 {
				return fmt.Errorf("exactly two sequences are required, got %d", len(texts))
			}

			a1, err := sequence.ParseDNA(texts[0])
			if err != nil {
				return fmt.Errorf("sequence 1: %w", err)
			}
			a2, err := sequence.ParseDNA(texts[1])
			if err != nil {
				return fmt.Errorf("sequence 2: %w", err)
			}

			d, err := distance.Hamming(a1, a2)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), d)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "input file with two sequences")
	return cmd
}

func (a *app) revpCmd() *cobra.Command {
	var (
		file    string
		workers int
	)
	cmd := &cobra.Command{
		Use:   "revp [sequence]",
		Short: "Locate reverse-complement palindromes of length 4 to 12",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.input(file, args)
			if err != nil {
				return err
			}
			dna, err := sequence.ParseDNA(text)
			if err != nil {
				return err
			}

			if workers == 0 {
				workers = a.cfg.Scanner.Workers
			}
			scanner := palindrome.NewScanner(
				palindrome.WithWorkers(workers),
				palindrome.WithBatchSize(a.cfg.Scanner.BatchSize),
				palindrome.WithLogger(a.logger),
			)
			matches := scanner.Scan(dna)
			a.logger.Debug("scan complete", zap.Int("matches", len(matches)))

			fmt.Fprint(cmd.OutOrStdout(), palindrome.Format(matches))
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "input file")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "parallel workers (0 = config or one per CPU)")
	return cmd
}

func (a *app) iprbCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "iprb [k m n]",
		Short: "Probability of a dominant phenotype (Mendel's first law)",
		Long: `Given k homozygous dominant, m heterozygous and n homozygous recessive
organisms, print the probability that two randomly selected mating organisms
produce offspring with the dominant phenotype.`,
		Args: cobra.MaximumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields := args
			if file != "" {
				text, err := loader.ReadText(file)
				if err != nil {
					return err
				}
				fields = strings.Fields(text)
			}
			if len(fields) != 3 {
				return fmt.Errorf("exactly three counts are required, got %d", len(fields))
			}

			var counts [3]int
			for i, f := range fields {
				n, err := strconv.Atoi(f)
				if err != nil {
					return fmt.Errorf("count %d: %w", i+1, err)
				}
				counts[i] = n
			}

			p, err := mendel.DominantProbability(mendel.Population{
				HomozygousDominant:  counts[0],
				Heterozygous:        counts[1],
				HomozygousRecessive: counts[2],
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%.5f\n", p)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "input file with the three counts")
	return cmd
}

func (a *app) decodeCmd() *cobra.Command {
	var file, alpha string
	cmd := &cobra.Command{
		Use:   "decode [sequence]",
		Short: "Check that a sequence decodes in an alphabet",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.input(file, args)
			if err != nil {
				return err
			}
			kind, err := alphabet.ParseKind(alpha)
			if err != nil {
				return err
			}
			if err := alphabet.Validate(kind, text); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "valid %s sequence of length %d\n", kind, len(text))
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "input file")
	cmd.Flags().StringVarP(&alpha, "alphabet", "a", "dna", "alphabet (dna, rna or protein)")
	return cmd
}

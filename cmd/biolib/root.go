package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aria-lang/biolib-go/internal/config"
	"github.com/aria-lang/biolib-go/internal/loader"
	"github.com/aria-lang/biolib-go/internal/logging"
	"github.com/aria-lang/biolib-go/pkg/biolib"
)

// app holds state shared by the subcommands of one invocation.
type app struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "biolib",
		Short: "Biological sequence algebra",
		Long: `biolib decodes DNA, RNA and protein text into typed sequences and
applies transforms to them: complementation, transcription, translation,
Hamming distance and reverse-complement palindrome scanning.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			if a.verbose {
				cfg.Logging.Level = "debug"
			}
			logger, err := logging.New(cfg.Logging)
			if err != nil {
				return err
			}
			a.cfg, a.logger = cfg, logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", config.DefaultPath, "path to config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		a.dnaCmd(),
		a.rnaCmd(),
		a.revcCmd(),
		a.protCmd(),
		a.hammCmd(),
		a.revpCmd(),
		a.iprbCmd(),
		a.decodeCmd(),
		a.statsCmd(),
		versionCmd(),
	)
	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), biolib.Info())
		},
	}
}

// input returns the single sequence named by --file or the first argument.
func (a *app) input(file string, args []string) (string, error) {
	var (
		text string
		err  error
	)
	switch {
	case file != "":
		text, err = loader.ReadSequence(file)
		if err != nil {
			return "", err
		}
	case len(args) == 1:
		text = loader.Normalize(args[0])
	default:
		return "", fmt.Errorf("either --file or one sequence argument is required")
	}

	a.logger.Debug("loaded input", zap.String("file", file), zap.Int("length", len(text)))
	return text, nil
}

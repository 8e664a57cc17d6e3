// Package main provides the CLI entry point for benchsheet.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/ukaji3/benchsheet-go/pkg/benchsheet/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &buildFlags{}
	rootCmd := &cobra.Command{
		Use:   "benchsheet",
		Short: "Build multilingual competitive benchmark workbooks",
		Long: `benchsheet maps competitor research onto a fixed five-sheet schema,
ranks the benchmark by weighted score and writes a localized .xlsx file.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBuild(cmd, flags)
		},
	}
	flags.register(rootCmd)

	rootCmd.AddCommand(newBuildCmd(), newInspectCmd())
	return rootCmd
}

// newLogger builds the stderr logger selected by the log settings.
func newLogger(w io.Writer, cfg config.LogConfig) (zerolog.Logger, error) {
	level := zerolog.InfoLevel
	if cfg.Level != "" {
		l, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
		level = l
	}

	var logger zerolog.Logger
	switch strings.ToLower(cfg.Format) {
	case "", "console":
		logger = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339})
	case "json":
		logger = zerolog.New(w)
	default:
		return zerolog.Nop(), fmt.Errorf("invalid log format %q (must be console or json)", cfg.Format)
	}
	return logger.Level(level).With().Timestamp().Logger(), nil
}

package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"competency-matrix/core/config"
	"competency-matrix/core/library"
	"competency-matrix/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "competency-matrix",
	Short: "Competency Matrix query tool",
	Long: `Competency Matrix is a bilingual reference of technical roles, career
levels and competencies. It answers role, search, comparison and career-path
queries over the local dataset.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Use the application's standard logger for error reporting
		// We default to console format to match user expectations (CLI tool)
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

// newLibrary builds the configured library instance shared by all commands.
func newLibrary() (*library.Library, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	lib, err := library.New(cfg, logg)
	if err != nil {
		return nil, nil, err
	}
	return lib, logg, nil
}

// printJSON writes the value as indented JSON to stdout.
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

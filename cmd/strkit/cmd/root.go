// Package cmd implements the strkit command line.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/strkit/config"
	"github.com/randalmurphal/strkit/ops"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "strkit",
	Short: "Byte-string operations from the command line",
	Long: `strkit runs the string operations of the strkit library against
command-line arguments, templates and interactive input.

Strings are byte strings. Strip sets may contain multi-byte UTF-8
characters, which are matched as whole characters.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (.yaml, .toml or .json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
}

// loadConfig reads --config when set and applies --verbose.
func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if cfgFile != "" {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	return cfg, nil
}

// newContext builds an execution context from the loaded configuration.
func newContext() (*ops.Context, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	ctx, err := ops.NewContext(cfg, nil)
	if err != nil {
		return nil, err
	}
	ctx.Logger.Debug("context ready",
		slog.String("config", cfgFile),
		slog.Int("limit_bytes", cfg.Allocator.LimitBytes),
		slog.Int("scratch_size", cfg.Scratch.InitialSize))
	return ctx, nil
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
}

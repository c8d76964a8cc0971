package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/descant/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "descant",
	Short: "Descant generates first-species counterpoint",
	Long: `Descant harmonizes a cantus firmus with a note-against-note counterpoint
line, searching a scale for sequences that satisfy classical voice-leading
rules. Lines are written in plain text notation, e.g. "c4 d4 e4 d4 c4".`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// appLogger builds the logger all commands share, honoring --verbose.
func appLogger(cmd *cobra.Command) *slog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return logging.New(level)
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}

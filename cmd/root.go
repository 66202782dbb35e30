package cmd

import (
	"fmt"
	"os"

	"github.com/lexivox/speech-api/pkg/config"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "speech-api",
	Short: "Speech Practice API server",
	Long: `Speech Practice API - pronunciation evaluation for language learners

This API accepts recorded pronunciation attempts, transcribes them with a
speech-to-text backend, and scores them against the text the learner was
asked to read.

Features:
  • Ingest-time audio quality gate
  • Speech-to-text transcription with fail-closed fallback handling
  • Word-level pronunciation scoring and feedback
  • Attempt history per lesson`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
}

// initConfig loads configuration for commands that need it. Version and
// help run without config so they work on a fresh checkout.
func initConfig() {
	cmd, _, _ := rootCmd.Find(os.Args[1:])
	if cmd != nil && (cmd.Name() == "version" || cmd.Name() == "help") {
		return
	}

	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}
}

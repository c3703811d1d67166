package main

import (
	"fmt"
	"os"

	"ai-act-tracker/internal/config"
	"ai-act-tracker/internal/logging"

	"github.com/spf13/cobra"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "aiactctl",
	Short: "Operator tool for the AI Act compliance tracker",
	Long: `aiactctl runs maintenance tasks against the compliance database:
schema migration, certification readiness checks and the requirement catalog.`,
	SilenceUsage: true,
}

// loadConfig is shared by every command that talks to the database.
func loadConfig(cmd *cobra.Command, _ []string) error {
	c, err := config.Load()
	if err != nil {
		return err
	}
	if err := logging.Setup(c.LogLevel, true); err != nil {
		return err
	}
	cfg = c
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

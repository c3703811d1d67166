package main

import (
	"ai-act-tracker/internal/database"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:     "migrate",
	Short:   "Create or update the database schema",
	PreRunE: loadConfig,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := database.Open(cfg.DBDSN, cfg.DBConnectAttempts)
		if err != nil {
			return err
		}
		if err := database.Migrate(db); err != nil {
			return err
		}
		log.Info().Msg("schema is up to date")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

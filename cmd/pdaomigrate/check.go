package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Suarenz/PDAO-system-sub000/internal/database"
	"github.com/Suarenz/PDAO-system-sub000/internal/legacy"
)

// checkCmd verifies legacy connectivity and schema without migrating
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify legacy database connectivity and required tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := bootstrap()
		if err != nil {
			return err
		}

		legacyDB, err := database.ConnectLegacy(cfg.LegacyDB.DSN(), logger)
		if err != nil {
			return err
		}

		source := legacy.NewSource(legacyDB, logger)
		if err := source.Check(context.Background()); err != nil {
			return err
		}

		logger.Info("Legacy database is reachable and all required tables exist")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

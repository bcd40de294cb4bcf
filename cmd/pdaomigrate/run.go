package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/Suarenz/PDAO-system-sub000/internal/database"
	"github.com/Suarenz/PDAO-system-sub000/internal/legacy"
	"github.com/Suarenz/PDAO-system-sub000/internal/migrator"
	"github.com/Suarenz/PDAO-system-sub000/internal/repository"
)

var (
	dryRun bool
	limit  int
)

// runCmd executes the full migration pipeline
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the legacy migration pipeline",
	Long: `Run the four-stage migration: schema pre-check, lookup loading,
then users, PWD profiles, and history logs in that order.

Examples:
  pdaomigrate run --dry-run            # Validate and count without writing
  pdaomigrate run --limit 100          # Migrate the first 100 rows per table
  pdaomigrate run                      # Full live migration

Row-level failures do not abort the run or change the exit status; they
are reported in the summary table and the persisted log file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := bootstrap()
		if err != nil {
			return err
		}
		ctx := context.Background()

		legacyDB, err := database.ConnectLegacy(cfg.LegacyDB.DSN(), logger)
		if err != nil {
			return err
		}
		targetDB, err := database.ConnectTarget(cfg.TargetDB.DSN(), logger)
		if err != nil {
			return err
		}

		source := legacy.NewSource(legacyDB, logger)
		repo := repository.NewTargetRepository(targetDB)
		pipeline := migrator.New(source, repo, logger, migrator.Options{
			DryRun: dryRun,
			Limit:  limit,
		})

		rep, err := pipeline.Run(ctx)
		if err != nil {
			// Only the fatal pre-check or a table read failure lands here.
			return err
		}

		rep.PrintSummary(os.Stdout)

		path, err := rep.WriteFile(cfg.Logs.Dir)
		if err != nil {
			logger.WithError(err).Warn("Failed to persist migration log file")
			return nil
		}
		logger.WithField("path", path).Info("Migration log written")
		return nil
	},
}

func init() {
	runCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate and count without writing")
	runCmd.Flags().IntVar(&limit, "limit", 0, "Cap rows read per legacy table (0 = all)")
	rootCmd.AddCommand(runCmd)
}

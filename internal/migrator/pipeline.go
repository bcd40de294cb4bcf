// Package migrator runs the legacy-to-target migration pipeline: schema
// pre-check, lookup loading, then the user, PWD profile, and history log
// stages in that fixed order. The history stage reads the user ID map
// populated by the user stage, so the order is load-bearing.
package migrator

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Suarenz/PDAO-system-sub000/internal/legacy"
	"github.com/Suarenz/PDAO-system-sub000/internal/lookup"
	"github.com/Suarenz/PDAO-system-sub000/internal/report"
	"github.com/Suarenz/PDAO-system-sub000/internal/repository"
)

// Options controls a single pipeline invocation
type Options struct {
	// DryRun disables all writes; validation and counting only.
	DryRun bool
	// Limit caps the rows read from each legacy table, applied
	// independently per stage. Zero means no cap.
	Limit int
}

// Pipeline carries all state for one migration run. Maps and
// accumulators live here rather than in package globals so that a run is
// fully described by the struct.
type Pipeline struct {
	source *legacy.Source
	repo   *repository.TargetRepository
	logger *logrus.Logger
	opts   Options

	lookups *lookup.Table
	// userIDs maps legacy account IDs to target user IDs. In dry-run
	// mode the legacy ID stands in for the (never created) target ID.
	userIDs map[uint]uint
	report  *report.Report
}

// New creates a pipeline
func New(source *legacy.Source, repo *repository.TargetRepository, logger *logrus.Logger, opts Options) *Pipeline {
	return &Pipeline{
		source:  source,
		repo:    repo,
		logger:  logger,
		opts:    opts,
		userIDs: make(map[uint]uint),
		report:  report.New(opts.DryRun),
	}
}

// Run executes the full pipeline. Only the pre-check and lookup loading
// can fail the run; row-level failures are recorded in the report and
// never abort.
func (p *Pipeline) Run(ctx context.Context) (*report.Report, error) {
	if err := p.source.Check(ctx); err != nil {
		return nil, err
	}

	if err := p.loadLookups(ctx); err != nil {
		return nil, err
	}

	p.logger.WithFields(logrus.Fields{
		"run_id":  p.report.RunID,
		"dry_run": p.opts.DryRun,
		"limit":   p.opts.Limit,
	}).Info("Starting legacy migration")

	if err := p.MigrateUsers(ctx); err != nil {
		return nil, err
	}
	if err := p.MigrateProfiles(ctx); err != nil {
		return nil, err
	}
	if err := p.MigrateHistoryLogs(ctx); err != nil {
		return nil, err
	}

	p.report.Finish()
	p.logger.WithField("run_id", p.report.RunID).Info("Legacy migration finished")
	return p.report, nil
}

func (p *Pipeline) loadLookups(ctx context.Context) error {
	barangays, err := p.repo.Barangays(ctx)
	if err != nil {
		return fmt.Errorf("lookup loader: %w", err)
	}
	types, err := p.repo.DisabilityTypes(ctx)
	if err != nil {
		return fmt.Errorf("lookup loader: %w", err)
	}

	p.lookups = lookup.Load(barangays, types)
	p.logger.WithFields(logrus.Fields{
		"barangays":        len(barangays),
		"disability_types": len(types),
	}).Info("Loaded reference lookups")
	return nil
}

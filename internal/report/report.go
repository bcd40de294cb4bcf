// Package report accumulates per-entity migration statistics and renders
// them as a console summary and a persisted plain-text log file.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
)

// consoleListCap limits how many warnings/errors are printed to the
// console; the log file always carries the full lists.
const consoleListCap = 10

// EntityStats counts per-entity outcomes
type EntityStats struct {
	Migrated int
	Failed   int
}

// Report is the running record of one migration invocation. It is
// threaded explicitly through the pipeline stages; there is no shared
// global state.
type Report struct {
	RunID      uuid.UUID
	DryRun     bool
	StartedAt  time.Time
	FinishedAt time.Time

	Users       EntityStats
	Profiles    EntityStats
	HistoryLogs EntityStats

	Warnings []string
	Errors   []string
}

// New creates a report for a fresh run
func New(dryRun bool) *Report {
	return &Report{
		RunID:     uuid.New(),
		DryRun:    dryRun,
		StartedAt: time.Now(),
	}
}

// AddWarning records an advisory finding (dry-run validation)
func (r *Report) AddWarning(format string, args ...interface{}) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// AddError records a row-level failure
func (r *Report) AddError(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Finish stamps the completion time
func (r *Report) Finish() {
	r.FinishedAt = time.Now()
}

// Mode returns the run-mode label used in log file names
func (r *Report) Mode() string {
	if r.DryRun {
		return "dry-run"
	}
	return "migration"
}

// PrintSummary writes the tabular summary plus capped warning/error
// lists to w.
func (r *Report) PrintSummary(w io.Writer) {
	fmt.Fprintf(w, "\nMigration summary (%s, run %s)\n\n", r.Mode(), r.RunID)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ENTITY\tMIGRATED\tFAILED")
	fmt.Fprintf(tw, "Users\t%d\t%d\n", r.Users.Migrated, r.Users.Failed)
	fmt.Fprintf(tw, "PWD Profiles\t%d\t%d\n", r.Profiles.Migrated, r.Profiles.Failed)
	fmt.Fprintf(tw, "History Logs\t%d\t%d\n", r.HistoryLogs.Migrated, r.HistoryLogs.Failed)
	tw.Flush()

	printCapped(w, "Warnings", r.Warnings)
	printCapped(w, "Errors", r.Errors)
	fmt.Fprintln(w)
}

func printCapped(w io.Writer, label string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s (%d):\n", label, len(items))
	shown := items
	if len(shown) > consoleListCap {
		shown = shown[:consoleListCap]
	}
	for _, item := range shown {
		fmt.Fprintf(w, "  - %s\n", item)
	}
	if extra := len(items) - len(shown); extra > 0 {
		fmt.Fprintf(w, "  ... +%d more\n", extra)
	}
}

// FileName returns the log file name for this run, e.g.
// migration-dry-run-2024-03-15_141502.log
func (r *Report) FileName() string {
	stamp := r.FinishedAt
	if stamp.IsZero() {
		stamp = time.Now()
	}
	return fmt.Sprintf("migration-%s-%s.log", r.Mode(), stamp.Format("2006-01-02_150405"))
}

// WriteFile persists the full, untruncated report into dir and returns
// the written path. Reporting is informational only: callers should log
// a failure here but never fail the run because of it.
func (r *Report) WriteFile(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create logs directory: %w", err)
	}

	path := filepath.Join(dir, r.FileName())
	var b strings.Builder

	fmt.Fprintf(&b, "PDAO legacy migration report\n")
	fmt.Fprintf(&b, "Run ID:    %s\n", r.RunID)
	fmt.Fprintf(&b, "Mode:      %s\n", r.Mode())
	fmt.Fprintf(&b, "Started:   %s\n", r.StartedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "Finished:  %s\n", r.FinishedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "\nStatistics:\n")
	fmt.Fprintf(&b, "  Users:        %d migrated, %d failed\n", r.Users.Migrated, r.Users.Failed)
	fmt.Fprintf(&b, "  PWD Profiles: %d migrated, %d failed\n", r.Profiles.Migrated, r.Profiles.Failed)
	fmt.Fprintf(&b, "  History Logs: %d migrated, %d failed\n", r.HistoryLogs.Migrated, r.HistoryLogs.Failed)

	writeFullList(&b, "Warnings", r.Warnings)
	writeFullList(&b, "Errors", r.Errors)

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("failed to write report file: %w", err)
	}
	return path, nil
}

func writeFullList(b *strings.Builder, label string, items []string) {
	fmt.Fprintf(b, "\n%s (%d):\n", label, len(items))
	for _, item := range items {
		fmt.Fprintf(b, "  - %s\n", item)
	}
}

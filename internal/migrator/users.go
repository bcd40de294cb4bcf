package migrator

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Suarenz/PDAO-system-sub000/internal/legacy"
	"github.com/Suarenz/PDAO-system-sub000/internal/models"
	"github.com/Suarenz/PDAO-system-sub000/internal/normalize"
)

// synthesizedEmailDomain is appended when a legacy account has no email.
const synthesizedEmailDomain = "pdao.local"

// MigrateUsers migrates legacy accounts into target users, keyed by
// email (upsert), and records the legacy-to-target user ID map the
// history log stage depends on.
func (p *Pipeline) MigrateUsers(ctx context.Context) error {
	rows, err := p.source.Accounts(ctx, p.opts.Limit)
	if err != nil {
		return err
	}

	for _, row := range rows {
		if err := p.migrateUser(ctx, row); err != nil {
			p.report.Users.Failed++
			p.report.AddError("User %d: %v", row.AccountID, err)
			continue
		}
		p.report.Users.Migrated++
	}

	p.logger.WithFields(logrus.Fields{
		"migrated": p.report.Users.Migrated,
		"failed":   p.report.Users.Failed,
	}).Info("User migration complete")
	return nil
}

func (p *Pipeline) migrateUser(ctx context.Context, row legacy.Account) error {
	email := ""
	if row.Email != nil {
		email = strings.TrimSpace(*row.Email)
	}
	if email == "" {
		email = synthesizeEmail(row.FirstName, row.LastName)
	}

	user := models.User{
		FirstName:    row.FirstName,
		LastName:     row.LastName,
		Email:        email,
		PasswordHash: row.Password,
		Role:         normalize.Role(row.UserType),
		Status:       normalize.AccountStatus(row.Status),
	}

	if p.opts.DryRun {
		// No target ID exists; the legacy ID stands in so the history
		// stage can still count resolvable rows.
		p.userIDs[row.AccountID] = row.AccountID
		return nil
	}

	targetID, err := p.repo.UpsertUserByEmail(ctx, &user)
	if err != nil {
		return err
	}
	p.userIDs[row.AccountID] = targetID
	return nil
}

func synthesizeEmail(firstName, lastName string) string {
	return fmt.Sprintf("%s.%s@%s",
		strings.ToLower(strings.TrimSpace(firstName)),
		strings.ToLower(strings.TrimSpace(lastName)),
		synthesizedEmailDomain,
	)
}

package cli

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/julianstephens/habitgrid/internal/backup"
	"github.com/julianstephens/habitgrid/internal/dateutil"
	"github.com/julianstephens/habitgrid/internal/habits"
	"github.com/julianstephens/habitgrid/internal/models"
	"github.com/julianstephens/habitgrid/internal/storage"
)

type Context struct {
	Store storage.Provider
	Repo  *habits.Repository
}

// resolveDay turns a user-facing day argument into a calendar-day
// identifier. "today" and "yesterday" are accepted as shorthands.
func resolveDay(s string) (string, error) {
	switch s {
	case "today", "":
		return dateutil.Today(), nil
	case "yesterday":
		return dateutil.AddDays(dateutil.Today(), -1)
	}
	if !dateutil.IsValidDay(s) {
		return "", fmt.Errorf("invalid day format, use YYYY-MM-DD, 'today' or 'yesterday': %s", s)
	}
	return s, nil
}

// findHabit resolves a habit reference, matching by id first and then by
// exact name when the name is unambiguous.
func (ctx *Context) findHabit(ref string) (models.Habit, error) {
	if h, ok := ctx.Repo.Get(ref); ok {
		return h, nil
	}

	var match *models.Habit
	for _, h := range ctx.Repo.Habits() {
		if h.Name == ref {
			if match != nil {
				return models.Habit{}, fmt.Errorf("habit name %q is ambiguous, use the id", ref)
			}
			hh := h
			match = &hh
		}
	}
	if match == nil {
		return models.Habit{}, fmt.Errorf("habit not found: %s", ref)
	}
	return *match, nil
}

// PerformAutomaticBackup creates a backup when the newest one is more than a
// day old. Failures are logged and never block the caller.
func (ctx *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(ctx.Store.ConfigPath())

	backups, err := mgr.ListBackups()
	if err != nil {
		log.Warn().Err(err).Msg("automatic backup skipped")
		return
	}
	if len(backups) > 0 && time.Since(backups[0].Timestamp) < 24*time.Hour {
		return
	}

	if _, err := mgr.CreateBackup(); err != nil {
		log.Warn().Err(err).Msg("automatic backup failed")
	}
}

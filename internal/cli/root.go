package cli

import (
	"fmt"

	"github.com/tuncdemir/rutin/internal/backup"
	"github.com/tuncdemir/rutin/internal/logger"
	"github.com/tuncdemir/rutin/internal/models"
	"github.com/tuncdemir/rutin/internal/storage"
)

type Context struct {
	Store storage.Store
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.SnapshotPath())
	if _, err := mgr.Create(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// FindHabit resolves a habit by id or, failing that, by exact name.
func FindHabit(ctx *Context, ref string) (models.Habit, error) {
	if h, err := ctx.Store.Habit(ref); err == nil {
		return h, nil
	}

	habits, err := ctx.Store.Habits()
	if err != nil {
		return models.Habit{}, err
	}
	for _, h := range habits {
		if h.Name == ref {
			return h, nil
		}
	}
	return models.Habit{}, fmt.Errorf("habit %q not found", ref)
}

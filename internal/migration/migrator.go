package migration

import (
	"log/slog"
)

// SampleWODMarker starts the description of the demo WOD myWOD seeds
// every install with. It is never imported.
const SampleWODMarker = "This is a sample custom WOD"

// Migrator moves legacy records into the canonical services.
type Migrator struct {
	users     UserService
	avatars   AvatarStore
	workouts  WorkoutService
	movements MovementService
	logger    *slog.Logger
}

// MigratorConfig configures a Migrator.
type MigratorConfig struct {
	Users     UserService
	Avatars   AvatarStore
	Workouts  WorkoutService
	Movements MovementService
	Logger    *slog.Logger
}

// NewMigrator creates a Migrator.
func NewMigrator(cfg *MigratorConfig) *Migrator {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Migrator{
		users:     cfg.Users,
		avatars:   cfg.Avatars,
		workouts:  cfg.Workouts,
		movements: cfg.Movements,
		logger:    logger.With("component", "mywod_migration"),
	}
}

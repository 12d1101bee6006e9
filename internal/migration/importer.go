package migration

import (
	"alcyxob/wodbook/internal/domain"
	"alcyxob/wodbook/internal/mywod"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// State is a phase of an import run.
type State string

const (
	StateIdle                   State = "idle"
	StateExtracting             State = "extracting"
	StateMigratingAthlete       State = "migrating_athlete"
	StateMigratingWorkouts      State = "migrating_workouts"
	StateMigratingMovements     State = "migrating_movements"
	StateMigratingWorkoutScores State = "migrating_workout_scores"
	StateDone                   State = "done"
)

// Extractor reads a backup file into memory.
type Extractor interface {
	Extract(ctx context.Context, path string) (*mywod.Dataset, error)
}

// Recorder receives run and per-record metrics.
type Recorder interface {
	RunFinished(status string, elapsed time.Duration)
	ItemProcessed(kind, status string)
}

// Summary is the result of a completed import.
type Summary struct {
	User           *domain.User
	Workouts       []*domain.Workout
	WorkoutScores  []*domain.WorkoutScore
	Movements      []*domain.Movement
	MovementScores int
	Report         *Report
}

// UserUpdated reports whether the athlete profile was written.
func (s *Summary) UserUpdated() bool {
	return s.User != nil
}

// Importer runs whole backup imports.
type Importer struct {
	extractor Extractor
	migrator  *Migrator
	recorder  Recorder
	logger    *slog.Logger
	onState   func(State)
}

// ImporterOption customises an Importer.
type ImporterOption func(*Importer)

// WithRecorder reports metrics of every run to r.
func WithRecorder(r Recorder) ImporterOption {
	return func(i *Importer) { i.recorder = r }
}

// WithStateHook calls fn on every state change of a run.
func WithStateHook(fn func(State)) ImporterOption {
	return func(i *Importer) { i.onState = fn }
}

// NewImporter creates an Importer. It is safe for concurrent runs.
func NewImporter(extractor Extractor, migrator *Migrator, opts ...ImporterOption) *Importer {
	i := &Importer{
		extractor: extractor,
		migrator:  migrator,
		logger:    migrator.logger,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Run imports the backup at path for the authenticated user. Only an
// unreadable backup or an identity problem makes it fail; per-record
// failures are in Summary.Report. Workouts and movements are created before
// any of their scores.
func (i *Importer) Run(ctx context.Context, path string, claims domain.Claims) (summary *Summary, err error) {
	started := time.Now()
	report := &Report{}
	defer func() {
		i.finish(report, err, time.Since(started))
	}()

	i.enter(StateIdle)

	i.enter(StateExtracting)
	ds, err := i.extractor.Extract(ctx, path)
	if err != nil {
		return nil, err
	}

	i.enter(StateMigratingAthlete)
	user, err := i.migrator.MigrateAthlete(ctx, ds.Athlete, claims)
	if err != nil {
		return nil, err
	}
	summary = &Summary{User: user, Report: report}

	i.enter(StateMigratingWorkouts)
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("import interrupted: %w", err)
	}
	summary.Workouts = i.migrator.MigrateWorkouts(ctx, ds.CustomWODs, claims, report)

	i.enter(StateMigratingMovements)
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("import interrupted: %w", err)
	}
	summary.Movements, summary.MovementScores = i.migrator.MigrateMovementsAndScores(ctx, ds.Movements, ds.MovementSessions, claims, report)

	i.enter(StateMigratingWorkoutScores)
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("import interrupted: %w", err)
	}
	summary.WorkoutScores = i.migrator.MigrateWorkoutScores(ctx, ds.WODScores, claims, report)

	i.enter(StateDone)
	i.logger.Info("myWOD import finished",
		"user_id", claims.UserID.Hex(),
		"workouts", len(summary.Workouts),
		"workout_scores", len(summary.WorkoutScores),
		"movements", len(summary.Movements),
		"movement_scores", summary.MovementScores,
		"failed", len(report.Failures()),
	)
	return summary, nil
}

func (i *Importer) enter(s State) {
	i.logger.Debug("import state", "state", s)
	if i.onState != nil {
		i.onState(s)
	}
}

func (i *Importer) finish(report *Report, err error, elapsed time.Duration) {
	if i.recorder == nil {
		return
	}
	for _, o := range report.Outcomes {
		i.recorder.ItemProcessed(string(o.Kind), string(o.Status))
	}
	i.recorder.RunFinished(runStatus(err), elapsed)
}

func runStatus(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, mywod.ErrInvalidFile):
		return "invalid_file"
	case errors.Is(err, ErrForbidden):
		return "forbidden"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return "interrupted"
	}
	return "error"
}

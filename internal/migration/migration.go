// Package migration moves the contents of a myWOD backup into a user's
// account: profile, custom workouts, movements and their scores.
//
// Apart from unreadable files and identity problems, failures are handled one
// legacy record at a time. A record that cannot be mapped or stored is logged,
// noted in the Report and skipped; the rest of the run carries on.
package migration

import (
	"alcyxob/wodbook/internal/domain"
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrForbidden means the backup belongs to someone other than the caller.
	ErrForbidden = errors.New("backup does not belong to the authenticated user")
	// ErrNotFound means the authenticated user has no account record.
	ErrNotFound = errors.New("user not found")
	// ErrInvalidProperty means a legacy value has no canonical mapping.
	ErrInvalidProperty = errors.New("invalid property")

	errSampleWOD         = errors.New("vendor sample workout")
	errWorkoutUnresolved = errors.New("no workout with this name")
)

// UserService loads and stores user accounts.
// GetByEmail returns an error matching repository.ErrNotFound when there is no such user.
type UserService interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateUser(ctx context.Context, user *domain.User) (*domain.User, error)
}

// AvatarStore persists avatar images and returns the URL they are served from.
type AvatarStore interface {
	Save(ctx context.Context, userID primitive.ObjectID, image []byte) (string, error)
}

// WorkoutService creates workouts and records their scores.
// GetWorkoutByName returns an error matching repository.ErrNotFound when no workout has that name.
type WorkoutService interface {
	CreateWorkout(ctx context.Context, userID primitive.ObjectID, name, description string, measurement domain.WorkoutMeasurement) (*domain.Workout, error)
	GetWorkoutByName(ctx context.Context, userID primitive.ObjectID, name string) (*domain.Workout, error)
	AddWorkoutScore(ctx context.Context, score *domain.WorkoutScore) (*domain.WorkoutScore, error)
}

// MovementService creates movements and records their scores.
type MovementService interface {
	CreateMovement(ctx context.Context, userID primitive.ObjectID, name string, measurement domain.MovementMeasurement) (*domain.Movement, error)
	AddMovementScore(ctx context.Context, score *domain.MovementScore) (*domain.MovementScore, error)
}

package repository

import (
	"alcyxob/wodbook/internal/domain" // Import our defined domain models
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for repository layer
var (
	ErrNotFound = RepositoryError("not found")
	ErrConflict = RepositoryError("conflict") // Unique index violation
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

// WorkoutRepository defines the interface for interacting with workouts and their scores.
type WorkoutRepository interface {
	Create(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error)
	GetByName(ctx context.Context, userID primitive.ObjectID, name string) (*domain.Workout, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.Workout, error)
	AddScore(ctx context.Context, score *domain.WorkoutScore) (primitive.ObjectID, error)
}

// MovementRepository defines the interface for interacting with movements and their scores.
type MovementRepository interface {
	Create(ctx context.Context, movement *domain.Movement) (primitive.ObjectID, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.Movement, error)
	AddScore(ctx context.Context, score *domain.MovementScore) (primitive.ObjectID, error)
}

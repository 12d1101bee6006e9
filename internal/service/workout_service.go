package service

import (
	"alcyxob/wodbook/internal/domain"
	"alcyxob/wodbook/internal/repository"
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrWorkoutNotFound = fmt.Errorf("workout %w", repository.ErrNotFound)
	ErrWorkoutExists   = fmt.Errorf("workout with this name already exists: %w", repository.ErrConflict)
	ErrScoreInvalid    = errors.New("score must reference a workout and a user")
)

// WorkoutService manages an athlete's workouts and their scores.
type WorkoutService interface {
	CreateWorkout(ctx context.Context, userID primitive.ObjectID, name, description string, measurement domain.WorkoutMeasurement) (*domain.Workout, error)
	GetWorkoutByName(ctx context.Context, userID primitive.ObjectID, name string) (*domain.Workout, error)
	ListWorkouts(ctx context.Context, userID primitive.ObjectID) ([]domain.Workout, error)
	AddWorkoutScore(ctx context.Context, score *domain.WorkoutScore) (*domain.WorkoutScore, error)
}

type workoutService struct {
	workoutRepo repository.WorkoutRepository
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(workoutRepo repository.WorkoutRepository) WorkoutService {
	return &workoutService{workoutRepo: workoutRepo}
}

// CreateWorkout validates and stores a new workout. Names are unique per user.
func (s *workoutService) CreateWorkout(ctx context.Context, userID primitive.ObjectID, name, description string, measurement domain.WorkoutMeasurement) (*domain.Workout, error) {
	workout, err := domain.NewWorkout(userID, name, description, measurement)
	if err != nil {
		return nil, err
	}

	id, err := s.workoutRepo.Create(ctx, workout)
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrWorkoutExists
		}
		return nil, err
	}
	workout.ID = id
	return workout, nil
}

func (s *workoutService) GetWorkoutByName(ctx context.Context, userID primitive.ObjectID, name string) (*domain.Workout, error) {
	workout, err := s.workoutRepo.GetByName(ctx, userID, strings.TrimSpace(name))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return workout, nil
}

func (s *workoutService) ListWorkouts(ctx context.Context, userID primitive.ObjectID) ([]domain.Workout, error) {
	return s.workoutRepo.GetByUserID(ctx, userID)
}

// AddWorkoutScore stores score against its workout.
func (s *workoutService) AddWorkoutScore(ctx context.Context, score *domain.WorkoutScore) (*domain.WorkoutScore, error) {
	if score == nil || score.WorkoutID.IsZero() || score.UserID.IsZero() {
		return nil, ErrScoreInvalid
	}
	id, err := s.workoutRepo.AddScore(ctx, score)
	if err != nil {
		return nil, err
	}
	score.ID = id
	return score, nil
}

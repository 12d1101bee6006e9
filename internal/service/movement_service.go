package service

import (
	"alcyxob/wodbook/internal/domain"
	"alcyxob/wodbook/internal/repository"
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrMovementExists = fmt.Errorf("movement with this name already exists: %w", repository.ErrConflict)

// MovementService manages an athlete's movements and their scores.
type MovementService interface {
	CreateMovement(ctx context.Context, userID primitive.ObjectID, name string, measurement domain.MovementMeasurement) (*domain.Movement, error)
	ListMovements(ctx context.Context, userID primitive.ObjectID) ([]domain.Movement, error)
	AddMovementScore(ctx context.Context, score *domain.MovementScore) (*domain.MovementScore, error)
}

type movementService struct {
	movementRepo repository.MovementRepository
}

// NewMovementService creates a new instance of movementService.
func NewMovementService(movementRepo repository.MovementRepository) MovementService {
	return &movementService{movementRepo: movementRepo}
}

func (s *movementService) CreateMovement(ctx context.Context, userID primitive.ObjectID, name string, measurement domain.MovementMeasurement) (*domain.Movement, error) {
	movement, err := domain.NewMovement(userID, name, measurement)
	if err != nil {
		return nil, err
	}

	id, err := s.movementRepo.Create(ctx, movement)
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrMovementExists
		}
		return nil, err
	}
	movement.ID = id
	return movement, nil
}

func (s *movementService) ListMovements(ctx context.Context, userID primitive.ObjectID) ([]domain.Movement, error) {
	return s.movementRepo.GetByUserID(ctx, userID)
}

func (s *movementService) AddMovementScore(ctx context.Context, score *domain.MovementScore) (*domain.MovementScore, error) {
	if score == nil || score.MovementID.IsZero() || score.UserID.IsZero() {
		return nil, ErrScoreInvalid
	}
	id, err := s.movementRepo.AddScore(ctx, score)
	if err != nil {
		return nil, err
	}
	score.ID = id
	return score, nil
}

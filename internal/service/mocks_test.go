package service

import (
	"alcyxob/wodbook/internal/domain"
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

type mockWorkoutRepo struct {
	mock.Mock
}

func (m *mockWorkoutRepo) Create(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error) {
	args := m.Called(ctx, workout)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *mockWorkoutRepo) GetByName(ctx context.Context, userID primitive.ObjectID, name string) (*domain.Workout, error) {
	args := m.Called(ctx, userID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workout), args.Error(1)
}

func (m *mockWorkoutRepo) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.Workout, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Workout), args.Error(1)
}

func (m *mockWorkoutRepo) AddScore(ctx context.Context, score *domain.WorkoutScore) (primitive.ObjectID, error) {
	args := m.Called(ctx, score)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

type mockMovementRepo struct {
	mock.Mock
}

func (m *mockMovementRepo) Create(ctx context.Context, movement *domain.Movement) (primitive.ObjectID, error) {
	args := m.Called(ctx, movement)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *mockMovementRepo) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.Movement, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Movement), args.Error(1)
}

func (m *mockMovementRepo) AddScore(ctx context.Context, score *domain.MovementScore) (primitive.ObjectID, error) {
	args := m.Called(ctx, score)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

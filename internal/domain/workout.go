package domain

import (
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrNameRequired       = errors.New("name is required")
	ErrOwnerRequired      = errors.New("user ID is required")
	ErrInvalidMeasurement = errors.New("invalid measurement")
)

// Workout is a named, user-owned workout definition ("WOD").
// Names are unique per user.
type Workout struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Measurement WorkoutMeasurement `bson:"measurement" json:"measurement"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// NewWorkout validates its arguments and returns a workout ready to be stored.
func NewWorkout(userID primitive.ObjectID, name, description string, measurement WorkoutMeasurement) (*Workout, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if userID == primitive.NilObjectID {
		return nil, ErrOwnerRequired
	}
	if !measurement.Valid() {
		return nil, ErrInvalidMeasurement
	}
	return &Workout{
		UserID:      userID,
		Name:        name,
		Description: description,
		Measurement: measurement,
	}, nil
}

// WorkoutScore is one logged result of a workout.
type WorkoutScore struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	WorkoutID   primitive.ObjectID `bson:"workoutId" json:"workoutId"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	Score       string             `bson:"score" json:"score"` // Free text, e.g. "12:41" or "5+3"
	Rx          bool               `bson:"rx" json:"rx"`       // Done as prescribed
	Measurement WorkoutMeasurement `bson:"measurement" json:"measurement"`
	Notes       string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

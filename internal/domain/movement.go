package domain

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Movement is a user-owned exercise or skill, e.g. "Back Squat".
// Names are unique per user.
type Movement struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID  `bson:"userId" json:"userId"`
	Name        string              `bson:"name" json:"name"`
	Measurement MovementMeasurement `bson:"measurement" json:"measurement"`
	CreatedAt   time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// NewMovement validates its arguments and returns a movement ready to be stored.
func NewMovement(userID primitive.ObjectID, name string, measurement MovementMeasurement) (*Movement, error) {
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
	return &Movement{UserID: userID, Name: name, Measurement: measurement}, nil
}

// MovementScore is one logged session of a movement.
// Which fields are populated depends on Measurement:
//   - weight, height: Score holds a float64
//   - distance: Score holds a time string and Distance is set
//   - reps: Score is nil
type MovementScore struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	MovementID  primitive.ObjectID  `bson:"movementId" json:"movementId"`
	UserID      primitive.ObjectID  `bson:"userId" json:"userId"`
	Measurement MovementMeasurement `bson:"measurement" json:"measurement"`
	Score       any                 `bson:"score" json:"score"`
	Sets        int                 `bson:"sets" json:"sets"`
	Reps        *int                `bson:"reps" json:"reps"`
	Distance    *float64            `bson:"distance,omitempty" json:"distance,omitempty"`
	Notes       string              `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt   time.Time           `bson:"createdAt" json:"createdAt"`
}

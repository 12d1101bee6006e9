package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents an athlete account.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"`    // Should be unique
	PasswordHash string             `bson:"passwordHash" json:"-"` // Never expose this via JSON
	IsAdmin      bool               `bson:"isAdmin" json:"isAdmin"`

	// --- Profile ---
	// Filled in by the user or imported from a myWOD backup.
	FirstName   string  `bson:"firstName,omitempty" json:"firstName,omitempty"`
	LastName    string  `bson:"lastName,omitempty" json:"lastName,omitempty"`
	BoxName     string  `bson:"boxName,omitempty" json:"boxName,omitempty"` // Name of the athlete's gym
	DateOfBirth string  `bson:"dateOfBirth,omitempty" json:"dateOfBirth,omitempty"`
	Height      float64 `bson:"height,omitempty" json:"height,omitempty"`
	Weight      float64 `bson:"weight,omitempty" json:"weight,omitempty"`
	AvatarURL   string  `bson:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// FullName joins first and last name, skipping empty parts.
func (u *User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// Claims is the identity carried by an authenticated request.
type Claims struct {
	UserID primitive.ObjectID
	Email  string
}

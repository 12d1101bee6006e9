// Package mywod reads backups exported by the myWOD mobile app.
//
// A backup is an SQLite database. Only the five tables the importer needs are
// read, and only the named columns, so extra columns added by newer app
// versions are ignored.
package mywod

// RecordKey is the composite identity myWOD gives every synced record.
// Records are joined on the whole pair, never on one half.
type RecordKey struct {
	ClientID string
	RecordID string
}

// Athlete is the profile stored in the backup.
type Athlete struct {
	FirstName   string
	LastName    string
	Gender      int
	Email       string
	DateOfBirth string
	Height      float64
	Weight      float64
	BoxName     string
	Avatar      []byte
}

// CustomWOD is a user-defined workout.
type CustomWOD struct {
	Key         RecordKey
	Title       string
	Description string
	ScoreType   string // e.g. "For Time:"
}

// Movement is a user-defined movement. Type is a numeric measurement code.
type Movement struct {
	Key  RecordKey
	Name string
	Type int
}

// MovementSession is one logged result of a Movement.
// MeasurementB is overloaded: a time string, a rep count or unused,
// depending on the movement type.
type MovementSession struct {
	Key               RecordKey
	MovementKey       RecordKey
	Date              string
	MeasurementAValue float64
	MeasurementB      string
	Sets              string
	Notes             string
}

// WODScore is one logged result of a workout. It refers back to its
// workout by Title only.
type WODScore struct {
	Title        string
	Date         string
	ScoreType    string
	Score        string
	AsPrescribed bool
	Notes        string
	Description  string
}

// Dataset is everything read from one backup.
type Dataset struct {
	Athlete          *Athlete // nil when the backup has no athlete row
	CustomWODs       []CustomWOD
	Movements        []Movement
	MovementSessions []MovementSession
	WODScores        []WODScore
}

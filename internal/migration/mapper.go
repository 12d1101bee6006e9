package migration

import (
	"alcyxob/wodbook/internal/domain"
	"alcyxob/wodbook/internal/mywod"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var workoutMeasurements = map[string]domain.WorkoutMeasurement{
	"For Time:":         domain.WorkoutTime,
	"For Distance:":     domain.WorkoutDistance,
	"For Load:":         domain.WorkoutLoad,
	"For Repetitions:":  domain.WorkoutRepetitions,
	"For Rounds:":       domain.WorkoutRounds,
	"For Timed Rounds:": domain.WorkoutTimedRounds,
	"Tabata Score:":     domain.WorkoutTabata,
	"Total Score:":      domain.WorkoutTotal,
	"No Score:":         domain.WorkoutNone,
}

// Indexed by the myWOD movement type code.
var movementMeasurements = [...]domain.MovementMeasurement{
	domain.MovementWeight,
	domain.MovementDistance,
	domain.MovementReps,
	domain.MovementHeight,
}

var legacyDateLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ScoreFields is a movement session reshaped into canonical score fields.
type ScoreFields struct {
	Score     any // float64 for weight and height, time string for distance, nil for reps
	Sets      int
	Reps      *int
	Distance  *float64
	Notes     string
	CreatedAt time.Time
}

// WorkoutScoreFields is a legacy workout score in canonical form, still
// carrying the workout name it must be matched against.
type WorkoutScoreFields struct {
	Name        string
	Description string
	Score       string
	Rx          bool
	Measurement domain.WorkoutMeasurement
	Notes       string
	CreatedAt   time.Time
}

// MapWorkoutMeasurement maps a myWOD score type label such as "For Time:".
func MapWorkoutMeasurement(label string) (domain.WorkoutMeasurement, error) {
	m, ok := workoutMeasurements[strings.TrimSpace(label)]
	if !ok {
		return "", fmt.Errorf("%w: unknown workout score type %q", ErrInvalidProperty, label)
	}
	return m, nil
}

// MapMovementMeasurement maps a myWOD movement type code.
func MapMovementMeasurement(code int) (domain.MovementMeasurement, error) {
	if code < 0 || code >= len(movementMeasurements) {
		return "", fmt.Errorf("%w: unknown movement type %d", ErrInvalidProperty, code)
	}
	return movementMeasurements[code], nil
}

// AdjustMovementScore reads a session according to the movement's canonical
// measurement, since myWOD reuses the same columns for different things.
func AdjustMovementScore(measurement domain.MovementMeasurement, s mywod.MovementSession) (ScoreFields, error) {
	createdAt, err := parseLegacyDate(s.Date)
	if err != nil {
		return ScoreFields{}, err
	}
	fields := ScoreFields{Notes: s.Notes, CreatedAt: createdAt}

	switch measurement {
	case domain.MovementWeight:
		sets, err := legacyNumber("sets", s.Sets)
		if err != nil {
			return ScoreFields{}, err
		}
		reps, err := legacyNumber("reps", s.MeasurementB)
		if err != nil {
			return ScoreFields{}, err
		}
		fields.Score = s.MeasurementAValue
		fields.Sets = sets
		fields.Reps = &reps
	case domain.MovementHeight:
		sets, err := legacyNumber("sets", s.MeasurementB)
		if err != nil {
			return ScoreFields{}, err
		}
		reps := 1
		fields.Score = s.MeasurementAValue
		fields.Sets = sets
		fields.Reps = &reps
	case domain.MovementDistance:
		distance := s.MeasurementAValue
		fields.Score = s.MeasurementB
		fields.Distance = &distance
		fields.Sets = 1
	case domain.MovementReps:
		sets, err := legacyNumber("sets", s.Sets)
		if err != nil {
			return ScoreFields{}, err
		}
		reps := int(s.MeasurementAValue)
		fields.Sets = sets
		fields.Reps = &reps
	default:
		return ScoreFields{}, fmt.Errorf("%w: unknown movement measurement %q", ErrInvalidProperty, measurement)
	}
	return fields, nil
}

// ParseWorkoutScore converts a legacy workout score.
func ParseWorkoutScore(s mywod.WODScore) (WorkoutScoreFields, error) {
	measurement, err := MapWorkoutMeasurement(s.ScoreType)
	if err != nil {
		return WorkoutScoreFields{}, err
	}
	createdAt, err := parseLegacyDate(s.Date)
	if err != nil {
		return WorkoutScoreFields{}, err
	}
	return WorkoutScoreFields{
		Name:        s.Title,
		Description: s.Description,
		Score:       s.Score,
		Rx:          s.AsPrescribed,
		Measurement: measurement,
		Notes:       s.Notes,
		CreatedAt:   createdAt,
	}, nil
}

func parseLegacyDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range legacyDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unparsable date %q", ErrInvalidProperty, value)
}

// legacyNumber reads the numeric text myWOD stores in string columns.
// Blank means zero; fractions are truncated.
func legacyNumber(field, value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s is not a number: %q", ErrInvalidProperty, field, value)
	}
	return int(f), nil
}

package domain

// WorkoutMeasurement is how a workout is scored.
type WorkoutMeasurement string

const (
	WorkoutTime        WorkoutMeasurement = "time"
	WorkoutDistance    WorkoutMeasurement = "distance"
	WorkoutLoad        WorkoutMeasurement = "load"
	WorkoutRepetitions WorkoutMeasurement = "repetitions"
	WorkoutRounds      WorkoutMeasurement = "rounds"
	WorkoutTimedRounds WorkoutMeasurement = "timed_rounds"
	WorkoutTabata      WorkoutMeasurement = "tabata"
	WorkoutTotal       WorkoutMeasurement = "total"
	WorkoutNone        WorkoutMeasurement = "none"
)

// Valid reports whether m is one of the known workout measurements.
func (m WorkoutMeasurement) Valid() bool {
	switch m {
	case WorkoutTime, WorkoutDistance, WorkoutLoad, WorkoutRepetitions, WorkoutRounds,
		WorkoutTimedRounds, WorkoutTabata, WorkoutTotal, WorkoutNone:
		return true
	}
	return false
}

// MovementMeasurement is the unit a movement is logged in.
type MovementMeasurement string

const (
	MovementWeight   MovementMeasurement = "weight"
	MovementDistance MovementMeasurement = "distance"
	MovementReps     MovementMeasurement = "reps"
	MovementHeight   MovementMeasurement = "height"
)

// Valid reports whether m is one of the known movement measurements.
func (m MovementMeasurement) Valid() bool {
	switch m {
	case MovementWeight, MovementDistance, MovementReps, MovementHeight:
		return true
	}
	return false
}

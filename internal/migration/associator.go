package migration

import (
	"alcyxob/wodbook/internal/domain"
	"alcyxob/wodbook/internal/mywod"
)

// ScoreResult is one session of a movement mapped to canonical score
// fields, or the reason it could not be.
type ScoreResult struct {
	Session mywod.RecordKey
	Fields  ScoreFields
	Err     error
}

// ScoresForMovement maps every session that belongs to m, in session order.
// Sessions are matched on the full (clientID, recordID) key. A session that
// cannot be mapped carries its own Err. The movement type is only read once
// a session matches, so a movement without sessions always yields an empty
// result; otherwise an unknown type is the returned error.
func ScoresForMovement(m mywod.Movement, sessions []mywod.MovementSession) ([]ScoreResult, error) {
	var measurement domain.MovementMeasurement
	results := []ScoreResult{}
	for _, s := range sessions {
		if s.MovementKey != m.Key {
			continue
		}
		if measurement == "" {
			var err error
			if measurement, err = MapMovementMeasurement(m.Type); err != nil {
				return nil, err
			}
		}
		fields, err := AdjustMovementScore(measurement, s)
		results = append(results, ScoreResult{Session: s.Key, Fields: fields, Err: err})
	}
	return results, nil
}

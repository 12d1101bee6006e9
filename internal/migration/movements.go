package migration

import (
	"alcyxob/wodbook/internal/domain"
	"alcyxob/wodbook/internal/mywod"
	"context"
	"fmt"
)

// MigrateMovementsAndScores creates each legacy movement and then its
// sessions as scores. Sessions of a movement that could not be created are
// never looked at. It returns the created movements and the number of
// scores added.
func (m *Migrator) MigrateMovementsAndScores(ctx context.Context, movements []mywod.Movement, sessions []mywod.MovementSession, claims domain.Claims, report *Report) ([]*domain.Movement, int) {
	created := []*domain.Movement{}
	scoreCount := 0

	for _, legacy := range movements {
		measurement, err := MapMovementMeasurement(legacy.Type)
		if err != nil {
			m.skip(report, KindMovement, legacy.Name, err)
			continue
		}

		movement, err := m.movements.CreateMovement(ctx, claims.UserID, legacy.Name, measurement)
		if err != nil {
			m.skip(report, KindMovement, legacy.Name, err)
			continue
		}
		report.add(KindMovement, legacy.Name, StatusMigrated, nil)
		created = append(created, movement)

		// Sessions point at the legacy key; the new ID is only used for storing.
		results, err := ScoresForMovement(legacy, sessions)
		if err != nil {
			m.skip(report, KindMovementScore, legacy.Name, err)
			continue
		}
		for _, res := range results {
			name := fmt.Sprintf("%s (%s/%s)", legacy.Name, res.Session.ClientID, res.Session.RecordID)
			if res.Err != nil {
				m.skip(report, KindMovementScore, name, res.Err)
				continue
			}
			_, err := m.movements.AddMovementScore(ctx, &domain.MovementScore{
				MovementID:  movement.ID,
				UserID:      claims.UserID,
				Measurement: movement.Measurement,
				Score:       res.Fields.Score,
				Sets:        res.Fields.Sets,
				Reps:        res.Fields.Reps,
				Distance:    res.Fields.Distance,
				Notes:       res.Fields.Notes,
				CreatedAt:   res.Fields.CreatedAt,
			})
			if err != nil {
				m.skip(report, KindMovementScore, name, err)
				continue
			}
			report.add(KindMovementScore, name, StatusMigrated, nil)
			scoreCount++
		}
	}
	return created, scoreCount
}

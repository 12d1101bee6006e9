package migration

import (
	"alcyxob/wodbook/internal/domain"
	"alcyxob/wodbook/internal/mywod"
	"context"
	"strings"
)

// MigrateWorkouts creates a workout for every custom WOD except the vendor
// sample and returns the ones that were created. Failed rows are logged and
// noted in report.
func (m *Migrator) MigrateWorkouts(ctx context.Context, wods []mywod.CustomWOD, claims domain.Claims, report *Report) []*domain.Workout {
	created := []*domain.Workout{}
	for _, wod := range wods {
		if strings.HasPrefix(wod.Description, SampleWODMarker) {
			report.add(KindWorkout, wod.Title, StatusSkipped, errSampleWOD)
			continue
		}

		measurement, err := MapWorkoutMeasurement(wod.ScoreType)
		if err != nil {
			m.skip(report, KindWorkout, wod.Title, err)
			continue
		}

		workout, err := m.workouts.CreateWorkout(ctx, claims.UserID, wod.Title, wod.Description, measurement)
		if err != nil {
			m.skip(report, KindWorkout, wod.Title, err)
			continue
		}
		report.add(KindWorkout, wod.Title, StatusMigrated, nil)
		created = append(created, workout)
	}
	return created
}

func (m *Migrator) skip(report *Report, kind ItemKind, name string, err error) {
	m.logger.Warn("legacy record not migrated", "kind", kind, "name", name, "error", err)
	report.add(kind, name, StatusFailed, err)
}

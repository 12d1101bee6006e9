package migration

import (
	"alcyxob/wodbook/internal/domain"
	"alcyxob/wodbook/internal/mywod"
	"alcyxob/wodbook/internal/repository"
	"context"
	"errors"
	"sort"
)

// MigrateWorkoutScores attaches each legacy score to the caller's workout of
// the same name. Scores without such a workout are dropped. Every score is
// processed; the added ones are returned.
func (m *Migrator) MigrateWorkoutScores(ctx context.Context, scores []mywod.WODScore, claims domain.Claims, report *Report) []*domain.WorkoutScore {
	sorted := make([]mywod.WODScore, len(scores))
	copy(sorted, scores)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Title < sorted[j].Title })

	// Titles repeat, so remember lookups, including misses.
	resolved := map[string]*domain.Workout{}

	added := []*domain.WorkoutScore{}
	for _, legacy := range sorted {
		workout, seen := resolved[legacy.Title]
		if !seen {
			var err error
			workout, err = m.workouts.GetWorkoutByName(ctx, claims.UserID, legacy.Title)
			if err != nil && !errors.Is(err, repository.ErrNotFound) {
				m.skip(report, KindWorkoutScore, legacy.Title, err)
				continue
			}
			resolved[legacy.Title] = workout
		}
		if workout == nil {
			m.logger.Debug("workout score has no matching workout", "title", legacy.Title)
			report.add(KindWorkoutScore, legacy.Title, StatusSkipped, errWorkoutUnresolved)
			continue
		}

		fields, err := ParseWorkoutScore(legacy)
		if err != nil {
			m.skip(report, KindWorkoutScore, legacy.Title, err)
			continue
		}

		score, err := m.workouts.AddWorkoutScore(ctx, &domain.WorkoutScore{
			WorkoutID:   workout.ID,
			UserID:      claims.UserID,
			Score:       fields.Score,
			Rx:          fields.Rx,
			Measurement: fields.Measurement,
			Notes:       fields.Notes,
			CreatedAt:   fields.CreatedAt,
		})
		if err != nil {
			m.skip(report, KindWorkoutScore, legacy.Title, err)
			continue
		}
		report.add(KindWorkoutScore, legacy.Title, StatusMigrated, nil)
		added = append(added, score)
	}
	return added
}

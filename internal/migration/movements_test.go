package migration

import (
	"alcyxob/wodbook/internal/domain"
	"alcyxob/wodbook/internal/mywod"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func createdMovement(claims domain.Claims, name string, m domain.MovementMeasurement) *domain.Movement {
	return &domain.Movement{ID: primitive.NewObjectID(), UserID: claims.UserID, Name: name, Measurement: m}
}

func legacySession(client, record string, movement mywod.RecordKey, a float64, b, sets string) mywod.MovementSession {
	return mywod.MovementSession{
		Key:               mywod.RecordKey{ClientID: client, RecordID: record},
		MovementKey:       movement,
		Date:              "2016-03-14",
		MeasurementAValue: a,
		MeasurementB:      b,
		Sets:              sets,
	}
}

func TestMigrateMovementsAndScores(t *testing.T) {
	m, mk := newMockedMigrator()
	claims := testClaims()
	squatKey := mywod.RecordKey{ClientID: "c1", RecordID: "1"}
	rowKey := mywod.RecordKey{ClientID: "c1", RecordID: "2"}

	movements := []mywod.Movement{
		{Key: squatKey, Name: "Back Squat", Type: 0},
		{Key: rowKey, Name: "Row", Type: 1},
	}
	sessions := []mywod.MovementSession{
		legacySession("c1", "10", squatKey, 100, "5", "3"),
		legacySession("c1", "11", rowKey, 2000, "7:45", ""),
		legacySession("c1", "12", squatKey, 105, "3", "2"),
	}

	squat := createdMovement(claims, "Back Squat", domain.MovementWeight)
	row := createdMovement(claims, "Row", domain.MovementDistance)
	mk.movements.On("CreateMovement", mock.Anything, claims.UserID, "Back Squat", domain.MovementWeight).Return(squat, nil)
	mk.movements.On("CreateMovement", mock.Anything, claims.UserID, "Row", domain.MovementDistance).Return(row, nil)

	var stored []*domain.MovementScore
	mk.movements.On("AddMovementScore", mock.Anything, mock.AnythingOfType("*domain.MovementScore")).
		Run(func(args mock.Arguments) {
			stored = append(stored, args.Get(1).(*domain.MovementScore))
		}).
		Return(&domain.MovementScore{}, nil)

	report := &Report{}
	created, scores := m.MigrateMovementsAndScores(context.Background(), movements, sessions, claims, report)

	assert.Equal(t, []*domain.Movement{squat, row}, created)
	assert.Equal(t, 3, scores)
	require.Len(t, stored, 3)

	assert.Equal(t, squat.ID, stored[0].MovementID)
	assert.Equal(t, 100.0, stored[0].Score)
	assert.Equal(t, 3, stored[0].Sets)
	assert.Equal(t, 5, *stored[0].Reps)

	assert.Equal(t, squat.ID, stored[1].MovementID)
	assert.Equal(t, 105.0, stored[1].Score)

	assert.Equal(t, row.ID, stored[2].MovementID)
	assert.Equal(t, domain.MovementDistance, stored[2].Measurement)
	assert.Equal(t, "7:45", stored[2].Score)
	assert.Equal(t, 2000.0, *stored[2].Distance)
	for _, s := range stored {
		assert.Equal(t, claims.UserID, s.UserID)
	}
	assert.Empty(t, report.Failures())
}

func TestMigrateMovementsFailedCreateSkipsSessions(t *testing.T) {
	m, mk := newMockedMigrator()
	claims := testClaims()
	squatKey := mywod.RecordKey{ClientID: "c1", RecordID: "1"}
	pullKey := mywod.RecordKey{ClientID: "c1", RecordID: "2"}

	squat := createdMovement(claims, "Back Squat", domain.MovementWeight)
	mk.movements.On("CreateMovement", mock.Anything, claims.UserID, "Back Squat", domain.MovementWeight).Return(squat, nil)
	mk.movements.On("CreateMovement", mock.Anything, claims.UserID, "Pull-up", domain.MovementReps).Return(nil, errConflict)
	mk.movements.On("AddMovementScore", mock.Anything, mock.MatchedBy(func(s *domain.MovementScore) bool {
		return s.MovementID == squat.ID
	})).Return(&domain.MovementScore{}, nil)

	report := &Report{}
	created, scores := m.MigrateMovementsAndScores(context.Background(),
		[]mywod.Movement{
			{Key: pullKey, Name: "Pull-up", Type: 2},
			{Key: squatKey, Name: "Back Squat", Type: 0},
		},
		[]mywod.MovementSession{
			legacySession("c1", "10", pullKey, 12, "", "3"),
			legacySession("c1", "11", squatKey, 80, "5", "5"),
			legacySession("c1", "12", pullKey, 15, "", "3"),
		}, claims, report)

	assert.Equal(t, []*domain.Movement{squat}, created)
	assert.Equal(t, 1, scores)
	mk.movements.AssertNumberOfCalls(t, "AddMovementScore", 1)

	failures := report.Failures()
	require.Len(t, failures, 1)
	assert.Equal(t, KindMovement, failures[0].Kind)
	assert.Equal(t, "Pull-up", failures[0].Name)
}

func TestMigrateMovementsIsolatesScoreFailures(t *testing.T) {
	m, mk := newMockedMigrator()
	claims := testClaims()
	key := mywod.RecordKey{ClientID: "c1", RecordID: "1"}

	deadlift := createdMovement(claims, "Deadlift", domain.MovementWeight)
	mk.movements.On("CreateMovement", mock.Anything, claims.UserID, "Deadlift", domain.MovementWeight).Return(deadlift, nil)
	mk.movements.On("AddMovementScore", mock.Anything, mock.MatchedBy(func(s *domain.MovementScore) bool {
		return s.Notes == "flaky"
	})).Return(nil, errors.New("write failed"))
	mk.movements.On("AddMovementScore", mock.Anything, mock.Anything).Return(&domain.MovementScore{}, nil)

	bad := legacySession("c1", "10", key, 140, "five", "1")
	flaky := legacySession("c1", "11", key, 150, "3", "1")
	flaky.Notes = "flaky"
	good := legacySession("c1", "12", key, 160, "1", "1")

	report := &Report{}
	created, scores := m.MigrateMovementsAndScores(context.Background(),
		[]mywod.Movement{{Key: key, Name: "Deadlift", Type: 0}},
		[]mywod.MovementSession{bad, flaky, good}, claims, report)

	assert.Len(t, created, 1)
	assert.Equal(t, 1, scores)
	failures := report.Failures()
	require.Len(t, failures, 2)
	assert.Equal(t, "Deadlift (c1/10)", failures[0].Name)
	assert.ErrorIs(t, failures[0].Err, ErrInvalidProperty)
	assert.Equal(t, "Deadlift (c1/11)", failures[1].Name)
}

func TestMigrateMovementsUnknownType(t *testing.T) {
	m, mk := newMockedMigrator()
	claims := testClaims()

	created, scores := m.MigrateMovementsAndScores(context.Background(),
		[]mywod.Movement{{Key: mywod.RecordKey{ClientID: "c1", RecordID: "1"}, Name: "Mystery", Type: 9}},
		nil, claims, nil)

	assert.Empty(t, created)
	assert.Zero(t, scores)
	mk.movements.AssertNotCalled(t, "CreateMovement", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

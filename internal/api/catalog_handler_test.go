package api

import (
	"alcyxob/wodbook/internal/domain"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestListWorkouts(t *testing.T) {
	userID := primitive.NewObjectID()
	other := primitive.NewObjectID()
	catalog := &fakeCatalog{workouts: map[primitive.ObjectID][]domain.Workout{
		userID: {
			{ID: primitive.NewObjectID(), UserID: userID, Name: "Fran", Measurement: domain.WorkoutTime},
			{ID: primitive.NewObjectID(), UserID: userID, Name: "Cindy", Measurement: domain.WorkoutRounds},
		},
		other: {{ID: primitive.NewObjectID(), UserID: other, Name: "Murph"}},
	}}
	router := newCatalogRouter(&fakeUserService{}, &fakeImporter{}, catalog)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/v1/workouts",
		signToken(t, userID, "jane@example.com", time.Hour), nil, ""))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var got []domain.Workout
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Fran", got[0].Name)
	assert.Equal(t, domain.WorkoutRounds, got[1].Measurement)
}

func TestListMovements(t *testing.T) {
	userID := primitive.NewObjectID()
	catalog := &fakeCatalog{movements: map[primitive.ObjectID][]domain.Movement{
		userID: {{ID: primitive.NewObjectID(), UserID: userID, Name: "Back Squat", Measurement: domain.MovementWeight}},
	}}
	router := newCatalogRouter(&fakeUserService{}, &fakeImporter{}, catalog)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/v1/movements",
		signToken(t, userID, "jane@example.com", time.Hour), nil, ""))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var got []domain.Movement
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Back Squat", got[0].Name)
}

func TestListCatalogEdgeCases(t *testing.T) {
	token := func(t *testing.T) string {
		return signToken(t, primitive.NewObjectID(), "jane@example.com", time.Hour)
	}

	tests := []struct {
		name     string
		path     string
		catalog  *fakeCatalog
		noAuth   bool
		wantCode int
		wantBody string
	}{
		{"no workouts yet", "/v1/workouts", &fakeCatalog{}, false, http.StatusOK, "[]"},
		{"no movements yet", "/v1/movements", &fakeCatalog{}, false, http.StatusOK, "[]"},
		{"workouts storage failure", "/v1/workouts", &fakeCatalog{err: errors.New("mongo down")}, false, http.StatusInternalServerError, ""},
		{"movements storage failure", "/v1/movements", &fakeCatalog{err: errors.New("mongo down")}, false, http.StatusInternalServerError, ""},
		{"workouts require auth", "/v1/workouts", &fakeCatalog{}, true, http.StatusUnauthorized, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newCatalogRouter(&fakeUserService{}, &fakeImporter{}, tt.catalog)
			bearer := ""
			if !tt.noAuth {
				bearer = token(t)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, authedRequest(http.MethodGet, tt.path, bearer, nil, ""))

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

package api

import (
	"alcyxob/wodbook/internal/domain"
	"alcyxob/wodbook/internal/migration"
	"alcyxob/wodbook/internal/mywod"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMyWODImportSuccess(t *testing.T) {
	userID := primitive.NewObjectID()
	importer := &fakeImporter{summary: &migration.Summary{
		User:           &domain.User{ID: userID},
		Workouts:       make([]*domain.Workout, 2),
		WorkoutScores:  make([]*domain.WorkoutScore, 5),
		Movements:      make([]*domain.Movement, 3),
		MovementScores: 7,
	}}
	router := newTestRouter(&fakeUserService{}, importer)

	body, contentType := multipartBody(t, "file", []byte("SQLite format 3\x00"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPost, "/v1/users/mywod",
		signToken(t, userID, "jane@example.com", time.Hour), body, contentType))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, map[string]any{
		"user_updated":          true,
		"added_workouts":        float64(2),
		"added_workout_scores":  float64(5),
		"added_movements":       float64(3),
		"added_movement_scores": float64(7),
	}, resp)

	assert.Equal(t, userID, importer.gotClaims.UserID)
	assert.Equal(t, "jane@example.com", importer.gotClaims.Email)
	assert.Equal(t, []byte("SQLite format 3\x00"), importer.fileSeen)
	assert.True(t, importer.deadline)
	assert.NoFileExists(t, importer.gotPath)
}

func TestMyWODImportErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"email mismatch", migration.ErrForbidden, http.StatusForbidden},
		{"unknown user", migration.ErrNotFound, http.StatusNotFound},
		{"invalid backup", fmt.Errorf("%w: not a database", mywod.ErrInvalidFile), http.StatusInternalServerError},
		{"storage failure", errors.New("mongo down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			importer := &fakeImporter{err: tt.err}
			router := newTestRouter(&fakeUserService{}, importer)

			body, contentType := multipartBody(t, "file", []byte("data"))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, authedRequest(http.MethodPost, "/v1/users/mywod",
				signToken(t, primitive.NewObjectID(), "jane@example.com", time.Hour), body, contentType))

			assert.Equal(t, tt.want, rec.Code)
			assert.NotEmpty(t, importer.gotPath)
			_, err := os.Stat(importer.gotPath)
			assert.True(t, errors.Is(err, os.ErrNotExist), "temp file left behind")
		})
	}
}

func TestMyWODImportTooLarge(t *testing.T) {
	importer := &fakeImporter{}
	router := newTestRouter(&fakeUserService{}, importer)

	// The test router caps uploads at 1 MB.
	body, contentType := multipartBody(t, "file", bytes.Repeat([]byte{0xAB}, 2<<20))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPost, "/v1/users/mywod",
		signToken(t, primitive.NewObjectID(), "jane@example.com", time.Hour), body, contentType))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.JSONEq(t, `{"error":"Backup file is too large"}`, rec.Body.String())
	assert.Empty(t, importer.gotPath)
}

func TestMyWODImportMissingFile(t *testing.T) {
	importer := &fakeImporter{}
	router := newTestRouter(&fakeUserService{}, importer)

	body, contentType := multipartBody(t, "", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPost, "/v1/users/mywod",
		signToken(t, primitive.NewObjectID(), "jane@example.com", time.Hour), body, contentType))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, importer.gotPath)
}

func TestMyWODImportRequiresAuth(t *testing.T) {
	importer := &fakeImporter{}
	router := newTestRouter(&fakeUserService{}, importer)

	body, contentType := multipartBody(t, "file", []byte("data"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPost, "/v1/users/mywod", "", body, contentType))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, importer.gotPath)
}

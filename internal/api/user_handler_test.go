package api

import (
	"alcyxob/wodbook/internal/domain"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestGetMe(t *testing.T) {
	userID := primitive.NewObjectID()
	users := &fakeUserService{users: map[primitive.ObjectID]*domain.User{
		userID: {ID: userID, Email: "jane@example.com", FirstName: "Jane", BoxName: "CrossFit Reykjavik"},
	}}
	router := newTestRouter(users, &fakeImporter{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/v1/users/me",
		signToken(t, userID, "jane@example.com", time.Hour), nil, ""))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, userID.Hex(), resp.ID)
	assert.Equal(t, "Jane", resp.FirstName)
	assert.Equal(t, "CrossFit Reykjavik", resp.BoxName)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestGetMeUnknownUser(t *testing.T) {
	router := newTestRouter(&fakeUserService{users: map[primitive.ObjectID]*domain.User{}}, &fakeImporter{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/v1/users/me",
		signToken(t, primitive.NewObjectID(), "ghost@example.com", time.Hour), nil, ""))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPingAndMetrics(t *testing.T) {
	router := newTestRouter(&fakeUserService{}, &fakeImporter{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"pong"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

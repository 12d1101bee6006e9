package api

import (
	"alcyxob/wodbook/internal/domain"
	"alcyxob/wodbook/internal/migration"
	"alcyxob/wodbook/internal/service"
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const testSecret = "api-test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeImporter struct {
	summary *migration.Summary
	err     error

	gotPath   string
	gotClaims domain.Claims
	fileSeen  []byte
	deadline  bool
}

func (f *fakeImporter) Run(ctx context.Context, path string, claims domain.Claims) (*migration.Summary, error) {
	f.gotPath = path
	f.gotClaims = claims
	f.fileSeen, _ = os.ReadFile(path)
	_, f.deadline = ctx.Deadline()
	return f.summary, f.err
}

type fakeUserService struct {
	users map[primitive.ObjectID]*domain.User
}

func (f *fakeUserService) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, service.ErrUserNotFound
}

func (f *fakeUserService) GetByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, service.ErrUserNotFound
}

func (f *fakeUserService) UpdateUser(_ context.Context, user *domain.User) (*domain.User, error) {
	f.users[user.ID] = user
	return user, nil
}

func signToken(t *testing.T, userID primitive.ObjectID, email string, expiresIn time.Duration) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwtClaims{
		UserID: userID.Hex(),
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		},
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

// fakeCatalog plays the workout and movement services, keyed by owner.
type fakeCatalog struct {
	workouts  map[primitive.ObjectID][]domain.Workout
	movements map[primitive.ObjectID][]domain.Movement
	err       error
}

func (f *fakeCatalog) CreateWorkout(context.Context, primitive.ObjectID, string, string, domain.WorkoutMeasurement) (*domain.Workout, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeCatalog) GetWorkoutByName(context.Context, primitive.ObjectID, string) (*domain.Workout, error) {
	return nil, service.ErrWorkoutNotFound
}

func (f *fakeCatalog) ListWorkouts(_ context.Context, userID primitive.ObjectID) ([]domain.Workout, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.workouts[userID], nil
}

func (f *fakeCatalog) AddWorkoutScore(context.Context, *domain.WorkoutScore) (*domain.WorkoutScore, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeCatalog) CreateMovement(context.Context, primitive.ObjectID, string, domain.MovementMeasurement) (*domain.Movement, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeCatalog) ListMovements(_ context.Context, userID primitive.ObjectID) ([]domain.Movement, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.movements[userID], nil
}

func (f *fakeCatalog) AddMovementScore(context.Context, *domain.MovementScore) (*domain.MovementScore, error) {
	return nil, errors.New("not implemented")
}

func newTestRouter(users *fakeUserService, importer BackupImporter) *gin.Engine {
	return newCatalogRouter(users, importer, &fakeCatalog{})
}

func newCatalogRouter(users *fakeUserService, importer BackupImporter, catalog *fakeCatalog) *gin.Engine {
	router := gin.New()
	SetupRoutes(router, testSecret, Services{
		Auth:      service.NewAuthService(nil, testSecret, time.Hour),
		Users:     users,
		Workouts:  catalog,
		Movements: catalog,
		Importer:  importer,
	}, MyWODHandlerConfig{Timeout: time.Minute, MaxUploadMB: 1}, prometheus.NewRegistry())
	return router
}

func multipartBody(t *testing.T, field string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	if field != "" {
		part, err := w.CreateFormFile(field, "backup.mywod")
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	} else {
		require.NoError(t, w.WriteField("note", "no file here"))
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func authedRequest(method, target, token string, body *bytes.Buffer, contentType string) *http.Request {
	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, body)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	}
	return req
}

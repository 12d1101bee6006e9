package api

import (
	"alcyxob/wodbook/internal/domain"
	"alcyxob/wodbook/internal/migration"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
)

// BackupImporter runs a myWOD import for one user.
type BackupImporter interface {
	Run(ctx context.Context, path string, claims domain.Claims) (*migration.Summary, error)
}

// MyWODHandler accepts myWOD backup uploads.
type MyWODHandler struct {
	importer    BackupImporter
	timeout     time.Duration
	tempDir     string
	maxUploadMB int64
}

// MyWODHandlerConfig configures a MyWODHandler.
type MyWODHandlerConfig struct {
	Timeout     time.Duration
	TempDir     string // empty means os.TempDir()
	MaxUploadMB int64  // 0 means unlimited
}

// NewMyWODHandler creates a MyWODHandler. A non-positive timeout falls back to two minutes.
func NewMyWODHandler(importer BackupImporter, cfg MyWODHandlerConfig) *MyWODHandler {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 2 * time.Minute
	}
	return &MyWODHandler{
		importer:    importer,
		timeout:     cfg.Timeout,
		tempDir:     cfg.TempDir,
		maxUploadMB: cfg.MaxUploadMB,
	}
}

// MyWODImportResponse reports what an import added.
type MyWODImportResponse struct {
	UserUpdated         bool `json:"user_updated"`
	AddedWorkouts       int  `json:"added_workouts"`
	AddedWorkoutScores  int  `json:"added_workout_scores"`
	AddedMovements      int  `json:"added_movements"`
	AddedMovementScores int  `json:"added_movement_scores"`
}

// Import godoc
// @Summary Import a myWOD backup
// @Description Migrates the athlete profile, custom WODs, movements and scores from a myWOD backup file.
// @Tags Users
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "myWOD backup (SQLite)"
// @Success 200 {object} MyWODImportResponse
// @Failure 400 {object} gin.H "Missing file"
// @Failure 403 {object} gin.H "Backup belongs to another email"
// @Failure 404 {object} gin.H "User not found"
// @Failure 500 {object} gin.H "Import failed"
// @Router /users/mywod [post]
func (h *MyWODHandler) Import(c *gin.Context) {
	claims, err := getClaimsFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	if h.maxUploadMB > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadMB<<20)
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			abortWithError(c, http.StatusRequestEntityTooLarge, "Backup file is too large")
			return
		}
		abortWithError(c, http.StatusBadRequest, "Multipart field 'file' is required")
		return
	}

	tmp, err := os.CreateTemp(h.tempDir, "mywod-*.sqlite")
	if err != nil {
		log.Printf("ERROR: create temp file for myWOD upload: %v", err)
		abortWithError(c, http.StatusInternalServerError, "Failed to store upload")
		return
	}
	path := tmp.Name()
	tmp.Close()
	defer func() {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			log.Printf("WARN: remove myWOD upload %s: %v", path, err)
		}
	}()

	if err := c.SaveUploadedFile(fileHeader, path); err != nil {
		log.Printf("ERROR: save myWOD upload: %v", err)
		abortWithError(c, http.StatusInternalServerError, "Failed to store upload")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	log.Printf("INFO: myWOD import started for user %s (%d bytes)", claims.UserID.Hex(), fileHeader.Size)
	summary, err := h.importer.Run(ctx, path, claims)
	if err != nil {
		switch {
		case errors.Is(err, migration.ErrForbidden):
			abortWithError(c, http.StatusForbidden, "Backup belongs to a different email address")
		case errors.Is(err, migration.ErrNotFound):
			abortWithError(c, http.StatusNotFound, "User not found")
		default:
			log.Printf("ERROR: myWOD import for user %s: %v", claims.UserID.Hex(), err)
			abortWithError(c, http.StatusInternalServerError, "Failed to import backup")
		}
		return
	}

	c.JSON(http.StatusOK, MyWODImportResponse{
		UserUpdated:         summary.UserUpdated(),
		AddedWorkouts:       len(summary.Workouts),
		AddedWorkoutScores:  len(summary.WorkoutScores),
		AddedMovements:      len(summary.Movements),
		AddedMovementScores: summary.MovementScores,
	})
}

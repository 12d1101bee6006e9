package api

import (
	"alcyxob/wodbook/internal/domain"
	"alcyxob/wodbook/internal/service"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// WorkoutHandler serves the authenticated athlete's workouts.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// ListWorkouts godoc
// @Summary List the athlete's workouts
// @Tags Workouts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Workout
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /workouts [get]
func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	claims, err := getClaimsFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	workouts, err := h.workoutService.ListWorkouts(c.Request.Context(), claims.UserID)
	if err != nil {
		log.Printf("ERROR: list workouts for user %s: %v", claims.UserID.Hex(), err)
		abortWithError(c, http.StatusInternalServerError, "Failed to list workouts")
		return
	}
	if workouts == nil {
		workouts = []domain.Workout{}
	}
	c.JSON(http.StatusOK, workouts)
}

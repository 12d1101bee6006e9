package api

import (
	"alcyxob/wodbook/internal/domain"
	"alcyxob/wodbook/internal/service"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type MovementHandler struct {
	movementService service.MovementService
}

// NewMovementHandler creates a new MovementHandler.
func NewMovementHandler(movementService service.MovementService) *MovementHandler {
	return &MovementHandler{movementService: movementService}
}

// ListMovements godoc
// @Summary List the athlete's movements
// @Tags Movements
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Movement
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /movements [get]
func (h *MovementHandler) ListMovements(c *gin.Context) {
	claims, err := getClaimsFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	movements, err := h.movementService.ListMovements(c.Request.Context(), claims.UserID)
	if err != nil {
		log.Printf("ERROR: list movements for user %s: %v", claims.UserID.Hex(), err)
		abortWithError(c, http.StatusInternalServerError, "Failed to list movements")
		return
	}
	if movements == nil {
		movements = []domain.Movement{}
	}
	c.JSON(http.StatusOK, movements)
}

package api

import (
	"alcyxob/wodbook/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Services bundles what the HTTP surface depends on.
type Services struct {
	Auth      service.AuthService
	Users     service.UserService
	Workouts  service.WorkoutService
	Movements service.MovementService
	Importer  BackupImporter
}

// SetupRoutes registers every endpoint on router. /metrics is only served
// when registry is non-nil.
func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	services Services,
	mywodCfg MyWODHandlerConfig,
	registry *prometheus.Registry,
) {
	authHandler := NewAuthHandler(services.Auth)
	userHandler := NewUserHandler(services.Users)
	workoutHandler := NewWorkoutHandler(services.Workouts)
	movementHandler := NewMovementHandler(services.Movements)
	mywodHandler := NewMyWODHandler(services.Importer, mywodCfg)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	if registry != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{
			Registry:      registry,
			ErrorHandling: promhttp.HTTPErrorOnError,
		})))
	}

	apiV1 := router.Group("/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		usersGroup := protected.Group("/users")
		{
			// GET /v1/users/me
			usersGroup.GET("/me", userHandler.GetMe)
			// POST /v1/users/mywod - multipart upload of a myWOD backup
			usersGroup.POST("/mywod", mywodHandler.Import)
		}
		// GET /v1/workouts, GET /v1/movements - the caller's own records
		protected.GET("/workouts", workoutHandler.ListWorkouts)
		protected.GET("/movements", movementHandler.ListMovements)
	}
}

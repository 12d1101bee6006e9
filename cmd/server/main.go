package main

import (
	"alcyxob/wodbook/internal/api"
	"alcyxob/wodbook/internal/config"
	"alcyxob/wodbook/internal/metrics"
	"alcyxob/wodbook/internal/migration"
	"alcyxob/wodbook/internal/mywod"
	"alcyxob/wodbook/internal/repository/mongo"
	"alcyxob/wodbook/internal/service"
	"alcyxob/wodbook/internal/storage"
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// @title WODbook API
// @version 1.0
// @description API for athletes' workouts, movements and scores, including myWOD backup import.
// @BasePath /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	log.Println("Starting WODbook Server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
	}
	defer func() {
		log.Println("Disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Println("Database connection established.")

	// --- Ensure Indexes ---
	// Imports rely on the unique name indexes, so this is not done in the background.
	log.Println("Ensuring database indexes...")
	indexCtx, cancelIndexes := context.WithTimeout(context.Background(), 1*time.Minute)
	err = mongo.EnsureIndexes(indexCtx, appDB)
	cancelIndexes()
	if err != nil {
		log.Fatalf("FATAL: Could not create indexes: %v", err)
	}

	// --- Initialize Storage ---
	log.Println("Initializing file storage service...")
	fileStorage, err := storage.NewS3Storage(cfg.S3)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize S3 storage: %v", err)
	}
	avatarStore := storage.NewAvatarStore(fileStorage, cfg.S3.AvatarPrefix)

	// --- Initialize Repositories ---
	log.Println("Initializing repositories...")
	userRepo := mongo.NewMongoUserRepository(appDB)
	workoutRepo := mongo.NewMongoWorkoutRepository(appDB)
	movementRepo := mongo.NewMongoMovementRepository(appDB)

	// --- Initialize Services ---
	log.Println("Initializing services...")
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	userService := service.NewUserService(userRepo)
	workoutService := service.NewWorkoutService(workoutRepo)
	movementService := service.NewMovementService(movementRepo)

	// --- Metrics ---
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	migrationMetrics, err := metrics.NewMigrationMetrics(registry)
	if err != nil {
		log.Fatalf("FATAL: Failed to register migration metrics: %v", err)
	}

	// --- myWOD Import ---
	migrator := migration.NewMigrator(&migration.MigratorConfig{
		Users:     userService,
		Avatars:   avatarStore,
		Workouts:  workoutService,
		Movements: movementService,
		Logger:    slog.New(slog.NewTextHandler(os.Stderr, nil)),
	})
	importer := migration.NewImporter(mywod.NewExtractor(), migrator, migration.WithRecorder(migrationMetrics))

	// --- Initialize Gin Engine ---
	router := gin.Default() // Includes Logger and Recovery middleware
	router.MaxMultipartMemory = 8 << 20

	log.Println("Setting up API routes...")
	api.SetupRoutes(router, cfg.JWT.Secret, api.Services{
		Auth:      authService,
		Users:     userService,
		Workouts:  workoutService,
		Movements: movementService,
		Importer:  importer,
	}, api.MyWODHandlerConfig{
		Timeout:     cfg.Migration.Timeout,
		TempDir:     cfg.Migration.TempDir,
		MaxUploadMB: cfg.Migration.MaxUploadMB,
	}, registry)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:        cfg.Server.Address,
		Handler:     router,
		ReadTimeout: 60 * time.Second, // Backups can be large
		// Imports run up to migration.timeout before responding.
		WriteTimeout: cfg.Migration.Timeout + 30*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}

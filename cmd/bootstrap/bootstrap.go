package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"maternacare/config"
	deliveryHttp "maternacare/internal/delivery/http"
	"maternacare/internal/delivery/http/handler"
	"maternacare/internal/delivery/http/middleware"
	"maternacare/internal/infrastructure/identity"
	"maternacare/internal/infrastructure/kv"
	"maternacare/internal/repository"
	"maternacare/internal/seed"
	"maternacare/internal/usecase"
	"maternacare/pkg/jwt"
	"maternacare/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Store       kv.Store
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize KV store
	switch cfg.Store.Driver {
	case "redis":
		redisClient, err := kv.NewRedisClient(cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = redisClient
		app.Store = kv.NewRedisStore(redisClient)
	default:
		app.Store = kv.NewMemoryStore()
	}
	logrus.Infof("KV store initialized (%s)", cfg.Store.Driver)

	// Initialize all layers
	server, seeder := initializeServer(cfg, app.Store)
	app.Server = server

	// Seed initial data
	if err := seeder.Run(context.Background(), cfg); err != nil {
		return nil, fmt.Errorf("failed to seed data: %w", err)
	}

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, store kv.Store) (*http.Server, *seed.Seeder) {
	// Initialize token service and identity provider
	tokenService := jwt.NewTokenService(cfg.JWT)
	provider := identity.NewLocalProvider(store, tokenService)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository(store)
	motherRepo := repository.NewMotherRepository(store)
	clinicRepo := repository.NewClinicRepository(store)
	appointmentRepo := repository.NewAppointmentRepository(store)
	educationRepo := repository.NewEducationRepository(store)
	messageRepo := repository.NewMessageRepository(store)
	notificationRepo := repository.NewNotificationRepository(store)

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize usecases
	notificationUsecase := usecase.NewNotificationUsecase(log, notificationRepo)
	authUsecase := usecase.NewAuthUsecase(log, userRepo, motherRepo, clinicRepo, provider)
	pregnancyUsecase := usecase.NewPregnancyUsecase(log, motherRepo, appointmentRepo)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, appointmentRepo, clinicRepo, notificationUsecase)
	educationUsecase := usecase.NewEducationUsecase(log, educationRepo)
	messageUsecase := usecase.NewMessageUsecase(log, messageRepo, userRepo, notificationUsecase)
	adminUsecase := usecase.NewAdminUsecase(log, userRepo, motherRepo, clinicRepo, provider, notificationUsecase)
	clinicUsecase := usecase.NewClinicUsecase(log, userRepo, motherRepo, clinicRepo, appointmentRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	pregnancyHandler := handler.NewPregnancyHandler(pregnancyUsecase)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	educationHandler := handler.NewEducationHandler(educationUsecase, customValidator)
	messageHandler := handler.NewMessageHandler(messageUsecase, customValidator)
	notificationHandler := handler.NewNotificationHandler(notificationUsecase)
	adminHandler := handler.NewAdminHandler(adminUsecase, customValidator)
	clinicHandler := handler.NewClinicHandler(clinicUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(provider, userRepo)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		pregnancyHandler,
		appointmentHandler,
		educationHandler,
		messageHandler,
		notificationHandler,
		adminHandler,
		clinicHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	seeder := seed.NewSeeder(log, store, educationRepo, userRepo, provider)

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}, seeder
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections
func (app *App) Close() {
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	adminUseCase "github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/usecase/admin"
	authUseCase "github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/usecase/auth"
	budgetUseCase "github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/usecase/budget"
	transactionUseCase "github.com/viratsingh97/Budget-Advisor-virat-singh/internal/domain/usecase/transaction"

	"github.com/viratsingh97/Budget-Advisor-virat-singh/internal/infrastructure/adapter/api/handler"
	"github.com/viratsingh97/Budget-Advisor-virat-singh/internal/infrastructure/adapter/api/routes"
	"github.com/viratsingh97/Budget-Advisor-virat-singh/internal/infrastructure/adapter/database"
	"github.com/viratsingh97/Budget-Advisor-virat-singh/internal/infrastructure/adapter/database/migration"
	"github.com/viratsingh97/Budget-Advisor-virat-singh/internal/infrastructure/adapter/hasher"
	"github.com/viratsingh97/Budget-Advisor-virat-singh/internal/infrastructure/adapter/logger"
	"github.com/viratsingh97/Budget-Advisor-virat-singh/internal/infrastructure/adapter/repository"
	timeProvider "github.com/viratsingh97/Budget-Advisor-virat-singh/internal/infrastructure/adapter/time"
	"github.com/viratsingh97/Budget-Advisor-virat-singh/internal/infrastructure/adapter/token"
	"github.com/viratsingh97/Budget-Advisor-virat-singh/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	defer func() {
		_ = appLogger.Flush()
	}()

	// Setup database configuration
	dbConfig := &database.Config{
		Driver:          "postgres",
		Host:            cfg.Database.Host,
		Port:            database.ParsePort(cfg.Database.Port),
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Logger.Level,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      cfg.Database.RetryDelay,
	}

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	conn, err := database.NewConnection(dbConfig, appLogger)
	if err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer func() {
		_ = conn.Close()
	}()

	// Run migrations
	if err := migration.RunMigrations(conn.DB, appLogger); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize adapters behind the domain ports
	passwordHasher := hasher.NewBcryptHasher(cfg.Auth.BcryptCost)
	tokenManager := token.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, tp)

	// Seed the bootstrap admin account when configured
	err = migration.SeedAdminUser(
		context.Background(),
		conn.DB,
		passwordHasher,
		tp,
		cfg.Admin.Email,
		cfg.Admin.Password,
		appLogger,
	)
	if err != nil {
		appLogger.Error("Failed to seed admin user", map[string]any{
			"error": err.Error(),
		})
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(conn.DB, appLogger)
	transactionRepo := repository.NewTransactionRepository(conn.DB, appLogger)
	budgetRepo := repository.NewBudgetRepository(conn.DB, appLogger)

	// Initialize use cases
	authService := authUseCase.NewService(userRepo, tokenManager, passwordHasher, tp, appLogger)
	transactionService := transactionUseCase.NewUseCase(transactionRepo, tp, appLogger)
	budgetService := budgetUseCase.NewUseCase(budgetRepo, tp, appLogger)
	adminService := adminUseCase.NewUseCase(userRepo, passwordHasher, tp, appLogger)

	// Initialize API handlers
	authHandler := handler.NewAuthHandler(authService, appLogger)
	transactionHandler := handler.NewTransactionHandler(transactionService, appLogger)
	budgetHandler := handler.NewBudgetHandler(budgetService, appLogger)
	adminHandler := handler.NewAdminHandler(adminService, appLogger)

	// Initialize Gin router
	router := gin.New()

	// Setup middlewares
	routes.SetupMiddlewares(router, appLogger, cfg.CORS.AllowedOrigins)

	// Setup routes
	routes.SetupRoutes(router, authService, authHandler, transactionHandler, budgetHandler, adminHandler, appLogger)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

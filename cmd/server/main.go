package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"fintrack/internal/config"
	"fintrack/internal/database"
	"fintrack/internal/handlers"
	"fintrack/internal/middleware"
	"fintrack/internal/repositories"
	"fintrack/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// .env is optional; real deployments configure through the environment
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.Load()

	db, err := database.Initialize(cfg)
	if err != nil {
		slog.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	transactionRepo := repositories.NewTransactionRepository(db.DB)
	categoryRepo := repositories.NewCategoryRepository(db.DB)
	subscriptionRepo := repositories.NewSubscriptionRepository(db.DB)

	metrics := services.NewPrometheusMetrics()
	statisticsService := services.NewStatisticsService(transactionRepo, categoryRepo, metrics, nil)
	subscriptionService := services.NewSubscriptionService(subscriptionRepo, metrics)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.RateLimiterWithConfig(cfg.Server.RateLimitPerSecond, cfg.Server.RateLimitBurst))

	registerRoutes(e, db, transactionRepo, categoryRepo, subscriptionRepo, statisticsService, subscriptionService)

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	go func() {
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		slog.Info("starting server", "addr", addr, "env", cfg.Server.Environment)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}

func registerRoutes(
	e *echo.Echo,
	db *database.DB,
	transactionRepo repositories.TransactionRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	subscriptionRepo repositories.SubscriptionRepositoryInterface,
	statisticsService services.StatisticsServiceInterface,
	subscriptionService services.SubscriptionServiceInterface,
) {
	healthHandler := handlers.NewHealthCheckHandler(db.DB)
	statisticsHandler := handlers.NewStatisticsHandler(statisticsService)
	transactionHandler := handlers.NewTransactionHandler(transactionRepo, categoryRepo)
	categoryHandler := handlers.NewCategoryHandler(categoryRepo)
	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionRepo, subscriptionService)

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	api.GET("/statistics/balance", statisticsHandler.GetBalanceSummary)
	api.GET("/statistics/income", statisticsHandler.GetIncomeStatistics)
	api.GET("/statistics/transactions", statisticsHandler.GetTransactionStats)

	api.GET("/transactions", transactionHandler.ListTransactions)
	api.POST("/transactions", transactionHandler.CreateTransaction)
	api.GET("/transactions/:id", transactionHandler.GetTransaction)
	api.PUT("/transactions/:id", transactionHandler.UpdateTransaction)
	api.DELETE("/transactions/:id", transactionHandler.DeleteTransaction)

	api.GET("/categories", categoryHandler.ListCategories)
	api.POST("/categories", categoryHandler.CreateCategory)
	api.GET("/categories/:id", categoryHandler.GetCategory)
	api.PUT("/categories/:id", categoryHandler.UpdateCategory)
	api.DELETE("/categories/:id", categoryHandler.DeleteCategory)

	api.GET("/subscriptions", subscriptionHandler.ListSubscriptions)
	api.POST("/subscriptions", subscriptionHandler.CreateSubscription)
	api.GET("/subscriptions/:id", subscriptionHandler.GetSubscription)
	api.PUT("/subscriptions/:id", subscriptionHandler.UpdateSubscription)
	api.DELETE("/subscriptions/:id", subscriptionHandler.DeleteSubscription)
	api.POST("/subscriptions/post-due", subscriptionHandler.PostDueSubscriptions)
}

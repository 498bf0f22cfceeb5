package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/aps-intertrade/farmsight/docs"
	"github.com/aps-intertrade/farmsight/internal/inventory"
	invDelivery "github.com/aps-intertrade/farmsight/internal/inventory/delivery/http"
	invdomain "github.com/aps-intertrade/farmsight/internal/inventory/domain"
	"github.com/aps-intertrade/farmsight/internal/sales"
	salesDelivery "github.com/aps-intertrade/farmsight/internal/sales/delivery/http"
	salesdomain "github.com/aps-intertrade/farmsight/internal/sales/domain"
	"github.com/aps-intertrade/farmsight/internal/sales/usecase/command"
	"github.com/aps-intertrade/farmsight/kafka"
	"github.com/aps-intertrade/farmsight/pkg/database"
	"github.com/aps-intertrade/farmsight/pkg/logger"
	"github.com/aps-intertrade/farmsight/pkg/tracing"
)

func main() {
	// Initialize logger
	serviceName := getEnv("OTEL_SERVICE_NAME", "inventory-service")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)

	logLevel := getEnv("LOG_LEVEL", "info")
	logger.SetLevel(logLevel)

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", getEnv("ENVIRONMENT", "development")).
		Str("log_level", logLevel).
		Msg("Starting inventory service")

	// Initialize tracer
	tp, err := tracing.InitTracer(serviceName)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	// Load database configuration
	dbConfig := database.Config{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "farmsightdb"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	// Connect to database
	db, err := database.NewGormConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	// Run migrations
	if err := db.AutoMigrate(
		&invdomain.Item{},
		&invdomain.Category{},
		&invdomain.Supplier{},
		&salesdomain.Sale{},
	); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	logger.Logger.Info().Msg("Database initialized successfully")

	// Connect to Redis for dashboard caching
	redisClient := connectRedis()
	if redisClient != nil {
		defer redisClient.Close()
	}

	// Connect to Kafka for sale and stock alert events
	var publisher command.EventPublisher
	kafkaBrokers := strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ",")
	kafkaPublisher, err := kafka.NewPublisher(kafkaBrokers)
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Kafka unavailable, events disabled")
	} else {
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
	}

	// Initialize handlers with Wire DI
	handlers, err := inventory.InitializeHandlers(db, redisClient)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize inventory handlers")
	}

	saleHandler, err := sales.InitializeSaleHandler(db, publisher)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize sales handler")
	}

	logger.Logger.Info().Msg("Inventory handlers initialized")

	// Start HTTP server
	httpPort := getEnv("HTTP_PORT", "8082")
	server := buildHTTPServer(handlers, saleHandler, sqlDB, httpPort)

	go func() {
		logger.Logger.Info().
			Str("port", httpPort).
			Str("metrics_endpoint", "/metrics").
			Msg("HTTP server started")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Server shutdown failed")
	}
}

func buildHTTPServer(handlers *inventory.Handlers, saleHandler *salesDelivery.SaleHandler, db *sql.DB, port string) *http.Server {
	// Setup router
	router := mux.NewRouter()

	// Register all middlewares using middleware registration system
	middlewareConfig := invDelivery.DefaultMiddlewareConfig()
	invDelivery.RegisterMiddlewares(router, middlewareConfig)

	// Register routes
	handlers.Items.RegisterRoutes(router)
	handlers.Categories.RegisterRoutes(router)
	handlers.Suppliers.RegisterRoutes(router)
	saleHandler.RegisterRoutes(router)

	// Health check endpoints
	handlers.Items.RegisterHealthCheck(router, db)
	saleHandler.RegisterHealthCheck(router, db)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// Swagger documentation
	invDelivery.RegisterSwaggerDocs(router, httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	return &http.Server{
		Addr:    ":" + port,
		Handler: invDelivery.SetupCORS(middlewareConfig)(router),
	}
}

func connectRedis() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Logger.Warn().Err(err).Msg("Redis unavailable, dashboard caching disabled")
		client.Close()
		return nil
	}

	logger.Logger.Info().Msg("Redis connected")
	return client
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

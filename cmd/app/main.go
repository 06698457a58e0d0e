package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"ordering/cmd"
	httpin "ordering/internal/adapters/in/http"
	"ordering/internal/adapters/out/postgres"
	"ordering/internal/adapters/out/postgres/menurepo"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	configs := getConfigs()

	gormDB, err := gorm.Open(gormpg.Open(configs.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err := postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if configs.MenuSeed {
		seeded, err := menurepo.NewGormMenuRepository(gormDB).SeedIfEmpty(ctx, menurepo.DefaultCatalog())
		if err != nil {
			log.Fatalf("Error seeding menu: %v", err)
		}
		logger.Info("Menu seeded", "items", seeded)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, logger)
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error("Failed to close connections", "error", err)
		}
	}()
	if err := app.Ping(ctx); err != nil {
		logger.Warn("Dependency is not reachable", "error", err)
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, app, configs, logger)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	config := cmd.Config{
		HTTPPort:        envOr("HTTP_PORT", "8080"),
		DBHost:          envOr("DB_HOST", "localhost"),
		DBPort:          envOr("DB_PORT", "5432"),
		DBUser:          envOr("DB_USER", "postgres"),
		DBPassword:      os.Getenv("DB_PASSWORD"),
		DBName:          envOr("DB_NAME", "ordering"),
		DBSslMode:       envOr("DB_SSLMODE", "disable"),
		RedisAddr:       envOr("REDIS_ADDR", "localhost:6379"),
		RabbitMQURL:     os.Getenv("RABBITMQ_URL"),
		UPIPayee:        envOr("UPI_PAYEE", cmd.DefaultUPIPayee),
		UPIPayeeName:    envOr("UPI_PAYEE_NAME", cmd.DefaultUPIPayeeName),
		MenuSeed:        envBool("MENU_SEED"),
		EventBufferSize: envInt("EVENT_BUFFER_SIZE", 0),
		ShutdownTimeout: 10 * time.Second,
	}
	return config
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func envBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}

func envInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) {
	e := httpin.NewRouter(app.CreateServer(), logger)
	// event streams end when ctx is cancelled instead of holding up shutdown
	e.Server.BaseContext = func(net.Listener) context.Context { return ctx }

	go func() {
		logger.Info("HTTP server started", "port", configs.HTTPPort)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), configs.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
}

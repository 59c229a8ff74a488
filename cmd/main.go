package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Riloax/weekplanner/internal/app"
	"github.com/Riloax/weekplanner/internal/config"
	"github.com/Riloax/weekplanner/internal/domain"
	croninfra "github.com/Riloax/weekplanner/internal/infra/cron"
	"github.com/Riloax/weekplanner/internal/infra/handler"
	"github.com/Riloax/weekplanner/internal/infra/pubsub"
	"github.com/Riloax/weekplanner/internal/infra/repository"
	"github.com/Riloax/weekplanner/internal/infra/watch"
	"github.com/Riloax/weekplanner/internal/observability/logging"
	"github.com/Riloax/weekplanner/internal/observability/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	setupLogger(cfg.Log)

	db, err := initDatabase(cfg.Database)
	if err != nil {
		slog.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}

	window, err := buildWindow(cfg.Schedule)
	if err != nil {
		slog.Error("invalid scheduling window", "error", err)
		os.Exit(1)
	}

	location, err := loadLocation(cfg.Schedule.Timezone)
	if err != nil {
		slog.Error("invalid schedule timezone", "error", err)
		os.Exit(1)
	}

	reminderRepo := repository.NewReminderRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	publisher, watcher := initEventing(cfg.NATS, app.NewSnapshotUseCase(reminderRepo, taskRepo))
	if publisher != nil {
		defer publisher.Close()
	}

	reminderUseCase := app.NewReminderUseCase(reminderRepo, publisher)
	taskUseCase := app.NewTaskUseCase(taskRepo, reminderRepo, publisher)
	scheduleUseCase := app.NewScheduleUseCase(reminderRepo, taskRepo, publisher, window)
	snapshotUseCase := app.NewSnapshotUseCase(reminderRepo, taskRepo)

	runner := croninfra.NewRunner(location, scheduleUseCase, reminderRepo)
	if _, err := runner.ScheduleDailyRun(cfg.Schedule.DailyAt); err != nil {
		slog.Error("failed to register daily scheduling pass", "error", err)
		os.Exit(1)
	}

	runner.Start()
	defer runner.Stop()

	slog.Info("daily scheduling pass registered",
		"at", cfg.Schedule.DailyAt,
		"timezone", cfg.Schedule.Timezone,
	)

	router := setupRouter(
		handler.NewReminderHandler(reminderUseCase),
		handler.NewTaskHandler(taskUseCase),
		handler.NewScheduleHandler(scheduleUseCase),
		handler.NewSnapshotHandler(snapshotUseCase, watcher),
	)

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("starting server", "address", cfg.Server.Address())

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server exited properly")
}

func initDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{
		Logger: logging.NewGormLogger(200 * time.Millisecond),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.AutoMigrate(&repository.ReminderModel{}, &repository.TaskModel{}); err != nil {
		return nil, err
	}

	return db, nil
}

func buildWindow(cfg config.ScheduleConfig) (domain.Window, error) {
	return domain.NewWindow(cfg.WindowStart, cfg.WindowEnd)
}

func loadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}

	return time.LoadLocation(name)
}

// initEventing connects the NATS transport when configured. Without it the
// service still runs: change events are skipped and the snapshot stream
// endpoint reports unavailable.
func initEventing(cfg config.NATSConfig, snapshots app.SnapshotUseCase) (pubsub.Publisher, *watch.Watcher) {
	if cfg.URL == "" {
		slog.Info("NATS_URL not set, change events disabled")

		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	publisher, err := pubsub.NewNATSPublisherWithStream(ctx, pubsub.NATSPublisherConfig{URL: cfg.URL})
	if err != nil {
		slog.Error("failed to connect NATS publisher, change events disabled", "error", err)

		return nil, nil
	}

	subscriber, err := pubsub.NewNATSSubscriber(pubsub.NATSPublisherConfig{URL: cfg.URL})
	if err != nil {
		slog.Error("failed to connect NATS subscriber, snapshot stream disabled", "error", err)

		return publisher, nil
	}

	return publisher, watch.NewWatcher(subscriber, snapshots)
}

func setupRouter(
	reminderHandler *handler.ReminderHandler,
	taskHandler *handler.TaskHandler,
	scheduleHandler *handler.ScheduleHandler,
	snapshotHandler *handler.SnapshotHandler,
) *gin.Engine {
	router := gin.New()
	router.Use(middleware.PanicRecoveryGin())
	router.Use(middleware.Gin(middleware.GinConfig{
		SkipPaths:  []string{"/ping"},
		TracerName: "weekplanner",
	}))

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	v1 := router.Group("/api/v1")
	v1.Use(handler.RequireUser())
	reminderHandler.RegisterRoutes(v1)
	taskHandler.RegisterRoutes(v1)
	scheduleHandler.RegisterRoutes(v1)
	snapshotHandler.RegisterRoutes(v1)

	return router
}

func setupLogger(cfg config.LogConfig) {
	var level slog.Level

	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

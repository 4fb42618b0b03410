package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"task-sync-scheduler/config"
	_ "task-sync-scheduler/docs" // Swagger docs
	"task-sync-scheduler/internal/httpserver"
	schedulerHTTP "task-sync-scheduler/internal/scheduler/delivery/http"
	calendarRepo "task-sync-scheduler/internal/scheduler/repository/gcalendar"
	tasksRepo "task-sync-scheduler/internal/scheduler/repository/gtasks"
	"task-sync-scheduler/internal/scheduler/usecase"
	"task-sync-scheduler/pkg/gcalendar"
	"task-sync-scheduler/pkg/gtasks"
	"task-sync-scheduler/pkg/log"
)

// @title       Task Sync Scheduler API
// @description Deadline-aware task allocation: free calendar slots in, scheduled Google Tasks out.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Task Sync Scheduler...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Calendar ID: %s", cfg.Google.CalendarID)

	// 3. Google API clients
	calendarClient, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.Google.CredentialsPath)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize Google Calendar client: %v", err)
		logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate credentials")
		return
	}

	tasksClient, err := gtasks.NewClientFromCredentialsFile(ctx, cfg.Google.CredentialsPath)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize Google Tasks client: %v", err)
		return
	}

	// 4. Scheduler domain
	capacitySource, err := calendarRepo.New(calendarClient, cfg.Google.CalendarID, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize capacity source: %v", err)
		return
	}
	taskSink := tasksRepo.New(tasksClient, logger)

	schedulerUC := usecase.New(logger, capacitySource, taskSink, usecase.Config{
		HorizonDays:     cfg.Scheduler.HorizonDays,
		ListTitle:       cfg.Scheduler.ListTitle,
		DueHour:         cfg.Scheduler.DueHour,
		Timezone:        cfg.Google.Timezone,
		WriteWorkers:    cfg.Scheduler.WriteWorkers,
		WritesPerSecond: cfg.Scheduler.WritesPerSecond,
	})

	schedulerHandler := schedulerHTTP.New(logger, schedulerUC)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		SchedulerHandler: schedulerHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

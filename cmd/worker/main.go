package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"marketing-server/internal/config"
	"marketing-server/internal/jobs"
	"marketing-server/internal/jobs/workers"
	"marketing-server/internal/observability"
	"marketing-server/internal/store"

	"github.com/hibiken/asynq"
)

func main() {
	logger := observability.NewLogger()
	ctx := context.Background()

	logger.Info(ctx, "Starting background worker server...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	dataStore, err := store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer dataStore.Close()

	redisOpt := jobs.RedisOpt(cfg.Redis)

	// Initialize workers
	statusWorker := workers.NewStatusWorker(dataStore, cfg.Launch.Timezone, logger)

	srv := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				jobs.QueueDefault: 3,
				jobs.QueueLow:     1,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				logger.Error(ctx, fmt.Sprintf("task %s failed: %v", task.Type(), err), err)
			}),
			RetryDelayFunc: asynq.DefaultRetryDelayFunc,
			Logger:         &asynqLogger{logger: logger},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(jobs.TypeCampaignStatusSweep, statusWorker.ProcessStatusSweepTask)

	// Sweep hourly so status changes land within an hour of midnight in the schedule timezone
	scheduler := asynq.NewScheduler(
		redisOpt,
		&asynq.SchedulerOpts{
			Logger:   &asynqLogger{logger: logger},
			Location: cfg.Launch.Timezone,
		},
	)

	sweepTask, err := jobs.NewStatusSweepTask(jobs.StatusSweepJobPayload{})
	if err != nil {
		log.Fatalf("Failed to create status sweep task: %v", err)
	}
	if _, err := scheduler.Register(jobs.StatusSweepSchedule, sweepTask); err != nil {
		logger.Error(ctx, "failed to register status sweep task", err)
	}

	if err := scheduler.Start(); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}
	defer scheduler.Shutdown()

	// Catch up immediately instead of waiting for the first tick
	jobClient := jobs.NewClient(cfg.Redis, logger)
	if err := jobClient.EnqueueStatusSweep(ctx, jobs.StatusSweepJobPayload{}); err != nil {
		logger.Error(ctx, "failed to enqueue startup status sweep", err)
	}
	jobClient.Close()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info(ctx, fmt.Sprintf("Worker server started on Redis: %s", cfg.Redis.Addr))
		if err := srv.Run(mux); err != nil {
			log.Fatalf("Failed to run server: %v", err)
		}
	}()

	<-sigChan
	logger.Info(ctx, "Shutting down worker server...")

	srv.Shutdown()
	logger.Info(ctx, "Worker server stopped")
}

// asynqLogger adapts observability.Logger to asynq.Logger interface
type asynqLogger struct {
	logger *observability.Logger
}

func (l *asynqLogger) Debug(args ...interface{}) {
	l.logger.Debug(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Info(args ...interface{}) {
	l.logger.Info(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Warn(args ...interface{}) {
	l.logger.Warn(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Error(args ...interface{}) {
	l.logger.Error(context.Background(), fmt.Sprint(args...), nil)
}

func (l *asynqLogger) Fatal(args ...interface{}) {
	l.logger.Error(context.Background(), fmt.Sprint(args...), nil)
	os.Exit(1)
}

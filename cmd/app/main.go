package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/RotationBot_Go/internal/bootstrap"
	"github.com/osse101/RotationBot_Go/internal/config"
	"github.com/osse101/RotationBot_Go/internal/database"
	"github.com/osse101/RotationBot_Go/internal/scheduler"
	"github.com/osse101/RotationBot_Go/internal/server"
	"github.com/osse101/RotationBot_Go/internal/sweep"
	"github.com/osse101/RotationBot_Go/internal/worker"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := config.ValidateEnv(); err != nil {
		log.Fatalf("Environment validation failed: %v", err)
	}

	bootstrap.SetupLogger(cfg)

	dbPool, err := database.NewPool(cfg.GetDBConnString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	_, publisher, deadLetter, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize event system: %v", err)
	}

	repos := bootstrap.InitializeRepositories(dbPool)
	services := bootstrap.InitializeServices(cfg, repos, publisher)

	pool := worker.NewPool(worker.DefaultWorkerCount, worker.DefaultQueueSize)
	pool.Start()

	sched := scheduler.New(pool)
	sched.Schedule(cfg.SweepInterval, sweep.NewJob(services.Sweep))

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, server.Deps{
		DBPool:    dbPool,
		Fetcher:   services.Fetcher,
		Engine:    services.Engine,
		ResetTime: services.ResetTime,
		Identity:  services.Identity,
		Lookback:  services.Lookback,
	})

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server:     srv,
		Scheduler:  sched,
		WorkerPool: pool,
		DeadLetter: deadLetter,
	})
}

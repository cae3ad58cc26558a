package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/RotationBot_Go/internal/event"
	"github.com/osse101/RotationBot_Go/internal/scheduler"
	"github.com/osse101/RotationBot_Go/internal/server"
	"github.com/osse101/RotationBot_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown
type ShutdownComponents struct {
	Server     *server.Server
	Scheduler  *scheduler.Scheduler
	WorkerPool *worker.Pool
	DeadLetter *event.DeadLetterWriter
}

// GracefulShutdown stops the application components in order:
// 1. HTTP server (stop accepting new requests)
// 2. Scheduler (stop producing sweep ticks)
// 3. Worker pool (drain the in-flight tick)
// 4. Dead-letter writer (close the file once nothing can write to it)
//
// Errors during shutdown are logged but do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if err := components.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}
	if components.WorkerPool != nil {
		components.WorkerPool.Stop()
	}

	if components.DeadLetter != nil {
		if err := components.DeadLetter.Close(); err != nil {
			slog.Error("Dead-letter writer close failed", "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}

package sweep

import (
	"context"
	"fmt"

	"github.com/osse101/RotationBot_Go/internal/logger"
	"github.com/osse101/RotationBot_Go/internal/metrics"
)

// Job adapts the sweep service to the worker pool. A tick that fails or
// panics is reported and abandoned; the next scheduled tick starts clean.
type Job struct {
	svc Service
}

// NewJob creates a worker job running one sweep tick per invocation
func NewJob(svc Service) *Job {
	return &Job{svc: svc}
}

// Process runs a single sweep tick
func (j *Job) Process(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			metrics.SweepTickErrors.Inc()
			err = fmt.Errorf("sweep tick panicked: %v", r)
		}
	}()

	if err := j.svc.Tick(ctx); err != nil {
		logger.FromContext(ctx).Error("Sweep tick failed", "error", err)
		return err
	}
	return nil
}

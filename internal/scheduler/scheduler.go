package scheduler

import (
	"sync"
	"time"

	"github.com/osse101/RotationBot_Go/internal/worker"
)

// Scheduler enqueues jobs to a worker pool at fixed intervals
type Scheduler struct {
	workerPool *worker.Pool
	quit       chan struct{}
	wg         sync.WaitGroup
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule registers a job to run at a fixed interval. A tick whose job
// is still queued is dropped rather than stacked, so a slow run cannot
// pile up duplicates.
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.workerPool.TryEnqueue(job)
			case <-s.quit:
				return
			}
		}
	}()
}

// Stop stops all scheduled jobs
func (s *Scheduler) Stop() {
	close(s.quit)
	s.wg.Wait()
}

package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/monocle-dev/rentals/internal/logging"
	"github.com/monocle-dev/rentals/internal/metrics"
)

var ErrStopped = errors.New("scheduler stopped")

// Job is a background task run on a fixed interval.
type Job struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) error
}

type Scheduler struct {
	jobs   map[string]*scheduledJob // job name -> job
	mu     sync.RWMutex
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	logger logging.Logger
}

type scheduledJob struct {
	job    Job
	cancel context.CancelFunc
}

// NewScheduler initializes a new Scheduler instance
func NewScheduler(logger logging.Logger) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		jobs:   make(map[string]*scheduledJob),
		ctx:    ctx,
		cancel: cancel,
		logger: logger,
	}
}

// Stop cancels every job and waits for running ones to return.
func (s *Scheduler) Stop() {
	s.cancel()

	s.mu.Lock()
	for _, j := range s.jobs {
		j.cancel()
	}
	s.jobs = make(map[string]*scheduledJob)
	s.mu.Unlock()

	s.wg.Wait()
	s.logger.Info(context.Background(), "Scheduler stopped")
}

// Add starts job with an immediate run. A job with the same name is replaced.
func (s *Scheduler) Add(job Job) error {
	if job.Interval <= 0 {
		return fmt.Errorf("job %q: interval must be positive, got %s", job.Name, job.Interval)
	}
	if job.Run == nil {
		return fmt.Errorf("job %q: missing run function", job.Name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ctx.Err() != nil {
		return fmt.Errorf("job %q: %w", job.Name, ErrStopped)
	}

	if existing, exists := s.jobs[job.Name]; exists {
		existing.cancel()
	}

	jobCtx, jobCancel := context.WithCancel(s.ctx)
	s.jobs[job.Name] = &scheduledJob{job: job, cancel: jobCancel}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.execute(jobCtx, job)
		s.run(jobCtx, job)
	}()

	s.logger.Debug(context.Background(), "Added job", "job", job.Name, "interval", job.Interval.String())

	return nil
}

func (s *Scheduler) run(ctx context.Context, job Job) {
	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.execute(ctx, job)
		}
	}
}

func (s *Scheduler) execute(ctx context.Context, job Job) {
	if ctx.Err() != nil {
		return
	}

	start := time.Now()
	err := job.Run(ctx)

	outcome := "ok"
	if err != nil {
		outcome = "error"
		s.logger.Warn(ctx, "Job failed", "job", job.Name, "error", err)
	}

	metrics.RecordJob(job.Name, outcome, time.Since(start))
}

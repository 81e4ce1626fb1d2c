package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Job represents a background job.
type Job interface {
	Name() string
	Execute(ctx context.Context) error
}

// Scheduler manages and executes background jobs on fixed intervals.
type Scheduler struct {
	jobs    map[string]*scheduledJob
	mu      sync.Mutex
	logger  *slog.Logger
	running bool
	ctx     context.Context
	cancel  context.CancelFunc
}

type scheduledJob struct {
	job      Job
	interval time.Duration
}

// NewScheduler creates a new job scheduler.
func NewScheduler(logger *slog.Logger) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		jobs:   make(map[string]*scheduledJob),
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}
}

// AddJob registers a job to run every interval.
func (s *Scheduler) AddJob(job Job, interval time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobs[job.Name()] = &scheduledJob{job: job, interval: interval}
}

// Start launches all registered jobs.
func (s *Scheduler) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	jobs := make([]*scheduledJob, 0, len(s.jobs))
	for _, job := range s.jobs {
		jobs = append(jobs, job)
	}
	s.mu.Unlock()

	for _, scheduled := range jobs {
		go s.runJob(scheduled)
	}

	s.logger.Info("job scheduler started", slog.Int("jobs", len(jobs)))
}

// Stop cancels all running jobs.
func (s *Scheduler) Stop() {
	s.cancel()

	s.mu.Lock()
	s.running = false
	s.mu.Unlock()

	s.logger.Info("job scheduler stopped")
}

func (s *Scheduler) runJob(scheduled *scheduledJob) {
	ticker := time.NewTicker(scheduled.interval)
	defer ticker.Stop()

	s.logger.Info("starting job",
		slog.String("name", scheduled.job.Name()),
		slog.Duration("interval", scheduled.interval),
	)

	for {
		select {
		case <-ticker.C:
			s.executeJob(scheduled.job)
		case <-s.ctx.Done():
			return
		}
	}
}

func (s *Scheduler) executeJob(job Job) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("job panicked",
				slog.String("name", job.Name()),
				slog.Any("panic", r),
			)
		}
	}()

	start := time.Now()
	if err := job.Execute(s.ctx); err != nil {
		s.logger.Error("job failed",
			slog.String("name", job.Name()),
			slog.String("error", err.Error()),
			slog.Duration("elapsed", time.Since(start)),
		)
		return
	}

	s.logger.Debug("job completed",
		slog.String("name", job.Name()),
		slog.Duration("elapsed", time.Since(start)),
	)
}

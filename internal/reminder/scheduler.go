package reminder

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

var (
	ErrScanInProgress   = errors.New("reminder scan already in progress")
	ErrSchedulerStopped = errors.New("reminder scheduler stopped")
)

// Clock returns the current time. Tests inject a fixed one.
type Clock func() time.Time

type Runner interface {
	Scan(ctx context.Context, now time.Time) (Summary, error)
}

// Scheduler runs a Runner on a cron schedule in a fixed zone. At most one scan
// runs at a time, whether it was started by cron or by RunNow.
type Scheduler struct {
	runner   Runner
	schedule cron.Schedule
	cron     *cron.Cron
	loc      *time.Location
	clock    Clock
	timeout  time.Duration
	logger   *log.Logger

	running sync.Mutex
	base    context.Context
	cancel  context.CancelFunc
}

type Option func(*Scheduler)

func WithClock(clock Clock) Option {
	return func(s *Scheduler) { s.clock = clock }
}

func WithLogger(logger *log.Logger) Option {
	return func(s *Scheduler) { s.logger = logger }
}

// WithTimeout bounds a single scan. Zero means no bound.
func WithTimeout(d time.Duration) Option {
	return func(s *Scheduler) { s.timeout = d }
}

// NewScheduler parses spec as a standard 5-field cron expression evaluated in loc.
func NewScheduler(runner Runner, spec string, loc *time.Location, opts ...Option) (*Scheduler, error) {
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("parse reminder schedule %q: %w", spec, err)
	}
	if loc == nil {
		loc = time.UTC
	}

	s := &Scheduler{
		runner:   runner,
		schedule: schedule,
		loc:      loc,
		clock:    time.Now,
		logger:   log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.base, s.cancel = context.WithCancel(context.Background())

	cronLogger := cron.PrintfLogger(s.logger)
	s.cron = cron.New(
		cron.WithLocation(loc),
		cron.WithLogger(cronLogger),
		cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
	)
	s.cron.Schedule(schedule, cron.FuncJob(s.runScheduled))
	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Printf("reminder scheduler started, next scan at %s", s.NextAfter(s.clock()).Format(time.RFC3339))
}

// Stop prevents new scans and waits for a running one. If ctx expires first the
// running scan is cancelled; its unwritten reminders are picked up by the next run.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.cron.Stop()

	idle := make(chan struct{})
	go func() {
		s.running.Lock()
		s.cancel()
		s.running.Unlock()
		close(idle)
	}()

	select {
	case <-idle:
		s.logger.Println("reminder scheduler stopped")
		return nil
	case <-ctx.Done():
		s.cancel()
		s.logger.Println("reminder scheduler stopped, in-flight scan cancelled")
		return ctx.Err()
	}
}

// RunNow scans immediately. It returns ErrScanInProgress instead of waiting when
// another scan holds the run lock.
func (s *Scheduler) RunNow(ctx context.Context) (Summary, error) {
	return s.run(ctx)
}

// NextAfter returns the first trigger time strictly after t.
func (s *Scheduler) NextAfter(t time.Time) time.Time {
	return s.schedule.Next(t.In(s.loc))
}

func (s *Scheduler) runScheduled() {
	_, err := s.run(s.base)
	switch {
	case errors.Is(err, ErrScanInProgress):
		s.logger.Println("reminder scan skipped: previous scan still running")
	case errors.Is(err, ErrSchedulerStopped):
	case err != nil:
		s.logger.Printf("reminder scan failed: %v", err)
	}
}

func (s *Scheduler) run(ctx context.Context) (Summary, error) {
	if !s.running.TryLock() {
		return Summary{}, ErrScanInProgress
	}
	defer s.running.Unlock()

	if s.base.Err() != nil {
		return Summary{}, ErrSchedulerStopped
	}

	var cancel context.CancelFunc
	if s.timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}
	defer cancel()
	stopOnShutdown := context.AfterFunc(s.base, cancel)
	defer stopOnShutdown()

	return s.runner.Scan(ctx, s.clock())
}

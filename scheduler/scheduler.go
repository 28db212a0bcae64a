// Package scheduler runs the daily edition at a fixed local time.
package scheduler

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"sync"
	"time"

	"deep-summarizer/logger"
	"deep-summarizer/trace"

	"github.com/robfig/cron/v3"
)

var clock = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):([0-5][0-9])$`)

// Job is run once per day. The context is cancelled when the scheduler stops.
type Job func(ctx context.Context) error

type Scheduler struct {
	cron    *cron.Cron
	loc     *time.Location
	timeout time.Duration

	mu      sync.Mutex
	entryID cron.EntryID
	ctx     context.Context
	cancel  context.CancelFunc
}

// New builds a scheduler for timezone. timeout bounds a single run; <= 0
// means no bound.
func New(timezone string, timeout time.Duration) (*Scheduler, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", timezone, err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		// A tick that arrives while a run is in progress is dropped.
		cron:    cron.New(cron.WithLocation(loc), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		loc:     loc,
		timeout: timeout,
		ctx:     ctx,
		cancel:  cancel,
	}, nil
}

// Daily schedules job at at ("HH:MM"), replacing any earlier job.
func (s *Scheduler) Daily(at, name string, job Job) error {
	spec, err := DailySpec(at)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.entryID != 0 {
		s.cron.Remove(s.entryID)
	}
	id, err := s.cron.AddFunc(spec, func() { s.run(name, job) })
	if err != nil {
		return fmt.Errorf("add cron job: %w", err)
	}
	s.entryID = id
	return nil
}

func (s *Scheduler) run(name string, job Job) {
	ctx := trace.StartJob(s.ctx, name)
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	logger.InfoWithFields("scheduled job started", logger.WithTrace(ctx, nil))
	if err := job(ctx); err != nil {
		logger.ErrorWithFields("scheduled job failed", logger.WithTrace(ctx, logger.Fields{"error": err.Error(), "duration": time.Since(start).String()}))
		return
	}
	logger.InfoWithFields("scheduled job finished", logger.WithTrace(ctx, logger.Fields{"duration": time.Since(start).String()}))
}

// Next is the time of the next run, or the zero time when nothing is scheduled.
func (s *Scheduler) Next() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.entryID == 0 {
		return time.Time{}
	}
	return s.cron.Entry(s.entryID).Next
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop cancels running jobs and waits for them to return.
func (s *Scheduler) Stop() {
	s.cancel()
	<-s.cron.Stop().Done()
}

// DailySpec converts "HH:MM" into a five-field cron spec.
func DailySpec(at string) (string, error) {
	m := clock.FindStringSubmatch(at)
	if m == nil {
		return "", fmt.Errorf("invalid time %q, expected HH:MM", at)
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	return fmt.Sprintf("%d %d * * *", minute, hour), nil
}

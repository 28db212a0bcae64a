package llm

import (
	"context"
	"sync"
	"time"

	"deep-summarizer/config"
)

// QuotaLimiter enforces a per-minute pacing and a per-day cap on LLM calls.
// Counters are in memory and reset on restart.
type QuotaLimiter struct {
	mu sync.Mutex

	dailyLimit int
	usedToday  int
	dayKey     string

	interval time.Duration
	lastCall time.Time

	now func() time.Time
}

// NewQuotaLimiter builds a limiter from llm.quota. Values <= 0 disable that limit.
func NewQuotaLimiter(q config.QuotaConfig) *QuotaLimiter {
	requestsPerDay := q.RequestsPerDay
	if requestsPerDay < 0 {
		requestsPerDay = 0
	}

	var interval time.Duration
	if q.RequestsPerMinute > 0 {
		interval = time.Minute / time.Duration(q.RequestsPerMinute)
	}

	return &QuotaLimiter{
		dailyLimit: requestsPerDay,
		interval:   interval,
		now:        time.Now,
	}
}

// WaitAndReserve blocks until a call may be made and reserves it.
// It returns ErrQuotaExceeded when the daily budget is spent, and the context
// error if ctx ends while waiting.
func (l *QuotaLimiter) WaitAndReserve(ctx context.Context) error {
	for {
		l.mu.Lock()

		now := l.now().UTC()
		todayKey := now.Format("2006-01-02")
		if l.dayKey != todayKey {
			l.dayKey = todayKey
			l.usedToday = 0
		}

		if l.dailyLimit > 0 && l.usedToday >= l.dailyLimit {
			l.mu.Unlock()
			return ErrQuotaExceeded
		}

		var delay time.Duration
		if l.interval > 0 && !l.lastCall.IsZero() {
			delay = l.lastCall.Add(l.interval).Sub(now)
		}

		if delay <= 0 {
			l.usedToday++
			l.lastCall = now
			l.mu.Unlock()
			return nil
		}

		l.mu.Unlock()
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// QuotaClient applies a QuotaLimiter in front of another Client.
type QuotaClient struct {
	next    Client
	limiter *QuotaLimiter
}

func NewQuotaClient(next Client, limiter *QuotaLimiter) *QuotaClient {
	return &QuotaClient{next: next, limiter: limiter}
}

func (c *QuotaClient) Generate(ctx context.Context, req Request) (*Response, error) {
	if err := c.limiter.WaitAndReserve(ctx); err != nil {
		return nil, err
	}
	return c.next.Generate(ctx, req)
}

package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"deep-summarizer/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClient struct{ calls int }

func (s *stubClient) Generate(context.Context, Request) (*Response, error) {
	s.calls++
	return &Response{Text: "ok"}, nil
}

func TestQuotaLimiterDailyLimit(t *testing.T) {
	l := NewQuotaLimiter(config.QuotaConfig{RequestsPerDay: 2})
	ctx := context.Background()

	require.NoError(t, l.WaitAndReserve(ctx))
	require.NoError(t, l.WaitAndReserve(ctx))
	assert.True(t, errors.Is(l.WaitAndReserve(ctx), ErrQuotaExceeded))
}

func TestQuotaLimiterResetsOnNewDay(t *testing.T) {
	day := time.Date(2025, 3, 1, 23, 0, 0, 0, time.UTC)
	l := NewQuotaLimiter(config.QuotaConfig{RequestsPerDay: 1})
	l.now = func() time.Time { return day }

	require.NoError(t, l.WaitAndReserve(context.Background()))
	assert.ErrorIs(t, l.WaitAndReserve(context.Background()), ErrQuotaExceeded)

	day = day.Add(2 * time.Hour)
	assert.NoError(t, l.WaitAndReserve(context.Background()))
}

func TestQuotaLimiterHonoursContext(t *testing.T) {
	l := NewQuotaLimiter(config.QuotaConfig{RequestsPerMinute: 1})
	require.NoError(t, l.WaitAndReserve(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, l.WaitAndReserve(ctx), context.DeadlineExceeded)
}

func TestQuotaClientStopsCallingWhenExhausted(t *testing.T) {
	stub := &stubClient{}
	c := NewQuotaClient(stub, NewQuotaLimiter(config.QuotaConfig{RequestsPerDay: 1}))

	_, err := c.Generate(context.Background(), Request{Prompt: "a"})
	require.NoError(t, err)
	_, err = c.Generate(context.Background(), Request{Prompt: "b"})
	assert.ErrorIs(t, err, ErrQuotaExceeded)
	assert.Equal(t, 1, stub.calls)
}

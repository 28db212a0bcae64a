package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deep-summarizer/trace"
)

func TestDailySpec(t *testing.T) {
	testCases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "06:00", want: "0 6 * * *"},
		{in: "6:05", want: "5 6 * * *"},
		{in: "23:59", want: "59 23 * * *"},
		{in: "24:00", wantErr: true},
		{in: "7", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := DailySpec(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNewRejectsUnknownTimezone(t *testing.T) {
	_, err := New("Mars/Olympus_Mons", 0)
	assert.Error(t, err)
}

func TestNextRunIsInConfiguredTimezone(t *testing.T) {
	s, err := New("America/Los_Angeles", time.Minute)
	require.NoError(t, err)
	assert.True(t, s.Next().IsZero())

	require.NoError(t, s.Daily("06:30", "edition", func(context.Context) error { return nil }))
	s.Start()
	defer s.Stop()

	next := s.Next().In(s.loc)
	assert.Equal(t, 6, next.Hour())
	assert.Equal(t, 30, next.Minute())
	assert.True(t, next.After(time.Now()))
}

func TestDailyRejectsBadTime(t *testing.T) {
	s, err := New("UTC", 0)
	require.NoError(t, err)
	assert.Error(t, s.Daily("noon", "edition", func(context.Context) error { return nil }))
}

func TestRunStartsJobTrace(t *testing.T) {
	s, err := New("UTC", time.Minute)
	require.NoError(t, err)

	var ids []string
	job := func(ctx context.Context) error {
		assert.Equal(t, "daily-briefing", trace.JobFromContext(ctx))
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
		ids = append(ids, trace.RequestIDFromContext(ctx))
		return nil
	}
	s.run("daily-briefing", job)
	s.run("daily-briefing", job)

	require.Len(t, ids, 2)
	assert.Len(t, ids[0], 32)
	assert.NotEqual(t, ids[0], ids[1])
}

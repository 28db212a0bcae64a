package logger

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"deep-summarizer/trace"
)

func TestRedactQuery(t *testing.T) {
	q := url.Values{
		"secret":  {"s3cret"},
		"preview": {"1"},
		"Key":     {"AIza"},
		"empty":   {},
	}
	got := RedactQuery(q)

	assert.Equal(t, map[string][]string{
		"secret":  {"***"},
		"preview": {"1"},
		"Key":     {"***"},
	}, got)
	assert.Equal(t, "s3cret", q.Get("secret"))
}

func TestWithTrace(t *testing.T) {
	ctx := trace.StartJob(context.Background(), "daily-briefing")
	trace.NextSpanID(ctx)

	fields := WithTrace(ctx, Fields{"title": "The Reno Times"})
	assert.Equal(t, trace.RequestIDFromContext(ctx), fields["request_id"])
	assert.Equal(t, "1", fields["span_id"])
	assert.Equal(t, "daily-briefing", fields["job"])
	assert.Equal(t, "The Reno Times", fields["title"])

	fields = WithTrace(context.Background(), nil)
	assert.Empty(t, fields)

	fields = WithTrace(ctx, Fields{"request_id": "given"})
	assert.Equal(t, "given", fields["request_id"])
}

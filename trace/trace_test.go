package trace

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextSpanIDIncrementsWithinRequest(t *testing.T) {
	ctx := WithRequestAndSpan(context.Background(), "req-1", 0)

	id, span := NextSpanID(ctx)
	assert.Equal(t, "req-1", id)
	assert.Equal(t, "1", span)

	_, span = NextSpanID(ctx)
	assert.Equal(t, "2", span)
	assert.Equal(t, "2", CurrentSpanID(ctx))
}

func TestNextSpanIDWithoutTrace(t *testing.T) {
	id, span := NextSpanID(context.Background())
	assert.NotEmpty(t, id)
	assert.Equal(t, "1", span)
	assert.Equal(t, "", RequestIDFromContext(context.Background()))
	assert.Equal(t, "0", CurrentSpanID(context.Background()))
}

func TestStartJob(t *testing.T) {
	ctx := StartJob(context.Background(), "daily-briefing")
	assert.Len(t, RequestIDFromContext(ctx), 32)
	assert.Equal(t, "daily-briefing", JobFromContext(ctx))
	assert.Equal(t, "0", CurrentSpanID(ctx))

	other := StartJob(context.Background(), "daily-briefing")
	assert.NotEqual(t, RequestIDFromContext(ctx), RequestIDFromContext(other))
	assert.Equal(t, "", JobFromContext(context.Background()))
}

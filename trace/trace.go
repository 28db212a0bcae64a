// Package trace carries a request id and a per-request span counter through
// context so inbound API calls, scheduled briefing runs and the feed, page
// and model calls they trigger share ids.
package trace

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"sync/atomic"
	"time"
)

const (
	HeaderRequestID = "X-Request-Id"
	HeaderSpanID    = "X-Span-Id"
)

type ctxKey string

const ctxKeyTrace ctxKey = "trace_info"

// Info holds the request id, the job that started the trace when it was not
// an HTTP request, and the number of outbound spans issued so far.
type Info struct {
	RequestID string
	Job       string
	spanSeq   int64
}

// GenerateID returns a random hex id, falling back to a timestamp.
func GenerateID() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return time.Now().UTC().Format("20060102T150405.000000000")
	}
	return hex.EncodeToString(b[:])
}

func WithRequestAndSpan(ctx context.Context, requestID string, initialSpan int64) context.Context {
	info := &Info{RequestID: requestID, spanSeq: initialSpan}
	return context.WithValue(ctx, ctxKeyTrace, info)
}

// StartJob starts a fresh trace for work that no HTTP request drives, such as
// a scheduled or command-line briefing run.
func StartJob(ctx context.Context, job string) context.Context {
	info := &Info{RequestID: GenerateID(), Job: job}
	return context.WithValue(ctx, ctxKeyTrace, info)
}

// JobFromContext returns the job name set by StartJob, or "".
func JobFromContext(ctx context.Context) string {
	info := infoFromContext(ctx)
	if info == nil {
		return ""
	}
	return info.Job
}

func infoFromContext(ctx context.Context) *Info {
	if ctx == nil {
		return nil
	}
	v, _ := ctx.Value(ctxKeyTrace).(*Info)
	return v
}

func RequestIDFromContext(ctx context.Context) string {
	info := infoFromContext(ctx)
	if info == nil {
		return ""
	}
	return info.RequestID
}

// CurrentSpanID returns the last issued span without advancing it.
func CurrentSpanID(ctx context.Context) string {
	info := infoFromContext(ctx)
	if info == nil {
		return "0"
	}
	val := atomic.LoadInt64(&info.spanSeq)
	if val <= 0 {
		return "0"
	}
	return strconv.FormatInt(val, 10)
}

// NextSpanID advances the span counter and returns (requestID, spanID).
func NextSpanID(ctx context.Context) (string, string) {
	info := infoFromContext(ctx)
	if info == nil {
		return GenerateID(), "1"
	}
	val := atomic.AddInt64(&info.spanSeq, 1)
	if val <= 0 {
		val = 1
	}
	return info.RequestID, strconv.FormatInt(val, 10)
}

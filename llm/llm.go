// Package llm wraps the chat and speech providers behind small interfaces so
// the orchestrators can be driven by fakes in tests.
package llm

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrEmptyResponse is returned when the provider answered with no content.
	ErrEmptyResponse = errors.New("llm returned an empty response")
	// ErrQuotaExceeded is returned when the daily request budget is spent.
	ErrQuotaExceeded = errors.New("llm daily quota exceeded")
)

// Request is a single chat completion.
type Request struct {
	System    string
	Prompt    string
	Model     string
	MaxTokens int
	// JSON asks the provider to return a JSON object.
	JSON bool
}

// Response is the text returned for a Request with its token counts.
type Response struct {
	Text      string
	Model     string
	Usage     TokenUsage
	LatencyMs int64
}

// Client generates text. Implementations must be safe for concurrent use.
type Client interface {
	Generate(ctx context.Context, req Request) (*Response, error)
}

// Speaker synthesizes speech and returns MP3 bytes.
type Speaker interface {
	Speak(ctx context.Context, text string) ([]byte, error)
}

// TokenUsage accumulates token counts across the calls of one operation.
type TokenUsage struct {
	InputTokens  int64 `json:"inputTokens"`
	OutputTokens int64 `json:"outputTokens"`
}

func (u *TokenUsage) Add(other TokenUsage) {
	u.InputTokens += other.InputTokens
	u.OutputTokens += other.OutputTokens
}

func (u TokenUsage) Total() int64 {
	return u.InputTokens + u.OutputTokens
}

func since(start time.Time) int64 {
	return time.Since(start).Milliseconds()
}

// Package llmtest provides a scripted llm.Client for tests.
package llmtest

import (
	"context"
	"sync"

	"deep-summarizer/llm"
)

// Reply is one scripted answer.
type Reply struct {
	Text  string
	Usage llm.TokenUsage
	Err   error
}

// FakeClient returns scripted replies in order and records every request.
// When Respond is set it is used instead of the script.
type FakeClient struct {
	mu       sync.Mutex
	Replies  []Reply
	Respond  func(req llm.Request) Reply
	Requests []llm.Request
}

func NewFakeClient(replies ...Reply) *FakeClient {
	return &FakeClient{Replies: replies}
}

func (f *FakeClient) Generate(_ context.Context, req llm.Request) (*llm.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Requests = append(f.Requests, req)

	var r Reply
	switch {
	case f.Respond != nil:
		r = f.Respond(req)
	case len(f.Replies) > 0:
		r = f.Replies[0]
		f.Replies = f.Replies[1:]
	default:
		return nil, llm.ErrEmptyResponse
	}
	if r.Err != nil {
		return nil, r.Err
	}
	return &llm.Response{Text: r.Text, Model: "fake", Usage: r.Usage}, nil
}

// Calls returns the number of requests seen so far.
func (f *FakeClient) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Requests)
}

// FakeSpeaker returns Audio for every call.
type FakeSpeaker struct {
	Audio []byte
	Err   error
	Texts []string
}

func (f *FakeSpeaker) Speak(_ context.Context, text string) ([]byte, error) {
	f.Texts = append(f.Texts, text)
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Audio, nil
}

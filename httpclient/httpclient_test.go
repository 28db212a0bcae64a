package httpclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"deep-summarizer/trace"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequestRejectsQueryInPath(t *testing.T) {
	c := NewBaseClient("https://api.example.com/v1")
	_, err := c.NewRequest(context.Background(), http.MethodGet, "/shows?x=1", nil, nil)
	assert.Error(t, err)

	req, err := c.NewRequest(context.Background(), http.MethodGet, "/shows/abc", url.Values{"market": {"US"}}, nil)
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/v1/shows/abc?market=US", req.URL.String())
}

func TestGetJSONPropagatesTraceAndDecodes(t *testing.T) {
	var gotRequestID, gotSpan, gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRequestID = r.Header.Get(trace.HeaderRequestID)
		gotSpan = r.Header.Get(trace.HeaderSpanID)
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"ok"}`))
	}))
	defer srv.Close()

	c := NewBaseClientWithClient(NewBrowser(0), srv.URL)
	ctx := trace.WithRequestAndSpan(context.Background(), "req-9", 0)

	var out struct {
		Name string `json:"name"`
	}
	require.NoError(t, c.GetJSON(ctx, "/thing", nil, &out))
	assert.Equal(t, "ok", out.Name)
	assert.Equal(t, "req-9", gotRequestID)
	assert.Equal(t, "1", gotSpan)
	assert.Equal(t, BrowserUserAgent, gotUA)
}

func TestGetJSONStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewBaseClient(srv.URL)
	var out map[string]any
	err := c.GetJSON(context.Background(), "/missing", nil, &out)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
}

func TestFetchLimitsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("0123456789"))
	}))
	defer srv.Close()

	body, resp, err := Fetch(context.Background(), NewDefault(), srv.URL, 4)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "0123", string(body))
}

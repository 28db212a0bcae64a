package spotify

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, tokenCalls *int32) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(tokenCalls, 1)
		user, pass, ok := r.BasicAuth()
		if !ok || user != "id" || pass != "secret" {
			http.Error(w, "bad client", http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"access_token": "tok", "token_type": "bearer", "expires_in": 3600})
	})
	mux.HandleFunc("/v1/episodes/ep123", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			http.Error(w, "no auth", http.StatusUnauthorized)
			return
		}
		assert.Equal(t, "US", r.URL.Query().Get("market"))
		_, _ = w.Write([]byte(`{"id":"ep123","name":" Ep Name ","description":"desc","duration_ms":3600000,"show":{"name":"Show"}}`))
	})
	mux.HandleFunc("/v1/shows/sh1", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"name":"The Show"}`))
	})
	mux.HandleFunc("/v1/shows/sh1/episodes", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`{"items":[{"id":"latest","name":"Latest","duration_ms":1000}]}`))
	})
	mux.HandleFunc("/v1/episodes/missing", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})
	mux.HandleFunc("/oembed", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"title":"Embedded title","author_name":"Host"}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(srv *httptest.Server) *Client {
	return NewClient(Config{
		ClientID:     "id",
		ClientSecret: "secret",
		TokenURL:     srv.URL + "/token",
		APIBase:      srv.URL + "/v1",
		OEmbedBase:   srv.URL,
	})
}

func TestIsPodcastURL(t *testing.T) {
	assert.True(t, IsPodcastURL("https://open.spotify.com/episode/abc123?si=x"))
	assert.True(t, IsPodcastURL("https://open.spotify.com/show/abc123"))
	assert.False(t, IsPodcastURL("https://open.spotify.com/track/abc123"))
}

func TestEpisodeInfoEpisodeAndTokenCache(t *testing.T) {
	var tokenCalls int32
	srv := newTestServer(t, &tokenCalls)
	c := newTestClient(srv)

	ep, err := c.EpisodeInfo(context.Background(), "https://open.spotify.com/episode/ep123")
	require.NoError(t, err)
	assert.Equal(t, "Ep Name", ep.Name)
	assert.Equal(t, "Show", ep.ShowName)
	assert.Equal(t, int64(3600000), ep.DurationMs)

	_, err = c.EpisodeInfo(context.Background(), "https://open.spotify.com/episode/ep123")
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&tokenCalls))
}

func TestEpisodeInfoShowUsesLatestEpisode(t *testing.T) {
	var tokenCalls int32
	c := newTestClient(newTestServer(t, &tokenCalls))

	ep, err := c.EpisodeInfo(context.Background(), "https://open.spotify.com/show/sh1")
	require.NoError(t, err)
	assert.Equal(t, "latest", ep.ID)
	assert.Equal(t, "The Show", ep.ShowName)
}

func TestEpisodeInfoNotFound(t *testing.T) {
	var tokenCalls int32
	c := newTestClient(newTestServer(t, &tokenCalls))

	_, err := c.EpisodeInfo(context.Background(), "https://open.spotify.com/episode/missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestOEmbed(t *testing.T) {
	var tokenCalls int32
	c := newTestClient(newTestServer(t, &tokenCalls))

	title, author, err := c.OEmbed(context.Background(), "https://open.spotify.com/episode/x")
	require.NoError(t, err)
	assert.Equal(t, "Embedded title", title)
	assert.Equal(t, "Host", author)
	assert.Equal(t, int32(0), atomic.LoadInt32(&tokenCalls))
}

func TestClientWithoutCredentialsFallsBackToOEmbed(t *testing.T) {
	var tokenCalls int32
	srv := newTestServer(t, &tokenCalls)
	c := NewClient(Config{
		TokenURL:   srv.URL + "/token",
		APIBase:    srv.URL + "/v1",
		OEmbedBase: srv.URL,
	})

	_, err := c.EpisodeInfo(context.Background(), "https://open.spotify.com/episode/ep123")
	assert.True(t, errors.Is(err, ErrNoCredentials))

	title, author, err := c.OEmbed(context.Background(), "https://open.spotify.com/episode/ep123")
	require.NoError(t, err)
	assert.Equal(t, "Embedded title", title)
	assert.Equal(t, "Host", author)
	assert.Equal(t, int32(0), atomic.LoadInt32(&tokenCalls))
}

// Package httpclient builds the outbound HTTP clients used for feeds, pages
// and third-party APIs. Every call is logged with the trace ids of the
// request that caused it.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"deep-summarizer/logger"
	"deep-summarizer/trace"
)

// BrowserUserAgent is sent to sites that reject the default Go client.
const BrowserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/142.0.0.0 Safari/537.36"

type Config struct {
	Timeout time.Duration
	// UserAgent is set on requests that do not carry one.
	UserAgent string
	// Transport defaults to http.DefaultTransport.
	Transport http.RoundTripper
}

type loggingRoundTripper struct {
	inner     http.RoundTripper
	userAgent string
}

func (l *loggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	requestID, spanID := trace.NextSpanID(req.Context())
	req.Header.Set(trace.HeaderRequestID, requestID)
	req.Header.Set(trace.HeaderSpanID, spanID)
	if l.userAgent != "" && req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", l.userAgent)
	}

	var bodySnippet string
	if req.Body != nil && req.Method != http.MethodGet {
		if bodyBytes, err := io.ReadAll(req.Body); err == nil {
			const maxBodyLog = 1024
			if len(bodyBytes) > maxBodyLog {
				bodySnippet = string(bodyBytes[:maxBodyLog])
			} else {
				bodySnippet = string(bodyBytes)
			}
			req.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
		}
	}

	fields := logger.Fields{
		"method":     req.Method,
		"host":       req.URL.Host,
		"path":       req.URL.Path,
		"request_id": requestID,
		"span_id":    spanID,
	}
	if job := trace.JobFromContext(req.Context()); job != "" {
		fields["job"] = job
	}
	if bodySnippet != "" {
		fields["body"] = bodySnippet
	}

	resp, err := l.inner.RoundTrip(req)
	fields["duration"] = time.Since(start).String()
	if err != nil {
		fields["error"] = err.Error()
		logger.ErrorWithFields("httpclient request failed", fields)
		return nil, err
	}

	fields["status"] = resp.StatusCode
	logger.DebugWithFields("httpclient request success", fields)
	return resp, nil
}

// StatusError is returned by the helpers for non-2xx responses.
type StatusError struct {
	StatusCode int
	URL        string
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s returned status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("%s returned status %d: %s", e.URL, e.StatusCode, e.Body)
}

// BaseClient pairs an http.Client with a base URL.
type BaseClient struct {
	HTTPClient *http.Client
	BaseURL    string
}

func NewBaseClient(baseURL string) *BaseClient {
	return NewBaseClientWithClient(nil, baseURL)
}

func NewBaseClientWithClient(httpClient *http.Client, baseURL string) *BaseClient {
	if httpClient == nil {
		httpClient = NewDefault()
	}
	return &BaseClient{
		HTTPClient: httpClient,
		BaseURL:    baseURL,
	}
}

// NewRequest joins relPath onto the base URL. Query parameters must be passed
// through query; a "?" in relPath is rejected.
func (c *BaseClient) NewRequest(ctx context.Context, method, relPath string, query url.Values, body io.Reader) (*http.Request, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if strings.Contains(relPath, "?") {
		return nil, fmt.Errorf("httpclient: relPath must not contain query string (use query parameter instead): %s", relPath)
	}
	base, err := url.Parse(c.BaseURL)
	if err != nil {
		return nil, err
	}
	if relPath != "" {
		base.Path = path.Join(base.Path, relPath)
	}
	if query != nil {
		base.RawQuery = query.Encode()
	}
	return http.NewRequestWithContext(ctx, method, base.String(), body)
}

func (c *BaseClient) Do(req *http.Request) (*http.Response, error) {
	return c.HTTPClient.Do(req)
}

// GetJSON issues a GET and decodes a 2xx JSON body into out.
func (c *BaseClient) GetJSON(ctx context.Context, relPath string, query url.Values, out any) error {
	req, err := c.NewRequest(ctx, http.MethodGet, relPath, query, nil)
	if err != nil {
		return err
	}
	resp, err := c.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		sample, _ := io.ReadAll(io.LimitReader(resp.Body, 500))
		return &StatusError{StatusCode: resp.StatusCode, URL: req.URL.String(), Body: string(sample)}
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Fetch GETs rawURL and returns at most maxBytes of a 2xx body.
func Fetch(ctx context.Context, client *http.Client, rawURL string, maxBytes int64) ([]byte, *http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		sample, _ := io.ReadAll(io.LimitReader(resp.Body, 500))
		return nil, resp, &StatusError{StatusCode: resp.StatusCode, URL: rawURL, Body: string(sample)}
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBytes))
	if err != nil {
		return nil, resp, fmt.Errorf("failed to read %s: %w", rawURL, err)
	}
	return body, resp, nil
}

// New builds an http.Client with logging. A zero Timeout means 10 seconds.
func New(cfg Config) *http.Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	transport := cfg.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: &loggingRoundTripper{inner: transport, userAgent: cfg.UserAgent},
	}
}

func NewDefault() *http.Client {
	return New(Config{})
}

// NewBrowser returns a client that presents itself as a desktop browser.
func NewBrowser(timeout time.Duration) *http.Client {
	return New(Config{Timeout: timeout, UserAgent: BrowserUserAgent})
}

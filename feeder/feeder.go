// Package feeder fetches and parses RSS/Atom feeds.
package feeder

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"deep-summarizer/httpclient"

	"github.com/mmcdole/gofeed"
	"golang.org/x/net/html"
)

const FEEDER_TIMEOUT = 30 * time.Second

// RssFeedItem is one entry of a feed, reduced to the fields the briefing uses.
type RssFeedItem struct {
	Title       string
	Link        string
	Snippet     string
	PublishedAt time.Time
}

// Feeder fetches feeds over a shared client.
type Feeder struct {
	client *http.Client
}

// New returns a Feeder whose client sends browser headers.
func New() *Feeder {
	return &Feeder{client: httpclient.New(httpclient.Config{
		Timeout:   FEEDER_TIMEOUT,
		UserAgent: httpclient.BrowserUserAgent,
	})}
}

// NewWithClient is used by tests to point the feeder at a local server.
func NewWithClient(client *http.Client) *Feeder {
	return &Feeder{client: client}
}

// Fetch returns the feed items at rssURL. If limit is greater than 0 only the
// first limit items are returned. Snippets are plain text cut to snippetLen.
func (f *Feeder) Fetch(ctx context.Context, rssURL string, limit, snippetLen int) ([]RssFeedItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rssURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSS request: %w", err)
	}
	req.Header.Set("Accept", "application/rss+xml,application/atom+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodySample, _ := io.ReadAll(io.LimitReader(resp.Body, 500))
		return nil, fmt.Errorf("failed to fetch RSS feed: status code %d, url: %s, body: %s", resp.StatusCode, rssURL, string(bodySample))
	}

	cleaned, err := cleanControlCharacters(resp.Body)
	if err != nil {
		return nil, err
	}

	feed, err := gofeed.NewParser().Parse(cleaned)
	if err != nil {
		return nil, fmt.Errorf("failed to parse RSS feed: %w", err)
	}

	var items []RssFeedItem
	for _, item := range feed.Items {
		if limit > 0 && len(items) >= limit {
			break
		}

		var published time.Time
		if item.PublishedParsed != nil {
			published = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			published = *item.UpdatedParsed
		}

		raw := item.Description
		if raw == "" {
			raw = item.Content
		}

		items = append(items, RssFeedItem{
			Title:       strings.TrimSpace(item.Title),
			Link:        strings.TrimSpace(item.Link),
			Snippet:     truncate(StripHTML(raw), snippetLen),
			PublishedAt: published,
		})
	}

	return items, nil
}

// Characters XML does not allow: 0x00-0x1F except tab, LF and CR.
var invalidControlCharRegex = regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F]`)

func cleanControlCharacters(r io.Reader) (io.Reader, error) {
	bodyBytes, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read body for cleaning: %w", err)
	}
	return bytes.NewReader(invalidControlCharRegex.ReplaceAll(bodyBytes, nil)), nil
}

var whitespace = regexp.MustCompile(`\s+`)

// StripHTML returns the text content of an HTML fragment with whitespace collapsed.
func StripHTML(fragment string) string {
	if !strings.Contains(fragment, "<") {
		return strings.TrimSpace(whitespace.ReplaceAllString(html.UnescapeString(fragment), " "))
	}

	var sb strings.Builder
	z := html.NewTokenizer(strings.NewReader(fragment))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.TrimSpace(whitespace.ReplaceAllString(sb.String(), " "))
		case html.TextToken:
			sb.Write(z.Text())
			sb.WriteByte(' ')
		}
	}
}

func truncate(s string, n int) string {
	if n <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

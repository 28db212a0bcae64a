package briefing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"deep-summarizer/feeder"
	"deep-summarizer/llm"
	"deep-summarizer/llm/llmtest"
	"deep-summarizer/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFeeds struct {
	mu    sync.Mutex
	items map[string][]feeder.RssFeedItem
	calls []string
}

func (f *fakeFeeds) Fetch(_ context.Context, url string, limit, snippetLen int) ([]feeder.RssFeedItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, url)
	items, ok := f.items[url]
	if !ok {
		return nil, errors.New("connection refused")
	}
	return items, nil
}

var testDate = time.Date(2026, 2, 18, 6, 0, 0, 0, time.UTC)

func TestEditionTitle(t *testing.T) {
	assert.Equal(t, "The Reno Times – Wednesday, Feb 18, 2026", EditionTitle("The Reno Times", testDate))
}

func TestSplitBullets(t *testing.T) {
	para, act := SplitBullets([]string{
		"Bitcoin rallied 5%.",
		"ETF flows turned positive.",
		"So what / Actionables: watch 70k.",
		"Rebalance if it breaks down.",
	})
	assert.Equal(t, []string{"Bitcoin rallied 5%.", "ETF flows turned positive."}, para)
	assert.Equal(t, []string{"So what / Actionables: watch 70k.", "Rebalance if it breaks down."}, act)

	para, act = SplitBullets([]string{"Only narrative."})
	assert.Equal(t, []string{"Only narrative."}, para)
	assert.Empty(t, act)

	para, act = SplitBullets([]string{"ACTIONABLES first"})
	assert.Empty(t, para)
	assert.Len(t, act, 1)
}

func TestDropEmptyTrailing(t *testing.T) {
	sections := []models.EditionSection{
		{Title: "Crypto", TLDR: "Up."},
		{Title: "Conclusions / So what?"},
		{Title: "So what for you"},
	}
	out := DropEmptyTrailing(sections)
	require.Len(t, out, 1)
	assert.Equal(t, "Crypto", out[0].Title)

	kept := DropEmptyTrailing([]models.EditionSection{
		{Title: "Crypto", TLDR: "Up."},
		{Title: "Conclusion", TLDR: "Stay the course."},
	})
	assert.Len(t, kept, 2)

	// only trailing sections are removed
	middle := DropEmptyTrailing([]models.EditionSection{
		{Title: "Conclusion"},
		{Title: "Crypto", TLDR: "Up."},
	})
	assert.Len(t, middle, 2)
}

func TestComposeGathersFeedsAndDecodes(t *testing.T) {
	var items []feeder.RssFeedItem
	for i := 0; i < 8; i++ {
		items = append(items, feeder.RssFeedItem{
			Title:   fmt.Sprintf("Headline %d %s", i, strings.Repeat("x", 100)),
			Link:    fmt.Sprintf("https://news.example.com/%d", i),
			Snippet: "snippet",
		})
	}
	feeds := &fakeFeeds{items: map[string][]feeder.RssFeedItem{
		"https://a.example.com/rss": items,
		"https://b.example.com/rss": items[:2],
	}}

	fake := llmtest.NewFakeClient(llmtest.Reply{
		Text: `{"sections":[
			{"id":"markets","title":"Markets","tldr":"Stocks rose.","paragraphs":["Indices up."],"actionables":["Hold."],
			 "sources":[{"url":"https://news.example.com/1","label":"Rally recap"},{"url":"https://fabricated.example.com"}]},
			{"id":"watch","tldr":"Nothing major today.","bullets":["Quiet.","So what: nothing to do."]},
			{"id":"conclusions","title":"Conclusions / So what?","tldr":"","bullets":[]}
		]}`,
		Usage: llm.TokenUsage{InputTokens: 3000, OutputTokens: 900},
	})

	c := New(fake, feeds, WithSections([]SectionConfig{
		{ID: "markets", Title: "Markets", FeedURLs: []string{"https://a.example.com/rss", "https://b.example.com/rss"}},
		{ID: "watch", Title: "Watch", FeedURLs: []string{"https://down.example.com/rss"}},
		{ID: "foreign", Title: "Foreign", Optional: true},
	}), WithPersona("Reader: a dentist-turned-founder."))

	res, err := c.Compose(context.Background(), testDate)
	require.NoError(t, err)
	assert.Equal(t, llm.TokenUsage{InputTokens: 3000, OutputTokens: 900}, res.Usage)
	assert.ElementsMatch(t, []string{"https://a.example.com/rss", "https://b.example.com/rss", "https://down.example.com/rss"}, feeds.calls)

	e := res.Edition
	assert.Equal(t, "2026-02-18", e.DateKey())
	assert.Equal(t, "The Reno Times – Wednesday, Feb 18, 2026", e.Title)
	require.Len(t, e.Sections, 2)

	markets := e.Sections[0]
	assert.Equal(t, []string{"Indices up."}, markets.BodyParagraphs)
	assert.Equal(t, []string{"Hold."}, markets.ActionableBullets)
	assert.Equal(t, []models.SourceLink{{Label: "Rally recap", URL: "https://news.example.com/1"}}, markets.Sources)

	watch := e.Sections[1]
	assert.Equal(t, "Watch", watch.Title)
	assert.Equal(t, []string{"Quiet."}, watch.BodyParagraphs)
	assert.Equal(t, []string{"So what: nothing to do."}, watch.ActionableBullets)
	assert.Empty(t, watch.Sources)

	prompt := fake.Requests[0].Prompt
	assert.True(t, fake.Requests[0].JSON)
	assert.Contains(t, prompt, "Reader: a dentist-turned-founder.")
	assert.Contains(t, prompt, WatchlistPlaceholder)
	assert.NotContains(t, prompt, "## Foreign")
	// five links from the first feed plus one from the second
	assert.Contains(t, prompt, "https://news.example.com/4")
	assert.NotContains(t, prompt, "https://news.example.com/5")
	assert.Equal(t, 2, strings.Count(prompt, "| https://news.example.com/0"))
}

func TestComposeFallsBackToFeedLinks(t *testing.T) {
	feeds := &fakeFeeds{items: map[string][]feeder.RssFeedItem{
		"https://a.example.com/rss": {{Title: "Story", Link: "https://news.example.com/story", Snippet: "s"}},
	}}
	fake := llmtest.NewFakeClient(llmtest.Reply{Text: `{"sections":[{"id":"markets","title":"Markets","tldr":"Up.","sources":[]}]}`})

	c := New(fake, feeds, WithSections([]SectionConfig{{ID: "markets", Title: "Markets", FeedURLs: []string{"https://a.example.com/rss"}}}))
	res, err := c.Compose(context.Background(), testDate)
	require.NoError(t, err)
	require.Len(t, res.Edition.Sections, 1)
	assert.Equal(t, []models.SourceLink{{Label: "Story", URL: "https://news.example.com/story"}}, res.Edition.Sections[0].Sources)
}

func TestComposeAllFeedsDownStillReturnsSections(t *testing.T) {
	feeds := &fakeFeeds{}
	fake := llmtest.NewFakeClient(llmtest.Reply{Text: `{"sections":[]}`})

	res, err := New(fake, feeds).Compose(context.Background(), testDate)
	require.NoError(t, err)
	require.Len(t, res.Edition.Sections, 1)
	assert.Contains(t, res.Edition.Sections[0].TLDR, "watchlist")
	assert.Equal(t, 1, fake.Calls())
}

func TestComposeOnlyOptionalSectionsSkipsModel(t *testing.T) {
	fake := llmtest.NewFakeClient()
	c := New(fake, &fakeFeeds{}, WithSections([]SectionConfig{{ID: "foreign", Title: "Foreign", Optional: true}}))

	res, err := c.Compose(context.Background(), testDate)
	require.NoError(t, err)
	assert.Len(t, res.Edition.Sections, 1)
	assert.Zero(t, fake.Calls())
}

func TestComposeModelFailure(t *testing.T) {
	fake := llmtest.NewFakeClient(llmtest.Reply{Err: errors.New("upstream 500")})
	_, err := New(fake, &fakeFeeds{}).Compose(context.Background(), testDate)
	assert.ErrorContains(t, err, "upstream 500")
}

func TestRenderMarkdown(t *testing.T) {
	md := RenderMarkdown(&models.Edition{
		Title: "The Reno Times – Wednesday, Feb 18, 2026",
		Sections: []models.EditionSection{{
			Title:             "Crypto",
			TLDR:              "BTC up.",
			BodyParagraphs:    []string{"It rallied."},
			ActionableBullets: []string{"Watch 70k."},
			Sources:           []models.SourceLink{{Label: "CoinDesk", URL: "https://coindesk.com/x"}},
		}},
	})
	assert.Contains(t, md, "# The Reno Times")
	assert.Contains(t, md, "**TL;DR:** BTC up.")
	assert.Contains(t, md, "- Watch 70k.")
	assert.Contains(t, md, "- [CoinDesk](https://coindesk.com/x)")
}

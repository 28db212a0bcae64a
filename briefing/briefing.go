// Package briefing composes the daily edition: it gathers feed items per
// section, asks the model for one structured edition and cleans the result.
package briefing

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"deep-summarizer/feeder"
	"deep-summarizer/llm"
	"deep-summarizer/logger"
	"deep-summarizer/models"
)

const (
	ItemsPerFeed    = 15
	SnippetLength   = 300
	LinksPerFeed    = 5
	LinksPerSection = 6
	LinkLabelLength = 80
	SectionTextCap  = 2500

	maxTokens = 8000
)

// FeedFetcher is satisfied by *feeder.Feeder.
type FeedFetcher interface {
	Fetch(ctx context.Context, rssURL string, limit, snippetLen int) ([]feeder.RssFeedItem, error)
}

// ComposeResult is a composed edition and the tokens spent on it.
type ComposeResult struct {
	Edition *models.Edition
	Usage   llm.TokenUsage
}

type Composer struct {
	client      llm.Client
	feeds       FeedFetcher
	sections    []SectionConfig
	persona     string
	publication string
	model       string
}

type Option func(*Composer)

func WithSections(sections []SectionConfig) Option {
	return func(c *Composer) { c.sections = sections }
}

// WithPersona replaces DefaultReaderContext in the prompt.
func WithPersona(persona string) Option {
	return func(c *Composer) {
		if strings.TrimSpace(persona) != "" {
			c.persona = persona
		}
	}
}

func WithPublication(name string) Option {
	return func(c *Composer) {
		if strings.TrimSpace(name) != "" {
			c.publication = name
		}
	}
}

func WithModel(model string) Option {
	return func(c *Composer) { c.model = model }
}

func New(client llm.Client, feeds FeedFetcher, opts ...Option) *Composer {
	c := &Composer{
		client:      client,
		feeds:       feeds,
		sections:    DefaultSections,
		persona:     DefaultReaderContext,
		publication: "The Reno Times",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// sectionInput is the raw material gathered for one section.
type sectionInput struct {
	config SectionConfig
	text   string
	links  []models.SourceLink
}

// Compose builds the edition for date. Feed failures degrade to the
// watchlist placeholder; a model failure is returned. When the reply cannot
// be decoded the result still carries the tokens spent.
func (c *Composer) Compose(ctx context.Context, date time.Time) (*ComposeResult, error) {
	edition := &models.Edition{
		Date:  date,
		Title: EditionTitle(c.publication, date),
	}

	inputs := c.gather(ctx)
	if len(inputs) == 0 {
		edition.Sections = []models.EditionSection{emptyEditionSection("No sections fetched. Check RSS feeds or try again later.")}
		return &ComposeResult{Edition: edition}, nil
	}

	resp, err := c.client.Generate(ctx, llm.Request{
		Prompt:    c.buildPrompt(inputs, date),
		Model:     c.model,
		MaxTokens: maxTokens,
		JSON:      true,
	})
	if err != nil {
		return nil, fmt.Errorf("edition generation failed: %w", err)
	}
	usage := resp.Usage

	obj, err := llm.ParseObject(resp.Text)
	if err != nil {
		return &ComposeResult{Usage: usage}, err
	}

	sections := decodeSections(obj, inputs)
	sections = DropEmptyTrailing(sections)
	if len(sections) == 0 {
		sections = []models.EditionSection{emptyEditionSection("Nothing came back from the model today. " + WatchlistPlaceholder)}
	}
	edition.Sections = sections

	logger.InfoWithFields("edition composed", logger.Fields{
		"date":          edition.DateKey(),
		"sections":      len(sections),
		"input_tokens":  usage.InputTokens,
		"output_tokens": usage.OutputTokens,
	})
	return &ComposeResult{Edition: edition, Usage: usage}, nil
}

// gather fetches every feed of every section concurrently and returns the
// sections to send to the model, in configured order.
func (c *Composer) gather(ctx context.Context) []sectionInput {
	type feedResult struct {
		text  string
		links []models.SourceLink
	}

	results := make([][]feedResult, len(c.sections))
	var wg sync.WaitGroup
	for i, sec := range c.sections {
		results[i] = make([]feedResult, len(sec.FeedURLs))
		for j, url := range sec.FeedURLs {
			wg.Add(1)
			go func(i, j int, url string) {
				defer wg.Done()
				text, links := c.fetchFeed(ctx, url)
				results[i][j] = feedResult{text: text, links: links}
			}(i, j, url)
		}
	}
	wg.Wait()

	inputs := make([]sectionInput, 0, len(c.sections))
	for i, sec := range c.sections {
		var texts []string
		var links []models.SourceLink
		for _, r := range results[i] {
			if r.text != "" {
				texts = append(texts, r.text)
			}
			links = append(links, r.links...)
		}
		text := strings.Join(texts, "\n\n")
		if text == "" && sec.Optional {
			continue
		}
		if text == "" {
			text = WatchlistPlaceholder
		}
		if len(links) > LinksPerSection {
			links = links[:LinksPerSection]
		}
		inputs = append(inputs, sectionInput{config: sec, text: text, links: links})
	}
	return inputs
}

func (c *Composer) fetchFeed(ctx context.Context, url string) (string, []models.SourceLink) {
	items, err := c.feeds.Fetch(ctx, url, ItemsPerFeed, SnippetLength)
	if err != nil {
		logger.WarnWithFields("feed fetch failed", logger.Fields{"url": url, "error": err.Error()})
		return "", nil
	}

	lines := make([]string, 0, len(items))
	var links []models.SourceLink
	for _, item := range items {
		lines = append(lines, strings.TrimSpace(item.Title+" "+item.Snippet))
		if item.Link != "" && item.Title != "" && len(links) < LinksPerFeed {
			links = append(links, models.SourceLink{
				Label: llm.TruncateRunes(item.Title, LinkLabelLength),
				URL:   item.Link,
			})
		}
	}
	return strings.TrimSpace(strings.Join(lines, "\n")), links
}

func emptyEditionSection(tldr string) models.EditionSection {
	return models.EditionSection{
		ID:                "watchlist",
		Title:             "Watchlist",
		TLDR:              tldr,
		BodyParagraphs:    []string{},
		ActionableBullets: []string{},
		Sources:           []models.SourceLink{},
	}
}

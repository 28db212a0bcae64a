// Package categorizer files a summary into the workspace taxonomy.
package categorizer

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"deep-summarizer/llm"
	"deep-summarizer/models"
)

// Areas, TopicTags and ContentTypes mirror the select options of the
// knowledge base database and must stay in sync with it.
var (
	Areas = []string{
		"Kinnect",
		"Entrepreneurship (general)",
		"Crypto / Web3",
		"Public Markets / Equities",
		"Startups / VC",
		"Politics / Global",
		"Research / Q&A",
		"Other",
	}
	TopicTags = []string{
		"Marketing", "Strategy", "Scaling", "Leadership", "Operations", "Healthcare",
		"Mental Models", "Macro", "DSOs", "Dentistry", "Startups", "Crypto",
		"Growth", "Ops", "GTM", "Product", "Sales", "Other",
	}
	ContentTypes = []string{
		"Podcast", "Book", "Article", "News", "Report", "Research / Q&A", "Other",
	}
)

const (
	Fallback     = "Other"
	maxTopicTags = 5

	summaryLimit   = 6000
	bulletLimit    = 20
	takeawaysLimit = 10
)

var systemPrompt = fmt.Sprintf(`You categorize content for a founder's knowledge base in Notion.

Pick exactly one Area, 1-5 Topic Tags, and one Content Type from the lists below. Choose only from these options; do not invent new values.

Areas (pick one): %s

Topic Tags (pick 1-5 that fit; use exact spelling): %s

Content Types (pick one): %s

Rules:
- Area = main theme (Kinnect for the reader's company; Entrepreneurship (general) for general startup/operator; Crypto/Web3; Public Markets; etc.).
- Topic Tags = specific topics (e.g. Strategy, Scaling, DSOs, Macro).
- Content Type = format (Podcast, Book, Article, News, Report, Research / Q&A, Other).

Respond with valid JSON only, no markdown:
{"area":"<one area from list>","topicTags":["<tag1>","<tag2>"],"contentType":"<one type from list>"}`,
	strings.Join(Areas, ", "), strings.Join(TopicTags, ", "), strings.Join(ContentTypes, ", "))

// Input is the material the categorizer looks at.
type Input struct {
	TitleOrSourceHint string
	Summary           string
	Bullets           []string
	FounderTakeaways  []string
}

type Categorizer struct {
	client llm.Client
}

func New(client llm.Client) *Categorizer {
	return &Categorizer{client: client}
}

// Categorize asks the model for a classification and forces the answer into
// the closed sets.
func (c *Categorizer) Categorize(ctx context.Context, in Input) (*models.CategorizationResult, llm.TokenUsage, error) {
	resp, err := c.client.Generate(ctx, llm.Request{
		System: systemPrompt,
		Prompt: buildPrompt(in),
		JSON:   true,
	})
	if err != nil {
		return nil, llm.TokenUsage{}, fmt.Errorf("categorization failed: %w", err)
	}

	obj, err := llm.ParseObject(resp.Text)
	if err != nil {
		return nil, resp.Usage, fmt.Errorf("invalid categorization JSON: %w", err)
	}
	return Validate(obj.String("area"), obj.Strings("topicTags"), obj.String("contentType")), resp.Usage, nil
}

// Validate maps any out-of-set value to Fallback and drops unknown tags,
// preserving order and capping the list.
func Validate(area string, tags []string, contentType string) *models.CategorizationResult {
	res := &models.CategorizationResult{
		Area:        Fallback,
		TopicTags:   []string{},
		ContentType: Fallback,
	}
	if slices.Contains(Areas, area) {
		res.Area = area
	}
	if slices.Contains(ContentTypes, contentType) {
		res.ContentType = contentType
	}
	for _, t := range tags {
		if len(res.TopicTags) >= maxTopicTags {
			break
		}
		if slices.Contains(TopicTags, t) && !slices.Contains(res.TopicTags, t) {
			res.TopicTags = append(res.TopicTags, t)
		}
	}
	return res
}

func buildPrompt(in Input) string {
	var parts []string
	if hint := strings.TrimSpace(in.TitleOrSourceHint); hint != "" {
		parts = append(parts, "Title/source hint: "+hint)
	}
	parts = append(parts,
		"Summary:",
		llm.TruncateRunes(in.Summary, summaryLimit),
		"Key bullets:",
		strings.Join(head(in.Bullets, bulletLimit), "\n"),
		"Founder takeaways:",
		strings.Join(head(in.FounderTakeaways, takeawaysLimit), "\n"),
	)
	return strings.Join(parts, "\n\n")
}

func head(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

// Package docstore shapes summaries, editions and follow-ups into document
// blocks and writes them to the external document store.
package docstore

import (
	"regexp"
	"strings"

	"deep-summarizer/llm"
	"deep-summarizer/models"
)

// RichTextLimit is the longest text a single span may carry.
const RichTextLimit = 2000

// BlockKind values match the document store's block type names.
type BlockKind string

const (
	KindHeading1  BlockKind = "heading_1"
	KindHeading2  BlockKind = "heading_2"
	KindHeading3  BlockKind = "heading_3"
	KindParagraph BlockKind = "paragraph"
	KindBullet    BlockKind = "bulleted_list_item"
	KindCallout   BlockKind = "callout"
	KindDivider   BlockKind = "divider"
	KindEmbed     BlockKind = "embed"
)

// Span is a run of text, optionally linked.
type Span struct {
	Text string
	URL  string
}

type Block struct {
	Kind  BlockKind
	Spans []Span
	// Icon is the emoji of a callout.
	Icon string
	// URL is the target of an embed.
	URL string
}

// Text joins the block's spans.
func (b Block) Text() string {
	var sb strings.Builder
	for _, s := range b.Spans {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// HeadingLevel returns 1-3 for headings and 0 otherwise.
func HeadingLevel(k BlockKind) int {
	switch k {
	case KindHeading1:
		return 1
	case KindHeading2:
		return 2
	case KindHeading3:
		return 3
	}
	return 0
}

func text(kind BlockKind, s string) Block {
	return Block{Kind: kind, Spans: []Span{{Text: llm.TruncateRunes(s, RichTextLimit)}}}
}

func Heading2(s string) Block  { return text(KindHeading2, s) }
func Heading3(s string) Block  { return text(KindHeading3, s) }
func Paragraph(s string) Block { return text(KindParagraph, s) }
func Bullet(s string) Block    { return text(KindBullet, s) }
func Divider() Block           { return Block{Kind: KindDivider} }

func Embed(url string) Block {
	return Block{Kind: KindEmbed, URL: llm.TruncateRunes(url, RichTextLimit)}
}

// Callout is a highlighted line. A non-empty url links the whole text.
func Callout(icon, s, url string) Block {
	return Block{
		Kind:  KindCallout,
		Icon:  icon,
		Spans: []Span{{Text: llm.TruncateRunes(s, RichTextLimit), URL: llm.TruncateRunes(url, RichTextLimit)}},
	}
}

var paragraphBreak = regexp.MustCompile(`\n\s*\n+`)

func paragraphs(s string) []Block {
	var out []Block
	for _, p := range paragraphBreak.Split(s, -1) {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, Paragraph(p))
		}
	}
	return out
}

// SummaryContent is what gets saved for one summarized source.
type SummaryContent struct {
	OneLiner         string
	QuickTake        string
	KeyIdeas         []models.Section
	Summary          string
	Bullets          []string
	FounderTakeaways []string
}

func SummaryBlocks(c SummaryContent) []Block {
	var blocks []Block
	if c.OneLiner != "" {
		blocks = append(blocks, Heading2("In one sentence"), Paragraph(c.OneLiner))
	}
	if c.QuickTake != "" {
		blocks = append(blocks, Heading2("Quick take"))
		blocks = append(blocks, paragraphs(c.QuickTake)...)
	}
	if len(c.KeyIdeas) > 0 {
		blocks = append(blocks, Heading2("Key ideas"))
		for _, k := range c.KeyIdeas {
			blocks = append(blocks, Heading3(k.Title), Paragraph(k.Body))
		}
	}

	blocks = append(blocks, Heading2("Summary"))
	blocks = append(blocks, paragraphs(c.Summary)...)
	blocks = append(blocks, Heading2("Key bullets"))
	for _, b := range c.Bullets {
		blocks = append(blocks, Bullet(b))
	}

	if len(c.FounderTakeaways) > 0 {
		blocks = append(blocks, Heading2("Founder / reader takeaways"))
		for _, t := range c.FounderTakeaways {
			blocks = append(blocks, Bullet(t))
		}
	}
	return blocks
}

// FollowUpHeading is the heading that opens an appended follow-up.
func FollowUpHeading(kind models.FollowUpKind) string {
	if kind == models.FollowUpResearch {
		return "Follow-up research"
	}
	return "Follow-up clarification"
}

func FollowUpBlocks(f models.FollowUp) []Block {
	blocks := []Block{Heading2(FollowUpHeading(f.Kind))}
	if f.Snippet != "" {
		blocks = append(blocks, Paragraph("Snippet: "+llm.TruncateRunes(f.Snippet, 1500)))
	}
	if f.Question != "" {
		blocks = append(blocks, Paragraph("Question: "+f.Question))
	}
	blocks = append(blocks, Paragraph(f.Answer))
	for _, b := range f.Bullets {
		blocks = append(blocks, Bullet(b))
	}
	return blocks
}

// EditionLinks are the optional navigation links placed around an edition.
type EditionLinks struct {
	RunNowURL   string
	ClarifyURL  string
	EditionsURL string
	// FrontPageID enables the clarify embed that appends to the front page.
	FrontPageID string
}

var actionablePrefix = regexp.MustCompile(`(?i)^so what\s*(?:for you)?\s*/?\s*(?:actionables)?\s*:?\s*`)

// SectionBlocks renders one edition section: heading, TL;DR, paragraphs,
// actionables and a "Read further" line.
func SectionBlocks(s models.EditionSection) []Block {
	title := s.Title
	if title == "" {
		title = "Section"
	}
	blocks := []Block{Heading2(title), Paragraph(s.TLDR)}
	for _, p := range s.BodyParagraphs {
		if strings.TrimSpace(p) != "" {
			blocks = append(blocks, Paragraph(p))
		}
	}

	if len(s.ActionableBullets) > 0 {
		blocks = append(blocks, Heading3("So what for you / Actionables"))
		for _, a := range s.ActionableBullets {
			stripped := strings.TrimSpace(actionablePrefix.ReplaceAllString(a, ""))
			if stripped == "" {
				stripped = a
			}
			blocks = append(blocks, Bullet(stripped))
		}
	}

	if len(s.Sources) > 0 {
		blocks = append(blocks, readFurther(s.Sources))
	}
	return blocks
}

func readFurther(links []models.SourceLink) Block {
	b := Block{Kind: KindParagraph, Spans: []Span{{Text: "Read further: "}}}
	n := 0
	for _, l := range links {
		if strings.TrimSpace(l.URL) == "" || n == 6 {
			continue
		}
		if n > 0 {
			b.Spans = append(b.Spans, Span{Text: " · "})
		}
		label := l.Label
		if label == "" {
			label = "Source"
		}
		b.Spans = append(b.Spans, Span{Text: llm.TruncateRunes(label, 100), URL: llm.TruncateRunes(l.URL, RichTextLimit)})
		n++
	}
	return b
}

// EditionBlocks lays out a full edition page.
func EditionBlocks(e *models.Edition, links EditionLinks) []Block {
	var blocks []Block
	if links.RunNowURL != "" {
		blocks = append(blocks, Callout("🔄", "Generate today's edition", links.RunNowURL))
	}
	if links.ClarifyURL != "" {
		blocks = append(blocks, Callout("💬", "Go deeper on any point (Clarify)", links.ClarifyURL))
	}
	blocks = append(blocks, Divider())
	blocks = append(blocks, Callout("📅", e.Date.Format("Monday, January 2, 2006"), ""))
	for _, s := range e.Sections {
		blocks = append(blocks, SectionBlocks(s)...)
	}
	if links.EditionsURL != "" {
		blocks = append(blocks, Callout("📰", "View all editions", links.EditionsURL))
	}
	if links.ClarifyURL != "" && links.FrontPageID != "" {
		blocks = append(blocks, Embed(links.ClarifyURL+"?appendTo="+links.FrontPageID))
	}
	return blocks
}

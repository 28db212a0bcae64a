package briefing

import (
	"fmt"
	"strings"
	"time"

	"deep-summarizer/llm"
)

const styleRules = `STYLE (Morning Brew / TLDR / Finimize):
- Each section: TL;DR (one sentence), then 2-4 short paragraphs. Each paragraph gives context: what happened, why it matters, who it affects, with enough background to understand it without reading the source.
- Then 2-3 "So what for you / Actionables" bullets specific to the reader: what to do, watch or avoid and why. These live at the end of each section; do not write a separate Conclusions section.
- If a section has no concrete news, do not write filler like "Monitor trends". Write a one-line TL;DR such as "Nothing major today." and leave paragraphs and actionables empty.

RULES:
1. Plain language; explain any jargon.
2. Every point specific: exactly what happened, why it matters, what to do.
3. PUBLIC MARKETS: overall market view (macro, indices, rates, catalysts), then 3-5 stocks with thesis, risk and what to watch.
4. CRYPTO: concrete levels and catalysts ("If BTC holds above X, watch Y").
5. TOOLS & AI: for each tool, what it is, how the reader could use it, cost, setup time, worth it (yes/no and why).
6. SOURCES: only URLs from the lists below, each with a descriptive label saying what the reader gets by clicking.`

const outputShape = `Respond with valid JSON only (no markdown):
{
  "sections": [
    {
      "id": "section_id",
      "title": "Section Title",
      "tldr": "One sentence summary",
      "paragraphs": ["What happened and why it matters.", "Context and implications."],
      "actionables": ["What to do, watch or avoid."],
      "sources": [{ "url": "exact URL from the list", "label": "What the reader will learn" }]
    }
  ]
}`

func (c *Composer) buildPrompt(inputs []sectionInput, date time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are writing %s, a daily briefing newsletter. Digestible but with enough context that the reader fully understands each point. Total read: under 15 minutes.\n", c.publication)
	fmt.Fprintf(&b, "Today's date: %s.\n\n", date.Format("2006-01-02"))
	b.WriteString(styleRules)
	b.WriteString("\n\n")
	b.WriteString(c.persona)
	b.WriteString("\n\nSections and raw content:\n")
	for _, in := range inputs {
		fmt.Fprintf(&b, "\n## %s (id: %s)\n%s\n", in.config.Title, in.config.ID, llm.TruncateRunes(in.text, SectionTextCap))
	}

	b.WriteString("\nAvailable sources per section (use these exact URLs):\n")
	for _, in := range inputs {
		fmt.Fprintf(&b, "\n## %s\n", in.config.Title)
		for _, l := range in.links {
			fmt.Fprintf(&b, "- %s | %s\n", l.Label, l.URL)
		}
	}

	b.WriteString("\n")
	b.WriteString(outputShape)
	return b.String()
}

package briefing

import (
	"fmt"
	"strings"
	"time"

	"deep-summarizer/models"
)

// EditionTitle formats the edition headline, e.g.
// "The Reno Times – Wednesday, Feb 18, 2026".
func EditionTitle(publication string, date time.Time) string {
	return fmt.Sprintf("%s – %s", publication, date.Format("Monday, Jan 2, 2006"))
}

// RenderMarkdown renders an edition for preview runs.
func RenderMarkdown(e *models.Edition) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", e.Title)
	for _, s := range e.Sections {
		fmt.Fprintf(&b, "\n## %s\n", s.Title)
		if s.TLDR != "" {
			fmt.Fprintf(&b, "\n**TL;DR:** %s\n", s.TLDR)
		}
		for _, p := range s.BodyParagraphs {
			fmt.Fprintf(&b, "\n%s\n", p)
		}
		if len(s.ActionableBullets) > 0 {
			b.WriteString("\n**So what for you / Actionables**\n\n")
			for _, a := range s.ActionableBullets {
				fmt.Fprintf(&b, "- %s\n", a)
			}
		}
		if len(s.Sources) > 0 {
			b.WriteString("\nRead further:\n")
			for _, l := range s.Sources {
				fmt.Fprintf(&b, "- [%s](%s)\n", l.Label, l.URL)
			}
		}
	}
	return b.String()
}

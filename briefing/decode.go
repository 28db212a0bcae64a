package briefing

import (
	"strings"

	"deep-summarizer/llm"
	"deep-summarizer/models"
)

func decodeSections(obj llm.Object, inputs []sectionInput) []models.EditionSection {
	raw := obj.Objects("sections")
	sections := make([]models.EditionSection, 0, len(raw))
	for _, o := range raw {
		sec := models.EditionSection{
			ID:                o.String("id"),
			Title:             o.String("title"),
			TLDR:              o.String("tldr"),
			BodyParagraphs:    o.Strings("paragraphs"),
			ActionableBullets: o.Strings("actionables"),
		}
		if len(sec.BodyParagraphs) == 0 && len(sec.ActionableBullets) == 0 {
			sec.BodyParagraphs, sec.ActionableBullets = SplitBullets(o.Strings("bullets"))
		}

		in, ok := matchInput(inputs, sec.ID, sec.Title)
		if ok {
			if sec.ID == "" {
				sec.ID = in.config.ID
			}
			if sec.Title == "" {
				sec.Title = in.config.Title
			}
		}

		sec.Sources = decodeSources(o.Objects("sources"))
		if len(sec.Sources) == 0 && ok && len(in.links) > 0 {
			sec.Sources = append([]models.SourceLink{}, in.links...)
		}
		sections = append(sections, sec)
	}
	return sections
}

// decodeSources keeps only links that carry both a url and a label.
func decodeSources(raw []llm.Object) []models.SourceLink {
	out := []models.SourceLink{}
	for _, o := range raw {
		url, label := o.String("url"), o.String("label")
		if url == "" || label == "" {
			continue
		}
		out = append(out, models.SourceLink{Label: label, URL: url})
	}
	return out
}

func matchInput(inputs []sectionInput, id, title string) (sectionInput, bool) {
	for _, in := range inputs {
		if id != "" && in.config.ID == id {
			return in, true
		}
	}
	for _, in := range inputs {
		if title != "" && strings.EqualFold(in.config.Title, title) {
			return in, true
		}
	}
	return sectionInput{}, false
}

// SplitBullets separates a flat bullet list into narrative paragraphs and
// actionable bullets. Everything from the first bullet mentioning "so what"
// or "actionables" onward is actionable.
func SplitBullets(bullets []string) ([]string, []string) {
	for i, b := range bullets {
		lower := strings.ToLower(b)
		if strings.Contains(lower, "so what") || strings.Contains(lower, "actionables") {
			return append([]string{}, bullets[:i]...), append([]string{}, bullets[i:]...)
		}
	}
	return append([]string{}, bullets...), []string{}
}

// DropEmptyTrailing removes trailing conclusion or "so what" sections that
// carry no content. Sections with a TL;DR are always kept.
func DropEmptyTrailing(sections []models.EditionSection) []models.EditionSection {
	for len(sections) > 0 {
		last := sections[len(sections)-1]
		title := strings.ToLower(last.Title)
		isWrapUp := strings.Contains(title, "conclusion") || strings.Contains(title, "so what")
		if !isWrapUp || last.HasContent() {
			break
		}
		sections = sections[:len(sections)-1]
	}
	return sections
}

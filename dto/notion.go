package dto

import (
	"strings"

	"deep-summarizer/docstore"
	"deep-summarizer/models"
	"deep-summarizer/services"
)

// SaveRequestDTO either creates a knowledge base document or, with
// AppendToPageID, AppendAs and AppendAnswer set, appends a follow-up to an
// existing page.
type SaveRequestDTO struct {
	Title       string   `json:"title,omitempty"`
	Area        string   `json:"area,omitempty" example:"Startups / VC"`
	Category    string   `json:"category,omitempty"`
	TopicTags   []string `json:"topicTags,omitempty"`
	ContentType string   `json:"contentType,omitempty" example:"Article"`
	SourceURL   string   `json:"sourceUrl,omitempty"`

	OneLiner         string           `json:"oneLiner,omitempty"`
	QuickTake        string           `json:"quickTake,omitempty"`
	Summary          string           `json:"summary,omitempty"`
	Bullets          []string         `json:"bullets,omitempty"`
	FounderTakeaways []string         `json:"founderTakeaways,omitempty"`
	KeyIdeas         []models.Section `json:"keyIdeas,omitempty"`

	AppendToPageID string   `json:"appendToPageId,omitempty"`
	AppendAs       string   `json:"appendAs,omitempty" example:"clarification"`
	AppendSnippet  string   `json:"appendSnippet,omitempty"`
	AppendQuestion string   `json:"appendQuestion,omitempty"`
	AppendAnswer   string   `json:"appendAnswer,omitempty"`
	AppendBullets  []string `json:"appendBullets,omitempty"`
	AppendSection  string   `json:"appendSection,omitempty"`
}

func (r SaveRequestDTO) ToInput() services.SaveInput {
	area := strings.TrimSpace(r.Area)
	if area == "" {
		area = strings.TrimSpace(r.Category)
	}

	var keyIdeas []models.Section
	for _, k := range r.KeyIdeas {
		if k.Title != "" || k.Body != "" {
			keyIdeas = append(keyIdeas, k)
		}
	}

	in := services.SaveInput{
		Title:       r.Title,
		Area:        area,
		TopicTags:   r.TopicTags,
		ContentType: r.ContentType,
		SourceURL:   r.SourceURL,
		Content: docstore.SummaryContent{
			OneLiner:         strings.TrimSpace(r.OneLiner),
			QuickTake:        strings.TrimSpace(r.QuickTake),
			KeyIdeas:         keyIdeas,
			Summary:          strings.TrimSpace(r.Summary),
			Bullets:          r.Bullets,
			FounderTakeaways: r.FounderTakeaways,
		},
		AppendTo: strings.TrimSpace(r.AppendToPageID),
	}
	if kind, ok := followUpKind(r.AppendAs); ok {
		in.FollowUp = &models.FollowUp{
			Kind:        kind,
			Snippet:     r.AppendSnippet,
			Question:    r.AppendQuestion,
			Answer:      r.AppendAnswer,
			Bullets:     r.AppendBullets,
			SectionHint: r.AppendSection,
		}
	}
	return in
}

func followUpKind(s string) (models.FollowUpKind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "clarification", "clarify":
		return models.FollowUpClarify, true
	case "research":
		return models.FollowUpResearch, true
	}
	return "", false
}

type CategoriesResponseDTO struct {
	Categories   []string `json:"categories"`
	TopicTags    []string `json:"topicTags"`
	ContentTypes []string `json:"contentTypes"`
}

type SettingsResponseDTO struct {
	NotionFrontPageURL *string `json:"notionFrontPageUrl"`
}

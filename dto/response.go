package dto

import "deep-summarizer/models"

// ErrorResponseDTO is the body of every failed request.
type ErrorResponseDTO struct {
	Error string `json:"error" example:"Question is required"`
	// NeedsManualInput is set when extraction failed and pasting the text
	// by hand would work.
	NeedsManualInput *bool  `json:"needsManualInput,omitempty"`
	Hint             string `json:"hint,omitempty"`
}

type MessageResponseDTO struct {
	Message string `json:"message" example:"ok"`
}

// EditionResponseDTO is returned by a daily briefing run. Markdown is only
// set for previews, EditionURL and Message only for stored runs.
type EditionResponseDTO struct {
	OK         bool                    `json:"ok"`
	Message    string                  `json:"message,omitempty"`
	Preview    bool                    `json:"preview"`
	EditionURL string                  `json:"editionUrl,omitempty"`
	Title      string                  `json:"editionTitle" example:"The Reno Times – Wednesday, Feb 18, 2026"`
	Date       string                  `json:"date" example:"2026-02-18"`
	Sections   []models.EditionSection `json:"sections"`
	Markdown   string                  `json:"markdown,omitempty"`
}

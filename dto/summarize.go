package dto

import (
	"encoding/base64"
	"strings"

	"deep-summarizer/extractor"
	"deep-summarizer/llm"
	"deep-summarizer/models"
)

// SummarizeRequestDTO selects the source by Type: paste uses Text, file uses
// FileBase64/FileName/MimeType, url uses URL and podcast_title uses Title.
type SummarizeRequestDTO struct {
	Type               string `json:"type" example:"url"`
	Text               string `json:"text,omitempty"`
	URL                string `json:"url,omitempty" example:"https://example.com/post"`
	FileBase64         string `json:"fileBase64,omitempty"`
	FileName           string `json:"fileName,omitempty" example:"deck.pdf"`
	MimeType           string `json:"mimeType,omitempty" example:"application/pdf"`
	Title              string `json:"title,omitempty"`
	CustomInstructions string `json:"customInstructions,omitempty"`
}

// ToInput decodes the request. A file body that is not valid base64 is
// reported as ok=false.
func (r SummarizeRequestDTO) ToInput() (extractor.Input, bool) {
	in := extractor.Input{
		Type:     extractor.InputType(strings.TrimSpace(r.Type)),
		Text:     r.Text,
		FileName: r.FileName,
		MimeType: r.MimeType,
		URL:      r.URL,
		Title:    r.Title,
	}
	if r.FileBase64 != "" {
		data := r.FileBase64
		// data URLs from the browser carry a "data:...;base64," prefix
		if _, rest, ok := strings.Cut(data, ";base64,"); ok {
			data = rest
		}
		raw, err := base64.StdEncoding.DecodeString(data)
		if err != nil {
			return in, false
		}
		in.FileData = raw
	}
	return in, true
}

type SummarizeResponseDTO struct {
	models.SummaryResult
	SourceLabel string         `json:"sourceLabel" example:"URL: https://example.com/post"`
	Usage       llm.TokenUsage `json:"usage"`
	CostUSD     float64        `json:"costUsd"`
}

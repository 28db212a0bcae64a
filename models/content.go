package models

// ExtractedContent is plain text pulled from a source, with a human-readable
// label for where it came from.
type ExtractedContent struct {
	Text        string `json:"text"`
	SourceLabel string `json:"sourceLabel"`
}

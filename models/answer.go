package models

// Answer is the response to a clarify or research question.
type Answer struct {
	Answer  string   `json:"answer"`
	Bullets []string `json:"bullets"`
}

type FollowUpKind string

const (
	FollowUpClarify  FollowUpKind = "clarify"
	FollowUpResearch FollowUpKind = "research"
)

// FollowUp is an answer appended to an already saved document.
type FollowUp struct {
	Kind        FollowUpKind `json:"kind"`
	Snippet     string       `json:"snippet,omitempty"`
	Question    string       `json:"question,omitempty"`
	Answer      string       `json:"answer"`
	Bullets     []string     `json:"bullets,omitempty"`
	SectionHint string       `json:"sectionHint,omitempty"`
}

package models

import "time"

// SourceLink is a labelled link cited by an edition section.
type SourceLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// EditionSection is one topical section of the daily briefing.
type EditionSection struct {
	ID                string       `json:"id"`
	Title             string       `json:"title"`
	TLDR              string       `json:"tldr"`
	BodyParagraphs    []string     `json:"bodyParagraphs"`
	ActionableBullets []string     `json:"actionableBullets"`
	Sources           []SourceLink `json:"sources"`
}

// HasContent reports whether the section carries anything worth rendering.
func (s EditionSection) HasContent() bool {
	return s.TLDR != "" || len(s.BodyParagraphs) > 0 || len(s.ActionableBullets) > 0
}

// Edition is one day's briefing. At most one edition exists per calendar date.
type Edition struct {
	Date     time.Time        `json:"date"`
	Title    string           `json:"title"`
	Sections []EditionSection `json:"sections"`
}

// DateKey is the calendar date the edition is keyed by, "2006-01-02".
func (e Edition) DateKey() string {
	return e.Date.Format("2006-01-02")
}

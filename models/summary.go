package models

// Section is a titled block of prose used by key ideas and deep summary sections.
type Section struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// SummaryResult is the layered summary produced for one source.
type SummaryResult struct {
	OneLiner            string    `json:"oneLiner"`
	QuickTake           string    `json:"quickTake"`
	KeyIdeas            []Section `json:"keyIdeas"`
	DeepSummarySections []Section `json:"deepSummarySections"`
	DeepSummary         string    `json:"deepSummary"`
	Bullets             []string  `json:"bullets"`
	Verdict             string    `json:"verdict"`
	VerdictReasons      []string  `json:"verdictReasons"`
	SourcesUsed         string    `json:"sourcesUsed"`
	FounderTakeaways    []string  `json:"founderTakeaways"`
}

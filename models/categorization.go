package models

// CategorizationResult assigns a saved document to the workspace taxonomy.
type CategorizationResult struct {
	Area        string   `json:"area"`
	TopicTags   []string `json:"topicTags"`
	ContentType string   `json:"contentType"`
}

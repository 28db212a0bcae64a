package models

// UsageEntry stores the cost of one billable call.
// Collection: usage_entries
type UsageEntry struct {
	ID             string  `bson:"_id" json:"id"`
	TimestampMs    int64   `bson:"timestamp_ms" json:"timestamp"`
	Endpoint       string  `bson:"endpoint" json:"endpoint"`
	InputTokens    *int64  `bson:"input_tokens,omitempty" json:"inputTokens,omitempty"`
	OutputTokens   *int64  `bson:"output_tokens,omitempty" json:"outputTokens,omitempty"`
	CharacterCount *int64  `bson:"character_count,omitempty" json:"characterCount,omitempty"`
	CostUSD        float64 `bson:"cost_usd" json:"costUsd"`
}

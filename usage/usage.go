// Package usage records the cost of every billable model call and reports
// aggregated spend.
package usage

import (
	"context"
	"sort"
	"time"

	"deep-summarizer/llm"
	"deep-summarizer/logger"
	"deep-summarizer/models"

	"github.com/google/uuid"
)

// Endpoints recorded in the ledger.
const (
	EndpointSummarize  = "summarize"
	EndpointTTS        = "tts"
	EndpointClarify    = "clarify"
	EndpointResearch   = "research"
	EndpointBriefing   = "briefing"
	EndpointCategorize = "categorize"
)

// Prices in USD.
const (
	InputPerMillionTokens  = 0.15
	OutputPerMillionTokens = 0.60
	TTSPerMillionChars     = 15.0

	byDayLimit  = 30
	recentLimit = 50
)

// Store persists usage entries.
type Store interface {
	Append(ctx context.Context, entry models.UsageEntry) error
	List(ctx context.Context) ([]models.UsageEntry, error)
}

type Ledger struct {
	store Store
	now   func() time.Time
}

func NewLedger(store Store) *Ledger {
	return &Ledger{store: store, now: time.Now}
}

// TokenCost prices a token usage at the chat model rates.
func TokenCost(u llm.TokenUsage) float64 {
	return float64(u.InputTokens)/1_000_000*InputPerMillionTokens +
		float64(u.OutputTokens)/1_000_000*OutputPerMillionTokens
}

// SpeechCost prices a speech synthesis by character count.
func SpeechCost(chars int) float64 {
	return float64(chars) / 1_000_000 * TTSPerMillionChars
}

// RecordTokens stores a token-billed call and returns its cost. A failure to
// persist is logged and never returned.
func (l *Ledger) RecordTokens(ctx context.Context, endpoint string, u llm.TokenUsage) float64 {
	cost := TokenCost(u)
	in, out := u.InputTokens, u.OutputTokens
	l.append(ctx, models.UsageEntry{
		Endpoint:     endpoint,
		InputTokens:  &in,
		OutputTokens: &out,
		CostUSD:      cost,
	})
	return cost
}

// RecordSpeech stores a speech synthesis call and returns its cost.
func (l *Ledger) RecordSpeech(ctx context.Context, chars int) float64 {
	cost := SpeechCost(chars)
	n := int64(chars)
	l.append(ctx, models.UsageEntry{
		Endpoint:       EndpointTTS,
		CharacterCount: &n,
		CostUSD:        cost,
	})
	return cost
}

func (l *Ledger) append(ctx context.Context, entry models.UsageEntry) {
	entry.ID = uuid.NewString()
	entry.TimestampMs = l.now().UnixMilli()
	if err := l.store.Append(ctx, entry); err != nil {
		logger.ErrorWithFields("failed to record usage", logger.Fields{
			"endpoint": entry.Endpoint,
			"error":    err.Error(),
		})
	}
}

// DayStats is the spend of one UTC calendar day.
type DayStats struct {
	Date       string             `json:"date"`
	CostUSD    float64            `json:"costUsd"`
	Summarize  float64            `json:"summarize"`
	TTS        float64            `json:"tts"`
	ByEndpoint map[string]float64 `json:"byEndpoint"`
}

type Stats struct {
	TotalCostUSD       float64             `json:"totalCostUsd"`
	TotalSummarizeCost float64             `json:"totalSummarizeCost"`
	TotalTTSCost       float64             `json:"totalTtsCost"`
	ByEndpoint         map[string]float64  `json:"byEndpoint"`
	ByDay              []DayStats          `json:"byDay"`
	Recent             []models.UsageEntry `json:"recent"`
}

func (l *Ledger) Stats(ctx context.Context) (*Stats, error) {
	entries, err := l.store.List(ctx)
	if err != nil {
		return nil, err
	}
	return Aggregate(entries), nil
}

// Aggregate computes totals, the 30 most recent days and the 50 most recent
// entries, newest first.
func Aggregate(entries []models.UsageEntry) *Stats {
	s := &Stats{
		ByEndpoint: map[string]float64{},
		ByDay:      []DayStats{},
		Recent:     []models.UsageEntry{},
	}

	days := map[string]*DayStats{}
	for _, e := range entries {
		s.TotalCostUSD += e.CostUSD
		s.ByEndpoint[e.Endpoint] += e.CostUSD

		date := time.UnixMilli(e.TimestampMs).UTC().Format("2006-01-02")
		d, ok := days[date]
		if !ok {
			d = &DayStats{Date: date, ByEndpoint: map[string]float64{}}
			days[date] = d
		}
		d.CostUSD += e.CostUSD
		d.ByEndpoint[e.Endpoint] += e.CostUSD
		switch e.Endpoint {
		case EndpointSummarize:
			d.Summarize += e.CostUSD
		case EndpointTTS:
			d.TTS += e.CostUSD
		}
	}
	s.TotalSummarizeCost = s.ByEndpoint[EndpointSummarize]
	s.TotalTTSCost = s.ByEndpoint[EndpointTTS]

	for _, d := range days {
		s.ByDay = append(s.ByDay, *d)
	}
	sort.Slice(s.ByDay, func(i, j int) bool { return s.ByDay[i].Date > s.ByDay[j].Date })
	if len(s.ByDay) > byDayLimit {
		s.ByDay = s.ByDay[:byDayLimit]
	}

	s.Recent = append(s.Recent, entries...)
	sort.SliceStable(s.Recent, func(i, j int) bool { return s.Recent[i].TimestampMs > s.Recent[j].TimestampMs })
	if len(s.Recent) > recentLimit {
		s.Recent = s.Recent[:recentLimit]
	}
	return s
}

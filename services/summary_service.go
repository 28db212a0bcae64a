package services

import (
	"context"

	"deep-summarizer/extractor"
	"deep-summarizer/llm"
	"deep-summarizer/models"
	"deep-summarizer/usage"
)

// ContentExtractor is satisfied by *extractor.Extractor.
type ContentExtractor interface {
	Extract(ctx context.Context, in extractor.Input) (*models.ExtractedContent, error)
}

// SourceSummarizer is satisfied by *summarizer.Summarizer.
type SourceSummarizer interface {
	Summarize(ctx context.Context, text, sourceLabel, customInstructions string) (*models.SummaryResult, llm.TokenUsage, error)
}

type SummarizeInput struct {
	Source             extractor.Input
	CustomInstructions string
}

type SummarizeOutput struct {
	Summary     *models.SummaryResult
	SourceLabel string
	Usage       llm.TokenUsage
	CostUSD     float64
}

type SummaryService struct {
	extractor  ContentExtractor
	summarizer SourceSummarizer
	ledger     *usage.Ledger
}

func NewSummaryService(ex ContentExtractor, sum SourceSummarizer, ledger *usage.Ledger) *SummaryService {
	return &SummaryService{extractor: ex, summarizer: sum, ledger: ledger}
}

// Summarize extracts the source and summarizes it. Extraction failures are
// returned as *extractor.ExtractionError.
func (s *SummaryService) Summarize(ctx context.Context, in SummarizeInput) (*SummarizeOutput, error) {
	switch in.Source.Type {
	case "":
		return nil, invalid("Missing type: paste | file | url | podcast_title")
	case extractor.InputPaste, extractor.InputFile, extractor.InputURL, extractor.InputPodcastTitle:
	default:
		return nil, invalid("Invalid type. Use paste, file, url, or podcast_title.")
	}
	if in.Source.Type == extractor.InputFile && (len(in.Source.FileData) == 0 || in.Source.FileName == "") {
		return nil, invalid("Missing fileBase64 or fileName")
	}

	content, err := s.extractor.Extract(ctx, in.Source)
	if err != nil {
		return nil, err
	}

	summary, tokens, err := s.summarizer.Summarize(ctx, content.Text, content.SourceLabel, in.CustomInstructions)
	cost := s.ledger.RecordTokens(ctx, usage.EndpointSummarize, tokens)
	if err != nil {
		return nil, err
	}
	return &SummarizeOutput{
		Summary:     summary,
		SourceLabel: content.SourceLabel,
		Usage:       tokens,
		CostUSD:     cost,
	}, nil
}

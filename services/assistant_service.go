package services

import (
	"context"
	"errors"

	"deep-summarizer/assistant"
	"deep-summarizer/llm"
	"deep-summarizer/models"
	"deep-summarizer/usage"
)

type AssistantService struct {
	assistant *assistant.Assistant
	ledger    *usage.Ledger
}

func NewAssistantService(a *assistant.Assistant, ledger *usage.Ledger) *AssistantService {
	return &AssistantService{assistant: a, ledger: ledger}
}

func (s *AssistantService) Clarify(ctx context.Context, snippet, question string) (*models.Answer, error) {
	ans, tokens, err := s.assistant.Clarify(ctx, snippet, question)
	return s.finish(ctx, usage.EndpointClarify, ans, tokens, err, "Snippet is required (paste the text you want clarified)")
}

func (s *AssistantService) Research(ctx context.Context, question string) (*models.Answer, error) {
	ans, tokens, err := s.assistant.Research(ctx, question)
	return s.finish(ctx, usage.EndpointResearch, ans, tokens, err, "Question is required")
}

func (s *AssistantService) finish(ctx context.Context, endpoint string, ans *models.Answer, tokens llm.TokenUsage, err error, emptyMessage string) (*models.Answer, error) {
	if errors.Is(err, assistant.ErrEmptyInput) {
		return nil, invalid(emptyMessage)
	}
	if tokens.Total() > 0 {
		s.ledger.RecordTokens(ctx, endpoint, tokens)
	}
	if err != nil {
		return nil, err
	}
	return ans, nil
}

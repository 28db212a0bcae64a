package llm

import (
	"context"
	"fmt"

	"deep-summarizer/config"
)

// NewFromConfig builds the chat client selected by llm.provider, wrapped in
// the configured quota.
func NewFromConfig(ctx context.Context, cfg config.AppConfig) (Client, error) {
	var client Client
	switch cfg.LLM.Provider {
	case "openai", "":
		if err := config.Require("OPENAI_API_KEY", cfg.Secrets.OpenAIAPIKey); err != nil {
			return nil, err
		}
		client = NewOpenAIClient(cfg.Secrets.OpenAIAPIKey, cfg.LLM.Model, cfg.LLM.SpeechModel, cfg.LLM.SpeechVoice)
	case "google":
		if err := config.Require("GEMINI_API_KEY", cfg.Secrets.GeminiAPIKey); err != nil {
			return nil, err
		}
		gc, err := NewGeminiClient(ctx, cfg.Secrets.GeminiAPIKey, cfg.LLM.Model)
		if err != nil {
			return nil, err
		}
		client = gc
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.LLM.Provider)
	}

	q := cfg.LLM.Quota
	if q.RequestsPerDay > 0 || q.RequestsPerMinute > 0 {
		client = NewQuotaClient(client, NewQuotaLimiter(q))
	}
	return client, nil
}

// NewSpeakerFromConfig builds the text-to-speech client. Speech is only
// available through OpenAI.
func NewSpeakerFromConfig(cfg config.AppConfig) (Speaker, error) {
	if err := config.Require("OPENAI_API_KEY", cfg.Secrets.OpenAIAPIKey); err != nil {
		return nil, err
	}
	return NewOpenAIClient(cfg.Secrets.OpenAIAPIKey, cfg.LLM.Model, cfg.LLM.SpeechModel, cfg.LLM.SpeechVoice), nil
}

package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"deep-summarizer/llm"
	"deep-summarizer/usage"
)

type SpeechService struct {
	speaker llm.Speaker
	ledger  *usage.Ledger
}

func NewSpeechService(speaker llm.Speaker, ledger *usage.Ledger) *SpeechService {
	return &SpeechService{speaker: speaker, ledger: ledger}
}

// Speak returns MP3 audio for text. Input beyond llm.SpeechInputLimit
// characters is dropped and not billed.
func (s *SpeechService) Speak(ctx context.Context, text string) ([]byte, error) {
	if strings.TrimSpace(text) == "" {
		return nil, invalid("Missing or invalid text")
	}
	text = llm.TruncateRunes(text, llm.SpeechInputLimit)

	audio, err := s.speaker.Speak(ctx, text)
	if err != nil {
		return nil, err
	}
	s.ledger.RecordSpeech(ctx, utf8.RuneCountInString(text))
	return audio, nil
}

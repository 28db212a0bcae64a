package llm

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// SpeechInputLimit is the maximum number of characters accepted by Speak.
const SpeechInputLimit = 4096

type OpenAIClient struct {
	client      *openai.Client
	model       string
	speechModel string
	speechVoice string
}

func NewOpenAIClient(apiKey, model, speechModel, speechVoice string) *OpenAIClient {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	if model == "" {
		model = string(openai.ChatModelGPT4oMini)
	}
	if speechModel == "" {
		speechModel = string(openai.SpeechModelTTS1)
	}
	if speechVoice == "" {
		speechVoice = string(openai.AudioSpeechNewParamsVoiceAlloy)
	}
	return &OpenAIClient{
		client:      &client,
		model:       model,
		speechModel: speechModel,
		speechVoice: speechVoice,
	}
}

func (c *OpenAIClient) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	model := req.Model
	if model == "" {
		model = c.model
	}

	messages := []openai.ChatCompletionMessageParamUnion{}
	if req.System != "" {
		messages = append(messages, openai.SystemMessage(req.System))
	}
	messages = append(messages, openai.UserMessage(req.Prompt))

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(model),
		Messages: messages,
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.MaxTokens))
	}
	if req.JSON {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &openai.ResponseFormatJSONObjectParam{},
		}
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("openai API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, ErrEmptyResponse
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return nil, ErrEmptyResponse
	}

	return &Response{
		Text:  text,
		Model: resp.Model,
		Usage: TokenUsage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
		},
		LatencyMs: since(start),
	}, nil
}

// Speak converts text to MP3 audio. Input beyond SpeechInputLimit characters
// is dropped.
func (c *OpenAIClient) Speak(ctx context.Context, text string) ([]byte, error) {
	text = TruncateRunes(text, SpeechInputLimit)

	resp, err := c.client.Audio.Speech.New(ctx, openai.AudioSpeechNewParams{
		Model:          openai.SpeechModel(c.speechModel),
		Input:          text,
		Voice:          openai.AudioSpeechNewParamsVoice(c.speechVoice),
		ResponseFormat: openai.AudioSpeechNewParamsResponseFormatMP3,
	})
	if err != nil {
		return nil, fmt.Errorf("openai speech error: %w", err)
	}
	defer resp.Body.Close()

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read speech audio: %w", err)
	}
	if len(audio) == 0 {
		return nil, ErrEmptyResponse
	}
	return audio, nil
}

// TruncateRunes cuts s to at most n characters.
func TruncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

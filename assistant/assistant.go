// Package assistant answers ad-hoc clarify and research questions.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"deep-summarizer/llm"
	"deep-summarizer/models"
)

const snippetLimit = 4000

var ErrEmptyInput = errors.New("empty input")

const defaultReader = "a busy founder building a three-sided marketplace in the medical field (Kinnect)"

const clarifyPrompt = `You are helping %s get quick clarification on something they highlighted, often from a news brief or an article.

You receive:
1. A snippet of text they selected (a sentence, paragraph, or bullet).
2. An optional question. If no question is given, explain what it means and how it could affect their company, relevant markets, macro, and them personally or as an entrepreneur.

Your job:
- Give a short, clear answer (sidebar-style: a few sentences or a few bullets). No long essays.
- Focus on what this means, why it matters and how it could affect the things they care about.
- If the snippet is jargon or dense, explain it in plain English first, then add impact.
- Do not invent facts; base your answer on the snippet and general knowledge. If something is uncertain, say so.

Respond with valid JSON only, no markdown:
{
  "answer": "Your clarification: 2-6 sentences or equivalent in bullets, focused and scannable.",
  "bullets": ["Optional 2-4 short takeaways worth saving."]
}`

const researchPrompt = `You are a research assistant for %s.

Your job:
- Answer the user's question accurately and in plain language.
- Break down complex concepts into simple, scannable parts.
- When relevant, explain how the answer affects their company, markets, macro, personal decisions, or entrepreneurship and finance.
- If something is time-sensitive or depends on real-time data, say so clearly.
- Do not invent facts or sources; if you're unsure, say so.
- Prefer structure: short paragraphs, bullet points where helpful.

Respond with valid JSON only, no markdown:
{
  "answer": "Full answer text, with paragraphs and optional bullets in plain text.",
  "bullets": ["Up to 5-8 short bullet takeaways worth saving."]
}`

type Assistant struct {
	client llm.Client
	reader string
	model  string
}

// New returns an Assistant. reader is a short description of who the answers
// are for; empty uses a default.
func New(client llm.Client, reader, model string) *Assistant {
	if strings.TrimSpace(reader) == "" {
		reader = defaultReader
	}
	return &Assistant{client: client, reader: reader, model: model}
}

// Clarify explains snippet, answering question when one is given.
func (a *Assistant) Clarify(ctx context.Context, snippet, question string) (*models.Answer, llm.TokenUsage, error) {
	snippet = strings.TrimSpace(snippet)
	if snippet == "" {
		return nil, llm.TokenUsage{}, fmt.Errorf("snippet: %w", ErrEmptyInput)
	}

	var prompt string
	if q := strings.TrimSpace(question); q != "" {
		prompt = fmt.Sprintf("Snippet they highlighted:\n\n\"%s\"\n\nTheir question: %s", llm.TruncateRunes(snippet, snippetLimit), q)
	} else {
		prompt = fmt.Sprintf("Snippet they highlighted:\n\n\"%s\"\n\nExplain what this means and how it could affect their company, markets, macro, and them personally or as an entrepreneur.", llm.TruncateRunes(snippet, snippetLimit))
	}
	return a.ask(ctx, fmt.Sprintf(clarifyPrompt, a.reader), prompt)
}

// Research answers a free-standing question.
func (a *Assistant) Research(ctx context.Context, question string) (*models.Answer, llm.TokenUsage, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, llm.TokenUsage{}, fmt.Errorf("question: %w", ErrEmptyInput)
	}
	return a.ask(ctx, fmt.Sprintf(researchPrompt, a.reader), question)
}

func (a *Assistant) ask(ctx context.Context, system, prompt string) (*models.Answer, llm.TokenUsage, error) {
	resp, err := a.client.Generate(ctx, llm.Request{
		System: system,
		Prompt: prompt,
		Model:  a.model,
		JSON:   true,
	})
	if err != nil {
		return nil, llm.TokenUsage{}, err
	}

	obj, err := llm.ParseObject(resp.Text)
	if err != nil {
		return nil, resp.Usage, err
	}
	return &models.Answer{
		Answer:  obj.String("answer"),
		Bullets: obj.Strings("bullets"),
	}, resp.Usage, nil
}

package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"

	"deep-summarizer/llm"
	"deep-summarizer/llm/llmtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClarify(t *testing.T) {
	fake := llmtest.NewFakeClient(llmtest.Reply{
		Text:  `{"answer":"A seed round of $10M is large for the stage.","bullets":["Bigger seed rounds","",42]}`,
		Usage: llm.TokenUsage{InputTokens: 120, OutputTokens: 40},
	})
	a := New(fake, "", "gpt-4o-mini")

	ans, usage, err := a.Clarify(context.Background(), "Company X raised $10M.", "")
	require.NoError(t, err)
	assert.NotEmpty(t, ans.Answer)
	assert.Equal(t, []string{"Bigger seed rounds"}, ans.Bullets)
	assert.Equal(t, int64(160), usage.Total())

	req := fake.Requests[0]
	assert.True(t, req.JSON)
	assert.Contains(t, req.System, "Kinnect")
	assert.Contains(t, req.Prompt, "Explain what this means")
}

func TestClarifyWithQuestionTruncatesSnippet(t *testing.T) {
	fake := llmtest.NewFakeClient(llmtest.Reply{Text: `{"answer":"ok"}`})
	_, _, err := New(fake, "a dentist", "").Clarify(context.Background(), strings.Repeat("a", 5000), "Why?")
	require.NoError(t, err)

	req := fake.Requests[0]
	assert.Contains(t, req.System, "a dentist")
	assert.Contains(t, req.Prompt, "Their question: Why?")
	assert.Contains(t, req.Prompt, strings.Repeat("a", 4000))
	assert.NotContains(t, req.Prompt, strings.Repeat("a", 4001))
}

func TestClarifyKeepsSnippetVerbatim(t *testing.T) {
	fake := llmtest.NewFakeClient(llmtest.Reply{Text: `{"answer":"ok"}`})
	snippet := "Line one.\nHe said \"hi\"."
	_, _, err := New(fake, "", "").Clarify(context.Background(), snippet, "")
	require.NoError(t, err)

	prompt := fake.Requests[0].Prompt
	assert.Contains(t, prompt, "\""+snippet+"\"")
	assert.NotContains(t, prompt, `\n`)
	assert.NotContains(t, prompt, `\"`)
}

func TestClarifyMissingAnswerDefaultsToEmpty(t *testing.T) {
	fake := llmtest.NewFakeClient(llmtest.Reply{Text: `{"bullets":"not a list"}`})
	ans, _, err := New(fake, "", "").Clarify(context.Background(), "x", "")
	require.NoError(t, err)
	assert.Equal(t, "", ans.Answer)
	assert.NotNil(t, ans.Bullets)
	assert.Empty(t, ans.Bullets)
}

func TestEmptyInputs(t *testing.T) {
	fake := llmtest.NewFakeClient()
	a := New(fake, "", "")

	_, _, err := a.Clarify(context.Background(), "  ", "q")
	assert.True(t, errors.Is(err, ErrEmptyInput))
	_, _, err = a.Research(context.Background(), "")
	assert.True(t, errors.Is(err, ErrEmptyInput))
	assert.Zero(t, fake.Calls())
}

func TestResearch(t *testing.T) {
	fake := llmtest.NewFakeClient(llmtest.Reply{Text: "```json\n{\"answer\":\"A DSO manages dental practices.\",\"bullets\":[\"Scale\"]}\n```"})
	ans, _, err := New(fake, "", "").Research(context.Background(), "What is a DSO?")
	require.NoError(t, err)
	assert.Equal(t, "A DSO manages dental practices.", ans.Answer)
	assert.Equal(t, "What is a DSO?", fake.Requests[0].Prompt)
}

func TestResearchModelError(t *testing.T) {
	fake := llmtest.NewFakeClient(llmtest.Reply{Err: errors.New("rate limited")})
	_, _, err := New(fake, "", "").Research(context.Background(), "q")
	assert.ErrorContains(t, err, "rate limited")
}

package summarizer

import (
	"context"
	"strings"
	"testing"

	"deep-summarizer/llm"
	"deep-summarizer/llm/llmtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullReply = `{
  "oneLiner": "Distribution beats product.",
  "quickTake": "A talk about go-to-market.",
  "verdict": "No",
  "verdictReasons": ["Covered here.", "Long."],
  "keyIdeas": [{"title": "Channels", "body": "Pick one."}],
  "deepSummarySections": [{"title": "Argument", "body": "Body one."}, {"title": "", "body": ""}],
  "bullets": ["One", "Two"],
  "sourcesUsed": "Podcast",
  "founderTakeaways": ["Do this."]
}`

func TestSummarizeShortTextSingleCall(t *testing.T) {
	fake := llmtest.NewFakeClient(llmtest.Reply{Text: fullReply, Usage: llm.TokenUsage{InputTokens: 100, OutputTokens: 50}})
	s := New(fake, "", "gpt-4o-mini", "gpt-4o-mini")

	res, usage, err := s.Summarize(context.Background(), "short text", "Pasted text", "")
	require.NoError(t, err)
	require.Equal(t, 1, fake.Calls())

	assert.True(t, fake.Requests[0].JSON)
	assert.Contains(t, fake.Requests[0].Prompt, "Source: Pasted text")
	assert.Contains(t, fake.Requests[0].System, DefaultPersona)

	assert.Equal(t, "Distribution beats product.", res.OneLiner)
	assert.Equal(t, "No", res.Verdict)
	require.Len(t, res.DeepSummarySections, 1)
	assert.Equal(t, "## Argument\n\nBody one.", res.DeepSummary)
	assert.Equal(t, []string{"One", "Two"}, res.Bullets)
	assert.Equal(t, llm.TokenUsage{InputTokens: 100, OutputTokens: 50}, usage)
}

func TestSummarizeLongTextChunksThenCombines(t *testing.T) {
	text := strings.Repeat("lorem ipsum dolor ", 2000) // 36000 chars -> several chunks

	var chunkCalls int
	fake := &llmtest.FakeClient{Respond: func(req llm.Request) llmtest.Reply {
		if req.JSON {
			return llmtest.Reply{Text: fullReply, Usage: llm.TokenUsage{InputTokens: 10, OutputTokens: 10}}
		}
		chunkCalls++
		assert.LessOrEqual(t, len([]rune(req.Prompt)), chunkInputLimit)
		assert.Equal(t, chunkMaxTokens, req.MaxTokens)
		return llmtest.Reply{Text: "chunk summary", Usage: llm.TokenUsage{InputTokens: 1000, OutputTokens: 100}}
	}}
	s := New(fake, "A reader.", "final-model", "chunk-model")

	_, usage, err := s.Summarize(context.Background(), text, "URL: x", "Focus on pricing")
	require.NoError(t, err)

	assert.Greater(t, chunkCalls, 1)
	final := fake.Requests[len(fake.Requests)-1]
	assert.Equal(t, "final-model", final.Model)
	assert.Equal(t, "chunk-model", fake.Requests[0].Model)
	assert.Contains(t, final.Prompt, "chunk summary\n\nchunk summary")
	assert.Contains(t, final.Prompt, "Additional instructions for this summary (follow these as well):\nFocus on pricing")
	assert.Contains(t, final.System, "A reader.")

	want := llm.TokenUsage{InputTokens: int64(chunkCalls)*1000 + 10, OutputTokens: int64(chunkCalls)*100 + 10}
	assert.Equal(t, want, usage)
}

func TestSummarizeDefaults(t *testing.T) {
	fake := llmtest.NewFakeClient(llmtest.Reply{Text: `{"deepSummary": "` + strings.Repeat("d", 600) + `", "bullets": "single", "verdictReasons": 4}`})
	s := New(fake, "", "", "")

	res, _, err := s.Summarize(context.Background(), "text", "File: a.txt", "")
	require.NoError(t, err)

	assert.Len(t, res.QuickTake, 500)
	assert.Len(t, res.OneLiner, 200)
	assert.Equal(t, "Yes", res.Verdict)
	assert.Equal(t, "File: a.txt", res.SourcesUsed)
	assert.Equal(t, []string{"single"}, res.Bullets)
	assert.Empty(t, res.VerdictReasons)
	assert.NotNil(t, res.KeyIdeas)
	assert.Empty(t, res.FounderTakeaways)
}

func TestSummarizeEmptyObjectUsesFallbackOneLiner(t *testing.T) {
	fake := llmtest.NewFakeClient(llmtest.Reply{Text: `{}`})
	res, _, err := New(fake, "", "", "").Summarize(context.Background(), "text", "Pasted text", "")
	require.NoError(t, err)
	assert.Equal(t, "Key ideas and takeaways from the source.", res.OneLiner)
}

func TestSummarizeRejectsNonJSON(t *testing.T) {
	fake := llmtest.NewFakeClient(llmtest.Reply{Text: "Sorry, I cannot help with that."})
	_, _, err := New(fake, "", "", "").Summarize(context.Background(), "text", "Pasted text", "")
	assert.Error(t, err)
}

func TestSummarizeCustomInstructionsTruncated(t *testing.T) {
	prompt := buildFinalPrompt("body", "src", strings.Repeat("i", 3000))
	idx := strings.Index(prompt, "as well):\n")
	require.Greater(t, idx, 0)
	assert.Len(t, prompt[idx+len("as well):\n"):], customInstructionLimit)

	assert.NotContains(t, buildFinalPrompt("body", "src", "   "), "Additional instructions")
}

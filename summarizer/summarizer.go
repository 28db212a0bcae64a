// Package summarizer produces the layered summary of a source: chunk
// summaries for long inputs, then one structured final pass.
package summarizer

import (
	"context"
	"fmt"
	"strings"

	"deep-summarizer/chunker"
	"deep-summarizer/llm"
	"deep-summarizer/logger"
	"deep-summarizer/models"
)

const (
	chunkInputLimit        = 14000
	chunkMaxTokens         = 2000
	finalInputLimit        = 28000
	finalMaxTokens         = 6000
	customInstructionLimit = 2000

	defaultOneLiner = "Key ideas and takeaways from the source."
	defaultVerdict  = "Yes"
)

const DefaultPersona = `You are speaking to a busy founder building a three-sided marketplace in the medical field (Kinnect).
They do not want to read or listen to the full source.`

const systemPromptTemplate = `You are an expert summarizer and operator coach, like Blinkist but deeper, for one reader. Output exactly two main "pages" plus a front verdict.

Reader profile:
%s

Your output has:
  (1) FRONT: Should the reader read/listen to the full source? Yes or No, and why or why not (2-4 clear reasons).
  (2) PAGE 1 - Deep summary: 5-8 SECTIONS. Each section has a short title and a body that goes INTO DEPTH on that part of the content (arguments, examples, frameworks, edge cases). Each section is standalone. Use third person for the author/speaker; second person when addressing the reader. Paragraphs only within each section.
  (3) PAGE 2 - Founder takeaways: real-world applications for the reader's company, industry and life. Tactical and personal. 3-8 paragraphs.

Rules:
- No hallucinations: only facts, ideas, and examples clearly present in the text.
- Prioritize strategy, positioning, moat, growth, marketplace dynamics, pricing, retention, execution, hiring, leadership, mental models, and anything relevant to healthcare or marketplaces.
- When the source is dense or academic, explain in plain English with a short example where it helps.

Respond only with valid JSON in this exact shape (no markdown, no extra text):
{
  "oneLiner": "Single sentence: the core idea or takeaway.",
  "quickTake": "2-4 sentences: what this is, why it matters, main implication for the reader.",
  "verdict": "Yes" or "No",
  "verdictReasons": ["2-4 reasons: why or why not read the full source."],
  "keyIdeas": [{ "title": "Idea", "body": "1-3 sentences." }],
  "deepSummarySections": [{ "title": "Section title", "body": "150-400 words of in-depth coverage. Paragraphs only." }],
  "bullets": ["Key point."],
  "sourcesUsed": "Brief note on source type (e.g. long-form podcast, tactical blog).",
  "founderTakeaways": ["3-8 paragraphs of real-world application."]
}`

const chunkPrompt = `You are helping summarize a long source for a busy founder.

Summarize THIS SECTION ONLY of a longer document:
- Capture all important ideas, facts, arguments, and examples in this chunk.
- Emphasize anything that looks like strategy, execution, markets, psychology, or other operator/entrepreneurial lessons.
- Write in second person ("you") and in simple, clear language.
- It is fine if the chunk summary is a few paragraphs long; do not skip key details just to be short.

Output plain text only (no JSON, no markdown).`

type Summarizer struct {
	client     llm.Client
	persona    string
	model      string
	chunkModel string
}

func New(client llm.Client, persona, model, chunkModel string) *Summarizer {
	if strings.TrimSpace(persona) == "" {
		persona = DefaultPersona
	}
	return &Summarizer{client: client, persona: persona, model: model, chunkModel: chunkModel}
}

// Summarize returns the summary of text together with the tokens spent on
// every call it made. The final reply must be a JSON object; anything else is
// an error.
func (s *Summarizer) Summarize(ctx context.Context, text, sourceLabel, customInstructions string) (*models.SummaryResult, llm.TokenUsage, error) {
	var usage llm.TokenUsage

	fullText := text
	chunks := chunker.Chunk(text, chunker.DefaultMaxChars, chunker.DefaultOverlapChars)
	if len(chunks) > 1 {
		summaries := make([]string, 0, len(chunks))
		for i, chunk := range chunks {
			resp, err := s.client.Generate(ctx, llm.Request{
				System:    chunkPrompt,
				Prompt:    llm.TruncateRunes(chunk, chunkInputLimit),
				Model:     s.chunkModel,
				MaxTokens: chunkMaxTokens,
			})
			if err != nil {
				return nil, usage, fmt.Errorf("chunk %d/%d summary failed: %w", i+1, len(chunks), err)
			}
			usage.Add(resp.Usage)
			if t := strings.TrimSpace(resp.Text); t != "" {
				summaries = append(summaries, t)
			}
		}
		logger.DebugWithFields("chunk summaries done", logger.Fields{"chunks": len(chunks), "input_tokens": usage.InputTokens})
		fullText = strings.Join(summaries, "\n\n")
	}

	resp, err := s.client.Generate(ctx, llm.Request{
		System:    fmt.Sprintf(systemPromptTemplate, s.persona),
		Prompt:    buildFinalPrompt(fullText, sourceLabel, customInstructions),
		Model:     s.model,
		MaxTokens: finalMaxTokens,
		JSON:      true,
	})
	if err != nil {
		return nil, usage, fmt.Errorf("final summary failed: %w", err)
	}
	usage.Add(resp.Usage)

	obj, err := llm.ParseObject(resp.Text)
	if err != nil {
		return nil, usage, err
	}
	return decodeSummary(obj, sourceLabel), usage, nil
}

func buildFinalPrompt(text, sourceLabel, customInstructions string) string {
	var sb strings.Builder
	sb.WriteString("Source: ")
	sb.WriteString(sourceLabel)
	sb.WriteString("\n\nText to summarize for the founder:\n\n")
	sb.WriteString(llm.TruncateRunes(text, finalInputLimit))
	if ci := strings.TrimSpace(customInstructions); ci != "" {
		sb.WriteString("\n\n---\nAdditional instructions for this summary (follow these as well):\n")
		sb.WriteString(llm.TruncateRunes(ci, customInstructionLimit))
	}
	return sb.String()
}

func decodeSections(obj llm.Object, key string) []models.Section {
	var out []models.Section
	for _, item := range obj.Objects(key) {
		title, body := item.String("title"), item.String("body")
		if title == "" && body == "" {
			continue
		}
		out = append(out, models.Section{Title: title, Body: body})
	}
	return out
}

func decodeSummary(obj llm.Object, sourceLabel string) *models.SummaryResult {
	sections := decodeSections(obj, "deepSummarySections")

	deepSummary := obj.String("deepSummary")
	if deepSummary == "" && len(sections) > 0 {
		parts := make([]string, 0, len(sections))
		for _, sec := range sections {
			parts = append(parts, "## "+sec.Title+"\n\n"+sec.Body)
		}
		deepSummary = strings.Join(parts, "\n\n")
	}

	quickTake := obj.String("quickTake")
	if quickTake == "" {
		quickTake = llm.TruncateRunes(deepSummary, 500)
	}

	oneLiner := obj.String("oneLiner")
	if oneLiner == "" {
		oneLiner = llm.TruncateRunes(quickTake, 200)
	}
	if oneLiner == "" {
		oneLiner = defaultOneLiner
	}

	return &models.SummaryResult{
		OneLiner:            oneLiner,
		QuickTake:           quickTake,
		KeyIdeas:            nonNilSections(decodeSections(obj, "keyIdeas")),
		DeepSummarySections: nonNilSections(sections),
		DeepSummary:         deepSummary,
		Bullets:             stringsOrScalar(obj, "bullets"),
		Verdict:             obj.StringOr("verdict", defaultVerdict),
		VerdictReasons:      stringsOrScalar(obj, "verdictReasons"),
		SourcesUsed:         obj.StringOr("sourcesUsed", sourceLabel),
		FounderTakeaways:    obj.Strings("founderTakeaways"),
	}
}

// stringsOrScalar accepts either an array of strings or a single string.
func stringsOrScalar(obj llm.Object, key string) []string {
	if items := obj.Strings(key); len(items) > 0 {
		return items
	}
	if s := obj.String(key); s != "" {
		return []string{s}
	}
	return []string{}
}

func nonNilSections(s []models.Section) []models.Section {
	if s == nil {
		return []models.Section{}
	}
	return s
}

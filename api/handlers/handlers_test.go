package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deep-summarizer/api/auth"
	"deep-summarizer/assistant"
	"deep-summarizer/briefing"
	"deep-summarizer/categorizer"
	"deep-summarizer/config"
	"deep-summarizer/docstore"
	"deep-summarizer/extractor"
	"deep-summarizer/feeder"
	"deep-summarizer/llm"
	"deep-summarizer/llm/llmtest"
	"deep-summarizer/services"
	"deep-summarizer/summarizer"
	"deep-summarizer/usage"
)

const testSecret = "s3cret"

type downFeeds struct{}

func (downFeeds) Fetch(context.Context, string, int, int) ([]feeder.RssFeedItem, error) {
	return nil, errors.New("connection refused")
}

type testServer struct {
	engine  *gin.Engine
	llm     *llmtest.FakeClient
	speaker *llmtest.FakeSpeaker
	ledger  *usage.Ledger
	docs    *docstore.MemoryStore
}

func newTestServer(notion config.NotionConfig) *testServer {
	gin.SetMode(gin.TestMode)

	s := &testServer{
		llm:     llmtest.NewFakeClient(),
		speaker: &llmtest.FakeSpeaker{Audio: []byte("ID3audio")},
		ledger:  usage.NewLedger(usage.NewMemoryStore()),
		docs:    docstore.NewMemoryStore(),
	}
	writer := docstore.NewWriter(s.docs, notion)
	editions := services.NewEditionService(briefing.New(s.llm, downFeeds{}), writer, s.ledger, config.BriefingConfig{Timezone: "UTC"})

	r := gin.New()
	api := r.Group("/api/v1")
	api.POST("/summarize", SummarizeHandler(services.NewSummaryService(extractor.New(), summarizer.New(s.llm, "", "", ""), s.ledger)))
	api.GET("/daily-briefing", auth.RequireSecret(testSecret), DailyBriefingHandler(editions))
	api.GET("/settings", SettingsHandler(editions))
	api.POST("/clarify", ClarifyHandler(services.NewAssistantService(assistant.New(s.llm, "", ""), s.ledger)))
	api.POST("/research", ResearchHandler(services.NewAssistantService(assistant.New(s.llm, "", ""), s.ledger)))
	api.POST("/tts", SpeechHandler(services.NewSpeechService(s.speaker, s.ledger)))
	api.POST("/notion/save", SaveDocumentHandler(services.NewSaveService(writer, categorizer.New(s.llm), s.ledger)))
	api.GET("/notion/categories", CategoriesHandler())
	api.GET("/usage", UsageHandler(s.ledger))
	s.engine = r
	return s
}

func (s *testServer) do(method, target string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		_ = json.NewEncoder(&buf).Encode(b)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestSummarizeHandler(t *testing.T) {
	testCases := []struct {
		name       string
		body       any
		wantStatus int
		wantError  string
	}{
		{
			name:       "invalid json",
			body:       "{",
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid JSON body",
		},
		{
			name:       "missing type",
			body:       map[string]string{},
			wantStatus: http.StatusBadRequest,
			wantError:  "Missing type: paste | file | url | podcast_title",
		},
		{
			name:       "unknown type",
			body:       map[string]string{"type": "video"},
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid type. Use paste, file, url, or podcast_title.",
		},
		{
			name:       "file without name",
			body:       map[string]string{"type": "file", "fileBase64": "aGk="},
			wantStatus: http.StatusBadRequest,
			wantError:  "Missing fileBase64 or fileName",
		},
		{
			name:       "empty paste",
			body:       map[string]string{"type": "paste", "text": "  "},
			wantStatus: http.StatusUnprocessableEntity,
			wantError:  "No text provided",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			s := newTestServer(config.NotionConfig{})
			w := s.do(http.MethodPost, "/api/v1/summarize", testCase.body)

			assert.Equal(t, testCase.wantStatus, w.Code)
			assert.Equal(t, testCase.wantError, decode(t, w)["error"])
			assert.Zero(t, s.llm.Calls())
		})
	}
}

func TestSummarizeHandlerExtractionFailureFlagsManualInput(t *testing.T) {
	s := newTestServer(config.NotionConfig{})
	w := s.do(http.MethodPost, "/api/v1/summarize", map[string]string{"type": "paste"})

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := decode(t, w)
	assert.Contains(t, body, "needsManualInput")
}

func TestSummarizeHandlerSuccess(t *testing.T) {
	s := newTestServer(config.NotionConfig{})
	s.llm.Replies = []llmtest.Reply{{
		Text:  `{"oneLiner":"Raise early.","deepSummary":"Long form.","bullets":["a","b"],"verdict":"Yes","verdictReasons":["clear"]}`,
		Usage: llm.TokenUsage{InputTokens: 1000, OutputTokens: 100},
	}}

	w := s.do(http.MethodPost, "/api/v1/summarize", map[string]string{"type": "paste", "text": "Company X raised $10M."})

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Raise early.", body["oneLiner"])
	assert.Equal(t, "Long form.", body["deepSummary"])
	assert.Equal(t, "Pasted text", body["sourceLabel"])
	assert.Equal(t, []any{"a", "b"}, body["bullets"])

	stats, err := s.ledger.Stats(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 0.00021, stats.ByEndpoint[usage.EndpointSummarize], 1e-12)
}

func TestDailyBriefingHandler(t *testing.T) {
	t.Run("wrong secret", func(t *testing.T) {
		s := newTestServer(config.NotionConfig{})
		w := s.do(http.MethodGet, "/api/v1/daily-briefing?secret=nope", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Unauthorized", decode(t, w)["error"])
	})

	t.Run("missing editions database", func(t *testing.T) {
		s := newTestServer(config.NotionConfig{})
		w := s.do(http.MethodGet, "/api/v1/daily-briefing?secret="+testSecret, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decode(t, w)["error"], "NOTION_NEWSPAPER_DATABASE_ID")
	})

	t.Run("preview with every feed down", func(t *testing.T) {
		s := newTestServer(config.NotionConfig{})
		s.llm.Replies = []llmtest.Reply{{Text: `{"sections":[]}`}}

		w := s.do(http.MethodGet, "/api/v1/daily-briefing?secret="+testSecret+"&preview=1", nil)

		require.Equal(t, http.StatusOK, w.Code)
		body := decode(t, w)
		sections, ok := body["sections"].([]any)
		require.True(t, ok)
		assert.NotEmpty(t, sections)
		assert.NotEmpty(t, body["markdown"])
		assert.Equal(t, true, body["preview"])
	})

	t.Run("stored run redirects", func(t *testing.T) {
		s := newTestServer(config.NotionConfig{NewspaperDatabaseID: "22222222222222222222222222222222"})
		s.llm.Replies = []llmtest.Reply{{Text: `{"sections":[{"id":"crypto","title":"Crypto","tldr":"Up."}]}`}}

		w := s.do(http.MethodGet, "/api/v1/daily-briefing?secret="+testSecret+"&redirect=true", nil)

		require.Equal(t, http.StatusFound, w.Code)
		assert.Contains(t, w.Header().Get("Location"), "https://notion.so/")
		assert.Len(t, s.docs.Pages("22222222222222222222222222222222"), 1)
	})

	t.Run("header secret", func(t *testing.T) {
		s := newTestServer(config.NotionConfig{})
		s.llm.Replies = []llmtest.Reply{{Text: `{"sections":[]}`}}

		req := httptest.NewRequest(http.MethodGet, "/api/v1/daily-briefing?preview=true", nil)
		req.Header.Set("X-Cron-Secret", testSecret)
		w := httptest.NewRecorder()
		s.engine.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestAssistantHandlers(t *testing.T) {
	s := newTestServer(config.NotionConfig{})
	s.llm.Replies = []llmtest.Reply{{
		Text:  `{"answer":"A SAFE is a convertible instrument."}`,
		Usage: llm.TokenUsage{InputTokens: 10, OutputTokens: 10},
	}}

	w := s.do(http.MethodPost, "/api/v1/research", map[string]string{"question": "What is a SAFE?"})
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "A SAFE is a convertible instrument.", body["answer"])
	assert.Equal(t, []any{}, body["bullets"])

	w = s.do(http.MethodPost, "/api/v1/clarify", map[string]string{"question": "why?"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Snippet is required (paste the text you want clarified)", decode(t, w)["error"])

	s.llm.Replies = []llmtest.Reply{{Err: llm.ErrQuotaExceeded}}
	w = s.do(http.MethodPost, "/api/v1/clarify", map[string]string{"snippet": "Rates held."})
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestSpeechHandler(t *testing.T) {
	s := newTestServer(config.NotionConfig{})

	w := s.do(http.MethodPost, "/api/v1/tts", map[string]string{"text": "Hello there"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "audio/mpeg", w.Header().Get("Content-Type"))
	assert.Equal(t, "ID3audio", w.Body.String())

	w = s.do(http.MethodPost, "/api/v1/tts", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing or invalid text", decode(t, w)["error"])
}

func TestSaveDocumentHandler(t *testing.T) {
	const kb = "11111111111111111111111111111111"
	s := newTestServer(config.NotionConfig{DatabaseID: kb})

	w := s.do(http.MethodPost, "/api/v1/notion/save", map[string]any{
		"title":       "Pricing power",
		"area":        "Kinnect",
		"topicTags":   []string{"Strategy"},
		"contentType": "Podcast",
		"summary":     "Charge more.",
	})
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.NotEmpty(t, body["pageId"])
	assert.Zero(t, s.llm.Calls())

	pages := s.docs.Pages(kb)
	require.Len(t, pages, 1)
	assert.Equal(t, "Pricing power", pages[0].Props.Title)

	page := s.docs.AddPage("33333333333333333333333333333333")
	w = s.do(http.MethodPost, "/api/v1/notion/save", map[string]any{
		"appendToPageId": "https://www.notion.so/Front-33333333333333333333333333333333",
		"appendAs":       "research",
		"appendQuestion": "Why?",
		"appendAnswer":   "Because.",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["appended"])
	assert.Len(t, page.Children, 3)
}

func TestCategoriesAndSettings(t *testing.T) {
	s := newTestServer(config.NotionConfig{})

	w := s.do(http.MethodGet, "/api/v1/notion/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["categories"], len(categorizer.Areas))

	w = s.do(http.MethodGet, "/api/v1/settings", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Contains(t, body, "notionFrontPageUrl")
	assert.Nil(t, body["notionFrontPageUrl"])

	s = newTestServer(config.NotionConfig{FrontPageID: "3333-3333"})
	w = s.do(http.MethodGet, "/api/v1/settings", nil)
	assert.Equal(t, "https://notion.so/33333333", decode(t, w)["notionFrontPageUrl"])
}

func TestUsageHandler(t *testing.T) {
	s := newTestServer(config.NotionConfig{})
	s.ledger.RecordSpeech(context.Background(), 1000)

	w := s.do(http.MethodGet, "/api/v1/usage", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.InDelta(t, 0.015, body["totalTtsCost"], 1e-12)
	assert.Len(t, body["recent"], 1)
}

func TestStatusFor(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want int
	}{
		{name: "missing setting", err: &config.MissingSettingError{Name: "OPENAI_API_KEY"}, want: http.StatusInternalServerError},
		{name: "quota", err: llm.ErrQuotaExceeded, want: http.StatusTooManyRequests},
		{name: "timeout", err: context.DeadlineExceeded, want: http.StatusGatewayTimeout},
		{name: "upstream", err: errors.New("notion: 502"), want: http.StatusInternalServerError},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			got, body := statusFor(testCase.err)
			assert.Equal(t, testCase.want, got)
			assert.Equal(t, testCase.err.Error(), body.Error)
		})
	}
}

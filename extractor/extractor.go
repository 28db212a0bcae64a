// Package extractor turns user supplied sources (pasted text, files, links and
// podcast titles) into plain text ready for summarization.
package extractor

import (
	"context"
	"net/http"
	"strings"
	"time"

	"deep-summarizer/httpclient"
	"deep-summarizer/models"
	"deep-summarizer/spotify"
	"deep-summarizer/youtube"
)

// InputType selects how Input is interpreted.
type InputType string

const (
	InputPaste        InputType = "paste"
	InputFile         InputType = "file"
	InputURL          InputType = "url"
	InputPodcastTitle InputType = "podcast_title"
)

// Input is one source to extract. Only the fields of its Type are read.
type Input struct {
	Type     InputType
	Text     string
	FileName string
	MimeType string
	FileData []byte
	URL      string
	Title    string
}

// PodcastResolver looks up podcast episode metadata.
type PodcastResolver interface {
	EpisodeInfo(ctx context.Context, rawURL string) (*spotify.Episode, error)
	OEmbed(ctx context.Context, rawURL string) (title, author string, err error)
}

// HTMLRenderer renders pages that need JavaScript.
type HTMLRenderer interface {
	RenderHTML(ctx context.Context, url string) (string, error)
}

const (
	// minTranscriptChars is the shortest discovered transcript accepted.
	minTranscriptChars = 500
	maxPageBytes       = 5 << 20
	searchResults      = 10
)

type Extractor struct {
	httpClient  *http.Client
	searcher    youtube.Searcher
	transcripts youtube.TranscriptFetcher
	podcasts    PodcastResolver
	renderer    HTMLRenderer
}

type Option func(*Extractor)

func WithHTTPClient(c *http.Client) Option {
	return func(e *Extractor) { e.httpClient = c }
}

func WithSearcher(s youtube.Searcher) Option {
	return func(e *Extractor) { e.searcher = s }
}

func WithTranscripts(t youtube.TranscriptFetcher) Option {
	return func(e *Extractor) { e.transcripts = t }
}

func WithPodcasts(p PodcastResolver) Option {
	return func(e *Extractor) { e.podcasts = p }
}

func WithRenderer(r HTMLRenderer) Option {
	return func(e *Extractor) { e.renderer = r }
}

func New(opts ...Option) *Extractor {
	e := &Extractor{}
	for _, opt := range opts {
		opt(e)
	}
	if e.httpClient == nil {
		e.httpClient = httpclient.NewBrowser(30 * time.Second)
	}
	if e.transcripts == nil {
		e.transcripts = youtube.NewCaptionFetcher(e.httpClient, "en")
	}
	return e
}

// Extract dispatches on in.Type. Every failure is an *ExtractionError.
func (e *Extractor) Extract(ctx context.Context, in Input) (*models.ExtractedContent, error) {
	switch in.Type {
	case InputPaste:
		return e.FromPaste(in.Text)
	case InputFile:
		return e.FromFile(in.FileData, in.FileName, in.MimeType)
	case InputURL:
		return e.FromURL(ctx, in.URL)
	case InputPodcastTitle:
		return e.FromPodcastTitle(ctx, in.Title)
	default:
		return nil, fail(KindInvalidInput, string(in.Type), "Invalid type. Use paste, file, url, or podcast_title.")
	}
}

// FromPaste accepts user text as is.
func (e *Extractor) FromPaste(text string) (*models.ExtractedContent, error) {
	t := strings.TrimSpace(text)
	if t == "" {
		return nil, fail(KindEmptyInput, "paste", "No text provided")
	}
	return &models.ExtractedContent{Text: t, SourceLabel: "Pasted text"}, nil
}

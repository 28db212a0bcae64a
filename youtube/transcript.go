package youtube

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	ytdl "github.com/kkdai/youtube/v2"
)

var spaces = regexp.MustCompile(`\s+`)

// CaptionFetcher reads caption transcripts through the innertube API.
type CaptionFetcher struct {
	client   ytdl.Client
	language string
}

func NewCaptionFetcher(httpClient *http.Client, language string) *CaptionFetcher {
	if language == "" {
		language = "en"
	}
	return &CaptionFetcher{
		client:   ytdl.Client{HTTPClient: httpClient},
		language: language,
	}
}

// Transcript returns the caption segments joined into one whitespace
// collapsed string. Disabled or empty captions yield ErrNoTranscript.
func (f *CaptionFetcher) Transcript(ctx context.Context, videoID string) (string, error) {
	video, err := f.client.GetVideoContext(ctx, videoID)
	if err != nil {
		return "", fmt.Errorf("failed to load video %s: %w", videoID, err)
	}

	segments, err := f.client.GetTranscriptCtx(ctx, video, f.language)
	if err != nil {
		if errors.Is(err, ytdl.ErrTranscriptDisabled) {
			return "", ErrNoTranscript
		}
		return "", fmt.Errorf("could not fetch transcript: %w", err)
	}

	parts := make([]string, 0, len(segments))
	for _, seg := range segments {
		parts = append(parts, seg.Text)
	}
	text := JoinTranscript(parts)
	if text == "" {
		return "", ErrNoTranscript
	}
	return text, nil
}

// JoinTranscript joins caption lines with single spaces.
func JoinTranscript(lines []string) string {
	return strings.TrimSpace(spaces.ReplaceAllString(strings.Join(lines, " "), " "))
}

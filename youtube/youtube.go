// Package youtube finds videos and fetches their caption transcripts.
package youtube

import (
	"context"
	"errors"
	"regexp"
)

// ErrNoTranscript is returned when a video has no usable captions.
var ErrNoTranscript = errors.New("no transcript available for this video")

var (
	urlPattern = regexp.MustCompile(`(?i)(?:youtube\.com/(?:watch\?v=|embed/|v/|shorts/)|youtu\.be/)`)
	idPattern  = regexp.MustCompile(`(?:youtube\.com/(?:watch\?v=|embed/|v/|shorts/)|youtu\.be/)([a-zA-Z0-9_-]{11})`)
)

// Video is a search hit.
type Video struct {
	ID              string
	Title           string
	DurationSeconds int
}

// Searcher finds videos for a free-text query.
type Searcher interface {
	Search(ctx context.Context, query string, max int) ([]Video, error)
}

// TranscriptFetcher returns the caption text of a video.
type TranscriptFetcher interface {
	Transcript(ctx context.Context, videoID string) (string, error)
}

// IsVideoURL reports whether rawURL points at a YouTube video.
func IsVideoURL(rawURL string) bool {
	return urlPattern.MatchString(rawURL)
}

// VideoID extracts the 11 character id from a YouTube URL.
func VideoID(rawURL string) (string, bool) {
	m := idPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// WatchURL is the canonical watch page of a video.
func WatchURL(id string) string {
	return "https://www.youtube.com/watch?v=" + id
}

package extractor

import (
	"context"
	"strings"

	"deep-summarizer/models"
	"deep-summarizer/youtube"
)

// FromPodcastTitle searches YouTube for a long-form episode and uses its
// transcript.
func (e *Extractor) FromPodcastTitle(ctx context.Context, title string) (*models.ExtractedContent, error) {
	q := strings.TrimSpace(title)
	if q == "" {
		return nil, fail(KindEmptyInput, "podcast_title", "No title provided")
	}
	if e.searcher == nil {
		return nil, fail(KindFetchFailed, q, "YouTube search is not configured (YOUTUBE_API_KEY).")
	}

	videos, err := e.searcher.Search(ctx, q, searchResults)
	if err != nil {
		return nil, failWith(KindFetchFailed, q, "Podcast title search failed.", err)
	}
	if len(videos) == 0 {
		return nil, fail(KindNotFound, q, "Could not find a matching episode on YouTube for that title.")
	}

	video, ok := youtube.ChooseLongForm(videos)
	if !ok {
		return nil, fail(KindNotFound, q, "Found potential matches but could not identify a valid video.")
	}

	text, err := e.transcripts.Transcript(ctx, video.ID)
	if err != nil || len([]rune(text)) < minTranscriptChars {
		return nil, failWith(KindNoTranscript, "YouTube search: "+q, "Found a video for that title but it has no usable transcript.", err)
	}

	label := video.Title
	if label == "" {
		label = q
	}
	return &models.ExtractedContent{Text: text, SourceLabel: "YouTube (search by title): " + label}, nil
}

package extractor

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"deep-summarizer/httpclient"
	"deep-summarizer/logger"
	"deep-summarizer/models"
	"deep-summarizer/parser"
	"deep-summarizer/spotify"
	"deep-summarizer/youtube"
)

// FromURL routes YouTube, Spotify and generic article links.
func (e *Extractor) FromURL(ctx context.Context, rawURL string) (*models.ExtractedContent, error) {
	u := strings.TrimSpace(rawURL)
	if u == "" {
		return nil, fail(KindEmptyInput, "url", "No URL provided")
	}

	switch {
	case youtube.IsVideoURL(u):
		return e.fromYouTube(ctx, u)
	case spotify.IsPodcastURL(u):
		return e.fromSpotify(ctx, u)
	default:
		return e.fromArticle(ctx, u)
	}
}

func (e *Extractor) fromYouTube(ctx context.Context, u string) (*models.ExtractedContent, error) {
	id, ok := youtube.VideoID(u)
	if !ok {
		return nil, fail(KindInvalidURL, u, "Invalid YouTube URL")
	}

	text, err := e.transcripts.Transcript(ctx, id)
	if err != nil {
		if errors.Is(err, youtube.ErrNoTranscript) {
			return nil, failWith(KindNoTranscript, u, "No transcript available for this video", err)
		}
		return nil, failWith(KindNoTranscript, u, "Could not fetch transcript", err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, fail(KindNoTranscript, u, "No transcript available for this video")
	}
	return &models.ExtractedContent{Text: text, SourceLabel: "YouTube: " + u}, nil
}

func (e *Extractor) fromSpotify(ctx context.Context, u string) (*models.ExtractedContent, error) {
	title, showName := "Spotify episode", ""

	var episode *spotify.Episode
	if e.podcasts != nil {
		ep, err := e.podcasts.EpisodeInfo(ctx, u)
		if err != nil {
			logger.WarnWithFields("spotify episode lookup failed", logger.Fields{"url": u, "error": err.Error()})
		} else {
			episode = ep
		}
	}

	if episode != nil {
		title, showName = episode.Name, episode.ShowName
		if content, ok := e.mirrorTranscript(ctx, episode); ok {
			return content, nil
		}
	} else if e.podcasts != nil {
		if t, author, err := e.podcasts.OEmbed(ctx, u); err == nil {
			if t != "" {
				title = t
			}
			showName = author
		}
	}

	msg := fmt.Sprintf("\"%s\"", title)
	if showName != "" {
		msg += " from " + showName
	}
	msg += " - Full transcript not found on YouTube, RSS feeds, or other platforms. Please paste the transcript below to summarize."

	return nil, &ExtractionError{
		Kind:             KindNeedsManualInput,
		Message:          msg,
		Source:           u,
		NeedsManualInput: true,
	}
}

// mirrorTranscript looks for the episode cross-posted on YouTube.
func (e *Extractor) mirrorTranscript(ctx context.Context, ep *spotify.Episode) (*models.ExtractedContent, bool) {
	if e.searcher == nil {
		return nil, false
	}

	query := strings.TrimSpace(ep.ShowName + " " + ep.Name)
	if len([]rune(query)) < 10 {
		return nil, false
	}

	videos, err := e.searcher.Search(ctx, query, searchResults)
	if err != nil {
		logger.WarnWithFields("youtube search for episode failed", logger.Fields{"query": query, "error": err.Error()})
		return nil, false
	}

	video, ok := youtube.MatchEpisode(videos, ep.Name, ep.ShowName)
	if !ok {
		return nil, false
	}

	text, err := e.transcripts.Transcript(ctx, video.ID)
	if err != nil || len([]rune(text)) < minTranscriptChars {
		logger.InfoWithFields("episode mirror has no usable transcript", logger.Fields{"video_id": video.ID})
		return nil, false
	}

	label := "YouTube mirror of "
	if ep.ShowName != "" {
		label += ep.ShowName + ": "
	}
	return &models.ExtractedContent{Text: text, SourceLabel: label + ep.Name}, true
}

func (e *Extractor) fromArticle(ctx context.Context, u string) (*models.ExtractedContent, error) {
	parsed, err := url.Parse(u)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, fail(KindInvalidURL, u, "Invalid URL")
	}

	body, resp, err := httpclient.Fetch(ctx, e.httpClient, u, maxPageBytes)
	if err != nil {
		if resp != nil {
			return nil, failWith(KindFetchFailed, u, fmt.Sprintf("Failed to fetch URL (%d)", resp.StatusCode), err)
		}
		return nil, failWith(KindFetchFailed, u, err.Error(), err)
	}

	page := string(body)
	text, strategy := parser.ExtractBest(page)
	if strategy == "" && e.renderer != nil {
		if rendered, rerr := e.renderer.RenderHTML(ctx, u); rerr == nil {
			text, strategy = parser.ExtractBest(rendered)
		} else {
			logger.WarnWithFields("page render failed", logger.Fields{"url": u, "error": rerr.Error()})
		}
	}
	if strategy == "" {
		return nil, fail(KindInsufficientText, u, "Could not extract enough readable text from this URL")
	}

	logger.DebugWithFields("article extracted", logger.Fields{"url": u, "strategy": strategy, "chars": len(text)})
	return &models.ExtractedContent{Text: text, SourceLabel: "URL: " + u}, nil
}

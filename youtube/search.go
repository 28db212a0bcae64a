package youtube

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	ytapi "google.golang.org/api/youtube/v3"
)

// DataAPISearcher searches through the YouTube Data API v3 and resolves
// video durations with a second videos.list call.
type DataAPISearcher struct {
	svc *ytapi.Service
}

func NewDataAPISearcher(ctx context.Context, apiKey string, opts ...option.ClientOption) (*DataAPISearcher, error) {
	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	svc, err := ytapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create youtube service: %w", err)
	}
	return &DataAPISearcher{svc: svc}, nil
}

func (s *DataAPISearcher) Search(ctx context.Context, query string, max int) ([]Video, error) {
	if max <= 0 {
		max = 10
	}

	resp, err := s.svc.Search.List([]string{"snippet"}).
		Q(query).
		Type("video").
		MaxResults(int64(max)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("youtube search failed: %w", err)
	}

	videos := make([]Video, 0, len(resp.Items))
	ids := make([]string, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Id == nil || item.Id.VideoId == "" {
			continue
		}
		title := ""
		if item.Snippet != nil {
			title = item.Snippet.Title
		}
		videos = append(videos, Video{ID: item.Id.VideoId, Title: title})
		ids = append(ids, item.Id.VideoId)
	}
	if len(ids) == 0 {
		return videos, nil
	}

	details, err := s.svc.Videos.List([]string{"contentDetails"}).
		Id(ids...).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("youtube video lookup failed: %w", err)
	}

	durations := make(map[string]int, len(details.Items))
	for _, item := range details.Items {
		if item.ContentDetails != nil {
			durations[item.Id] = ParseISODuration(item.ContentDetails.Duration)
		}
	}
	for i := range videos {
		videos[i].DurationSeconds = durations[videos[i].ID]
	}
	return videos, nil
}

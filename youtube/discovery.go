package youtube

import (
	"strings"
)

const (
	// MinEpisodeSeconds is the shortest video treated as a full episode.
	MinEpisodeSeconds = 600
	// LongFormSeconds marks a video as long form when choosing by title.
	LongFormSeconds = 1800
	// episodeCandidates is how many search hits are checked for a title match.
	episodeCandidates = 5
	// episodePrefixLen is how much of the episode name has to appear in the video title.
	episodePrefixLen = 15
)

// MatchEpisode picks the video most likely to mirror a podcast episode.
// Among the first hits of at least MinEpisodeSeconds, a title containing the
// first 15 characters of the episode name (names longer than 15 only) or the
// show name wins; otherwise the first long video is used.
func MatchEpisode(videos []Video, episodeName, showName string) (Video, bool) {
	episode := strings.ToLower(episodeName)
	show := strings.ToLower(showName)

	limit := len(videos)
	if limit > episodeCandidates {
		limit = episodeCandidates
	}
	for _, v := range videos[:limit] {
		if v.ID == "" || v.DurationSeconds < MinEpisodeSeconds {
			continue
		}
		title := strings.ToLower(v.Title)
		matchesEpisode := len([]rune(episode)) > episodePrefixLen && strings.Contains(title, string([]rune(episode)[:episodePrefixLen]))
		matchesShow := show != "" && strings.Contains(title, show)
		if matchesEpisode || matchesShow {
			return v, true
		}
	}

	for _, v := range videos {
		if v.ID != "" && v.DurationSeconds >= MinEpisodeSeconds {
			return v, true
		}
	}
	return Video{}, false
}

// ChooseLongForm prefers a video of at least 30 minutes, then one of at least
// 10 minutes, then the first hit.
func ChooseLongForm(videos []Video) (Video, bool) {
	for _, min := range []int{LongFormSeconds, MinEpisodeSeconds} {
		for _, v := range videos {
			if v.ID != "" && v.DurationSeconds >= min {
				return v, true
			}
		}
	}
	if len(videos) > 0 && videos[0].ID != "" {
		return videos[0], true
	}
	return Video{}, false
}

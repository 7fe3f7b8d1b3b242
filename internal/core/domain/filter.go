package domain

import "strings"

// DefaultMinDurationSeconds separa os shorts dos vídeos normais.
const DefaultMinDurationSeconds = 120

// KeywordFilter is a denylist of case-insensitive title substrings.
type KeywordFilter []string

// NewKeywordFilter lowercases and trims the keywords, dropping empty ones.
func NewKeywordFilter(keywords ...string) KeywordFilter {
	filter := make(KeywordFilter, 0, len(keywords))
	for _, k := range keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" {
			continue
		}
		filter = append(filter, k)
	}
	return filter
}

// ParseKeywords lê uma keyword por linha, como no campo de texto da TUI.
func ParseKeywords(text string) KeywordFilter {
	return NewKeywordFilter(strings.Split(text, "\n")...)
}

func (f KeywordFilter) Excludes(title string) bool {
	lower := strings.ToLower(title)
	for _, k := range f {
		if strings.Contains(lower, strings.ToLower(k)) {
			return true
		}
	}
	return false
}

func (f KeywordFilter) String() string {
	return strings.Join(f, ", ")
}

// FilterByKeywords keeps the videos whose title matches none of the keywords.
func FilterByKeywords(videos []Video, keywords KeywordFilter) []Video {
	kept := make([]Video, 0, len(videos))
	for _, v := range videos {
		if keywords.Excludes(v.Title) {
			continue
		}
		kept = append(kept, v)
	}
	return kept
}

// FilterByDuration keeps the videos at least minSeconds long. Ids missing
// from durations count as zero seconds. Kept videos carry the resolved
// duration.
func FilterByDuration(videos []Video, durations map[string]int, minSeconds int) []Video {
	kept := make([]Video, 0, len(videos))
	for _, v := range videos {
		seconds := durations[v.ID]
		if seconds < minSeconds {
			continue
		}
		kept = append(kept, v.WithDurationSeconds(seconds))
	}
	return kept
}

// RemovedVideos devolve os vídeos de all cujo id não aparece em kept,
// na ordem de all.
func RemovedVideos(all, kept []Video) []Video {
	keptIDs := make(map[string]struct{}, len(kept))
	for _, v := range kept {
		keptIDs[v.ID] = struct{}{}
	}

	var removed []Video
	for _, v := range all {
		if _, ok := keptIDs[v.ID]; ok {
			continue
		}
		removed = append(removed, v)
	}
	return removed
}

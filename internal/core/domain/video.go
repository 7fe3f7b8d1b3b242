package domain

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"google.golang.org/api/youtube/v3"
)

const watchURLPrefix = "https://www.youtube.com/watch?v="

type Video struct {
	ID           string
	Title        string
	Description  string
	PublishedAt  time.Time
	ThumbnailURL string
	Duration     time.Duration
}

// NewVideoFromSearchResult converte um item do search.list em Video.
// A duração ainda não é conhecida nesse ponto e fica zerada.
func NewVideoFromSearchResult(item *youtube.SearchResult) (Video, error) {
	if item == nil || item.Id == nil || item.Snippet == nil {
		return Video{}, errors.New("incomplete search result")
	}

	publishedAt, err := time.Parse(time.RFC3339, item.Snippet.PublishedAt)
	if err != nil {
		return Video{}, errors.WithStack(err)
	}

	var thumbnail string
	if t := item.Snippet.Thumbnails; t != nil && t.Medium != nil {
		thumbnail = t.Medium.Url
	}

	return Video{
		ID:           item.Id.VideoId,
		Title:        item.Snippet.Title,
		Description:  item.Snippet.Description,
		PublishedAt:  publishedAt,
		ThumbnailURL: thumbnail,
	}, nil
}

func (v Video) DurationSeconds() int {
	return int(v.Duration / time.Second)
}

func (v Video) WithDurationSeconds(seconds int) Video {
	v.Duration = time.Duration(seconds) * time.Second
	return v
}

func (v Video) URL() string {
	return watchURLPrefix + v.ID
}

// ShortDescription corta a descrição em max runas, acrescentando "...".
func (v Video) ShortDescription(max int) string {
	runes := []rune(v.Description)
	if len(runes) <= max {
		return v.Description
	}
	return string(runes[:max]) + "..."
}

// FormattedDuration renders the duration as m:ss or h:mm:ss.
func (v Video) FormattedDuration() string {
	total := v.DurationSeconds()
	h, m, s := total/3600, (total%3600)/60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

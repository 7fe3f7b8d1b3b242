package ports

import (
	"TUI_channel_filter/internal/core/domain"
	"context"
)

// MaxResultsPerPage é o limite da API tanto para search.list quanto para
// a quantidade de ids aceita por videos.list.
const MaxResultsPerPage = 50

type YoutubePort interface {
	// SearchVideosPage busca uma página do search.list. nextPageToken vazio
	// indica a última página.
	SearchVideosPage(ctx context.Context, channelID string, dateRange domain.DateRange, pageToken string) (videos []domain.Video, nextPageToken string, err error)
	// FetchDurations resolve a duração em segundos de cada id, em lotes de
	// no máximo MaxResultsPerPage. Ids de lotes que falharam ficam de fora.
	FetchDurations(ctx context.Context, ids []string) (map[string]int, error)
}

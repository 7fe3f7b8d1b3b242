package usecases

import (
	"TUI_channel_filter/internal/core/domain"
	"TUI_channel_filter/internal/core/ports"
	"context"
)

type videoCatalogUseCase struct {
	service            ports.YoutubePort
	log                ports.LoggerPort
	minDurationSeconds int
}

type VideoCatalogUseCase interface {
	// FetchChannelVideos devolve os vídeos do canal no intervalo, já sem
	// shorts. Em falha remota devolve o que acumulou junto com o erro.
	FetchChannelVideos(ctx context.Context, channelID string, dateRange domain.DateRange) ([]domain.Video, error)
	FetchAndFilter(ctx context.Context, channelID string, dateRange domain.DateRange, keywords domain.KeywordFilter) (*domain.FilterSession, error)
}

func NewVideoCatalogUseCase(service ports.YoutubePort, logger ports.LoggerPort, minDurationSeconds int) VideoCatalogUseCase {
	if minDurationSeconds <= 0 {
		minDurationSeconds = domain.DefaultMinDurationSeconds
	}

	return &videoCatalogUseCase{
		service:            service,
		log:                logger,
		minDurationSeconds: minDurationSeconds,
	}
}

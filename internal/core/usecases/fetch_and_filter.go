package usecases

import (
	"TUI_channel_filter/internal/core/domain"
	"context"
	"fmt"
)

func (uc *videoCatalogUseCase) FetchAndFilter(ctx context.Context, channelID string, dateRange domain.DateRange, keywords domain.KeywordFilter) (*domain.FilterSession, error) {
	videos, err := uc.FetchChannelVideos(ctx, channelID, dateRange)
	if err != nil && len(videos) == 0 {
		return nil, fmt.Errorf("error while fetching channel videos: %w", err)
	}

	session := domain.NewFilterSession(channelID, dateRange, keywords, videos, err)
	uc.log.Info(fmt.Sprintf("Session %s: %d total, %d filtered, %d removed (keywords: %s)",
		session.ID, session.TotalCount(), session.FilteredCount(), session.RemovedCount(), keywords))

	return session, nil
}

package usecases

import (
	"TUI_channel_filter/internal/core/domain"
	"context"
	"errors"
	"fmt"
)

func (uc *videoCatalogUseCase) FetchChannelVideos(ctx context.Context, channelID string, dateRange domain.DateRange) ([]domain.Video, error) {
	uc.log.Info(fmt.Sprintf("Init Fetch Channel Videos: channel=%s range=%s", channelID, dateRange))

	if channelID == "" {
		return nil, fmt.Errorf("channel ID cannot be empty")
	}

	videos, searchErr := uc.fetchAllPages(ctx, channelID, dateRange)
	if len(videos) == 0 {
		uc.log.Warning("No videos found for channel " + channelID)
		return []domain.Video{}, searchErr
	}

	ids := make([]string, len(videos))
	for i, v := range videos {
		ids[i] = v.ID
	}

	durations, durationErr := uc.service.FetchDurations(ctx, ids)
	if durationErr != nil {
		uc.log.Error("Failed to fetch some video durations", durationErr)
	}

	long := domain.FilterByDuration(videos, durations, uc.minDurationSeconds)
	uc.log.Info(fmt.Sprintf("Fetch Channel Videos Completed: %d fetched, %d shorter than %ds dropped", len(videos), len(videos)-len(long), uc.minDurationSeconds))

	return long, errors.Join(searchErr, durationErr)
}

// fetchAllPages segue o nextPageToken até a última página. Se uma página
// falhar, para ali e devolve o que já tinha.
func (uc *videoCatalogUseCase) fetchAllPages(ctx context.Context, channelID string, dateRange domain.DateRange) ([]domain.Video, error) {
	pageToken := ""
	var videos []domain.Video

	for page := 1; ; page++ {
		returnedVideos, nextPageToken, err := uc.service.SearchVideosPage(ctx, channelID, dateRange, pageToken)
		if err != nil {
			uc.log.Error(fmt.Sprintf("Failed to fetch page %d, keeping %d videos", page, len(videos)), err)
			return videos, err
		}

		videos = append(videos, returnedVideos...)
		uc.log.Debug(fmt.Sprintf("Page %d: %d videos", page, len(returnedVideos)))

		if nextPageToken == "" {
			break
		}

		pageToken = nextPageToken
	}

	return videos, nil
}

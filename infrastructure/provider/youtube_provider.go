package provider

import (
	"TUI_channel_filter/internal/core/domain"
	"TUI_channel_filter/internal/core/ports"
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/time/rate"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

type youtubeProvider struct {
	apiKey  string
	options []option.ClientOption
	limiter *rate.Limiter
	log     ports.LoggerPort
	service *youtube.Service
	mu      sync.Mutex
}

// NewYoutubeProvider cria o adaptador da YouTube Data API autenticado por
// API key. requestsPerSecond <= 0 desliga o limitador. opts extras são
// repassados ao youtube.NewService (endpoint de teste, http client, etc).
func NewYoutubeProvider(apiKey string, requestsPerSecond float64, logger ports.LoggerPort, opts ...option.ClientOption) ports.YoutubePort {
	limit := rate.Inf
	if requestsPerSecond > 0 {
		limit = rate.Limit(requestsPerSecond)
	}

	return &youtubeProvider{
		apiKey:  apiKey,
		options: opts,
		limiter: rate.NewLimiter(limit, 1),
		log:     logger,
	}
}

func (s *youtubeProvider) getYoutubeService(ctx context.Context) (*youtube.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.service != nil {
		return s.service, nil
	}

	if s.apiKey == "" {
		return nil, fmt.Errorf("youtube api key is empty")
	}

	opts := append([]option.ClientOption{option.WithAPIKey(s.apiKey)}, s.options...)
	service, err := youtube.NewService(ctx, opts...)
	if err != nil {
		s.log.Error("error while create youtube service", err)
		return nil, fmt.Errorf("error while create youtube service: %w", err)
	}

	s.service = service
	s.log.Info("Create youtube service completed")

	return service, nil
}

func (s *youtubeProvider) SearchVideosPage(ctx context.Context, channelID string, dateRange domain.DateRange, pageToken string) ([]domain.Video, string, error) {
	service, err := s.getYoutubeService(ctx)
	if err != nil {
		return nil, "", err
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, "", &domain.TransientFetchError{Op: "search.list", Err: err}
	}

	//preparando a chamada: vídeos do canal, mais novos primeiro, dentro do intervalo
	call := service.Search.List([]string{"snippet"}).
		ChannelId(channelID).
		Order("date").
		MaxResults(ports.MaxResultsPerPage).
		Type("video").
		PublishedAfter(dateRange.PublishedAfter()).
		PublishedBefore(dateRange.PublishedBefore()).
		Context(ctx)

	if pageToken != "" {
		call = call.PageToken(pageToken)
	}

	response, err := call.Do()
	if err != nil {
		s.log.Error("error while call youtube search", err)
		return nil, "", &domain.TransientFetchError{Op: "search.list", Err: err}
	}

	videos := make([]domain.Video, 0, len(response.Items))
	for _, item := range response.Items {
		video, err := domain.NewVideoFromSearchResult(item)
		if err != nil {
			s.log.Warning(fmt.Sprintf("skipping search result: %v", err))
			continue
		}
		videos = append(videos, video)
	}

	return videos, response.NextPageToken, nil
}

func (s *youtubeProvider) FetchDurations(ctx context.Context, ids []string) (map[string]int, error) {
	durations := make(map[string]int, len(ids))
	if len(ids) == 0 {
		return durations, nil
	}

	service, err := s.getYoutubeService(ctx)
	if err != nil {
		return durations, err
	}

	var errs []error
	for start := 0; start < len(ids); start += ports.MaxResultsPerPage {
		end := min(start+ports.MaxResultsPerPage, len(ids))
		batch := ids[start:end]

		if err := s.fetchDurationBatch(ctx, service, batch, durations); err != nil {
			//lote perdido: os ids dele ficam sem duração e caem como shorts
			s.log.Error(fmt.Sprintf("error while fetching durations for batch %d-%d", start, end), err)
			errs = append(errs, err)
		}
	}

	return durations, errors.Join(errs...)
}

func (s *youtubeProvider) fetchDurationBatch(ctx context.Context, service *youtube.Service, batch []string, durations map[string]int) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return &domain.TransientFetchError{Op: "videos.list", Err: err}
	}

	call := service.Videos.List([]string{"contentDetails"}).
		Id(strings.Join(batch, ",")).
		Context(ctx)

	response, err := call.Do()
	if err != nil {
		return &domain.TransientFetchError{Op: "videos.list", Err: err}
	}

	for _, item := range response.Items {
		if item.ContentDetails == nil {
			durations[item.Id] = 0
			continue
		}
		durations[item.Id] = domain.ParseDuration(item.ContentDetails.Duration)
	}

	return nil
}

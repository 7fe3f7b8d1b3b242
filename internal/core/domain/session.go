package domain

import (
	"time"

	"github.com/google/uuid"
)

// FilterSession guarda o resultado de uma busca: todos os vídeos (sem
// shorts), os que passaram no filtro de keywords e os removidos.
// É dono do estado que antes ficava global na sessão da UI.
type FilterSession struct {
	ID        uuid.UUID
	ChannelID string
	DateRange DateRange
	Keywords  KeywordFilter
	All       []Video
	Filtered  []Video
	Removed   []Video
	FetchErr  error
	FetchedAt time.Time
}

func NewFilterSession(channelID string, dateRange DateRange, keywords KeywordFilter, all []Video, fetchErr error) *FilterSession {
	s := &FilterSession{
		ID:        uuid.New(),
		ChannelID: channelID,
		DateRange: dateRange,
		All:       all,
		FetchErr:  fetchErr,
		FetchedAt: time.Now(),
	}
	s.apply(keywords)
	return s
}

// WithKeywords reaplica outro filtro sobre os mesmos vídeos, sem buscar de novo.
func (s *FilterSession) WithKeywords(keywords KeywordFilter) *FilterSession {
	next := *s
	next.ID = uuid.New()
	next.apply(keywords)
	return &next
}

func (s *FilterSession) apply(keywords KeywordFilter) {
	s.Keywords = keywords
	s.Filtered = FilterByKeywords(s.All, keywords)
	s.Removed = RemovedVideos(s.All, s.Filtered)
}

// Partial reports whether the fetch stopped early on a remote failure.
func (s *FilterSession) Partial() bool {
	return s.FetchErr != nil
}

func (s *FilterSession) TotalCount() int    { return len(s.All) }
func (s *FilterSession) FilteredCount() int { return len(s.Filtered) }
func (s *FilterSession) RemovedCount() int  { return len(s.Removed) }

package tui

import (
	"context"
	"errors"
	"io"
	"testing"

	"TUI_channel_filter/infrastructure/logger"
	"TUI_channel_filter/internal/core/domain"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalog struct {
	videos []domain.Video
	err    error

	calls []domain.DateRange
}

func (f *fakeCatalog) FetchChannelVideos(_ context.Context, _ string, dr domain.DateRange) ([]domain.Video, error) {
	f.calls = append(f.calls, dr)
	return f.videos, f.err
}

func (f *fakeCatalog) FetchAndFilter(ctx context.Context, channelID string, dr domain.DateRange, keywords domain.KeywordFilter) (*domain.FilterSession, error) {
	videos, err := f.FetchChannelVideos(ctx, channelID, dr)
	if err != nil && len(videos) == 0 {
		return nil, err
	}
	return domain.NewFilterSession(channelID, dr, keywords, videos, err), nil
}

func newTestApp(catalog *fakeCatalog) *AppModel {
	return NewAppModel(catalog, logger.NewJSONLogger(io.Discard, logger.LevelError), "UC123", []string{"react"})
}

func sampleVideos() []domain.Video {
	return []domain.Video{
		{ID: "a", Title: "VFX Artists React"},
		{ID: "b", Title: "Cool VFX Breakdown"},
		{ID: "c", Title: "Animators React"},
	}
}

func TestAppModel_Navigation(t *testing.T) {
	m := newTestApp(&fakeCatalog{})
	assert.Equal(t, viewWelcome, m.currentView)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg := cmd()
	assert.IsType(t, showFormMsg{}, msg)

	m.Update(msg)
	assert.Equal(t, viewForm, m.currentView)
}

func TestAppModel_FetchCmd(t *testing.T) {
	catalog := &fakeCatalog{videos: sampleVideos()}
	m := newTestApp(catalog)
	dr := domain.HalfYear(2024, domain.FirstHalf)

	msg := m.fetchCmd(fetchRequestedMsg{dateRange: dr, keywords: domain.NewKeywordFilter("react")})()

	ready, ok := msg.(sessionReadyMsg)
	require.True(t, ok)
	assert.Equal(t, []domain.DateRange{dr}, catalog.calls)
	assert.Equal(t, "UC123", ready.session.ChannelID)
	assert.Equal(t, 1, ready.session.FilteredCount())
	assert.Equal(t, 2, ready.session.RemovedCount())
}

func TestAppModel_FetchFailure(t *testing.T) {
	catalog := &fakeCatalog{err: &domain.TransientFetchError{Op: "search.list", Err: errors.New("forbidden")}}
	m := newTestApp(catalog)

	msg := m.fetchCmd(fetchRequestedMsg{dateRange: domain.HalfYear(2024, domain.FirstHalf)})()
	failed, ok := msg.(fetchFailedMsg)
	require.True(t, ok)

	m.Update(failed)
	assert.Equal(t, viewForm, m.currentView)
	assert.Error(t, m.formModel.err)
}

func TestAppModel_SessionReadyAndRefilter(t *testing.T) {
	m := newTestApp(&fakeCatalog{})
	dr := domain.HalfYear(2024, domain.FirstHalf)
	session := domain.NewFilterSession("UC123", dr, domain.NewKeywordFilter("react"), sampleVideos(), nil)

	m.Update(sessionReadyMsg{session: session})
	assert.Equal(t, viewResults, m.currentView)
	assert.Same(t, session, m.session)

	m.Update(refilterMsg{keywords: domain.NewKeywordFilter("animators")})
	assert.Equal(t, viewResults, m.currentView)
	assert.NotSame(t, session, m.session)
	assert.Equal(t, 2, m.session.FilteredCount())
	assert.Equal(t, 3, m.session.TotalCount())
}

func TestAppModel_CtrlCQuits(t *testing.T) {
	m := newTestApp(&fakeCatalog{})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Error(t, m.appContext.Err())
}

package tui

import (
	"errors"
	"testing"

	"TUI_channel_filter/internal/core/domain"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYearOptions(t *testing.T) {
	years := yearOptions(2025)
	require.Len(t, years, 12)
	assert.Equal(t, 2025, years[0])
	assert.Equal(t, 2014, years[len(years)-1])

	assert.Equal(t, []int{2014}, yearOptions(2010))
}

func TestFormModel_SelectRangeAndSubmit(t *testing.T) {
	m := newTestApp(&fakeCatalog{})
	form := m.formModel
	form.years = yearOptions(2025)

	form.Update(tea.KeyMsg{Type: tea.KeyDown}) // 2024
	form.Update(tea.KeyMsg{Type: tea.KeyTab})
	form.Update(tea.KeyMsg{Type: tea.KeyRight}) // segundo semestre

	assert.Equal(t, domain.HalfYear(2024, domain.SecondHalf), form.DateRange())
	assert.Equal(t, domain.KeywordFilter{"react"}, form.Keywords())

	_, cmd := form.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	req, ok := cmd().(fetchRequestedMsg)
	require.True(t, ok)
	assert.Equal(t, domain.HalfYear(2024, domain.SecondHalf), req.dateRange)
	assert.Equal(t, domain.KeywordFilter{"react"}, req.keywords)
}

func TestFormModel_SameRangeOnlyRefilters(t *testing.T) {
	m := newTestApp(&fakeCatalog{})
	form := m.formModel
	form.years = yearOptions(2024)
	m.session = domain.NewFilterSession("UC123", domain.HalfYear(2024, domain.FirstHalf), nil, sampleVideos(), nil)

	form.keywords.SetValue("animators\n")
	_, cmd := form.Update(tea.KeyMsg{Type: tea.KeyCtrlF})

	require.NotNil(t, cmd)
	refilter, ok := cmd().(refilterMsg)
	require.True(t, ok)
	assert.Equal(t, domain.KeywordFilter{"animators"}, refilter.keywords)
}

func TestFormModel_TypingKeywords(t *testing.T) {
	m := newTestApp(&fakeCatalog{})
	form := m.formModel
	form.keywords.SetValue("")

	form.Update(tea.KeyMsg{Type: tea.KeyShiftTab}) // vai direto para as keywords
	require.Equal(t, fieldKeywords, form.focus)

	form.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Reaction")})

	assert.Equal(t, domain.KeywordFilter{"reaction"}, form.Keywords())
}

func TestFormModel_PartialSessionFetchesAgain(t *testing.T) {
	m := newTestApp(&fakeCatalog{})
	form := m.formModel
	form.years = yearOptions(2024)
	dr := domain.HalfYear(2024, domain.FirstHalf)
	fetchErr := &domain.TransientFetchError{Op: "search.list", Err: errors.New("quota exceeded")}
	m.session = domain.NewFilterSession("UC123", dr, nil, sampleVideos()[:1], fetchErr)

	_, cmd := form.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	req, ok := cmd().(fetchRequestedMsg)
	require.True(t, ok)
	assert.Equal(t, dr, req.dateRange)
}

func TestFormModel_View(t *testing.T) {
	m := newTestApp(&fakeCatalog{})
	form := m.formModel
	form.years = yearOptions(2024)

	view := form.View()

	assert.Contains(t, view, "Year: ")
	assert.Contains(t, view, "Period: ")
	assert.Contains(t, view, "Date range: 2024-01-01 to 2024-06-30")
}

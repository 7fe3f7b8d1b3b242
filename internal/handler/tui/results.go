package tui

import (
	"fmt"
	"strings"

	"TUI_channel_filter/internal/core/domain"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/browser"
)

const (
	descriptionLimit = 300
	publishedLayout  = "January 02, 2006"
	fetchedLayout    = "2006-01-02 15:04:05"
)

type resultsTab int

const (
	tabFiltered resultsTab = iota
	tabRemoved
)

// openURL é trocado nos testes para não abrir o navegador de verdade.
var openURL = browser.OpenURL

type ResultsModel struct {
	parent  *AppModel
	session *domain.FilterSession

	tab    resultsTab
	cursor int
	offset int
	// quantos vídeos cabem na tela
	pageSize int

	statusMessage string
}

func NewResultsModel(parent *AppModel, session *domain.FilterSession) *ResultsModel {
	return &ResultsModel{
		parent:   parent,
		session:  session,
		tab:      tabFiltered,
		pageSize: 8,
	}
}

func (m *ResultsModel) Init() tea.Cmd {
	m.statusMessage = ""
	if m.session != nil && m.session.Partial() {
		m.parent.logger.Warning(fmt.Sprintf("Session %s holds partial results: %v", m.session.ID, m.session.FetchErr))
	}
	return nil
}

func (m *ResultsModel) Resize(_, height int) {
	// cabeçalho, métricas, abas e rodapé ocupam ~16 linhas; cada vídeo usa 4
	if rows := (height - 16) / 4; rows > 0 {
		m.pageSize = rows
	}
	// a janela pode ter encolhido com o cursor lá embaixo
	m.move(0)
}

func (m *ResultsModel) videos() []domain.Video {
	if m.session == nil {
		return nil
	}
	if m.tab == tabRemoved {
		return m.session.Removed
	}
	return m.session.Filtered
}

func (m *ResultsModel) selected() (domain.Video, bool) {
	videos := m.videos()
	if m.cursor < 0 || m.cursor >= len(videos) {
		return domain.Video{}, false
	}
	return videos[m.cursor], true
}

func (m *ResultsModel) switchTab() {
	if m.tab == tabFiltered {
		m.tab = tabRemoved
	} else {
		m.tab = tabFiltered
	}
	m.cursor = 0
	m.offset = 0
	m.statusMessage = ""
}

func (m *ResultsModel) move(delta int) {
	n := len(m.videos())
	if n == 0 {
		return
	}
	m.cursor = max(0, min(n-1, m.cursor+delta))

	// mantém o cursor dentro da janela visível
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.pageSize {
		m.offset = m.cursor - m.pageSize + 1
	}
}

func (m *ResultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.Type {
	case tea.KeyTab, tea.KeyLeft, tea.KeyRight:
		m.switchTab()
	case tea.KeyUp:
		m.move(-1)
	case tea.KeyDown:
		m.move(1)
	case tea.KeyPgUp:
		m.move(-m.pageSize)
	case tea.KeyPgDown:
		m.move(m.pageSize)
	case tea.KeyEnter:
		video, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.statusMessage = "Opening " + video.URL()
		go func() {
			if err := openURL(video.URL()); err != nil {
				m.parent.logger.Error("Could not open the browser", err)
			}
		}()
	case tea.KeyEsc, tea.KeyBackspace:
		return m, m.parent.send(showFormMsg{})
	case tea.KeyRunes:
		switch string(keyMsg.Runes) {
		case "k":
			m.move(-1)
		case "j":
			m.move(1)
		case "f", "/":
			return m, m.parent.send(showFormMsg{})
		case "q":
			m.parent.cancelApp()
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m *ResultsModel) View() string {
	var b strings.Builder

	if m.session == nil {
		b.WriteString(promptStyle.Render("No search yet. Press Esc to go back."))
		return docStyle.Render(b.String())
	}

	b.WriteString(headerStyle.Render(fmt.Sprintf("📅 %s", m.session.DateRange)))
	b.WriteString("\n")
	b.WriteString(captionStyle.Render("Fetched at " + m.session.FetchedAt.Format(fetchedLayout)))
	b.WriteString("\n")

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		metricStyle.Render(fmt.Sprintf("Total Videos (no shorts)\n%d", m.session.TotalCount())),
		metricStyle.Render(fmt.Sprintf("Filtered Videos\n%d", m.session.FilteredCount())),
		metricStyle.Render(fmt.Sprintf("Removed\n%d", m.session.RemovedCount())),
	))
	b.WriteString("\n")

	if m.session.Partial() {
		b.WriteString(warningMessageStyle.Render(fmt.Sprintf("⚠ Fetch stopped early, showing partial results: %v", m.session.FetchErr)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	videos := m.videos()
	if len(videos) == 0 {
		if m.tab == tabFiltered {
			b.WriteString(promptStyle.Render("No video passed the filter."))
		} else {
			b.WriteString(promptStyle.Render("No video was removed."))
		}
		b.WriteString("\n")
	}

	end := min(m.offset+m.pageSize, len(videos))
	for i := m.offset; i < end; i++ {
		b.WriteString(m.renderVideo(videos[i], i == m.cursor))
	}

	if video, ok := m.selected(); ok && m.tab == tabFiltered && video.Description != "" {
		b.WriteString("\n")
		b.WriteString(captionStyle.Render(video.ShortDescription(descriptionLimit)))
		b.WriteString("\n")
	}

	if m.statusMessage != "" {
		b.WriteString("\n")
		b.WriteString(statusMessageStyle.Render(m.statusMessage))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(promptStyle.Render("Tab switches tab, ↑/↓ or j/k moves, Enter opens in the browser."))
	b.WriteString("\n")
	b.WriteString(promptStyle.Render("f edits the filter, q or Ctrl+C to quit."))

	return docStyle.Render(b.String())
}

func (m *ResultsModel) renderTabs() string {
	filtered := fmt.Sprintf("✅ Filtered Videos (%d)", m.session.FilteredCount())
	removed := fmt.Sprintf("❌ Removed Videos (%d)", m.session.RemovedCount())

	if m.tab == tabFiltered {
		return lipgloss.JoinHorizontal(lipgloss.Top, activeTabStyle.Render(filtered), inactiveTabStyle.Render(removed))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, inactiveTabStyle.Render(filtered), activeTabStyle.Render(removed))
}

func (m *ResultsModel) renderVideo(v domain.Video, selected bool) string {
	var b strings.Builder

	line := fmt.Sprintf("%s [%s]", v.Title, v.FormattedDuration())
	if selected {
		b.WriteString(selectedItemStyle.Render(line))
	} else {
		b.WriteString(itemStyle.Render(line))
	}
	b.WriteString("\n")
	b.WriteString(captionStyle.Render(fmt.Sprintf("Published: %s  %s", v.PublishedAt.Format(publishedLayout), urlStyle.Render(v.URL()))))
	b.WriteString("\n")
	if v.ThumbnailURL != "" {
		b.WriteString(captionStyle.Render("Thumbnail: " + v.ThumbnailURL))
		b.WriteString("\n")
	}

	return b.String()
}

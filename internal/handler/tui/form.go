package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"TUI_channel_filter/internal/core/domain"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// primeiro ano com vídeos no canal
const oldestYear = 2014

type formField int

const (
	fieldYear formField = iota
	fieldPeriod
	fieldKeywords
	fieldCount
)

type FormModel struct {
	parent *AppModel

	years    []int
	yearIdx  int
	half     domain.Half
	keywords textarea.Model
	focus    formField

	err error
}

func NewFormModel(parent *AppModel, defaultKeywords []string) *FormModel {
	ta := textarea.New()
	ta.Placeholder = "one keyword per line"
	ta.ShowLineNumbers = false
	ta.SetHeight(5)
	ta.SetWidth(40)
	ta.SetValue(strings.Join(defaultKeywords, "\n"))

	return &FormModel{
		parent:   parent,
		years:    yearOptions(time.Now().Year()),
		keywords: ta,
		focus:    fieldYear,
	}
}

func yearOptions(current int) []int {
	if current < oldestYear {
		current = oldestYear
	}
	years := make([]int, 0, current-oldestYear+1)
	for y := current; y >= oldestYear; y-- {
		years = append(years, y)
	}
	return years
}

func (m *FormModel) Init() tea.Cmd {
	m.keywords.Blur()
	m.focus = fieldYear
	return nil
}

func (m *FormModel) SetError(err error) {
	m.err = err
}

func (m *FormModel) Resize(width, _ int) {
	if width > 10 {
		m.keywords.SetWidth(min(width-8, 60))
	}
}

func (m *FormModel) DateRange() domain.DateRange {
	return domain.HalfYear(m.years[m.yearIdx], m.half)
}

func (m *FormModel) Keywords() domain.KeywordFilter {
	return domain.ParseKeywords(m.keywords.Value())
}

func (m *FormModel) setFocus(f formField) tea.Cmd {
	m.focus = f
	if f == fieldKeywords {
		return m.keywords.Focus()
	}
	m.keywords.Blur()
	return nil
}

// submit busca de novo, ou só refiltra se o intervalo for o mesmo da sessão
// atual e ela veio completa. Sessão parcial sempre busca de novo.
func (m *FormModel) submit() tea.Cmd {
	m.err = nil
	dateRange := m.DateRange()
	keywords := m.Keywords()

	if s := m.parent.session; s != nil && !s.Partial() && s.DateRange == dateRange {
		return m.parent.send(refilterMsg{keywords: keywords})
	}
	return m.parent.send(fetchRequestedMsg{dateRange: dateRange, keywords: keywords})
}

func (m *FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		// Blink do cursor e afins vão para o textarea
		var cmd tea.Cmd
		m.keywords, cmd = m.keywords.Update(msg)
		return m, cmd
	}

	switch keyMsg.Type {
	case tea.KeyCtrlF:
		return m, m.submit()
	case tea.KeyTab:
		return m, m.setFocus((m.focus + 1) % fieldCount)
	case tea.KeyShiftTab:
		return m, m.setFocus((m.focus + fieldCount - 1) % fieldCount)
	case tea.KeyEsc:
		if m.focus == fieldKeywords {
			return m, m.setFocus(fieldYear)
		}
		if m.parent.session != nil {
			return m, m.parent.send(sessionReadyMsg{session: m.parent.session})
		}
		return m, m.parent.send(showWelcomeMsg{})
	}

	switch m.focus {
	case fieldYear:
		switch keyMsg.Type {
		case tea.KeyUp:
			if m.yearIdx > 0 {
				m.yearIdx--
			}
		case tea.KeyDown:
			if m.yearIdx < len(m.years)-1 {
				m.yearIdx++
			}
		case tea.KeyEnter:
			return m, m.submit()
		}

	case fieldPeriod:
		switch keyMsg.Type {
		case tea.KeyUp, tea.KeyDown, tea.KeyLeft, tea.KeyRight, tea.KeySpace:
			if m.half == domain.FirstHalf {
				m.half = domain.SecondHalf
			} else {
				m.half = domain.FirstHalf
			}
		case tea.KeyEnter:
			return m, m.submit()
		}

	case fieldKeywords:
		var cmd tea.Cmd
		m.keywords, cmd = m.keywords.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *FormModel) label(f formField, text string) string {
	if m.focus == f {
		return focusedFieldStyle.Render("▸ " + text)
	}
	return fieldLabelStyle.Render("  " + text)
}

func (m *FormModel) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Filter Settings"))
	b.WriteString("\n")

	b.WriteString(m.label(fieldYear, "Year: "))
	b.WriteString(strconv.Itoa(m.years[m.yearIdx]))
	b.WriteString("\n")

	b.WriteString(m.label(fieldPeriod, "Period: "))
	b.WriteString(m.half.String())
	b.WriteString("\n\n")

	b.WriteString(statusMessageStyle.Render(fmt.Sprintf("Date range: %s", m.DateRange())))
	b.WriteString("\n\n")

	b.WriteString(m.label(fieldKeywords, "Filter keywords (one per line):"))
	b.WriteString("\n")
	b.WriteString(m.keywords.View())
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errorMessageStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	}

	b.WriteString(promptStyle.Render("Tab switches field, ↑/↓ changes the value, Enter or Ctrl+F fetches and filters."))
	b.WriteString("\n")
	b.WriteString(promptStyle.Render("Esc goes back. Ctrl+C to quit."))

	return docStyle.Render(b.String())
}

package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type WelcomeModel struct {
	parent *AppModel
}

func NewWelcomeModel(parent *AppModel) *WelcomeModel {
	return &WelcomeModel{parent: parent}
}

func (m *WelcomeModel) Init() tea.Cmd {
	return nil
}

func (m *WelcomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			return m, m.parent.send(showFormMsg{})
		case tea.KeyEsc:
			m.parent.cancelApp()
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *WelcomeModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("🎬 Channel Video Filter"))
	b.WriteString("\n")
	b.WriteString("Hides \"react\" videos and shorts from a YouTube channel.\n\n")

	b.WriteString(fieldLabelStyle.Render("Features:"))
	b.WriteString("\n")
	for _, feature := range []string{
		"Removes videos whose title contains the configured keywords",
		"Skips shorts (videos under 2 minutes)",
		"Browse by year and half-year",
		"Editable keywords, one per line",
	} {
		b.WriteString(itemStyle.Render("• " + feature))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(promptStyle.Render("Press Enter to start!"))
	b.WriteString("\n\n")
	b.WriteString(promptStyle.Render("(Ctrl+C or Esc to quit)"))

	return docStyle.Render(b.String())
}

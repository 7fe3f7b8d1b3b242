package tui

import "github.com/charmbracelet/lipgloss"

var (
	docStyle = lipgloss.NewStyle().
			Margin(1, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")). // Roxo
			Padding(1, 0)
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{
			Light: "#A49FA5",
			Dark:  "#777777",
		})

	headerStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("240")). // Cinza
			MarginBottom(1).
			PaddingBottom(1)
	itemStyle = lipgloss.NewStyle().
			PaddingLeft(2)
	selectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				Foreground(lipgloss.Color("62")).
				SetString("> ")
	captionStyle = lipgloss.NewStyle().
			PaddingLeft(4).
			Foreground(lipgloss.Color("244"))

	// Campos do formulário
	fieldLabelStyle = lipgloss.NewStyle().
			Bold(true)
	focusedFieldStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("62")).
				Bold(true)

	// Abas Filtrados / Removidos
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 2)
	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("244")).
				Padding(0, 2)

	metricStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2).
			MarginRight(1)

	statusMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{
			Light: "#04B575",
			Dark:  "#04B575",
		}) // Verde
	warningMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("214")) // Laranja
	errorMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("9")) // Vermelho

	urlStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")). // Azul
			Underline(true)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62"))
)

package tui

import (
	"context"
	"fmt"

	"TUI_channel_filter/infrastructure/logger"
	"TUI_channel_filter/internal/core/domain"
	"TUI_channel_filter/internal/core/usecases"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type currentView int

const (
	viewWelcome currentView = iota
	viewForm
	viewLoading
	viewResults
)

type AppModel struct {
	// Dependências injetadas
	catalogUseCase usecases.VideoCatalogUseCase
	logger         logger.Logger
	channelID      string

	welcomeModel *WelcomeModel
	formModel    *FormModel
	resultsModel *ResultsModel
	spinner      spinner.Model

	// Resultado da última busca; substitui o estado global de sessão
	session *domain.FilterSession

	currentView currentView
	loadingMsg  string

	appContext context.Context
	cancelApp  context.CancelFunc

	width  int
	height int
}

func NewAppModel(
	catalogUC usecases.VideoCatalogUseCase,
	log logger.Logger,
	channelID string,
	defaultKeywords []string,
) *AppModel {
	// Contexto principal, cancelado no Quit para abortar buscas em andamento
	appCtx, cancel := context.WithCancel(context.Background())

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	m := &AppModel{
		catalogUseCase: catalogUC,
		logger:         log,
		channelID:      channelID,
		spinner:        s,

		appContext: appCtx,
		cancelApp:  cancel,
	}

	m.welcomeModel = NewWelcomeModel(m)
	m.formModel = NewFormModel(m, defaultKeywords)
	m.resultsModel = NewResultsModel(m, nil)

	m.currentView = viewWelcome
	return m
}

func (m *AppModel) Init() tea.Cmd {
	return m.welcomeModel.Init()
}

// Mensagens de navegação que os sub-modelos usam
type showWelcomeMsg struct{}
type showFormMsg struct{}
type fetchRequestedMsg struct {
	dateRange domain.DateRange
	keywords  domain.KeywordFilter
}
type sessionReadyMsg struct{ session *domain.FilterSession }
type fetchFailedMsg struct{ err error }
type refilterMsg struct{ keywords domain.KeywordFilter }

func (m *AppModel) send(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// fetchCmd roda o pipeline fora da goroutine da UI.
func (m *AppModel) fetchCmd(req fetchRequestedMsg) tea.Cmd {
	return func() tea.Msg {
		session, err := m.catalogUseCase.FetchAndFilter(m.appContext, m.channelID, req.dateRange, req.keywords)
		if err != nil {
			m.logger.Error("Fetch & filter failed", err)
			return fetchFailedMsg{err: err}
		}
		return sessionReadyMsg{session: session}
	}
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.logger.Info("Ctrl+C pressionado, encerrando app.")
			m.cancelApp()
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Propaga para os sub-modelos que dependem do tamanho
		m.formModel.Resize(msg.Width, msg.Height)
		m.resultsModel.Resize(msg.Width, msg.Height)
		return m, nil

	case spinner.TickMsg:
		if m.currentView != viewLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	// Mensagens de navegação e do pipeline
	switch msg := msg.(type) {
	case showWelcomeMsg:
		m.currentView = viewWelcome
		return m, m.welcomeModel.Init()

	case showFormMsg:
		m.currentView = viewForm
		return m, m.formModel.Init()

	case fetchRequestedMsg:
		m.currentView = viewLoading
		m.loadingMsg = fmt.Sprintf("Fetching videos for %s...", msg.dateRange)
		m.logger.Info(fmt.Sprintf("Fetch requested: range=%s keywords=%s", msg.dateRange, msg.keywords))
		return m, tea.Batch(m.spinner.Tick, m.fetchCmd(msg))

	case sessionReadyMsg:
		m.session = msg.session
		m.resultsModel = NewResultsModel(m, msg.session)
		m.resultsModel.Resize(m.width, m.height)
		m.currentView = viewResults
		return m, m.resultsModel.Init()

	case fetchFailedMsg:
		m.formModel.SetError(msg.err)
		m.currentView = viewForm
		return m, nil

	case refilterMsg:
		if m.session == nil {
			return m, nil
		}
		m.session = m.session.WithKeywords(msg.keywords)
		m.logger.Info(fmt.Sprintf("Session %s re-filtered with keywords: %s", m.session.ID, msg.keywords))
		m.resultsModel = NewResultsModel(m, m.session)
		m.resultsModel.Resize(m.width, m.height)
		m.currentView = viewResults
		return m, nil
	}

	// Delegamos o Update ao sub-modelo da tela atual
	switch m.currentView {
	case viewWelcome:
		updated, cmd := m.welcomeModel.Update(msg)
		if casted, ok := updated.(*WelcomeModel); ok {
			m.welcomeModel = casted
		}
		cmds = append(cmds, cmd)

	case viewForm:
		updated, cmd := m.formModel.Update(msg)
		if casted, ok := updated.(*FormModel); ok {
			m.formModel = casted
		}
		cmds = append(cmds, cmd)

	case viewResults:
		updated, cmd := m.resultsModel.Update(msg)
		if casted, ok := updated.(*ResultsModel); ok {
			m.resultsModel = casted
		}
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *AppModel) View() string {
	switch m.currentView {
	case viewWelcome:
		return m.welcomeModel.View()
	case viewForm:
		return m.formModel.View()
	case viewLoading:
		return docStyle.Render(fmt.Sprintf("%s %s\n\n%s",
			m.spinner.View(),
			m.loadingMsg,
			promptStyle.Render("(Ctrl+C to quit)")))
	case viewResults:
		return m.resultsModel.View()
	default:
		return "Unknown view…"
	}
}

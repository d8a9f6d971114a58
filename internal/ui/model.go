package ui

import (
	"io"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/ngmaloney/velib-terminal/internal/dashboard"
	"github.com/ngmaloney/velib-terminal/internal/velib"
)

// Model is the Bubble Tea model for the station dashboard. Navigation and
// query state live in the dashboard controller; Model only maps keys to
// controller actions and renders its view-model.
type Model struct {
	width  int
	height int

	controller *dashboard.Controller
	client     velib.StationClient
	logger     *log.Logger

	searchInput textinput.Model
	paginator   paginator.Model
	spinner     spinner.Model
}

// NewModel creates a new dashboard model
func NewModel(client velib.StationClient, controller *dashboard.Controller, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	ti := textinput.New()
	ti.Placeholder = "Rechercher par nom de station ou code INSEE…"
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 60

	p := paginator.New()
	p.Type = paginator.Arabic
	p.ArabicFormat = "Page %d / %d"

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(colorPrimary)

	return Model{
		controller:  controller,
		client:      client,
		logger:      logger,
		searchInput: ti,
		paginator:   p,
		spinner:     s,
	}
}

// Init starts the app: Home view plus the initial fetch
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.run(m.controller.Start()))
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case stationsFetchedMsg:
		m.controller.CompleteFetch(msg.stations, msg.err)
		// A successful load resets the search
		if msg.err == nil {
			m.searchInput.SetValue("")
		}
		return m, nil

	case spinner.TickMsg:
		// Stop ticking once nothing is loading
		if !m.controller.Fetching() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

		switch m.controller.State().View {
		case dashboard.ViewHome:
			return m.handleHomeKeys(msg)
		case dashboard.ViewStationList:
			return m.handleListKeys(msg)
		}
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// handleHomeKeys handles keyboard input on the Home view
func (m Model) handleHomeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "enter", "l":
		return m, m.run(m.controller.NavigateToList())
	case "/":
		m.searchInput.Focus()
		return m, tea.Batch(textinput.Blink, m.run(m.controller.NavigateToList()))
	case "r", "h":
		return m.goHome()
	}
	return m, nil
}

// handleListKeys handles keyboard input on the station list view
func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.controller.SubmitSearch(m.searchInput.Value())
		return m, nil

	case tea.KeyEsc:
		return m.goHome()

	case tea.KeyLeft, tea.KeyPgUp:
		m.selectPage(m.controller.State().Page - 1)
		return m, nil

	case tea.KeyRight, tea.KeyPgDown:
		m.selectPage(m.controller.State().Page + 1)
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// goHome clears the search box and reloads everything
func (m Model) goHome() (tea.Model, tea.Cmd) {
	m.searchInput.SetValue("")
	return m, m.run(m.controller.NavigateToHome())
}

func (m Model) selectPage(p int) {
	if err := m.controller.SelectPage(p); err != nil {
		m.logger.Debug("page selection ignored", "page", p, "err", err)
	}
}

// run turns a controller effect into a command
func (m Model) run(effect dashboard.Effect) tea.Cmd {
	if effect != dashboard.EffectFetch {
		return nil
	}
	return tea.Batch(fetchStations(m.client), m.spinner.Tick)
}

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	vm := m.controller.ViewModel()

	var body string
	switch vm.View {
	case dashboard.ViewHome:
		body = m.viewHome(vm)
	case dashboard.ViewStationList:
		body = m.viewStations(vm)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewHeader(),
		"",
		body,
		m.viewFooter(),
	)
}

package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wricardo/mcp-training/carsimulator/game/engine"
	"github.com/wricardo/mcp-training/carsimulator/game/service"
	"github.com/wricardo/mcp-training/carsimulator/transport/console"
)

// Number of result messages kept on screen
const maxMessages = 6

type startedMsg struct {
	info *service.StartInfo
	err  error
}

type resultMsg struct {
	result *service.ActionResult
	err    error
}

type message struct {
	text     string
	severity engine.Severity
}

// Model is the bubbletea model for one game
type Model struct {
	ctx      context.Context
	service  service.GameService
	input    textinput.Model
	styles   console.Styles
	status   engine.Status
	menu     []engine.MenuOption
	messages []message
	started  bool
	quitting bool
	err      error
	width    int
	height   int
}

// NewModel creates a model that plays against gameService
func NewModel(ctx context.Context, gameService service.GameService, styles console.Styles) Model {
	ti := textinput.New()
	ti.Placeholder = "1-7"
	ti.Prompt = "Choose an option: "
	ti.PromptStyle = styles.Prompt
	ti.CharLimit = 8
	ti.Focus()

	return Model{
		ctx:     ctx,
		service: gameService,
		input:   ti,
		styles:  styles,
		menu:    gameService.GetMenu(ctx),
		messages: []message{
			{text: engine.WelcomeMessage, severity: engine.SeverityInfo},
			{text: "Fetching a random driver...", severity: engine.SeverityInfo},
		},
	}
}

// Init starts the game and the cursor blink
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.startCmd())
}

func (m Model) startCmd() tea.Cmd {
	return func() tea.Msg {
		info, err := m.service.Start(m.ctx)
		return startedMsg{info: info, err: err}
	}
}

func (m Model) chooseCmd(input string) tea.Cmd {
	return func() tea.Msg {
		result, err := m.service.Execute(m.ctx, input)
		return resultMsg{result: result, err: err}
	}
}

// Update handles messages (key presses, results, window resizes)
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case startedMsg:
		if msg.err != nil && !errors.Is(msg.err, service.ErrAlreadyStarted) {
			m.err = msg.err
			return m, tea.Quit
		}
		m.started = true
		if msg.info != nil {
			m.status = msg.info.Status
			m.addMessage(msg.info.Message, engine.SeverityInfo)
		} else if status, err := m.service.GetStatus(m.ctx); err == nil {
			m.status = status.Status
		}
		return m, nil

	case resultMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.status = msg.result.Status
		m.addMessage(msg.result.Message, msg.result.Severity)
		if msg.result.Exited {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			m.addMessage(engine.FarewellMessage, engine.SeverityInfo)
			return m, tea.Quit

		case tea.KeyEnter:
			if !m.started {
				return m, nil
			}
			value := m.input.Value()
			m.input.Reset()
			return m, m.chooseCmd(value)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) addMessage(text string, severity engine.Severity) {
	m.messages = append(m.messages, message{text: text, severity: severity})
	if len(m.messages) > maxMessages {
		m.messages = m.messages[len(m.messages)-maxMessages:]
	}
}

// View renders the status panel, menu, recent messages and the prompt
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Car Simulator") + "\n\n")

	if m.started {
		for _, line := range m.status.Lines() {
			b.WriteString(m.styles.StatusLine(line) + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(strings.Join(m.styles.MenuLines(m.menu), "\n") + "\n\n")

	for _, msg := range m.messages {
		b.WriteString(m.styles.For(msg.severity).Render(msg.text) + "\n")
	}

	if m.err != nil {
		b.WriteString(m.styles.Critical.Render("Error: "+m.err.Error()) + "\n")
	}

	if !m.quitting {
		b.WriteString("\n" + m.input.View() + "\n")
		b.WriteString(m.styles.Menu.Render("esc to quit") + "\n")
	}

	if m.width > 0 {
		return lipgloss.NewStyle().Width(m.width).Render(b.String())
	}
	return b.String()
}

// Err returns the error that ended the program, if any
func (m Model) Err() error {
	return m.err
}

// ask.go — the interactive question model.
//
// The user types an English question and presses Enter; the pipeline
// runs in a goroutine via tea.Cmd so the UI stays responsive, and the
// finished turn comes back as a TurnMsg. Typing "quit" (or "exit",
// "q") ends the session.
package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/askdb/askdb/agent"
)

// TurnMsg is sent when a question finishes the pipeline.
type TurnMsg struct {
	Turn *agent.Turn
}

// SchemaMsg carries the startup schema dump.
type SchemaMsg struct {
	Schema string
	Err    error
}

// AskModel is the root Bubble Tea model for the ask loop.
type AskModel struct {
	agent      *agent.Agent
	viewport   *Viewport
	transcript []string
	input      string
	loading    bool
	width      int
	height     int
}

// NewAskModel creates the ask loop over a ready agent.
func NewAskModel(a *agent.Agent) *AskModel {
	return &AskModel{
		agent:    a,
		viewport: NewViewport(80, 20),
	}
}

// Init implements tea.Model: fetch the schema for the welcome screen.
func (m *AskModel) Init() tea.Cmd {
	return func() tea.Msg {
		schema, err := m.agent.SchemaInfo(context.Background())
		return SchemaMsg{Schema: schema, Err: err}
	}
}

// Update implements tea.Model.
func (m *AskModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.SetSize(msg.Width-2, msg.Height-4)
		return m, nil

	case SchemaMsg:
		m.transcript = m.welcomeLines(msg)
		m.viewport.SetContentLines(m.transcript)
		return m, nil

	case TurnMsg:
		m.loading = false
		m.transcript = append(m.transcript, m.renderTurn(msg.Turn)...)
		m.viewport.SetContentLines(m.transcript)
		m.viewport.End()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *AskModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "enter":
		return m.submit()
	case "ctrl+k", "up":
		m.viewport.ScrollUp(1)
	case "ctrl+j", "down":
		m.viewport.ScrollDown(1)
	case "pgup":
		m.viewport.PageUp()
	case "pgdown":
		m.viewport.PageDown()
	case "backspace":
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	default:
		if m.loading {
			return m, nil
		}
		if msg.Type == tea.KeyRunes {
			m.input += string(msg.Runes)
		} else if msg.Type == tea.KeySpace {
			m.input += " "
		}
	}
	return m, nil
}

func (m *AskModel) submit() (tea.Model, tea.Cmd) {
	question := strings.TrimSpace(m.input)
	if question == "" || m.loading {
		return m, nil
	}

	switch strings.ToLower(question) {
	case "quit", "exit", "q":
		return m, tea.Quit
	}

	m.input = ""
	m.loading = true
	m.transcript = append(m.transcript, "", StylePrompt.Render("You: ")+question)
	m.viewport.SetContentLines(m.transcript)
	m.viewport.End()

	return m, func() tea.Msg {
		turn := m.agent.Ask(context.Background(), question)
		return TurnMsg{Turn: turn}
	}
}

func (m *AskModel) welcomeLines(msg SchemaMsg) []string {
	lines := []string{
		StyleTitle.Render("askdb") + StyleDimmed.Render(" ("+m.agent.Provider()+")"),
		"",
		"Ask a question about the sample database in plain English.",
		StyleDimmed.Render("Type your question and press Enter. Type 'quit' to exit."),
		"",
	}
	if msg.Err != nil {
		lines = append(lines, StyleError.Render("schema error: "+msg.Err.Error()))
		return lines
	}
	lines = append(lines, strings.Split(msg.Schema, "\n")...)
	return lines
}

func (m *AskModel) renderTurn(turn *agent.Turn) []string {
	var lines []string

	if turn.GeneratedSQL != "" {
		lines = append(lines, StyleDimmed.Render("SQL: ")+StyleSQL.Render(turn.GeneratedSQL))
	}

	label := StyleSuccess.Render("Answer: ")
	switch turn.Outcome {
	case agent.OutcomeRejected:
		label = StyleWarning.Render("Rejected: ")
	case agent.OutcomeFailed:
		label = StyleError.Render("Failed: ")
	}

	answer := strings.Split(turn.Answer, "\n")
	lines = append(lines, label+answer[0])
	for _, l := range answer[1:] {
		lines = append(lines, "  "+l)
	}

	if turn.Result != nil && turn.Result.RowCount > 0 {
		lines = append(lines, StyleDimmed.Render("  "+turn.Result.Status))
	}

	return lines
}

// View implements tea.Model.
func (m *AskModel) View() string {
	prompt := StylePrompt.Render("Ask> ") + m.input + "█"
	if m.loading {
		prompt = StylePrompt.Render("Ask> ") + StyleDimmed.Render("thinking...")
	}

	help := StyleDimmed.Render("Enter: ask  •  ↑/↓: scroll  •  quit: exit")

	return m.viewport.Render() + "\n" + prompt + "\n" + help
}

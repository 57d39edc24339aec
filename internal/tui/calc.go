package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/codealpha/showcase/internal/calc"
)

const calcWidth = 36

// CalcModel is the calculator screen. Keys go through the calculator's key
// table; tab toggles the history panel and ? the scientific key legend.
type CalcModel struct {
	calc           *calc.Calculator
	state          calc.State
	showHistory    bool
	showScientific bool
	width          int
	height         int
}

// NewCalcModel wraps c.
func NewCalcModel(c *calc.Calculator) *CalcModel {
	return &CalcModel{calc: c, state: c.State(), showHistory: true}
}

func (m *CalcModel) Init() tea.Cmd { return nil }

func (m *CalcModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.showHistory = !m.showHistory
			return m, nil
		case "?":
			m.showScientific = !m.showScientific
			return m, nil
		case "ctrl+l":
			m.calc.ClearHistory()
			return m, nil
		}
		if key := keypadKey(msg); key != "" {
			m.state = m.calc.Press(key)
		}
	}
	return m, nil
}

// keypadKey translates a terminal key to a calculator key name. Keys the
// calculator does not know are passed through and ignored there.
func keypadKey(msg tea.KeyMsg) string {
	switch msg.Type {
	case tea.KeyEnter:
		return calc.KeyEnter
	case tea.KeyBackspace:
		return calc.KeyBackspace
	case tea.KeyDelete:
		return calc.KeyDelete
	case tea.KeyEsc:
		return calc.KeyEscape
	case tea.KeyRunes:
		return string(msg.Runes)
	}
	return ""
}

// State returns the calculator state last rendered.
func (m *CalcModel) State() calc.State { return m.state }

func (m *CalcModel) View() string {
	dStyle := displayStyle.Width(calcWidth)
	if m.state.Error {
		dStyle = dStyle.Foreground(danger)
	}
	screen := panelStyle.Render(lipgloss.JoinVertical(lipgloss.Right,
		faintStyle.Width(calcWidth).Align(lipgloss.Right).Render(m.state.Preview),
		dStyle.Render(m.state.Display),
	))

	left := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Calculator"),
		screen,
		keypadHelp(m.showScientific),
	)
	if !m.showHistory {
		return left
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", m.historyView())
}

func (m *CalcModel) historyView() string {
	entries := m.calc.History()
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("History"))
	sb.WriteString("\n")
	if len(entries) == 0 {
		sb.WriteString(faintStyle.Render("no calculations yet"))
	}
	for _, e := range entries {
		sb.WriteString(e.String())
		sb.WriteString("\n")
	}
	return panelStyle.Render(strings.TrimRight(sb.String(), "\n"))
}

func keypadHelp(scientific bool) string {
	lines := []string{"0-9 . + - * / % ^ ( )  enter/= evaluate"}
	if scientific {
		fns := make([]string, 0, len(calc.FunctionKeys))
		for _, k := range []string{"s", "c", "t", "l", "n", "r"} {
			fns = append(fns, fmt.Sprintf("%s %s", k, calc.FunctionKeys[k]))
		}
		lines = append(lines, strings.Join(fns, "  ")+"  p π  e e")
	}
	lines = append(lines, "backspace undo  del/esc clear  tab history  ? scientific  ctrl+l clear history  q quit")
	return helpStyle.Render(strings.Join(lines, "\n"))
}

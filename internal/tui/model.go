// Package tui is an interactive terminal for comparing two hands.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/pokerhands/poker"
)

// Model holds two hand inputs and the last comparison
type Model struct {
	logger *log.Logger

	inputs  [2]textinput.Model
	focused int

	hands    [2]poker.Hand
	result   *poker.Result
	err      error
	quitting bool
}

// New creates a model with the first input focused
func New(logger *log.Logger) *Model {
	m := &Model{logger: logger.WithPrefix("tui")}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = "e.g. 5H 5C 6S 7S KD"
		ti.CharLimit = 32
		ti.Width = 32
		ti.Prompt = fmt.Sprintf("Hand %d > ", i+1)
		ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
		m.inputs[i] = ti
	}
	m.inputs[0].Focus()
	return m
}

// Init starts the cursor blinking
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "tab", "shift+tab", "up", "down":
			m.setFocus(1 - m.focused)
			return m, textinput.Blink

		case "enter":
			m.compare()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m *Model) setFocus(i int) {
	m.inputs[m.focused].Blur()
	m.focused = i
	m.inputs[m.focused].Focus()
}

func (m *Model) compare() {
	m.result, m.err = nil, nil

	for i := range m.inputs {
		h, err := poker.ParseHandString(m.inputs[i].Value())
		if err != nil {
			m.err = fmt.Errorf("hand %d: %w", i+1, err)
			m.setFocus(i)
			return
		}
		m.hands[i] = h
	}

	res, err := poker.Evaluate(m.hands[0], m.hands[1])
	if err != nil {
		m.err = err
		return
	}
	m.result = &res
	m.logger.Debug("Compared hands", "hand1", m.hands[0], "hand2", m.hands[1], "winner", res.Winner)
}

// Result returns the last successful comparison, if any
func (m *Model) Result() *poker.Result {
	return m.result
}

// Err returns the last input error, if any
func (m *Model) Err() error {
	return m.err
}

// Focused returns the index of the focused input
func (m *Model) Focused() int {
	return m.focused
}

// View renders the model
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render("Poker hand comparer"))
	b.WriteString("\n\n")
	for _, in := range m.inputs {
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(ErrorStyle.Render(m.err.Error()))
		b.WriteString("\n")

	case m.result != nil:
		for i, a := range []poker.Analysis{m.result.Hand1, m.result.Hand2} {
			fmt.Fprintf(&b, "%s %s  %s\n",
				LabelStyle.Render(fmt.Sprintf("Hand %d:", i+1)),
				formatCards(m.hands[i].Cards()),
				a.Category)
		}
		b.WriteString("\n")
		b.WriteString(WinnerStyle.Render(verdict(m.result.Winner)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(InfoStyle.Render("tab: switch hand • enter: compare • esc: quit"))
	b.WriteString("\n")
	return b.String()
}

func verdict(winner int) string {
	switch {
	case winner > 0:
		return "Hand 1 wins"
	case winner < 0:
		return "Hand 2 wins"
	default:
		return "Tie"
	}
}

// Run starts the interactive program and blocks until it exits
func Run(ctx context.Context, logger *log.Logger) error {
	p := tea.NewProgram(New(logger), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("interactive session: %w", err)
	}
	return nil
}

package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jsphweid/chordcast/chord"
	"github.com/jsphweid/chordcast/input"
	"github.com/jsphweid/chordcast/presenter"
)

// ActionMsg carries an input action from outside the terminal (MIDI).
type ActionMsg input.Action

// DisconnectedMsg means the server connection is gone.
type DisconnectedMsg struct{}

type PresenterModel struct {
	state    *presenter.State
	room     string
	actions  <-chan input.Action
	done     <-chan struct{}
	status   string
	quitting bool
}

// NewPresenterModel drives state. All mutation happens in Update, which
// bubbletea runs on a single goroutine. actions (MIDI) and done (server
// connection) may be nil.
func NewPresenterModel(state *presenter.State, room string, actions <-chan input.Action, done <-chan struct{}) PresenterModel {
	return PresenterModel{state: state, room: room, actions: actions, done: done}
}

// ListenForActions turns a channel of actions into messages.
func ListenForActions(actions <-chan input.Action) tea.Cmd {
	if actions == nil {
		return nil
	}
	return func() tea.Msg {
		a, ok := <-actions
		if !ok {
			return nil
		}
		return ActionMsg(a)
	}
}

// WaitForDisconnect reports when done closes.
func WaitForDisconnect(done <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-done
		return DisconnectedMsg{}
	}
}

func (m PresenterModel) Init() tea.Cmd {
	cmds := []tea.Cmd{ListenForActions(m.actions)}
	if m.done != nil {
		cmds = append(cmds, WaitForDisconnect(m.done))
	}
	return tea.Batch(cmds...)
}

func (m PresenterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		}
		if a, ok := input.FromKey(msg.String()); ok {
			m.apply(a)
		}

	case ActionMsg:
		m.apply(input.Action(msg))
		return m, ListenForActions(m.actions)

	case DisconnectedMsg:
		m.status = "disconnected from server"
	}
	return m, nil
}

func (m *PresenterModel) apply(a input.Action) {
	if err := input.Apply(m.state, a); err != nil {
		m.status = err.Error()
		return
	}
	m.status = ""
}

func keyStrip(current chord.Key) string {
	parts := make([]string, 0, len(chord.Keys))
	for _, k := range chord.Keys {
		if k == current {
			parts = append(parts, selectedKeyStyle.Render(k.String()))
		} else {
			parts = append(parts, keyStyle.Render(k.String()))
		}
	}
	return strings.Join(parts, "")
}

func (m PresenterModel) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("chordcast · presenting room %s", m.room)))
	b.WriteString("\n\n")
	b.WriteString(keyStrip(m.state.Key()))
	b.WriteString("\n\n")

	label := m.state.Label()
	if label == "" {
		label = " "
	}
	b.WriteString(chordStyle.Render(label))
	b.WriteString("\n\n")

	row, _ := chord.Table(m.state.Key())
	cells := make([]string, 0, len(row))
	for i, c := range row {
		cells = append(cells, fmt.Sprintf("%d %s", i+1, c))
	}
	b.WriteString(helpStyle.Render(strings.Join(cells, "   ")))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("1-7 degree · q ♭ · w ♯ · ←/→ key · 0/space/enter clear · esc quit"))
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.status))
	}
	b.WriteString("\n")
	return b.String()
}

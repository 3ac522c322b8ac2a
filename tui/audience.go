package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jsphweid/chordcast/audience"
	"github.com/jsphweid/chordcast/model"
)

// SnapshotMsg is a snapshot received from the server.
type SnapshotMsg model.Snapshot

type AudienceModel struct {
	board    *audience.Board
	view     *audience.View
	room     string
	status   string
	quitting bool
}

func NewAudienceModel(room string) AudienceModel {
	board := &audience.Board{}
	return AudienceModel{
		board: board,
		view:  audience.NewView(board),
		room:  room,
	}
}

func (m AudienceModel) Init() tea.Cmd {
	return nil
}

func (m AudienceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		}

	case SnapshotMsg:
		m.view.Render(model.Snapshot(msg))

	case DisconnectedMsg:
		m.status = "disconnected from server"
	}
	return m, nil
}

func (m AudienceModel) View() string {
	if m.quitting {
		return ""
	}
	key, chordText := m.board.Text()
	if chordText == "" {
		chordText = " "
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("chordcast · watching room %s", m.room)))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(key))
	b.WriteString("\n\n")
	b.WriteString(chordStyle.Render(chordText))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("q quit"))
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.status))
	}
	b.WriteString("\n")
	return b.String()
}

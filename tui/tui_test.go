package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jsphweid/chordcast/input"
	"github.com/jsphweid/chordcast/model"
	"github.com/jsphweid/chordcast/presenter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newPresenter(t *testing.T) (PresenterModel, *presenter.State, *[]model.Snapshot) {
	t.Helper()
	var sent []model.Snapshot
	state, err := presenter.New("C", presenter.NotifierFunc(func(s model.Snapshot) {
		sent = append(sent, s)
	}))
	require.NoError(t, err)
	return NewPresenterModel(state, "room", nil, nil), state, &sent
}

func update(m tea.Model, msgs ...tea.Msg) tea.Model {
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

func TestPresenterKeys(t *testing.T) {
	m, state, sent := newPresenter(t)

	out := update(m, runes("6"), runes("w"), tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "6♯ → Bm", state.Label())
	assert.Len(t, *sent, 3)
	assert.Contains(t, out.View(), "6♯ → Bm")

	update(out, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, state.Selected())

	update(out, runes("3"), tea.KeyMsg{Type: tea.KeySpace})
	assert.False(t, state.Selected())
}

func TestPresenterIgnoresUnknownKeys(t *testing.T) {
	m, _, sent := newPresenter(t)
	update(m, runes("x"), runes("9"), runes("q"))
	assert.Empty(t, *sent)
}

func TestPresenterMidiAction(t *testing.T) {
	m, state, _ := newPresenter(t)
	actions := make(chan input.Action)
	m.actions = actions

	_, cmd := m.Update(ActionMsg(input.Degree(2)))
	assert.Equal(t, "2 → Dm", state.Label())
	assert.NotNil(t, cmd)
}

func TestPresenterQuit(t *testing.T) {
	m, _, _ := newPresenter(t)
	out, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Equal(t, "", out.View())
}

func TestPresenterDisconnect(t *testing.T) {
	m, _, _ := newPresenter(t)
	out := update(m, DisconnectedMsg{})
	assert.Contains(t, out.View(), "disconnected")
}

func TestAudienceRendersSnapshots(t *testing.T) {
	m := NewAudienceModel("room")

	out := update(m, SnapshotMsg(model.SelectionSnapshot("4♭", "E", "C")))
	view := out.View()
	assert.Contains(t, view, "Key: C")
	assert.Contains(t, view, "4♭ → E")

	out = update(out, SnapshotMsg(model.SelectionSnapshot("", "", "C")))
	view = out.View()
	assert.Contains(t, view, "Key: C")
	assert.NotContains(t, view, "4♭ → E")
}

func TestAudienceQuit(t *testing.T) {
	m := NewAudienceModel("room")
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

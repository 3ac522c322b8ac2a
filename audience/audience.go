// Package audience renders snapshots received from a presenter. It keeps no
// state of its own beyond what a Display shows.
package audience

import (
	"fmt"
	"io"
	"sync"

	"github.com/jsphweid/chordcast/model"
)

// Display is the output surface an audience renders onto.
type Display interface {
	ShowKey(text string)
	ShowChord(text string)
	ClearChord()
}

type View struct {
	display Display
}

func NewView(d Display) *View {
	return &View{display: d}
}

// Render applies s verbatim. Fields absent from s leave the display as is,
// so rendering the same snapshot twice is harmless.
func (v *View) Render(s model.Snapshot) {
	if s.HasKey() {
		v.display.ShowKey(KeyText(s.KeyValue()))
	}
	switch {
	case s.Active():
		v.display.ShowChord(ChordText(s.DegreeValue(), s.ChordValue()))
	case s.Cleared():
		v.display.ClearChord()
	}
}

func KeyText(key string) string {
	return "Key: " + key
}

func ChordText(degree, chord string) string {
	return degree + " → " + chord
}

// Board keeps the current display text in memory.
type Board struct {
	mu    sync.Mutex
	key   string
	chord string
}

func (b *Board) ShowKey(text string) {
	b.mu.Lock()
	b.key = text
	b.mu.Unlock()
}

func (b *Board) ShowChord(text string) {
	b.mu.Lock()
	b.chord = text
	b.mu.Unlock()
}

func (b *Board) ClearChord() {
	b.ShowChord("")
}

func (b *Board) Text() (key string, chord string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.key, b.chord
}

// LineDisplay prints each change on its own line.
type LineDisplay struct {
	w io.Writer
}

func NewLineDisplay(w io.Writer) *LineDisplay {
	return &LineDisplay{w: w}
}

func (l *LineDisplay) ShowKey(text string) {
	fmt.Fprintln(l.w, text)
}

func (l *LineDisplay) ShowChord(text string) {
	fmt.Fprintln(l.w, text)
}

func (l *LineDisplay) ClearChord() {
	fmt.Fprintln(l.w, "-")
}

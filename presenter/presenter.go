// Package presenter holds the state a presenter drives with degree, accidental
// and key input, and publishes a snapshot after every observable change.
package presenter

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jsphweid/chordcast/chord"
	"github.com/jsphweid/chordcast/model"
	"github.com/jsphweid/chordcast/util"
)

var ErrDegreeOutOfRange = errors.New("degree out of range")

const (
	sharpSign = "♯"
	flatSign  = "♭"
)

// Notifier receives every snapshot the state emits, in emit order, on the
// goroutine that drives the state.
type Notifier interface {
	Publish(s model.Snapshot)
}

type NotifierFunc func(s model.Snapshot)

func (f NotifierFunc) Publish(s model.Snapshot) {
	f(s)
}

// State is owned by a single presenter session. It is not safe for
// concurrent use; all input must be applied from one goroutine.
type State struct {
	degree   int // 0 when cleared
	key      chord.Key
	offset   int
	chord    chord.Symbol
	notifier Notifier
}

// New starts a cleared session in key. A nil notifier discards snapshots.
func New(key chord.Key, notifier Notifier) (*State, error) {
	if !key.Valid() {
		return nil, fmt.Errorf("%w: %q", chord.ErrUnknownKey, key)
	}
	if notifier == nil {
		notifier = NotifierFunc(func(model.Snapshot) {})
	}
	return &State{key: key, notifier: notifier}, nil
}

// SelectDegree picks degree n (1-7) in the current key and resets any
// accidental. 0 clears the selection.
func (s *State) SelectDegree(n int) error {
	if n == 0 {
		s.Clear()
		return nil
	}
	if n < 1 || n > chord.NumDegrees {
		return fmt.Errorf("%w: %d", ErrDegreeOutOfRange, n)
	}
	s.degree = n
	s.offset = 0
	s.recompute()
	s.notify()
	return nil
}

func (s *State) Clear() {
	s.degree = 0
	s.offset = 0
	s.chord = ""
	s.notify()
}

// ApplySharp raises the selected chord a semitone. No-op when cleared.
func (s *State) ApplySharp() {
	s.shift(1)
}

// ApplyFlat lowers the selected chord a semitone. No-op when cleared.
func (s *State) ApplyFlat() {
	s.shift(-1)
}

func (s *State) shift(n int) {
	if !s.Selected() {
		return
	}
	s.offset += n
	s.recompute()
	s.notify()
}

// ChangeKey switches key, keeping degree and offset. While cleared only the
// key is published.
func (s *State) ChangeKey(key chord.Key) error {
	if !key.Valid() {
		return fmt.Errorf("%w: %q", chord.ErrUnknownKey, key)
	}
	s.key = key
	if !s.Selected() {
		s.notifier.Publish(model.KeySnapshot(key.String()))
		return nil
	}
	s.recompute()
	s.notify()
	return nil
}

// recompute always starts from the table chord so repeated accidentals
// never compound.
func (s *State) recompute() {
	s.chord = chord.Transpose(chord.Lookup(s.key, s.degree), s.offset)
}

func (s *State) notify() {
	s.notifier.Publish(s.Snapshot())
}

func (s *State) Selected() bool {
	return s.degree != 0
}

func (s *State) Degree() int {
	return s.degree
}

func (s *State) Key() chord.Key {
	return s.key
}

func (s *State) Offset() int {
	return s.offset
}

func (s *State) Chord() chord.Symbol {
	return s.chord
}

// AccidentalLabel is one ♯ per raised semitone or one ♭ per lowered one.
func (s *State) AccidentalLabel() string {
	switch {
	case s.offset > 0:
		return strings.Repeat(sharpSign, s.offset)
	case s.offset < 0:
		return strings.Repeat(flatSign, util.Abs(s.offset))
	}
	return ""
}

// DegreeLabel is the degree followed by its accidentals, e.g. "4♭".
func (s *State) DegreeLabel() string {
	if !s.Selected() {
		return ""
	}
	return strconv.Itoa(s.degree) + s.AccidentalLabel()
}

// Label is the presenter's own display text.
func (s *State) Label() string {
	if !s.Selected() {
		return ""
	}
	return s.DegreeLabel() + " → " + s.chord.String()
}

func (s *State) Snapshot() model.Snapshot {
	return model.SelectionSnapshot(s.DegreeLabel(), s.chord.String(), s.key.String())
}

// Package midi turns a MIDI keyboard into presenter input. White keys pick
// degrees, a few black keys act as accidentals and clear.
package midi

import (
	"fmt"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/chordcast/constants"
	"github.com/jsphweid/chordcast/input"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
)

// ActionForNote maps a note by pitch class:
// C D E F G A B -> degrees 1..7, C# -> flat, D# -> sharp, F# G# A# -> clear.
func ActionForNote(note uint8) (input.Action, bool) {
	switch note % 12 {
	case 0:
		return input.Degree(1), true
	case 2:
		return input.Degree(2), true
	case 4:
		return input.Degree(3), true
	case 5:
		return input.Degree(4), true
	case 7:
		return input.Degree(5), true
	case 9:
		return input.Degree(6), true
	case 11:
		return input.Degree(7), true
	case 1:
		return input.Action{Kind: input.Flat}, true
	case 3:
		return input.Action{Kind: input.Sharp}, true
	case 6, 8, 10:
		return input.Action{Kind: input.Clear}, true
	}
	return input.Action{}, false
}

// Collector gathers note-ons that arrive together (a played chord) and emits
// one action for the lowest note once the burst settles.
type Collector struct {
	mu        sync.Mutex
	pending   []uint8
	debounced func(f func())
	actions   chan input.Action
}

func NewCollector(window time.Duration) *Collector {
	if window <= 0 {
		window = constants.DefaultMidiDebounce
	}
	return &Collector{
		debounced: debounce.New(window),
		actions:   make(chan input.Action, 8),
	}
}

// Actions delivers mapped actions. Actions are dropped if nobody reads.
func (c *Collector) Actions() <-chan input.Action {
	return c.actions
}

func (c *Collector) NoteOn(note uint8) {
	c.mu.Lock()
	c.pending = append(c.pending, note)
	c.mu.Unlock()
	c.debounced(c.flush)
}

func (c *Collector) flush() {
	c.mu.Lock()
	if len(c.pending) == 0 {
		c.mu.Unlock()
		return
	}
	lowest := c.pending[0]
	for _, n := range c.pending[1:] {
		if n < lowest {
			lowest = n
		}
	}
	c.pending = c.pending[:0]
	c.mu.Unlock()

	a, ok := ActionForNote(lowest)
	if !ok {
		return
	}
	select {
	case c.actions <- a:
	default:
	}
}

// Listen feeds note-ons from in to c until stop is called.
func Listen(in drivers.In, c *Collector) (stop func(), err error) {
	stop, err = midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		var ch, key, vel uint8
		if msg.GetNoteStart(&ch, &key, &vel) {
			c.NoteOn(key)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("listen to %v: %w", in, err)
	}
	return stop, nil
}

// InPort finds an input port by name, or the first port when name is empty.
func InPort(name string) (drivers.In, error) {
	if name == "" {
		return midi.InPort(0)
	}
	return midi.FindInPort(name)
}

func InPorts() []string {
	var res []string
	for _, in := range midi.GetInPorts() {
		res = append(res, in.String())
	}
	return res
}

func CloseDriver() {
	midi.CloseDriver()
}

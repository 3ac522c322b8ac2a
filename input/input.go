package input

import (
	"fmt"

	"github.com/jsphweid/chordcast/chord"
	"github.com/jsphweid/chordcast/presenter"
)

type Kind int

const (
	SelectDegree Kind = iota
	Clear
	Sharp
	Flat
	KeyUp
	KeyDown
	SetKey
)

// Action is one discrete presenter input, regardless of where it came from.
type Action struct {
	Kind   Kind
	Degree int
	Key    chord.Key
}

func Degree(n int) Action {
	return Action{Kind: SelectDegree, Degree: n}
}

func Key(k chord.Key) Action {
	return Action{Kind: SetKey, Key: k}
}

func (a Action) String() string {
	switch a.Kind {
	case SelectDegree:
		return fmt.Sprintf("degree %d", a.Degree)
	case Clear:
		return "clear"
	case Sharp:
		return "sharp"
	case Flat:
		return "flat"
	case KeyUp:
		return "key up"
	case KeyDown:
		return "key down"
	case SetKey:
		return "key " + a.Key.String()
	}
	return "unknown"
}

// FromKey maps a terminal key name (as reported by bubbletea) to an action.
func FromKey(name string) (Action, bool) {
	switch name {
	case "1", "2", "3", "4", "5", "6", "7":
		return Degree(int(name[0] - '0')), true
	case "0", " ", "enter":
		return Action{Kind: Clear}, true
	case "q", "Q":
		return Action{Kind: Flat}, true
	case "w", "W":
		return Action{Kind: Sharp}, true
	case "right":
		return Action{Kind: KeyUp}, true
	case "left":
		return Action{Kind: KeyDown}, true
	}
	return Action{}, false
}

// Apply drives s with a. Degree 0 clears.
func Apply(s *presenter.State, a Action) error {
	switch a.Kind {
	case SelectDegree:
		return s.SelectDegree(a.Degree)
	case Clear:
		s.Clear()
	case Sharp:
		s.ApplySharp()
	case Flat:
		s.ApplyFlat()
	case KeyUp:
		return s.ChangeKey(s.Key().Step(1))
	case KeyDown:
		return s.ChangeKey(s.Key().Step(-1))
	case SetKey:
		return s.ChangeKey(a.Key)
	default:
		return fmt.Errorf("unknown action kind %d", a.Kind)
	}
	return nil
}

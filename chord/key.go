package chord

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsphweid/chordcast/util"
)

var ErrUnknownKey = errors.New("unknown key")

// Key is a root note name in sharp spelling.
type Key string

// Keys lists the chromatic scale starting at C. Index is the pitch class.
var Keys = []Key{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

func (k Key) String() string {
	return string(k)
}

// Index returns the pitch class of k, or -1 if k is not one of Keys.
func (k Key) Index() int {
	for i, v := range Keys {
		if v == k {
			return i
		}
	}
	return -1
}

func (k Key) Valid() bool {
	return k.Index() >= 0
}

// Step moves n semitones around the chromatic circle. Invalid keys are
// returned unchanged.
func (k Key) Step(n int) Key {
	i := k.Index()
	if i < 0 {
		return k
	}
	return Keys[util.FloorMod(i+n, len(Keys))]
}

// ParseKey accepts a key name as typed by a user. A trailing "s" is read as
// a sharp so keys can travel in URL paths ("Cs" is "C#").
func ParseKey(s string) (Key, error) {
	name := strings.TrimSpace(s)
	if len(name) == 2 && (name[1] == 's' || name[1] == 'S') {
		name = name[:1] + "#"
	}
	if name != "" {
		name = strings.ToUpper(name[:1]) + name[1:]
	}
	k := Key(name)
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownKey, s)
	}
	return k, nil
}

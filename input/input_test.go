package input

import (
	"testing"

	"github.com/jsphweid/chordcast/chord"
	"github.com/jsphweid/chordcast/presenter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromKey(t *testing.T) {
	cases := []struct {
		name string
		want Action
		ok   bool
	}{
		{"1", Degree(1), true},
		{"7", Degree(7), true},
		{"8", Action{}, false},
		{"0", Action{Kind: Clear}, true},
		{" ", Action{Kind: Clear}, true},
		{"enter", Action{Kind: Clear}, true},
		{"q", Action{Kind: Flat}, true},
		{"W", Action{Kind: Sharp}, true},
		{"right", Action{Kind: KeyUp}, true},
		{"left", Action{Kind: KeyDown}, true},
		{"x", Action{}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := FromKey(c.name)
			assert.Equal(t, c.ok, ok)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestApplySequence(t *testing.T) {
	s, err := presenter.New("C", nil)
	require.NoError(t, err)
	assert := assert.New(t)

	for _, name := range []string{"6", "w", "right"} {
		a, ok := FromKey(name)
		require.True(t, ok)
		require.NoError(t, Apply(s, a))
	}
	assert.Equal(chord.Key("C#"), s.Key())
	assert.Equal(chord.Symbol("Bm"), s.Chord())
	assert.Equal("6♯ → Bm", s.Label())

	require.NoError(t, Apply(s, Action{Kind: KeyDown}))
	require.NoError(t, Apply(s, Action{Kind: KeyDown}))
	assert.Equal(chord.Key("B"), s.Key())
	assert.Equal(chord.Symbol("Am"), s.Chord())

	require.NoError(t, Apply(s, Key("F")))
	assert.Equal(chord.Symbol("D#m"), s.Chord())

	require.NoError(t, Apply(s, Degree(0)))
	assert.False(s.Selected())
}

func TestApplyErrors(t *testing.T) {
	s, err := presenter.New("C", nil)
	require.NoError(t, err)

	assert.ErrorIs(t, Apply(s, Degree(9)), presenter.ErrDegreeOutOfRange)
	assert.ErrorIs(t, Apply(s, Key("Gb")), chord.ErrUnknownKey)
	assert.Error(t, Apply(s, Action{Kind: Kind(99)}))
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "degree 3", Degree(3).String())
	assert.Equal(t, "key G#", Key("G#").String())
	assert.Equal(t, "sharp", Action{Kind: Sharp}.String())
}

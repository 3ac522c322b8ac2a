package chord

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allChords() []Symbol {
	var res []Symbol
	for _, k := range Keys {
		row, _ := Table(k)
		res = append(res, row...)
	}
	return res
}

func TestKeysAreTwelveDistinct(t *testing.T) {
	seen := make(map[Key]bool)
	for _, k := range Keys {
		seen[k] = true
	}
	assert.Len(t, seen, 12)
}

func TestLookupRootsAreKeys(t *testing.T) {
	for _, k := range Keys {
		for d := 1; d <= NumDegrees; d++ {
			name := fmt.Sprintf("%v degree %v", k, d)
			t.Run(name, func(t *testing.T) {
				c := Lookup(k, d)
				assert.NotEmpty(t, c)
				root, _, ok := Parse(c)
				assert.True(t, ok)
				assert.True(t, root.Valid())
			})
		}
	}
}

func TestLookupExamples(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(Symbol("C"), Lookup("C", 1))
	assert.Equal(Symbol("Am"), Lookup("C", 6))
	assert.Equal(Symbol("Em"), Lookup("G", 6))
	assert.Equal(Symbol("Edim"), Lookup("F", 7))
	assert.Equal(Symbol("Fdim"), Lookup("F#", 7))
}

func TestLookupOutOfDomain(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(Symbol(""), Lookup("C", 0))
	assert.Equal(Symbol(""), Lookup("C", 8))
	assert.Equal(Symbol(""), Lookup("H", 1))
}

func TestTableIsACopy(t *testing.T) {
	row, ok := Table("C")
	require.True(t, ok)
	row[0] = "X"
	assert.Equal(t, Symbol("C"), Lookup("C", 1))

	_, ok = Table("Cb")
	assert.False(t, ok)
}

func TestParse(t *testing.T) {
	cases := []struct {
		in     Symbol
		root   Key
		suffix string
		ok     bool
	}{
		{"C", "C", "", true},
		{"F#m", "F#", "m", true},
		{"A#dim", "A#", "dim", true},
		{"Ebm", "E", "bm", true},
		{"E#dim", "", "", false},
		{"H7", "", "", false},
		{"", "", "", false},
		{"m", "", "", false},
	}

	for _, c := range cases {
		t.Run(string(c.in), func(t *testing.T) {
			root, suffix, ok := Parse(c.in)
			assert.Equal(t, c.ok, ok)
			assert.Equal(t, c.root, root)
			assert.Equal(t, c.suffix, suffix)
		})
	}
}

func TestTransposeExamples(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(Symbol("C#"), Transpose("C", 1))
	assert.Equal(Symbol("D"), Transpose("C", 2))
	assert.Equal(Symbol("D#dim"), Transpose("Edim", -1))
	assert.Equal(Symbol("Bm"), Transpose("Cm", -1))
	assert.Equal(Symbol("A#m"), Transpose("Cm", -14))
}

func TestTransposeMalformedIsUnchanged(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(Symbol("E#dim"), Transpose("E#dim", 3))
	assert.Equal(Symbol("xyz"), Transpose("xyz", -2))
	assert.Equal(Symbol(""), Transpose("", 1))
}

func TestTransposeLaws(t *testing.T) {
	for _, c := range allChords() {
		t.Run(string(c), func(t *testing.T) {
			assert.Equal(t, c, Transpose(c, 0))
			assert.Equal(t, c, Transpose(c, 12))
			assert.Equal(t, c, Transpose(c, -24))
			for n := -30; n <= 30; n++ {
				assert.Equal(t, c, Transpose(Transpose(c, n), -n))
			}
		})
	}
}

func TestTransposeKeepsSuffix(t *testing.T) {
	for _, c := range allChords() {
		_, want, _ := Parse(c)
		for n := -13; n <= 13; n++ {
			_, got, ok := Parse(Transpose(c, n))
			assert.True(t, ok)
			assert.Equal(t, want, got)
		}
	}
}

func TestKeyStep(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(Key("C#"), Key("C").Step(1))
	assert.Equal(Key("B"), Key("C").Step(-1))
	assert.Equal(Key("C"), Key("B").Step(1))
	assert.Equal(Key("G"), Key("C").Step(-17))
	assert.Equal(Key("nope"), Key("nope").Step(1))
}

func TestParseKey(t *testing.T) {
	assert := assert.New(t)

	k, err := ParseKey("c#")
	assert.NoError(err)
	assert.Equal(Key("C#"), k)

	k, err = ParseKey("Fs")
	assert.NoError(err)
	assert.Equal(Key("F#"), k)

	k, err = ParseKey(" G ")
	assert.NoError(err)
	assert.Equal(Key("G"), k)

	_, err = ParseKey("Bb")
	assert.ErrorIs(err, ErrUnknownKey)

	_, err = ParseKey("")
	assert.ErrorIs(err, ErrUnknownKey)
}

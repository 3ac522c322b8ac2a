package midi

import (
	"fmt"
	"testing"
	"time"

	"github.com/jsphweid/chordcast/input"
	"github.com/stretchr/testify/assert"
)

func TestActionForNote(t *testing.T) {
	cases := []struct {
		note uint8
		want input.Action
	}{
		{60, input.Degree(1)},
		{62, input.Degree(2)},
		{64, input.Degree(3)},
		{65, input.Degree(4)},
		{67, input.Degree(5)},
		{69, input.Degree(6)},
		{71, input.Degree(7)},
		{48, input.Degree(1)},
		{61, input.Action{Kind: input.Flat}},
		{63, input.Action{Kind: input.Sharp}},
		{66, input.Action{Kind: input.Clear}},
		{68, input.Action{Kind: input.Clear}},
		{70, input.Action{Kind: input.Clear}},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("note %d", c.note), func(t *testing.T) {
			got, ok := ActionForNote(c.note)
			assert.True(t, ok)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestCollectorUsesLowestNoteOfBurst(t *testing.T) {
	c := NewCollector(10 * time.Millisecond)

	// G major triad in first inversion; B is lowest
	c.NoteOn(74)
	c.NoteOn(71)
	c.NoteOn(79)

	select {
	case a := <-c.Actions():
		assert.Equal(t, input.Degree(7), a)
	case <-time.After(time.Second):
		t.Fatal("expected an action after the burst settled")
	}

	select {
	case a := <-c.Actions():
		t.Fatalf("unexpected second action %v", a)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestCollectorSeparateBursts(t *testing.T) {
	c := NewCollector(5 * time.Millisecond)

	c.NoteOn(60)
	first := <-c.Actions()
	c.NoteOn(63)
	second := <-c.Actions()

	assert.Equal(t, input.Degree(1), first)
	assert.Equal(t, input.Action{Kind: input.Sharp}, second)
}

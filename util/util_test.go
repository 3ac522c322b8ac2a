package util

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloorModHandlesNegatives(t *testing.T) {
	cases := []struct {
		n    int
		want int
	}{
		{0, 0},
		{5, 5},
		{12, 0},
		{13, 1},
		{-1, 11},
		{-12, 0},
		{-13, 11},
		{-25, 11},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("%d mod 12", c.n), func(t *testing.T) {
			assert.Equal(t, c.want, FloorMod(c.n, 12))
		})
	}
}

func TestAbs(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(3, Abs(-3))
	assert.Equal(3, Abs(3))
	assert.Equal(0, Abs(0))
}

func TestGetKeysSorted(t *testing.T) {
	m := map[string]int{"b": 2, "c": 3, "a": 1}
	assert.Equal(t, []string{"a", "b", "c"}, GetKeysSorted(m))
}

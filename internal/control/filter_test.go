package control

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterWarmUpFromZero(t *testing.T) {
	// The filter starts at 0, so a constant input ramps in over the
	// first few iterations instead of jumping.
	var f Filter
	got := []int{}
	for i := 0; i < 6; i++ {
		got = append(got, f.Apply(400))
	}
	assert.Equal(t, []int{100, 175, 231, 273, 304, 328}, got)
}

func TestFilterConverges(t *testing.T) {
	var f Filter
	for i := 0; i < 50; i++ {
		f.Apply(400)
	}
	// Truncating arithmetic settles just below the input.
	assert.InDelta(t, 400, f.Value(), 3)
}

func TestFilterStaysWithinBounds(t *testing.T) {
	// Output always lies between the previous output and the new input:
	// the filter never overshoots in either direction.
	var f Filter
	inputs := []int{0, 1023, 7, 512, 512, 3, 999, 0, 0, 1023, 40, 130}
	for i, raw := range inputs {
		prev := f.Value()
		out := f.Apply(raw)
		lo, hi := prev, raw
		if lo > hi {
			lo, hi = hi, lo
		}
		assert.GreaterOrEqual(t, out, lo, "input %d", i)
		assert.LessOrEqual(t, out, hi, "input %d", i)
	}
}

func TestFilterChannelsAreIndependent(t *testing.T) {
	var temp, supply Filter
	temp.Apply(400)
	supply.Apply(800)
	assert.Equal(t, 100, temp.Value())
	assert.Equal(t, 200, supply.Value())
}

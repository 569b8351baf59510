package isg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordDecimal(t *testing.T) {
	assert.Equal(t, 12.5, Dec(12.5).Decimal())
	assert.Equal(t, 39.5, DMS(39, 30, 0).Decimal())
	assert.Equal(t, -39.5, DMS(-39, 30, 0).Decimal())
	assert.InDelta(t, 40.3375, DMS(40, 20, 15).Decimal(), 1e-12)
}

func TestCoordParts(t *testing.T) {
	d, m, s, ok := DMS(119, 50, 0).Parts()
	require.True(t, ok)
	assert.Equal(t, 119, d)
	assert.Equal(t, 50, m)
	assert.Equal(t, 0, s)

	_, _, _, ok = Dec(1).Parts()
	assert.False(t, ok)
}

func TestCoordArithmetic(t *testing.T) {
	// Carries normalize across the sexagesimal positions.
	sum := DMS(39, 50, 0).Add(DMS(0, 20, 0))
	assert.Equal(t, DMS(40, 10, 0), sum)

	diff := DMS(41, 10, 0).Sub(DMS(39, 50, 0))
	assert.Equal(t, DMS(1, 20, 0), diff)

	assert.Equal(t, DMS(1, 40, 0), DMS(0, 20, 0).Mul(5))
	assert.Equal(t, DMS(0, 0, 0), DMS(0, 20, 0).Mul(0))

	assert.Equal(t, Dec(3.5), Dec(1.25).Add(Dec(2.25)))
	assert.Equal(t, Dec(-1.0), Dec(1.0).Sub(Dec(2.0)))
	assert.Equal(t, Dec(7.5), Dec(2.5).Mul(3))
}

func TestCoordNegative(t *testing.T) {
	// A negative angle keeps minutes and seconds positive.
	c := DMS(-1, 30, 0)
	assert.Equal(t, -1.5, c.Decimal())
	assert.Equal(t, DMS(1, 30, 0), c.Neg())

	// Crossing zero normalizes the sign onto the degree.
	assert.Equal(t, DMS(-1, 10, 0), DMS(0, 50, 0).Sub(DMS(2, 0, 0)))
}

func TestCoordMixedKindPanics(t *testing.T) {
	assert.Panics(t, func() { Dec(1).Add(DMS(1, 0, 0)) })
	assert.Panics(t, func() { DMS(1, 0, 0).Sub(Dec(1)) })
	assert.Panics(t, func() { Dec(1).Mul(-1) })
}

func TestCoordString(t *testing.T) {
	assert.Equal(t, `39°50'00"`, DMS(39, 50, 0).String())
	assert.Equal(t, "12.5", Dec(12.5).String())
}

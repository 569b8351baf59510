package isg

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBound(t *testing.T) {
	doc, err := Parse(readFixture(t, "grid_deg.isg"))
	require.NoError(t, err)
	assert.Equal(t, orb.Bound{
		Min: orb.Point{120.0, 40.0},
		Max: orb.Point{121.0, 41.0},
	}, doc.Header.DataBounds.Bound())

	doc, err = Parse(readFixture(t, "sparse_proj.isg"))
	require.NoError(t, err)
	assert.Equal(t, orb.Bound{
		Min: orb.Point{440000.0, 5200000.0},
		Max: orb.Point{452000.0, 5210000.0},
	}, doc.Header.DataBounds.Bound())
}

func TestBoundDMS(t *testing.T) {
	doc, err := Parse(readFixture(t, "grid_dms.isg"))
	require.NoError(t, err)
	b := doc.Header.DataBounds.Bound()
	assert.InDelta(t, 119.0+50.0/60, b.Min[0], 1e-12)
	assert.InDelta(t, 39.0+50.0/60, b.Min[1], 1e-12)
	assert.InDelta(t, 121.0+50.0/60, b.Max[0], 1e-12)
	assert.InDelta(t, 41.0+10.0/60, b.Max[1], 1e-12)
}

func TestCellCoord(t *testing.T) {
	doc, err := Parse(readFixture(t, "grid_deg.isg"))
	require.NoError(t, err)

	// Row 0 is the northernmost row, column 0 the westernmost column.
	a, b, err := doc.CellCoord(0, 0)
	require.NoError(t, err)
	assert.Equal(t, Dec(41.0), a)
	assert.Equal(t, Dec(120.0), b)

	a, b, err = doc.CellCoord(2, 2)
	require.NoError(t, err)
	assert.Equal(t, Dec(40.0), a)
	assert.Equal(t, Dec(121.0), b)
}

func TestCellCoordDMS(t *testing.T) {
	doc, err := Parse(readFixture(t, "grid_dms.isg"))
	require.NoError(t, err)

	// DMS grids step in exact arc seconds.
	a, b, err := doc.CellCoord(0, 0)
	require.NoError(t, err)
	assert.Equal(t, DMS(41, 10, 0), a)
	assert.Equal(t, DMS(119, 50, 0), b)

	a, b, err = doc.CellCoord(4, 6)
	require.NoError(t, err)
	assert.Equal(t, DMS(39, 50, 0), a)
	assert.Equal(t, DMS(121, 50, 0), b)

	a, b, err = doc.CellCoord(2, 3)
	require.NoError(t, err)
	assert.Equal(t, DMS(40, 30, 0), a)
	assert.Equal(t, DMS(120, 50, 0), b)
}

func TestCellCoordErrors(t *testing.T) {
	doc, err := Parse(readFixture(t, "grid_deg.isg"))
	require.NoError(t, err)
	_, _, err = doc.CellCoord(3, 0)
	assert.Error(t, err)
	_, _, err = doc.CellCoord(0, -1)
	assert.Error(t, err)

	sparse, err := Parse(readFixture(t, "sparse_proj.isg"))
	require.NoError(t, err)
	_, _, err = sparse.CellCoord(0, 0)
	assert.Error(t, err)
}

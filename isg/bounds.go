package isg

import (
	"fmt"

	"github.com/paulmach/orb"
)

// Bound returns the declared extent as an orb rectangle, longitude on X
// and latitude on Y.
func (b GridGeodetic) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{b.LonMin.Decimal(), b.LatMin.Decimal()},
		Max: orb.Point{b.LonMax.Decimal(), b.LatMax.Decimal()},
	}
}

// Bound returns the declared extent as an orb rectangle, easting on X
// and northing on Y.
func (b GridProjected) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{b.EastMin.Decimal(), b.NorthMin.Decimal()},
		Max: orb.Point{b.EastMax.Decimal(), b.NorthMax.Decimal()},
	}
}

func (b SparseGeodetic) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{b.LonMin.Decimal(), b.LatMin.Decimal()},
		Max: orb.Point{b.LonMax.Decimal(), b.LatMax.Decimal()},
	}
}

func (b SparseProjected) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{b.EastMin.Decimal(), b.NorthMin.Decimal()},
		Max: orb.Point{b.EastMax.Decimal(), b.NorthMax.Decimal()},
	}
}

// CellCoord returns the coordinates of grid cell (i, j): i counts rows
// from the northernmost, j columns from the westernmost, matching the
// row-major layout of [Grid]. a is the latitude or northing, b the
// longitude or easting. DMS bounds produce exact DMS coordinates.
func (d *Document) CellCoord(i, j int) (a, b Coord, err error) {
	h := &d.Header
	if h.DataFormat != FormatGrid {
		return Coord{}, Coord{}, fmt.Errorf("isg: cell coordinates are defined for grid data only")
	}
	if i < 0 || i >= h.NRows || j < 0 || j >= h.NCols {
		return Coord{}, Coord{}, fmt.Errorf("isg: cell (%d, %d) outside %dx%d grid", i, j, h.NRows, h.NCols)
	}

	var aMax, bMin, deltaA, deltaB Coord
	switch bd := h.DataBounds.(type) {
	case GridGeodetic:
		aMax, bMin, deltaA, deltaB = bd.LatMax, bd.LonMin, bd.DeltaLat, bd.DeltaLon
	case GridProjected:
		aMax, bMin, deltaA, deltaB = bd.NorthMax, bd.EastMin, bd.DeltaNorth, bd.DeltaEast
	default:
		return Coord{}, Coord{}, fmt.Errorf("isg: grid data bounds are not set")
	}

	return aMax.Sub(deltaA.Mul(i)), bMin.Add(deltaB.Mul(j)), nil
}

package isg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleGridDoc builds a small geodetic grid document by hand, the way
// a producer would before writing a file.
func sampleGridDoc() *Document {
	name := "REGIONAL2023"
	year := "2023"
	mt := ModelGravimetric
	dt := DataGeoid
	du := UnitMeters
	do := OrderingN2SW2E
	ell := "GRS80"
	frame := "ITRF2014"
	tide := TideFree
	nodata := -9999.0
	v := func(x float64) *float64 { return &x }

	return &Document{
		Header: Header{
			ModelName:    &name,
			ModelYear:    &year,
			ModelType:    &mt,
			DataType:     &dt,
			DataUnits:    &du,
			DataFormat:   FormatGrid,
			DataOrdering: &do,
			RefEllipsoid: &ell,
			RefFrame:     &frame,
			TideSystem:   &tide,
			CoordType:    CoordGeodetic,
			CoordUnits:   UnitsDeg,
			DataBounds: GridGeodetic{
				LatMin: Dec(40.0), LatMax: Dec(41.0),
				LonMin: Dec(120.0), LonMax: Dec(121.0),
				DeltaLat: Dec(0.5), DeltaLon: Dec(0.5),
			},
			NRows:        3,
			NCols:        3,
			NoData:       &nodata,
			CreationDate: &CreationDate{Year: 2023, Month: 2, Day: 1},
			ISGFormat:    "2.0",
		},
		Data: Grid{
			{v(22.1250), v(22.3750), v(22.6250)},
			{v(21.8750), nil, v(22.2500)},
			{v(21.5000), v(21.7500), v(21.8750)},
		},
	}
}

func TestEmitCanonical(t *testing.T) {
	doc := sampleGridDoc()
	require.NoError(t, doc.Validate())

	// A programmatically built document renders in canonical form,
	// byte-identical to the golden file with the same content.
	assert.Equal(t, readFixture(t, "grid_deg.isg"), Emit(doc))
}

func TestEmitPreservesSourceLayout(t *testing.T) {
	// A source with non-canonical widths and field order comes back out
	// exactly as it went in.
	src := readFixture(t, "grid_deg.isg")
	src = strings.Replace(src, "lat min        =   40.000000", "lat min        = 40.00", 1)
	src = strings.Replace(src, "nrows          =           3", "nrows          = 3", 1)

	// Swap two adjacent header lines.
	src = strings.Replace(src,
		"model year     : 2023\nmodel type     : gravimetric",
		"model type     : gravimetric\nmodel year     : 2023", 1)

	doc, err := Parse(src)
	require.NoError(t, err)
	assert.Equal(t, src, Emit(doc))
}

func TestEmitDefaultOrdering(t *testing.T) {
	doc := sampleGridDoc()
	doc.Header.DataOrdering = nil
	out := Emit(doc)
	assert.Contains(t, out, "data ordering  : ---\n")
}

func TestEmitNilCellWithoutSentinel(t *testing.T) {
	doc := sampleGridDoc()
	doc.Header.NoData = nil
	out := Emit(doc)
	assert.Contains(t, out, "nodata         = ---\n")
	assert.Contains(t, out, "-9999.9999", "nil cells fall back to the conventional sentinel")
}

func TestEmitSparseCanonical(t *testing.T) {
	src := readFixture(t, "sparse_proj.isg")
	doc, err := Parse(src)
	require.NoError(t, err)

	// Dropping the captured layout must not change a canonical file.
	doc.layout = nil
	assert.Equal(t, src, Emit(doc))
}

func TestEmitStringer(t *testing.T) {
	doc := sampleGridDoc()
	assert.Equal(t, Emit(doc), doc.String())
}

package isg

import (
	"fmt"
	"reflect"

	"github.com/paulmach/orb"
)

// ModelType states how the geoid model was derived.
type ModelType uint8

const (
	ModelGravimetric ModelType = iota + 1
	ModelGeometric
	ModelHybrid
)

// String returns the canonical ISG spelling.
func (t ModelType) String() string {
	switch t {
	case ModelGravimetric:
		return "gravimetric"
	case ModelGeometric:
		return "geometric"
	case ModelHybrid:
		return "hybrid"
	default:
		return "unknown"
	}
}

// DataType states what quantity the samples carry.
type DataType uint8

const (
	DataGeoid DataType = iota + 1
	DataQuasiGeoid
)

func (t DataType) String() string {
	switch t {
	case DataGeoid:
		return "geoid"
	case DataQuasiGeoid:
		return "quasi-geoid"
	default:
		return "unknown"
	}
}

// DataUnits is the unit of the data values.
type DataUnits uint8

const (
	UnitMeters DataUnits = iota + 1
	UnitFeet
)

func (u DataUnits) String() string {
	switch u {
	case UnitMeters:
		return "meters"
	case UnitFeet:
		return "feet"
	default:
		return "unknown"
	}
}

// DataFormat is the layout of the data section.
type DataFormat uint8

const (
	FormatGrid DataFormat = iota + 1
	FormatSparse
)

func (f DataFormat) String() string {
	switch f {
	case FormatGrid:
		return "grid"
	case FormatSparse:
		return "sparse"
	default:
		return "unknown"
	}
}

// DataOrdering is the declared scan order / column layout of the data
// section.
type DataOrdering uint8

const (
	// OrderingN2SW2E scans grid rows north to south, each row west to
	// east. The only grid scan order ISG 2.0 defines.
	OrderingN2SW2E DataOrdering = iota + 1
	OrderingLatLonN
	OrderingEastNorthN
	OrderingN
	OrderingZeta
)

func (o DataOrdering) String() string {
	switch o {
	case OrderingN2SW2E:
		return "N-to-S, W-to-E"
	case OrderingLatLonN:
		return "lat, lon, N"
	case OrderingEastNorthN:
		return "east, north, N"
	case OrderingN:
		return "N"
	case OrderingZeta:
		return "zeta"
	default:
		return "unknown"
	}
}

// TideSystem is the permanent-tide convention of the model.
type TideSystem uint8

const (
	TideFree TideSystem = iota + 1
	MeanTide
	ZeroTide
)

func (t TideSystem) String() string {
	switch t {
	case TideFree:
		return "tide-free"
	case MeanTide:
		return "mean-tide"
	case ZeroTide:
		return "zero-tide"
	default:
		return "unknown"
	}
}

// CoordType states whether coordinates are geodetic (latitude and
// longitude) or projected (northing and easting).
type CoordType uint8

const (
	CoordGeodetic CoordType = iota + 1
	CoordProjected
)

func (t CoordType) String() string {
	switch t {
	case CoordGeodetic:
		return "geodetic"
	case CoordProjected:
		return "projected"
	default:
		return "unknown"
	}
}

// CoordUnits is the unit coordinates are expressed in.
type CoordUnits uint8

const (
	UnitsDMS CoordUnits = iota + 1
	UnitsDeg
	UnitsMeters
	UnitsFeet
)

func (u CoordUnits) String() string {
	switch u {
	case UnitsDMS:
		return "dms"
	case UnitsDeg:
		return "deg"
	case UnitsMeters:
		return "meters"
	case UnitsFeet:
		return "feet"
	default:
		return "unknown"
	}
}

// CreationDate is the `creation date` header field, dd/mm/yyyy in the
// text form.
type CreationDate struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

func (d CreationDate) String() string {
	return fmt.Sprintf("%02d/%02d/%04d", d.Day, d.Month, d.Year)
}

// Header is the metadata block of an ISG 2.0 document. Optional fields
// are nil when the source carries the `---` placeholder.
type Header struct {
	ModelName     *string       `json:"model_name"`
	ModelYear     *string       `json:"model_year"`
	ModelType     *ModelType    `json:"model_type"`
	DataType      *DataType     `json:"data_type"`
	DataUnits     *DataUnits    `json:"data_units"`
	DataFormat    DataFormat    `json:"data_format"`
	DataOrdering  *DataOrdering `json:"data_ordering"`
	RefEllipsoid  *string       `json:"ref_ellipsoid"`
	RefFrame      *string       `json:"ref_frame"`
	HeightDatum   *string       `json:"height_datum"`
	TideSystem    *TideSystem   `json:"tide_system"`
	CoordType     CoordType     `json:"coord_type"`
	CoordUnits    CoordUnits    `json:"coord_units"`
	MapProjection *string       `json:"map_projection"`
	EPSGCode      *int          `json:"epsg_code"`
	DataBounds    DataBounds    `json:"data_bounds"`
	NRows         int           `json:"nrows"`
	NCols         int           `json:"ncols"`
	NoData        *float64      `json:"nodata"`
	CreationDate  *CreationDate `json:"creation_date"`
	ISGFormat     string        `json:"isg_format"`
}

// DataBounds is the spatial extent block of the header. Exactly four
// shapes are legal, keyed by (data format, coord type); the combination
// is part of the type, so a header holding bounds of the wrong shape is
// unrepresentable.
type DataBounds interface {
	// Format is the data format the bounds shape belongs to.
	Format() DataFormat
	// CoordType is the coordinate type the bounds shape belongs to.
	CoordType() CoordType
	// Bound is the declared extent as an orb rectangle, X carrying
	// longitude/easting and Y latitude/northing.
	Bound() orb.Bound

	isDataBounds()
}

// GridGeodetic bounds a regular latitude/longitude grid. The grid has
// nrows rows and ncols columns with max = min + delta*(n-1) on each
// axis.
type GridGeodetic struct {
	LatMin   Coord `json:"lat_min"`
	LatMax   Coord `json:"lat_max"`
	LonMin   Coord `json:"lon_min"`
	LonMax   Coord `json:"lon_max"`
	DeltaLat Coord `json:"delta_lat"`
	DeltaLon Coord `json:"delta_lon"`
}

func (GridGeodetic) Format() DataFormat   { return FormatGrid }
func (GridGeodetic) CoordType() CoordType { return CoordGeodetic }
func (GridGeodetic) isDataBounds()        {}

// GridProjected bounds a regular northing/easting grid.
type GridProjected struct {
	NorthMin   Coord `json:"north_min"`
	NorthMax   Coord `json:"north_max"`
	EastMin    Coord `json:"east_min"`
	EastMax    Coord `json:"east_max"`
	DeltaNorth Coord `json:"delta_north"`
	DeltaEast  Coord `json:"delta_east"`
}

func (GridProjected) Format() DataFormat   { return FormatGrid }
func (GridProjected) CoordType() CoordType { return CoordProjected }
func (GridProjected) isDataBounds()        {}

// SparseGeodetic bounds a scattered latitude/longitude point set.
type SparseGeodetic struct {
	LatMin Coord `json:"lat_min"`
	LatMax Coord `json:"lat_max"`
	LonMin Coord `json:"lon_min"`
	LonMax Coord `json:"lon_max"`
}

func (SparseGeodetic) Format() DataFormat   { return FormatSparse }
func (SparseGeodetic) CoordType() CoordType { return CoordGeodetic }
func (SparseGeodetic) isDataBounds()        {}

// SparseProjected bounds a scattered northing/easting point set.
type SparseProjected struct {
	NorthMin Coord `json:"north_min"`
	NorthMax Coord `json:"north_max"`
	EastMin  Coord `json:"east_min"`
	EastMax  Coord `json:"east_max"`
}

func (SparseProjected) Format() DataFormat   { return FormatSparse }
func (SparseProjected) CoordType() CoordType { return CoordProjected }
func (SparseProjected) isDataBounds()        {}

// Data is the data section of a document: a dense [Grid] or a [Sparse]
// point list, matching the header's data format.
type Data interface {
	Format() DataFormat

	isData()
}

// Grid holds samples in row-major order: row 0 is the northernmost row
// and column 0 the westernmost column, regardless of the scan order the
// source declared. nil cells are nodata.
type Grid [][]*float64

func (Grid) Format() DataFormat { return FormatGrid }
func (Grid) isData()            {}

// SparseEntry is one scattered sample: two coordinates and a value,
// nil when the source held the nodata sentinel.
type SparseEntry struct {
	A     Coord    `json:"a"`
	B     Coord    `json:"b"`
	Value *float64 `json:"value"`
}

// Sparse holds scattered samples in source order. The order carries no
// meaning but is preserved for faithful rewriting.
type Sparse []SparseEntry

func (Sparse) Format() DataFormat { return FormatSparse }
func (Sparse) isData()            {}

// Document is one complete ISG 2.0 document: a free comment block
// (possibly empty), a header and a data section. A Document is built in
// one shot, by [Parse] or by the caller, and treated as immutable
// afterwards.
type Document struct {
	Comment string `json:"comment,omitempty"`
	Header  Header `json:"header"`
	Data    Data   `json:"data"`

	// Formatting observed at parse time, used by Emit to reproduce the
	// source layout. nil for programmatically built documents.
	layout *sourceLayout
}

// Equal reports semantic equality of two documents, ignoring source
// formatting metadata such as field order and decimal precision.
func (d *Document) Equal(o *Document) bool {
	if d == nil || o == nil {
		return d == o
	}
	return d.Comment == o.Comment &&
		reflect.DeepEqual(d.Header, o.Header) &&
		reflect.DeepEqual(d.Data, o.Data)
}

package isg

import (
	"math"
	"strconv"
	"strings"
)

// ParseOptions configures the tolerances the parser applies. No
// normative source fixes them, so they are explicit knobs rather than
// hidden constants.
type ParseOptions struct {
	// BoundsTol is the relative tolerance for the max = min + delta*(n-1)
	// consistency check on decimal grid bounds. DMS bounds are checked
	// with exact integer arc-second arithmetic.
	BoundsTol float64

	// NoDataTol is the absolute tolerance used when matching data
	// values against the nodata sentinel.
	NoDataTol float64
}

// DefaultParseOptions returns the tolerances used by Parse.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{
		BoundsTol: 1e-6,
		NoDataTol: 1e-9,
	}
}

// Parse parses the full text of an ISG 2.0 document. It fails fast on
// the first violation; there is no partial result.
func Parse(input string) (*Document, error) {
	return ParseWithOptions(input, DefaultParseOptions())
}

// ParseWithOptions parses with explicit tolerances.
func ParseWithOptions(input string, opts ParseOptions) (*Document, error) {
	toks, err := tokenize(input)
	if err != nil {
		return nil, err
	}

	var comment string
	var assigns, rows []token
	for _, t := range toks {
		switch t.kind {
		case tokenComment:
			comment = t.text
		case tokenAssign:
			assigns = append(assigns, t)
		case tokenDataRow:
			rows = append(rows, t)
		}
	}

	header, layout, err := buildHeader(assigns, opts)
	if err != nil {
		return nil, err
	}

	var data Data
	switch header.DataFormat {
	case FormatGrid:
		data, err = parseGridData(rows, &header, opts, layout)
	default:
		data, err = parseSparseData(rows, &header, opts, layout)
	}
	if err != nil {
		return nil, err
	}

	return &Document{
		Comment: comment,
		Header:  header,
		Data:    data,
		layout:  layout,
	}, nil
}

// noValue is the placeholder ISG uses for an absent optional value.
const noValue = "---"

// isgFormatVersion is the only supported `ISG format` value.
const isgFormatVersion = "2.0"

// numHint captures the column width and decimal precision a numeric
// field used in the source, so Emit can reproduce it.
type numHint struct {
	width int
	prec  int
}

// sourceLayout is the formatting metadata retained from a parsed
// document: the header field order, per-field numeric hints and the
// data column layout.
type sourceLayout struct {
	order     []string
	hints     map[string]numHint
	dataWidth int
	dataPrec  int
}

func (l *sourceLayout) hint(label string, def numHint) numHint {
	if l != nil {
		if h, ok := l.hints[label]; ok {
			return h
		}
	}
	return def
}

type headerAssign struct {
	line int
	val  string
	raw  string
}

type headerFields struct {
	m     map[string]headerAssign
	order []string
}

// Canonical spellings of enum-valued header fields, keyed lowercase
// for case-insensitive matching.
var (
	modelTypeNames = map[string]ModelType{
		"gravimetric": ModelGravimetric,
		"geometric":   ModelGeometric,
		"hybrid":      ModelHybrid,
	}
	dataTypeNames = map[string]DataType{
		"geoid":       DataGeoid,
		"quasi-geoid": DataQuasiGeoid,
	}
	dataUnitsNames = map[string]DataUnits{
		"meters": UnitMeters,
		"feet":   UnitFeet,
	}
	dataFormatNames = map[string]DataFormat{
		"grid":   FormatGrid,
		"sparse": FormatSparse,
	}
	dataOrderingNames = map[string]DataOrdering{
		"n-to-s, w-to-e": OrderingN2SW2E,
		"lat, lon, n":    OrderingLatLonN,
		"east, north, n": OrderingEastNorthN,
		"n":              OrderingN,
		"zeta":           OrderingZeta,
	}
	tideSystemNames = map[string]TideSystem{
		"tide-free": TideFree,
		"mean-tide": MeanTide,
		"zero-tide": ZeroTide,
	}
	coordTypeNames = map[string]CoordType{
		"geodetic":  CoordGeodetic,
		"projected": CoordProjected,
	}
	coordUnitsNames = map[string]CoordUnits{
		"dms":    UnitsDMS,
		"deg":    UnitsDeg,
		"meters": UnitsMeters,
		"feet":   UnitsFeet,
	}
)

// boundsFieldLabels are the twelve labels of the bounds block across
// all four DataBounds shapes.
var boundsFieldLabels = []string{
	"lat min", "lat max", "lon min", "lon max",
	"north min", "north max", "east min", "east max",
	"delta lat", "delta lon", "delta north", "delta east",
}

// knownLabels is every legal ISG 2.0 header label.
var knownLabels = func() map[string]bool {
	m := map[string]bool{
		"model name": true, "model year": true, "model type": true,
		"data type": true, "data units": true, "data format": true,
		"data ordering": true, "ref ellipsoid": true, "ref frame": true,
		"height datum": true, "tide system": true, "coord type": true,
		"coord units": true, "map projection": true, "EPSG code": true,
		"nrows": true, "ncols": true, "nodata": true,
		"creation date": true, "ISG format": true,
	}
	for _, l := range boundsFieldLabels {
		m[l] = true
	}
	return m
}()

func collectFields(assigns []token) (*headerFields, error) {
	hf := &headerFields{m: make(map[string]headerAssign, len(assigns))}
	for _, t := range assigns {
		if !knownLabels[t.key] {
			return nil, &UnknownFieldError{Line: t.line, Label: t.key}
		}
		if _, dup := hf.m[t.key]; dup {
			return nil, &DuplicateFieldError{Line: t.line, Field: t.key}
		}
		hf.m[t.key] = headerAssign{line: t.line, val: t.val, raw: t.raw}
		hf.order = append(hf.order, t.key)
	}
	return hf, nil
}

func (hf *headerFields) lookup(label string) (headerAssign, bool) {
	a, ok := hf.m[label]
	return a, ok
}

// require returns the assignment for label, failing when its line is
// absent or carries an empty value.
func (hf *headerFields) require(label string) (headerAssign, error) {
	a, ok := hf.m[label]
	if !ok || a.val == "" {
		return headerAssign{}, &MissingFieldError{Field: label}
	}
	return a, nil
}

// text reads an optional free-text field: `---` maps to nil.
func (hf *headerFields) text(label string) (*string, error) {
	a, err := hf.require(label)
	if err != nil {
		return nil, err
	}
	if a.val == noValue {
		return nil, nil
	}
	v := a.val
	return &v, nil
}

// enumOpt reads an optional enum field; `---` maps to nil.
func enumOpt[T any](hf *headerFields, label string, names map[string]T) (*T, error) {
	a, err := hf.require(label)
	if err != nil {
		return nil, err
	}
	if a.val == noValue {
		return nil, nil
	}
	v, ok := names[strings.ToLower(a.val)]
	if !ok {
		return nil, &InvalidEnumValueError{Field: label, Raw: a.val, Line: a.line}
	}
	return &v, nil
}

// enumReq reads an enum field that must carry a value.
func enumReq[T any](hf *headerFields, label string, names map[string]T) (T, error) {
	var zero T
	a, err := hf.require(label)
	if err != nil {
		return zero, err
	}
	if a.val == noValue {
		return zero, &MissingFieldError{Field: label}
	}
	v, ok := names[strings.ToLower(a.val)]
	if !ok {
		return zero, &InvalidEnumValueError{Field: label, Raw: a.val, Line: a.line}
	}
	return v, nil
}

func (hf *headerFields) intField(label string, min int, lay *sourceLayout) (int, error) {
	a, err := hf.require(label)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(a.val)
	if err != nil || n < min {
		return 0, &MalformedNumberError{Field: label, Raw: a.val, Line: a.line}
	}
	lay.hints[label] = numHint{width: rawWidth(a.raw)}
	return n, nil
}

func buildHeader(assigns []token, opts ParseOptions) (Header, *sourceLayout, error) {
	var h Header

	hf, err := collectFields(assigns)
	if err != nil {
		return h, nil, err
	}

	lay := &sourceLayout{
		order: append([]string(nil), hf.order...),
		hints: make(map[string]numHint),
	}

	if h.ModelName, err = hf.text("model name"); err != nil {
		return h, nil, err
	}
	if h.ModelYear, err = hf.text("model year"); err != nil {
		return h, nil, err
	}
	if h.ModelType, err = enumOpt(hf, "model type", modelTypeNames); err != nil {
		return h, nil, err
	}
	if h.DataType, err = enumOpt(hf, "data type", dataTypeNames); err != nil {
		return h, nil, err
	}
	if h.DataUnits, err = enumOpt(hf, "data units", dataUnitsNames); err != nil {
		return h, nil, err
	}
	if h.DataFormat, err = enumReq(hf, "data format", dataFormatNames); err != nil {
		return h, nil, err
	}
	if h.DataOrdering, err = enumOpt(hf, "data ordering", dataOrderingNames); err != nil {
		return h, nil, err
	}
	if h.RefEllipsoid, err = hf.text("ref ellipsoid"); err != nil {
		return h, nil, err
	}
	if h.RefFrame, err = hf.text("ref frame"); err != nil {
		return h, nil, err
	}
	if h.HeightDatum, err = hf.text("height datum"); err != nil {
		return h, nil, err
	}
	if h.TideSystem, err = enumOpt(hf, "tide system", tideSystemNames); err != nil {
		return h, nil, err
	}
	if h.CoordType, err = enumReq(hf, "coord type", coordTypeNames); err != nil {
		return h, nil, err
	}
	if h.CoordUnits, err = enumReq(hf, "coord units", coordUnitsNames); err != nil {
		return h, nil, err
	}
	if h.MapProjection, err = hf.text("map projection"); err != nil {
		return h, nil, err
	}
	if h.CoordType == CoordProjected && h.MapProjection == nil {
		return h, nil, &MissingFieldError{Field: "map projection"}
	}

	if a, err := hf.require("EPSG code"); err != nil {
		return h, nil, err
	} else if a.val != noValue {
		code, err := strconv.Atoi(a.val)
		if err != nil {
			return h, nil, &MalformedNumberError{Field: "EPSG code", Raw: a.val, Line: a.line}
		}
		h.EPSGCode = &code
	}

	minDim := 0
	if h.DataFormat == FormatGrid {
		minDim = 1
	}
	if h.NRows, err = hf.intField("nrows", minDim, lay); err != nil {
		return h, nil, err
	}
	if h.NCols, err = hf.intField("ncols", minDim, lay); err != nil {
		return h, nil, err
	}

	if a, err := hf.require("nodata"); err != nil {
		return h, nil, err
	} else if a.val != noValue {
		v, err := strconv.ParseFloat(a.val, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return h, nil, &MalformedNumberError{Field: "nodata", Raw: a.val, Line: a.line}
		}
		h.NoData = &v
		lay.hints["nodata"] = decimalHint(a.raw, a.val)
	}

	if a, err := hf.require("creation date"); err != nil {
		return h, nil, err
	} else if a.val != noValue {
		d, ok := parseCreationDate(a.val)
		if !ok {
			return h, nil, &MalformedNumberError{Field: "creation date", Raw: a.val, Line: a.line}
		}
		h.CreationDate = &d
		lay.hints["creation date"] = numHint{width: rawWidth(a.raw)}
	}

	a, err := hf.require("ISG format")
	if err != nil {
		return h, nil, err
	}
	if a.val != isgFormatVersion {
		return h, nil, &UnsupportedVersionError{Raw: a.val}
	}
	h.ISGFormat = a.val
	lay.hints["ISG format"] = numHint{width: rawWidth(a.raw)}

	if h.DataFormat == FormatSparse && h.NCols != 3 {
		return h, nil, &DataCountMismatchError{What: "ncols for sparse data", Expected: 3, Actual: h.NCols}
	}

	if h.DataBounds, err = buildBounds(hf, &h, lay, opts); err != nil {
		return h, nil, err
	}
	return h, lay, nil
}

// variantBoundsLabels returns the coordinate labels and delta labels of
// the bounds shape selected by (format, coord type).
func variantBoundsLabels(df DataFormat, ct CoordType) (coords, deltas []string) {
	if ct == CoordGeodetic {
		return []string{"lat min", "lat max", "lon min", "lon max"},
			[]string{"delta lat", "delta lon"}
	}
	return []string{"north min", "north max", "east min", "east max"},
		[]string{"delta north", "delta east"}
}

func buildBounds(hf *headerFields, h *Header, lay *sourceLayout, opts ParseOptions) (DataBounds, error) {
	coords, deltas := variantBoundsLabels(h.DataFormat, h.CoordType)

	allowed := make(map[string]bool, 6)
	for _, l := range coords {
		allowed[l] = true
	}
	if h.DataFormat == FormatGrid {
		for _, l := range deltas {
			allowed[l] = true
		}
	}
	for _, l := range boundsFieldLabels {
		if allowed[l] {
			continue
		}
		if a, ok := hf.lookup(l); ok && a.val != noValue && a.val != "" {
			return nil, &BoundsFieldMismatchError{
				Field:  l,
				Line:   a.line,
				Format: h.DataFormat,
				Coord:  h.CoordType,
			}
		}
	}

	read := func(label string) (Coord, error) {
		return hf.coordField(label, h.CoordUnits, lay)
	}

	vals := make([]Coord, 0, 6)
	for _, l := range coords {
		c, err := read(l)
		if err != nil {
			return nil, err
		}
		vals = append(vals, c)
	}
	aMin, aMax, bMin, bMax := vals[0], vals[1], vals[2], vals[3]

	if h.DataFormat == FormatSparse {
		if h.CoordType == CoordGeodetic {
			return SparseGeodetic{LatMin: aMin, LatMax: aMax, LonMin: bMin, LonMax: bMax}, nil
		}
		return SparseProjected{NorthMin: aMin, NorthMax: aMax, EastMin: bMin, EastMax: bMax}, nil
	}

	deltaA, err := read(deltas[0])
	if err != nil {
		return nil, err
	}
	deltaB, err := read(deltas[1])
	if err != nil {
		return nil, err
	}

	axisA, axisB := "lat", "lon"
	if h.CoordType == CoordProjected {
		axisA, axisB = "north", "east"
	}
	if err := checkAxis(axisA, aMin, aMax, deltaA, h.NRows, opts.BoundsTol); err != nil {
		return nil, err
	}
	if err := checkAxis(axisB, bMin, bMax, deltaB, h.NCols, opts.BoundsTol); err != nil {
		return nil, err
	}

	if h.CoordType == CoordGeodetic {
		return GridGeodetic{
			LatMin: aMin, LatMax: aMax,
			LonMin: bMin, LonMax: bMax,
			DeltaLat: deltaA, DeltaLon: deltaB,
		}, nil
	}
	return GridProjected{
		NorthMin: aMin, NorthMax: aMax,
		EastMin: bMin, EastMax: bMax,
		DeltaNorth: deltaA, DeltaEast: deltaB,
	}, nil
}

// coordField reads one bounds coordinate in the syntax the coord units
// dictate: a D°MM'SS" triple for dms, a finite decimal otherwise.
func (hf *headerFields) coordField(label string, cu CoordUnits, lay *sourceLayout) (Coord, error) {
	a, err := hf.require(label)
	if err != nil {
		return Coord{}, err
	}
	if a.val == noValue {
		return Coord{}, &MissingFieldError{Field: label}
	}

	if cu == UnitsDMS {
		c, ok := parseDMSValue(a.val)
		if !ok {
			return Coord{}, &MalformedNumberError{Field: label, Raw: a.val, Line: a.line}
		}
		return c, nil
	}

	v, err2 := strconv.ParseFloat(a.val, 64)
	if err2 != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Coord{}, &MalformedNumberError{Field: label, Raw: a.val, Line: a.line}
	}
	lay.hints[label] = decimalHint(a.raw, a.val)
	return Dec(v), nil
}

// checkAxis verifies max = min + delta*(n-1) for one grid axis. DMS
// bounds are compared in exact integer arc seconds; decimal bounds
// within the relative tolerance tol.
func checkAxis(axis string, min, max, delta Coord, n int, tol float64) error {
	if n >= 2 && delta.Decimal() <= 0 {
		return &InconsistentBoundsError{
			Axis:     "delta " + axis,
			Expected: min.Decimal() + delta.Decimal()*float64(n-1),
			Actual:   max.Decimal(),
		}
	}

	if min.IsDMS() {
		exp := min.seconds() + delta.seconds()*(n-1)
		if exp != max.seconds() {
			return &InconsistentBoundsError{
				Axis:     axis + " max",
				Expected: float64(exp) / 3600,
				Actual:   max.Decimal(),
			}
		}
		return nil
	}

	exp := min.Decimal() + delta.Decimal()*float64(n-1)
	if math.Abs(exp-max.Decimal()) > tol*math.Max(1, math.Abs(max.Decimal())) {
		return &InconsistentBoundsError{Axis: axis + " max", Expected: exp, Actual: max.Decimal()}
	}
	return nil
}

// parseDMSValue parses the D°MM'SS" coordinate syntax.
func parseDMSValue(s string) (Coord, bool) {
	d, rest, ok := strings.Cut(s, "°")
	if !ok {
		return Coord{}, false
	}
	m, rest, ok := strings.Cut(rest, "'")
	if !ok {
		return Coord{}, false
	}
	sec, rest, ok := strings.Cut(rest, `"`)
	if !ok || rest != "" {
		return Coord{}, false
	}

	deg, err := strconv.Atoi(strings.TrimSpace(d))
	if err != nil {
		return Coord{}, false
	}
	mm, err := strconv.Atoi(m)
	if err != nil || mm < 0 || mm > 59 {
		return Coord{}, false
	}
	ss, err := strconv.Atoi(sec)
	if err != nil || ss < 0 || ss > 59 {
		return Coord{}, false
	}
	return DMS(deg, mm, ss), true
}

// parseCreationDate parses the dd/mm/yyyy creation date syntax.
func parseCreationDate(s string) (CreationDate, bool) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return CreationDate{}, false
	}
	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return CreationDate{}, false
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return CreationDate{}, false
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return CreationDate{}, false
	}
	return CreationDate{Year: year, Month: month, Day: day}, true
}

// rawWidth is the right-aligned field width of an untrimmed value, one
// separating space excluded.
func rawWidth(raw string) int {
	if strings.HasPrefix(raw, " ") {
		return len(raw) - 1
	}
	return len(raw)
}

// decimalHint captures width and decimal precision of a decimal field.
// Scientific notation gets no hint and re-renders canonically.
func decimalHint(raw, val string) numHint {
	if strings.ContainsAny(val, "eE") {
		return numHint{}
	}
	prec := 0
	if i := strings.IndexByte(val, '.'); i >= 0 {
		prec = len(val) - i - 1
	}
	return numHint{width: rawWidth(raw), prec: prec}
}

package isg

import (
	"fmt"
	"strconv"
	"strings"
)

// The marker lines are padded with '=' to a fixed 62 columns.
const (
	beginOfHeadLine = beginOfHead + " ================================================"
	endOfHeadLine   = endOfHead + " =================================================="
)

// canonicalTextualOrder is the field order of the ':' block in a
// canonical header.
var canonicalTextualOrder = []string{
	"model name", "model year", "model type", "data type", "data units",
	"data format", "data ordering", "ref ellipsoid", "ref frame",
	"height datum", "tide system", "coord type", "coord units",
	"map projection", "EPSG code",
}

// canonicalTrailerOrder closes the '=' block after the bounds fields.
var canonicalTrailerOrder = []string{
	"nrows", "ncols", "nodata", "creation date", "ISG format",
}

// numericLabels marks the header fields written with the '=' separator.
var numericLabels = func() map[string]bool {
	m := make(map[string]bool, len(boundsFieldLabels)+len(canonicalTrailerOrder))
	for _, l := range boundsFieldLabels {
		m[l] = true
	}
	for _, l := range canonicalTrailerOrder {
		m[l] = true
	}
	return m
}()

// Emit renders a document back to ISG 2.0 text. A parsed document
// reproduces its source layout byte for byte; a programmatically built
// one renders in canonical form. Emit does not validate: run
// [Document.Validate] first when the document was not produced by
// [Parse].
func Emit(doc *Document) string {
	var b strings.Builder

	if doc.Comment != "" {
		b.WriteString(doc.Comment)
		if !strings.HasSuffix(doc.Comment, "\n") {
			b.WriteByte('\n')
		}
	}

	b.WriteString(beginOfHeadLine)
	b.WriteByte('\n')
	for _, label := range headerOrder(doc) {
		sep := byte(':')
		if numericLabels[label] {
			sep = '='
		}
		fmt.Fprintf(&b, "%-15s%c %s\n", label, sep, renderField(&doc.Header, label, doc.layout))
	}
	b.WriteString(endOfHeadLine)
	b.WriteByte('\n')

	emitData(&b, doc)
	return b.String()
}

// String renders the document as ISG 2.0 text.
func (d *Document) String() string { return Emit(d) }

func headerOrder(doc *Document) []string {
	if doc.layout != nil && len(doc.layout.order) > 0 {
		return doc.layout.order
	}

	coords, deltas := variantBoundsLabels(doc.Header.DataFormat, doc.Header.CoordType)
	order := make([]string, 0, len(canonicalTextualOrder)+6+len(canonicalTrailerOrder))
	order = append(order, canonicalTextualOrder...)
	order = append(order, coords[0], coords[1], coords[2], coords[3])
	order = append(order, deltas...)
	order = append(order, canonicalTrailerOrder...)
	return order
}

func renderField(h *Header, label string, lay *sourceLayout) string {
	switch label {
	case "model name":
		return textValue(h.ModelName)
	case "model year":
		return textValue(h.ModelYear)
	case "model type":
		return enumValue(h.ModelType)
	case "data type":
		return enumValue(h.DataType)
	case "data units":
		return enumValue(h.DataUnits)
	case "data format":
		return h.DataFormat.String()
	case "data ordering":
		return enumValue(h.DataOrdering)
	case "ref ellipsoid":
		return textValue(h.RefEllipsoid)
	case "ref frame":
		return textValue(h.RefFrame)
	case "height datum":
		return textValue(h.HeightDatum)
	case "tide system":
		return enumValue(h.TideSystem)
	case "coord type":
		return h.CoordType.String()
	case "coord units":
		return h.CoordUnits.String()
	case "map projection":
		return textValue(h.MapProjection)
	case "EPSG code":
		if h.EPSGCode == nil {
			return noValue
		}
		return strconv.Itoa(*h.EPSGCode)
	case "nrows":
		return fmt.Sprintf("%*d", lay.hint(label, numHint{width: 11}).width, h.NRows)
	case "ncols":
		return fmt.Sprintf("%*d", lay.hint(label, numHint{width: 11}).width, h.NCols)
	case "nodata":
		if h.NoData == nil {
			return noValue
		}
		hn := lay.hint(label, numHint{width: 11, prec: 4})
		return fmt.Sprintf("%*.*f", hn.width, hn.prec, *h.NoData)
	case "creation date":
		if h.CreationDate == nil {
			return noValue
		}
		return fmt.Sprintf("%*s", lay.hint(label, numHint{width: 11}).width, h.CreationDate.String())
	case "ISG format":
		return fmt.Sprintf("%*s", lay.hint(label, numHint{width: 11}).width, h.ISGFormat)
	default:
		c, ok := boundsField(h.DataBounds, label)
		if !ok {
			return noValue
		}
		return coordString(c, h.CoordUnits, lay.hint(label, numHint{}))
	}
}

func textValue(s *string) string {
	if s == nil {
		return noValue
	}
	return *s
}

func enumValue[T fmt.Stringer](v *T) string {
	if v == nil {
		return noValue
	}
	return (*v).String()
}

// boundsField extracts one bounds coordinate by label; ok is false for
// labels the bounds shape does not carry.
func boundsField(db DataBounds, label string) (Coord, bool) {
	switch b := db.(type) {
	case GridGeodetic:
		switch label {
		case "lat min":
			return b.LatMin, true
		case "lat max":
			return b.LatMax, true
		case "lon min":
			return b.LonMin, true
		case "lon max":
			return b.LonMax, true
		case "delta lat":
			return b.DeltaLat, true
		case "delta lon":
			return b.DeltaLon, true
		}
	case GridProjected:
		switch label {
		case "north min":
			return b.NorthMin, true
		case "north max":
			return b.NorthMax, true
		case "east min":
			return b.EastMin, true
		case "east max":
			return b.EastMax, true
		case "delta north":
			return b.DeltaNorth, true
		case "delta east":
			return b.DeltaEast, true
		}
	case SparseGeodetic:
		switch label {
		case "lat min":
			return b.LatMin, true
		case "lat max":
			return b.LatMax, true
		case "lon min":
			return b.LonMin, true
		case "lon max":
			return b.LonMax, true
		}
	case SparseProjected:
		switch label {
		case "north min":
			return b.NorthMin, true
		case "north max":
			return b.NorthMax, true
		case "east min":
			return b.EastMin, true
		case "east max":
			return b.EastMax, true
		}
	}
	return Coord{}, false
}

// coordString renders a bounds or sparse coordinate in the syntax the
// coord units dictate.
func coordString(c Coord, cu CoordUnits, h numHint) string {
	if d, m, s, ok := c.Parts(); ok {
		return fmt.Sprintf("%4d°%02d'%02d\"", d, m, s)
	}
	switch cu {
	case UnitsDMS:
		// Decimal value under dms units: shortest decimal form,
		// right-aligned.
		w := h.width
		if w == 0 {
			w = 11
		}
		return fmt.Sprintf("%*s", w, strconv.FormatFloat(c.Decimal(), 'f', -1, 64))
	case UnitsDeg:
		return decString(c.Decimal(), h, numHint{width: 11, prec: 6})
	default:
		return decString(c.Decimal(), h, numHint{width: 11, prec: 3})
	}
}

func decString(v float64, h, def numHint) string {
	if h.width == 0 {
		h = def
	}
	return fmt.Sprintf("%*.*f", h.width, h.prec, v)
}

func emitData(b *strings.Builder, doc *Document) {
	w, p := 10, 4
	if doc.layout != nil && doc.layout.dataWidth > 0 {
		w, p = doc.layout.dataWidth, doc.layout.dataPrec
	}

	value := func(v *float64) string {
		if v == nil {
			if doc.Header.NoData == nil {
				return "-9999.9999"
			}
			return fmt.Sprintf("%*.*f", w, p, *doc.Header.NoData)
		}
		return fmt.Sprintf("%*.*f", w, p, *v)
	}

	switch data := doc.Data.(type) {
	case Grid:
		for _, row := range data {
			for j, cell := range row {
				if j > 0 {
					b.WriteByte(' ')
				}
				b.WriteString(value(cell))
			}
			b.WriteByte('\n')
		}
	case Sparse:
		for _, e := range data {
			b.WriteString(coordString(e.A, doc.Header.CoordUnits, numHint{}))
			b.WriteByte(' ')
			b.WriteString(coordString(e.B, doc.Header.CoordUnits, numHint{}))
			b.WriteByte(' ')
			b.WriteString(value(e.Value))
			b.WriteByte('\n')
		}
	}
}

package isg

import (
	"math"
	"strconv"
	"strings"
)

// scanPlacement maps the k-th value of a grid scan to its row-major
// cell. Every ISG 2.0 grid ordering scans north to south, west to east,
// so the placement is k/ncols, k%ncols for all of them; the ordering
// parameter is kept so a future revision with a different scan only
// touches this function.
func scanPlacement(ordering DataOrdering, k, ncols int) (row, col int) {
	return k / ncols, k % ncols
}

func parseGridData(rows []token, h *Header, opts ParseOptions, lay *sourceLayout) (Grid, error) {
	total := h.NRows * h.NCols

	grid := make(Grid, h.NRows)
	for i := range grid {
		grid[i] = make([]*float64, h.NCols)
	}

	ordering := OrderingN2SW2E
	if h.DataOrdering != nil {
		ordering = *h.DataOrdering
	}

	k := 0
	for _, t := range rows {
		fields := strings.Fields(t.text)
		if len(fields) == 0 {
			continue
		}
		// A body line is either one full row or a single value.
		if len(fields) != h.NCols && len(fields) != 1 {
			return nil, &MalformedDataLineError{Line: t.line, Tokens: len(fields)}
		}
		if k == 0 {
			lay.dataWidth, lay.dataPrec = dataTokenLayout(t.text, fields[0])
		}
		for _, f := range fields {
			if k >= total {
				return nil, &DataCountMismatchError{What: "grid values", Expected: total, Actual: k + 1}
			}
			v, err := strconv.ParseFloat(f, 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, &MalformedNumberError{Field: "data", Raw: f, Line: t.line}
			}
			if !isNoData(v, h.NoData, opts.NoDataTol) {
				row, col := scanPlacement(ordering, k, h.NCols)
				grid[row][col] = &v
			}
			k++
		}
	}
	if k != total {
		return nil, &DataCountMismatchError{What: "grid values", Expected: total, Actual: k}
	}
	return grid, nil
}

func parseSparseData(rows []token, h *Header, opts ParseOptions, lay *sourceLayout) (Sparse, error) {
	entries := make(Sparse, 0, h.NRows)
	for _, t := range rows {
		fields := strings.Fields(t.text)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 3 {
			return nil, &MalformedDataLineError{Line: t.line, Tokens: len(fields)}
		}

		a, err := parseSparseCoord(fields[0], h.CoordUnits, t.line)
		if err != nil {
			return nil, err
		}
		b, err := parseSparseCoord(fields[1], h.CoordUnits, t.line)
		if err != nil {
			return nil, err
		}
		v, err2 := strconv.ParseFloat(fields[2], 64)
		if err2 != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &MalformedNumberError{Field: "data", Raw: fields[2], Line: t.line}
		}

		if len(entries) == 0 {
			lay.dataWidth, lay.dataPrec = lastTokenLayout(t.text, fields[2])
		}

		e := SparseEntry{A: a, B: b}
		if !isNoData(v, h.NoData, opts.NoDataTol) {
			e.Value = &v
		}
		entries = append(entries, e)
	}
	if len(entries) != h.NRows {
		return nil, &DataCountMismatchError{What: "sparse entries", Expected: h.NRows, Actual: len(entries)}
	}
	return entries, nil
}

func parseSparseCoord(s string, cu CoordUnits, line int) (Coord, error) {
	if cu == UnitsDMS {
		c, ok := parseDMSValue(s)
		if !ok {
			return Coord{}, &MalformedNumberError{Field: "data", Raw: s, Line: line}
		}
		return c, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Coord{}, &MalformedNumberError{Field: "data", Raw: s, Line: line}
	}
	return Dec(v), nil
}

func isNoData(v float64, sentinel *float64, tol float64) bool {
	return sentinel != nil && math.Abs(v-*sentinel) <= tol
}

// dataTokenLayout derives the column width and precision of body values
// from the first token of the first data line, leading padding included.
func dataTokenLayout(line, tok string) (width, prec int) {
	return strings.Index(line, tok) + len(tok), tokenPrec(tok)
}

// lastTokenLayout derives width and precision of a line's final column,
// counting its right-alignment padding but not the column separator.
func lastTokenLayout(line, tok string) (width, prec int) {
	start := strings.LastIndex(line, tok)
	p := start
	for p > 0 && line[p-1] == ' ' {
		p--
	}
	width = len(tok) + (start - p)
	if start > p {
		width--
	}
	return width, tokenPrec(tok)
}

func tokenPrec(tok string) int {
	if strings.ContainsAny(tok, "eE") {
		return 0
	}
	if j := strings.IndexByte(tok, '.'); j >= 0 {
		return len(tok) - j - 1
	}
	return 0
}

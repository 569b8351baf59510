package isg

// Validate checks a document for the structural rules [Parse] enforces,
// so programmatically built documents can be vetted before [Emit].
func (d *Document) Validate() error {
	return d.ValidateWithOptions(DefaultParseOptions())
}

// ValidateWithOptions validates with explicit tolerances.
func (d *Document) ValidateWithOptions(opts ParseOptions) error {
	h := &d.Header

	if h.ISGFormat != isgFormatVersion {
		return &UnsupportedVersionError{Raw: h.ISGFormat}
	}
	if h.DataFormat != FormatGrid && h.DataFormat != FormatSparse {
		return &ValidationError{Field: "data format", Message: "not set"}
	}
	if h.CoordType != CoordGeodetic && h.CoordType != CoordProjected {
		return &ValidationError{Field: "coord type", Message: "not set"}
	}
	if h.CoordUnits < UnitsDMS || h.CoordUnits > UnitsFeet {
		return &ValidationError{Field: "coord units", Message: "not set"}
	}
	if h.CoordType == CoordProjected && h.MapProjection == nil {
		return &MissingFieldError{Field: "map projection"}
	}

	if h.DataBounds == nil {
		return &ValidationError{Field: "data bounds", Message: "not set"}
	}
	if h.DataBounds.Format() != h.DataFormat || h.DataBounds.CoordType() != h.CoordType {
		return &BoundsFieldMismatchError{Format: h.DataFormat, Coord: h.CoordType}
	}
	if err := validateBoundsCoords(h, opts); err != nil {
		return err
	}

	return validateData(d)
}

func validateBoundsCoords(h *Header, opts ParseOptions) error {
	coords, deltas := variantBoundsLabels(h.DataFormat, h.CoordType)
	labels := append(append([]string(nil), coords...), deltas...)
	if h.DataFormat == FormatSparse {
		labels = coords
	}

	dms := h.CoordUnits == UnitsDMS
	for _, l := range labels {
		c, ok := boundsField(h.DataBounds, l)
		if !ok {
			return &ValidationError{Field: l, Message: "not set"}
		}
		if c.IsDMS() != dms {
			return &ValidationError{Field: l, Message: "coordinate kind does not match coord units"}
		}
	}

	if h.DataFormat != FormatGrid {
		return nil
	}

	aMin, _ := boundsField(h.DataBounds, coords[0])
	aMax, _ := boundsField(h.DataBounds, coords[1])
	bMin, _ := boundsField(h.DataBounds, coords[2])
	bMax, _ := boundsField(h.DataBounds, coords[3])
	deltaA, _ := boundsField(h.DataBounds, deltas[0])
	deltaB, _ := boundsField(h.DataBounds, deltas[1])

	axisA, axisB := "lat", "lon"
	if h.CoordType == CoordProjected {
		axisA, axisB = "north", "east"
	}
	if err := checkAxis(axisA, aMin, aMax, deltaA, h.NRows, opts.BoundsTol); err != nil {
		return err
	}
	return checkAxis(axisB, bMin, bMax, deltaB, h.NCols, opts.BoundsTol)
}

func validateData(d *Document) error {
	h := &d.Header

	if d.Data == nil {
		return &ValidationError{Field: "data", Message: "not set"}
	}
	if d.Data.Format() != h.DataFormat {
		return &ValidationError{Field: "data", Message: "data section does not match data format"}
	}

	switch data := d.Data.(type) {
	case Grid:
		if h.NRows < 1 || h.NCols < 1 {
			return &ValidationError{Field: "nrows", Message: "grid dimensions must be positive"}
		}
		if len(data) != h.NRows {
			return &DataCountMismatchError{What: "grid rows", Expected: h.NRows, Actual: len(data)}
		}
		for _, row := range data {
			if len(row) != h.NCols {
				return &DataCountMismatchError{What: "grid row values", Expected: h.NCols, Actual: len(row)}
			}
		}
	case Sparse:
		if h.NCols != 3 {
			return &DataCountMismatchError{What: "ncols for sparse data", Expected: 3, Actual: h.NCols}
		}
		if len(data) != h.NRows {
			return &DataCountMismatchError{What: "sparse entries", Expected: h.NRows, Actual: len(data)}
		}
		dms := h.CoordUnits == UnitsDMS
		for _, e := range data {
			if e.A.IsDMS() != dms || e.B.IsDMS() != dms {
				return &ValidationError{Field: "data", Message: "coordinate kind does not match coord units"}
			}
		}
	}
	return nil
}

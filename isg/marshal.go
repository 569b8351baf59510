package isg

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Enum header fields marshal to their canonical ISG spelling and accept
// any case on the way back in, matching the text parser.

func (t ModelType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *ModelType) UnmarshalText(text []byte) error {
	return unmarshalEnum(t, modelTypeNames, "model type", text)
}

func (t DataType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *DataType) UnmarshalText(text []byte) error {
	return unmarshalEnum(t, dataTypeNames, "data type", text)
}

func (u DataUnits) MarshalText() ([]byte, error) { return []byte(u.String()), nil }

func (u *DataUnits) UnmarshalText(text []byte) error {
	return unmarshalEnum(u, dataUnitsNames, "data units", text)
}

func (f DataFormat) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

func (f *DataFormat) UnmarshalText(text []byte) error {
	return unmarshalEnum(f, dataFormatNames, "data format", text)
}

func (o DataOrdering) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

func (o *DataOrdering) UnmarshalText(text []byte) error {
	return unmarshalEnum(o, dataOrderingNames, "data ordering", text)
}

func (t TideSystem) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *TideSystem) UnmarshalText(text []byte) error {
	return unmarshalEnum(t, tideSystemNames, "tide system", text)
}

func (t CoordType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *CoordType) UnmarshalText(text []byte) error {
	return unmarshalEnum(t, coordTypeNames, "coord type", text)
}

func (u CoordUnits) MarshalText() ([]byte, error) { return []byte(u.String()), nil }

func (u *CoordUnits) UnmarshalText(text []byte) error {
	return unmarshalEnum(u, coordUnitsNames, "coord units", text)
}

func unmarshalEnum[T any](dst *T, names map[string]T, field string, text []byte) error {
	v, ok := names[strings.ToLower(string(text))]
	if !ok {
		return &InvalidEnumValueError{Field: field, Raw: string(text)}
	}
	*dst = v
	return nil
}

// dmsJSON is the object form of a DMS coordinate.
type dmsJSON struct {
	Degree  int `json:"degree"`
	Minutes int `json:"minutes"`
	Second  int `json:"second"`
}

// MarshalJSON renders a decimal coordinate as a bare number and a DMS
// coordinate as a {degree, minutes, second} object.
func (c Coord) MarshalJSON() ([]byte, error) {
	if d, m, s, ok := c.Parts(); ok {
		return json.Marshal(dmsJSON{Degree: d, Minutes: m, Second: s})
	}
	return json.Marshal(c.Decimal())
}

// UnmarshalJSON accepts either coordinate form.
func (c *Coord) UnmarshalJSON(data []byte) error {
	var v float64
	if err := json.Unmarshal(data, &v); err == nil {
		*c = Dec(v)
		return nil
	}
	var d dmsJSON
	if err := json.Unmarshal(data, &d); err != nil {
		return fmt.Errorf("isg: coordinate is neither a number nor a degree/minutes/second object: %w", err)
	}
	*c = DMS(d.Degree, d.Minutes, d.Second)
	return nil
}

// Bounds and data sections are sum types, so their JSON carries a kind
// discriminator next to the variant fields.
const (
	kindGridGeodetic    = "grid_geodetic"
	kindGridProjected   = "grid_projected"
	kindSparseGeodetic  = "sparse_geodetic"
	kindSparseProjected = "sparse_projected"
	kindGrid            = "grid"
	kindSparse          = "sparse"
)

func (b GridGeodetic) MarshalJSON() ([]byte, error) {
	type alias GridGeodetic
	return json.Marshal(struct {
		Kind string `json:"kind"`
		alias
	}{Kind: kindGridGeodetic, alias: alias(b)})
}

func (b GridProjected) MarshalJSON() ([]byte, error) {
	type alias GridProjected
	return json.Marshal(struct {
		Kind string `json:"kind"`
		alias
	}{Kind: kindGridProjected, alias: alias(b)})
}

func (b SparseGeodetic) MarshalJSON() ([]byte, error) {
	type alias SparseGeodetic
	return json.Marshal(struct {
		Kind string `json:"kind"`
		alias
	}{Kind: kindSparseGeodetic, alias: alias(b)})
}

func (b SparseProjected) MarshalJSON() ([]byte, error) {
	type alias SparseProjected
	return json.Marshal(struct {
		Kind string `json:"kind"`
		alias
	}{Kind: kindSparseProjected, alias: alias(b)})
}

func unmarshalBounds(raw json.RawMessage) (DataBounds, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var kind struct {
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal(raw, &kind); err != nil {
		return nil, err
	}
	switch kind.Kind {
	case kindGridGeodetic:
		var b GridGeodetic
		return b, json.Unmarshal(raw, &b)
	case kindGridProjected:
		var b GridProjected
		return b, json.Unmarshal(raw, &b)
	case kindSparseGeodetic:
		var b SparseGeodetic
		return b, json.Unmarshal(raw, &b)
	case kindSparseProjected:
		var b SparseProjected
		return b, json.Unmarshal(raw, &b)
	default:
		return nil, fmt.Errorf("isg: unknown data bounds kind %q", kind.Kind)
	}
}

// UnmarshalJSON decodes a header, dispatching the bounds block on its
// kind discriminator.
func (h *Header) UnmarshalJSON(data []byte) error {
	type alias Header
	aux := struct {
		*alias
		DataBounds json.RawMessage `json:"data_bounds"`
	}{alias: (*alias)(h)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	b, err := unmarshalBounds(aux.DataBounds)
	if err != nil {
		return err
	}
	h.DataBounds = b
	return nil
}

func (g Grid) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind   string       `json:"kind"`
		Values [][]*float64 `json:"values"`
	}{Kind: kindGrid, Values: g})
}

func (s Sparse) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind    string        `json:"kind"`
		Entries []SparseEntry `json:"entries"`
	}{Kind: kindSparse, Entries: s})
}

func unmarshalData(raw json.RawMessage) (Data, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var kind struct {
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal(raw, &kind); err != nil {
		return nil, err
	}
	switch kind.Kind {
	case kindGrid:
		var aux struct {
			Values [][]*float64 `json:"values"`
		}
		if err := json.Unmarshal(raw, &aux); err != nil {
			return nil, err
		}
		return Grid(aux.Values), nil
	case kindSparse:
		var aux struct {
			Entries []SparseEntry `json:"entries"`
		}
		if err := json.Unmarshal(raw, &aux); err != nil {
			return nil, err
		}
		return Sparse(aux.Entries), nil
	default:
		return nil, fmt.Errorf("isg: unknown data kind %q", kind.Kind)
	}
}

// UnmarshalJSON decodes a document, dispatching the data section on its
// kind discriminator.
func (d *Document) UnmarshalJSON(data []byte) error {
	type alias Document
	aux := struct {
		*alias
		Data json.RawMessage `json:"data"`
	}{alias: (*alias)(d)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	dd, err := unmarshalData(aux.Data)
	if err != nil {
		return err
	}
	d.Data = dd
	return nil
}

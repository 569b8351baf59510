package isg

import "fmt"

// Coord is a single coordinate value: either a plain decimal number
// (degrees, meters or feet, depending on the header's coord units) or a
// sexagesimal degree-minute-second triple written D°MM'SS" in the text
// form. The zero value is the decimal 0.
type Coord struct {
	dms     bool
	dec     float64
	degree  int
	minutes int
	second  int
}

// Dec returns a decimal coordinate.
func Dec(v float64) Coord {
	return Coord{dec: v}
}

// DMS returns a sexagesimal coordinate. A negative degree makes the
// whole angle negative.
func DMS(degree, minutes, second int) Coord {
	return Coord{dms: true, degree: degree, minutes: minutes, second: second}
}

// IsDMS reports whether c is sexagesimal.
func (c Coord) IsDMS() bool { return c.dms }

// Parts returns the sexagesimal components. ok is false for a decimal
// coordinate.
func (c Coord) Parts() (degree, minutes, second int, ok bool) {
	return c.degree, c.minutes, c.second, c.dms
}

// Decimal returns the coordinate as a plain number, converting a DMS
// triple to decimal degrees.
func (c Coord) Decimal() float64 {
	if !c.dms {
		return c.dec
	}
	return float64(c.seconds()) / 3600
}

// seconds is the whole angle in integer arc seconds. Only meaningful
// for DMS coordinates.
func (c Coord) seconds() int {
	d, sign := c.degree, 1
	if d < 0 {
		d, sign = -d, -1
	}
	return sign * (d*3600 + c.minutes*60 + c.second)
}

func (c Coord) String() string {
	if c.dms {
		return fmt.Sprintf("%d°%02d'%02d\"", c.degree, c.minutes, c.second)
	}
	return fmt.Sprintf("%v", c.dec)
}

// Neg returns the negated coordinate.
func (c Coord) Neg() Coord {
	if c.dms {
		return DMS(-c.degree, c.minutes, c.second)
	}
	return Dec(-c.dec)
}

// Add returns c + o. Both coordinates must be of the same kind; mixing
// a DMS and a decimal coordinate is a programming error and panics.
func (c Coord) Add(o Coord) Coord {
	if c.dms != o.dms {
		panic("isg: cannot add DMS and decimal coordinates")
	}
	if !c.dms {
		return Dec(c.dec + o.dec)
	}
	return fromSeconds(c.seconds() + o.seconds())
}

// Sub returns c - o. Both coordinates must be of the same kind; mixing
// kinds panics.
func (c Coord) Sub(o Coord) Coord {
	if c.dms != o.dms {
		panic("isg: cannot subtract DMS and decimal coordinates")
	}
	if !c.dms {
		return Dec(c.dec - o.dec)
	}
	return fromSeconds(c.seconds() - o.seconds())
}

// Mul returns c scaled by a non-negative integer, used for stepping
// along a grid axis.
func (c Coord) Mul(n int) Coord {
	if n < 0 {
		panic("isg: negative coordinate scale")
	}
	if !c.dms {
		return Dec(c.dec * float64(n))
	}
	return fromSeconds(c.seconds() * n)
}

// fromSeconds normalizes integer arc seconds back into a DMS triple.
func fromSeconds(total int) Coord {
	sign := 1
	if total < 0 {
		sign, total = -1, -total
	}
	d := total / 3600
	m := total % 3600 / 60
	s := total % 60
	return DMS(sign*d, m, s)
}

package layout

import (
	"math"
	"strconv"
)

// Number is a dimension that may be undefined. An undefined Number means
// the parent imposes no constraint on that axis.
type Number struct {
	value   float32
	defined bool
}

// Defined returns a Number holding v.
func Defined(v float32) Number {
	return Number{value: v, defined: true}
}

// Undefined returns a Number with no value.
func Undefined() Number {
	return Number{}
}

// Get returns the value and whether it is defined.
func (n Number) Get() (float32, bool) {
	return n.value, n.defined
}

// IsDefined reports whether n holds a value.
func (n Number) IsDefined() bool {
	return n.defined
}

// Or returns the value of n, or fallback when n is undefined.
func (n Number) Or(fallback float32) float32 {
	if n.defined {
		return n.value
	}
	return fallback
}

// Sub returns n minus d, keeping undefined values undefined and never going
// below zero.
func (n Number) Sub(d float32) Number {
	if !n.defined {
		return n
	}
	return Defined(max(0, n.value-d))
}

func (n Number) String() string {
	if !n.defined {
		return "undefined"
	}
	return strconv.FormatFloat(float64(n.value), 'g', -1, 32)
}

// Size represents a width/height pair.
type Size[T any] struct {
	Width, Height T
}

// finite reports whether v is neither NaN nor infinite.
func finite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

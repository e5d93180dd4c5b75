package layout

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitAuto    Unit = iota // Size determined by content/flex
	UnitFixed               // Absolute units
	UnitPercent             // Percentage of parent's available space
)

// Value represents a dimension that can be fixed, percentage, or auto.
type Value struct {
	Amount float32
	Unit   Unit
}

// Auto returns a Value that should be computed from content/flex.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// Fixed returns a Value representing an absolute size.
func Fixed(n float32) Value {
	return Value{Amount: n, Unit: UnitFixed}
}

// Percent returns a Value representing a percentage of available space.
// The value is on a 0-100 scale (50.0 = 50%).
func Percent(p float32) Value {
	return Value{Amount: p, Unit: UnitPercent}
}

// Resolve computes the actual value given available space.
// For UnitAuto, returns the fallback value.
func (v Value) Resolve(available, fallback float32) float32 {
	switch v.Unit {
	case UnitFixed:
		return v.Amount
	case UnitPercent:
		return available * v.Amount / 100
	default:
		return fallback
	}
}

// ResolveNumber resolves v against an optionally-undefined available size.
// Auto values and percentages of an undefined size are undefined.
func (v Value) ResolveNumber(available Number) Number {
	switch v.Unit {
	case UnitFixed:
		return Defined(v.Amount)
	case UnitPercent:
		if a, ok := available.Get(); ok {
			return Defined(a * v.Amount / 100)
		}
	}
	return Undefined()
}

// IsAuto returns true if this value should be computed from content/flex.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}

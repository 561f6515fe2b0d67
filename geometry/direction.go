package geometry

// Axis distinguishes a horizontal-only value from a vertical-only one.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	}
	return "UNKNOWN AXIS"
}

// Tagged is a scalar bound to one axis. Arithmetic between two tagged
// values is defined only when their axes match; a mismatched-axis
// operation returns the left operand unchanged. An invalid Tagged
// stands in for a non-numeric sentinel and passes through every
// operation the same way, without ever raising. The zero value is an
// invalid horizontal value.
type Tagged struct {
	Axis  Axis
	Value float64
	Valid bool
}

// Tag binds a value to an axis.
func Tag(value float64, axis Axis) Tagged {
	return Tagged{Axis: axis, Value: value, Valid: true}
}

// TagFrom picks the axis-matching coordinate out of a vector.
func TagFrom(v Vector2, axis Axis) Tagged {
	if axis == Horizontal {
		return Tag(v.X, axis)
	}
	return Tag(v.Y, axis)
}

// Untag returns the plain value; ok is false for an invalid Tagged.
func (t Tagged) Untag() (float64, bool) {
	return t.Value, t.Valid
}

// Invert swaps the axis, keeping the value.
func (t Tagged) Invert() Tagged {
	if t.Axis == Horizontal {
		t.Axis = Vertical
	} else {
		t.Axis = Horizontal
	}
	return t
}

// Vector2 places the value in the matching axis slot, zero in the
// other. An invalid Tagged yields the zero vector.
func (t Tagged) Vector2() Vector2 {
	if !t.Valid {
		return Vector2{}
	}
	if t.Axis == Horizontal {
		return Vector2{X: t.Value}
	}
	return Vector2{Y: t.Value}
}

func (t Tagged) Add(o Tagged) Tagged {
	if !t.combinable(o) {
		return t
	}
	t.Value += o.Value
	return t
}

func (t Tagged) Sub(o Tagged) Tagged {
	if !t.combinable(o) {
		return t
	}
	t.Value -= o.Value
	return t
}

func (t Tagged) Mul(o Tagged) Tagged {
	if !t.combinable(o) {
		return t
	}
	t.Value *= o.Value
	return t
}

// Div divides by o. A zero divisor is treated like any other sentinel:
// the left operand comes back unchanged.
func (t Tagged) Div(o Tagged) Tagged {
	if !t.combinable(o) || o.Value == 0 {
		return t
	}
	t.Value /= o.Value
	return t
}

func (t Tagged) combinable(o Tagged) bool {
	return t.Valid && o.Valid && t.Axis == o.Axis
}

// MapHorizontal applies fn only when the value is horizontal.
func (t Tagged) MapHorizontal(fn func(float64) float64) Tagged {
	if t.Valid && t.Axis == Horizontal {
		t.Value = fn(t.Value)
	}
	return t
}

// MapVertical applies fn only when the value is vertical.
func (t Tagged) MapVertical(fn func(float64) float64) Tagged {
	if t.Valid && t.Axis == Vertical {
		t.Value = fn(t.Value)
	}
	return t
}

// Map applies fn regardless of the axis.
func (t Tagged) Map(fn func(float64) float64) Tagged {
	if t.Valid {
		t.Value = fn(t.Value)
	}
	return t
}

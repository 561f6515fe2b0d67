package geometry

// Limit is an optional per-axis bound. A nil coordinate leaves that
// axis unbounded.
type Limit struct {
	X, Y *float64
}

// LimitVec bounds both axes.
func LimitVec(v Vector2) Limit {
	x, y := v.X, v.Y
	return Limit{X: &x, Y: &y}
}

// LimitAxis bounds only the tagged axis. An invalid Tagged yields an
// empty limit.
func LimitAxis(t Tagged) Limit {
	if !t.Valid {
		return Limit{}
	}
	v := t.Value
	if t.Axis == Horizontal {
		return Limit{X: &v}
	}
	return Limit{Y: &v}
}

// PositionCap clamps positions to the configured bounds. Cap floors
// against Min first, then ceils against Max, per axis independently.
// When Min exceeds Max on an axis, Max wins. That quirk is load-bearing
// for content smaller than the frame and is kept as is.
type PositionCap struct {
	Min, Max Limit
}

// Cap returns p clamped to the bounds. Pure, idempotent.
func (c PositionCap) Cap(p Vector2) Vector2 {
	if c.Min.X != nil && p.X < *c.Min.X {
		p.X = *c.Min.X
	}
	if c.Min.Y != nil && p.Y < *c.Min.Y {
		p.Y = *c.Min.Y
	}
	if c.Max.X != nil && p.X > *c.Max.X {
		p.X = *c.Max.X
	}
	if c.Max.Y != nil && p.Y > *c.Max.Y {
		p.Y = *c.Max.Y
	}
	return p
}

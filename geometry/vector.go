package geometry

import "math"

// Vector2 is a pair of coordinates. It is used for positions, sizes,
// offsets, speeds and forces alike.
type Vector2 struct {
	X, Y float64
}

func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

func (v Vector2) Invert() Vector2 {
	return Vector2{X: -v.X, Y: -v.Y}
}

// Trunc drops the fractional part of both coordinates, toward zero.
func (v Vector2) Trunc() Vector2 {
	return Vector2{X: math.Trunc(v.X), Y: math.Trunc(v.Y)}
}

func (v Vector2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Rect is an offset plus a size.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Contains reports whether p falls within the rectangle. The leading
// edges are inclusive, the trailing edges exclusive.
func (r Rect) Contains(p Vector2) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Package math provides the small vector types used as primitive variable elements.
package math

// Vec2 is a 2D vector, used for texture coordinates and planar attributes.
type Vec2 struct {
	X, Y float32
}

// Splat2 returns a Vec2 with both components set to s.
func Splat2(s float32) Vec2 {
	return Vec2{s, s}
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Div returns v with each component divided by n.
func (v Vec2) Div(n float32) Vec2 {
	return Vec2{v.X / n, v.Y / n}
}

// Min returns the componentwise minimum of v and other.
func (v Vec2) Min(other Vec2) Vec2 {
	return Vec2{min(v.X, other.X), min(v.Y, other.Y)}
}

// Max returns the componentwise maximum of v and other.
func (v Vec2) Max(other Vec2) Vec2 {
	return Vec2{max(v.X, other.X), max(v.Y, other.Y)}
}

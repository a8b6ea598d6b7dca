package math

// Vec3 is a 3D vector. Points, normals, vectors and colors all share it;
// what the values mean is tracked separately by the owning data container.
type Vec3 struct {
	X, Y, Z float32
}

// Splat3 returns a Vec3 with every component set to s.
func Splat3(s float32) Vec3 {
	return Vec3{s, s, s}
}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Div returns v with each component divided by n.
func (v Vec3) Div(n float32) Vec3 {
	return Vec3{v.X / n, v.Y / n, v.Z / n}
}

// Min returns the componentwise minimum of v and other.
func (v Vec3) Min(other Vec3) Vec3 {
	return Vec3{min(v.X, other.X), min(v.Y, other.Y), min(v.Z, other.Z)}
}

// Max returns the componentwise maximum of v and other.
func (v Vec3) Max(other Vec3) Vec3 {
	return Vec3{max(v.X, other.X), max(v.Y, other.Y), max(v.Z, other.Z)}
}

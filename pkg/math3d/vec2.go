package math3d

// Vec2 is a point or edge in screen space.
type Vec2 struct {
	X, Y float64
}

// V2 creates a new Vec2.
func V2(x, y float64) Vec2 {
	return Vec2{x, y}
}

// Sub returns the vector difference a - b.
func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

// Cross returns the z component of the 3D cross product of a and b
// extended with z=0. Positive when b lies counter-clockwise from a in a
// y-up frame, which is clockwise on a y-down screen.
func (a Vec2) Cross(b Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// IsFinite reports whether both components are finite.
func (a Vec2) IsFinite() bool {
	return isFinite(a.X) && isFinite(a.Y)
}

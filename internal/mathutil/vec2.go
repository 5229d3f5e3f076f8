package mathutil

import "math"

// Vec2 is a 2-component vector (value type, stack-allocated).
type Vec2 struct {
	X, Y float64
}

func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func (a Vec2) Dot(b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

func (a Vec2) Dist(b Vec2) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Rotate rotates v by angle a (radians) in the skeleton's rotation
// convention: Dir(0) points along +y and positive angles turn Dir(g)
// into Dir(g+a).
func (v Vec2) Rotate(a float64) Vec2 {
	c, s := math.Cos(a), math.Sin(a)
	return Vec2{c*v.X - s*v.Y, s*v.X + c*v.Y}
}

// Dir returns the unit direction for a global angle g in radians:
// (-sin g, cos g). g = 0 points along +y (down in screen coordinates)
// and increasing g turns clockwise on screen.
func Dir(g float64) Vec2 {
	return Vec2{-math.Sin(g), math.Cos(g)}
}

// DirAngle is the inverse of Dir: the global angle of a non-zero vector.
func DirAngle(v Vec2) float64 {
	return math.Atan2(-v.X, v.Y)
}

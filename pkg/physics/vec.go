package physics

import "math"

// Vec is a simple 2D vector. Operations return new values.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(u Vec) Vec {
	return Vec{v.X + u.X, v.Y + u.Y}
}

func (v Vec) Sub(u Vec) Vec {
	return Vec{v.X - u.X, v.Y - u.Y}
}

func (v Vec) Mul(s float64) Vec {
	return Vec{v.X * s, v.Y * s}
}

func (v Vec) Dot(u Vec) float64 {
	return v.X*u.X + v.Y*u.Y
}

func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns the unit vector, or the zero vector when v has zero
// length. Callers dealing with degenerate directions must branch themselves.
func (v Vec) Normalize() Vec {
	l := v.Len()
	if l == 0 {
		return Vec{}
	}
	return Vec{v.X / l, v.Y / l}
}

// Perp returns v rotated 90° counterclockwise.
func (v Vec) Perp() Vec {
	return Vec{-v.Y, v.X}
}

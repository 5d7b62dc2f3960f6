package physics

import "math"

// Polygon is a regular n-gon rotating rigidly about its own center at a
// constant angular speed. Vertices are derived from Angle, never stored.
type Polygon struct {
	Center Vec
	Radius float64 // circumradius, center to vertex
	Sides  int
	Angle  float64 // current rotation, radians
	Omega  float64 // angular speed, radians per second
}

// Vertices computes the current vertex positions, counterclockwise starting
// from Angle. Edge i connects vertex i to vertex (i+1) mod n. The slice is
// rebuilt on every call since Angle changes continuously.
func (p Polygon) Vertices() []Vec {
	vs := make([]Vec, p.Sides)
	for i := range vs {
		a := p.Angle + float64(i)*2*math.Pi/float64(p.Sides)
		vs[i] = Vec{
			X: p.Center.X + p.Radius*math.Cos(a),
			Y: p.Center.Y + p.Radius*math.Sin(a),
		}
	}
	return vs
}

// PointVelocity returns the instantaneous velocity of the rigid body at
// point pt: omega × r, which in 2D is omega * (-r.Y, r.X).
func (p Polygon) PointVelocity(pt Vec) Vec {
	return pt.Sub(p.Center).Perp().Mul(p.Omega)
}

package physics

import "math"

// Resolver resolves contacts between the ball and the rotating polygon.
// Both edges and their endpoints are tested, and the collision response is
// computed relative to the wall's own motion so a moving wall can push the
// ball rather than just mirror it.
type Resolver struct {
	Restitution float64 // fraction of closing speed retained on impact, 0..1
	Margin      float64 // extra push-out distance after penetration correction
	NearestOnly bool    // resolve only the single closest feature per frame
}

// Resolve checks the ball against every edge and every vertex of the polygon
// in order, applying each response before testing the next feature. A ball
// sitting on a corner may therefore be resolved more than once in a single
// frame. Returns the number of contacts that received a response.
func (r Resolver) Resolve(b *Ball, poly Polygon) int {
	vs := poly.Vertices()
	if r.NearestOnly {
		return r.resolveNearest(b, poly, vs)
	}

	n := 0
	for i := range vs {
		a := vs[i]
		c := vs[(i+1)%len(vs)]
		// The edge perpendicular points inward for CCW winding, which is
		// the fallback normal when the center sits exactly on the line.
		if r.resolveContact(b, poly, closestOnSegment(a, c, b.Pos), c.Sub(a).Perp().Normalize()) {
			n++
		}
	}
	for _, v := range vs {
		if r.resolveContact(b, poly, v, Vec{0, -1}) {
			n++
		}
	}
	return n
}

// resolveNearest scans all features and responds to the single closest one.
// Stricter alternative to the sequential pass; edges win ties at corners.
func (r Resolver) resolveNearest(b *Ball, poly Polygon, vs []Vec) int {
	best := math.Inf(1)
	var bestPoint, bestFallback Vec
	for i := range vs {
		a := vs[i]
		c := vs[(i+1)%len(vs)]
		p := closestOnSegment(a, c, b.Pos)
		if d := b.Pos.Sub(p).Len(); d < best {
			best = d
			bestPoint = p
			bestFallback = c.Sub(a).Perp().Normalize()
		}
	}
	for _, v := range vs {
		if d := b.Pos.Sub(v).Len(); d < best {
			best = d
			bestPoint = v
			bestFallback = Vec{0, -1}
		}
	}
	if best >= b.Radius {
		return 0
	}
	if r.resolveContact(b, poly, bestPoint, bestFallback) {
		return 1
	}
	return 0
}

// resolveContact tests the ball against a contact point p and, if the ball
// overlaps it while moving toward it relative to the wall, reflects the
// relative velocity and pushes the ball out along the normal. A separating
// contact is skipped entirely, overlap or not, so grazing contacts neither
// gain energy nor stick.
func (r Resolver) resolveContact(b *Ball, poly Polygon, p Vec, fallback Vec) bool {
	diff := b.Pos.Sub(p)
	dist := diff.Len()
	if dist >= b.Radius {
		return false
	}

	normal := fallback
	if dist != 0 {
		normal = diff.Normalize()
	}

	wallVel := poly.PointVelocity(p)
	rel := b.Vel.Sub(wallVel)
	vn := rel.Dot(normal)
	if vn >= 0 {
		return false
	}

	rel = rel.Sub(normal.Mul((1 + r.Restitution) * vn))
	b.Vel = rel.Add(wallVel)
	b.Pos = b.Pos.Add(normal.Mul(b.Radius - dist + r.Margin))
	return true
}

// closestOnSegment returns the point on segment AB nearest to P, via the
// projection of P onto the line clamped to [0,1].
func closestOnSegment(a, b, p Vec) Vec {
	ab := b.Sub(a)
	t := p.Sub(a).Dot(ab) / ab.Dot(ab)
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return a.Add(ab.Mul(t))
}

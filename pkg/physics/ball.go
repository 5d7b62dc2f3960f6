package physics

// Ball is the single moving body. Mutated in place by the integrator and
// the collision resolver.
type Ball struct {
	Pos    Vec
	Vel    Vec
	Radius float64
}

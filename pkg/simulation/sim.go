package simulation

import "hexball/pkg/physics"

// Sim owns the whole state of one ball-in-polygon run. There are no package
// globals; independent Sims can run side by side.
type Sim struct {
	Ball physics.Ball
	Hex  physics.Polygon

	Gravity float64
	Damping float64

	resolver physics.Resolver

	Steps    int // Step calls so far
	Contacts int // contacts resolved during the most recent Step
}

// New builds a simulation from a scene. The scene is trusted; validation
// happens at load time, not here.
func New(cfg *Scene) *Sim {
	return &Sim{
		Ball: physics.Ball{
			Pos:    physics.Vec{X: cfg.Ball.Pos[0], Y: cfg.Ball.Pos[1]},
			Vel:    physics.Vec{X: cfg.Ball.Vel[0], Y: cfg.Ball.Vel[1]},
			Radius: cfg.Ball.Radius,
		},
		Hex: physics.Polygon{
			Center: physics.Vec{X: cfg.Hexagon.Center[0], Y: cfg.Hexagon.Center[1]},
			Radius: cfg.Hexagon.Radius,
			Sides:  cfg.Hexagon.Sides,
			Omega:  cfg.Hexagon.Omega,
		},
		Gravity: cfg.Gravity,
		Damping: cfg.Damping,
		resolver: physics.Resolver{
			Restitution: cfg.Restitution,
			Margin:      cfg.Margin,
			NearestOnly: cfg.NearestOnly,
		},
	}
}

// Step advances the simulation by dt seconds: polygon rotation first, then
// ball integration, then collision resolution against the freshly derived
// vertices. dt is taken as-is; the caller keeps it small and non-negative.
func (s *Sim) Step(dt float64) {
	s.Hex.Angle += s.Hex.Omega * dt
	physics.Integrate(&s.Ball, s.Gravity, s.Damping, dt)
	s.Contacts = s.resolver.Resolve(&s.Ball, s.Hex)
	s.Steps++
}

// RenderState is a read-only snapshot for the drawing shell.
type RenderState struct {
	Vertices   []physics.Vec
	BallPos    physics.Vec
	BallRadius float64
	Steps      int
	Contacts   int
}

func (s *Sim) RenderState() RenderState {
	return RenderState{
		Vertices:   s.Hex.Vertices(),
		BallPos:    s.Ball.Pos,
		BallRadius: s.Ball.Radius,
		Steps:      s.Steps,
		Contacts:   s.Contacts,
	}
}

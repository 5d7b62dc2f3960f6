package simulation

import (
	"math"
	"testing"

	"hexball/pkg/physics"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9
}

func TestStepReferenceScenarioFirstStep(t *testing.T) {
	// Ball starts well inside the hexagon, so the first step is gravity
	// and damping only.
	s := New(DefaultScene())
	const dt = 1.0 / 60.0

	s.Step(dt)

	if s.Contacts != 0 {
		t.Fatalf("contacts on first step = %d, want 0", s.Contacts)
	}
	if !approx(s.Hex.Angle, math.Pi/4*dt) {
		t.Fatalf("angle after step = %v, want %v", s.Hex.Angle, math.Pi/4*dt)
	}

	vy := 400 * dt
	f := 1 - 0.1*dt
	if !approx(s.Ball.Pos.X, 400+100*dt) || !approx(s.Ball.Pos.Y, 200+vy*dt) {
		t.Fatalf("pos after step = %v, want {%v %v}", s.Ball.Pos, 400+100*dt, 200+vy*dt)
	}
	if !approx(s.Ball.Vel.X, 100*f) || !approx(s.Ball.Vel.Y, vy*f) {
		t.Fatalf("vel after step = %v, want {%v %v}", s.Ball.Vel, 100*f, vy*f)
	}
	if s.Steps != 1 {
		t.Fatalf("step counter = %d, want 1", s.Steps)
	}
}

func TestStepIsNoOpWhenEverythingIsStill(t *testing.T) {
	scene := DefaultScene()
	scene.Gravity = 0
	scene.Damping = 0
	scene.Hexagon.Omega = 0
	scene.Ball.Pos = scene.Hexagon.Center
	scene.Ball.Vel = [2]float64{0, 0}
	s := New(scene)

	for i := 0; i < 100; i++ {
		s.Step(1.0 / 60.0)
	}

	if s.Ball.Pos != (physics.Vec{X: 400, Y: 300}) {
		t.Fatalf("still ball drifted to %v", s.Ball.Pos)
	}
	if s.Ball.Vel != (physics.Vec{}) {
		t.Fatalf("still ball gained velocity %v", s.Ball.Vel)
	}
	if s.Hex.Angle != 0 {
		t.Fatalf("static polygon rotated to %v", s.Hex.Angle)
	}
}

func TestContainmentOverLongRun(t *testing.T) {
	scene := DefaultScene()
	s := New(scene)
	limit := scene.Hexagon.Radius + scene.Ball.Radius + scene.Margin + 1e-6

	for i := 0; i < 6000; i++ {
		s.Step(1.0 / 120.0)
		d := s.Ball.Pos.Sub(s.Hex.Center).Len()
		if d > limit {
			t.Fatalf("step %d: ball escaped to distance %v (limit %v)", i, d, limit)
		}
		if math.IsNaN(d) {
			t.Fatalf("step %d: ball state diverged: %+v", i, s.Ball)
		}
	}
}

func TestRenderStateSnapshot(t *testing.T) {
	s := New(DefaultScene())
	s.Step(1.0 / 60.0)

	rs := s.RenderState()
	if len(rs.Vertices) != 6 {
		t.Fatalf("snapshot vertices = %d, want 6", len(rs.Vertices))
	}
	if rs.BallPos != s.Ball.Pos {
		t.Fatalf("snapshot ball pos %v != sim ball pos %v", rs.BallPos, s.Ball.Pos)
	}
	if rs.BallRadius != 10 {
		t.Fatalf("snapshot ball radius = %v, want 10", rs.BallRadius)
	}
	if rs.Steps != 1 {
		t.Fatalf("snapshot steps = %d, want 1", rs.Steps)
	}

	// Snapshots are derived fresh: mutating one must not leak into the sim.
	rs.Vertices[0] = physics.Vec{}
	if got := s.RenderState().Vertices[0]; got == (physics.Vec{}) {
		t.Fatalf("snapshot mutation leaked into simulation state: %v", got)
	}
}

func TestSimsAreIndependent(t *testing.T) {
	a := New(DefaultScene())
	b := New(DefaultScene())

	for i := 0; i < 50; i++ {
		a.Step(1.0 / 60.0)
	}

	if b.Steps != 0 {
		t.Fatalf("untouched sim advanced to step %d", b.Steps)
	}
	if b.Ball.Pos != (physics.Vec{X: 400, Y: 200}) {
		t.Fatalf("untouched sim ball moved to %v", b.Ball.Pos)
	}
	if a.Ball.Pos == b.Ball.Pos {
		t.Fatal("driven sim did not diverge from untouched sim")
	}
}

func TestBallEventuallyHitsTheWall(t *testing.T) {
	s := New(DefaultScene())
	hit := false
	for i := 0; i < 2000 && !hit; i++ {
		s.Step(1.0 / 60.0)
		hit = s.Contacts > 0
	}
	if !hit {
		t.Fatal("ball never contacted the hexagon in 2000 steps")
	}
}

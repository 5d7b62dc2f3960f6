package physics

// Integrate advances the ball by one semi-implicit Euler step: gravity into
// velocity first, then velocity into position, then linear damping.
// Gravity acts on Y only; the coordinate system has Y growing downward.
//
// The damping factor 1-damping*dt is clamped at zero so that an oversized
// step freezes the ball instead of reversing its velocity.
func Integrate(b *Ball, gravity, damping, dt float64) {
	b.Vel.Y += gravity * dt

	b.Pos.X += b.Vel.X * dt
	b.Pos.Y += b.Vel.Y * dt

	f := 1 - damping*dt
	if f < 0 {
		f = 0
	}
	b.Vel.X *= f
	b.Vel.Y *= f
}

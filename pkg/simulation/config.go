package simulation

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// Scene is the JSON description of one simulation setup. Missing keys keep
// the default values, so a scene file only needs to name what it changes.
type Scene struct {
	Gravity     float64 `json:"gravity"`     // pixels per second², pulls toward larger Y
	Damping     float64 `json:"damping"`     // fraction of velocity removed per second
	Restitution float64 `json:"restitution"` // 0 = dead stop, 1 = perfectly elastic
	Margin      float64 `json:"margin"`      // push-out slack after penetration correction
	NearestOnly bool    `json:"nearest_only"`

	Hexagon HexagonConfig `json:"hexagon"`
	Ball    BallConfig    `json:"ball"`
}

type HexagonConfig struct {
	Center [2]float64 `json:"center"`
	Radius float64    `json:"radius"`
	Sides  int        `json:"sides"`
	Omega  float64    `json:"omega"` // radians per second
}

type BallConfig struct {
	Pos    [2]float64 `json:"pos"`
	Vel    [2]float64 `json:"vel"`
	Radius float64    `json:"radius"`
}

// DefaultScene returns the reference setup: a slowly spinning hexagon
// centered in an 800×600 window with the ball dropped above its center.
func DefaultScene() *Scene {
	return &Scene{
		Gravity:     400,
		Damping:     0.1,
		Restitution: 0.9,
		Margin:      0.5,
		Hexagon: HexagonConfig{
			Center: [2]float64{400, 300},
			Radius: 200,
			Sides:  6,
			Omega:  math.Pi / 4,
		},
		Ball: BallConfig{
			Pos:    [2]float64{400, 200},
			Vel:    [2]float64{100, 0},
			Radius: 10,
		},
	}
}

// LoadScene reads and validates a scene file, starting from the defaults.
func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene: %w", err)
	}

	scene := DefaultScene()
	if err := json.Unmarshal(data, scene); err != nil {
		return nil, fmt.Errorf("parsing scene %s: %w", path, err)
	}

	if err := scene.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene %s: %w", path, err)
	}
	return scene, nil
}

// Validate rejects configurations the core is not required to survive.
func (s *Scene) Validate() error {
	if s.Hexagon.Sides < 3 {
		return fmt.Errorf("hexagon sides must be at least 3, got %d", s.Hexagon.Sides)
	}
	if s.Hexagon.Radius <= 0 {
		return fmt.Errorf("hexagon radius must be positive, got %g", s.Hexagon.Radius)
	}
	if s.Ball.Radius <= 0 {
		return fmt.Errorf("ball radius must be positive, got %g", s.Ball.Radius)
	}
	if s.Gravity < 0 {
		return fmt.Errorf("gravity cannot be negative, got %g", s.Gravity)
	}
	if s.Damping < 0 {
		return fmt.Errorf("damping cannot be negative, got %g", s.Damping)
	}
	if s.Restitution < 0 || s.Restitution > 1 {
		return fmt.Errorf("restitution must be in [0,1], got %g", s.Restitution)
	}
	if s.Margin < 0 {
		return fmt.Errorf("margin cannot be negative, got %g", s.Margin)
	}
	return nil
}

package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"hexball/pkg/config"
	"hexball/pkg/simulation"
)

// Window dimensions.
const (
	screenWidth  = 800
	screenHeight = 600
)

const fixedDt = 1.0 / 60.0

// Game is the rendering/IO shell. It drives the simulation once per frame
// and draws the resulting snapshot; all physics lives in pkg/simulation and
// pkg/physics.
type Game struct {
	sim    *simulation.Sim
	paused bool

	// Pre-rendered image for the ball.
	circleImage *ebiten.Image
}

func NewGame(scene *simulation.Scene) *Game {
	g := &Game{sim: simulation.New(scene)}
	g.circleImage = createCircleImage(int(scene.Ball.Radius), color.RGBA{255, 0, 0, 255})
	return g
}

// createCircleImage creates an image with a filled circle of the given
// radius and color.
func createCircleImage(radius int, clr color.Color) *ebiten.Image {
	diameter := 2 * radius
	img := ebiten.NewImage(diameter, diameter)
	img.Fill(color.Transparent)
	for y := 0; y < diameter; y++ {
		for x := 0; x < diameter; x++ {
			dx := float64(x - radius)
			dy := float64(y - radius)
			if dx*dx+dy*dy <= float64(radius*radius) {
				img.Set(x, y, clr)
			}
		}
	}
	return img
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if !g.paused {
		g.sim.Step(fixedDt)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{30, 30, 30, 255})

	state := g.sim.RenderState()

	// Hexagon edges.
	n := len(state.Vertices)
	for i := 0; i < n; i++ {
		a := state.Vertices[i]
		b := state.Vertices[(i+1)%n]
		ebitenutil.DrawLine(screen, a.X, a.Y, b.X, b.Y, color.White)
	}

	// Ball, centered on its position.
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-state.BallRadius, -state.BallRadius)
	op.GeoM.Translate(state.BallPos.X, state.BallPos.Y)
	screen.DrawImage(g.circleImage, op)

	hud := fmt.Sprintf("step %d  speed %.1f  contacts %d", state.Steps, g.sim.Ball.Vel.Len(), state.Contacts)
	if g.paused {
		hud += "  [paused]"
	}
	text.Draw(screen, hud, basicfont.Face7x13, 8, 16, color.White)
	text.Draw(screen, "space: pause  esc/q: quit", basicfont.Face7x13, 8, screenHeight-8, color.Gray{Y: 128})
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	scenePath := flag.String("scene", "", "JSON scene file (defaults to the built-in scene)")
	flag.Parse()

	config.LoadEnv()
	path := *scenePath
	if path == "" {
		if envPath, err := config.GetEnvVariable("HEXBALL_SCENE"); err == nil {
			path = envPath
		}
	}

	scene := simulation.DefaultScene()
	if path != "" {
		loaded, err := simulation.LoadScene(path)
		if err != nil {
			log.Fatalf("failed to load scene: %v", err)
		}
		scene = loaded
		log.Printf("loaded scene from %s", path)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Bouncing Ball in a Spinning Hexagon")
	if err := ebiten.RunGame(NewGame(scene)); err != nil {
		log.Fatal(err)
	}
}

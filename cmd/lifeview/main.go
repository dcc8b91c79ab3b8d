//go:build ebiten

// Command lifeview is a graphical driver for the life core. It owns the
// current grid, steps it at the configured TPS and blits each snapshot to
// the screen. Space pauses, N single-steps, R reseeds, Q or Escape quits.
package main

import (
	"errors"
	"flag"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"golife/model"
	"golife/render"
	"golife/rules"
	"golife/seed"
	"golife/utils"
)

// Game adapts the pure step function to the ebiten.Game interface
type Game struct {
	grid    *model.Grid
	pool    *model.GridPool
	painter *render.GridPainter
	builder func(seedValue int64) seed.Builder

	onColor  color.Color
	offColor color.Color

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// Reset reseeds the board with the provided seed
func (g *Game) Reset(seedValue int64) error {
	grid, err := g.builder(seedValue).Build(g.grid.Size())
	if err != nil {
		return err
	}
	g.pool.Put(g.grid)
	g.grid = grid
	g.seed = seedValue
	g.tickOnce = false
	return nil
}

// Update handles per-frame input and advances the simulation
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.Reset(g.seed); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.Reset(time.Now().UnixNano()); err != nil {
			return err
		}
	}

	if (!g.paused) || g.tickOnce {
		next, err := rules.StepParallel(g.grid, g.pool)
		if err != nil {
			return err
		}
		g.pool.Put(g.grid)
		g.grid = next
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current grid snapshot
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.grid, g.onColor, g.offColor, g.scale)
}

// Layout returns the logical screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.grid.Size() * g.scale, g.grid.Size() * g.scale
}

func main() {
	var (
		size      = flag.Int("size", 200, "grid dimension")
		seedValue = flag.Int64("seed", time.Now().UnixNano(), "random seed")
		policy    = flag.String("policy", utils.SeedPolicyUniform, "seeding policy: uniform or noise")
		density   = flag.Float64("density", 0.15, "alive probability for uniform seeding")
		threshold = flag.Float64("threshold", 0.2, "noise threshold for noise seeding")
		scale     = flag.Int("scale", 4, "pixels per cell")
		tps       = flag.Int("tps", 10, "generations per second")
	)
	flag.Parse()

	builder := func(sv int64) seed.Builder {
		if *policy == utils.SeedPolicyNoise {
			return seed.Noise(sv, *threshold)
		}
		return seed.Uniform(sv, *density)
	}

	grid, err := builder(*seedValue).Build(*size)
	if err != nil {
		log.Fatalf("failed to seed grid: %+v", err)
	}

	game := &Game{
		grid:     grid,
		pool:     model.NewGridPool(),
		painter:  render.NewGridPainter(*size),
		builder:  builder,
		onColor:  color.White,
		offColor: color.Black,
		scale:    *scale,
		seed:     *seedValue,
	}

	ebiten.SetWindowTitle("lifeview")
	ebiten.SetTPS(*tps)
	ebiten.SetWindowSize((*size)*(*scale), (*size)*(*scale))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

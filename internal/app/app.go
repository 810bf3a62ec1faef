//go:build ebiten

package app

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gilhooleyd/wasm-game-of-life/internal/config"
	"github.com/gilhooleyd/wasm-game-of-life/internal/render"
	"github.com/gilhooleyd/wasm-game-of-life/internal/ui"
	"github.com/gilhooleyd/wasm-game-of-life/pkg/life"
)

// Game adapts a universe to the ebiten.Game interface.
type Game struct {
	u       *life.Universe
	pattern life.Pattern
	painter *render.Painter
	hud     *ui.HUD

	aliveColor color.Color
	deadColor  color.Color

	scale      int
	paused     bool
	tickOnce   bool
	seed       int64
	generation int
}

// New constructs a Game for the provided universe and pattern. A
// non-positive scale is raised to one pixel per cell.
func New(u *life.Universe, pattern life.Pattern, scale int, seed int64) *Game {
	if scale < 1 {
		scale = 1
	}
	return &Game{
		u:          u,
		pattern:    pattern,
		painter:    render.NewPainter(u.Width(), u.Height()),
		hud:        ui.NewHUD(),
		aliveColor: color.Black,
		deadColor:  color.White,
		scale:      scale,
		seed:       seed,
	}
}

// Reset reseeds the universe from its pattern with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.pattern.Apply(g.u, seed)
	g.generation = 0
	g.tickOnce = false
}

// Update handles per-frame input and advances the universe.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		g.u.Toggle(my/g.scale, mx/g.scale)
	}

	if (!g.paused) || g.tickOnce {
		g.u.Tick()
		g.generation++
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current universe state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.u.Cells(), g.aliveColor, g.deadColor, g.scale)

	line := fmt.Sprintf("gen %d  pop %d", g.generation, g.u.Population())
	if g.paused {
		line += "  paused"
	}
	g.hud.Draw(screen, line)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.u.Width() * g.scale, g.u.Height() * g.scale
}

// Run opens a window and drives the universe until the player quits.
func Run(cfg *config.Config) error {
	u, err := life.NewSized(cfg.Width, cfg.Height)
	if err != nil {
		return err
	}
	pattern, ok := life.Lookup(cfg.Pattern)
	if !ok {
		return fmt.Errorf("unknown pattern %q", cfg.Pattern)
	}
	pattern.Apply(u, cfg.Seed)

	game := New(u, pattern, cfg.Scale, cfg.Seed)

	ebiten.SetWindowTitle("game of life")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(u.Width()*game.scale, u.Height()*game.scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

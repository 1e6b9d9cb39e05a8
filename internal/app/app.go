//go:build ebiten

package app

import (
	"errors"

	"pixelfire/internal/core"
	"pixelfire/internal/render"
	"pixelfire/internal/sink/memory"
	"pixelfire/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PreviewOptions configure the preview window.
type PreviewOptions struct {
	Title  string
	Scale  int
	TPS    int
	Params core.ParameterSnapshot
}

// Game adapts an Animator writing into a memory sink to the ebiten.Game
// interface. Each ebiten tick runs one frame.
type Game struct {
	anim    *Animator
	sim     Simulation
	sink    *memory.Sink
	painter *render.StripPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	scale int
}

// NewGame constructs a Game around anim. sim and sink must be the ones anim
// was built with.
func NewGame(anim *Animator, sim Simulation, sink *memory.Sink, opts PreviewOptions) *Game {
	scale := max(opts.Scale, 1)
	return &Game{
		anim:    anim,
		sim:     sim,
		sink:    sink,
		painter: render.NewStripPainter(sink.Len()),
		hud:     ui.NewHUD(opts.Title, opts.Params, hudWidth),
		overlay: ui.NewOverlay(sink.Len(), scale),
		scale:   scale,
	}
}

// Update handles input and advances one frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.anim.RequestShutdown()
	}
	if g.anim.ShutdownRequested() {
		g.anim.Shutdown()
		return ebiten.Termination
	}
	g.overlay.Update()
	if err := g.anim.Frame(); err != nil {
		g.anim.Shutdown()
		return err
	}
	total, peak := 0.0, 0.0
	for _, h := range g.sim.Heat() {
		total += h
		peak = max(peak, h)
	}
	g.hud.Update(g.anim.Frames(), total, peak)
	return nil
}

// Draw renders the last flushed frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sink.View(), g.scale)
	g.overlay.Draw(screen, g.sim.Heat())
	w, h := g.viewSize()
	g.hud.Draw(screen, w, h)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.viewSize()
	return w + g.hud.Width(), max(h, minHeight)
}

func (g *Game) viewSize() (int, int) {
	cols, rows := g.painter.Size()
	return cols * g.scale, max(rows*g.scale, minHeight)
}

// RunPreview opens a window and runs anim until the window is closed, q or
// Esc is pressed or shutdown is requested elsewhere.
func RunPreview(anim *Animator, sim Simulation, sink *memory.Sink, opts PreviewOptions) error {
	g := NewGame(anim, sim, sink, opts)
	w, h := g.Layout(0, 0)

	ebiten.SetWindowTitle(opts.Title)
	if opts.TPS > 0 {
		ebiten.SetTPS(opts.TPS)
	}
	ebiten.SetWindowSize(w, h)

	err := ebiten.RunGame(g)
	anim.Shutdown()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

const (
	hudWidth  = 240
	minHeight = 200
)

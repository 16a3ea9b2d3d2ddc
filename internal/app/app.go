//go:build ebiten

package app

import (
	"lifelab/internal/camera"
	"lifelab/internal/core"
	"lifelab/internal/render"
	"lifelab/internal/sim"
	"lifelab/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game drives the simulation, camera and presenter from the ebiten
// loop. All kernel dispatches happen on this goroutine, so edits,
// seeding, stepping and presentation are naturally sequenced.
type Game struct {
	sim       *sim.Simulation
	cam       *camera.Camera
	presenter *render.Presenter
	painter   *render.Painter
	hud       *ui.HUD
	pacer     *core.FixedStep
	seeds     *SeedStream

	winW, winH int
	drawGrid   bool
	paused     bool
	stepOnce   bool

	dragging     bool
	lastCursorX  int
	lastCursorY  int
	pendingFlip  bool
	flipX, flipY int
}

// New constructs the game for an already-validated simulation.
func New(cfg *Config, s *sim.Simulation) *Game {
	g := &Game{
		sim:      s,
		cam:      camera.New(s.Config(), cfg.WinW, cfg.WinH),
		hud:      ui.NewHUD(),
		pacer:    core.NewFixedStep(cfg.TPS),
		seeds:    NewSeedStream(cfg.Seed),
		drawGrid: cfg.Grid,
	}
	g.resize(cfg.WinW, cfg.WinH)
	g.sim.Randomize(g.seeds.Next())
	return g
}

func (g *Game) resize(w, h int) {
	g.winW, g.winH = w, h
	g.presenter = render.NewPresenter(w, h)
	g.painter = render.NewPainter(w, h)
	g.cam.Resize(w, h)
}

// Update handles input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.stepOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.drawGrid = !g.drawGrid
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sim.Randomize(g.seeds.Next())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.sim.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.pacer.SetTPS(g.pacer.TPS() + 10)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		if tps := g.pacer.TPS() - 10; tps > 0 {
			g.pacer.SetTPS(tps)
		}
	}

	cx, cy := ebiten.CursorPosition()
	g.cam.SetCursor(float64(cx), float64(cy))

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if g.dragging {
			g.cam.Pan(float64(cx-g.lastCursorX), float64(cy-g.lastCursorY))
		}
		g.dragging = true
	} else {
		g.dragging = false
	}
	g.lastCursorX, g.lastCursorY = cx, cy

	if _, wy := ebiten.Wheel(); wy != 0 {
		g.cam.Zoom(wy)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		if x, y, ok := g.cam.CursorCell(); ok {
			g.pendingFlip = true
			g.flipX, g.flipY = x, y
		}
	}

	if g.stepOnce {
		g.sim.Step()
		g.stepOnce = false
	} else if !g.paused && g.pacer.ShouldStep() {
		g.sim.Step()
	}
	return nil
}

// Draw presents the current generation. A queued right-click edit is
// handed to the presenter as the pending toggle and cleared once the
// frame has been rendered.
func (g *Game) Draw(screen *ebiten.Image) {
	frame := render.Frame{
		Matrix:   g.cam.Matrix(),
		DrawGrid: g.drawGrid,
		CursorX:  -1,
		CursorY:  -1,
	}
	cellX, cellY, cursorOK := g.cam.CursorCell()
	if cursorOK {
		frame.CursorX, frame.CursorY = cellX, cellY
	}
	if g.pendingFlip {
		frame.PendingToggle = true
		frame.ToggleX, frame.ToggleY = g.flipX, g.flipY
	}

	g.presenter.Render(g.sim.Front(), frame)
	g.pendingFlip = false

	g.painter.Blit(screen, g.presenter.Pix())
	g.hud.Draw(screen, ui.Status{
		Generation: g.sim.Generation(),
		TPS:        g.pacer.TPS(),
		FPS:        ebiten.ActualFPS(),
		Paused:     g.paused,
		Grid:       g.drawGrid,
		CursorX:    cellX,
		CursorY:    cellY,
		CursorOK:   cursorOK,
	})
}

// Layout adapts the frame to the window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 &&
		(outsideWidth != g.winW || outsideHeight != g.winH) {
		g.resize(outsideWidth, outsideHeight)
	}
	return g.winW, g.winH
}

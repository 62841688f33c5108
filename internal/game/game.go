// Package game is the ebiten front-end: it forwards input to the world actor
// as tick messages and draws the snapshots the actor pushes back.
package game

import (
	"context"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/lao-tseu-is-alive/go-electron-funnel/pkg/simulation"
	"github.com/lao-tseu-is-alive/go-electron-funnel/pkg/ui"
	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/log"
)

type Game struct {
	ctx        context.Context
	System     actor.ActorSystem
	worldPID   *actor.PID
	snapshotCh chan *simulation.Snapshot
	lastState  *simulation.Snapshot
	cfg        *simulation.Config
	logger     log.Logger
	view       viewport

	elapsed        float64
	resetRequested bool

	// UI Controls
	panel            *ui.UIPanel
	widgetRadii      *ui.Checkbox
	widgetCones      *ui.Checkbox
	widgetSnap       *ui.Checkbox
	widgetStats      *ui.Checkbox
	widgetGlow       *ui.Slider
	widgetGlowRadius *ui.Slider

	// Timing instrumentation
	updateAvg float64 // Rolling average in ms
	drawAvg   float64
}

// New spawns the world actor on system and builds the control panel.
func New(ctx context.Context, cfg *simulation.Config, system actor.ActorSystem, opts ...simulation.Option) (*Game, error) {
	snapshotCh := make(chan *simulation.Snapshot, 10)

	world := simulation.NewWorld(cfg, system.Logger(), opts...)
	initial := world.Snapshot()
	worldPID, err := system.Spawn(ctx, "world", simulation.NewWorldActor(world, snapshotCh))
	if err != nil {
		return nil, fmt.Errorf("failed to spawn world: %w", err)
	}

	g := &Game{
		ctx:        ctx,
		System:     system,
		worldPID:   worldPID,
		snapshotCh: snapshotCh,
		lastState:  initial,
		cfg:        cfg,
		logger:     system.Logger(),
		view:       viewport{w: cfg.WorldWidth, h: cfg.WorldHeight},
	}

	panel := ui.NewUIPanel(10, 10, 220, 300)
	panel.Title = "Electron Funnel"
	panel.AddSection("Overlay")
	g.widgetRadii = panel.AddCheckbox("Field radii", true)
	g.widgetCones = panel.AddCheckbox("Hoover cones", true)
	g.widgetSnap = panel.AddCheckbox("Snap radii", false)
	g.widgetStats = panel.AddCheckbox("Timing stats", false)
	panel.AddSection("Electrons")
	g.widgetGlow = panel.AddSlider("Core size", 0.5, 4, 1.5)
	g.widgetGlowRadius = panel.AddSlider("Glow size", 0, 10, 4)
	panel.AddSection("World")
	panel.AddButton("Reset (R)", func() { g.resetRequested = true })
	g.panel = panel

	return g, nil
}

func (g *Game) Update() error {
	start := time.Now()
	defer func() {
		g.updateAvg = g.updateAvg*0.95 + float64(time.Since(start).Microseconds())/1000.0*0.05
	}()

	g.panel.Update()

	// Keep only the freshest snapshot
	for drained := false; !drained; {
		select {
		case snap := <-g.snapshotCh:
			g.lastState = snap
		default:
			drained = true
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.resetRequested = true
	}
	if g.resetRequested {
		g.resetRequested = false
		g.elapsed = 0
		if err := actor.Tell(g.ctx, g.worldPID, simulation.NewResetMessage()); err != nil {
			g.logger.Errorf("reset: %v", err)
		}
		return nil
	}

	// The world freezes on its final state once won, until a reset.
	if g.lastState.Won {
		return nil
	}

	dt := 1.0 / float64(ebiten.TPS())
	g.elapsed += dt
	msg, err := simulation.NewTickMessage(simulation.Frame{
		DeltaTime: dt,
		Elapsed:   g.elapsed,
		Input:     g.readInput(),
	})
	if err != nil {
		return err
	}
	if err := actor.Tell(g.ctx, g.worldPID, msg); err != nil {
		g.logger.Errorf("tick: %v", err)
	}
	return nil
}

// readInput turns keyboard and mouse state into a world Input. The pointer is
// ignored while it is over the panel.
func (g *Game) readInput() simulation.Input {
	var in simulation.Input
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		in.Rotate++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		in.Rotate--
	}

	mx, my := ebiten.CursorPosition()
	if !g.view.inside(mx, my) || g.panel.Contains(mx, my) {
		return in
	}
	cursor := g.view.toWorld(mx, my)
	in.Cursor = &cursor
	in.Grab = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	return in
}

func (g *Game) Layout(w, h int) (int, int) { return int(g.cfg.WorldWidth), int(g.cfg.WorldHeight) }

package game

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lao-tseu-is-alive/go-electron-funnel/pkg/simulation"
)

var (
	whiteImage = ebiten.NewImage(3, 3)

	background     = color.RGBA{R: 8, G: 10, B: 24, A: 255}
	electronCore   = color.RGBA{R: 150, G: 230, B: 255, A: 255}
	electronGlow   = color.RGBA{R: 40, G: 120, B: 255, A: 40}
	capturedCore   = color.RGBA{R: 255, G: 210, B: 120, A: 255}
	capturedGlow   = color.RGBA{R: 255, G: 120, B: 40, A: 40}
	influenceColor = color.RGBA{R: 120, G: 255, B: 160, A: 110}
	hooverColor    = color.RGBA{R: 255, G: 90, B: 200, A: 200}
	collectorColor = color.RGBA{R: 255, G: 220, B: 60, A: 255}
	snapColor      = color.RGBA{R: 255, G: 255, B: 255, A: 90}
	heldColor      = color.RGBA{R: 255, G: 255, B: 255, A: 200}
)

func init() {
	whiteImage.Fill(color.White)
}

func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	defer func() {
		g.drawAvg = g.drawAvg*0.95 + float64(time.Since(start).Microseconds())/1000.0*0.05
	}()

	screen.Fill(background)
	state := g.lastState
	if state == nil {
		return
	}

	for _, f := range state.Fixtures {
		g.drawFixture(screen, f)
	}
	g.drawAgents(screen, state.Agents)

	g.panel.Draw(screen)
	g.drawHUD(screen, state)

	if state.Won {
		msg := fmt.Sprintf("VICTORY !\n%s electrons funneled\npress R to play again", humanize.Comma(int64(state.Score)))
		ebitenutil.DebugPrintAt(screen, msg, int(g.cfg.WorldWidth/2-70), int(g.cfg.WorldHeight/2-20))
	}

	if g.widgetStats.Value {
		msg := fmt.Sprintf("FPS: %.2f\nTPS: %.2f\n\nUpdate: %.2fms\nDraw:   %.2fms\nTotal:  %.2fms",
			ebiten.ActualFPS(),
			ebiten.ActualTPS(),
			g.updateAvg,
			g.drawAvg,
			g.updateAvg+g.drawAvg)
		ebitenutil.DebugPrintAt(screen, msg, int(g.cfg.WorldWidth)-150, 10)
	}
}

func (g *Game) drawAgents(screen *ebiten.Image, agents []simulation.AgentView) {
	core := float32(g.widgetGlow.Value)
	glow := float32(g.widgetGlowRadius.Value)
	for _, a := range agents {
		x, y := g.view.toScreen(a.X, a.Y)
		coreClr, glowClr := electronCore, electronGlow
		if a.Captured {
			coreClr, glowClr = capturedCore, capturedGlow
		}
		if glow > core {
			vector.FillCircle(screen, x, y, glow, glowClr, true)
		}
		vector.FillCircle(screen, x, y, core, coreClr, true)
	}
}

func (g *Game) drawFixture(screen *ebiten.Image, f simulation.FixtureView) {
	x, y := g.view.toScreen(f.X, f.Y)

	switch f.Kind {
	case simulation.KindEmitter:
		drawNozzle(screen, x, y, f.Angle, f.HalfAngle)

	case simulation.KindInfluencer:
		vector.FillCircle(screen, x, y, 5, influenceColor, true)
		if g.widgetRadii.Value {
			vector.StrokeCircle(screen, x, y, float32(f.Radius), 1, influenceColor, true)
		}

	case simulation.KindHoover:
		hx, hy := heading(f.Angle)
		vector.StrokeLine(screen, x, y, x+float32(hx*24), y+float32(hy*24), 3, hooverColor, true)
		vector.FillCircle(screen, x, y, 6, hooverColor, true)
		if g.widgetCones.Value {
			g.drawCone(screen, x, y, f)
		}
		if g.widgetSnap.Value {
			vector.StrokeCircle(screen, x, y, float32(f.SnapRadius), 1, snapColor, true)
		}

	case simulation.KindCollector:
		vector.FillCircle(screen, x, y, float32(max(f.SnapRadius, 4)), collectorColor, true)
		if g.widgetRadii.Value {
			vector.StrokeCircle(screen, x, y, float32(f.Radius), 1, collectorColor, true)
		}
		if g.widgetSnap.Value {
			vector.StrokeCircle(screen, x, y, float32(f.SnapRadius), 1, snapColor, true)
		}
	}

	if f.Held {
		vector.StrokeRect(screen, x-10, y-10, 20, 20, 1, heldColor, true)
	}
}

// drawCone outlines the collection sector: two edges and the outer arc.
func (g *Game) drawCone(screen *ebiten.Image, x, y float32, f simulation.FixtureView) {
	const segments = 16
	r := f.Radius
	start, end := f.Angle-f.HalfAngle, f.Angle+f.HalfAngle

	px, py := heading(start)
	vector.StrokeLine(screen, x, y, x+float32(px*r), y+float32(py*r), 1, hooverColor, true)
	for i := 1; i <= segments; i++ {
		a := start + (end-start)*float64(i)/segments
		nx, ny := heading(a)
		vector.StrokeLine(screen,
			x+float32(px*r), y+float32(py*r),
			x+float32(nx*r), y+float32(ny*r),
			1, hooverColor, true)
		px, py = nx, ny
	}
	vector.StrokeLine(screen, x, y, x+float32(px*r), y+float32(py*r), 1, hooverColor, true)
}

// drawNozzle draws the emitter as a triangle opening along its spray cone.
func drawNozzle(screen *ebiten.Image, x, y float32, angle, halfAngle float64) {
	const length = 18.0
	spread := math.Max(halfAngle, 0.2)
	lx, ly := heading(angle + spread)
	rx, ry := heading(angle - spread)

	vertices := []ebiten.Vertex{
		{DstX: x, DstY: y, SrcX: 1, SrcY: 1, ColorR: 0.6, ColorG: 0.9, ColorB: 1, ColorA: 1},
		{DstX: x + float32(lx*length), DstY: y + float32(ly*length), SrcX: 1, SrcY: 1, ColorR: 0.2, ColorG: 0.5, ColorB: 1, ColorA: 1},
		{DstX: x + float32(rx*length), DstY: y + float32(ry*length), SrcX: 1, SrcY: 1, ColorR: 0.2, ColorG: 0.5, ColorB: 1, ColorA: 1},
	}
	screen.DrawTriangles(vertices, []uint16{0, 1, 2}, whiteImage, &ebiten.DrawTrianglesOptions{})
}

func (g *Game) drawHUD(screen *ebiten.Image, s *simulation.Snapshot) {
	next := "-"
	if !s.Won {
		next = humanize.Comma(int64(s.Next))
	}
	msg := fmt.Sprintf("Score: %s / %s\nLevel: %s\nElectrons: %s",
		humanize.Comma(int64(s.Score)), next, s.Level, humanize.Comma(int64(len(s.Agents))))
	if s.Dropped > 0 || s.Refused > 0 {
		msg += fmt.Sprintf("\nOverflow: %s dropped, %s refused",
			humanize.Comma(int64(s.Dropped)), humanize.Comma(int64(s.Refused)))
	}
	ebitenutil.DebugPrintAt(screen, msg, 10, int(g.cfg.WorldHeight)-70)
}

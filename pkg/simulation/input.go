package simulation

import (
	"math"

	"github.com/lao-tseu-is-alive/go-electron-funnel/pkg/geometry"
)

// Frame is what the render loop hands the world every tick.
type Frame struct {
	DeltaTime float64 // seconds since the previous tick
	Elapsed   float64 // seconds since start, drives the wobble
	Input     Input
}

// Input is the player's intent for one tick.
type Input struct {
	Rotate float64            // -1, 0 or +1; +1 turns the hoovers counter-clockwise
	Cursor *geometry.Vector2D // world coordinates, nil when the pointer is outside
	Grab   bool               // edge: pick up or drop the nearest fixture
}

func (w *World) applyInput(in Input, dt float64) {
	if in.Rotate != 0 {
		dir := math.Copysign(1, in.Rotate)
		for _, h := range w.reg.Hoovers.Rows() {
			h.Turn(dir, w.cfg.HooverTurnRate, dt)
		}
	}
	if in.Grab {
		w.toggleGrab(in.Cursor)
	}
	if in.Cursor == nil {
		return
	}
	w.fixtures = w.reg.Fixtures(w.fixtures[:0])
	for _, f := range w.fixtures {
		if !f.Held {
			continue
		}
		pos := *in.Cursor
		if f.Wobble != nil {
			pos.Y += f.Wobble.offset
		}
		f.Pose.Position = pos
	}
}

// toggleGrab drops the fixture under the cursor if it is held, otherwise
// picks it up. Only one fixture is grabbed at a time; fixtures held from
// configuration stay held until they are dropped explicitly.
func (w *World) toggleGrab(cursor *geometry.Vector2D) {
	var target *Fixture
	if cursor != nil {
		target = w.nearestFixture(*cursor, w.cfg.GrabRadius)
	}
	switch {
	case target != nil && target.Held:
		target.Held = false
		if target == w.grabbed {
			w.grabbed = nil
		}
	case target != nil:
		if w.grabbed != nil {
			w.grabbed.Held = false
		}
		target.Held = true
		w.grabbed = target
	case w.grabbed != nil:
		w.grabbed.Held = false
		w.grabbed = nil
	}
}

// nearestFixture returns the fixture closest to p, ignoring its wobble
// offset, within radius. Ties keep table order.
func (w *World) nearestFixture(p geometry.Vector2D, radius float64) *Fixture {
	var best *Fixture
	bestSq := radius * radius
	w.fixtures = w.reg.Fixtures(w.fixtures[:0])
	for _, f := range w.fixtures {
		pos := f.Pose.Position
		if f.Wobble != nil {
			pos.Y -= f.Wobble.offset
		}
		if d := pos.DistanceSquaredTo(p); d <= bestSq && (best == nil || d < bestSq) {
			best, bestSq = f, d
		}
	}
	return best
}

package simulation

import (
	"github.com/google/uuid"
	"github.com/lao-tseu-is-alive/go-electron-funnel/pkg/geometry"
)

// OverflowPolicy decides what happens when MaxAgents is reached.
type OverflowPolicy string

const (
	DropOldest  OverflowPolicy = "drop_oldest"
	RefuseSpawn OverflowPolicy = "refuse_spawn"
)

// SpawnAgent inserts an agent directly, bypassing emitters and the cap.
func (w *World) SpawnAgent(pose geometry.Pose, speed float64) *Agent {
	a := &Agent{ID: uuid.New(), Pose: pose, Speed: speed}
	w.reg.Agents.Insert(a)
	return a
}

// emit spawns one agent per emitter with a random spray angle and speed.
func (w *World) emit() {
	for _, e := range w.reg.Emitters.Rows() {
		if !w.makeRoom() {
			continue
		}
		spread := -e.HalfAngle + 2*e.HalfAngle*w.rng.Float64()
		speed := w.cfg.SpeedMin + (w.cfg.SpeedMax-w.cfg.SpeedMin)*w.rng.Float64()
		w.SpawnAgent(geometry.Pose{
			Position: e.Pose.Position,
			Angle:    geometry.NormalizeAngle(e.Pose.Angle + spread),
		}, speed)
	}
}

// makeRoom applies the overflow policy and reports whether a spawn may go ahead.
func (w *World) makeRoom() bool {
	limit := w.cfg.MaxAgents
	if limit <= 0 || w.reg.Agents.Len() < limit {
		return true
	}
	if !w.capReached {
		w.capReached = true
		w.logger.Debugf("agent cap %d reached, policy %s", limit, w.cfg.OverflowPolicy)
	}
	if w.cfg.OverflowPolicy == RefuseSpawn {
		w.refused++
		return false
	}
	n := w.reg.Agents.Len() - limit + 1
	w.reg.Agents.RemoveFirst(n)
	w.dropped += n
	return true
}

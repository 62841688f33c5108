package simulation

import "github.com/lao-tseu-is-alive/go-electron-funnel/pkg/steering"

// applyInfluence steers agents inside each field's radius toward its center.
// Fields apply one after another in table order.
func (w *World) applyInfluence(dt float64) {
	for _, f := range w.reg.Influencers.Rows() {
		center := f.Pose.Position
		w.scratch = w.grid.candidates(center, f.Radius, w.scratch[:0])
		for _, a := range w.scratch {
			d := a.Pose.Position.DistanceTo(center)
			if d > f.Radius || d == 0 {
				continue
			}
			steering.Step(&a.Pose, center, f.Magnitude, dt)
		}
	}
}

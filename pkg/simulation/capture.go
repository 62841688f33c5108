package simulation

import (
	"github.com/lao-tseu-is-alive/go-electron-funnel/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-electron-funnel/pkg/steering"
)

// applyCapture runs every hoover: sector pull plus snap-lock at the mouth.
func (w *World) applyCapture(dt float64) {
	for _, h := range w.reg.Hoovers.Rows() {
		center := h.Pose.Position
		start, end := h.Sector()
		reach := max(h.Radius, h.SnapRadius)

		w.scratch = w.grid.candidates(center, reach, w.scratch[:0])
		for _, a := range w.scratch {
			pos := a.Pose.Position
			if geometry.IsWithinSector(pos, center, start, end, h.Radius) {
				steering.Step(&a.Pose, center, h.Magnitude, dt)
				a.Captured = true
			}
			if geometry.IsWithinRadius(pos, center, h.SnapRadius) {
				a.Pose.Angle = h.Pose.Angle
			}
		}
	}
}

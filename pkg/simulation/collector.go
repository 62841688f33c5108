package simulation

import "github.com/lao-tseu-is-alive/go-electron-funnel/pkg/steering"

// applyCollectors aligns agents inside each collector's radius with its center
// and removes those inside the snap radius. An agent is collected at most
// once, by the first collector that reaches it.
func (w *World) applyCollectors() {
	collected := false
	for _, c := range w.reg.Collectors.Rows() {
		center := c.Pose.Position
		reach := max(c.Radius, c.SnapRadius)

		w.scratch = w.grid.candidates(center, reach, w.scratch[:0])
		for _, a := range w.scratch {
			if a.collected {
				continue
			}
			d := a.Pose.Position.DistanceTo(center)
			if d <= c.Radius {
				steering.Face(&a.Pose, center)
			}
			if d <= c.SnapRadius {
				a.collected = true
				collected = true
				w.collect(a, c)
			}
		}
	}
	if collected {
		w.reg.Agents.Retain(func(a *Agent) bool { return !a.collected })
	}
}

// collect scores one agent and drives the progression.
func (w *World) collect(a *Agent, c *Collector) {
	w.score++
	w.bus.Publish(NewCollectedEvent(w, a.ID, c.ID, w.score))
	for _, lvl := range w.progression.Observe(w.score) {
		w.logger.Infof("level %s entered at score %d", lvl, w.score)
		w.bus.Publish(NewLevelEvent(w, lvl, w.score))
	}
}

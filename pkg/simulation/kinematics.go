package simulation

// integrate moves every agent along its forward axis. Angles are untouched.
func (w *World) integrate(dt float64) {
	for _, a := range w.reg.Agents.Rows() {
		a.Pose.Position = a.Pose.Position.Add(a.Pose.Forward().Mul(a.Speed * dt))
	}
}

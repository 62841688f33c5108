package simulation

// AgentView is the render-side copy of an agent.
type AgentView struct {
	X, Y     float64
	Angle    float64
	Captured bool
}

// FixtureView is the render-side copy of any fixture. Fields that do not
// apply to a kind are zero.
type FixtureView struct {
	Kind       Kind
	X, Y       float64
	Angle      float64
	Radius     float64
	HalfAngle  float64
	SnapRadius float64
	Held       bool
	Wobbling   bool
}

// Snapshot is an immutable copy of the world handed to the UI.
type Snapshot struct {
	Agents   []AgentView
	Fixtures []FixtureView
	Score    int
	Level    Level
	Next     int // score needed for the next level, 0 once won
	Won      bool
	Tick     uint64
	Dropped  int
	Refused  int
}

// Snapshot copies the current state. It shares nothing with the world.
func (w *World) Snapshot() *Snapshot {
	s := &Snapshot{
		Agents:  make([]AgentView, 0, w.reg.Agents.Len()),
		Score:   w.score,
		Level:   w.progression.Level(),
		Won:     w.won,
		Tick:    w.tick,
		Dropped: w.dropped,
		Refused: w.refused,
	}
	if next, ok := w.progression.NextThreshold(); ok {
		s.Next = next
	}
	for _, a := range w.reg.Agents.Rows() {
		s.Agents = append(s.Agents, AgentView{
			X:        a.Pose.Position.X,
			Y:        a.Pose.Position.Y,
			Angle:    a.Pose.Angle,
			Captured: a.Captured,
		})
	}

	for _, e := range w.reg.Emitters.Rows() {
		v := fixtureView(&e.Fixture)
		v.HalfAngle = e.HalfAngle
		s.Fixtures = append(s.Fixtures, v)
	}
	for _, f := range w.reg.Influencers.Rows() {
		v := fixtureView(&f.Fixture)
		v.Radius = f.Radius
		s.Fixtures = append(s.Fixtures, v)
	}
	for _, h := range w.reg.Hoovers.Rows() {
		v := fixtureView(&h.Fixture)
		v.Radius, v.HalfAngle, v.SnapRadius = h.Radius, h.HalfAngle, h.SnapRadius
		s.Fixtures = append(s.Fixtures, v)
	}
	for _, c := range w.reg.Collectors.Rows() {
		v := fixtureView(&c.Fixture)
		v.Radius, v.SnapRadius = c.Radius, c.SnapRadius
		s.Fixtures = append(s.Fixtures, v)
	}
	return s
}

func fixtureView(f *Fixture) FixtureView {
	return FixtureView{
		Kind:     f.Kind,
		X:        f.Pose.Position.X,
		Y:        f.Pose.Position.Y,
		Angle:    f.Pose.Angle,
		Held:     f.Held,
		Wobbling: f.Wobble != nil,
	}
}

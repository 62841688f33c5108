package simulation

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/lao-tseu-is-alive/go-electron-funnel/pkg/geometry"
)

// ID is the opaque key of every record in the registry.
type ID = uuid.UUID

// Kind names the fixture tables.
type Kind int

const (
	KindEmitter Kind = iota
	KindInfluencer
	KindHoover
	KindCollector
)

var kindNames = [...]string{"emitter", "influencer", "hoover", "collector"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if name == s {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown fixture kind %q", s)
}

// Agent is a single electron. Speed is fixed at spawn.
type Agent struct {
	ID       ID
	Pose     geometry.Pose
	Speed    float64
	Captured bool // set once a hoover pulls on it, for recoloring

	collected bool
}

func (a *Agent) RecordID() ID { return a.ID }

// Wobble is the cosmetic vertical oscillation installed on a fixture by a
// level transition. offset is what is currently added to the fixture's Y.
type Wobble struct {
	Amplitude float64
	Phase     float64
	offset    float64
}

// Offset is the displacement currently applied.
func (w *Wobble) Offset() float64 { return w.offset }

// Fixture is the part shared by every non-agent entity.
type Fixture struct {
	ID     ID
	Kind   Kind
	Pose   geometry.Pose
	Wobble *Wobble
	Held   bool // follows the cursor
}

func (f *Fixture) RecordID() ID { return f.ID }

// Base exposes the shared part so the tables can be walked together.
func (f *Fixture) Base() *Fixture { return f }

// Emitter sprays agents inside a cone of ±HalfAngle around its facing.
type Emitter struct {
	Fixture
	HalfAngle float64
}

// InfluenceField steers every agent inside Radius toward its center.
type InfluenceField struct {
	Fixture
	Radius    float64
	Magnitude float64 // turn rate, rad/s
}

// CaptureField is the rotatable cone ("hoover"). Agents inside the sector are
// steered to the center; agents inside SnapRadius take its orientation.
type CaptureField struct {
	Fixture
	Radius     float64
	Magnitude  float64
	HalfAngle  float64
	SnapRadius float64
}

// Sector returns the boundary angles of the collection cone.
func (h *CaptureField) Sector() (start, end float64) {
	return h.Pose.Angle - h.HalfAngle, h.Pose.Angle + h.HalfAngle
}

// Turn integrates a rotate input (+1 counter-clockwise, -1 clockwise).
func (h *CaptureField) Turn(direction, rate, dt float64) {
	if direction == 0 {
		return
	}
	h.Pose.Rotate(direction * rate * dt)
}

// Collector pulls agents in and removes them at SnapRadius.
type Collector struct {
	Fixture
	Radius     float64
	SnapRadius float64
}

func newFixture(kind Kind, x, y, angle float64, held bool) Fixture {
	return Fixture{
		ID:   uuid.New(),
		Kind: kind,
		Pose: geometry.Pose{Position: geometry.Vector2D{X: x, Y: y}, Angle: angle},
		Held: held,
	}
}

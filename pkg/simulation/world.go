package simulation

import (
	"math/rand/v2"

	"github.com/lao-tseu-is-alive/go-electron-funnel/pkg/event"
	"github.com/tochemey/goakt/v3/log"
)

// World owns the registry and runs the fixed per-tick pipeline.
type World struct {
	cfg    *Config
	logger log.Logger
	bus    *event.Bus
	seed   uint64
	rng    *rand.Rand

	reg         *Registry
	grid        *grid
	progression *Progression
	wobble      *wobbler

	score int
	won   bool
	tick  uint64

	grabbed  *Fixture
	fixtures []*Fixture
	scratch  []*Agent

	dropped    int
	refused    int
	capReached bool
}

// Option configures a World.
type Option func(*World)

// WithSeed makes emission and simplex wobble reproducible.
func WithSeed(seed uint64) Option {
	return func(w *World) { w.seed = seed }
}

// WithBus shares an existing event bus instead of creating one.
func WithBus(bus *event.Bus) Option {
	return func(w *World) { w.bus = bus }
}

// NewWorld builds a world populated with the configured fixtures.
func NewWorld(cfg *Config, logger log.Logger, opts ...Option) *World {
	if logger == nil {
		logger = log.DiscardLogger
	}
	w := &World{
		cfg:    cfg,
		logger: logger,
		seed:   rand.Uint64(),
		reg:    NewRegistry(),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.bus == nil {
		w.bus = event.NewEventBus()
	}
	w.Reset()
	return w
}

// Reset rebuilds the world from its configuration: fixtures are recreated,
// agents dropped, score and level restarted.
func (w *World) Reset() {
	w.reg.Clear()
	w.rng = rand.New(rand.NewPCG(w.seed, w.seed^0x9e3779b97f4a7c15))
	w.wobble = newWobbler(w.cfg, int64(w.seed))
	w.score, w.won, w.tick = 0, false, 0
	w.dropped, w.refused, w.capReached = 0, 0, false
	w.grabbed = nil

	for _, e := range w.cfg.Emitters {
		w.AddEmitter(e)
	}
	for _, f := range w.cfg.Influencers {
		w.AddInfluencer(f)
	}
	for _, h := range w.cfg.Hoovers {
		w.AddHoover(h)
	}
	for _, c := range w.cfg.Collectors {
		w.AddCollector(c)
	}
	w.resizeGrid()

	w.progression = NewProgression(w.cfg.Thresholds, w.cfg.ThresholdMode)
	w.installLevelHooks()
	w.bus.Publish(&event.BaseEvent{EventType: event.WorldReset, Source: w})
}

func (w *World) installLevelHooks() {
	for name, kinds := range w.cfg.LevelWobble {
		level, err := ParseLevel(name)
		if err != nil {
			w.logger.Warnf("ignoring wobble for %q: %v", name, err)
			continue
		}
		var targets []Kind
		for _, k := range kinds {
			kind, err := ParseKind(k)
			if err != nil {
				w.logger.Warnf("ignoring wobble kind %q: %v", k, err)
				continue
			}
			targets = append(targets, kind)
		}
		w.progression.OnEnter(level, func(Level) { w.startWobble(targets) })
	}
	w.progression.OnEnter(Victory, func(Level) {
		w.won = true
		w.logger.Infof("victory at score %d", w.score)
		w.bus.Publish(&event.BaseEvent{EventType: event.Victory, Source: w})
	})
}

func (w *World) startWobble(kinds []Kind) {
	w.fixtures = w.reg.Fixtures(w.fixtures[:0])
	for i, f := range w.fixtures {
		for _, k := range kinds {
			if f.Kind == k && w.wobble.mark(f, i) {
				w.logger.Debugf("%s %s starts wobbling", f.Kind, f.ID)
			}
		}
	}
}

// AddEmitter places an emitter and returns it.
func (w *World) AddEmitter(c EmitterConfig) *Emitter {
	e := &Emitter{Fixture: newFixture(KindEmitter, c.X, c.Y, c.Angle, c.Held), HalfAngle: c.HalfAngle}
	w.reg.Emitters.Insert(e)
	return e
}

// AddInfluencer places an influence field and returns it.
func (w *World) AddInfluencer(c InfluenceConfig) *InfluenceField {
	f := &InfluenceField{
		Fixture:   newFixture(KindInfluencer, c.X, c.Y, 0, c.Held),
		Radius:    c.Radius,
		Magnitude: c.Magnitude,
	}
	w.reg.Influencers.Insert(f)
	w.resizeGrid()
	return f
}

// AddHoover places a directional capture field and returns it.
func (w *World) AddHoover(c HooverConfig) *CaptureField {
	h := &CaptureField{
		Fixture:    newFixture(KindHoover, c.X, c.Y, c.Angle, c.Held),
		Radius:     c.Radius,
		Magnitude:  c.Magnitude,
		HalfAngle:  c.HalfAngle,
		SnapRadius: snapRadiusOrDefault(c.SnapRadius),
	}
	w.reg.Hoovers.Insert(h)
	w.resizeGrid()
	return h
}

// AddCollector places a collector and returns it.
func (w *World) AddCollector(c CollectorConfig) *Collector {
	col := &Collector{
		Fixture:    newFixture(KindCollector, c.X, c.Y, 0, c.Held),
		Radius:     c.Radius,
		SnapRadius: snapRadiusOrDefault(c.SnapRadius),
	}
	w.reg.Collectors.Insert(col)
	w.resizeGrid()
	return col
}

// resizeGrid sizes cells to the largest reach so a query touches few cells.
func (w *World) resizeGrid() {
	reach := 0.0
	w.fixtures = w.reg.Fixtures(w.fixtures[:0])
	for _, f := range w.fixtures {
		reach = max(reach, w.reg.FixtureReach(f))
	}
	w.grid = newGrid(reach)
}

// Step advances the world by one tick.
func (w *World) Step(frame Frame) {
	dt := frame.DeltaTime
	w.tick++

	w.applyInput(frame.Input, dt)
	w.emit()
	w.integrate(dt)
	w.grid.rebuild(w.reg.Agents.Rows())
	w.applyInfluence(dt)
	w.applyCapture(dt)
	w.applyCollectors()

	w.fixtures = w.reg.Fixtures(w.fixtures[:0])
	w.wobble.apply(w.fixtures, frame.Elapsed)
	clear(w.scratch)
}

// Registry exposes the entity tables.
func (w *World) Registry() *Registry { return w.reg }

// Bus is the event bus collection, level and reset events are published on.
func (w *World) Bus() *event.Bus { return w.bus }

func (w *World) Config() *Config { return w.cfg }

// Score is the number of agents collected since the last reset.
func (w *World) Score() int { return w.score }

// Level is the current progression level.
func (w *World) Level() Level { return w.progression.Level() }

// Won reports whether Victory was reached.
func (w *World) Won() bool { return w.won }

// Tick counts Step calls since the last reset.
func (w *World) Tick() uint64 { return w.tick }

func (w *World) Progression() *Progression { return w.progression }

// Grabbed returns the fixture currently held by the cursor, or nil.
func (w *World) Grabbed() *Fixture { return w.grabbed }

// Dropped counts agents evicted by the drop-oldest cap policy.
func (w *World) Dropped() int { return w.dropped }

// Refused counts spawns rejected by the refuse-spawn cap policy.
func (w *World) Refused() int { return w.refused }

// Agents returns the live agent rows; callers must not keep the slice.
func (w *World) Agents() []*Agent { return w.reg.Agents.Rows() }

// Fixtures returns a fresh slice of every fixture in table order.
func (w *World) Fixtures() []*Fixture { return w.reg.Fixtures(nil) }

func (w *World) AgentCount() int { return w.reg.Agents.Len() }

func (w *World) Logger() log.Logger { return w.logger }

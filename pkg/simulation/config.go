package simulation

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/tochemey/goakt/v3/log"
)

//go:embed config.schema.json
var embeddedSchema []byte

const embeddedSchemaURL = "mem://electron-funnel/config.schema.json"

// DefaultSnapRadius is the snap distance of hoovers and collectors that do
// not set one.
const DefaultSnapRadius = 6.0

// Config describes a whole simulation run: the fixtures placed at start, the
// emission policy and the progression rules.
type Config struct {
	// World Dimensions (origin at the center, +Y up)
	WorldWidth  float64 `json:"worldWidth"`
	WorldHeight float64 `json:"worldHeight"`
	TicksPerSec int     `json:"ticksPerSecond"`

	// Emission
	SpeedMin       float64        `json:"speedMin"`
	SpeedMax       float64        `json:"speedMax"`
	MaxAgents      int            `json:"maxAgents"` // 0 means unlimited
	OverflowPolicy OverflowPolicy `json:"overflowPolicy"`

	// Fixtures
	Emitters    []EmitterConfig   `json:"emitters"`
	Influencers []InfluenceConfig `json:"influencers"`
	Hoovers     []HooverConfig    `json:"hoovers"`
	Collectors  []CollectorConfig `json:"collectors"`

	// Input
	HooverTurnRate float64 `json:"hooverTurnRate"` // rad/s while a rotate key is held
	GrabRadius     float64 `json:"grabRadius"`

	// Progression
	Thresholds    []int               `json:"thresholds"`
	ThresholdMode ThresholdMode       `json:"thresholdMode"`
	LevelWobble   map[string][]string `json:"levelWobble"` // level name -> fixture kinds

	// Wobble
	WobbleAmplitude float64  `json:"wobbleAmplitude"`
	WobbleWaveform  Waveform `json:"wobbleWaveform"`
	WobbleFrequency float64  `json:"wobbleFrequency"` // simplex only

	LogLevel string `json:"logLevel"`
}

// EmitterConfig places an emitter. Angles are in radians.
type EmitterConfig struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Angle     float64 `json:"angle"`
	HalfAngle float64 `json:"halfAngle"`
	Held      bool    `json:"held"`
}

// InfluenceConfig places an influence field.
type InfluenceConfig struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Radius    float64 `json:"radius"`
	Magnitude float64 `json:"magnitude"`
	Held      bool    `json:"held"`
}

// HooverConfig places a directional capture field.
type HooverConfig struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Angle      float64 `json:"angle"`
	Radius     float64 `json:"radius"`
	Magnitude  float64 `json:"magnitude"`
	HalfAngle  float64 `json:"halfAngle"`
	SnapRadius float64 `json:"snapRadius"`
	Held       bool    `json:"held"`
}

// CollectorConfig places a collector.
type CollectorConfig struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Radius     float64 `json:"radius"`
	SnapRadius float64 `json:"snapRadius"`
	Held       bool    `json:"held"`
}

func DefaultConfig() *Config {
	return &Config{
		WorldWidth:     1280,
		WorldHeight:    720,
		TicksPerSec:    60,
		SpeedMin:       75,
		SpeedMax:       100,
		MaxAgents:      4000,
		OverflowPolicy: DropOldest,
		Emitters: []EmitterConfig{
			{X: -500, Y: -30, Angle: -math.Pi / 2, HalfAngle: math.Pi / 12},
		},
		Influencers: []InfluenceConfig{
			{X: -250, Y: 120, Radius: 140, Magnitude: 1.2},
		},
		Hoovers: []HooverConfig{
			{X: 60, Y: -40, Angle: math.Pi / 2, Radius: 220, Magnitude: 2.5, HalfAngle: math.Pi / 8, SnapRadius: DefaultSnapRadius},
		},
		Collectors: []CollectorConfig{
			{X: 420, Y: 40, Radius: 70, SnapRadius: DefaultSnapRadius, Held: true},
		},
		HooverTurnRate: 2.0,
		GrabRadius:     40,
		Thresholds:     []int{300, 500, 700, 900, 1100},
		ThresholdMode:  ThresholdAtLeast,
		LevelWobble: map[string][]string{
			Level2.String(): {KindInfluencer.String()},
			Level4.String(): {KindCollector.String()},
		},
		WobbleAmplitude: 40,
		WobbleWaveform:  WaveSine,
		WobbleFrequency: 0.4,
		LogLevel:        "info",
	}
}

// LoadConfig reads configFile, validates it against schemaFile (or the
// embedded schema when schemaFile is empty) and overlays it on DefaultConfig.
func LoadConfig(configFile string, schemaFile string) (*Config, error) {
	sch, err := compileSchema(schemaFile)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	b, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}

	var v any
	if err := json.NewDecoder(bytes.NewReader(b)).Decode(&v); err != nil {
		return nil, fmt.Errorf("failed to decode config json: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	cfg := DefaultConfig()
	if m, ok := v.(map[string]any); ok {
		cfg.dropListedDefaults(m)
	}
	if err := json.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.fillSnapRadii()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// dropListedDefaults clears the default lists and maps the file overrides, so
// json.Unmarshal replaces them instead of merging into the default elements.
func (c *Config) dropListedDefaults(present map[string]any) {
	if _, ok := present["emitters"]; ok {
		c.Emitters = nil
	}
	if _, ok := present["influencers"]; ok {
		c.Influencers = nil
	}
	if _, ok := present["hoovers"]; ok {
		c.Hoovers = nil
	}
	if _, ok := present["collectors"]; ok {
		c.Collectors = nil
	}
	if _, ok := present["thresholds"]; ok {
		c.Thresholds = nil
	}
	if _, ok := present["levelWobble"]; ok {
		c.LevelWobble = nil
	}
}

// fillSnapRadii gives fixtures without a snap radius the default one.
func (c *Config) fillSnapRadii() {
	for i := range c.Hoovers {
		c.Hoovers[i].SnapRadius = snapRadiusOrDefault(c.Hoovers[i].SnapRadius)
	}
	for i := range c.Collectors {
		c.Collectors[i].SnapRadius = snapRadiusOrDefault(c.Collectors[i].SnapRadius)
	}
}

func snapRadiusOrDefault(r float64) float64 {
	if r <= 0 {
		return DefaultSnapRadius
	}
	return r
}

func compileSchema(schemaFile string) (*jsonschema.Schema, error) {
	if schemaFile != "" {
		return jsonschema.Compile(schemaFile)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(embeddedSchemaURL, bytes.NewReader(embeddedSchema)); err != nil {
		return nil, err
	}
	return c.Compile(embeddedSchemaURL)
}

// Validate checks the rules the schema cannot express.
func (c *Config) Validate() error {
	var errs []error
	if c.SpeedMax < c.SpeedMin {
		errs = append(errs, fmt.Errorf("speedMax %v below speedMin %v", c.SpeedMax, c.SpeedMin))
	}
	if len(c.Thresholds) != int(Victory) {
		errs = append(errs, fmt.Errorf("need %d thresholds, got %d", int(Victory), len(c.Thresholds)))
	}
	for i := 1; i < len(c.Thresholds); i++ {
		if c.Thresholds[i] <= c.Thresholds[i-1] {
			errs = append(errs, fmt.Errorf("thresholds must be strictly ascending, %d follows %d", c.Thresholds[i], c.Thresholds[i-1]))
		}
	}
	switch c.OverflowPolicy {
	case DropOldest, RefuseSpawn:
	default:
		errs = append(errs, fmt.Errorf("unknown overflow policy %q", c.OverflowPolicy))
	}
	switch c.ThresholdMode {
	case ThresholdAtLeast, ThresholdExact:
	default:
		errs = append(errs, fmt.Errorf("unknown threshold mode %q", c.ThresholdMode))
	}
	switch c.WobbleWaveform {
	case WaveSine, WaveSimplex:
	default:
		errs = append(errs, fmt.Errorf("unknown wobble waveform %q", c.WobbleWaveform))
	}
	for name, kinds := range c.LevelWobble {
		if _, err := ParseLevel(name); err != nil {
			errs = append(errs, err)
		}
		for _, k := range kinds {
			if _, err := ParseKind(k); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

// Logger builds the goakt logger for the configured level.
func (c *Config) Logger() log.Logger {
	level := log.InfoLevel
	switch c.LogLevel {
	case "debug":
		level = log.DebugLevel
	case "warn", "warning":
		level = log.WarningLevel
	case "error":
		level = log.ErrorLevel
	}
	return log.New(level, os.Stdout)
}

package simulation

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lao-tseu-is-alive/go-electron-funnel/pkg/geometry"
	"github.com/tochemey/goakt/v3/log"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfig_IsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadConfig_OverlaysDefaults(t *testing.T) {
	path := writeFile(t, "config.json", `{
		"maxAgents": 10,
		"overflowPolicy": "refuse_spawn",
		"thresholdMode": "exact",
		"collectors": [{"x": 1, "y": 2, "radius": 30}],
		"levelWobble": {"Level3": ["hoover"]}
	}`)

	cfg, err := LoadConfig(path, "")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	def := DefaultConfig()

	if cfg.MaxAgents != 10 || cfg.OverflowPolicy != RefuseSpawn || cfg.ThresholdMode != ThresholdExact {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if len(cfg.Collectors) != 1 {
		t.Fatalf("collectors = %d; want the file's list only", len(cfg.Collectors))
	}
	if c := cfg.Collectors[0]; c.X != 1 || c.Y != 2 || c.Radius != 30 || c.Held || c.SnapRadius != DefaultSnapRadius {
		t.Errorf("collector = %+v; defaults leaked into the file's element", c)
	}
	if len(cfg.LevelWobble) != 1 || len(cfg.LevelWobble["Level3"]) != 1 {
		t.Errorf("levelWobble = %v; want only Level3", cfg.LevelWobble)
	}
	if len(cfg.Emitters) != len(def.Emitters) || cfg.SpeedMin != def.SpeedMin {
		t.Error("fields missing from the file should keep their defaults")
	}
}

func TestLoadConfig_OmittedSnapRadiusStillCollects(t *testing.T) {
	path := writeFile(t, "config.json", `{
		"emitters": [],
		"influencers": [],
		"hoovers": [{"x": 300, "y": 0, "radius": 80, "magnitude": 1, "halfAngle": 0.3}],
		"collectors": [{"x": 0, "y": 0, "radius": 50}],
		"levelWobble": {}
	}`)

	cfg, err := LoadConfig(path, "")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got := cfg.Hoovers[0].SnapRadius; got != DefaultSnapRadius {
		t.Errorf("hoover snap radius = %v; want %v", got, DefaultSnapRadius)
	}

	w := NewWorld(cfg, log.DiscardLogger, WithSeed(7))
	near := w.SpawnAgent(geometry.Pose{Position: geometry.Vector2D{X: 1, Y: 0}}, 50)
	mouth := w.SpawnAgent(geometry.Pose{Position: geometry.Vector2D{X: 303, Y: 0}, Angle: 1}, 0)

	w.Step(Frame{DeltaTime: 1.0 / 60})

	if w.Score() != 1 {
		t.Errorf("score = %d; want 1", w.Score())
	}
	for _, a := range w.Agents() {
		if a == near {
			t.Error("agent next to the collector was not collected")
		}
	}
	if mouth.Pose.Angle != 0 {
		t.Errorf("agent at the hoover mouth has angle %v; want the hoover's 0", mouth.Pose.Angle)
	}
}

func TestLoadConfig_ExternalSchema(t *testing.T) {
	schema := writeFile(t, "config.schema.json", string(embeddedSchema))
	path := writeFile(t, "config.json", `{"wobbleWaveform": "simplex"}`)

	cfg, err := LoadConfig(path, schema)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.WobbleWaveform != WaveSimplex {
		t.Errorf("waveform = %q", cfg.WobbleWaveform)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"Unknown policy", `{"overflowPolicy": "sometimes"}`, "validation failed"},
		{"Unknown field", `{"gravity": 9.8}`, "validation failed"},
		{"Wrong threshold count", `{"thresholds": [1, 2, 3]}`, "validation failed"},
		{"Unknown level name", `{"levelWobble": {"Level7": ["hoover"]}}`, "validation failed"},
		{"Zero snap radius", `{"collectors": [{"x": 0, "y": 0, "radius": 30, "snapRadius": 0}]}`, "validation failed"},
		{"Descending thresholds", `{"thresholds": [5, 4, 3, 2, 1]}`, "strictly ascending"},
		{"Inverted speed range", `{"speedMin": 50, "speedMax": 10}`, "speedMax"},
		{"Broken json", `{"speedMin": `, "decode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "config.json", tt.content)
			_, err := LoadConfig(path, "")
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"), "")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected a not-exist error, got %v", err)
	}
}

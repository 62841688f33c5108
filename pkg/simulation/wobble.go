package simulation

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// Waveform shapes the wobble over time.
type Waveform string

const (
	WaveSine    Waveform = "sine"
	WaveSimplex Waveform = "simplex"
)

// wobbler computes the shared oscillation.
type wobbler struct {
	waveform  Waveform
	amplitude float64
	frequency float64
	noise     opensimplex.Noise
}

func newWobbler(cfg *Config, seed int64) *wobbler {
	return &wobbler{
		waveform:  cfg.WobbleWaveform,
		amplitude: cfg.WobbleAmplitude,
		frequency: cfg.WobbleFrequency,
		noise:     opensimplex.NewNormalized(seed),
	}
}

// wave is in [-1, 1].
func (wb *wobbler) wave(elapsed, phase float64) float64 {
	if wb.waveform == WaveSimplex {
		return 2*wb.noise.Eval2(elapsed*wb.frequency, phase) - 1
	}
	return math.Sin(elapsed + phase)
}

// apply moves every wobbling fixture to its new offset. Only the change in
// offset is added so held fixtures and repeated ticks never drift.
func (wb *wobbler) apply(fixtures []*Fixture, elapsed float64) {
	for _, f := range fixtures {
		if f.Wobble == nil {
			continue
		}
		next := f.Wobble.Amplitude * wb.wave(elapsed, f.Wobble.Phase)
		f.Pose.Position.Y += next - f.Wobble.offset
		f.Wobble.offset = next
	}
}

// mark installs a wobble on f. The phase is zero for the sine wave so that all
// fixtures share one oscillation, and spread per fixture for simplex noise.
func (wb *wobbler) mark(f *Fixture, index int) bool {
	if f.Wobble != nil {
		return false
	}
	phase := 0.0
	if wb.waveform == WaveSimplex {
		phase = float64(index) * 7.31
	}
	f.Wobble = &Wobble{Amplitude: wb.amplitude, Phase: phase}
	return true
}

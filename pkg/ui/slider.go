package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Slider is a horizontal value picker.
type Slider struct {
	Label    string
	Value    float64
	Min, Max float64
	X, Y     float64
	W, H     float64
}

// NewSlider creates a slider; value is clamped into [min, max].
func NewSlider(x, y, width float64, label string, min, max, value float64) *Slider {
	s := &Slider{Label: label, Min: min, Max: max, X: x, Y: y, W: width, H: 10}
	s.Value = s.clamp(value)
	return s
}

func (s *Slider) clamp(v float64) float64 {
	return max(s.Min, min(s.Max, v))
}

// SetFromCursor maps a horizontal cursor position onto the value range.
func (s *Slider) SetFromCursor(mx float64) {
	if s.W <= 0 {
		return
	}
	p := (mx - s.X) / s.W
	s.Value = s.clamp(s.Min + p*(s.Max-s.Min))
}

// Ratio is the filled part of the bar, in [0, 1].
func (s *Slider) Ratio() float64 {
	if s.Max == s.Min {
		return 0
	}
	return (s.Value - s.Min) / (s.Max - s.Min)
}

// Update checks for mouse interaction
func (s *Slider) Update() {
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if inRect(float64(mx), float64(my), s.X, s.Y, s.W, s.H) {
		s.SetFromCursor(float64(mx))
	}
}

func (s *Slider) Draw(screen *ebiten.Image) {
	vector.FillRect(screen, float32(s.X), float32(s.Y), float32(s.W), float32(s.H), color.RGBA{R: 80, G: 80, B: 80, A: 255}, true)
	vector.FillRect(screen, float32(s.X), float32(s.Y), float32(s.W*s.Ratio()), float32(s.H), color.RGBA{R: 120, G: 200, B: 255, A: 255}, true)
}

func (s *Slider) GetHeight() float64 { return s.H + 10 }

func (s *Slider) SetY(y float64) { s.Y = y }

func inRect(px, py, x, y, w, h float64) bool {
	return px >= x && px <= x+w && py >= y && py <= y+h
}

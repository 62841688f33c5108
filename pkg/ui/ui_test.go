package ui

import (
	"math"
	"testing"
)

func TestSlider_SetFromCursor(t *testing.T) {
	s := NewSlider(10, 0, 100, "Glow", 0, 50, 25)
	tests := []struct {
		name string
		mx   float64
		want float64
	}{
		{"Left edge", 10, 0},
		{"Middle", 60, 25},
		{"Right edge", 110, 50},
		{"Past the right edge", 500, 50},
		{"Past the left edge", -40, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.SetFromCursor(tt.mx)
			if math.Abs(s.Value-tt.want) > 1e-9 {
				t.Errorf("Value = %v; want %v", s.Value, tt.want)
			}
		})
	}
}

func TestNewSlider_ClampsInitialValue(t *testing.T) {
	if s := NewSlider(0, 0, 10, "x", 1, 2, 7); s.Value != 2 || s.Ratio() != 1 {
		t.Errorf("Value = %v, Ratio = %v", s.Value, s.Ratio())
	}
}

func TestCheckbox_TogglesOncePerPress(t *testing.T) {
	c := NewCheckbox(0, 0, "Radii", false)
	c.press(true, true)
	c.press(true, true)
	c.press(true, true)
	if !c.Value {
		t.Fatal("expected toggle on press")
	}
	c.press(true, false)
	c.press(true, true)
	if c.Value {
		t.Error("second press should toggle back")
	}
	c.press(false, true)
	if c.Value {
		t.Error("press outside must not toggle")
	}
}

func TestButton_FiresOncePerPress(t *testing.T) {
	clicks := 0
	b := NewButton(0, 0, 50, 20, "Reset", func() { clicks++ })
	b.press(true, true)
	b.press(true, true)
	b.press(true, false)
	b.press(true, true)
	if clicks != 2 {
		t.Errorf("clicks = %d; want 2", clicks)
	}
}

func TestUIPanel_LayoutAndCollapse(t *testing.T) {
	p := NewUIPanel(10, 10, 200, 400)
	p.AddSection("Overlay")
	radii := p.AddCheckbox("Field radii", true)
	cones := p.AddCheckbox("Hoover cones", true)
	p.AddSection("Actions")
	reset := p.AddButton("Reset", nil)

	if !(radii.Y < cones.Y && cones.Y < reset.Y) {
		t.Fatalf("widgets out of order: %v %v %v", radii.Y, cones.Y, reset.Y)
	}
	if !p.Contains(15, 15) || p.Contains(300, 15) {
		t.Error("Contains disagrees with the panel bounds")
	}

	before := reset.Y
	p.sections[0].Collapsed = true
	p.layout()
	if reset.Y >= before {
		t.Errorf("collapsing the first section should move the button up: %v -> %v", before, reset.Y)
	}
	if p.entries[0].visible || !p.entries[2].visible {
		t.Error("collapsed widgets must be hidden, others shown")
	}
	if i := p.sectionAt(20, p.sections[1].y+2); i != 1 {
		t.Errorf("sectionAt = %d; want 1", i)
	}
}

func TestUIPanel_ScrollIsClamped(t *testing.T) {
	p := NewUIPanel(0, 0, 200, 100)
	p.AddSection("Sliders")
	for range 10 {
		p.AddSlider("s", 0, 1, 0.5)
	}
	p.scroll(-1000)
	if want := p.contentHeight() - (p.Height - titleHeight) + 10; p.ScrollOffset != want {
		t.Errorf("ScrollOffset = %v; want %v", p.ScrollOffset, want)
	}
	p.scroll(1000)
	if p.ScrollOffset != 0 {
		t.Errorf("ScrollOffset = %v; want 0", p.ScrollOffset)
	}
}

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	titleHeight   = 30.0
	sectionHeight = 25.0
	labelHeight   = 15.0
)

// UIWidget is an interface for all UI widgets
type UIWidget interface {
	Update()
	Draw(screen *ebiten.Image)
	GetHeight() float64
	SetY(y float64)
}

// PanelSection groups widgets under a header that collapses on click.
type PanelSection struct {
	Title     string
	Collapsed bool
	y         float64
}

type panelEntry struct {
	label   string // drawn above the widget, empty for buttons
	widget  UIWidget
	section int
	visible bool
}

func (e *panelEntry) labelSpace() float64 {
	if e.label == "" {
		return 0
	}
	return labelHeight
}

func (e *panelEntry) height() float64 {
	return e.labelSpace() + e.widget.GetHeight()
}

// UIPanel stacks widgets in collapsible sections and scrolls with the wheel.
type UIPanel struct {
	X, Y          float64
	Width, Height float64
	Title         string
	ScrollOffset  float64

	BGColor     color.RGBA
	BorderColor color.RGBA

	sections      []PanelSection
	entries       []panelEntry
	headerPressed bool
}

func NewUIPanel(x, y, width, height float64) *UIPanel {
	return &UIPanel{
		X:           x,
		Y:           y,
		Width:       width,
		Height:      height,
		Title:       "Configuration",
		BGColor:     color.RGBA{R: 40, G: 40, B: 45, A: 230},
		BorderColor: color.RGBA{R: 100, G: 100, B: 110, A: 255},
	}
}

// AddSection starts a new section; widgets added afterwards belong to it.
func (p *UIPanel) AddSection(title string) {
	p.sections = append(p.sections, PanelSection{Title: title})
}

func (p *UIPanel) add(label string, w UIWidget) {
	if len(p.sections) == 0 {
		p.AddSection("")
	}
	p.entries = append(p.entries, panelEntry{label: label, widget: w, section: len(p.sections) - 1})
	p.layout()
}

func (p *UIPanel) AddSlider(label string, min, max, value float64) *Slider {
	s := NewSlider(p.X+10, 0, p.Width-20, label, min, max, value)
	p.add(label, s)
	return s
}

func (p *UIPanel) AddCheckbox(label string, value bool) *Checkbox {
	c := NewCheckbox(p.X+10, 0, label, value)
	p.add(label, c)
	return c
}

func (p *UIPanel) AddButton(label string, onClick func()) *Button {
	b := NewButton(p.X+10, 0, p.Width-20, 22, label, onClick)
	p.add("", b)
	return b
}

// Contains reports whether a screen point is over the panel, so callers can
// keep clicks on the panel away from the scene.
func (p *UIPanel) Contains(x, y int) bool {
	return inRect(float64(x), float64(y), p.X, p.Y, p.Width, p.Height)
}

// layout assigns screen positions to section headers and widgets, and marks
// widgets that are collapsed or scrolled out of view.
func (p *UIPanel) layout() {
	y := p.Y + titleHeight - p.ScrollOffset
	for si := range p.sections {
		sec := &p.sections[si]
		sec.y = y
		y += sectionHeight
		for i := range p.entries {
			e := &p.entries[i]
			if e.section != si {
				continue
			}
			if sec.Collapsed {
				e.visible = false
				continue
			}
			top := y + e.labelSpace()
			e.widget.SetY(top)
			e.visible = y >= p.Y+titleHeight && top+e.widget.GetHeight() <= p.Y+p.Height
			y += e.height()
		}
	}
}

// contentHeight is the height of everything below the title when unscrolled.
func (p *UIPanel) contentHeight() float64 {
	h := 0.0
	for si, sec := range p.sections {
		h += sectionHeight
		if sec.Collapsed {
			continue
		}
		for _, e := range p.entries {
			if e.section == si {
				h += e.height()
			}
		}
	}
	return h
}

func (p *UIPanel) scroll(dy float64) {
	maxScroll := max(0, p.contentHeight()-(p.Height-titleHeight)+10)
	p.ScrollOffset = max(0, min(maxScroll, p.ScrollOffset-dy*20))
}

// sectionAt returns the index of the header under the point, or -1.
func (p *UIPanel) sectionAt(x, y float64) int {
	for i, sec := range p.sections {
		if inRect(x, y, p.X+5, sec.y, p.Width-10, sectionHeight-5) {
			return i
		}
	}
	return -1
}

func (p *UIPanel) Update() {
	mx, my := ebiten.CursorPosition()
	if p.Contains(mx, my) {
		if _, dy := ebiten.Wheel(); dy != 0 {
			p.scroll(dy)
		}
	}

	down := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if down && !p.headerPressed {
		if i := p.sectionAt(float64(mx), float64(my)); i >= 0 {
			p.sections[i].Collapsed = !p.sections[i].Collapsed
		}
	}
	p.headerPressed = down
	p.layout()

	for _, e := range p.entries {
		if e.visible {
			e.widget.Update()
		}
	}
}

func (p *UIPanel) Draw(screen *ebiten.Image) {
	vector.FillRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		p.BGColor, true)
	vector.StrokeRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		2, p.BorderColor, true)
	ebitenutil.DebugPrintAt(screen, p.Title, int(p.X+10), int(p.Y+5))

	for _, sec := range p.sections {
		if sec.Title == "" || sec.y < p.Y+titleHeight-sectionHeight || sec.y > p.Y+p.Height-sectionHeight {
			continue
		}
		vector.FillRect(screen,
			float32(p.X+5), float32(sec.y),
			float32(p.Width-10), 20,
			color.RGBA{R: 60, G: 60, B: 70, A: 255}, true)
		marker := "-"
		if sec.Collapsed {
			marker = "+"
		}
		ebitenutil.DebugPrintAt(screen, marker+" "+sec.Title, int(p.X+10), int(sec.y+3))
	}

	for _, e := range p.entries {
		if !e.visible {
			continue
		}
		if e.label != "" {
			ebitenutil.DebugPrintAt(screen, e.label, int(p.X+10), int(widgetTop(e.widget)-labelHeight))
		}
		e.widget.Draw(screen)
	}
}

func widgetTop(w UIWidget) float64 {
	switch w := w.(type) {
	case *Slider:
		return w.Y
	case *Checkbox:
		return w.Y
	case *Button:
		return w.Y
	}
	return 0
}

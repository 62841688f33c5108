package game

import (
	"math"

	"github.com/lao-tseu-is-alive/go-electron-funnel/pkg/geometry"
)

// viewport maps world coordinates (origin at the center, +Y up) to screen
// pixels (origin top-left, +Y down).
type viewport struct {
	w, h float64
}

func (v viewport) toScreen(x, y float64) (float32, float32) {
	return float32(x + v.w/2), float32(v.h/2 - y)
}

func (v viewport) toWorld(sx, sy int) geometry.Vector2D {
	return geometry.Vector2D{X: float64(sx) - v.w/2, Y: v.h/2 - float64(sy)}
}

func (v viewport) inside(sx, sy int) bool {
	return sx >= 0 && sy >= 0 && float64(sx) < v.w && float64(sy) < v.h
}

// heading is the on-screen unit vector of a world angle.
func heading(angle float64) (float64, float64) {
	return -math.Sin(angle), -math.Cos(angle)
}

package simulation

import (
	"math"

	"github.com/lao-tseu-is-alive/go-electron-funnel/pkg/geometry"
)

type gridKey struct {
	x, y int
}

// grid buckets agents by cell so fields only look at nearby agents. It is
// rebuilt once per tick after kinematics; steering changes angles only, so
// the buckets stay valid until the next rebuild.
type grid struct {
	cellSize float64
	cells    map[gridKey][]*Agent
}

func newGrid(cellSize float64) *grid {
	return &grid{
		cellSize: math.Max(cellSize, 10.0),
		cells:    make(map[gridKey][]*Agent),
	}
}

// cellIndices floors so that cells left of and below the origin do not
// collapse into cell 0.
func (g *grid) cellIndices(x, y float64) (int, int) {
	return int(math.Floor(x / g.cellSize)), int(math.Floor(y / g.cellSize))
}

// rebuild re-buckets the agents, keeping the slices' capacity between ticks.
// Cells left empty are dropped so the map follows the occupied area.
func (g *grid) rebuild(agents []*Agent) {
	for k, cell := range g.cells {
		clear(cell)
		g.cells[k] = cell[:0]
	}
	for _, a := range agents {
		gx, gy := g.cellIndices(a.Pose.Position.X, a.Pose.Position.Y)
		key := gridKey{x: gx, y: gy}
		g.cells[key] = append(g.cells[key], a)
	}
	for k, cell := range g.cells {
		if len(cell) == 0 {
			delete(g.cells, k)
		}
	}
}

// candidates appends to dst every agent in the cells overlapping the square
// of half-side radius around center. Callers apply their own exact range test.
func (g *grid) candidates(center geometry.Vector2D, radius float64, dst []*Agent) []*Agent {
	minGx, minGy := g.cellIndices(center.X-radius, center.Y-radius)
	maxGx, maxGy := g.cellIndices(center.X+radius, center.Y+radius)

	for gx := minGx; gx <= maxGx; gx++ {
		for gy := minGy; gy <= maxGy; gy++ {
			if agents, ok := g.cells[gridKey{x: gx, y: gy}]; ok {
				dst = append(dst, agents...)
			}
		}
	}
	return dst
}

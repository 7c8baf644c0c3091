package layout

import (
	"math"

	"github.com/avulnerador/RogueMap-Gen/pkg/errors"
	"github.com/avulnerador/RogueMap-Gen/pkg/runmap"
)

// MaxOffsetRadius is the default limit on how far a node may be dragged
// from its computed position.
const MaxOffsetRadius = 150.0

// Drag returns a copy of m with the node's manual offset moved by (dx, dy).
// The accumulated offset is clamped to radius (MaxOffsetRadius when radius
// is not positive) and X/Y shift by the change in effective offset, so a
// drag shows immediately without re-running Solve.
func Drag(m runmap.Map, id int, dx, dy, radius float64) (runmap.Map, error) {
	if radius <= 0 {
		radius = MaxOffsetRadius
	}
	r, i, ok := m.Find(id)
	if !ok {
		return runmap.Map{}, errors.New(errors.ErrCodeNodeNotFound, "node %d not found", id)
	}

	out := m.Clone()
	n := &out.Floors[r][i]
	ox, oy := ClampOffset(n.ManualOffsetX+dx, n.ManualOffsetY+dy, radius)
	n.X += ox - n.ManualOffsetX
	n.Y += oy - n.ManualOffsetY
	n.ManualOffsetX, n.ManualOffsetY = ox, oy
	return out, nil
}

// ClampOffset scales (x, y) back onto the circle of the given radius when
// it lies outside it.
func ClampOffset(x, y, radius float64) (float64, float64) {
	if d := math.Hypot(x, y); d > radius {
		ratio := radius / d
		return x * ratio, y * ratio
	}
	return x, y
}

package layout

import (
	"math"

	"github.com/avulnerador/RogueMap-Gen/pkg/runmap"
)

// Bounds is the axis-aligned box enclosing node centres.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Width returns the horizontal span of the box.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns the vertical span of the box.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// Center returns the midpoint of the box.
func (b Bounds) Center() (x, y float64) { return (b.MinX + b.MaxX) / 2, (b.MinY + b.MaxY) / 2 }

// Pad returns the box grown by p on every side.
func (b Bounds) Pad(p float64) Bounds {
	return Bounds{MinX: b.MinX - p, MinY: b.MinY - p, MaxX: b.MaxX + p, MaxY: b.MaxY + p}
}

// MapBounds returns the box around every node of m. An empty map yields
// the zero box.
func MapBounds(m runmap.Map) Bounds {
	b := Bounds{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)}
	seen := false
	for _, f := range m.Floors {
		for _, n := range f {
			seen = true
			b.MinX = min(b.MinX, n.X)
			b.MinY = min(b.MinY, n.Y)
			b.MaxX = max(b.MaxX, n.X)
			b.MaxY = max(b.MaxY, n.Y)
		}
	}
	if !seen {
		return Bounds{}
	}
	return b
}

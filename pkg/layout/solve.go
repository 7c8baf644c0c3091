package layout

import (
	"cmp"
	"slices"

	"github.com/avulnerador/RogueMap-Gen/pkg/config"
	"github.com/avulnerador/RogueMap-Gen/pkg/rng"
	"github.com/avulnerador/RogueMap-Gen/pkg/runmap"
)

const (
	// NodeVisualSize approximates a rendered node's diameter, border included.
	NodeVisualSize = 70.0

	// CollisionBuffer is the extra spacing enforced between jittered nodes.
	CollisionBuffer = 30.0

	mainAxisJitter = 0.7
)

// MinGap is the minimum centre-to-centre distance the collision sweep keeps
// between neighbours of a jittered floor.
const MinGap = NodeVisualSize + CollisionBuffer

// slot is a node position in floor-relative axes.
type slot struct {
	index       int
	cross, main float64
}

// Solve returns a copy of m with X and Y assigned. src drives the jitter and
// may be nil to use the global source.
func Solve(m runmap.Map, cfg config.MapConfig, src rng.Source) runmap.Map {
	out := m.Clone()
	src = rng.OrGlobal(src)
	jitter := cfg.RandomizeNodePositions
	k := cfg.JitterIntensity / 100

	for r, floor := range out.Floors {
		slots := grid(len(floor), r, cfg)
		if jitter {
			for i := range slots {
				if floor[i].Row == 0 {
					continue
				}
				slots[i].cross += (src.Float64() - 0.5) * cfg.SpacingX * k
				slots[i].main += (src.Float64() - 0.5) * cfg.SpacingY * k * mainAxisJitter
			}
			separate(slots)
		}
		for _, s := range slots {
			n := &floor[s.index]
			n.X, n.Y = s.cross, s.main
			if cfg.IsHorizontal() {
				n.X, n.Y = s.main, s.cross
			}
			n.X += n.ManualOffsetX
			n.Y += n.ManualOffsetY
		}
	}
	return out
}

// StructuralPosition returns where Solve places the node without jitter or
// manual offset.
func StructuralPosition(m runmap.Map, cfg config.MapConfig, id int) (x, y float64, ok bool) {
	r, i, ok := m.Find(id)
	if !ok {
		return 0, 0, false
	}
	s := grid(len(m.Floors[r]), r, cfg)[i]
	if cfg.IsHorizontal() {
		return s.main, s.cross, true
	}
	return s.cross, s.main, true
}

func grid(n, r int, cfg config.MapConfig) []slot {
	slots := make([]slot, n)
	start := -float64(n-1) * cfg.SpacingX / 2
	for i := range slots {
		slots[i] = slot{
			index: i,
			cross: start + float64(i)*cfg.SpacingX,
			main:  float64(r) * cfg.SpacingY,
		}
	}
	return slots
}

// separate sweeps the floor in cross order, pushing each node forward until
// it is MinGap past its predecessor. slots is reordered in place.
func separate(slots []slot) {
	slices.SortStableFunc(slots, func(a, b slot) int { return cmp.Compare(a.cross, b.cross) })
	for i := 1; i < len(slots); i++ {
		if d := slots[i].cross - slots[i-1].cross; d < MinGap {
			slots[i].cross += MinGap - d
		}
	}
}

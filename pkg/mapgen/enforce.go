package mapgen

import (
	"github.com/avulnerador/RogueMap-Gen/pkg/config"
	"github.com/avulnerador/RogueMap-Gen/pkg/nodetype"
	"github.com/avulnerador/RogueMap-Gen/pkg/rng"
	"github.com/avulnerador/RogueMap-Gen/pkg/runmap"
)

// Enforce returns a copy of m whose boss floor matches cfg.
//
// Only interior floors are considered. The configured boss floor collapses
// to a single mini-boss: the first locked node survives if there is one,
// otherwise the first node. An unlocked mini-boss left alone on any other
// floor is demoted to a random room type and the floor is refilled to a
// size in [MinNodesPerRow, MaxNodesPerRow]. A locked mini-boss elsewhere is
// kept as the author placed it. Every floor that changes is reconnected on
// both sides; other floors keep their nodes and edges.
//
// Enforce does not assign coordinates.
func (e *Engine) Enforce(m runmap.Map, cfg config.MapConfig) runmap.Map {
	out := m.Clone()
	out.SyncNextID()

	for r := 1; r < len(out.Floors)-1; r++ {
		floor := out.Floors[r]
		if cfg.HasIntermediateBoss && r == cfg.BossRow {
			e.enforceBossFloor(&out, r)
			continue
		}
		if len(floor) == 1 && floor[0].IsMiniBoss() && !floor[0].IsLocked {
			e.demoteFloor(&out, cfg, r)
		}
	}
	return out
}

func (e *Engine) enforceBossFloor(m *runmap.Map, r int) {
	floor := m.Floors[r]
	if len(floor) == 1 && floor[0].IsMiniBoss() {
		if !floor[0].IsLocked {
			floor[0].ApplyBossVisuals()
		}
		e.reconnect(m, r)
		return
	}

	var survivor runmap.Node
	switch i := lockedIndex(floor); {
	case i >= 0:
		survivor = floor[i].Clone()
	case len(floor) > 0:
		survivor = floor[0].Clone()
	default:
		survivor = e.newNode(m, r, runmap.TypeMiniBoss)
	}
	survivor.Type = runmap.TypeMiniBoss
	survivor.IconClass = e.miniBossIcon()
	survivor.Connections = []int{}
	if !survivor.IsLocked {
		survivor.ApplyBossVisuals()
	}

	e.logger().Debug("collapsed boss floor", "floor", r, "survivor", survivor.ID, "dropped", max(0, len(floor)-1))
	m.Floors[r] = runmap.Floor{survivor}
	e.reconnect(m, r)
}

func (e *Engine) demoteFloor(m *runmap.Map, cfg config.MapConfig, r int) {
	floor := m.Floors[r]
	n := &floor[0]
	n.Type = e.randomType()
	n.IconClass = e.Registry.Icon(n.Type, nodetype.FallbackIcon)
	n.Connections = []int{}
	n.ClearVisuals()

	target := rng.IntBetween(e.rand(), cfg.MinNodesPerRow, cfg.MaxNodesPerRow)
	for range max(0, target-1) {
		floor = append(floor, e.newNode(m, r, e.randomType()))
	}
	m.Floors[r] = floor

	e.logger().Debug("demoted stale boss floor", "floor", r, "nodes", len(floor))
	e.reconnect(m, r)
}

// reconnect reruns the connector on both boundaries of floor r.
func (e *Engine) reconnect(m *runmap.Map, r int) {
	if r > 0 {
		e.Connect(m.Floors[r-1], m.Floors[r])
	}
	if r < len(m.Floors)-1 {
		e.Connect(m.Floors[r], m.Floors[r+1])
	}
}

func lockedIndex(f runmap.Floor) int {
	for i, n := range f {
		if n.IsLocked {
			return i
		}
	}
	return -1
}

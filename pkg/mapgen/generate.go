package mapgen

import (
	"maps"
	"slices"

	"github.com/avulnerador/RogueMap-Gen/pkg/config"
	"github.com/avulnerador/RogueMap-Gen/pkg/errors"
	"github.com/avulnerador/RogueMap-Gen/pkg/layout"
	"github.com/avulnerador/RogueMap-Gen/pkg/rng"
	"github.com/avulnerador/RogueMap-Gen/pkg/runmap"
)

// seat is a locked node waiting to be placed, with the index it held.
type seat struct {
	node  runmap.Node
	index int
}

// Generate builds a new map for cfg. When existing is non-nil its locked
// nodes are carried over (same id, type, icon and visuals) and fresh ids
// start above every id it contains. A locked boss follows the final floor
// when numRows changes. The returned map has coordinates.
//
// Generate returns an INVALID_CONFIG error for an out-of-range cfg and a
// LOCK_CONFLICT error when a locked node cannot keep its place.
func (e *Engine) Generate(cfg config.MapConfig, existing *runmap.Map) (runmap.Map, error) {
	if err := cfg.Validate(); err != nil {
		return runmap.Map{}, err
	}

	seats, err := lockedSeats(cfg, existing)
	if err != nil {
		return runmap.Map{}, err
	}

	final := cfg.FinalFloor()
	m := runmap.Map{Floors: make([]runmap.Floor, final+1)}
	if existing != nil {
		m.NextID = max(existing.NextID, existing.MaxID()+1)
	}
	m.NextID = max(m.NextID, 1)

	if s, ok := seats[0]; ok {
		m.Floors[0] = runmap.Floor{carry(s[0].node, 0)}
	} else {
		m.Floors[0] = runmap.Floor{e.newNode(&m, 0, runmap.TypeStart)}
	}
	for r := 1; r <= final; r++ {
		m.Floors[r] = e.buildFloor(&m, cfg, r, seats[r])
	}

	for r := 0; r < final; r++ {
		e.Connect(m.Floors[r], m.Floors[r+1])
	}

	e.logger().Debug("generated map",
		"floors", len(m.Floors),
		"nodes", m.NodeCount(),
		"edges", m.EdgeCount(),
		"locked", countSeats(seats))

	return layout.Solve(m, cfg, e.rand()), nil
}

func (e *Engine) buildFloor(m *runmap.Map, cfg config.MapConfig, r int, locked []seat) runmap.Floor {
	for _, s := range locked {
		if s.node.IsMiniBoss() {
			return runmap.Floor{carry(s.node, r)}
		}
	}

	isFinal, isBoss := r == cfg.FinalFloor(), cfg.IsBossFloor(r)
	count := 1
	if !isFinal && !isBoss {
		count = max(rng.IntBetween(e.rand(), cfg.MinNodesPerRow, cfg.MaxNodesPerRow), len(locked))
	}

	floor := make(runmap.Floor, count)
	taken := make([]bool, count)
	for _, s := range locked {
		i := freeSlot(taken, min(s.index, count-1))
		floor[i] = carry(s.node, r)
		taken[i] = true
	}
	for i := range floor {
		if taken[i] {
			continue
		}
		switch {
		case isFinal:
			floor[i] = e.newNode(m, r, runmap.TypeBoss)
		case isBoss:
			floor[i] = e.newNode(m, r, runmap.TypeMiniBoss)
		default:
			floor[i] = e.newNode(m, r, e.randomType())
		}
	}
	return floor
}

// carry copies a locked node onto floor r with its edges cleared.
func carry(n runmap.Node, r int) runmap.Node {
	n = n.Clone()
	n.Row = r
	n.Connections = []int{}
	return n
}

// freeSlot returns the free index nearest to want, preferring later slots
// on ties. There is always a free slot when it is called.
func freeSlot(taken []bool, want int) int {
	for d := range len(taken) {
		if i := want + d; i < len(taken) && !taken[i] {
			return i
		}
		if i := want - d; i >= 0 && !taken[i] {
			return i
		}
	}
	return want
}

// lockedSeats groups the locked nodes of existing by floor and checks that
// every one of them can be placed in a map generated for cfg.
func lockedSeats(cfg config.MapConfig, existing *runmap.Map) (map[int][]seat, error) {
	seats := make(map[int][]seat)
	if existing == nil {
		return seats, nil
	}

	final := cfg.FinalFloor()
	for r, f := range existing.Floors {
		for i, n := range f {
			if !n.IsLocked {
				continue
			}
			to := r
			if n.Type == runmap.TypeBoss {
				to = final
			}
			if err := checkSeat(cfg, to, n); err != nil {
				return nil, err
			}
			seats[to] = append(seats[to], seat{node: n, index: i})
		}
	}

	for _, r := range slices.Sorted(maps.Keys(seats)) {
		s := seats[r]
		single := r == 0 || r == final || cfg.IsBossFloor(r)
		for _, x := range s {
			single = single || x.node.IsMiniBoss()
		}
		switch {
		case single && len(s) > 1:
			return nil, errors.New(errors.ErrCodeLockConflict,
				"floor %d holds a single room but %d of its nodes are locked", r, len(s))
		case len(s) > cfg.MaxNodesPerRow:
			return nil, errors.New(errors.ErrCodeLockConflict,
				"floor %d has %d locked nodes, more than maxNodesPerRow (%d)", r, len(s), cfg.MaxNodesPerRow)
		}
	}
	return seats, nil
}

func checkSeat(cfg config.MapConfig, r int, n runmap.Node) error {
	final := cfg.FinalFloor()
	conflict := func(format string, args ...any) error {
		return errors.New(errors.ErrCodeLockConflict, "locked node %d on floor %d: "+format,
			append([]any{n.ID, r}, args...)...)
	}

	switch {
	case r > final:
		return conflict("the map now ends at floor %d", final)
	case r == 0 && n.Type != runmap.TypeStart:
		return conflict("only the start room may be locked on floor 0")
	case r != 0 && n.Type == runmap.TypeStart:
		return conflict("start rooms belong on floor 0")
	case r == final && n.IsMiniBoss():
		return conflict("a mini-boss cannot occupy the final floor")
	case r == final && n.Type != runmap.TypeBoss:
		return conflict("the final floor holds only the boss")
	case cfg.IsBossFloor(r) && !n.IsMiniBoss():
		return conflict("floor %d is the mini-boss floor", r)
	}
	return nil
}

func countSeats(seats map[int][]seat) int {
	n := 0
	for _, s := range seats {
		n += len(s)
	}
	return n
}

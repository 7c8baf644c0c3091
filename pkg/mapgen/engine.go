package mapgen

import (
	"github.com/charmbracelet/log"

	"github.com/avulnerador/RogueMap-Gen/pkg/nodetype"
	"github.com/avulnerador/RogueMap-Gen/pkg/rng"
	"github.com/avulnerador/RogueMap-Gen/pkg/runmap"
)

// roomTypes is the distribution of ordinary rooms.
var roomTypes = rng.NewWeighted(
	rng.Choice[string]{Value: runmap.TypeNormal, Weight: 0.45},
	rng.Choice[string]{Value: runmap.TypeElite, Weight: 0.10},
	rng.Choice[string]{Value: runmap.TypeEvent, Weight: 0.20},
	rng.Choice[string]{Value: runmap.TypeShop, Weight: 0.15},
	rng.Choice[string]{Value: runmap.TypeTreasure, Weight: 0.10},
)

// RoomTypes returns the keys ordinary rooms are drawn from.
func RoomTypes() []string { return roomTypes.Values() }

// Engine generates and maintains run maps.
//
// The zero value is usable: it reads icons from an empty registry (so every
// node gets a fallback icon), draws from the global random source and logs
// to the default logger. An Engine holds no map state; callers serialize
// calls that operate on the same map.
type Engine struct {
	Registry nodetype.Registry
	Rand     rng.Source
	Logger   *log.Logger
}

// New creates an engine. A nil registry uses nodetype.Defaults, a nil
// source the global generator and a nil logger log.Default().
func New(reg nodetype.Registry, src rng.Source, logger *log.Logger) *Engine {
	if reg == nil {
		reg = nodetype.Defaults()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Engine{Registry: reg, Rand: rng.OrGlobal(src), Logger: logger}
}

func (e *Engine) rand() rng.Source { return rng.OrGlobal(e.Rand) }

func (e *Engine) logger() *log.Logger {
	if e.Logger == nil {
		return log.Default()
	}
	return e.Logger
}

// randomType draws an ordinary room type.
func (e *Engine) randomType() string { return roomTypes.Pick(e.rand()) }

// newNode allocates a room of the given type on floor r. Mini-bosses get
// the default boss visuals.
func (e *Engine) newNode(m *runmap.Map, r int, typ string) runmap.Node {
	n := runmap.Node{
		ID:          m.AllocID(),
		Row:         r,
		Type:        typ,
		IconClass:   e.Registry.Icon(typ, nodetype.FallbackIcon),
		Connections: []int{},
	}
	if typ == runmap.TypeMiniBoss {
		n.ApplyBossVisuals()
	}
	return n
}

// miniBossIcon is the icon given to nodes turned into a mini-boss.
func (e *Engine) miniBossIcon() string {
	return e.Registry.Icon(runmap.TypeMiniBoss, nodetype.FallbackMiniBossIcon)
}

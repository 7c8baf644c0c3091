package mapgen

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/avulnerador/RogueMap-Gen/pkg/config"
	"github.com/avulnerador/RogueMap-Gen/pkg/rng"
	"github.com/avulnerador/RogueMap-Gen/pkg/runmap"
)

// scripted is a Source that always rolls the same value and never shuffles.
type scripted struct{ roll float64 }

func (s scripted) Float64() float64            { return s.roll }
func (s scripted) IntN(int) int                { return 0 }
func (s scripted) Shuffle(int, func(i, j int)) {}

func newEngine(seed uint64) *Engine {
	return New(nil, rng.New(seed), log.New(io.Discard))
}

// testConfig returns a config without an intermediate boss.
func testConfig(rows, lo, hi int) config.MapConfig {
	c := config.Default()
	c.NumRows = rows
	c.MinNodesPerRow = lo
	c.MaxNodesPerRow = hi
	c.HasIntermediateBoss = false
	c.BossRow = 1
	return c
}

func withBoss(c config.MapConfig, row int) config.MapConfig {
	c.HasIntermediateBoss = true
	c.BossRow = row
	return c
}

func mustGenerate(t *testing.T, e *Engine, cfg config.MapConfig, existing *runmap.Map) runmap.Map {
	t.Helper()
	m, err := e.Generate(cfg, existing)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return m
}

// floorIDs returns the ids of every floor.
func floorIDs(m runmap.Map) [][]int {
	out := make([][]int, len(m.Floors))
	for r, f := range m.Floors {
		out[r] = f.IDs()
	}
	return out
}

// checkMap asserts the structural invariants every engine result keeps.
func checkMap(t *testing.T, m runmap.Map, cfg config.MapConfig) {
	t.Helper()
	if err := m.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if got, want := len(m.Floors), cfg.NumRows+1; got != want {
		t.Fatalf("floors = %d, want %d", got, want)
	}
	if cfg.HasIntermediateBoss {
		f := m.Floors[cfg.BossRow]
		if len(f) != 1 || !f[0].IsMiniBoss() {
			t.Fatalf("boss floor %d = %v, want a single mini-boss", cfg.BossRow, f.IDs())
		}
	}
	if m.NextID <= m.MaxID() {
		t.Fatalf("NextID %d not above max id %d", m.NextID, m.MaxID())
	}
}

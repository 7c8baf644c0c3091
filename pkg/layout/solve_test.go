package layout

import (
	"math"
	"slices"
	"testing"

	"github.com/avulnerador/RogueMap-Gen/pkg/config"
	"github.com/avulnerador/RogueMap-Gen/pkg/rng"
	"github.com/avulnerador/RogueMap-Gen/pkg/runmap"
)

// threeFloors builds start -> {1,2,3} -> boss.
func threeFloors() runmap.Map {
	return runmap.Map{
		Floors: []runmap.Floor{
			{{ID: 0, Row: 0, Type: runmap.TypeStart, Connections: []int{1, 2, 3}}},
			{
				{ID: 1, Row: 1, Type: runmap.TypeNormal, Connections: []int{4}},
				{ID: 2, Row: 1, Type: runmap.TypeShop, Connections: []int{4}},
				{ID: 3, Row: 1, Type: runmap.TypeEvent, Connections: []int{4}},
			},
			{{ID: 4, Row: 2, Type: runmap.TypeBoss, Connections: []int{}}},
		},
		NextID: 5,
	}
}

func TestSolveGrid(t *testing.T) {
	cfg := config.Default()
	cfg.SpacingX, cfg.SpacingY = 100, 150

	tests := []struct {
		orientation string
		id          int
		wantX       float64
		wantY       float64
	}{
		{config.Vertical, 0, 0, 0},
		{config.Vertical, 1, -100, 150},
		{config.Vertical, 2, 0, 150},
		{config.Vertical, 3, 100, 150},
		{config.Vertical, 4, 0, 300},
		{config.Horizontal, 1, 150, -100},
		{config.Horizontal, 3, 150, 100},
		{config.Horizontal, 4, 300, 0},
	}

	for _, tt := range tests {
		cfg.Orientation = tt.orientation
		m := Solve(threeFloors(), cfg, rng.New(1))
		n, _ := m.Node(tt.id)
		if n.X != tt.wantX || n.Y != tt.wantY {
			t.Errorf("%s node %d at (%v, %v), want (%v, %v)", tt.orientation, tt.id, n.X, n.Y, tt.wantX, tt.wantY)
		}
		x, y, _ := StructuralPosition(threeFloors(), cfg, tt.id)
		if x != tt.wantX || y != tt.wantY {
			t.Errorf("StructuralPosition(%d) = (%v, %v)", tt.id, x, y)
		}
	}
}

func TestSolveDoesNotMutateInput(t *testing.T) {
	in := threeFloors()
	_ = Solve(in, config.Default(), rng.New(1))
	if in.Floors[1][0].X != 0 {
		t.Error("Solve modified its input")
	}
}

func TestSolveManualOffset(t *testing.T) {
	m := threeFloors()
	m.Floors[1][2].ManualOffsetX = 12
	m.Floors[1][2].ManualOffsetY = -8

	cfg := config.Default()
	cfg.SpacingX, cfg.SpacingY = 100, 150
	out := Solve(m, cfg, nil)
	n := out.Floors[1][2]
	if n.X != 112 || n.Y != 142 {
		t.Errorf("offset node at (%v, %v), want (112, 142)", n.X, n.Y)
	}
}

func TestSolveJitter(t *testing.T) {
	cfg := config.Default()
	cfg.RandomizeNodePositions = true
	cfg.JitterIntensity = 200
	cfg.SpacingX, cfg.SpacingY = 30, 100

	for seed := range uint64(20) {
		out := Solve(threeFloors(), cfg, rng.New(seed))

		if start := out.Floors[0][0]; start.X != 0 || start.Y != 0 {
			t.Fatalf("seed %d: start node jittered to (%v, %v)", seed, start.X, start.Y)
		}

		xs := make([]float64, 0, 3)
		for _, n := range out.Floors[1] {
			xs = append(xs, n.X)
			if math.Abs(n.Y-100) > 100*2*0.7/2+1e-9 {
				t.Errorf("seed %d: node %d main-axis jitter too large: y=%v", seed, n.ID, n.Y)
			}
		}
		slices.Sort(xs)
		for i := 1; i < len(xs); i++ {
			if xs[i]-xs[i-1] < MinGap-1e-9 {
				t.Errorf("seed %d: neighbours %v and %v closer than %v", seed, xs[i-1], xs[i], MinGap)
			}
		}
	}
}

func TestSolveReproducible(t *testing.T) {
	cfg := config.Default()
	cfg.RandomizeNodePositions = true
	a := Solve(threeFloors(), cfg, rng.New(7))
	b := Solve(threeFloors(), cfg, rng.New(7))
	for r := range a.Floors {
		for i := range a.Floors[r] {
			if a.Floors[r][i].X != b.Floors[r][i].X || a.Floors[r][i].Y != b.Floors[r][i].Y {
				t.Fatalf("node %d differs between runs", a.Floors[r][i].ID)
			}
		}
	}
}

func TestSeparate(t *testing.T) {
	slots := []slot{{index: 0, cross: 50}, {index: 1, cross: 0}, {index: 2, cross: 300}}
	separate(slots)
	got := []float64{slots[0].cross, slots[1].cross, slots[2].cross}
	want := []float64{0, 100, 300}
	if !slices.Equal(got, want) {
		t.Errorf("separate() = %v, want %v", got, want)
	}
	if slots[1].index != 0 {
		t.Errorf("pushed slot lost its index: %+v", slots[1])
	}
}

func TestMapBounds(t *testing.T) {
	cfg := config.Default()
	cfg.SpacingX, cfg.SpacingY = 100, 150
	b := MapBounds(Solve(threeFloors(), cfg, nil))
	if b.Width() != 200 || b.Height() != 300 {
		t.Errorf("bounds = %+v", b)
	}
	if x, y := b.Center(); x != 0 || y != 150 {
		t.Errorf("Center() = (%v, %v)", x, y)
	}
	if p := b.Pad(10); p.Width() != 220 {
		t.Errorf("Pad(10).Width() = %v", p.Width())
	}
	if (MapBounds(runmap.Map{})) != (Bounds{}) {
		t.Error("empty map should have zero bounds")
	}
}

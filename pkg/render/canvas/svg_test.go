package canvas

import (
	"bytes"
	"strings"
	"testing"

	"github.com/avulnerador/RogueMap-Gen/pkg/config"
	"github.com/avulnerador/RogueMap-Gen/pkg/runmap"
)

func testMap() runmap.Map {
	size := runmap.MiniBossSize
	glow := runmap.MiniBossGlow
	return runmap.Map{Floors: []runmap.Floor{
		{{ID: 1, Row: 0, Type: runmap.TypeStart, X: 0, Y: 0, Connections: []int{2, 3}}},
		{
			{ID: 2, Row: 1, Type: runmap.TypeElite, X: -100, Y: 200, Connections: []int{4}, IsLocked: true},
			{ID: 3, Row: 1, Type: runmap.TypeShop, X: 100, Y: 200, Connections: []int{4}},
		},
		{{ID: 4, Row: 2, Type: runmap.TypeBoss, X: 0, Y: 400, Connections: []int{}, CustomSize: &size, CustomGlow: &glow}},
	}}
}

func TestRenderSVG(t *testing.T) {
	svg := string(RenderSVG(testMap()))

	if !strings.HasPrefix(svg, "<svg") || !strings.HasSuffix(svg, "</svg>\n") {
		t.Fatalf("not an svg document:\n%s", svg)
	}
	if got := strings.Count(svg, `class="edge"`); got != 4 {
		t.Errorf("edges = %d, want 4", got)
	}
	if got := strings.Count(svg, `class="room"`); got != 4 {
		t.Errorf("rooms = %d, want 4", got)
	}
	if !strings.Contains(svg, `filter="url(#glow)"`) {
		t.Error("boss glow missing")
	}
	if !strings.Contains(svg, `stroke-width="4"`) {
		t.Error("locked room should have a thick outline")
	}
	if !strings.Contains(svg, "<script") {
		t.Error("interaction script missing")
	}
}

func TestRenderSVGOptions(t *testing.T) {
	v := config.DefaultVisual()
	v.NodeShape = config.ShapeSquare
	v.GlobalGlowEnabled = false
	v.ShowFloorNumber = false

	svg := string(RenderSVG(testMap(), WithVisual(v), WithStatic(), WithHighlight(1)))

	if strings.Contains(svg, "<circle") {
		t.Error("square shape should not draw circles")
	}
	if strings.Contains(svg, "glow") {
		t.Error("glow disabled but filter emitted")
	}
	if strings.Contains(svg, "floor-number") {
		t.Error("floor numbers disabled but emitted")
	}
	if strings.Contains(svg, "<script") {
		t.Error("static output should not carry a script")
	}
	if got := strings.Count(svg, `stroke="`+v.LineColorOutgoing+`"`); got != 2 {
		t.Errorf("outgoing highlighted edges = %d, want 2", got)
	}
}

func TestRenderSVGDeterministic(t *testing.T) {
	a := RenderSVG(testMap())
	b := RenderSVG(testMap())
	if !bytes.Equal(a, b) {
		t.Error("rendering the same map twice produced different output")
	}
}

func TestBuildEdgesTrim(t *testing.T) {
	edges := buildEdges(testMap(), 8)
	if len(edges) != 4 {
		t.Fatalf("edges = %d, want 4", len(edges))
	}
	e := edges[0]
	if e.from != 1 || e.to != 2 {
		t.Fatalf("first edge = %d->%d, want 1->2", e.from, e.to)
	}
	if e.x1 == 0 && e.y1 == 0 {
		t.Error("edge start should be trimmed away from the room centre")
	}
}

func TestRenderSVGEmpty(t *testing.T) {
	svg := string(RenderSVG(runmap.Map{}))
	if !strings.Contains(svg, "</svg>") {
		t.Error("empty map should still produce a document")
	}
}

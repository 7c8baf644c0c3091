package nodelink

import (
	"strings"
	"testing"

	"github.com/avulnerador/RogueMap-Gen/pkg/config"
	"github.com/avulnerador/RogueMap-Gen/pkg/nodetype"
	"github.com/avulnerador/RogueMap-Gen/pkg/runmap"
)

func testMap() runmap.Map {
	return runmap.Map{Floors: []runmap.Floor{
		{{ID: 1, Row: 0, Type: runmap.TypeStart, Connections: []int{2, 3}}},
		{
			{ID: 2, Row: 1, Type: runmap.TypeElite, Connections: []int{4}, IsLocked: true, IconClass: "fas fa-dragon"},
			{ID: 3, Row: 1, Type: runmap.TypeShop, Connections: []int{4}},
		},
		{{ID: 4, Row: 2, Type: runmap.TypeBoss, Connections: []int{}}},
	}}
}

func TestToDOT(t *testing.T) {
	reg := nodetype.Defaults()
	dot := ToDOT(testMap(), reg, Options{})

	for _, want := range []string{
		"rankdir=TB",
		"subgraph floor_0",
		"subgraph floor_2",
		"rank=same",
		"1 -> 2;",
		"1 -> 3;",
		"3 -> 4;",
		`fillcolor="` + reg[runmap.TypeBoss].Color + `"`,
		"penwidth=3",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
	if strings.Contains(dot, "floor: ") {
		t.Error("compact labels should not carry details")
	}
}

func TestToDOTOptions(t *testing.T) {
	cfg := config.Default()
	cfg.Orientation = config.Horizontal

	dot := ToDOT(testMap(), nodetype.Defaults(), OptionsFor(cfg, true))

	if !strings.Contains(dot, "rankdir=LR") {
		t.Error("horizontal maps should use rankdir=LR")
	}
	if !strings.Contains(dot, `floor: 1\nicon: fas fa-dragon\nlocked`) {
		t.Errorf("detailed label missing:\n%s", dot)
	}
}

func TestFmtLabelUnknownType(t *testing.T) {
	got := fmtLabel(runmap.Node{ID: 9, Type: "secret"}, nodetype.Defaults(), false)
	if got != "secret\n#9" {
		t.Errorf("label = %q", got)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="10pt" height="20pt" viewBox="0.00 0.00 100.40 200.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100.40 200.00" width="100" height="200"><g/></svg>`
	if out != want {
		t.Errorf("got  %s\nwant %s", out, want)
	}

	plain := []byte("<svg><g/></svg>")
	if got := normalizeViewBox(plain); string(got) != string(plain) {
		t.Error("svg without viewBox should be untouched")
	}
}

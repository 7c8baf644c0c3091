package nodetype

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/avulnerador/RogueMap-Gen/pkg/errors"
	"github.com/avulnerador/RogueMap-Gen/pkg/runmap"
)

func TestDefaultsCoverGeneratedTypes(t *testing.T) {
	reg := Defaults()
	for _, key := range []string{
		runmap.TypeStart, runmap.TypeBoss, runmap.TypeMiniBoss, runmap.TypeNormal,
		runmap.TypeElite, runmap.TypeEvent, runmap.TypeShop, runmap.TypeTreasure,
	} {
		if reg[key].Icon == "" || reg[key].Color == "" {
			t.Errorf("default %q is incomplete: %+v", key, reg[key])
		}
	}
	if err := reg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestIcon(t *testing.T) {
	reg := Registry{"shop": {Icon: "fas fa-coins"}, "blank": {}}
	tests := []struct {
		key  string
		want string
	}{
		{"shop", "fas fa-coins"},
		{"blank", FallbackIcon},
		{"missing", FallbackIcon},
	}
	for _, tt := range tests {
		if got := reg.Icon(tt.key, FallbackIcon); got != tt.want {
			t.Errorf("Icon(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
	var empty Registry
	if got := empty.Icon("boss", FallbackMiniBossIcon); got != FallbackMiniBossIcon {
		t.Errorf("nil registry Icon() = %q", got)
	}
}

func TestParse(t *testing.T) {
	reg, err := Parse([]byte(`
types:
  elite:
    icon: fas fa-fire
  campfire:
    name: Campfire
    color: "#f97316"
    icon: fas fa-campground
    editable: true
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	elite := reg[runmap.TypeElite]
	if elite.Icon != "fas fa-fire" {
		t.Errorf("elite icon = %q", elite.Icon)
	}
	if elite.Color != Defaults()[runmap.TypeElite].Color {
		t.Errorf("elite color not kept from defaults: %q", elite.Color)
	}
	if c := reg["campfire"]; c.Name != "Campfire" || !c.Editable {
		t.Errorf("campfire = %+v", c)
	}
	if len(reg) != len(Defaults())+1 {
		t.Errorf("len = %d", len(reg))
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		data string
		code errors.Code
	}{
		{"bad key", "types:\n  Camp Fire:\n    icon: x\n", errors.ErrCodeInvalidInput},
		{"bad yaml", "types: [\n", errors.ErrCodeInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); !errors.Is(err, tt.code) {
				t.Errorf("Parse() = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "types.yaml")
	if err := os.WriteFile(path, []byte("types:\n  shop:\n    name: Market\n"), 0644); err != nil {
		t.Fatal(err)
	}
	reg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := reg.Name(runmap.TypeShop); got != "Market" {
		t.Errorf("Name(shop) = %q", got)
	}
	if got := reg.Name("unknown"); got != "unknown" {
		t.Errorf("Name(unknown) = %q", got)
	}
}

func TestApplyTheme(t *testing.T) {
	reg := Defaults()
	reg["campfire"] = Type{Color: "#f97316"}

	out, err := reg.ApplyTheme("ember")
	if err != nil {
		t.Fatalf("ApplyTheme: %v", err)
	}
	theme, _ := LookupTheme("ember")
	if out[runmap.TypeBoss].Color != theme[runmap.TypeBoss] {
		t.Errorf("boss color = %q", out[runmap.TypeBoss].Color)
	}
	if out["campfire"].Color != "#f97316" {
		t.Errorf("unthemed key recolored: %q", out["campfire"].Color)
	}
	if reg[runmap.TypeBoss].Color != Defaults()[runmap.TypeBoss].Color {
		t.Error("ApplyTheme modified the receiver")
	}

	if _, err := reg.ApplyTheme("neon"); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("unknown theme error = %v", err)
	}
}

func TestThemesSorted(t *testing.T) {
	names := Themes()
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("Themes() not sorted: %v", names)
		}
	}
	if _, ok := LookupTheme("default"); !ok {
		t.Error("default theme missing")
	}
}

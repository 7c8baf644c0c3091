package nodetype

import (
	"maps"
	"slices"

	"github.com/avulnerador/RogueMap-Gen/pkg/errors"
	"github.com/avulnerador/RogueMap-Gen/pkg/runmap"
)

// Theme maps type keys to colors. Keys a theme does not name keep their
// current color.
type Theme map[string]string

var themes = map[string]Theme{
	"default": {
		runmap.TypeStart:    "#10b981",
		runmap.TypeBoss:     "#dc2626",
		runmap.TypeMiniBoss: "#9333ea",
		runmap.TypeNormal:   "#64748b",
		runmap.TypeElite:    "#ea580c",
		runmap.TypeEvent:    "#2563eb",
		runmap.TypeShop:     "#ca8a04",
		runmap.TypeTreasure: "#0891b2",
	},
	"ember": {
		runmap.TypeStart:    "#fbbf24",
		runmap.TypeBoss:     "#7f1d1d",
		runmap.TypeMiniBoss: "#b91c1c",
		runmap.TypeNormal:   "#78350f",
		runmap.TypeElite:    "#c2410c",
		runmap.TypeEvent:    "#d97706",
		runmap.TypeShop:     "#a16207",
		runmap.TypeTreasure: "#f59e0b",
	},
	"frost": {
		runmap.TypeStart:    "#e0f2fe",
		runmap.TypeBoss:     "#1e3a8a",
		runmap.TypeMiniBoss: "#3730a3",
		runmap.TypeNormal:   "#64748b",
		runmap.TypeElite:    "#0369a1",
		runmap.TypeEvent:    "#38bdf8",
		runmap.TypeShop:     "#0d9488",
		runmap.TypeTreasure: "#a5f3fc",
	},
	"forest": {
		runmap.TypeStart:    "#bef264",
		runmap.TypeBoss:     "#14532d",
		runmap.TypeMiniBoss: "#166534",
		runmap.TypeNormal:   "#57534e",
		runmap.TypeElite:    "#854d0e",
		runmap.TypeEvent:    "#65a30d",
		runmap.TypeShop:     "#a16207",
		runmap.TypeTreasure: "#facc15",
	},
	"mono": {
		runmap.TypeStart:    "#f8fafc",
		runmap.TypeBoss:     "#020617",
		runmap.TypeMiniBoss: "#1e293b",
		runmap.TypeNormal:   "#64748b",
		runmap.TypeElite:    "#334155",
		runmap.TypeEvent:    "#94a3b8",
		runmap.TypeShop:     "#475569",
		runmap.TypeTreasure: "#cbd5e1",
	},
}

// Themes returns the names of the built-in themes, sorted.
func Themes() []string {
	return slices.Sorted(maps.Keys(themes))
}

// LookupTheme returns a copy of the named theme.
func LookupTheme(name string) (Theme, bool) {
	t, ok := themes[name]
	return maps.Clone(t), ok
}

// ApplyTheme returns a copy of the registry recolored with the named theme.
func (r Registry) ApplyTheme(name string) (Registry, error) {
	theme, ok := themes[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown theme %q", name)
	}
	out := r.Clone()
	for key, t := range out {
		if c, ok := theme[key]; ok {
			t.Color = c
			out[key] = t
		}
	}
	return out, nil
}

// Package nodetype defines the room type registry: display name, colors and
// icon for every type key a map may contain.
//
// The engine only reads icons from the registry, with fixed fallbacks, so
// an incomplete registry never blocks generation. Renderers read colors.
//
// Registries can be extended or overridden from YAML:
//
//	types:
//	  elite:
//	    color: "#dc2626"
//	    icon: fas fa-dragon
//	  campfire:
//	    name: Campfire
//	    color: "#f97316"
//	    icon: fas fa-fire
//	    editable: true
//
// Entries are merged field by field over [Defaults].
package nodetype

import (
	"maps"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/avulnerador/RogueMap-Gen/pkg/errors"
	"github.com/avulnerador/RogueMap-Gen/pkg/runmap"
)

// Type describes how one room type is presented.
type Type struct {
	Name      string `json:"name" yaml:"name" bson:"name"`
	Color     string `json:"color" yaml:"color" bson:"color"`
	Icon      string `json:"icon" yaml:"icon" bson:"icon"`
	Editable  bool   `json:"editable" yaml:"editable" bson:"editable"`
	IsFixed   bool   `json:"isFixed" yaml:"is_fixed" bson:"isFixed"`
	IconColor string `json:"iconColor" yaml:"icon_color" bson:"iconColor"`
}

// Registry maps type keys to their presentation.
type Registry map[string]Type

// Defaults returns the built-in registry covering every type the engine
// generates.
func Defaults() Registry {
	return Registry{
		runmap.TypeStart:    {Name: "Start", Color: "#10b981", Icon: "fas fa-play", IsFixed: true, IconColor: "#ffffff"},
		runmap.TypeBoss:     {Name: "Boss", Color: "#dc2626", Icon: "fas fa-skull", IsFixed: true, IconColor: "#ffffff"},
		runmap.TypeMiniBoss: {Name: "Mini Boss", Color: "#9333ea", Icon: "fas fa-skull-crossbones", Editable: true, IconColor: "#ffffff"},
		runmap.TypeNormal:   {Name: "Enemy", Color: "#64748b", Icon: "fas fa-khanda", Editable: true, IconColor: "#ffffff"},
		runmap.TypeElite:    {Name: "Elite", Color: "#ea580c", Icon: "fas fa-dragon", Editable: true, IconColor: "#ffffff"},
		runmap.TypeEvent:    {Name: "Event", Color: "#2563eb", Icon: "fas fa-question", Editable: true, IconColor: "#ffffff"},
		runmap.TypeShop:     {Name: "Shop", Color: "#ca8a04", Icon: "fas fa-coins", Editable: true, IconColor: "#ffffff"},
		runmap.TypeTreasure: {Name: "Treasure", Color: "#0891b2", Icon: "fas fa-gem", Editable: true, IconColor: "#ffffff"},
	}
}

// Icon returns the icon class registered for key, or fallback when the key
// is missing or has no icon.
func (r Registry) Icon(key, fallback string) string {
	if t, ok := r[key]; ok && t.Icon != "" {
		return t.Icon
	}
	return fallback
}

// Color returns the color registered for key, or fallback.
func (r Registry) Color(key, fallback string) string {
	if t, ok := r[key]; ok && t.Color != "" {
		return t.Color
	}
	return fallback
}

// Name returns the display name for key, falling back to the key itself.
func (r Registry) Name(key string) string {
	if t, ok := r[key]; ok && t.Name != "" {
		return t.Name
	}
	return key
}

// Keys returns the registered keys in sorted order.
func (r Registry) Keys() []string {
	return slices.Sorted(maps.Keys(r))
}

// Clone returns a copy of the registry.
func (r Registry) Clone() Registry {
	return maps.Clone(r)
}

// Validate checks every key against the type key rules.
func (r Registry) Validate() error {
	for _, k := range r.Keys() {
		if err := errors.ValidateTypeKey(k); err != nil {
			return err
		}
	}
	return nil
}

// file is the YAML layout. Pointer fields distinguish "absent" from
// "set to the zero value" when merging.
type file struct {
	Types map[string]struct {
		Name      *string `yaml:"name"`
		Color     *string `yaml:"color"`
		Icon      *string `yaml:"icon"`
		Editable  *bool   `yaml:"editable"`
		IsFixed   *bool   `yaml:"is_fixed"`
		IconColor *string `yaml:"icon_color"`
	} `yaml:"types"`
}

// Load reads a YAML registry file and merges it over the defaults.
func Load(path string) (Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read node types %s", path)
	}
	return Parse(data)
}

// Parse merges YAML registry data over the defaults.
func Parse(data []byte) (Registry, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse node types")
	}

	reg := Defaults()
	for key, e := range f.Types {
		t := reg[key]
		set(&t.Name, e.Name)
		set(&t.Color, e.Color)
		set(&t.Icon, e.Icon)
		set(&t.Editable, e.Editable)
		set(&t.IsFixed, e.IsFixed)
		set(&t.IconColor, e.IconColor)
		reg[key] = t
	}
	if err := reg.Validate(); err != nil {
		return nil, err
	}
	return reg, nil
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

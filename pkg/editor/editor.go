// Package editor is the map editing service shared by the CLI, the terminal
// viewer and the HTTP API.
//
// An [Editor] applies one author action to a [document.Document] and
// returns the updated document: the engine runs with the document's own
// configuration and node types, and coordinates are recomputed after every
// structural change. Documents are values; the editor never retains them.
package editor

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/avulnerador/RogueMap-Gen/pkg/config"
	"github.com/avulnerador/RogueMap-Gen/pkg/document"
	"github.com/avulnerador/RogueMap-Gen/pkg/errors"
	"github.com/avulnerador/RogueMap-Gen/pkg/layout"
	"github.com/avulnerador/RogueMap-Gen/pkg/mapgen"
	"github.com/avulnerador/RogueMap-Gen/pkg/nodetype"
	"github.com/avulnerador/RogueMap-Gen/pkg/observability"
	"github.com/avulnerador/RogueMap-Gen/pkg/rng"
	"github.com/avulnerador/RogueMap-Gen/pkg/runmap"
)

// Editor applies author actions to documents.
//
// The Editor is stateless apart from its random source and logger. The
// random source is not safe for concurrent use, so callers serialize calls
// sharing an Editor.
type Editor struct {
	Rand   rng.Source
	Logger *log.Logger
}

// New creates an editor. A nil source uses the global generator and a nil
// logger log.Default().
func New(src rng.Source, logger *log.Logger) *Editor {
	if logger == nil {
		logger = log.Default()
	}
	return &Editor{Rand: rng.OrGlobal(src), Logger: logger}
}

func (ed *Editor) logger() *log.Logger {
	if ed.Logger == nil {
		return log.Default()
	}
	return ed.Logger
}

func (ed *Editor) engine(d document.Document) *mapgen.Engine {
	return &mapgen.Engine{Registry: d.NodeTypes, Rand: rng.OrGlobal(ed.Rand), Logger: ed.logger()}
}

// Create returns a document holding a freshly generated map for cfg.
func (ed *Editor) Create(cfg config.MapConfig) (document.Document, error) {
	d := document.New(runmap.Map{}, cfg)
	return ed.Generate(d)
}

// Reset discards d and returns a new document with every default.
func (ed *Editor) Reset() (document.Document, error) {
	return ed.Create(config.Default())
}

// Generate regenerates the map, keeping locked nodes.
func (ed *Editor) Generate(d document.Document) (document.Document, error) {
	var existing *runmap.Map
	if len(d.MapNodes) > 0 {
		m := d.Map()
		existing = &m
	}
	start := time.Now()
	m, err := ed.engine(d).Generate(d.MapConfig, existing)
	observability.Editor().OnGenerate(len(m.Floors), m.NodeCount(), time.Since(start), err)
	if err != nil {
		return document.Document{}, err
	}
	d.SetMap(m)

	ed.logger().Info("generated map",
		"floors", len(m.Floors),
		"nodes", m.NodeCount(),
		"edges", m.EdgeCount(),
		"locked", len(m.LockedNodes()))
	return d, nil
}

// UpdateLayout brings the boss floor in line with the configuration and
// recomputes coordinates, without regenerating other floors.
func (ed *Editor) UpdateLayout(d document.Document) document.Document {
	m := ed.engine(d).Enforce(d.Map(), d.MapConfig)
	d.SetMap(layout.Solve(m, d.MapConfig, ed.Rand))
	ed.logger().Debug("updated layout", "bossFloors", m.MiniBossFloors())
	return d
}

// Relayout recomputes coordinates only.
func (ed *Editor) Relayout(d document.Document) document.Document {
	d.SetMap(layout.Solve(d.Map(), d.MapConfig, ed.Rand))
	return d
}

// SetConfig replaces the configuration, clamped into range, and updates the
// layout. Changes to the floor count or floor sizes only take effect on the
// next Generate.
func (ed *Editor) SetConfig(d document.Document, cfg config.MapConfig) document.Document {
	cfg = cfg.Clamp()
	if cfg.FinalFloor() != len(d.MapNodes)-1 {
		ed.logger().Info("floor count changed; regenerate to apply",
			"floors", len(d.MapNodes), "configured", cfg.FinalFloor()+1)
	}
	d.MapConfig = cfg
	return ed.UpdateLayout(d)
}

// Drag moves a node by (dx, dy) within layout.MaxOffsetRadius of its
// computed position.
func (ed *Editor) Drag(d document.Document, id int, dx, dy float64) (document.Document, error) {
	m, err := layout.Drag(d.Map(), id, dx, dy, layout.MaxOffsetRadius)
	observability.Editor().OnEdit("drag", id, err)
	if err != nil {
		return document.Document{}, err
	}
	d.SetMap(m)
	return d, nil
}

// Promote turns a node into the single mini-boss of its floor.
func (ed *Editor) Promote(d document.Document, id int) (document.Document, error) {
	m, err := ed.engine(d).Promote(d.Map(), id)
	observability.Editor().OnEdit("promote", id, err)
	if err != nil {
		return document.Document{}, err
	}
	ed.logger().Info("promoted node", "id", id)
	return ed.Relayout(withMap(d, m)), nil
}

// Delete removes a node.
func (ed *Editor) Delete(d document.Document, id int) (document.Document, error) {
	m, err := ed.engine(d).Delete(d.Map(), id)
	observability.Editor().OnEdit("delete", id, err)
	if err != nil {
		return document.Document{}, err
	}
	ed.logger().Info("deleted node", "id", id)
	return ed.Relayout(withMap(d, m)), nil
}

// UpdateNode replaces a node with an edited copy.
func (ed *Editor) UpdateNode(d document.Document, n runmap.Node) (document.Document, error) {
	m, err := ed.engine(d).Update(d.Map(), n)
	observability.Editor().OnEdit("update", n.ID, err)
	if err != nil {
		return document.Document{}, err
	}
	return ed.Relayout(withMap(d, m)), nil
}

// SetLocked locks or unlocks a node.
func (ed *Editor) SetLocked(d document.Document, id int, locked bool) (document.Document, error) {
	n, ok := d.Map().Node(id)
	if !ok {
		return document.Document{}, errors.New(errors.ErrCodeNodeNotFound, "node %d not found", id)
	}
	n.IsLocked = locked
	ed.logger().Debug("set lock", "id", id, "locked", locked)
	return ed.UpdateNode(d, n)
}

// ApplyTheme recolors the document's node types with a built-in theme.
func (ed *Editor) ApplyTheme(d document.Document, name string) (document.Document, error) {
	reg := d.NodeTypes
	if reg == nil {
		reg = nodetype.Defaults()
	}
	themed, err := reg.ApplyTheme(name)
	observability.Editor().OnEdit("theme", -1, err)
	if err != nil {
		return document.Document{}, err
	}
	d.NodeTypes = themed
	d.VisualConfig.Theme = name
	return d, nil
}

func withMap(d document.Document, m runmap.Map) document.Document {
	d.SetMap(m)
	return d
}

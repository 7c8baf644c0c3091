package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/avulnerador/RogueMap-Gen/pkg/config"
	"github.com/avulnerador/RogueMap-Gen/pkg/errors"
	"github.com/avulnerador/RogueMap-Gen/pkg/nodetype"
	"github.com/avulnerador/RogueMap-Gen/pkg/runmap"
)

// Document is a map together with its configuration and presentation.
type Document struct {
	MapNodes       []runmap.Floor      `json:"mapNodes" bson:"mapNodes"`
	NextID         int                 `json:"nextId,omitempty" bson:"nextId,omitempty"`
	MapConfig      config.MapConfig    `json:"mapConfig" bson:"mapConfig"`
	VisualConfig   config.VisualConfig `json:"visualConfig" bson:"visualConfig"`
	NodeTypes      nodetype.Registry   `json:"nodeTypes" bson:"nodeTypes"`
	AvailableIcons []string            `json:"availableIcons" bson:"availableIcons"`
}

// New returns a document for m with default presentation.
func New(m runmap.Map, cfg config.MapConfig) Document {
	d := Document{
		MapConfig:      cfg,
		VisualConfig:   config.DefaultVisual(),
		NodeTypes:      nodetype.Defaults(),
		AvailableIcons: nodetype.DefaultIcons(),
	}
	d.SetMap(m)
	return d
}

// Map returns a copy of the document's map.
func (d Document) Map() runmap.Map {
	m := runmap.Map{Floors: d.MapNodes, NextID: d.NextID}.Clone()
	m.SyncNextID()
	return m
}

// SetMap replaces the document's map with a copy of m.
func (d *Document) SetMap(m runmap.Map) {
	m = m.Clone()
	m.SyncNextID()
	d.MapNodes = m.Floors
	d.NextID = m.NextID
}

// wire distinguishes absent sections from empty ones.
type wire struct {
	MapNodes       *[]runmap.Floor      `json:"mapNodes"`
	NextID         int                  `json:"nextId"`
	MapConfig      *config.MapConfig    `json:"mapConfig"`
	VisualConfig   *config.VisualConfig `json:"visualConfig"`
	NodeTypes      nodetype.Registry    `json:"nodeTypes"`
	AvailableIcons []string             `json:"availableIcons"`
}

// Read decodes and validates a document from r. Read does not close r.
func Read(r io.Reader) (Document, error) {
	var w wire
	if err := json.NewDecoder(r).Decode(&w); err != nil {
		return Document{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode document")
	}
	if w.MapNodes == nil || w.MapConfig == nil {
		return Document{}, errors.New(errors.ErrCodeInvalidFormat, "document needs mapNodes and mapConfig")
	}

	d := Document{
		MapNodes:       *w.MapNodes,
		NextID:         w.NextID,
		MapConfig:      *w.MapConfig,
		VisualConfig:   config.DefaultVisual(),
		NodeTypes:      w.NodeTypes,
		AvailableIcons: w.AvailableIcons,
	}
	if w.VisualConfig != nil {
		d.VisualConfig = *w.VisualConfig
	}
	if d.NodeTypes == nil {
		d.NodeTypes = nodetype.Defaults()
	}
	if d.AvailableIcons == nil {
		d.AvailableIcons = nodetype.DefaultIcons()
	}

	if err := d.Validate(); err != nil {
		return Document{}, err
	}
	d.SetMap(d.Map())
	return d, nil
}

// Validate checks the configuration, the node type keys and the map.
func (d Document) Validate() error {
	if err := d.MapConfig.Validate(); err != nil {
		return err
	}
	if err := d.NodeTypes.Validate(); err != nil {
		return err
	}
	m := runmap.Map{Floors: d.MapNodes}
	if err := m.Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidMap, err, "invalid map")
	}
	return nil
}

// Unmarshal decodes a document from JSON bytes.
func Unmarshal(data []byte) (Document, error) {
	return Read(bytes.NewReader(data))
}

// ReadFile reads a document from a file.
func ReadFile(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// Write encodes d as indented JSON.
func Write(d Document, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Marshal returns the indented JSON encoding of d.
func Marshal(d Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(d, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile writes d to a file at path.
func WriteFile(d Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(d, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Package pipeline turns map documents into export artifacts.
//
// A [Runner] renders one document into one or more formats, caching each
// artifact under the document's content hash. Both the CLI and the HTTP
// server export through it.
//
//	r := pipeline.NewRunner(fileCache, nil, logger)
//	artifacts, hit, err := r.Render(ctx, doc, pipeline.Options{
//	    Renderer: pipeline.RendererCanvas,
//	    Formats:  []string{"svg", "png"},
//	})
//
// # Renderers
//
//   - canvas: rooms at their solved coordinates (see render/canvas)
//   - nodelink: Graphviz diagram, one rank per floor (see render/nodelink)
//
// # Formats
//
//   - json: the document itself (renderer-independent)
//   - dot: Graphviz source (nodelink only)
//   - svg, png, pdf: png and pdf go through rsvg-convert
package pipeline

import (
	"slices"
	"strings"

	"github.com/avulnerador/RogueMap-Gen/pkg/cache"
	"github.com/avulnerador/RogueMap-Gen/pkg/errors"
)

// Renderers.
const (
	RendererCanvas   = "canvas"
	RendererNodelink = "nodelink"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatDOT  = "dot"
	FormatJSON = "json"
)

// DefaultScale is the PNG scale factor when none is given.
const DefaultScale = 2.0

// ValidFormats lists the supported output formats.
var ValidFormats = []string{FormatSVG, FormatPNG, FormatPDF, FormatDOT, FormatJSON}

// Options configures an export.
type Options struct {
	Renderer string   `json:"renderer,omitempty"`
	Formats  []string `json:"formats,omitempty"`
	Detailed bool     `json:"detailed,omitempty"` // nodelink labels carry floor, icon and lock state
	Scale    float64  `json:"scale,omitempty"`    // PNG only
	Refresh  bool     `json:"-"`                  // bypass cache reads
}

// SetDefaults fills in the renderer, formats and scale when unset.
func (o *Options) SetDefaults() {
	if o.Renderer == "" {
		o.Renderer = RendererCanvas
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale <= 0 {
		o.Scale = DefaultScale
	}
}

// Validate checks the renderer and every format.
func (o Options) Validate() error {
	if err := errors.ValidateOneOf("renderer", o.Renderer, RendererCanvas, RendererNodelink); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid export options")
	}
	for _, f := range o.Formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
		if f == FormatDOT && o.Renderer != RendererNodelink {
			return errors.New(errors.ErrCodeUnsupported, "format dot requires the nodelink renderer")
		}
	}
	return nil
}

// ValidateFormat checks that a format is supported.
func ValidateFormat(format string) error {
	if !slices.Contains(ValidFormats, format) {
		return errors.New(errors.ErrCodeUnsupported, "unsupported format %q (must be one of %s)", format, strings.Join(ValidFormats, ", "))
	}
	return nil
}

// ParseFormats splits a comma-separated format list. Empty means svg.
func ParseFormats(s string) []string {
	if s == "" {
		return []string{FormatSVG}
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(strings.ToLower(f)); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// ArtifactKeyOpts returns the cache key options for one format.
func (o Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Renderer: o.Renderer, Format: format}
	if format == FormatJSON {
		k.Renderer = ""
	}
	if o.Renderer == RendererNodelink {
		k.Detailed = o.Detailed
	}
	if format == FormatPNG {
		k.Scale = o.Scale
	}
	return k
}

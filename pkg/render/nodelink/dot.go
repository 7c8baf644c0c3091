package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/avulnerador/RogueMap-Gen/pkg/config"
	"github.com/avulnerador/RogueMap-Gen/pkg/nodetype"
	"github.com/avulnerador/RogueMap-Gen/pkg/render"
	"github.com/avulnerador/RogueMap-Gen/pkg/runmap"
)

const defaultFill = "#64748b"

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed includes floor, icon and lock state in node labels.
	// When false, only the type name and id are shown.
	Detailed bool

	// Horizontal lays floors out left to right instead of top to bottom.
	Horizontal bool
}

// OptionsFor derives rendering options from a map configuration.
func OptionsFor(cfg config.MapConfig, detailed bool) Options {
	return Options{Detailed: detailed, Horizontal: cfg.IsHorizontal()}
}

// ToDOT converts a run map to Graphviz DOT format for node-link visualization.
// The resulting DOT string can be rendered using [RenderSVG], [RenderPDF], or [RenderPNG].
//
// Each floor becomes a rank=same group so Graphviz keeps rooms of one floor
// aligned. Fill colors come from reg; locked rooms get a bold outline.
func ToDOT(m runmap.Map, reg nodetype.Registry, opts Options) string {
	rankdir := "TB"
	if opts.Horizontal {
		rankdir = "LR"
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	fmt.Fprintf(&buf, "  rankdir=%s;\n", rankdir)
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fontcolor=white, fontsize=14, fixedsize=false];\n")
	buf.WriteString("  edge [color=\"#475569\", arrowsize=0.6];\n")
	buf.WriteString("  ranksep=0.6;\n")
	buf.WriteString("  nodesep=0.4;\n")

	for r, f := range m.Floors {
		fmt.Fprintf(&buf, "\n  subgraph floor_%d {\n    rank=same;\n", r)
		for _, n := range f {
			label := fmtLabel(n, reg, opts.Detailed)
			attrs := fmtAttrs(n, reg, label)
			fmt.Fprintf(&buf, "    %d [%s];\n", n.ID, strings.Join(attrs, ", "))
		}
		buf.WriteString("  }\n")
	}

	buf.WriteString("\n")
	for _, f := range m.Floors {
		for _, n := range f {
			for _, to := range n.Connections {
				fmt.Fprintf(&buf, "  %d -> %d;\n", n.ID, to)
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(n runmap.Node, reg nodetype.Registry, detailed bool) string {
	label := fmt.Sprintf("%s\n#%d", reg.Name(n.Type), n.ID)
	if !detailed {
		return label
	}

	parts := []string{fmt.Sprintf("floor: %d", n.Row)}
	if n.IconClass != "" {
		parts = append(parts, "icon: "+n.IconClass)
	}
	if n.IsLocked {
		parts = append(parts, "locked")
	}
	return label + "\n" + strings.Join(parts, "\n")
}

func fmtAttrs(n runmap.Node, reg nodetype.Registry, label string) []string {
	attrs := []string{
		fmt.Sprintf("label=%q", label),
		fmt.Sprintf("fillcolor=%q", reg.Color(n.Type, defaultFill)),
	}
	if n.CustomSize != nil {
		attrs = append(attrs, fmt.Sprintf("width=%.2f", 0.75**n.CustomSize))
	}
	if n.IsLocked {
		attrs = append(attrs, "penwidth=3")
	}
	if n.BorderColor != "" {
		attrs = append(attrs, fmt.Sprintf("color=%q", n.BorderColor))
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(ctx, svg, scale)
}

// Package nodelink renders run maps as Graphviz node-link diagrams.
//
// # Overview
//
// The positioned canvas (see [canvas]) draws rooms where the layout solver
// put them. This package instead hands the topology to Graphviz, which is
// handy for checking connectivity of large maps or for feeding external
// Graphviz tooling.
//
// # Usage
//
//	dot := nodelink.ToDOT(m, registry, nodelink.OptionsFor(cfg, false))
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// For PDF or PNG output:
//
//	pdf, err := nodelink.RenderPDF(ctx, dot)
//	png, err := nodelink.RenderPNG(ctx, dot, 2.0)  // 2x scale
//
// # DOT Format
//
// Every floor is emitted as a subgraph with rank=same. Rooms are filled
// circles colored by the node type registry, labelled with the type name
// and id. Vertical maps use rankdir=TB, horizontal maps rankdir=LR.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
//
// [canvas]: github.com/avulnerador/RogueMap-Gen/pkg/render/canvas
package nodelink

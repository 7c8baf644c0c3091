// Package render turns run maps into pictures.
//
// # Overview
//
// Two renderers live in subpackages:
//
//   - [canvas] draws rooms at their solved coordinates as standalone SVG,
//     honouring the document's visual settings. This is what editors show.
//   - [nodelink] hands the topology to Graphviz, one rank per floor.
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). Both renderers use them.
//
//	svg := canvas.RenderSVG(m, canvas.WithVisual(doc.VisualConfig))
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0)  // 2x scale
//
// [canvas]: github.com/avulnerador/RogueMap-Gen/pkg/render/canvas
// [nodelink]: github.com/avulnerador/RogueMap-Gen/pkg/render/nodelink
package render

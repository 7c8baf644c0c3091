// Package canvas draws positioned run maps as standalone SVG.
//
// Rooms are drawn at the coordinates produced by the layout solver, so the
// picture matches what an editor shows. Visual settings (node shape, line
// colors, glow, floor numbers) come from [config.VisualConfig]; fill colors
// and display names from a [nodetype.Registry].
//
//	svg := canvas.RenderSVG(m,
//	    canvas.WithVisual(doc.VisualConfig),
//	    canvas.WithRegistry(doc.NodeTypes),
//	    canvas.WithHighlight(12),
//	)
//
// The output embeds a small script that highlights a room's incoming and
// outgoing paths on hover.
//
// [config.VisualConfig]: github.com/avulnerador/RogueMap-Gen/pkg/config.VisualConfig
// [nodetype.Registry]: github.com/avulnerador/RogueMap-Gen/pkg/nodetype.Registry
package canvas

package canvas

import (
	"bytes"
	"fmt"
	"html"
	"math"

	"github.com/avulnerador/RogueMap-Gen/pkg/config"
	"github.com/avulnerador/RogueMap-Gen/pkg/layout"
	"github.com/avulnerador/RogueMap-Gen/pkg/nodetype"
	"github.com/avulnerador/RogueMap-Gen/pkg/runmap"
)

// NodeRadius is the radius of a room at size 1.
const NodeRadius = layout.NodeVisualSize / 2

const margin = 60.0

const interactionCSS = `
    .edge { transition: stroke 0.2s ease, stroke-width 0.2s ease; }
    .edge.out { stroke: var(--out); stroke-width: 4; }
    .edge.in { stroke: var(--in); stroke-width: 4; }
    .room { cursor: pointer; }`

const interactionJS = `
    function focusRoom(id) {
      document.querySelectorAll('.edge').forEach(e => {
        e.classList.toggle('out', e.dataset.from === id);
        e.classList.toggle('in', e.dataset.to === id);
      });
    }
    function clearFocus() {
      document.querySelectorAll('.edge').forEach(e => e.classList.remove('out', 'in'));
    }
    document.querySelectorAll('.room').forEach(el => {
      el.addEventListener('mouseenter', () => focusRoom(el.dataset.id));
      el.addEventListener('mouseleave', clearFocus);
    });`

// SVGOption configures [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	visual      config.VisualConfig
	registry    nodetype.Registry
	highlight   int
	interactive bool
}

func WithVisual(v config.VisualConfig) SVGOption   { return func(r *svgRenderer) { r.visual = v } }
func WithRegistry(reg nodetype.Registry) SVGOption { return func(r *svgRenderer) { r.registry = reg } }
func WithStatic() SVGOption                        { return func(r *svgRenderer) { r.interactive = false } }

// WithHighlight colors the outgoing and incoming edges of room id using the
// visual config's outgoing and incoming line colors.
func WithHighlight(id int) SVGOption { return func(r *svgRenderer) { r.highlight = id } }

type edge struct {
	from, to       int
	x1, y1, x2, y2 float64
}

// RenderSVG draws m at its solved coordinates.
func RenderSVG(m runmap.Map, opts ...SVGOption) []byte {
	r := svgRenderer{
		visual:      config.DefaultVisual(),
		registry:    nodetype.Defaults(),
		highlight:   -1,
		interactive: true,
	}
	for _, opt := range opts {
		opt(&r)
	}

	b := layout.MapBounds(m).Pad(NodeRadius*runmap.MiniBossSize + margin)
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%.1f %.1f %.1f %.1f" width="%.0f" height="%.0f" style="--out:%s;--in:%s">`+"\n",
		b.MinX, b.MinY, b.Width(), b.Height(), b.Width(), b.Height(),
		r.visual.LineColorOutgoing, r.visual.LineColorIncoming)

	r.renderDefs(&buf)
	for _, e := range buildEdges(m, r.visual.ConnectionGap) {
		r.renderEdge(&buf, e)
	}
	for _, f := range m.Floors {
		for _, n := range f {
			r.renderNode(&buf, n)
		}
	}
	if r.visual.ShowFloorNumber {
		renderFloorNumbers(&buf, m, b)
	}
	if r.interactive {
		fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", interactionCSS)
		fmt.Fprintf(&buf, "  <script type=\"text/javascript\"><![CDATA[%s\n  ]]></script>\n", interactionJS)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r *svgRenderer) renderDefs(buf *bytes.Buffer) {
	if !r.visual.GlobalGlowEnabled {
		return
	}
	buf.WriteString(`  <defs>
    <filter id="glow" x="-50%" y="-50%" width="200%" height="200%">
      <feGaussianBlur stdDeviation="6" result="blur"/>
      <feMerge><feMergeNode in="blur"/><feMergeNode in="SourceGraphic"/></feMerge>
    </filter>
  </defs>
`)
}

func (r *svgRenderer) renderEdge(buf *bytes.Buffer, e edge) {
	color := r.visual.LineColorDefault
	switch {
	case e.from == r.highlight:
		color = r.visual.LineColorOutgoing
	case e.to == r.highlight:
		color = r.visual.LineColorIncoming
	}
	fmt.Fprintf(buf, `  <line class="edge" data-from="%d" data-to="%d" x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="2"/>`+"\n",
		e.from, e.to, e.x1, e.y1, e.x2, e.y2, color)
}

func (r *svgRenderer) renderNode(buf *bytes.Buffer, n runmap.Node) {
	radius := NodeRadius
	if n.CustomSize != nil {
		radius *= *n.CustomSize
	}
	fill := r.registry.Color(n.Type, "#64748b")
	stroke := "#0f172a"
	if n.BorderColor != "" {
		stroke = n.BorderColor
	}
	width := 2
	if n.IsLocked || n.IsCustomHighlighted {
		width = 4
	}

	attrs := fmt.Sprintf(`fill="%s" stroke="%s" stroke-width="%d"`, fill, stroke, width)
	if r.visual.GlobalGlowEnabled && n.CustomGlow != nil && *n.CustomGlow > 0 {
		attrs += ` filter="url(#glow)"`
	}

	fmt.Fprintf(buf, `  <g class="room" id="room-%d" data-id="%d" data-type="%s" data-icon="%s">`+"\n",
		n.ID, n.ID, html.EscapeString(n.Type), html.EscapeString(n.IconClass))
	fmt.Fprintf(buf, "    <title>%s #%d</title>\n", html.EscapeString(r.registry.Name(n.Type)), n.ID)

	switch r.visual.NodeShape {
	case config.ShapeSquare:
		fmt.Fprintf(buf, `    <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="6" %s/>`+"\n",
			n.X-radius, n.Y-radius, 2*radius, 2*radius, attrs)
	case config.ShapeTransparent:
		fmt.Fprintf(buf, `    <circle cx="%.1f" cy="%.1f" r="%.1f" fill="none" stroke="%s" stroke-width="%d"/>`+"\n",
			n.X, n.Y, radius, fill, width)
	default:
		fmt.Fprintf(buf, `    <circle cx="%.1f" cy="%.1f" r="%.1f" %s/>`+"\n", n.X, n.Y, radius, attrs)
	}

	if r.visual.ShowIcon {
		iconColor := "#ffffff"
		if t, ok := r.registry[n.Type]; ok && t.IconColor != "" {
			iconColor = t.IconColor
		}
		fmt.Fprintf(buf, `    <text x="%.1f" y="%.1f" fill="%s" font-family="sans-serif" font-size="%.0f" text-anchor="middle" dominant-baseline="central">%s</text>`+"\n",
			n.X, n.Y, iconColor, radius*0.8, html.EscapeString(initial(r.registry.Name(n.Type))))
	}
	buf.WriteString("  </g>\n")
}

func renderFloorNumbers(buf *bytes.Buffer, m runmap.Map, b layout.Bounds) {
	for r, f := range m.Floors {
		if len(f) == 0 {
			continue
		}
		y := 0.0
		for _, n := range f {
			y += n.Y
		}
		y /= float64(len(f))
		fmt.Fprintf(buf, `  <text class="floor-number" x="%.1f" y="%.1f" fill="#94a3b8" font-family="sans-serif" font-size="14" dominant-baseline="central">%d</text>`+"\n",
			b.MinX+8, y, r)
	}
}

// buildEdges shortens every connection by gap at both ends so lines stop
// short of the room outlines.
func buildEdges(m runmap.Map, gap float64) []edge {
	pos := make(map[int][2]float64, m.NodeCount())
	for _, f := range m.Floors {
		for _, n := range f {
			pos[n.ID] = [2]float64{n.X, n.Y}
		}
	}

	var edges []edge
	for _, f := range m.Floors {
		for _, n := range f {
			for _, to := range n.Connections {
				dst, ok := pos[to]
				if !ok {
					continue
				}
				dx, dy := dst[0]-n.X, dst[1]-n.Y
				d := math.Hypot(dx, dy)
				trim := NodeRadius + gap
				if d <= 2*trim {
					trim = 0
				}
				ux, uy := 0.0, 0.0
				if d > 0 {
					ux, uy = dx/d, dy/d
				}
				edges = append(edges, edge{
					from: n.ID, to: to,
					x1: n.X + ux*trim, y1: n.Y + uy*trim,
					x2: dst[0] - ux*trim, y2: dst[1] - uy*trim,
				})
			}
		}
	}
	return edges
}

func initial(name string) string {
	for _, r := range name {
		return string(r)
	}
	return "?"
}

package pipeline

import (
	"context"
	"fmt"

	"github.com/avulnerador/RogueMap-Gen/pkg/document"
	"github.com/avulnerador/RogueMap-Gen/pkg/errors"
	"github.com/avulnerador/RogueMap-Gen/pkg/render"
	"github.com/avulnerador/RogueMap-Gen/pkg/render/canvas"
	"github.com/avulnerador/RogueMap-Gen/pkg/render/nodelink"
)

// RenderFormat produces a single artifact without caching. opts must have
// defaults applied.
func RenderFormat(ctx context.Context, d document.Document, opts Options, format string) ([]byte, error) {
	if format == FormatJSON {
		return document.Marshal(d)
	}
	if opts.Renderer == RendererNodelink {
		return renderNodelink(ctx, d, opts, format)
	}
	return renderCanvas(ctx, d, opts, format)
}

func renderCanvas(ctx context.Context, d document.Document, opts Options, format string) ([]byte, error) {
	svg := canvas.RenderSVG(d.Map(),
		canvas.WithVisual(d.VisualConfig),
		canvas.WithRegistry(d.NodeTypes))

	switch format {
	case FormatSVG:
		return svg, nil
	case FormatPNG:
		return render.ToPNG(ctx, svg, opts.Scale)
	case FormatPDF:
		return render.ToPDF(ctx, svg)
	}
	return nil, errors.New(errors.ErrCodeUnsupported, "unsupported canvas format %q", format)
}

func renderNodelink(ctx context.Context, d document.Document, opts Options, format string) ([]byte, error) {
	dot := nodelink.ToDOT(d.Map(), d.NodeTypes, nodelink.OptionsFor(d.MapConfig, opts.Detailed))

	var data []byte
	var err error
	switch format {
	case FormatDOT:
		return []byte(dot), nil
	case FormatSVG:
		data, err = nodelink.RenderSVG(ctx, dot)
	case FormatPNG:
		data, err = nodelink.RenderPNG(ctx, dot, opts.Scale)
	case FormatPDF:
		data, err = nodelink.RenderPDF(ctx, dot)
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported nodelink format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return data, nil
}

// ContentType returns the MIME type of a format.
func ContentType(format string) string {
	switch format {
	case FormatSVG:
		return "image/svg+xml"
	case FormatPNG:
		return "image/png"
	case FormatPDF:
		return "application/pdf"
	case FormatDOT:
		return "text/vnd.graphviz"
	case FormatJSON:
		return "application/json"
	}
	return "application/octet-stream"
}

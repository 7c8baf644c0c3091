package cli

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/avulnerador/RogueMap-Gen/pkg/editor"
	"github.com/avulnerador/RogueMap-Gen/pkg/pipeline"
)

// exportOpts holds the command-line flags for the export command.
type exportOpts struct {
	output  string // output file (single format) or base path (multiple)
	formats string // comma-separated formats
	noCache bool   // skip the artifact cache
	opts    pipeline.Options
}

// exportCommand creates the export command for rendering a saved map.
func (c *CLI) exportCommand() *cobra.Command {
	var eo exportOpts

	cmd := &cobra.Command{
		Use:   "export <map.json>",
		Short: "Render a map to JSON, DOT, SVG, PNG or PDF",
		Long: `Render a saved map.

The canvas renderer draws rooms at their computed positions with the
document's visual settings. The nodelink renderer lays the map out with
Graphviz and is the only renderer that produces DOT. PNG and PDF are
converted from SVG with rsvg-convert, which must be on PATH.

Artifacts are cached by document content; --no-cache disables the cache and
--refresh re-renders while still updating it.`,
		Example: `  roguemap export map.json
  roguemap export map.json -f svg,png --scale 3
  roguemap export map.json -r nodelink -f dot,svg --detailed -o out/map`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eo.opts.Formats = pipeline.ParseFormats(eo.formats)
			eo.opts.SetDefaults()
			if err := eo.opts.Validate(); err != nil {
				return err
			}
			return c.runExport(cmd.Context(), args[0], eo)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&eo.output, "output", "o", "", "output file (single format) or base path (multiple)")
	f.StringVarP(&eo.formats, "format", "f", "", "output format(s): svg (default), png, pdf, dot, json (comma-separated)")
	f.StringVarP(&eo.opts.Renderer, "renderer", "r", pipeline.RendererCanvas, "renderer: canvas or nodelink")
	f.BoolVar(&eo.opts.Detailed, "detailed", false, "label nodelink rooms with floor, icon and lock state")
	f.Float64Var(&eo.opts.Scale, "scale", pipeline.DefaultScale, "PNG scale factor")
	f.BoolVar(&eo.opts.Refresh, "refresh", false, "re-render even when cached")
	f.BoolVar(&eo.noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

func (c *CLI) runExport(ctx context.Context, input string, eo exportOpts) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Exporting %s", input)

	d, err := readDocument(input)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(eo.noCache)
	if err != nil {
		return err
	}
	defer runner.Cache.Close()

	var (
		artifacts map[string][]byte
		cached    bool
	)
	prog := newProgress(logger)
	err = withSpinner(ctx, "Rendering "+strings.Join(eo.opts.Formats, ", "), func() error {
		var err error
		artifacts, cached, err = runner.Render(ctx, d, eo.opts)
		return err
	})
	if err != nil {
		return err
	}
	prog.done("Rendered artifacts")

	base := basePath(eo.output, input)
	single := len(eo.opts.Formats) == 1 && eo.output != ""

	printSuccess("Exported %s", input)
	for _, format := range eo.opts.Formats {
		path := eo.output
		if !single {
			path = artifactPath(base, eo.opts.Renderer, format)
		}
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		if err := os.WriteFile(path, artifacts[format], 0o644); err != nil {
			return err
		}
		printFile(path)
	}
	printStats(editor.Summarize(d), cached)
	return nil
}

// basePath derives the base output path from the output and input paths.
// If output is empty, it strips the extension from input. Known format
// extensions are stripped from output.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if slices.Contains(pipeline.ValidFormats, strings.TrimPrefix(ext, ".")) {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// artifactPath names one artifact of a multi-format export. JSON exports
// get an ".export" infix so they never overwrite the source document.
func artifactPath(base, renderer, format string) string {
	if format == pipeline.FormatJSON {
		return base + ".export.json"
	}
	return base + "." + renderer + "." + format
}

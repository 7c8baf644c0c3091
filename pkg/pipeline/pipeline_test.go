package pipeline

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/avulnerador/RogueMap-Gen/pkg/cache"
	"github.com/avulnerador/RogueMap-Gen/pkg/config"
	"github.com/avulnerador/RogueMap-Gen/pkg/document"
	"github.com/avulnerador/RogueMap-Gen/pkg/editor"
	"github.com/avulnerador/RogueMap-Gen/pkg/errors"
	"github.com/avulnerador/RogueMap-Gen/pkg/rng"
)

// memCache is a counting in-memory cache.
type memCache struct {
	data map[string][]byte
	gets int
	sets int
}

func newMemCache() *memCache { return &memCache{data: map[string][]byte{}} }

func (c *memCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.gets++
	d, ok := c.data[key]
	return d, ok, nil
}

func (c *memCache) Set(_ context.Context, key string, data []byte, _ time.Duration) error {
	c.sets++
	c.data[key] = data
	return nil
}

func (c *memCache) Delete(_ context.Context, key string) error { delete(c.data, key); return nil }
func (c *memCache) Close() error                               { return nil }

var _ cache.Cache = (*memCache)(nil)

func testDocument(t *testing.T) document.Document {
	t.Helper()
	cfg := config.Default()
	cfg.NumRows = 5
	cfg.BossRow = 2
	d, err := editor.New(rng.New(3), log.New(io.Discard)).Create(cfg)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	return d
}

func TestRenderCaches(t *testing.T) {
	ctx := context.Background()
	c := newMemCache()
	r := NewRunner(c, nil, log.New(io.Discard))
	d := testDocument(t)
	opts := Options{Formats: []string{FormatSVG, FormatJSON}}

	first, hit, err := r.Render(ctx, d, opts)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if hit {
		t.Error("first render reported a cache hit")
	}
	if !strings.HasPrefix(string(first[FormatSVG]), "<svg") {
		t.Error("svg artifact is not svg")
	}
	if !strings.Contains(string(first[FormatJSON]), `"mapNodes"`) {
		t.Error("json artifact is not a document")
	}
	if c.sets != 2 {
		t.Errorf("cache sets = %d, want 2", c.sets)
	}

	second, hit, err := r.Render(ctx, d, opts)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !hit {
		t.Error("second render should come from the cache")
	}
	if string(second[FormatSVG]) != string(first[FormatSVG]) {
		t.Error("cached artifact differs")
	}

	opts.Refresh = true
	if _, hit, _ := r.Render(ctx, d, opts); hit {
		t.Error("refresh should bypass the cache")
	}
}

func TestRenderKeyChangesWithDocument(t *testing.T) {
	ctx := context.Background()
	c := newMemCache()
	r := NewRunner(c, nil, log.New(io.Discard))
	d := testDocument(t)

	if _, _, err := r.Render(ctx, d, Options{}); err != nil {
		t.Fatal(err)
	}
	d.VisualConfig.NodeShape = config.ShapeSquare
	if _, hit, err := r.Render(ctx, d, Options{}); err != nil || hit {
		t.Errorf("edited document: hit %v, err %v; want fresh render", hit, err)
	}
	if len(c.data) != 2 {
		t.Errorf("cache entries = %d, want 2", len(c.data))
	}
}

func TestRenderDOT(t *testing.T) {
	r := NewRunner(nil, nil, log.New(io.Discard))
	out, _, err := r.Render(context.Background(), testDocument(t), Options{
		Renderer: RendererNodelink,
		Formats:  []string{FormatDOT},
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.HasPrefix(string(out[FormatDOT]), "digraph G {") {
		t.Errorf("dot = %q", out[FormatDOT])
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"unknown renderer", Options{Renderer: "ascii", Formats: []string{FormatSVG}}, errors.ErrCodeInvalidInput},
		{"unknown format", Options{Renderer: RendererCanvas, Formats: []string{"gif"}}, errors.ErrCodeUnsupported},
		{"dot on canvas", Options{Renderer: RendererCanvas, Formats: []string{FormatDOT}}, errors.ErrCodeUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.opts.Validate(); !errors.Is(err, tt.code) {
				t.Errorf("Validate() = %v, want %s", err, tt.code)
			}
		})
	}

	ok := Options{}
	ok.SetDefaults()
	if err := ok.Validate(); err != nil {
		t.Errorf("defaults invalid: %v", err)
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{"svg"}},
		{"svg", []string{"svg"}},
		{"SVG, png,,pdf", []string{"svg", "png", "pdf"}},
	}
	for _, tt := range tests {
		got := ParseFormats(tt.in)
		if strings.Join(got, ",") != strings.Join(tt.want, ",") {
			t.Errorf("ParseFormats(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestArtifactKeyOpts(t *testing.T) {
	o := Options{Renderer: RendererCanvas, Detailed: true, Scale: 3}
	if k := o.ArtifactKeyOpts(FormatSVG); k.Detailed || k.Scale != 0 {
		t.Errorf("canvas svg key carries irrelevant options: %+v", k)
	}
	if k := o.ArtifactKeyOpts(FormatPNG); k.Scale != 3 {
		t.Errorf("png key scale = %v, want 3", k.Scale)
	}
	if k := o.ArtifactKeyOpts(FormatJSON); k.Renderer != "" {
		t.Errorf("json key should not depend on the renderer: %+v", k)
	}
}

func TestContentType(t *testing.T) {
	if got := ContentType(FormatSVG); got != "image/svg+xml" {
		t.Errorf("ContentType(svg) = %q", got)
	}
	if got := ContentType("bin"); got != "application/octet-stream" {
		t.Errorf("ContentType(bin) = %q", got)
	}
}

// Package pkg provides the core libraries for RogueMap-Gen run map generation.
//
// # Overview
//
// RogueMap-Gen builds the branching floor-by-floor maps of roguelike runs:
// a single start room, floors of 1 to 10 rooms wired to the next floor
// without crossing paths, an optional mini-boss floor and a final boss.
// Authors lock rooms they like and regenerate the rest. The pkg directory
// is organized into four main areas:
//
//  1. Domain - the map model, generation and layout
//  2. Documents - configuration, node types, the editable document and its storage
//  3. Output - renderers and the cached export pipeline
//  4. Services - the editor, the HTTP API and file watching
//
// # Architecture
//
// The typical data flow:
//
//	TOML config + YAML node types
//	         ↓
//	    [mapgen] package (generate, keep locks, enforce the boss floor)
//	         ↓
//	    [layout] package (coordinates, jitter, author drag)
//	         ↓
//	    [document] package (map + config + presentation)
//	         ↓
//	    [pipeline] package (JSON/DOT/SVG/PNG/PDF, cached)
//
// # Quick Start
//
// Generate a map and render it:
//
//	import (
//	    "github.com/avulnerador/RogueMap-Gen/pkg/config"
//	    "github.com/avulnerador/RogueMap-Gen/pkg/editor"
//	    "github.com/avulnerador/RogueMap-Gen/pkg/render/canvas"
//	    "github.com/avulnerador/RogueMap-Gen/pkg/rng"
//	)
//
//	ed := editor.New(rng.New(42), nil)
//	d, _ := ed.Create(config.Default())
//	svg := canvas.RenderSVG(d.Map(),
//	    canvas.WithVisual(d.VisualConfig),
//	    canvas.WithRegistry(d.NodeTypes))
//
// # Main Packages
//
// ## Domain
//
// [runmap] - Rooms, floors and maps; id allocation, lookups, structural
// validation and edge crossing counts.
//
// [mapgen] - The generation engine: floor sizing, weighted room types,
// crossing-free connection, locked room preservation, mini-boss enforcement,
// and single-room edits (promote, delete, update).
//
// [layout] - Position solver for vertical and horizontal maps, jitter with
// overlap separation, and bounded author drag offsets.
//
// [rng] - Seedable random source and weighted choice.
//
// ## Documents
//
// [config] - Map and visual configuration with clamping, validation and
// TOML loading.
//
// [nodetype] - Room type registry loaded from YAML, icons and color themes.
//
// [document] - The editable document: map, configuration, node types and
// icons, with strict JSON decoding and content hashing.
//
// [store] - Document storage in memory, on disk, in Redis or in MongoDB.
//
// [errors] - Structured error codes shared by the CLI and the HTTP API.
//
// ## Output
//
// [render/canvas] - Positioned SVG with shapes, glow and hover highlighting.
//
// [render/nodelink] - Graphviz diagrams with one rank per floor.
//
// [render] - Format conversion (SVG to PDF/PNG).
//
// [pipeline] - Export options, format dispatch and artifact caching used by
// the CLI and the HTTP API.
//
// [cache] - Artifact cache backends (file, null) and key derivation.
//
// ## Services
//
// [editor] - One author action per call on a document value.
//
// [server] - chi-based HTTP API over a store.
//
// [watch] - Debounced file change notification for configuration reloads.
//
// [observability] - Hooks for generation, edits, rendering, caching and HTTP.
//
// [buildinfo] - Version information set at build time.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/mapgen/...             # Specific package
//	go test -run Example ./pkg/...       # Examples only
//
// Redis and MongoDB store tests run when ROGUEMAP_TEST_REDIS_ADDR or
// ROGUEMAP_TEST_MONGO_URI is set.
//
// [runmap]: https://pkg.go.dev/github.com/avulnerador/RogueMap-Gen/pkg/runmap
// [mapgen]: https://pkg.go.dev/github.com/avulnerador/RogueMap-Gen/pkg/mapgen
// [layout]: https://pkg.go.dev/github.com/avulnerador/RogueMap-Gen/pkg/layout
// [rng]: https://pkg.go.dev/github.com/avulnerador/RogueMap-Gen/pkg/rng
// [config]: https://pkg.go.dev/github.com/avulnerador/RogueMap-Gen/pkg/config
// [nodetype]: https://pkg.go.dev/github.com/avulnerador/RogueMap-Gen/pkg/nodetype
// [document]: https://pkg.go.dev/github.com/avulnerador/RogueMap-Gen/pkg/document
// [store]: https://pkg.go.dev/github.com/avulnerador/RogueMap-Gen/pkg/store
// [errors]: https://pkg.go.dev/github.com/avulnerador/RogueMap-Gen/pkg/errors
// [render/canvas]: https://pkg.go.dev/github.com/avulnerador/RogueMap-Gen/pkg/render/canvas
// [render/nodelink]: https://pkg.go.dev/github.com/avulnerador/RogueMap-Gen/pkg/render/nodelink
// [render]: https://pkg.go.dev/github.com/avulnerador/RogueMap-Gen/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/avulnerador/RogueMap-Gen/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/avulnerador/RogueMap-Gen/pkg/cache
// [editor]: https://pkg.go.dev/github.com/avulnerador/RogueMap-Gen/pkg/editor
// [server]: https://pkg.go.dev/github.com/avulnerador/RogueMap-Gen/pkg/server
// [watch]: https://pkg.go.dev/github.com/avulnerador/RogueMap-Gen/pkg/watch
// [observability]: https://pkg.go.dev/github.com/avulnerador/RogueMap-Gen/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/avulnerador/RogueMap-Gen/pkg/buildinfo
package pkg

// Package pkg provides the core libraries for pktviz packet diagram rendering.
//
// # Overview
//
// pktviz turns a small text DSL describing the bit layout of a network packet
// into rendered diagrams. The pkg directory is organized into five main areas:
//
//  1. [diagram] - Parsing the packet DSL into a field model
//  2. [layout] - Splitting fields into per-row blocks
//  3. [render] - Geometry, styles, and output sinks (SVG, PNG, PDF, JSON)
//  4. [pipeline] - Orchestration (parse → layout → render) with caching
//  5. [cache], [config], [httputil] - Supporting infrastructure
//
// # Architecture
//
// The typical data flow through pktviz:
//
//	Packet DSL text (file, URL, or stdin)
//	         ↓
//	    [diagram] package (parse fields)
//	         ↓
//	    [layout] package (split fields across rows)
//	         ↓
//	    [render/grid] package (pixel geometry)
//	         ↓
//	    SVG/PNG/PDF/JSON output
//
// # Quick Start
//
// Parse a diagram and render it to SVG:
//
//	import (
//	    "github.com/pktviz/pktviz/pkg/diagram"
//	    "github.com/pktviz/pktviz/pkg/layout"
//	    "github.com/pktviz/pktviz/pkg/render/grid"
//	    "github.com/pktviz/pktviz/pkg/render/grid/sink"
//	)
//
//	// 1. Parse the DSL
//	d, _ := diagram.ParseString(src)
//
//	// 2. Populate rows
//	opts := layout.Options{}.Resolve()
//	var p layout.Packet
//	_ = layout.Populate(d, opts, &p)
//
//	// 3. Compute geometry
//	l := grid.Build(&p, opts)
//
//	// 4. Render to SVG
//	svg := sink.RenderSVG(l)
//
// # Main Packages
//
// [diagram] - The packet DSL parser. Accepts "packet-beta" sources with
// absolute ("0-15: Field") and relative ("+16: Field") bit ranges, titles,
// and accessibility metadata.
//
// [layout] - Row population. Fields that span a row boundary are split into
// contiguous sub-blocks, one per row, preserving bit numbering.
//
// [render/grid] - Pixel geometry for the grid view: cell rectangles, frame
// dimensions, bit tick labels.
//
// [render/grid/styles] - Visual styles (classic, blueprint) applied at the sink.
//
// [render/grid/sink] - Output formats. SVG is rendered directly; PNG and PDF go
// through rsvg-convert; JSON emits the geometry.
//
// [render/nodelink] - Alternative field-graph view rendered with Graphviz.
//
// [pipeline] - The complete pipeline (parse → layout → render) used by both
// the CLI and the HTTP server, with per-stage caching via [cache].
//
// [cache] - Content-addressed caches: file-backed for the CLI, Redis and
// MongoDB backends for server deployments, and a null cache for tests.
//
// [config] - TOML configuration (~/.config/pktviz/config.toml) for default
// style, layout dimensions, cache backend, and server address.
//
// [httputil] - Fetching diagram sources from http(s) URLs with retries.
//
// [observability] - Optional hooks for metrics and tracing, registered at
// startup by the host application.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/layout/...     # Specific package
//	go test -run Example         # Examples only
//
// [diagram]: https://pkg.go.dev/github.com/pktviz/pktviz/pkg/diagram
// [layout]: https://pkg.go.dev/github.com/pktviz/pktviz/pkg/layout
// [render]: https://pkg.go.dev/github.com/pktviz/pktviz/pkg/render
// [render/grid]: https://pkg.go.dev/github.com/pktviz/pktviz/pkg/render/grid
// [render/grid/styles]: https://pkg.go.dev/github.com/pktviz/pktviz/pkg/render/grid/styles
// [render/grid/sink]: https://pkg.go.dev/github.com/pktviz/pktviz/pkg/render/grid/sink
// [render/nodelink]: https://pkg.go.dev/github.com/pktviz/pktviz/pkg/render/nodelink
// [pipeline]: https://pkg.go.dev/github.com/pktviz/pktviz/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/pktviz/pktviz/pkg/cache
// [config]: https://pkg.go.dev/github.com/pktviz/pktviz/pkg/config
// [httputil]: https://pkg.go.dev/github.com/pktviz/pktviz/pkg/httputil
// [observability]: https://pkg.go.dev/github.com/pktviz/pktviz/pkg/observability
package pkg

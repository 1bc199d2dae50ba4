// Package render provides diagram rendering for packet layouts.
//
// # Overview
//
// This package contains the rendering pipeline that transforms laid-out
// packets into visual outputs. It provides:
//
//   - Generic format conversion (SVG to PDF/PNG)
//   - Grid visualization (in [grid] subpackage)
//   - Node-link structure views (in [nodelink] subpackage)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). These are used by both
// grid and node-link renderers.
//
//	svg := sink.RenderSVG(layout, opts...)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// # Grid Visualization
//
// The [grid] subpackage renders packets as the classic RFC-style field grid:
// one fixed-width row of bits per word, each field a labeled rectangle.
//
// Key grid subpackages:
//   - [grid]: Pixel geometry computation
//   - [grid/sink]: Output formats (SVG, JSON, PNG, PDF)
//   - [grid/styles]: Visual styles (classic, blueprint)
//
// # Node-Link Views
//
// The [nodelink] subpackage renders the field sequence as a directed chain
// diagram using Graphviz, useful for inspecting field order and sizes
// without the bit grid.
//
//	dot := nodelink.ToDOT(d, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
//
// [grid]: github.com/pktviz/pktviz/pkg/render/grid
// [grid/sink]: github.com/pktviz/pktviz/pkg/render/grid/sink
// [grid/styles]: github.com/pktviz/pktviz/pkg/render/grid/styles
// [nodelink]: github.com/pktviz/pktviz/pkg/render/nodelink
package render

package pipeline

import (
	"github.com/pktviz/pktviz/pkg/diagram"
	"github.com/pktviz/pktviz/pkg/errors"
	"github.com/pktviz/pktviz/pkg/render/grid"
	"github.com/pktviz/pktviz/pkg/render/grid/sink"
	"github.com/pktviz/pktviz/pkg/render/grid/styles"
	"github.com/pktviz/pktviz/pkg/render/nodelink"
)

// Render generates output artifacts in the requested formats.
// Grid runs render from the layout; nodelink runs render from the diagram.
func Render(l grid.Layout, d *diagram.Diagram, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	if opts.IsNodelink() {
		return RenderNodelink(d, opts)
	}
	return renderGrid(l, opts)
}

// RenderNodelink generates nodelink outputs from a diagram.
func RenderNodelink(d *diagram.Diagram, opts Options) (map[string][]byte, error) {
	dot := nodelink.ToDOT(d, nodelink.Options{Detailed: opts.Detailed})

	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data, err = nodelink.RenderSVG(dot)
		case FormatPNG:
			data, err = nodelink.RenderPNG(dot, opts.Scale)
		case FormatPDF:
			data, err = nodelink.RenderPDF(dot)
		case FormatJSON:
			data, err = MarshalDiagram(d)
		default:
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported nodelink format: %s", format)
		}

		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "render %s", format)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// renderGrid generates grid outputs from a layout.
func renderGrid(l grid.Layout, opts Options) (map[string][]byte, error) {
	svgOpts := buildSVGOptions(opts)
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = sink.RenderSVG(l, svgOpts...)
		case FormatPNG:
			data, err = sink.RenderPNG(l, sink.WithPNGSVGOptions(svgOpts...), sink.WithScale(opts.Scale))
		case FormatPDF:
			data, err = sink.RenderPDF(l, sink.WithPDFSVGOptions(svgOpts...))
		case FormatJSON:
			data, err = sink.RenderJSON(l, sink.WithJSONStyle(opts.Style))
		default:
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported grid format: %s", format)
		}

		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "render %s", format)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// buildSVGOptions maps the style name to a style implementation.
func buildSVGOptions(opts Options) []sink.SVGOption {
	switch opts.Style {
	case StyleBlueprint:
		return []sink.SVGOption{sink.WithStyle(styles.Blueprint{})}
	default:
		return []sink.SVGOption{sink.WithStyle(styles.Classic{})}
	}
}

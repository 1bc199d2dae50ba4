package pipeline

import (
	"encoding/json"

	"github.com/pktviz/pktviz/pkg/diagram"
	"github.com/pktviz/pktviz/pkg/errors"
	"github.com/pktviz/pktviz/pkg/layout"
	"github.com/pktviz/pktviz/pkg/render/grid"
)

// GenerateLayout wraps the diagram's fields into rows and computes pixel
// geometry. Nodelink runs skip this stage: Graphviz owns their geometry.
func GenerateLayout(d *diagram.Diagram, opts Options) (grid.Layout, error) {
	layoutOpts := opts.LayoutOptions().Resolve()

	var packet layout.Packet
	if err := layout.Populate(d, layoutOpts, &packet); err != nil {
		return grid.Layout{}, err
	}

	return grid.Build(&packet, layoutOpts), nil
}

// MarshalLayout serializes a layout for caching and JSON responses.
func MarshalLayout(l grid.Layout) ([]byte, error) {
	data, err := json.Marshal(l)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "serialize layout")
	}
	return data, nil
}

// UnmarshalLayout deserializes a cached layout.
func UnmarshalLayout(data []byte) (grid.Layout, error) {
	var l grid.Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return grid.Layout{}, errors.Wrap(errors.ErrCodeInternal, err, "deserialize layout")
	}
	return l, nil
}

// MarshalDiagram serializes a diagram for caching.
func MarshalDiagram(d *diagram.Diagram) ([]byte, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "serialize diagram")
	}
	return data, nil
}

// UnmarshalDiagram deserializes a cached diagram.
func UnmarshalDiagram(data []byte) (*diagram.Diagram, error) {
	var d diagram.Diagram
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "deserialize diagram")
	}
	return &d, nil
}

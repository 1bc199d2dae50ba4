package sink

import (
	"encoding/json"

	"github.com/pktviz/pktviz/pkg/render/grid"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	style string
}

// WithJSONStyle records the style name in the JSON output for
// round-trip rendering.
func WithJSONStyle(s string) JSONOption { return func(r *jsonRenderer) { r.style = s } }

type jsonOutput struct {
	Width      float64     `json:"width"`
	Height     float64     `json:"height"`
	BitsPerRow int         `json:"bits_per_row"`
	ShowBits   bool        `json:"show_bits"`
	Style      string      `json:"style,omitempty"`
	Title      string      `json:"title,omitempty"`
	AccTitle   string      `json:"acc_title,omitempty"`
	AccDescr   string      `json:"acc_descr,omitempty"`
	Cells      []grid.Cell `json:"cells"`
}

// RenderJSON exports the layout as a pretty-printed JSON document.
// This is the data interchange format for pktviz, enabling:
//
//   - Integration with external visualization tools
//   - Caching computed layouts for fast re-rendering
//   - Round-trip rendering (re-import and render identically)
//
// RenderJSON returns an error only if JSON marshaling fails. It does not
// modify l and is safe to call concurrently.
func RenderJSON(l grid.Layout, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Width:      l.FrameWidth,
		Height:     l.FrameHeight,
		BitsPerRow: l.BitsPerRow,
		ShowBits:   l.ShowBits,
		Style:      r.style,
		Title:      l.Title,
		AccTitle:   l.AccTitle,
		AccDescr:   l.AccDescr,
		Cells:      l.Cells,
	}

	return json.MarshalIndent(out, "", "  ")
}

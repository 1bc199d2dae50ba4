// Package grid computes pixel geometry for packet diagram rendering.
//
// The geometry stage is a stateless mapping from a packet's word/column
// structure to absolute pixel coordinates. It performs no validation and
// cannot fail independently of the data it is given; invalid input is
// rejected earlier by the layout stage.
package grid

import (
	"github.com/pktviz/pktviz/pkg/layout"
)

// Cell is one sub-block positioned in pixel space.
type Cell struct {
	Row   int    `json:"row"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Label string `json:"label"`

	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Bits returns the number of bits the cell spans.
func (c Cell) Bits() int { return c.End - c.Start + 1 }

// CenterX returns the horizontal center of the cell.
func (c Cell) CenterX() float64 { return c.X + c.W/2 }

// CenterY returns the vertical center of the cell.
func (c Cell) CenterY() float64 { return c.Y + c.H/2 }

// Layout holds the positioned cells of one diagram plus the frame metrics
// the sinks need to emit a complete document.
type Layout struct {
	FrameWidth  float64 `json:"frame_width"`
	FrameHeight float64 `json:"frame_height"`

	BitsPerRow int  `json:"bits_per_row"`
	RowHeight  int  `json:"row_height"`
	PaddingY   int  `json:"padding_y"`
	ShowBits   bool `json:"show_bits"`

	Title    string `json:"title,omitempty"`
	AccTitle string `json:"acc_title,omitempty"`
	AccDescr string `json:"acc_descr,omitempty"`

	Cells []Cell `json:"cells"`
}

// Build maps the packet's words to pixel-space cells.
//
// For a sub-block in row r: x is the block's column offset within the row
// times the bit width, y advances by one row height plus vertical padding
// per row, the width is the block's bit count times the bit width minus the
// horizontal padding, and the height is the row height.
func Build(p *layout.Packet, opts layout.Options) Layout {
	opts = opts.Resolve()

	l := Layout{
		FrameWidth: float64(opts.BitsPerRow * opts.BitWidth),
		BitsPerRow: opts.BitsPerRow,
		RowHeight:  opts.RowHeight,
		PaddingY:   opts.PadY(),
		ShowBits:   opts.BitsShown(),
		Title:      p.Title,
		AccTitle:   p.AccTitle,
		AccDescr:   p.AccDescr,
		Cells:      make([]Cell, 0, p.SubBlockCount()),
	}

	for r, word := range p.Words {
		for _, b := range word {
			l.Cells = append(l.Cells, Cell{
				Row:   r,
				Start: b.Start,
				End:   b.End,
				Label: b.Label,
				X:     float64((b.Start % opts.BitsPerRow) * opts.BitWidth),
				Y:     float64(r*(opts.RowHeight+opts.PadY()) + opts.PadY()),
				W:     float64(b.Bits()*opts.BitWidth - opts.PadX()),
				H:     float64(opts.RowHeight),
			})
		}
	}

	l.FrameHeight = float64(len(p.Words)*(opts.RowHeight+opts.PadY()) + opts.PadY())
	return l
}

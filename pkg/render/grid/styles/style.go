package styles

import "bytes"

// Style defines the visual appearance for grid rendering.
// Implementations control how field blocks, labels, bit indices, and the
// diagram title are drawn.
type Style interface {
	// Name returns the style's identifier (e.g., "classic").
	Name() string
	// Background returns the canvas fill color, or "" for transparent.
	Background() string
	// RenderDefs writes SVG <defs> content (CSS classes, filters).
	RenderDefs(buf *bytes.Buffer)
	// RenderBlock writes the SVG for a single field rectangle.
	RenderBlock(buf *bytes.Buffer, b Block)
	// RenderText writes the SVG for a field's label text.
	RenderText(buf *bytes.Buffer, b Block)
	// RenderBitIndex writes a bit index annotation at the given anchor.
	RenderBitIndex(buf *bytes.Buffer, x, y float64, bit int, anchor string)
	// RenderTitle writes the diagram title centered at the given position.
	RenderTitle(buf *bytes.Buffer, cx, y float64, title string)
}

// Block contains all data needed to render a single field cell.
type Block struct {
	Label      string  // Display text
	Start, End int     // Inclusive bit range
	X, Y, W, H float64 // Position and dimensions
	CX, CY     float64 // Center coordinates (for text)
}

package styles

import (
	"bytes"
	"fmt"
)

// Classic renders the traditional RFC-style field grid: white blocks with
// thin dark strokes and small grey bit indices.
type Classic struct{}

// Name returns "classic".
func (Classic) Name() string { return "classic" }

// Background returns transparent.
func (Classic) Background() string { return "" }

// RenderDefs writes the shared CSS classes for classic rendering.
func (Classic) RenderDefs(buf *bytes.Buffer) {
	buf.WriteString(`  <style>
    .pkt-block { fill: #efefef; stroke: #333333; stroke-width: 1; }
    .pkt-label { fill: #111111; font-family: "Helvetica Neue", Arial, sans-serif; }
    .pkt-bit { fill: #666666; font-family: "Helvetica Neue", Arial, sans-serif; font-size: 9px; }
    .pkt-title { fill: #111111; font-family: "Helvetica Neue", Arial, sans-serif; font-size: 16px; font-weight: bold; }
  </style>
`)
}

// RenderBlock draws the field rectangle.
func (Classic) RenderBlock(buf *bytes.Buffer, b Block) {
	fmt.Fprintf(buf, `  <rect class="pkt-block" x="%.1f" y="%.1f" width="%.1f" height="%.1f"/>`+"\n",
		b.X, b.Y, b.W, b.H)
}

// RenderText draws the field label centered in the block.
func (Classic) RenderText(buf *bytes.Buffer, b Block) {
	fmt.Fprintf(buf, `  <text class="pkt-label" x="%.1f" y="%.1f" font-size="%.1f" text-anchor="middle" dominant-baseline="central">%s</text>`+"\n",
		b.CX, b.CY, FontSize(b), EscapeXML(TruncateLabel(b)))
}

// RenderBitIndex draws a bit index annotation above the block edge.
func (Classic) RenderBitIndex(buf *bytes.Buffer, x, y float64, bit int, anchor string) {
	fmt.Fprintf(buf, `  <text class="pkt-bit" x="%.1f" y="%.1f" text-anchor="%s">%d</text>`+"\n",
		x, y, anchor, bit)
}

// RenderTitle draws the diagram title centered above the grid.
func (Classic) RenderTitle(buf *bytes.Buffer, cx, y float64, title string) {
	fmt.Fprintf(buf, `  <text class="pkt-title" x="%.1f" y="%.1f" text-anchor="middle">%s</text>`+"\n",
		cx, y, EscapeXML(title))
}

// Ensure Classic implements Style.
var _ Style = Classic{}

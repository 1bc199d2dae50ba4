package styles

import (
	"bytes"
	"fmt"
)

// Blueprint renders the grid as a technical drawing: dark blue canvas,
// light strokes, monospace labels.
type Blueprint struct{}

// Name returns "blueprint".
func (Blueprint) Name() string { return "blueprint" }

// Background returns the blueprint canvas color.
func (Blueprint) Background() string { return "#173f5f" }

// RenderDefs writes the shared CSS classes for blueprint rendering.
func (Blueprint) RenderDefs(buf *bytes.Buffer) {
	buf.WriteString(`  <style>
    .pkt-block { fill: none; stroke: #bcd4e6; stroke-width: 1.2; }
    .pkt-label { fill: #e8f1f8; font-family: "SF Mono", Menlo, monospace; }
    .pkt-bit { fill: #8fb4cc; font-family: "SF Mono", Menlo, monospace; font-size: 9px; }
    .pkt-title { fill: #e8f1f8; font-family: "SF Mono", Menlo, monospace; font-size: 16px; letter-spacing: 1px; }
  </style>
`)
}

// RenderBlock draws the field outline.
func (Blueprint) RenderBlock(buf *bytes.Buffer, b Block) {
	fmt.Fprintf(buf, `  <rect class="pkt-block" x="%.1f" y="%.1f" width="%.1f" height="%.1f"/>`+"\n",
		b.X, b.Y, b.W, b.H)
}

// RenderText draws the field label centered in the block.
func (Blueprint) RenderText(buf *bytes.Buffer, b Block) {
	fmt.Fprintf(buf, `  <text class="pkt-label" x="%.1f" y="%.1f" font-size="%.1f" text-anchor="middle" dominant-baseline="central">%s</text>`+"\n",
		b.CX, b.CY, FontSize(b), EscapeXML(TruncateLabel(b)))
}

// RenderBitIndex draws a bit index annotation above the block edge.
func (Blueprint) RenderBitIndex(buf *bytes.Buffer, x, y float64, bit int, anchor string) {
	fmt.Fprintf(buf, `  <text class="pkt-bit" x="%.1f" y="%.1f" text-anchor="%s">%d</text>`+"\n",
		x, y, anchor, bit)
}

// RenderTitle draws the diagram title centered above the grid.
func (Blueprint) RenderTitle(buf *bytes.Buffer, cx, y float64, title string) {
	fmt.Fprintf(buf, `  <text class="pkt-title" x="%.1f" y="%.1f" text-anchor="middle">%s</text>`+"\n",
		cx, y, EscapeXML(title))
}

// Ensure Blueprint implements Style.
var _ Style = Blueprint{}

// Package sink emits packet grid layouts in the supported output formats.
//
// SVG is the native format; PNG and PDF are produced by converting the SVG
// through rsvg-convert, and JSON exports the raw layout data for other
// tools.
package sink

import (
	"bytes"
	"fmt"

	"github.com/pktviz/pktviz/pkg/render/grid"
	"github.com/pktviz/pktviz/pkg/render/grid/styles"
)

// titleHeight is the vertical strip reserved above the grid for the title.
const titleHeight = 28.0

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style styles.Style
}

// WithStyle selects the visual style. Defaults to [styles.Classic].
func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }

// RenderSVG renders the layout as a standalone SVG document.
func RenderSVG(l grid.Layout, opts ...SVGOption) []byte {
	r := svgRenderer{style: styles.Classic{}}
	for _, opt := range opts {
		opt(&r)
	}

	offset := 0.0
	if l.Title != "" {
		offset = titleHeight
	}
	totalHeight := l.FrameHeight + offset

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f" role="img">`+"\n",
		l.FrameWidth, totalHeight, l.FrameWidth, totalHeight)

	if l.AccTitle != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", styles.EscapeXML(l.AccTitle))
	}
	if l.AccDescr != "" {
		fmt.Fprintf(&buf, "  <desc>%s</desc>\n", styles.EscapeXML(l.AccDescr))
	}

	r.style.RenderDefs(&buf)

	if bg := r.style.Background(); bg != "" {
		fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
			l.FrameWidth, totalHeight, bg)
	}

	if l.Title != "" {
		r.style.RenderTitle(&buf, l.FrameWidth/2, titleHeight-8, l.Title)
	}

	if offset != 0 {
		fmt.Fprintf(&buf, `  <g transform="translate(0, %.1f)">`+"\n", offset)
	}
	renderCells(&buf, &r, l)
	if offset != 0 {
		buf.WriteString("  </g>\n")
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderCells(buf *bytes.Buffer, r *svgRenderer, l grid.Layout) {
	for _, c := range l.Cells {
		b := styles.Block{
			Label: c.Label,
			Start: c.Start,
			End:   c.End,
			X:     c.X, Y: c.Y,
			W: c.W, H: c.H,
			CX: c.CenterX(), CY: c.CenterY(),
		}
		r.style.RenderBlock(buf, b)
		r.style.RenderText(buf, b)

		if l.ShowBits {
			bitY := c.Y - 2
			r.style.RenderBitIndex(buf, c.X, bitY, c.Start, "start")
			if c.Bits() > 1 {
				r.style.RenderBitIndex(buf, c.X+c.W, bitY, c.End, "end")
			}
		}
	}
}

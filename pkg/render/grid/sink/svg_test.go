package sink

import (
	"strings"
	"testing"

	"github.com/pktviz/pktviz/pkg/diagram"
	"github.com/pktviz/pktviz/pkg/layout"
	"github.com/pktviz/pktviz/pkg/render/grid"
	"github.com/pktviz/pktviz/pkg/render/grid/styles"
)

func udpLayout(t *testing.T) grid.Layout {
	t.Helper()
	d := &diagram.Diagram{
		Title:    "UDP Packet",
		AccTitle: "UDP packet structure",
		AccDescr: "Fields of a UDP datagram header",
		Fields: []diagram.Field{
			{Start: 0, End: 15, Label: "Source Port"},
			{Start: 16, End: 31, Label: "Destination Port"},
			{Start: 32, End: 47, Label: "Length"},
			{Start: 48, End: 63, Label: "Checksum"},
		},
	}
	var p layout.Packet
	opts := layout.Options{BitsPerRow: 32}
	if err := layout.Populate(d, opts, &p); err != nil {
		t.Fatalf("Populate failed: %v", err)
	}
	return grid.Build(&p, opts)
}

func TestRenderSVGStructure(t *testing.T) {
	svg := string(RenderSVG(udpLayout(t)))

	for _, want := range []string{
		`<svg xmlns="http://www.w3.org/2000/svg"`,
		"<title>UDP packet structure</title>",
		"<desc>Fields of a UDP datagram header</desc>",
		"UDP Packet",
		"Source Port",
		"Checksum",
		"</svg>",
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("SVG missing %q", want)
		}
	}

	if got := strings.Count(svg, "pkt-block"); got < 5 {
		t.Errorf("expected at least 4 block rects plus defs, found %d pkt-block occurrences", got)
	}
}

func TestRenderSVGBitIndices(t *testing.T) {
	svg := string(RenderSVG(udpLayout(t)))

	// Each 16-bit field shows its start and end bit index.
	for _, want := range []string{">0<", ">15<", ">16<", ">31<", ">48<", ">63<"} {
		if !strings.Contains(svg, want) {
			t.Errorf("SVG missing bit index %s", want)
		}
	}
}

func TestRenderSVGWithoutBits(t *testing.T) {
	d := &diagram.Diagram{Fields: []diagram.Field{{Start: 0, End: 7, Label: "A"}}}
	var p layout.Packet
	opts := layout.Options{BitsPerRow: 8, ShowBits: layout.ShowBitsPtr(false)}
	if err := layout.Populate(d, opts, &p); err != nil {
		t.Fatal(err)
	}
	svg := string(RenderSVG(grid.Build(&p, opts)))

	if strings.Contains(svg, "pkt-bit\"") && strings.Contains(svg, `class="pkt-bit" x=`) {
		t.Error("bit indices rendered although ShowBits is off")
	}
}

func TestRenderSVGBlueprintBackground(t *testing.T) {
	svg := string(RenderSVG(udpLayout(t), WithStyle(styles.Blueprint{})))

	if !strings.Contains(svg, `fill="#173f5f"`) {
		t.Error("blueprint style should paint a canvas background")
	}
}

func TestRenderSVGDeterministic(t *testing.T) {
	l := udpLayout(t)
	a := RenderSVG(l)
	b := RenderSVG(l)
	if string(a) != string(b) {
		t.Error("RenderSVG should be deterministic for identical layouts")
	}
}

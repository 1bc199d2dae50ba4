package nodelink

import (
	"strings"
	"testing"

	"github.com/pktviz/pktviz/pkg/diagram"
)

func testDiagram() *diagram.Diagram {
	return &diagram.Diagram{
		Title: "UDP Packet",
		Fields: []diagram.Field{
			{Start: 0, End: 15, Label: "Source Port"},
			{Start: 16, End: 31, Label: "Destination Port"},
			{Start: 32, End: 32, Label: "Flag"},
		},
	}
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(testDiagram(), Options{})

	for _, want := range []string{
		"digraph packet {",
		"rankdir=LR",
		`"Source Port|bits 0-15"`,
		`"Flag|bit 32"`,
		"f0 -> f1;",
		"f1 -> f2;",
		`label="UDP Packet"`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
}

func TestToDOTDetailed(t *testing.T) {
	dot := ToDOT(testDiagram(), Options{Detailed: true})

	if !strings.Contains(dot, "16 bits") {
		t.Errorf("detailed DOT should include bit counts:\n%s", dot)
	}
	if !strings.Contains(dot, "1 bit") {
		t.Errorf("detailed DOT should include single-bit count:\n%s", dot)
	}
}

func TestToDOTNoTitle(t *testing.T) {
	d := testDiagram()
	d.Title = ""
	dot := ToDOT(d, Options{})

	if strings.Contains(dot, "labelloc") {
		t.Error("untitled diagram should not emit a graph label")
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="8pt" height="6pt" viewBox="0.00 0.00 120.50 80.25" xmlns="http://www.w3.org/2000/svg">`)
	out := string(normalizeViewBox(in))

	if !strings.Contains(out, `viewBox="0 0 120.50 80.25"`) {
		t.Errorf("viewBox not normalized: %s", out)
	}
	if !strings.Contains(out, `width="121"`) && !strings.Contains(out, `width="120"`) {
		t.Errorf("pixel width missing: %s", out)
	}
}

func TestNormalizeViewBoxPassthrough(t *testing.T) {
	in := []byte(`<svg>no viewbox here</svg>`)
	if got := string(normalizeViewBox(in)); got != string(in) {
		t.Errorf("SVG without viewBox should pass through unchanged, got %s", got)
	}
}

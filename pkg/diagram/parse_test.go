package diagram

import (
	"strings"
	"testing"

	"github.com/pktviz/pktviz/pkg/errors"
)

const udpSource = `packet
title UDP Packet
accTitle: UDP packet structure
accDescr: Fields of a UDP datagram

%% header fields
0-15: "Source Port"
16-31: "Destination Port"
32-47: "Length"
48-63: "Checksum"
`

func TestParseUDP(t *testing.T) {
	d, err := ParseString(udpSource)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if d.Title != "UDP Packet" {
		t.Errorf("Title = %q, want %q", d.Title, "UDP Packet")
	}
	if d.AccTitle != "UDP packet structure" {
		t.Errorf("AccTitle = %q", d.AccTitle)
	}
	if d.AccDescr != "Fields of a UDP datagram" {
		t.Errorf("AccDescr = %q", d.AccDescr)
	}

	want := []Field{
		{0, 15, "Source Port"},
		{16, 31, "Destination Port"},
		{32, 47, "Length"},
		{48, 63, "Checksum"},
	}
	if len(d.Fields) != len(want) {
		t.Fatalf("got %d fields, want %d", len(d.Fields), len(want))
	}
	for i, f := range d.Fields {
		if f != want[i] {
			t.Errorf("field %d = %+v, want %+v", i, f, want[i])
		}
	}
	if d.TotalBits() != 64 {
		t.Errorf("TotalBits = %d, want 64", d.TotalBits())
	}
}

func TestParseSingleBit(t *testing.T) {
	d, err := ParseString(`0-3: "Version"
4: "Flag"`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	f := d.Fields[1]
	if f.Start != 4 || f.End != 4 {
		t.Errorf("single-bit field = %+v, want start=end=4", f)
	}
	if f.Bits() != 1 {
		t.Errorf("Bits() = %d, want 1", f.Bits())
	}
}

func TestParseRelative(t *testing.T) {
	d, err := ParseString(`0-15: "Source Port"
+16: "Destination Port"
+8: "TTL"`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	want := []Field{
		{0, 15, "Source Port"},
		{16, 31, "Destination Port"},
		{32, 39, "TTL"},
	}
	for i, f := range d.Fields {
		if f != want[i] {
			t.Errorf("field %d = %+v, want %+v", i, f, want[i])
		}
	}
}

func TestParseRelativeFirstField(t *testing.T) {
	// A relative first field anchors at bit 0.
	d, err := ParseString(`+8: "Opcode"`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if f := d.Fields[0]; f.Start != 0 || f.End != 7 {
		t.Errorf("field = %+v, want [0,7]", f)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code errors.Code
	}{
		{"empty source", "", errors.ErrCodeEmptyDiagram},
		{"only comments", "%% nothing here\n", errors.ErrCodeEmptyDiagram},
		{"missing quotes", `0-15: Source Port`, errors.ErrCodeParse},
		{"missing colon", `0-15 "Source Port"`, errors.ErrCodeParse},
		{"garbage line", `hello world`, errors.ErrCodeParse},
		{"zero relative", `+0: "Nothing"`, errors.ErrCodeParse},
		{"empty label", `0-15: ""`, errors.ErrCodeParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(tt.src)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("error code = %q, want %q (err: %v)", errors.GetCode(err), tt.code, err)
			}
		})
	}
}

func TestParseErrorNamesLine(t *testing.T) {
	_, err := ParseString(`0-15: "Source Port"
bad line here`)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error should name the offending line: %v", err)
	}
}

func TestParseDoesNotValidateRanges(t *testing.T) {
	// Inverted ranges and gaps are syntax-valid; the layout stage rejects them.
	d, err := ParseString(`5-2: "bad"`)
	if err != nil {
		t.Fatalf("Parse should accept inverted ranges: %v", err)
	}
	if d.Fields[0].Start != 5 || d.Fields[0].End != 2 {
		t.Errorf("field = %+v, want raw [5,2]", d.Fields[0])
	}
}

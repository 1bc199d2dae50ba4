// Package diagram defines the packet diagram source model and its parser.
//
// A diagram is an ordered list of labeled bit ranges (fields) plus optional
// title and accessibility text. The parser turns the line-oriented source
// format into a [Diagram]; the layout package consumes the result.
//
// # Source Format
//
// The source is line oriented. Blank lines and %% comments are skipped.
//
//	packet
//	title UDP Packet
//	accTitle: UDP packet structure
//	accDescr: Fields of a UDP datagram header
//	0-15: "Source Port"
//	16-31: "Destination Port"
//	32-47: "Length"
//	48-63: "Checksum"
//	+32: "Data (variable length)"
//
// Field lines take three forms:
//
//	start-end: "Label"   inclusive bit range
//	start: "Label"       single bit
//	+bits: "Label"       relative range, starting right after the previous field
package diagram

// Field is one labeled, inclusive bit range of a packet.
// Fields are ordered; the layout stage enforces that each field starts
// exactly one bit after its predecessor ends.
type Field struct {
	Start int    `json:"start" bson:"start"`
	End   int    `json:"end" bson:"end"`
	Label string `json:"label" bson:"label"`
}

// Bits returns the number of bits the field spans.
func (f Field) Bits() int { return f.End - f.Start + 1 }

// Bit returns a single-bit field. This is the constructor form of the
// "end defaults to start" rule for callers building diagrams in code.
func Bit(start int, label string) Field {
	return Field{Start: start, End: start, Label: label}
}

// Range returns a multi-bit field covering [start, end].
func Range(start, end int, label string) Field {
	return Field{Start: start, End: end, Label: label}
}

// Diagram is a parsed packet diagram: the ordered field list plus
// optional title and accessibility metadata.
type Diagram struct {
	Fields   []Field `json:"fields" bson:"fields"`
	Title    string  `json:"title,omitempty" bson:"title,omitempty"`
	AccTitle string  `json:"acc_title,omitempty" bson:"acc_title,omitempty"`
	AccDescr string  `json:"acc_descr,omitempty" bson:"acc_descr,omitempty"`
}

// TotalBits returns the number of bits covered by all fields.
// It assumes fields are contiguous; validation happens during layout.
func (d *Diagram) TotalBits() int {
	n := 0
	for _, f := range d.Fields {
		n += f.Bits()
	}
	return n
}

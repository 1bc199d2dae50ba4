package layout

import "github.com/pktviz/pktviz/pkg/diagram"

// Word is one rendered row of the diagram: the sub-blocks whose bits fall
// within a single BitsPerRow-wide window.
type Word []diagram.Field

// Bits returns the total number of bits covered by the word.
func (w Word) Bits() int {
	n := 0
	for _, b := range w {
		n += b.Bits()
	}
	return n
}

// Packet accumulates the words of one diagram render plus the diagram's
// accessory metadata. A Packet is owned by its caller: create one per
// render, or Clear it between renders. It provides no internal locking.
type Packet struct {
	Words    []Word `json:"words" bson:"words"`
	Title    string `json:"title,omitempty" bson:"title,omitempty"`
	AccTitle string `json:"acc_title,omitempty" bson:"acc_title,omitempty"`
	AccDescr string `json:"acc_descr,omitempty" bson:"acc_descr,omitempty"`
}

// Clear resets the packet for reuse with another diagram.
// No state leaks across renders after a Clear.
func (p *Packet) Clear() {
	p.Words = nil
	p.Title = ""
	p.AccTitle = ""
	p.AccDescr = ""
}

// WordCount returns the number of rows in the packet.
func (p *Packet) WordCount() int { return len(p.Words) }

// SubBlockCount returns the total number of sub-blocks across all words.
func (p *Packet) SubBlockCount() int {
	n := 0
	for _, w := range p.Words {
		n += len(w)
	}
	return n
}

// TotalBits returns the number of bits covered by all words.
func (p *Packet) TotalBits() int {
	n := 0
	for _, w := range p.Words {
		n += w.Bits()
	}
	return n
}

// pushWord appends a completed row. Words are append-only during populate.
func (p *Packet) pushWord(w Word) {
	p.Words = append(p.Words, w)
}

package layout_test

import (
	"fmt"

	"github.com/pktviz/pktviz/pkg/diagram"
	"github.com/pktviz/pktviz/pkg/layout"
)

func ExamplePopulate() {
	d := &diagram.Diagram{
		Title: "Example",
		Fields: []diagram.Field{
			{Start: 0, End: 7, Label: "Opcode"},
			{Start: 8, End: 23, Label: "Length"},
		},
	}

	var p layout.Packet
	if err := layout.Populate(d, layout.Options{BitsPerRow: 16}, &p); err != nil {
		fmt.Println("layout failed:", err)
		return
	}

	for i, w := range p.Words {
		for _, b := range w {
			fmt.Printf("row %d: [%d-%d] %s\n", i, b.Start, b.End, b.Label)
		}
	}
	// Output:
	// row 0: [0-7] Opcode
	// row 0: [8-15] Length
	// row 1: [16-23] Length
}

package layout

import (
	"github.com/pktviz/pktviz/pkg/diagram"
	"github.com/pktviz/pktviz/pkg/errors"
)

// MaxSubBlocks caps the total number of sub-blocks one diagram may emit.
// It bounds the split loop on pathological input (for example a huge field
// rendered one bit per row). Exceeding it aborts the layout with
// DIAGRAM_TOO_LARGE rather than truncating the output.
const MaxSubBlocks = 10000

// Populate lays the diagram's fields out into fixed-width words and appends
// them to p. Fields are processed in order; each must start exactly one bit
// after its predecessor ends, with the first field anchored at bit 0.
//
// Fields wider than the remaining space of the current row are split at the
// row boundary and the remainder continues on the next row. A final partial
// row is flushed, so diagrams whose bit length is not a multiple of
// BitsPerRow keep their last row.
//
// Populate appends only; call p.Clear first when reusing a Packet. The
// returned errors carry codes INVALID_RANGE, NON_CONTIGUOUS_BLOCK or
// DIAGRAM_TOO_LARGE from the errors package.
func Populate(d *diagram.Diagram, opts Options, p *Packet) error {
	opts = opts.Resolve()

	p.Title = d.Title
	p.AccTitle = d.AccTitle
	p.AccDescr = d.AccDescr

	var (
		word         Word
		rowIndex     = 1
		expectedNext = 0
		emitted      = 0
	)

	for _, f := range d.Fields {
		if f.End < f.Start {
			return errors.New(errors.ErrCodeInvalidRange,
				"field %q: end bit %d is before start bit %d", f.Label, f.End, f.Start)
		}
		if f.Start != expectedNext {
			return errors.New(errors.ErrCodeNonContiguous,
				"field %q: expected start bit %d, got %d", f.Label, expectedNext, f.Start)
		}
		expectedNext = f.End + 1

		rest := f
		for {
			if emitted >= MaxSubBlocks {
				return errors.New(errors.ErrCodeDiagramTooLarge,
					"diagram exceeds %d sub-blocks", MaxSubBlocks)
			}

			fit, next, hasRest := split(rest, rowIndex, opts.BitsPerRow)
			word = append(word, fit)
			emitted++

			if fit.End+1 == rowIndex*opts.BitsPerRow {
				p.pushWord(word)
				word = nil
				rowIndex++
			}

			if !hasRest {
				break
			}
			rest = next
		}
	}

	// Flush a trailing partial row so the final word is not dropped when
	// the packet's bit length is not a multiple of BitsPerRow.
	if len(word) > 0 {
		p.pushWord(word)
	}

	return nil
}

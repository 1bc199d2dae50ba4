package layout

import "github.com/pktviz/pktviz/pkg/diagram"

// split cuts a field against the boundary of the current row.
//
// rowIndex counts from 1, so the current row covers bits up to and
// including rowIndex*bitsPerRow - 1. If the whole field fits, split returns
// it unchanged with hasRest = false. Otherwise it returns the part that
// fits the current row and the remainder for the next row; the label is
// carried on both parts so a field spanning several rows shows its name on
// every row.
func split(f diagram.Field, rowIndex, bitsPerRow int) (fit, rest diagram.Field, hasRest bool) {
	limit := rowIndex*bitsPerRow - 1

	if f.End <= limit {
		return f, diagram.Field{}, false
	}

	fit = diagram.Field{Start: f.Start, End: limit, Label: f.Label}
	rest = diagram.Field{Start: limit + 1, End: f.End, Label: f.Label}
	return fit, rest, true
}

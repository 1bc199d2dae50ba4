// Package layout computes the row structure of a packet diagram.
//
// The layouter takes the ordered field list of a [diagram.Diagram] and
// re-partitions it into fixed-width rows ("words"): fields that straddle a
// row boundary are split into sub-blocks, one per row, each carrying the
// original label. The result is a [Packet], a caller-owned store of words
// ready for the geometry stage in pkg/render/grid.
//
// # Usage
//
//	opts := layout.Options{BitsPerRow: 8}.Resolve()
//	var p layout.Packet
//	if err := layout.Populate(d, opts, &p); err != nil {
//	    return err
//	}
//	for _, word := range p.Words { ... }
//
// Layout is a pure re-partitioning: the concatenation of all sub-block
// ranges equals the concatenation of the input field ranges. Fields must be
// contiguous (each starts one bit after its predecessor ends, anchored at
// bit 0) and well-formed (end >= start); violations abort the layout with
// a coded error.
//
// A Packet is not safe for concurrent mutation; callers own serialization
// and should Clear a Packet before reusing it for another diagram.
package layout

package layout

import "testing"

func TestResolveDefaults(t *testing.T) {
	opts := Options{}.Resolve()

	if opts.BitsPerRow != DefaultBitsPerRow {
		t.Errorf("BitsPerRow = %d, want %d", opts.BitsPerRow, DefaultBitsPerRow)
	}
	if opts.BitWidth != DefaultBitWidth {
		t.Errorf("BitWidth = %d, want %d", opts.BitWidth, DefaultBitWidth)
	}
	if opts.RowHeight != DefaultRowHeight {
		t.Errorf("RowHeight = %d, want %d", opts.RowHeight, DefaultRowHeight)
	}
	if opts.PadX() != DefaultPaddingX {
		t.Errorf("PadX = %d, want %d", opts.PadX(), DefaultPaddingX)
	}
	if !opts.BitsShown() {
		t.Error("ShowBits should default to on")
	}
}

func TestResolveShowBitsGrowsPaddingY(t *testing.T) {
	withBits := Options{}.Resolve()
	withoutBits := Options{ShowBits: ShowBitsPtr(false)}.Resolve()

	if withBits.PadY() != withoutBits.PadY()+showBitsPadding {
		t.Errorf("PadY with bits = %d, without = %d, want difference of %d",
			withBits.PadY(), withoutBits.PadY(), showBitsPadding)
	}
}

func TestResolveKeepsOverrides(t *testing.T) {
	opts := Options{
		BitsPerRow: 8,
		BitWidth:   16,
		RowHeight:  40,
		PaddingX:   PadPtr(2),
		PaddingY:   PadPtr(3),
		ShowBits:   ShowBitsPtr(false),
	}.Resolve()

	if opts.BitsPerRow != 8 || opts.BitWidth != 16 || opts.RowHeight != 40 {
		t.Errorf("overrides lost: %+v", opts)
	}
	if opts.PadX() != 2 || opts.PadY() != 3 {
		t.Errorf("padding overrides lost: PadX = %d, PadY = %d", opts.PadX(), opts.PadY())
	}
	if opts.BitsShown() {
		t.Error("ShowBits override lost")
	}
}

func TestResolveKeepsExplicitZeroPadding(t *testing.T) {
	// 0 is a valid padding; only nil falls back to the default.
	opts := Options{
		PaddingX: PadPtr(0),
		PaddingY: PadPtr(0),
		ShowBits: ShowBitsPtr(false),
	}.Resolve()

	if opts.PadX() != 0 {
		t.Errorf("PadX = %d, want 0", opts.PadX())
	}
	if opts.PadY() != 0 {
		t.Errorf("PadY = %d, want 0", opts.PadY())
	}
}

func TestResolveDoesNotMutateCallerPadding(t *testing.T) {
	py := 3
	opts := Options{PaddingY: &py}
	_ = opts.Resolve() // ShowBits defaults on, so resolved PaddingY grows

	if py != 3 {
		t.Errorf("caller's padding mutated to %d", py)
	}
}

func TestResolveIdempotent(t *testing.T) {
	// Resolving twice must not add the bit-label padding twice.
	once := Options{}.Resolve()
	twice := once.Resolve()

	if once.PadY() != twice.PadY() {
		t.Errorf("PadY after double resolve = %d, want %d", twice.PadY(), once.PadY())
	}
}

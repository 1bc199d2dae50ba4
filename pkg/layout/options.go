package layout

// Default rendering options. These match the dimensions most protocol
// diagrams are drawn with: 32 bits per row at 32px per bit.
const (
	DefaultBitsPerRow = 32
	DefaultBitWidth   = 32
	DefaultRowHeight  = 32
	DefaultPaddingX   = 5
	DefaultPaddingY   = 5

	// showBitsPadding is the extra vertical space reserved above each row
	// for bit index annotations when ShowBits is enabled.
	showBitsPadding = 10
)

// Options controls row layout and pixel geometry for one diagram render.
// The zero value is usable: Resolve fills every unset field with its default.
//
// The paddings and ShowBits are pointers because zero and false are valid
// explicit settings; nil means "use the default".
type Options struct {
	// BitsPerRow is the number of bits rendered per row before wrapping.
	BitsPerRow int `json:"bits_per_row,omitempty"`

	// BitWidth is the pixel width of a single bit.
	BitWidth int `json:"bit_width,omitempty"`

	// RowHeight is the pixel height of a row.
	RowHeight int `json:"row_height,omitempty"`

	// PaddingX is the horizontal gap between adjacent blocks, in pixels.
	// An explicit 0 renders blocks flush against each other.
	PaddingX *int `json:"padding_x,omitempty"`

	// PaddingY is the vertical gap between rows, in pixels.
	PaddingY *int `json:"padding_y,omitempty"`

	// ShowBits toggles bit index annotations above each block.
	// Defaults to on; use Resolve on a zero Options to get the default.
	ShowBits *bool `json:"show_bits,omitempty"`

	resolved bool
}

// Resolve merges unset fields with the built-in defaults and returns the
// completed options. When bit annotations are shown, PaddingY grows by a
// fixed amount to make room for the index labels. Resolve is idempotent
// and never mutates the integers its receiver points at.
func (o Options) Resolve() Options {
	if o.resolved {
		return o
	}

	if o.BitsPerRow <= 0 {
		o.BitsPerRow = DefaultBitsPerRow
	}
	if o.BitWidth <= 0 {
		o.BitWidth = DefaultBitWidth
	}
	if o.RowHeight <= 0 {
		o.RowHeight = DefaultRowHeight
	}

	px := DefaultPaddingX
	if o.PaddingX != nil && *o.PaddingX >= 0 {
		px = *o.PaddingX
	}
	o.PaddingX = &px

	py := DefaultPaddingY
	if o.PaddingY != nil && *o.PaddingY >= 0 {
		py = *o.PaddingY
	}

	if o.ShowBits == nil {
		show := true
		o.ShowBits = &show
	}
	if *o.ShowBits {
		py += showBitsPadding
	}
	o.PaddingY = &py

	o.resolved = true
	return o
}

// PadX returns the horizontal padding in pixels, treating nil as the default.
func (o Options) PadX() int {
	if o.PaddingX != nil {
		return *o.PaddingX
	}
	return DefaultPaddingX
}

// PadY returns the vertical padding in pixels, treating nil as the default.
// On unresolved options it excludes the headroom Resolve adds for bit
// annotations.
func (o Options) PadY() int {
	if o.PaddingY != nil {
		return *o.PaddingY
	}
	return DefaultPaddingY
}

// BitsShown reports whether bit index annotations are enabled.
// It treats unresolved nil as the default (on).
func (o Options) BitsShown() bool {
	return o.ShowBits == nil || *o.ShowBits
}

// ShowBitsPtr is a convenience for building Options literals.
func ShowBitsPtr(v bool) *bool { return &v }

// PadPtr is a convenience for building Options literals with explicit
// padding values.
func PadPtr(v int) *int { return &v }

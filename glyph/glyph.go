// Package glyph packs the pixel grid of each displayable character into a
// single small integer and unpacks it into display rows.
//
// A payload is the narrowest unsigned integer that holds one marker bit
// followed by the glyph's rows, most significant bit first. Bits left
// over at the bottom are zero. The marker is carried for compatibility
// with older tables and is ignored when decoding.
package glyph

import "strings"

// PixelRows is the height of the display the decoded rows are padded to
const PixelRows = 64

// Shape is the grid size of a glyph
type Shape uint8

const (
	// Standard glyphs are 5 rows of 3 pixels
	Standard Shape = iota
	// Wide glyphs are 5 rows of 5 pixels, for letters like M and W
	Wide
	// Small glyphs are 3 rows of 2 pixels, for light punctuation
	Small
)

type shapeInfo struct {
	name   string
	rows   uint
	width  uint
	nbits  uint
	unused uint
}

var shapes = [...]shapeInfo{
	Standard: {name: "standard", rows: 5, width: 3, nbits: 16, unused: 0},
	Wide:     {name: "wide", rows: 5, width: 5, nbits: 32, unused: 6},
	Small:    {name: "small", rows: 3, width: 2, nbits: 8, unused: 1},
}

func (s Shape) String() string {
	if int(s) < len(shapes) {
		return shapes[s].name
	}
	return "unknown"
}

func (s Shape) info() shapeInfo {
	if int(s) < len(shapes) {
		return shapes[s]
	}
	return shapes[Standard]
}

// Glyph is one packed character. Glyphs are comparable values.
type Glyph struct {
	shape   Shape
	payload uint32
}

// Pixels is the decoded form of a glyph: one right-aligned bit pattern per
// display row, top first, zero past the glyph's height. The values are
// glyph-wide, not display-wide. To merge a row into a 128 column matrix
// row, widen it to the matrix row type and shift it left by
// columns-width-x to put the glyph at column x.
type Pixels [PixelRows]uint64

func StandardGlyph(bits uint16) Glyph {
	return Glyph{shape: Standard, payload: uint32(bits)}
}

func WideGlyph(bits uint32) Glyph {
	return Glyph{shape: Wide, payload: bits}
}

func SmallGlyph(bits uint8) Glyph {
	return Glyph{shape: Small, payload: uint32(bits)}
}

func (g Glyph) Shape() Shape {
	return g.shape
}

// Payload returns the packed bits, marker included
func (g Glyph) Payload() uint32 {
	return g.payload
}

// Height is the number of pixel rows
func (g Glyph) Height() int {
	return int(g.shape.info().rows)
}

// Width is the number of pixel columns
func (g Glyph) Width() int {
	return int(g.shape.info().width)
}

// Visible reports the marker bit. Decode does not look at it.
func (g Glyph) Visible() bool {
	info := g.shape.info()
	return g.payload>>(info.nbits-1)&1 == 1
}

// upper folds ASCII lower case letters
func upper(char byte) byte {
	if char >= 'a' && char <= 'z' {
		return char + 'A' - 'a'
	}
	return char
}

// Encode returns the glyph for an ASCII byte. Letters are case-folded and
// anything without a glyph of its own gets Placeholder.
func Encode(char byte) Glyph {
	if g, ok := glyphValues[upper(char)]; ok {
		return g
	}
	return Placeholder
}

// EncodeRune encodes the low byte of r
func EncodeRune(r rune) Glyph {
	return Encode(byte(r))
}

// Decode unpacks g into display rows. Row i holds the width bits that
// follow the marker and the i rows before it, right-aligned, so the
// glyph's leftmost pixel is the highest of the low width bits and a row
// printed most significant bit first reads left to right. Callers that
// expect the leftmost pixel in bit 0 have to reverse the low width bits.
func Decode(g Glyph) Pixels {
	var out Pixels
	info := g.shape.info()
	mask := uint32(1)<<info.width - 1
	for i := uint(0); i < info.rows; i++ {
		shift := info.nbits - 1 - (i+1)*info.width
		out[i] = uint64(g.payload >> shift & mask)
	}
	return out
}

// Rows is Decode trimmed to the glyph's height
func (g Glyph) Rows() []uint64 {
	pixels := Decode(g)
	return pixels[:g.Height()]
}

// String draws the glyph with '█' for lit pixels, one line per row
func (g Glyph) String() string {
	var sb strings.Builder
	width := g.Width()
	for i, row := range g.Rows() {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for c := width - 1; c >= 0; c-- {
			if row&(1<<uint(c)) != 0 {
				sb.WriteRune('█')
			} else {
				sb.WriteByte(' ')
			}
		}
	}
	return sb.String()
}

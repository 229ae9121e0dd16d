package glyph

import (
	"strings"
	"testing"

	"gotest.tools/assert"
)

func TestShapeLayout(t *testing.T) {
	for s, info := range shapes {
		assert.Equal(t, info.nbits, 1+info.rows*info.width+info.unused, "shape %s", Shape(s))
	}
}

func TestCaseInsensitive(t *testing.T) {
	for c := byte('a'); c <= 'z'; c++ {
		lower := Encode(c)
		upper := Encode(c - 'a' + 'A')
		assert.Equal(t, lower, upper, "%c", c)
		assert.Equal(t, Decode(lower), Decode(upper), "%c", c)
		assert.Assert(t, lower != Placeholder, "%c", c)
	}
}

func TestDeterministic(t *testing.T) {
	for c := 0; c < 256; c++ {
		assert.Equal(t, Encode(byte(c)), Encode(byte(c)))
		assert.Equal(t, Encode(byte(c)).Payload(), Encode(byte(c)).Payload())
	}
}

func TestWideW(t *testing.T) {
	g := Encode('W')
	assert.Equal(t, g.Shape(), Wide)
	assert.Equal(t, g.Height(), 5)
	assert.Equal(t, g.Width(), 5)

	pixels := Decode(g)
	want := []uint64{0b10001, 0b10001, 0b10101, 0b10101, 0b11011}
	for i, row := range want {
		assert.Equal(t, pixels[i], row, "row %d", i)
	}
	for i := 5; i < PixelRows; i++ {
		assert.Equal(t, pixels[i], uint64(0), "row %d", i)
	}

	assert.Equal(t, g.String(), strings.Join([]string{
		"█   █",
		"█   █",
		"█ █ █",
		"█ █ █",
		"██ ██",
	}, "\n"))
}

func TestStandardA(t *testing.T) {
	g := Encode('a')
	assert.Equal(t, g.Shape(), Standard)
	assert.DeepEqual(t, g.Rows(), []uint64{0b111, 0b101, 0b111, 0b101, 0b101})
	assert.Assert(t, g.Visible())
}

func TestAsymmetricGlyphsKeepOrientation(t *testing.T) {
	// the leftmost pixel must stay the highest bit of the row
	assert.DeepEqual(t, Encode('(').Rows(), []uint64{0b001, 0b010, 0b010, 0b010, 0b001})
	assert.DeepEqual(t, Encode('7').Rows(), []uint64{0b111, 0b001, 0b010, 0b010, 0b010})
	assert.DeepEqual(t, Encode('L').Rows(), []uint64{0b100, 0b100, 0b100, 0b100, 0b111})
}

func TestSmallGlyphs(t *testing.T) {
	dot := Encode('.')
	assert.Equal(t, dot.Shape(), Small)
	assert.Equal(t, dot.Height(), 3)
	assert.Equal(t, dot.Width(), 2)
	assert.DeepEqual(t, dot.Rows(), []uint64{0b00, 0b00, 0b10})
	assert.DeepEqual(t, Encode(',').Rows(), []uint64{0b00, 0b01, 0b10})
	assert.DeepEqual(t, Encode(':').Rows(), []uint64{0b10, 0b00, 0b10})
}

func TestPlaceholder(t *testing.T) {
	unsupported := []byte{0x00, 0x07, '\n', 0x7f, '[', '~', '`', 0x80, 0xc3, 0xff}
	for _, c := range unsupported {
		assert.Equal(t, Encode(c), Placeholder, "byte %#x", c)
		assert.Equal(t, Encode(c), Encode(unsupported[0]))
	}
	assert.DeepEqual(t, Placeholder.Rows(), []uint64{0b101, 0b010, 0b101, 0b010, 0b101})
	assert.Equal(t, Placeholder.Shape(), Standard)
}

func TestEncodeRune(t *testing.T) {
	assert.Equal(t, EncodeRune('M'), Encode('M'))
	// low byte of U+0141 is 'A'
	assert.Equal(t, EncodeRune(0x141), Encode('A'))
	assert.Equal(t, EncodeRune('é'), Placeholder)
}

func TestDecodeFitsShape(t *testing.T) {
	for c := 0; c < 256; c++ {
		g := Encode(byte(c))
		pixels := Decode(g)
		limit := uint64(1) << uint(g.Width())
		for i, row := range pixels {
			if i >= g.Height() {
				assert.Equal(t, row, uint64(0), "byte %#x row %d", c, i)
				continue
			}
			assert.Assert(t, row < limit, "byte %#x row %d = %b", c, i, row)
		}
	}
}

func TestDecodeIgnoresMarker(t *testing.T) {
	shown := StandardGlyph(0b1_111_101_111_101_101)
	hidden := StandardGlyph(0b0_111_101_111_101_101)
	assert.Assert(t, shown.Visible())
	assert.Assert(t, !hidden.Visible())
	assert.Equal(t, Decode(shown), Decode(hidden))

	w := WideGlyph(wPixels &^ (1 << 31))
	assert.Equal(t, Decode(w), Decode(Encode('W')))
}

func TestDecodeIgnoresPadding(t *testing.T) {
	padded := WideGlyph(wPixels | 0b111111)
	assert.Equal(t, Decode(padded), Decode(Encode('W')))

	small := SmallGlyph(dotPixels | 1)
	assert.Equal(t, Decode(small), Decode(Encode('.')))
}

func TestTable(t *testing.T) {
	for c, g := range glyphValues {
		assert.Assert(t, g.Visible(), "%q", c)
		assert.Assert(t, c < 'a' || c > 'z', "table keys are upper case: %q", c)
		info := g.Shape().info()
		padding := uint32(1)<<info.unused - 1
		assert.Equal(t, g.Payload()&padding, uint32(0), "%q", c)
	}
	assert.Equal(t, Shape(9).String(), "unknown")
	assert.Equal(t, Wide.String(), "wide")
}

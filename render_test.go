package main

import (
	"testing"

	"dscheirer.com/geardisplay/dotmatrix"
	"dscheirer.com/geardisplay/glyph"
	"gotest.tools/assert"
)

func litColumns(t *testing.T, m dotmatrix.Matrix) (int, int) {
	first, last := -1, -1
	for c := 0; c < dotmatrix.Columns; c++ {
		col, err := m.Column(c)
		assert.NilError(t, err)
		if col != 0 {
			if first < 0 {
				first = c
			}
			last = c
		}
	}
	return first, last
}

func TestWiden(t *testing.T) {
	assert.Equal(t, widen(0b101, 3, 1), uint64(0b101))
	assert.Equal(t, widen(0b101, 3, 2), uint64(0b110011))
	assert.Equal(t, widen(0b10, 2, 3), uint64(0b111000))
}

func TestPlaceBits(t *testing.T) {
	assert.Equal(t, placeBits(0b111, 3, 125), dotmatrix.RowFromUint64(0b111))
	assert.Equal(t, placeBits(0b100, 3, 0), dotmatrix.JoinRow(1<<63, 0))
	// off the left edge
	assert.Equal(t, placeBits(0b011, 3, -1), dotmatrix.JoinRow(0b11<<62, 0))
	// off the right edge
	assert.Equal(t, placeBits(0b110, 3, 126), dotmatrix.RowFromUint64(0b11))
}

func TestDrawGlyph(t *testing.T) {
	var m dotmatrix.Matrix
	assert.NilError(t, drawGlyph(&m, glyph.Encode('W'), 10, 2, 1))

	rows := glyph.Encode('W').Rows()
	for i, bits := range rows {
		row, err := m.Row(2 + i)
		assert.NilError(t, err)
		assert.Equal(t, row, dotmatrix.RowFromUint64(bits).ShiftLeft(uint(dotmatrix.Columns-5-10)))
	}
	b, _ := m.Bit(2, 10)
	assert.Assert(t, b)
	b, _ = m.Bit(2, 14)
	assert.Assert(t, b)
	b, _ = m.Bit(2, 11)
	assert.Assert(t, !b)

	// merging keeps what was there
	assert.NilError(t, drawGlyph(&m, glyph.Encode('.'), 0, 0, 1))
	b, _ = m.Bit(2, 10)
	assert.Assert(t, b)
	b, _ = m.Bit(2, 0)
	assert.Assert(t, b)
}

func TestDrawGlyphClipsRows(t *testing.T) {
	var m dotmatrix.Matrix
	assert.NilError(t, drawGlyph(&m, glyph.Encode('8'), 0, 61, 1))
	assert.NilError(t, drawGlyph(&m, glyph.Encode('8'), 0, -3, 1))

	for _, r := range []int{0, 1, 61, 62, 63} {
		row, _ := m.Row(r)
		assert.Assert(t, !row.IsZero(), "row %d", r)
	}
	row, _ := m.Row(30)
	assert.Assert(t, row.IsZero())
}

func TestDrawGlyphScaled(t *testing.T) {
	var m dotmatrix.Matrix
	assert.NilError(t, drawGlyph(&m, glyph.Placeholder, 0, 0, 2))
	// checkerboard: top left block lit, the block beside it dark
	for _, p := range [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}, {2, 2}, {3, 3}} {
		b, _ := m.Bit(p[0], p[1])
		assert.Assert(t, b, "%v", p)
	}
	for _, p := range [][2]int{{0, 2}, {1, 3}, {2, 0}} {
		b, _ := m.Bit(p[0], p[1])
		assert.Assert(t, !b, "%v", p)
	}
	assert.Equal(t, clampScale(0), 1)
	assert.Equal(t, clampScale(100), maxScale)
}

func TestRenderTextRightAligned(t *testing.T) {
	m, err := renderText("A", 1)
	assert.NilError(t, err)
	top := (dotmatrix.Rows - lineHeight) / 2
	want := []uint64{0b111, 0b101, 0b111, 0b101, 0b101}
	for i, bits := range want {
		row, _ := m.Row(top + i)
		assert.Equal(t, row, dotmatrix.RowFromUint64(bits))
	}

	// one blank column between glyphs
	m, err = renderText("II", 1)
	assert.NilError(t, err)
	first, last := litColumns(t, m)
	assert.Equal(t, last, 127)
	assert.Equal(t, first, 121)
	col, _ := m.Column(124)
	assert.Equal(t, col, uint64(0))
}

func TestRenderTextSmallOnBaseline(t *testing.T) {
	m, err := renderText(".", 1)
	assert.NilError(t, err)
	top := (dotmatrix.Rows - lineHeight) / 2
	for r := 0; r < dotmatrix.Rows; r++ {
		row, _ := m.Row(r)
		if r == top+lineHeight-1 {
			assert.Equal(t, row, dotmatrix.RowFromUint64(0b10))
		} else {
			assert.Assert(t, row.IsZero(), "row %d", r)
		}
	}
}

func TestRenderTextCaseAndOverflow(t *testing.T) {
	lower, err := renderText("gear", 2)
	assert.NilError(t, err)
	upper, err := renderText("GEAR", 2)
	assert.NilError(t, err)
	assert.Equal(t, lower, upper)

	// far too long, "DONT GET M" falls off the left edge and the Y of
	// "MY" starts at column 2
	long, err := renderText("DONT GET MY WORDS TWISTED", 2)
	assert.NilError(t, err)
	first, last := litColumns(t, long)
	assert.Equal(t, first, 2)
	assert.Equal(t, last, 127)

	empty, err := renderText("", 3)
	assert.NilError(t, err)
	assert.Assert(t, empty.IsEmpty())
}

func TestRenderGearCentered(t *testing.T) {
	m, err := renderGear(gearFirst, 8)
	assert.NilError(t, err)
	first, last := litColumns(t, m)
	// "1" is 3 wide, 24 when scaled, starting at (128-24)/2
	assert.Equal(t, first, 52)
	assert.Equal(t, last, 52+24-1)

	row, _ := m.Row((dotmatrix.Rows - 40) / 2)
	assert.Assert(t, !row.IsZero())
	row, _ = m.Row((dotmatrix.Rows-40)/2 - 1)
	assert.Assert(t, row.IsZero())
}

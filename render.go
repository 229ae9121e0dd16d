package main

import (
	"dscheirer.com/geardisplay/dotmatrix"
	"dscheirer.com/geardisplay/glyph"
)

// every glyph is at most this many rows tall
const lineHeight = 5

// a scaled wide glyph has to fit a single row-half
const maxScale = 64 / lineHeight

func clampScale(scale int) int {
	if scale < 1 {
		return 1
	}
	if scale > maxScale {
		return maxScale
	}
	return scale
}

// widen repeats each of the low width pixels of bits scale times
func widen(bits uint64, width, scale int) uint64 {
	var out uint64
	for c := width - 1; c >= 0; c-- {
		px := bits >> uint(c) & 1
		for s := 0; s < scale; s++ {
			out = out<<1 | px
		}
	}
	return out
}

// placeBits moves a right-aligned pattern width pixels wide so that its
// leftmost pixel lands on column x. Pixels pushed off either edge are lost.
func placeBits(bits uint64, width, x int) dotmatrix.Row {
	row := dotmatrix.RowFromUint64(bits)
	shift := dotmatrix.Columns - width - x
	if shift >= 0 {
		return row.ShiftLeft(uint(shift))
	}
	return row.ShiftRight(uint(-shift))
}

// drawGlyph ORs g into m with its top left pixel at (x, y), each glyph
// pixel drawn as a scale x scale block. Anything outside m is clipped.
func drawGlyph(m *dotmatrix.Matrix, g glyph.Glyph, x, y, scale int) error {
	scale = clampScale(scale)
	width := g.Width() * scale
	for i, bits := range g.Rows() {
		line := placeBits(widen(bits, g.Width(), scale), width, x)
		for s := 0; s < scale; s++ {
			row := y + i*scale + s
			if row < 0 || row >= dotmatrix.Rows {
				continue
			}
			if err := m.OrRow(row, line); err != nil {
				return err
			}
		}
	}
	return nil
}

// renderText lays text out on one line, right aligned and vertically
// centered, with one blank (scaled) column between glyphs. Short glyphs
// sit on the baseline. Text that does not fit is cut off on the left.
func renderText(text string, scale int) (dotmatrix.Matrix, error) {
	var m dotmatrix.Matrix
	scale = clampScale(scale)
	top := (dotmatrix.Rows - lineHeight*scale) / 2

	runes := []rune(text)
	cursor := dotmatrix.Columns
	for i := len(runes) - 1; i >= 0 && cursor > 0; i-- {
		g := glyph.EncodeRune(runes[i])
		x := cursor - g.Width()*scale
		if err := drawGlyph(&m, g, x, top+(lineHeight-g.Height())*scale, scale); err != nil {
			return m, err
		}
		cursor = x - scale
	}
	return m, nil
}

// renderGear centers the gear's character on the display
func renderGear(g gearPosition, scale int) (dotmatrix.Matrix, error) {
	var m dotmatrix.Matrix
	scale = clampScale(scale)
	gl := glyph.Encode(g.char())
	x := (dotmatrix.Columns - gl.Width()*scale) / 2
	y := (dotmatrix.Rows - gl.Height()*scale) / 2
	err := drawGlyph(&m, gl, x, y, scale)
	return m, err
}

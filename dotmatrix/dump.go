package dotmatrix

import (
	"fmt"
	"strings"
)

// debug renderings for terminals and logs, not a stable format

// String draws the frame as 64 lines of 128 cells, '█' for lit pixels
func (m Matrix) String() string {
	return m.Dump('█', ' ')
}

// Bits draws the frame as 64 lines of 128 '1'/'0' characters
func (m Matrix) Bits() string {
	return m.Dump('1', '0')
}

// Dump draws the frame with the given runes for lit and dark pixels. Every
// line, the last included, ends in a newline.
func (m Matrix) Dump(on, off rune) string {
	var sb strings.Builder
	sb.Grow(Rows * (Columns*len(string(on)) + 1))
	for i := 0; i < Rows; i++ {
		writeRow(&sb, JoinRow(m.left[i], m.right[i]), on, off)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Numbered lists every row as "nn: <bits>", the layout used when dumping
// a frame to a log
func (m Matrix) Numbered() string {
	var sb strings.Builder
	for i := 0; i < Rows; i++ {
		fmt.Fprintf(&sb, "\n%2d: %s", i, JoinRow(m.left[i], m.right[i]))
	}
	sb.WriteByte('\n')
	return sb.String()
}

package dotmatrix

import (
	"math/bits"
	"strings"
)

// Row is one 128 pixel display line. Left holds columns 0-63 and Right
// holds columns 64-127; the most significant bit of Left is column 0.
type Row struct {
	Left  uint64
	Right uint64
}

// AllOnes is a row with every pixel lit
var AllOnes = Row{Left: ^uint64(0), Right: ^uint64(0)}

// JoinRow combines an upper (left) and lower (right) half into a row.
// Inverse of Split.
func JoinRow(left, right uint64) Row {
	return Row{Left: left, Right: right}
}

// RowFromUint64 puts v in the low 64 bits of a row (columns 64-127)
func RowFromUint64(v uint64) Row {
	return Row{Right: v}
}

// Split returns the upper (left) and lower (right) halves of r.
// Inverse of JoinRow.
func (r Row) Split() (uint64, uint64) {
	return r.Left, r.Right
}

func (r Row) And(o Row) Row {
	return Row{Left: r.Left & o.Left, Right: r.Right & o.Right}
}

func (r Row) Or(o Row) Row {
	return Row{Left: r.Left | o.Left, Right: r.Right | o.Right}
}

func (r Row) Xor(o Row) Row {
	return Row{Left: r.Left ^ o.Left, Right: r.Right ^ o.Right}
}

func (r Row) Not() Row {
	return Row{Left: ^r.Left, Right: ^r.Right}
}

func (r Row) IsZero() bool {
	return r.Left == 0 && r.Right == 0
}

// OnesCount returns the number of lit pixels
func (r Row) OnesCount() int {
	return bits.OnesCount64(r.Left) + bits.OnesCount64(r.Right)
}

// ShiftLeft moves every pixel n columns towards column 0, zero filling
// from the right. Shifting by 128 or more clears the row.
func (r Row) ShiftLeft(n uint) Row {
	switch {
	case n == 0:
		return r
	case n >= 128:
		return Row{}
	case n >= 64:
		return Row{Left: r.Right << (n - 64)}
	}
	return Row{
		Left:  r.Left<<n | r.Right>>(64-n),
		Right: r.Right << n,
	}
}

// ShiftRight moves every pixel n columns towards column 127, zero filling
// from the left. Shifting by 128 or more clears the row.
func (r Row) ShiftRight(n uint) Row {
	switch {
	case n == 0:
		return r
	case n >= 128:
		return Row{}
	case n >= 64:
		return Row{Right: r.Left >> (n - 64)}
	}
	return Row{
		Left:  r.Left >> n,
		Right: r.Right>>n | r.Left<<(64-n),
	}
}

// RotateLeft rotates the row n columns towards column 0, wrapping
// column 0 around to column 127. n is taken modulo 128.
func (r Row) RotateLeft(n uint) Row {
	n %= Columns
	if n == 0 {
		return r
	}
	return r.ShiftLeft(n).Or(r.ShiftRight(Columns - n))
}

// RotateRight is the inverse of RotateLeft
func (r Row) RotateRight(n uint) Row {
	n %= Columns
	if n == 0 {
		return r
	}
	return r.ShiftRight(n).Or(r.ShiftLeft(Columns - n))
}

// Bit returns the pixel at column col
func (r Row) Bit(col int) (bool, error) {
	if col < 0 || col >= Columns {
		return false, columnErr(Columns-1, col)
	}
	if col < halfWidth {
		return HalfBit(r.Left, col)
	}
	return HalfBit(r.Right, col-halfWidth)
}

// String renders the row as 128 '1'/'0' characters, column 0 first
func (r Row) String() string {
	var sb strings.Builder
	sb.Grow(Columns)
	writeRow(&sb, r, '1', '0')
	return sb.String()
}

func writeRow(sb *strings.Builder, r Row, on, off rune) {
	for _, half := range [2]uint64{r.Left, r.Right} {
		for i := halfWidth - 1; i >= 0; i-- {
			if half&(1<<uint(i)) != 0 {
				sb.WriteRune(on)
			} else {
				sb.WriteRune(off)
			}
		}
	}
}

// Package dotmatrix models a 64x128 monochrome pixel display as two lanes
// of 64 row-halves, so whole frame boolean algebra runs a half at a time
// across every row.
package dotmatrix

const (
	// Rows is the number of display lines
	Rows = 64
	// Columns is the number of pixels per line
	Columns = 128

	halfWidth = 64
)

// Side selects one of the two row-halves
type Side int

const (
	LeftHalf Side = iota
	RightHalf
)

// Matrix is a 64x128 pixel frame. The zero value is an empty frame, and
// frames are plain values: copy them freely, compare them with ==.
type Matrix struct {
	left  [Rows]uint64
	right [Rows]uint64
}

// Splat returns a matrix where every left half is left and every right
// half is right
func Splat(left, right uint64) Matrix {
	var m Matrix
	for i := 0; i < Rows; i++ {
		m.left[i] = left
		m.right[i] = right
	}
	return m
}

// Empty returns a matrix with every pixel off
func Empty() Matrix {
	return Matrix{}
}

// Full returns a matrix with every pixel on
func Full() Matrix {
	return Splat(^uint64(0), ^uint64(0))
}

// FromHalves builds a matrix from its two lanes
func FromHalves(left, right [Rows]uint64) Matrix {
	return Matrix{left: left, right: right}
}

// FromRows builds a matrix from row-major data, row 0 at the top
func FromRows(rows [Rows]Row) Matrix {
	var m Matrix
	for i, r := range rows {
		m.left[i], m.right[i] = r.Split()
	}
	return m
}

// Halves returns copies of the left and right lanes
func (m Matrix) Halves() ([Rows]uint64, [Rows]uint64) {
	return m.left, m.right
}

// Rows returns every row, top first
func (m Matrix) Rows() [Rows]Row {
	var rows [Rows]Row
	for i := range rows {
		rows[i] = JoinRow(m.left[i], m.right[i])
	}
	return rows
}

func (m Matrix) Equal(o Matrix) bool {
	return m == o
}

// Half returns one half of row idx
func (m Matrix) Half(idx int, side Side) (uint64, error) {
	if idx < 0 || idx >= Rows {
		return 0, rowErr(Rows-1, idx)
	}
	if side == RightHalf {
		return m.right[idx], nil
	}
	return m.left[idx], nil
}

// Row returns row idx, where 0 is the top row
func (m Matrix) Row(idx int) (Row, error) {
	if idx < 0 || idx >= Rows {
		return Row{}, rowErr(Rows-1, idx)
	}
	return JoinRow(m.left[idx], m.right[idx]), nil
}

// Column returns column idx, where 0 is the leftmost column. Bit r of the
// result is the pixel at row r. This is a full scan of every row.
func (m Matrix) Column(idx int) (uint64, error) {
	if idx < 0 || idx >= Columns {
		return 0, columnErr(Columns-1, idx)
	}
	lane := &m.left
	if idx >= halfWidth {
		lane = &m.right
		idx -= halfWidth
	}
	shift := uint(halfWidth - 1 - idx)

	var out uint64
	for i, half := range lane {
		out |= (half >> shift & 1) << uint(i)
	}
	return out, nil
}

// Bit returns a single pixel
func (m Matrix) Bit(row, col int) (bool, error) {
	if col < 0 || col >= Columns {
		return false, columnErr(Columns-1, col)
	}
	side := LeftHalf
	if col >= halfWidth {
		side = RightHalf
		col -= halfWidth
	}
	half, err := m.Half(row, side)
	if err != nil {
		return false, err
	}
	return HalfBit(half, col)
}

// HalfBit returns pixel pos of a single row-half, where 0 is the highest
// (leftmost) bit
func HalfBit(half uint64, pos int) (bool, error) {
	if pos < 0 || pos >= halfWidth {
		return false, columnErr(halfWidth-1, pos)
	}
	return half&(1<<uint(halfWidth-1-pos)) != 0, nil
}

// SetRow replaces row idx
func (m *Matrix) SetRow(idx int, r Row) error {
	if idx < 0 || idx >= Rows {
		return rowErr(Rows-1, idx)
	}
	m.left[idx], m.right[idx] = r.Split()
	return nil
}

// OrRow merges r into row idx without clearing pixels already lit
func (m *Matrix) OrRow(idx int, r Row) error {
	if idx < 0 || idx >= Rows {
		return rowErr(Rows-1, idx)
	}
	left, right := r.Split()
	m.left[idx] |= left
	m.right[idx] |= right
	return nil
}

// SetBit turns a single pixel on or off
func (m *Matrix) SetBit(row, col int, on bool) error {
	if row < 0 || row >= Rows {
		return rowErr(Rows-1, row)
	}
	if col < 0 || col >= Columns {
		return columnErr(Columns-1, col)
	}
	lane := &m.left
	if col >= halfWidth {
		lane = &m.right
		col -= halfWidth
	}
	mask := uint64(1) << uint(halfWidth-1-col)
	if on {
		lane[row] |= mask
	} else {
		lane[row] &^= mask
	}
	return nil
}

func (m Matrix) And(o Matrix) Matrix {
	for i := 0; i < Rows; i++ {
		m.left[i] &= o.left[i]
		m.right[i] &= o.right[i]
	}
	return m
}

func (m Matrix) Or(o Matrix) Matrix {
	for i := 0; i < Rows; i++ {
		m.left[i] |= o.left[i]
		m.right[i] |= o.right[i]
	}
	return m
}

func (m Matrix) Xor(o Matrix) Matrix {
	for i := 0; i < Rows; i++ {
		m.left[i] ^= o.left[i]
		m.right[i] ^= o.right[i]
	}
	return m
}

func (m Matrix) Not() Matrix {
	for i := 0; i < Rows; i++ {
		m.left[i] = ^m.left[i]
		m.right[i] = ^m.right[i]
	}
	return m
}

// IsEmpty reports whether no pixel is lit
func (m Matrix) IsEmpty() bool {
	return m == Matrix{}
}

// ShiftLeft shifts every row n columns towards column 0, zero filling
func (m *Matrix) ShiftLeft(n uint) {
	for i := 0; i < Rows; i++ {
		m.left[i], m.right[i] = JoinRow(m.left[i], m.right[i]).ShiftLeft(n).Split()
	}
}

// ShiftRight shifts every row n columns towards column 127, zero filling
func (m *Matrix) ShiftRight(n uint) {
	for i := 0; i < Rows; i++ {
		m.left[i], m.right[i] = JoinRow(m.left[i], m.right[i]).ShiftRight(n).Split()
	}
}

// RotateRowsUp scrolls the frame up n rows; row 0 wraps to the bottom
func (m *Matrix) RotateRowsUp(n uint) {
	rotateLanes(&m.left, n%Rows)
	rotateLanes(&m.right, n%Rows)
}

// RotateRowsDown scrolls the frame down n rows; row 63 wraps to the top
func (m *Matrix) RotateRowsDown(n uint) {
	n %= Rows
	rotateLanes(&m.left, (Rows-n)%Rows)
	rotateLanes(&m.right, (Rows-n)%Rows)
}

// rotateLanes moves lane n+i to lane i
func rotateLanes(lane *[Rows]uint64, n uint) {
	if n == 0 {
		return
	}
	var tmp [Rows]uint64
	copy(tmp[:], lane[n:])
	copy(tmp[Rows-n:], lane[:n])
	*lane = tmp
}

// RotateColumnsLeft scrolls the frame n columns left; column 0 wraps to
// column 127. Unlike the row rotations this has to rewrite every row, so
// prefer one call with a large n over many calls with a small one.
func (m *Matrix) RotateColumnsLeft(n uint) {
	n %= Columns
	if n == 0 {
		return
	}
	for i := 0; i < Rows; i++ {
		m.left[i], m.right[i] = JoinRow(m.left[i], m.right[i]).RotateLeft(n).Split()
	}
}

// RotateColumnsRight scrolls the frame n columns right. Same cost caveat
// as RotateColumnsLeft.
func (m *Matrix) RotateColumnsRight(n uint) {
	n %= Columns
	if n == 0 {
		return
	}
	for i := 0; i < Rows; i++ {
		m.left[i], m.right[i] = JoinRow(m.left[i], m.right[i]).RotateRight(n).Split()
	}
}

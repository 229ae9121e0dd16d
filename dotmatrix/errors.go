package dotmatrix

import (
	"errors"
	"fmt"
)

// Axis names which index of the matrix was out of range
type Axis int

const (
	RowAxis Axis = iota
	ColumnAxis
)

func (a Axis) String() string {
	if a == RowAxis {
		return "row"
	}
	return "column"
}

// sentinels for errors.Is
var (
	ErrRowIndex    = errors.New("row index out of range")
	ErrColumnIndex = errors.New("column index out of range")
)

// IndexError is returned by every accessor handed an out of range index.
// Max is the largest valid index, Got is what the caller asked for.
type IndexError struct {
	Axis Axis
	Max  int
	Got  int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("invalid %s index provided: expected 0..%d, found %d", e.Axis, e.Max, e.Got)
}

func (e *IndexError) Is(target error) bool {
	switch target {
	case ErrRowIndex:
		return e.Axis == RowAxis
	case ErrColumnIndex:
		return e.Axis == ColumnAxis
	}
	return false
}

func rowErr(max, got int) error {
	return &IndexError{Axis: RowAxis, Max: max, Got: got}
}

func columnErr(max, got int) error {
	return &IndexError{Axis: ColumnAxis, Max: max, Got: got}
}

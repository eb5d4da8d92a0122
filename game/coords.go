package game

import (
	"fmt"
	"strconv"
	"strings"
)

// Column letters used in Go notation. The letter I is skipped by convention.
const columnLetters = "ABCDEFGHJKLMNOPQRST"

// BoardSize is one of the supported square board dimensions.
type BoardSize int

const (
	Size9  BoardSize = 9
	Size13 BoardSize = 13
	Size19 BoardSize = 19
)

// SizeOf converts a numeric board dimension to a BoardSize. The second return
// value is false for unsupported dimensions.
func SizeOf(n int) (BoardSize, bool) {
	switch n {
	case 9:
		return Size9, true
	case 13:
		return Size13, true
	case 19:
		return Size19, true
	}
	return 0, false
}

// stride is the width of one grid row including the offboard border cells.
func (s BoardSize) stride() int {
	return int(s) + 2
}

// Intersection addresses a playable point on the board. Col is the 0-based
// column index (0 = A) and Row is the 1-based row number counted from the
// bottom of the board.
type Intersection struct {
	Col int
	Row int
}

// Index converts the intersection to its flat grid index on a board of the
// given size. The second return value is false when either coordinate falls
// outside the playable range for that size.
func (in Intersection) Index(size BoardSize) (int, bool) {
	if in.Col < 0 || in.Col >= int(size) || in.Row <= 0 || in.Row > int(size) {
		return 0, false
	}
	stride := size.stride()
	rowIndex := (stride - in.Row - 1) * stride
	return in.Col + rowIndex + 1, true
}

// IntersectionAt converts a flat grid index back to an intersection. The
// second return value is false for indexes outside the grid or on the
// offboard border ring.
func IntersectionAt(index int, size BoardSize) (Intersection, bool) {
	stride := size.stride()
	if index < 0 || index >= stride*stride {
		return Intersection{}, false
	}

	col := index % stride
	row := index / stride
	if col == 0 || col == stride-1 || row == 0 || row == stride-1 {
		return Intersection{}, false
	}

	return Intersection{Col: col - 1, Row: stride - row - 1}, true
}

// ParseIntersection parses Go vertex notation such as "Q16" or "a1". The
// second return value is false for malformed text. The parsed intersection is
// not range-checked against any board size; Index does that.
func ParseIntersection(text string) (Intersection, bool) {
	if len(text) < 2 {
		return Intersection{}, false
	}

	col := strings.IndexByte(columnLetters, text[0]&^0x20)
	if col < 0 {
		return Intersection{}, false
	}

	row, err := strconv.Atoi(text[1:])
	if err != nil || row <= 0 {
		return Intersection{}, false
	}

	return Intersection{Col: col, Row: row}, true
}

func (in Intersection) String() string {
	if in.Col < 0 || in.Col >= len(columnLetters) {
		return fmt.Sprintf("?%d", in.Row)
	}
	return fmt.Sprintf("%c%d", columnLetters[in.Col], in.Row)
}

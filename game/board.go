package game

import "strings"

// Color is the color of a stone or player.
type Color uint8

const (
	Black Color = iota
	White
)

// Opposite returns the other color.
func (c Color) Opposite() Color {
	if c == Black {
		return White
	}
	return Black
}

func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "white"
}

// ParseColor parses GTP color text. Accepts "b", "black", "w" and "white" in
// any case. The second return value is false for anything else.
func ParseColor(text string) (Color, bool) {
	switch {
	case strings.EqualFold(text, "b"), strings.EqualFold(text, "black"):
		return Black, true
	case strings.EqualFold(text, "w"), strings.EqualFold(text, "white"):
		return White, true
	}
	return Black, false
}

// Cell is the state of one grid position.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellBlack
	CellWhite
	CellOffboard
)

// cellOf returns the occupied cell state for a stone of the given color.
func cellOf(c Color) Cell {
	if c == Black {
		return CellBlack
	}
	return CellWhite
}

// StoneColor returns the color occupying the cell. The second return value is
// false for empty and offboard cells.
func (c Cell) StoneColor() (Color, bool) {
	switch c {
	case CellBlack:
		return Black, true
	case CellWhite:
		return White, true
	}
	return Black, false
}

// MoveKind discriminates the three kinds of moves.
type MoveKind uint8

const (
	MovePass MoveKind = iota
	MovePlace
	MoveResign
)

// Move is one action by one player: a pass, a stone placement, or a
// resignation.
type Move struct {
	Kind  MoveKind
	At    Intersection
	Color Color
}

// Pass returns a pass move.
func Pass() Move {
	return Move{Kind: MovePass}
}

// Place returns a stone placement move.
func Place(at Intersection, color Color) Move {
	return Move{Kind: MovePlace, At: at, Color: color}
}

// Resign returns a resignation move.
func Resign() Move {
	return Move{Kind: MoveResign}
}

func (m Move) String() string {
	switch m.Kind {
	case MovePass:
		return "pass"
	case MoveResign:
		return "resign"
	}
	return m.At.String()
}

// DefaultKomi is the compensation added to White's score unless overridden.
const DefaultKomi = 6.5

// Board holds the full state of one game position: the grid of cells with its
// offboard sentinel ring, the side to move, the active ko point if any, komi,
// capture counts, the last move played and the move counter.
type Board struct {
	size          BoardSize
	cells         []Cell
	side          Color
	ko            Intersection
	koActive      bool
	komi          float64
	lastMove      Move
	blackCaptures int
	whiteCaptures int
	moveNumber    int
}

// New creates an empty board of the given size with Black to move, no ko,
// default komi, zero captures and move counter zero.
func New(size BoardSize) *Board {
	return &Board{
		size:  size,
		cells: emptyGrid(size),
		side:  Black,
		komi:  DefaultKomi,
	}
}

// emptyGrid builds the flat cell slice with exactly the border ring offboard.
func emptyGrid(size BoardSize) []Cell {
	stride := size.stride()
	cells := make([]Cell, stride*stride)
	for row := 0; row < stride; row++ {
		for col := 0; col < stride; col++ {
			if row == 0 || row == stride-1 || col == 0 || col == stride-1 {
				cells[row*stride+col] = CellOffboard
			}
		}
	}
	return cells
}

// Copy returns an independent snapshot of the board. The grid is not aliased;
// mutating either board never affects the other.
func (b *Board) Copy() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)

	dup := *b
	dup.cells = cells
	return &dup
}

// Clear resets the grid, ko, captures and move counter, keeping the size and
// komi. Black moves first again.
func (b *Board) Clear() {
	b.cells = emptyGrid(b.size)
	b.side = Black
	b.koActive = false
	b.lastMove = Move{}
	b.blackCaptures = 0
	b.whiteCaptures = 0
	b.moveNumber = 0
}

// Size returns the board dimension.
func (b *Board) Size() BoardSize {
	return b.size
}

// Side returns the color to move.
func (b *Board) Side() Color {
	return b.side
}

// Komi returns the current komi.
func (b *Board) Komi() float64 {
	return b.komi
}

// SetKomi overrides the komi.
func (b *Board) SetKomi(komi float64) {
	b.komi = komi
}

// Ko returns the active ko point. The second return value is false when no ko
// restriction is in effect.
func (b *Board) Ko() (Intersection, bool) {
	return b.ko, b.koActive
}

// LastMove returns the most recent move committed on this board.
func (b *Board) LastMove() Move {
	return b.lastMove
}

// MoveNumber returns the number of moves committed so far.
func (b *Board) MoveNumber() int {
	return b.moveNumber
}

// Captures returns the number of stones captured by Black and by White.
func (b *Board) Captures() (black, white int) {
	return b.blackCaptures, b.whiteCaptures
}

// At returns the cell state at the given intersection, or CellOffboard when
// the intersection is out of range for this board.
func (b *Board) At(at Intersection) Cell {
	index, ok := at.Index(b.size)
	if !ok {
		return CellOffboard
	}
	return b.cells[index]
}

// PlaceStone puts a stone directly on an empty in-range intersection without
// any turn, capture or ko logic. Intended for tests and position setup.
func (b *Board) PlaceStone(at Intersection, color Color) bool {
	index, ok := at.Index(b.size)
	if !ok || b.cells[index] != CellEmpty {
		return false
	}
	b.cells[index] = cellOf(color)
	return true
}

// Fingerprint encodes the stone grid as a string usable as a map key for
// positional equality. Captures, ko, komi and the move counter are
// deliberately excluded; two boards with the same stones have the same
// fingerprint.
func (b *Board) Fingerprint() string {
	raw := make([]byte, len(b.cells))
	for i, c := range b.cells {
		raw[i] = byte(c)
	}
	return string(raw)
}

// directions returns the four flat-index offsets of orthogonal neighbors.
func (b *Board) directions() [4]int {
	stride := b.size.stride()
	return [4]int{1, -1, stride, -stride}
}

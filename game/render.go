package game

import (
	"fmt"
	"strings"
)

// String renders the board as a text grid: rows from the top down with their
// numbers, Black as X, White as O, empty as a dot, followed by the column
// legend and a komi/ko/captures footer.
func (b *Board) String() string {
	var out strings.Builder
	out.WriteByte('\n')

	for row := int(b.size); row >= 1; row-- {
		if row < 10 {
			out.WriteByte(' ')
		}
		fmt.Fprintf(&out, "%d ", row)
		for col := 0; col < int(b.size); col++ {
			switch b.At(Intersection{Col: col, Row: row}) {
			case CellBlack:
				out.WriteString("X ")
			case CellWhite:
				out.WriteString("O ")
			default:
				out.WriteString(". ")
			}
		}
		out.WriteByte('\n')
	}

	out.WriteString("  ")
	for col := 0; col < int(b.size); col++ {
		fmt.Fprintf(&out, " %c", columnLetters[col])
	}

	fmt.Fprintf(&out, "\nKomi:     %v", b.komi)
	if b.koActive {
		fmt.Fprintf(&out, "\nKo:       %s", b.ko)
	} else {
		out.WriteString("\nKo:       None")
	}
	fmt.Fprintf(&out, "\nCaptures: [B: %d, W: %d]\n", b.blackCaptures, b.whiteCaptures)

	return out.String()
}

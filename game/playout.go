package game

import "golang.org/x/exp/rand"

// Position queries used by the search engine's move heuristics.

// WeakestGroup finds the group of the given color with the fewest liberties.
// The second return value is false when the color has no stones on the board.
func (b *Board) WeakestGroup(color Color) (Group, bool) {
	var weakest Group
	found := false
	seen := make(map[int]bool)

	for index, cell := range b.cells {
		if cell != cellOf(color) || seen[index] {
			continue
		}

		group := b.groupFrom(index, color)
		for _, at := range group.Stones {
			if stone, ok := at.Index(b.size); ok {
				seen[stone] = true
			}
		}

		if !found || len(group.Liberties) < len(weakest.Liberties) {
			weakest = group
			found = true
		}
	}

	return weakest, found
}

// RandomIntersection samples a uniformly random playable intersection at
// least offset points away from the board edge. Offset must leave at least
// one candidate point.
func (b *Board) RandomIntersection(rng *rand.Rand, offset int) Intersection {
	span := int(b.size) - 2*offset
	row := 1 + offset + rng.Intn(span)
	col := offset + rng.Intn(span)
	return Intersection{Col: col, Row: row}
}

// CanPlace is a cheap pre-filter for playout candidates: the point must be
// empty, must not be the ko point, and must not be enclosed on all four sides
// by a single color. It does not rule out every illegal placement; Play has
// the final say.
func (b *Board) CanPlace(at Intersection) bool {
	if b.koActive && b.ko == at {
		return false
	}
	if b.At(at) != CellEmpty {
		return false
	}
	if _, enclosed := b.diamond(at); enclosed {
		return false
	}
	return true
}

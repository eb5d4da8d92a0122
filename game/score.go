package game

// reach records which colors a connected empty region touches.
type reach uint8

const (
	reachNone reach = iota
	reachBlack
	reachWhite
	reachMixed
)

func (r reach) add(c Color) reach {
	switch r {
	case reachNone:
		if c == Black {
			return reachBlack
		}
		return reachWhite
	case reachBlack:
		if c == White {
			return reachMixed
		}
	case reachWhite:
		if c == Black {
			return reachMixed
		}
	}
	return r
}

// EstimateScore computes a Tromp-Taylor-style area estimate: stones plus
// empty regions reaching only one color count for that color; regions
// touching both colors count for neither. Positive favors Black; komi is
// subtracted. Every intersection is visited at most once across the whole
// pass.
func (b *Board) EstimateScore() float64 {
	seen := make(map[int]bool)
	blackArea, whiteArea := 0, 0

	for row := 1; row <= int(b.size); row++ {
		for col := 0; col < int(b.size); col++ {
			index, ok := Intersection{Col: col, Row: row}.Index(b.size)
			if !ok || seen[index] {
				continue
			}

			count, reaches := b.regionFrom(index, seen)
			switch reaches {
			case reachBlack:
				blackArea += count
			case reachWhite:
				whiteArea += count
			}
		}
	}

	return float64(blackArea-whiteArea) - b.komi
}

// regionFrom flood-fills outward from the root index, expanding through empty
// cells only. Occupied cells bound the region and determine which colors it
// reaches. The global seen set is shared across regions so that a boundary
// stone touching two regions is counted only once, although it still
// contributes its color to every region it bounds. Iterative BFS; safe on a
// full 19x19 grid.
func (b *Board) regionFrom(root int, seen map[int]bool) (int, reach) {
	count := 0
	reaches := reachNone
	local := make(map[int]bool)
	worklist := []int{root}

	for len(worklist) > 0 {
		index := worklist[0]
		worklist = worklist[1:]
		if local[index] {
			continue
		}
		local[index] = true

		switch cell := b.cells[index]; cell {
		case CellOffboard:
			continue
		case CellEmpty:
			if seen[index] {
				continue
			}
			seen[index] = true
			count++
			for _, dir := range b.directions() {
				if neighbor := index + dir; b.cells[neighbor] != CellOffboard {
					worklist = append(worklist, neighbor)
				}
			}
		default:
			color, _ := cell.StoneColor()
			reaches = reaches.add(color)
			if !seen[index] {
				seen[index] = true
				count++
			}
		}
	}

	return count, reaches
}

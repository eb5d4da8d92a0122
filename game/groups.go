package game

// Group is the transient result of flood-filling connected same-colored
// stones from a seed point: the stones themselves and the empty intersections
// adjacent to them (the group's liberties). Groups are recomputed on demand,
// never stored.
type Group struct {
	Color     Color
	Stones    []Intersection
	Liberties []Intersection
}

// FindGroup discovers the group of the given color connected to the seed
// intersection. The second return value is false when the seed is out of
// range for this board. A seed on an empty or enemy-occupied cell yields a
// group with no stones.
func (b *Board) FindGroup(seed Intersection, color Color) (Group, bool) {
	index, ok := seed.Index(b.size)
	if !ok {
		return Group{}, false
	}
	return b.groupFrom(index, color), true
}

// groupFrom is the iterative flood fill behind FindGroup. It walks 4-connected
// neighbors following only cells occupied by color, collecting stones and
// liberties as deduplicated sets. Offboard neighbors terminate the fill
// locally. Iterative on purpose: a full 19x19 board must not overflow the
// stack.
func (b *Board) groupFrom(seed int, color Color) Group {
	group := Group{Color: color}

	stoneSeen := make(map[int]bool)
	libertySeen := make(map[int]bool)
	worklist := []int{seed}
	queued := map[int]bool{seed: true}

	for len(worklist) > 0 {
		index := worklist[0]
		worklist = worklist[1:]

		switch b.cells[index] {
		case CellEmpty:
			if !libertySeen[index] {
				libertySeen[index] = true
				if at, ok := IntersectionAt(index, b.size); ok {
					group.Liberties = append(group.Liberties, at)
				}
			}
		case cellOf(color):
			if stoneSeen[index] {
				continue
			}
			stoneSeen[index] = true
			if at, ok := IntersectionAt(index, b.size); ok {
				group.Stones = append(group.Stones, at)
			}
			for _, dir := range b.directions() {
				neighbor := index + dir
				if !queued[neighbor] {
					queued[neighbor] = true
					worklist = append(worklist, neighbor)
				}
			}
		}
	}

	return group
}

package game

// Play attempts the given move. It returns true and commits the move when the
// move is legal, and returns false leaving the board unchanged otherwise.
// Resign never commits anything; the caller treats it as a terminal signal.
func (b *Board) Play(m Move) bool {
	switch m.Kind {
	case MovePass:
		b.side = b.side.Opposite()
		b.lastMove = m
		b.moveNumber++
		return true
	case MovePlace:
		return b.playStone(m.At, m.Color)
	}
	return false
}

// playStone enforces the placement rules: the target must not be the ko
// point, must map to an in-range empty cell, and the placed group must end up
// with at least one liberty after captures resolve. Captures are applied for
// all four neighbor directions before the suicide check, so a placement that
// frees its own liberties by capturing is legal.
func (b *Board) playStone(at Intersection, color Color) bool {
	if b.koActive && b.ko == at {
		return false
	}

	index, ok := at.Index(b.size)
	if !ok || b.cells[index] != CellEmpty {
		return false
	}

	b.cells[index] = cellOf(color)

	var newKo Intersection
	koArose := false
	for _, dir := range b.directions() {
		neighbor := index + dir
		group := b.groupFrom(neighbor, color.Opposite())
		if len(group.Stones) == 0 || len(group.Liberties) > 0 {
			continue
		}
		if len(group.Stones) == 1 {
			// A single-stone capture where the capturing stone sits inside
			// an enemy diamond recreates the ko shape; the vacated point
			// becomes the ko point.
			if surrounding, ok := b.diamond(at); ok && surrounding != color {
				newKo = group.Stones[0]
				koArose = true
			}
		}
		b.captureGroup(group, color)
	}

	own := b.groupFrom(index, color)
	if len(own.Liberties) == 0 {
		// Suicide: revert the placement atomically.
		b.cells[index] = CellEmpty
		return false
	}

	b.ko = newKo
	b.koActive = koArose
	b.side = color.Opposite()
	b.lastMove = Place(at, color)
	b.moveNumber++
	return true
}

// captureGroup removes every stone of the group from the grid and credits the
// capturing color with the group's size.
func (b *Board) captureGroup(group Group, capturer Color) {
	for _, at := range group.Stones {
		if index, ok := at.Index(b.size); ok {
			b.cells[index] = CellEmpty
		}
	}

	if capturer == Black {
		b.blackCaptures += len(group.Stones)
	} else {
		b.whiteCaptures += len(group.Stones)
	}
}

// diamond reports the single color occupying all four neighbors of the given
// intersection. Offboard neighbors are compatible with any color; an empty or
// mixed-color neighbor disqualifies. The second return value is false when no
// uniform surrounding color exists.
func (b *Board) diamond(at Intersection) (Color, bool) {
	index, ok := at.Index(b.size)
	if !ok {
		return Black, false
	}

	var surrounding Color
	found := false
	for _, dir := range b.directions() {
		switch cell := b.cells[index+dir]; cell {
		case CellEmpty:
			return Black, false
		case CellOffboard:
			// Edges count as part of any diamond.
		default:
			color, _ := cell.StoneColor()
			if found && color != surrounding {
				return Black, false
			}
			surrounding = color
			found = true
		}
	}

	return surrounding, found
}

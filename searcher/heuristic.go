package searcher

import "baduk/game"

// randomFallbackTries bounds how many random points the playout samples when
// no heuristic move applies.
const randomFallbackTries = 8

// starPoints returns the fixed strategic points seeded into every expansion:
// the four corner star points and the center for the board size.
func starPoints(size game.BoardSize) []game.Intersection {
	low, high, center := 3, 15, 9
	switch size {
	case game.Size9:
		low, high, center = 2, 6, 4
	case game.Size13:
		low, high, center = 3, 9, 6
	}
	return []game.Intersection{
		{Col: low, Row: low + 1},
		{Col: high, Row: low + 1},
		{Col: low, Row: high + 1},
		{Col: high, Row: high + 1},
		{Col: center, Row: center + 1},
	}
}

// openingBook returns the points considered for the very first move of a
// 19x19 game.
func openingBook() []game.Intersection {
	return starPoints(game.Size19)
}

// candidates generates the bounded set of intersections tried during
// expansion: the star points, the liberties of the weakest group of each
// color, and one randomly sampled open point. Illegal entries are filtered
// out later when the move is actually played.
func (s *Searcher) candidates(b *game.Board, color game.Color) []game.Intersection {
	cands := starPoints(b.Size())

	if group, ok := b.WeakestGroup(color); ok {
		cands = append(cands, group.Liberties...)
	}
	if group, ok := b.WeakestGroup(color.Opposite()); ok {
		cands = append(cands, group.Liberties...)
	}

	return append(cands, b.RandomIntersection(s.rng, 0))
}

// playoutCandidates picks intersections for one playout ply of color, in
// priority order: an opening book point on an empty 19x19 board, the
// capturing point of an opponent group in atari, the saving point of an own
// group in atari, a liberty of whichever weakest group has the more numerous
// liberties, then random open points.
func (s *Searcher) playoutCandidates(b *game.Board, color game.Color) []game.Intersection {
	if b.MoveNumber() == 0 && b.Size() == game.Size19 {
		book := openingBook()
		return []game.Intersection{book[s.rng.Intn(len(book))]}
	}

	var cands []game.Intersection

	own, hasOwn := b.WeakestGroup(color)
	opp, hasOpp := b.WeakestGroup(color.Opposite())

	if hasOpp && len(opp.Liberties) == 1 {
		cands = append(cands, opp.Liberties[0])
	}
	if hasOwn && len(own.Liberties) == 1 {
		cands = append(cands, own.Liberties[0])
	}

	if hasOwn && hasOpp {
		contested := own
		if len(opp.Liberties) > len(own.Liberties) {
			contested = opp
		}
		if len(contested.Liberties) > 0 {
			cands = append(cands, contested.Liberties[s.rng.Intn(len(contested.Liberties))])
		}
	}

	for i := 0; i < randomFallbackTries; i++ {
		if at := b.RandomIntersection(s.rng, 0); b.CanPlace(at) {
			cands = append(cands, at)
		}
	}

	return cands
}

// shouldResign reports whether color is trailing by more than threshold once
// the game is past its opening.
func shouldResign(b *game.Board, color game.Color, threshold float64) bool {
	if b.MoveNumber() <= resignAfterMove {
		return false
	}

	score := b.EstimateScore()
	if color == game.Black {
		return -score > threshold
	}
	return score > threshold
}

// favors reports whether a terminal score is a win for color. Positive scores
// favor Black.
func favors(score float64, color game.Color) bool {
	if color == game.Black {
		return score > 0
	}
	return score < 0
}

package searcher

import "math"

// Search hyperparameters.

// CSquared is the squared UCT exploration constant (C = sqrt 2).
const CSquared = 2.0

// ResignThreshold is the default score margin beyond which the losing side
// resigns rather than playing on.
const ResignThreshold = 60.0

// resignAfterMove is the move number before which nobody resigns.
const resignAfterMove = 100

// maxPlayoutPlies caps the length of a single simulation.
const maxPlayoutPlies = 1500

// ucb1 scores a child for selection. Unvisited children rank above every
// visited sibling.
func ucb1(wins, visits int, normalizer float64) float64 {
	if visits == 0 {
		return math.Inf(1)
	}
	return float64(wins)/float64(visits) + math.Sqrt(normalizer/float64(visits))
}

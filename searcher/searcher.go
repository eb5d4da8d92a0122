package searcher

import (
	"math"
	"time"

	"baduk/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Searcher generates moves by Monte Carlo Tree Search: UCT selection,
// heuristic expansion and playout through the board engine, and
// backpropagation of area-score outcomes. A Searcher is not safe for
// concurrent use; each GenerateMove call owns its tree exclusively.
type Searcher struct {
	iterations      int
	resignThreshold float64
	rng             *rand.Rand
	metrics         Collector
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithIterations sets the number of search iterations per move.
func WithIterations(iterations int) Option {
	return func(s *Searcher) {
		if iterations > 0 {
			s.iterations = iterations
		}
	}
}

// WithResignThreshold overrides the score margin that triggers resignation.
func WithResignThreshold(threshold float64) Option {
	return func(s *Searcher) {
		if threshold > 0 {
			s.resignThreshold = threshold
		}
	}
}

// WithRand injects the randomness source used by playouts and sampling.
func WithRand(rng *rand.Rand) Option {
	return func(s *Searcher) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// WithMetrics enables collection of search statistics.
func WithMetrics() Option {
	return func(s *Searcher) {
		s.metrics = NewCollector()
	}
}

// New builds a Searcher. Panics unless an iteration budget is configured.
func New(options ...Option) *Searcher {
	s := &Searcher{
		resignThreshold: ResignThreshold,
		rng:             rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		metrics:         NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	if s.iterations <= 0 {
		panic("must specify search iterations")
	}
	return s
}

// GenerateMove runs a search with default settings and the given iteration
// budget.
func GenerateMove(b *game.Board, color game.Color, iterations int) game.Move {
	return New(WithIterations(iterations)).GenerateMove(b, color)
}

// GenerateMove searches for a move for color on the given board. It returns
// the most-visited root child's move, Pass when no legal candidate survived
// expansion, or Resign when the position is already hopeless. The caller's
// board is never mutated.
func (s *Searcher) GenerateMove(b *game.Board, color game.Color) game.Move {
	if shouldResign(b, color, s.resignThreshold) {
		return game.Resign()
	}

	s.metrics.Start(s.iterations)
	t := newTree(b, color, s.metrics)

	for i := 0; i < s.iterations; i++ {
		selected := t.selectNode()
		created := s.expand(t, selected)

		target := selected
		if len(created) > 0 {
			target = created[0]
		}

		leaf := s.simulate(t, target)
		score := t.nodes[leaf].board.EstimateScore()
		t.backpropagate(leaf, score)
		s.metrics.AddIteration()
	}

	move := t.bestMove()
	metric := s.metrics.Complete()
	log.Debug().
		Int("iterations", metric.Iterations).
		Int("nodes", t.size()).
		Dur("duration", metric.Duration).
		Msgf("search done: %s plays %s", color, move)

	return move
}

// selectNode descends from the root by UCT until reaching a node with no
// children. Transpositions can cycle, so descent is depth-capped.
func (t *tree) selectNode() nodeID {
	id := rootID
	for depth := 0; len(t.nodes[id].children) > 0 && depth < maxPlayoutPlies; depth++ {
		id = t.bestChild(id)
	}
	return id
}

// bestChild picks the child maximizing UCB1. An unvisited child wins
// immediately, guaranteeing every fresh child gets visited before its
// siblings are revisited.
func (t *tree) bestChild(id nodeID) nodeID {
	parent := &t.nodes[id]

	var normalizer float64
	if parent.visits > 0 {
		normalizer = CSquared * math.Log(float64(parent.visits))
	}

	best := parent.children[0]
	bestScore := math.Inf(-1)
	for _, child := range parent.children {
		score := ucb1(t.nodes[child].wins, t.nodes[child].visits, normalizer)
		if math.IsInf(score, 1) {
			return child
		}
		if score > bestScore {
			bestScore = score
			best = child
		}
	}
	return best
}

// expand generates candidate moves for the side to move at the given node and
// links a child for every one that legally commits on a copy of the node's
// board. Returns the handles of newly created (not reused) children. Terminal
// nodes are left alone.
func (s *Searcher) expand(t *tree, id nodeID) []nodeID {
	if t.nodes[id].terminal {
		return nil
	}

	color := t.nodes[id].played.Opposite()
	if shouldResign(t.nodes[id].board, color, s.resignThreshold) {
		t.nodes[id].terminal = true
		return nil
	}

	var created []nodeID
	for _, at := range s.candidates(t.nodes[id].board, color) {
		b := t.nodes[id].board.Copy()
		if !b.Play(game.Place(at, color)) {
			continue
		}

		child, reused := t.intern(b, color, id)
		t.link(id, child)
		if !reused {
			created = append(created, child)
		}
	}
	return created
}

// simulate plays a heuristic playout from the given node, linking every ply
// into the arena, until resignation, no playable candidate, or the ply cap.
// Returns the terminal node of the playout.
func (s *Searcher) simulate(t *tree, id nodeID) nodeID {
	current := id
	for ply := 0; ply < maxPlayoutPlies; ply++ {
		if t.nodes[current].terminal {
			break
		}

		color := t.nodes[current].played.Opposite()
		if shouldResign(t.nodes[current].board, color, s.resignThreshold) {
			t.nodes[current].terminal = true
			s.metrics.AddFullPlayout()
			break
		}

		next, ok := s.playoutStep(t, current, color)
		if !ok {
			break
		}
		current = next
	}
	return current
}

// playoutStep tries the playout candidates for color in priority order and
// commits the first legal one as a new arena node under current.
func (s *Searcher) playoutStep(t *tree, current nodeID, color game.Color) (nodeID, bool) {
	for _, at := range s.playoutCandidates(t.nodes[current].board, color) {
		b := t.nodes[current].board.Copy()
		if !b.Play(game.Place(at, color)) {
			continue
		}

		child, _ := t.intern(b, color, current)
		t.link(current, child)
		return child, true
	}
	return noNode, false
}

// backpropagate walks the parent chain from the playout's terminal node to
// the root, counting the visit everywhere and crediting a win to each node
// whose mover the outcome favors.
func (t *tree) backpropagate(leaf nodeID, score float64) {
	for id := leaf; id != noNode; id = t.nodes[id].parent {
		t.nodes[id].visits++
		if favors(score, t.nodes[id].played) {
			t.nodes[id].wins++
		}
	}
}

// bestMove returns the move of the root's most-visited child, first maximum
// winning, or Pass when the root has no children.
func (t *tree) bestMove() game.Move {
	children := t.nodes[rootID].children
	if len(children) == 0 {
		return game.Pass()
	}

	best := children[0]
	for _, child := range children[1:] {
		if t.nodes[child].visits > t.nodes[best].visits {
			best = child
		}
	}
	return t.nodes[best].board.LastMove()
}

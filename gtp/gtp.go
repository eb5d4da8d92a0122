// Package gtp adapts the board and search engines to the Go Text Protocol:
// a line-oriented command loop used by Go controllers and front ends.
package gtp

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"baduk/game"
	"baduk/searcher"
)

// DefaultIterations is the search budget per genmove unless overridden.
const DefaultIterations = 30

var commands = []string{
	"protocol_version",
	"name",
	"version",
	"known_command",
	"list_commands",
	"quit",
	"boardsize",
	"clear_board",
	"komi",
	"play",
	"genmove",
	"showboard",
	"final_score",
}

// Session holds one board and drives the core engines on behalf of a GTP
// controller. Sessions serialize all calls into the core; they are not safe
// for concurrent use.
type Session struct {
	board      *game.Board
	iterations int
}

// NewSession starts a session with a 19x19 board and the default search
// budget.
func NewSession() *Session {
	return &Session{
		board:      game.New(game.Size19),
		iterations: DefaultIterations,
	}
}

// SetIterations overrides the search budget used by genmove.
func (s *Session) SetIterations(iterations int) {
	if iterations > 0 {
		s.iterations = iterations
	}
}

// Board exposes the session's board, mainly for tests.
func (s *Session) Board() *game.Board {
	return s.board
}

// Command executes one GTP command line and returns the response body and
// whether the command succeeded.
func (s *Session) Command(line string) (string, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "empty command", false
	}

	switch fields[0] {
	case "protocol_version":
		return "2", true
	case "name":
		return "baduk", true
	case "version":
		return "0.1", true
	case "known_command":
		if len(fields) < 2 {
			return "false", true
		}
		return strconv.FormatBool(knownCommand(fields[1])), true
	case "list_commands":
		return strings.Join(commands, "\n"), true
	case "quit":
		return "", true
	case "boardsize":
		return s.boardsize(fields[1:])
	case "clear_board":
		s.board.Clear()
		return "", true
	case "komi":
		return s.komi(fields[1:])
	case "play":
		return s.play(fields[1:])
	case "genmove":
		return s.genmove(fields[1:])
	case "showboard":
		return s.board.String(), true
	case "final_score":
		return formatScore(s.board.EstimateScore()), true
	}
	return "unknown command", false
}

// Run reads commands until EOF or quit, writing GTP-framed responses:
// "= body" for success, "? message" for failure.
func (s *Session) Run(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		response, ok := s.Command(line)
		prefix := "="
		if !ok {
			prefix = "?"
		}
		if _, err := fmt.Fprintf(w, "%s %s\n\n", prefix, response); err != nil {
			return err
		}

		if ok && line == "quit" {
			return nil
		}
	}
	return scanner.Err()
}

func knownCommand(name string) bool {
	for _, command := range commands {
		if command == name {
			return true
		}
	}
	return false
}

func (s *Session) boardsize(args []string) (string, bool) {
	if len(args) < 1 {
		return "boardsize not given", false
	}

	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Sprintf("could not convert %s to integer", args[0]), false
	}
	size, ok := game.SizeOf(n)
	if !ok {
		return "unacceptable size", false
	}

	komi := s.board.Komi()
	s.board = game.New(size)
	s.board.SetKomi(komi)
	return "", true
}

func (s *Session) komi(args []string) (string, bool) {
	if len(args) < 1 {
		return "komi not given", false
	}

	value, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Sprintf("could not convert %s to float", args[0]), false
	}
	s.board.SetKomi(value)
	return "", true
}

func (s *Session) play(args []string) (string, bool) {
	if len(args) < 2 {
		return "play requires a color and a vertex", false
	}

	color, ok := game.ParseColor(args[0])
	if !ok {
		return fmt.Sprintf("invalid color %s", args[0]), false
	}

	if strings.EqualFold(args[1], "pass") {
		s.board.Play(game.Pass())
		return "", true
	}

	at, ok := game.ParseIntersection(args[1])
	if !ok {
		return fmt.Sprintf("invalid vertex %s", args[1]), false
	}
	if !s.board.Play(game.Place(at, color)) {
		return "illegal move", false
	}
	return "", true
}

func (s *Session) genmove(args []string) (string, bool) {
	if len(args) < 1 {
		return "genmove requires a color", false
	}

	color, ok := game.ParseColor(args[0])
	if !ok {
		return fmt.Sprintf("invalid color %s", args[0]), false
	}

	move := searcher.GenerateMove(s.board, color, s.iterations)
	switch move.Kind {
	case game.MoveResign:
		return "resign", true
	case game.MovePass:
		s.board.Play(move)
		return "PASS", true
	}

	if !s.board.Play(move) {
		// The searched move was generated against this very board, so a
		// rejection here means the session state drifted.
		return "illegal move generated", false
	}
	return move.At.String(), true
}

// formatScore renders an area score in GTP result notation.
func formatScore(score float64) string {
	switch {
	case score > 0:
		return fmt.Sprintf("B+%.1f", score)
	case score < 0:
		return fmt.Sprintf("W+%.1f", -score)
	}
	return "0"
}

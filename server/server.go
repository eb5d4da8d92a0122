// Package server exposes the GTP engine over HTTP. Each request carries a
// board size, a list of moves to replay, and one final command; the handler
// builds a fresh session, replays the moves, and returns the final command's
// GTP-framed output.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"baduk/game"
	"baduk/gtp"

	"github.com/rs/zerolog/log"
)

// CommandRequest is the JSON body of a POST /.
type CommandRequest struct {
	BoardSize   int      `json:"board_size"`
	MoveList    []string `json:"move_list"`
	NextCommand string   `json:"next_command"`
}

// Handler returns the HTTP handler serving GTP commands.
func Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", handleCommand)
	return mux
}

// Start runs the listener on the given address until it fails.
func Start(addr string) error {
	log.Info().Msgf("listening for GTP commands on %s", addr)
	return http.ListenAndServe(addr, Handler())
}

func handleCommand(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "only POST is supported", http.StatusMethodNotAllowed)
		return
	}

	var request CommandRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "malformed request body", http.StatusBadRequest)
		return
	}
	if _, ok := game.SizeOf(request.BoardSize); !ok {
		http.Error(w, fmt.Sprintf("invalid board size %d given", request.BoardSize), http.StatusBadRequest)
		return
	}

	// A fresh session per request: the API is stateless and the core
	// provides no locking of its own.
	session := gtp.NewSession()
	session.Command(fmt.Sprintf("boardsize %d", request.BoardSize))
	for _, move := range request.MoveList {
		if response, ok := session.Command("play " + move); !ok {
			http.Error(w, fmt.Sprintf("move %q rejected: %s", move, response), http.StatusBadRequest)
			return
		}
	}

	response, ok := session.Command(request.NextCommand)
	prefix := "="
	if !ok {
		prefix = "?"
	}

	log.Info().Str("command", request.NextCommand).Bool("ok", ok).Msg("served GTP command")
	fmt.Fprintf(w, "%s %s\n", prefix, response)
}

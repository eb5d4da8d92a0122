package main

import (
	"fmt"
	"os"

	"baduk/game"
	"baduk/gtp"
	"baduk/searcher"
	"baduk/server"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const serveAddr = ":3000"

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch mode := os.Args[1]; mode {
	case "debug":
		runDebug()
	case "gtp":
		if err := gtp.NewSession().Run(os.Stdin, os.Stdout); err != nil {
			log.Fatal().Err(err).Msg("GTP loop failed")
		}
	case "serve":
		if err := server.Start(serveAddr); err != nil {
			log.Fatal().Err(err).Msg("server stopped")
		}
	default:
		fmt.Fprintf(os.Stderr, "invalid run mode %q\n", mode)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: baduk <debug|gtp|serve>")
}

// runDebug generates one opening move on an empty 19x19 board and renders the
// result in color when the terminal supports it.
func runDebug() {
	b := game.New(game.Size19)
	move := searcher.GenerateMove(b, game.Black, 30)
	log.Info().Msgf("generated move: %s", move)

	if move.Kind == game.MovePlace {
		b.Play(move)
	}
	fmt.Println(renderColor(b))
}

// renderColor draws the board with termenv-styled stones, falling back to
// plain glyphs on dumb terminals.
func renderColor(b *game.Board) string {
	profile := termenv.ColorProfile()
	black := termenv.String("X").Foreground(profile.Color("#1c1c1c")).Bold()
	white := termenv.String("O").Foreground(profile.Color("#ffffff")).Bold()

	out := "\n"
	for row := int(b.Size()); row >= 1; row-- {
		out += fmt.Sprintf("%2d ", row)
		for col := 0; col < int(b.Size()); col++ {
			switch b.At(game.Intersection{Col: col, Row: row}) {
			case game.CellBlack:
				out += black.String() + " "
			case game.CellWhite:
				out += white.String() + " "
			default:
				out += ". "
			}
		}
		out += "\n"
	}

	out += "   "
	for col := 0; col < int(b.Size()); col++ {
		out += fmt.Sprintf("%c ", "ABCDEFGHJKLMNOPQRST"[col])
	}
	return out
}

package main

import (
	"flag"
	"log"
	"os"
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/kai468/chupochess/chess"
	"github.com/kai468/chupochess/console"
)

func main() {
	tui := flag.Bool("tui", getenb("CHUPO_TUI", false), "full-screen terminal interface")
	color := flag.Bool("color", getenb("CHUPO_COLOR", true), "ANSI colours in the line interface")
	fen := flag.String("fen", getenv("CHUPO_FEN", chess.FENStartPos), "starting position")
	flag.Parse()

	board, err := chess.ParseFEN(*fen)
	if err != nil {
		log.Printf("fen: %v", err)
		os.Exit(2)
	}

	if !*tui {
		if err := console.New(os.Stdin, os.Stdout, board, *color).Run(); err != nil {
			log.Fatal(err)
		}
		return
	}

	s, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("screen: %v", err)
	}
	if err := s.Init(); err != nil {
		log.Fatalf("screen init: %v", err)
	}
	err = console.NewTUI(s, board).Run()
	s.Fini()
	if err != nil {
		log.Fatal(err)
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenb(key string, def bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/kai468/chupochess/chess"
	"github.com/kai468/chupochess/oracle"
)

func main() {
	fen := flag.String("fen", chess.FENStartPos, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	compare := flag.String("compare", "", "Check the divide against a reference generator: "+strings.Join(oracle.Names(), "|"))
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	hashMB := flag.Int("hash", 0, "Perft cache size in MB (0 disables)")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	board, err := chess.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}

	if *compare != "" {
		os.Exit(runCompare(board, *fen, *compare, *depth))
	}

	if *divide {
		div := chess.PerftDivide(board, *depth)
		moves := maps.Keys(div)
		slices.Sort(moves)
		var sum uint64
		for _, m := range moves {
			fmt.Printf("%s: %d\n", m, div[m])
			sum += div[m]
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating cpuprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "start cpu profile: %v\n", err)
			os.Exit(2)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	count := chess.Perft
	if *hashMB > 0 {
		count = chess.NewPerftCache(*hashMB).Perft
	}

	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += count(board, *depth)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Depth Nodes Time NPS
	fmt.Printf("%d \t%d \t\t%s \t%.0f\n", *depth, totalNodes, elapsed, nps)
}

// runCompare prints every root move whose count differs from the reference and returns the
// process exit code.
func runCompare(board *chess.Board, fen, name string, depth int) int {
	backend, err := oracle.Lookup(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 2
	}
	want, err := backend.Divide(fen, depth)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s divide: %v\n", backend.Name(), err)
		return 2
	}
	got := chess.PerftDivide(board, depth)
	diff := oracle.Compare(got, want)
	for _, m := range diff {
		fmt.Println(m)
	}
	if len(diff) > 0 {
		fmt.Printf("%d root moves differ from %s\n", len(diff), backend.Name())
		return 1
	}
	fmt.Printf("ok: %d root moves agree with %s at depth %d\n", len(got), backend.Name(), depth)
	return 0
}

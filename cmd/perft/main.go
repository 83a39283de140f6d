// Command perft counts leaf nodes reachable from a position via the move
// generator, at a range of depths, and checks the counts against known
// values for a handful of reference positions. It exists to exercise and
// debug the move generator. No transposition table: the engine package
// exposes no position hash, and the search this repo builds never goes
// deep enough for memoized perft to matter.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/tholman/chessbot/engine"
)

var (
	fen      = flag.String("fen", "startpos", "position to search, or one of the known names below")
	minDepth = flag.Int("min_depth", 1, "minimum depth to search (inclusive)")
	maxDepth = flag.Int("max_depth", 5, "maximum depth to search (inclusive)")
	depth    = flag.Int("depth", 0, "if non zero, searches only this depth")
)

const (
	startpos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
)

var known = map[string]string{
	"startpos": startpos,
	"kiwipete": kiwipete,
}

var expectedNodes = map[string][]uint64{
	startpos: {1, 20, 400, 8902, 197281, 4865609},
	kiwipete: {1, 48, 2039, 97862, 4085603},
}

func perft(p *engine.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	for _, m := range engine.GenerateMoves(p) {
		child := p.Clone()
		child.ApplyMove(m)
		nodes += perft(child, depth-1)
	}
	return nodes
}

func main() {
	flag.Parse()
	log.SetFlags(log.Lshortfile)

	if s, ok := known[*fen]; ok {
		*fen = s
	}
	if *depth != 0 {
		*minDepth, *maxDepth = *depth, *depth
	}

	p, err := engine.ParseFEN(*fen)
	if err != nil {
		log.Fatalln("cannot parse --fen:", err)
	}
	expected := expectedNodes[*fen]

	fmt.Printf("searching FEN %q\n", *fen)
	fmt.Printf("depth        nodes   elapsed      status\n")
	for d := *minDepth; d <= *maxDepth; d++ {
		start := time.Now()
		nodes := perft(p, d)
		elapsed := time.Since(start)

		status := ""
		if d < len(expected) {
			if nodes == expected[d] {
				status = "good"
			} else {
				status = fmt.Sprintf("bad, expected %d", expected[d])
			}
		}
		fmt.Printf("%6d %12d %10v  %s\n", d, nodes, elapsed, status)
	}
}

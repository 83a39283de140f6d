// Command chessbot is the process entry point: it parses flags, loads
// config, and runs the search engine against a small stdin-driven REPL
// driver. This binary exists so the engine is runnable without a network
// dependency; a real online-match client is a separate driver.Driver
// implementation (see lichessclient).
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/tholman/chessbot/botlog"
	"github.com/tholman/chessbot/config"
	"github.com/tholman/chessbot/driver"
	"github.com/tholman/chessbot/engine"
	"github.com/tholman/chessbot/movetext"
	"github.com/tholman/chessbot/search"
)

var (
	configPath = flag.String("config", "", "path to a TOML config file (optional)")
	fen        = flag.String("fen", "", "starting position in FEN; defaults to the standard starting position")
	workers    = flag.Int("workers", 0, "root-child worker pool size; 0 uses the config/default")
	verbosity  = flag.String("verbose", "INFO", "log level: DEBUG, INFO, WARNING, ERROR")
)

var log = botlog.Get("cmd")

func main() {
	flag.Parse()
	if err := botlog.SetLevel(*verbosity, ""); err != nil {
		log.Fatalf("invalid -verbose level %q: %v", *verbosity, err)
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("loading config %q: %v", *configPath, err)
		}
		cfg = loaded
	}

	maxWorkers := cfg.Search.MaxWorkers
	if *workers > 0 {
		maxWorkers = *workers
	}
	if maxWorkers <= 0 {
		maxWorkers = config.Default().Search.MaxWorkers
	}
	if maxWorkers > runtime.GOMAXPROCS(0) {
		maxWorkers = runtime.GOMAXPROCS(0)
	}

	pos := engine.NewStartingPosition()
	if *fen != "" {
		p, err := engine.ParseFEN(*fen)
		if err != nil {
			log.Fatalf("parsing -fen: %v", err)
		}
		pos = p
	}

	d := newREPLDriver(pos, os.Stdin, os.Stdout)
	a := driver.NewAdaptor(search.Options{MaxWorkers: maxWorkers, Weights: cfg.Weights})
	a.PlayGame(context.Background(), d)
}

// replDriver is a minimal driver.Driver that reads move text lines from
// an input stream and writes its own moves to an output stream,
// assuming the user (or a test harness) plays the opposing side. It
// never offers or accepts draws.
type replDriver struct {
	position *engine.Position
	color    engine.Color
	in       *bufio.Scanner
	out      *bufio.Writer
}

func newREPLDriver(pos *engine.Position, in *os.File, out *os.File) *replDriver {
	return &replDriver{
		position: pos,
		color:    pos.SideToMove,
		in:       bufio.NewScanner(in),
		out:      bufio.NewWriter(out),
	}
}

func (d *replDriver) GetPosition() *engine.Position { return d.position }
func (d *replDriver) GetMyColor() engine.Color { return d.color }
func (d *replDriver) GameName() string { return "stdin" }

func (d *replDriver) SubmitMove(m engine.Move) bool {
	if engine.Classify(d.position, m, d.position.SideToMove) != engine.Valid {
		return false
	}
	d.position.ApplyMove(m)
	fmt.Fprintf(d.out, "move %s\n", movetext.FormatMove(m))
	d.out.Flush()
	return d.readOpponentMove()
}

func (d *replDriver) readOpponentMove() bool {
	for d.in.Scan() {
		line := strings.TrimSpace(d.in.Text())
		if line == "" {
			continue
		}
		m, err := movetext.ParseMove(line)
		if err != nil {
			fmt.Fprintf(d.out, "error: %v\n", err)
			d.out.Flush()
			continue
		}
		if engine.Classify(d.position, m, d.position.SideToMove) != engine.Valid {
			fmt.Fprintf(d.out, "error: illegal move\n")
			d.out.Flush()
			continue
		}
		d.position.ApplyMove(m)
		return true
	}
	return false
}

func (d *replDriver) Resign() {
	fmt.Fprintln(d.out, "resign")
	d.out.Flush()
}

func (d *replDriver) OfferDraw() bool {
	fmt.Fprintln(d.out, "offer-draw")
	d.out.Flush()
	return false
}

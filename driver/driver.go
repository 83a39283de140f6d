// Package driver bridges the search engine to an external turn source.
// Adaptor holds the current position and exposes OnPosition/PlayTurn; the
// external collaborator is abstracted behind the Driver interface so the
// core never depends on a network client, event stream, or CLI.
package driver

import (
	"context"
	"errors"

	"github.com/tholman/chessbot/botlog"
	"github.com/tholman/chessbot/engine"
	"github.com/tholman/chessbot/search"
)

var log = botlog.Get("driver")

// Driver is the external collaborator consumed by the core:
// an online match client, a local REPL, or a test double. None of its
// methods are implemented by this package.
type Driver interface {
	GetPosition() *engine.Position
	GetMyColor() engine.Color
	SubmitMove(m engine.Move) bool
	Resign()
	OfferDraw() bool
	GameName() string
}

// OutcomeKind tags the variant held by an Outcome.
type OutcomeKind int

const (
	OutcomeMove OutcomeKind = iota
	OutcomeResign
	OutcomeOfferDraw
)

// Outcome is the sum type PlayTurn returns: a move to submit, a
// resignation, or a draw offer. Move is only meaningful when
// Kind == OutcomeMove.
type Outcome struct {
	Kind OutcomeKind
	Move engine.Move
}

// Adaptor implements the OnPosition/PlayTurn pair. It keeps a resign
// latch: once the driver rejects a submitted move, every subsequent
// PlayTurn call resigns immediately instead of invoking search again, so
// a broken driver can never spin the engine in a loop.
type Adaptor struct {
	engine   *search.Engine
	position *engine.Position
	resigned bool
}

// NewAdaptor builds an Adaptor around a search.Engine constructed with
// the given options.
func NewAdaptor(opts search.Options) *Adaptor {
	return &Adaptor{engine: search.NewEngine(opts)}
}

// OnPosition stores the current position.
func (a *Adaptor) OnPosition(p *engine.Position) {
	a.position = p
}

// PlayTurn invokes the search on the stored position and maps its result
// to an Outcome. Once resigned, it returns OutcomeResign without
// touching the search engine again.
func (a *Adaptor) PlayTurn(ctx context.Context) Outcome {
	if a.resigned {
		return Outcome{Kind: OutcomeResign}
	}
	if a.position == nil {
		log.Error("PlayTurn called with no position set")
		a.resigned = true
		return Outcome{Kind: OutcomeResign}
	}

	result, err := a.engine.Build(ctx, a.position)
	if err != nil {
		if errors.Is(err, search.ErrNoLegalMoves) {
			log.Infof("no legal moves, resigning")
		} else {
			log.Errorf("search failed: %v", err)
		}
		a.resigned = true
		return Outcome{Kind: OutcomeResign}
	}
	return Outcome{Kind: OutcomeMove, Move: result.Move}
}

// OnMoveRejected records that the driver refused the last submitted
// move: a hard failure, mapped to resignation on the next
// PlayTurn call.
func (a *Adaptor) OnMoveRejected() {
	log.Warning("driver rejected submitted move, resigning")
	a.resigned = true
}

// PlayGame runs OnPosition/PlayTurn/SubmitMove against d until the
// adaptor resigns, the driver offers/accepts a draw, or ctx is
// cancelled. It is a convenience loop for callers (cmd/chessbot) that
// don't need finer control over the turn sequence.
func (a *Adaptor) PlayGame(ctx context.Context, d Driver) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		a.OnPosition(d.GetPosition())
		outcome := a.PlayTurn(ctx)
		switch outcome.Kind {
		case OutcomeResign:
			d.Resign()
			return
		case OutcomeOfferDraw:
			if d.OfferDraw() {
				return
			}
		case OutcomeMove:
			if !d.SubmitMove(outcome.Move) {
				a.OnMoveRejected()
				d.Resign()
				return
			}
		}
	}
}

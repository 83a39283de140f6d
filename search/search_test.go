package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tholman/chessbot/engine"
)

func TestBuildReturnsLegalMove(t *testing.T) {
	p := engine.NewStartingPosition()
	e := NewEngine(Options{MaxWorkers: 0, Weights: engine.DefaultWeights})

	result, err := e.Build(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, engine.Valid, engine.Classify(p, result.Move, engine.White))
}

func TestBuildResignsWithNoLegalMoves(t *testing.T) {
	p, err := engine.ParseFEN("6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")
	require.NoError(t, err)
	p.ApplyMove(engine.NewMove(engine.NewSquare(engine.Rank1, engine.FileA), engine.NewSquare(engine.Rank8, engine.FileA)))
	require.True(t, engine.IsCheckmate(p, engine.Black))

	e := NewEngine(Options{MaxWorkers: 0})
	_, err = e.Build(context.Background(), p)
	assert.ErrorIs(t, err, ErrNoLegalMoves)
}

func TestBuildParallelMatchesSequential(t *testing.T) {
	p := engine.NewStartingPosition()

	sequential := NewEngine(Options{MaxWorkers: 0, Weights: engine.DefaultWeights})
	parallel := NewEngine(Options{MaxWorkers: 4, Weights: engine.DefaultWeights})

	seqResult, err := sequential.Build(context.Background(), p)
	require.NoError(t, err)
	parResult, err := parallel.Build(context.Background(), p)
	require.NoError(t, err)

	assert.Equal(t, seqResult.Move, parResult.Move)
	assert.Equal(t, seqResult.Score, parResult.Score)
}

func TestPrincipalVariationNonEmpty(t *testing.T) {
	p := engine.NewStartingPosition()
	e := NewEngine(Options{MaxWorkers: 2, Weights: engine.DefaultWeights})

	result, err := e.Build(context.Background(), p)
	require.NoError(t, err)

	pv := PrincipalVariation(result)
	assert.NotEmpty(t, pv)
	assert.Equal(t, result.Move, pv[0].Move)
}

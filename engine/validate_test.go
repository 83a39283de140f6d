package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyPathBlocked(t *testing.T) {
	p := NewEmptyPosition()
	p.Put(NewSquare(Rank1, FileA), NewPiece(Rook, White))
	p.Put(NewSquare(Rank5, FileA), NewPiece(Pawn, White))
	p.Put(NewSquare(Rank1, FileE), NewPiece(King, White))
	p.Put(NewSquare(Rank8, FileE), NewPiece(King, Black))

	m := NewMove(NewSquare(Rank1, FileA), NewSquare(Rank8, FileA))
	assert.Equal(t, PathBlocked, Classify(p, m, White))
}

func TestClassifyNotYourTurn(t *testing.T) {
	p := NewStartingPosition()
	m := NewMove(NewSquare(Rank7, FileE), NewSquare(Rank5, FileE))
	assert.Equal(t, NotYourTurn, Classify(p, m, Black))
}

func TestClassifyFromIsEmpty(t *testing.T) {
	p := NewStartingPosition()
	m := NewMove(NewSquare(Rank4, FileE), NewSquare(Rank5, FileE))
	assert.Equal(t, FromIsEmpty, Classify(p, m, White))
}

func TestClassifyFromNotOwnedByMover(t *testing.T) {
	p := NewStartingPosition()
	m := NewMove(NewSquare(Rank7, FileE), NewSquare(Rank5, FileE))
	assert.Equal(t, FromNotOwnedByMover, Classify(p, m, White))
}

func TestClassifyDestinationOccupiedByOwnPiece(t *testing.T) {
	p := NewStartingPosition()
	m := NewMove(NewSquare(Rank1, FileA), NewSquare(Rank2, FileA))
	assert.Equal(t, DestinationOccupiedByOwnPiece, Classify(p, m, White))
}

func TestClassifyLeavesKingInCheck(t *testing.T) {
	// White king e1, white rook e2 pinned by a black rook on e8: moving
	// the rook off the e-file exposes the king.
	p, err := ParseFEN("4r3/8/8/8/8/8/4R3/4K3 w - - 0 1")
	require.NoError(t, err)

	m := NewMove(NewSquare(Rank2, FileE), NewSquare(Rank2, FileD))
	assert.Equal(t, LeavesKingInCheck, Classify(p, m, White))

	alongFile := NewMove(NewSquare(Rank2, FileE), NewSquare(Rank3, FileE))
	assert.Equal(t, Valid, Classify(p, alongFile, White))
}

func TestClassifyCastlingOutOfCheck(t *testing.T) {
	p, err := ParseFEN("4r3/8/8/8/8/8/8/4K2R w K - 0 1")
	require.NoError(t, err)

	m := NewMove(NewSquare(Rank1, FileE), NewSquare(Rank1, FileG))
	assert.Equal(t, LeavesKingInCheck, Classify(p, m, White))
}

func TestClassifyCastlingThroughCheck(t *testing.T) {
	p, err := ParseFEN("5r2/8/8/8/8/8/8/4K2R w K - 0 1")
	require.NoError(t, err)

	m := NewMove(NewSquare(Rank1, FileE), NewSquare(Rank1, FileG))
	assert.Equal(t, LeavesKingInCheck, Classify(p, m, White))
}

func TestClassifyCastlingIntoCheck(t *testing.T) {
	p, err := ParseFEN("6r1/8/8/8/8/8/8/4K2R w K - 0 1")
	require.NoError(t, err)

	m := NewMove(NewSquare(Rank1, FileE), NewSquare(Rank1, FileG))
	assert.Equal(t, LeavesKingInCheck, Classify(p, m, White))
}

func TestClassifyDoublePawnPushRequiresStartRank(t *testing.T) {
	p := NewEmptyPosition()
	p.Put(NewSquare(Rank3, FileE), NewPiece(Pawn, White))
	p.Put(NewSquare(Rank1, FileA), NewPiece(King, White))
	p.Put(NewSquare(Rank8, FileA), NewPiece(King, Black))

	m := NewMove(NewSquare(Rank3, FileE), NewSquare(Rank5, FileE))
	assert.Equal(t, IllegalForPieceKind, Classify(p, m, White))
}

func TestClassifyPromotionRequiresPromotionKind(t *testing.T) {
	p := NewEmptyPosition()
	p.Put(NewSquare(Rank7, FileE), NewPiece(Pawn, White))
	p.Put(NewSquare(Rank1, FileA), NewPiece(King, White))
	p.Put(NewSquare(Rank8, FileA), NewPiece(King, Black))

	plain := NewMove(NewSquare(Rank7, FileE), NewSquare(Rank8, FileE))
	assert.Equal(t, IllegalForPieceKind, Classify(p, plain, White))

	promo := NewPromotion(NewSquare(Rank7, FileE), NewSquare(Rank8, FileE), Queen)
	assert.Equal(t, Valid, Classify(p, promo, White))
}

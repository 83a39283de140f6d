package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquareStringRoundTrip(t *testing.T) {
	for _, s := range []string{"a1", "e4", "h8"} {
		sq, err := SquareFromString(s)
		assert.NoError(t, err)
		assert.Equal(t, s, sq.String())
	}
}

func TestSquareFromStringRejectsMalformed(t *testing.T) {
	for _, s := range []string{"", "a", "a9", "i1", "A1"} {
		_, err := SquareFromString(s)
		assert.Error(t, err, "expected error for %q", s)
	}
}

func TestNewSquarePanicsOutOfBounds(t *testing.T) {
	assert.Panics(t, func() { NewSquare(Rank(8), FileA) })
}

func TestPieceKindAndColorRoundTrip(t *testing.T) {
	for _, k := range []Kind{Pawn, Knight, Bishop, Rook, Queen, King} {
		for _, c := range []Color{White, Black} {
			p := NewPiece(k, c)
			assert.Equal(t, k, p.Kind())
			assert.Equal(t, c, p.Color())
		}
	}
}

func TestPieceSANRoundTrip(t *testing.T) {
	p := NewPiece(Knight, Black)
	san := p.ToSAN()
	got, ok := PieceFromSAN(san)
	assert.True(t, ok)
	assert.Equal(t, p, got)
}

func TestOffsetOutOfBounds(t *testing.T) {
	sq := NewSquare(Rank1, FileA)
	u := sq.Offset(-1, -1)
	assert.False(t, u.InBounds())
	assert.Panics(t, func() { u.Bound() })
}

func TestColorOther(t *testing.T) {
	assert.Equal(t, Black, White.Other())
	assert.Equal(t, White, Black.Other())
}

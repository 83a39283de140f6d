package engine

// Move is a candidate or applied chess move: a source and destination
// square plus an optional promotion piece. Promotion is NoKind unless a
// pawn promotes; the promotion piece is stored uncolored and colored in
// on ApplyMove.
type Move struct {
	From, To  Bounded
	Promotion Kind
}

// NewMove builds a Move between two squares with no promotion.
func NewMove(from, to Square) Move {
	return Move{From: from.SquarePair(), To: to.SquarePair()}
}

// NewPromotion builds a promoting Move. promo must be one of Queen, Rook,
// Bishop, Knight.
func NewPromotion(from, to Square, promo Kind) Move {
	return Move{From: from.SquarePair(), To: to.SquarePair(), Promotion: promo}
}

// FromSquare returns the move's source as a Square.
func (m Move) FromSquare() Square { return m.From.Square() }

// ToSquare returns the move's destination as a Square.
func (m Move) ToSquare() Square { return m.To.Square() }

// String renders m for debugging/logging only; the wire move-text format
// is parsed/formatted by the movetext package, kept separate
// so engine has no string-format concern beyond FEN.
func (m Move) String() string {
	s := m.FromSquare().String() + m.ToSquare().String()
	if m.Promotion != NoKind {
		s += string(NewPiece(m.Promotion, Black).ToSAN())
	}
	return s
}

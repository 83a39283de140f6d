// validate.go classifies a candidate move against a position. Classify
// never mutates p; it answers "what, if anything, is wrong with this
// move" as a sum type rather than a bare bool, so callers (the driver,
// tests) can report a specific reason.
package engine

// MoveValidity enumerates why a candidate move is or isn't legal.
type MoveValidity int

const (
	Valid MoveValidity = iota
	NotYourTurn
	FromIsEmpty
	FromNotOwnedByMover
	DestinationOccupiedByOwnPiece
	IllegalForPieceKind
	PathBlocked
	LeavesKingInCheck
)

func (v MoveValidity) String() string {
	switch v {
	case Valid:
		return "valid"
	case NotYourTurn:
		return "not your turn"
	case FromIsEmpty:
		return "source square is empty"
	case FromNotOwnedByMover:
		return "source square is not your piece"
	case DestinationOccupiedByOwnPiece:
		return "destination is occupied by your own piece"
	case IllegalForPieceKind:
		return "not a legal move for this piece"
	case PathBlocked:
		return "path is blocked"
	case LeavesKingInCheck:
		return "leaves your king in check"
	default:
		return "unknown"
	}
}

// Classify reports whether m is legal for mover to play on p.
func Classify(p *Position, m Move, mover Color) MoveValidity {
	if mover != p.SideToMove {
		return NotYourTurn
	}

	from, to := m.FromSquare(), m.ToSquare()
	piece := p.Get(from)
	if piece == NoPiece {
		return FromIsEmpty
	}
	if piece.Color() != mover {
		return FromNotOwnedByMover
	}
	dest := p.Get(to)
	if dest != NoPiece && dest.Color() == mover {
		return DestinationOccupiedByOwnPiece
	}

	if v := classifyShape(p, m, piece); v != Valid {
		return v
	}

	if leavesKingInCheck(p, m, mover) {
		return LeavesKingInCheck
	}
	return Valid
}

// classifyShape checks piece-kind movement rules and path blocking,
// ignoring whether the move leaves the mover's own king in check.
func classifyShape(p *Position, m Move, piece Piece) MoveValidity {
	from, to := m.FromSquare(), m.ToSquare()
	if from == to {
		return IllegalForPieceKind
	}

	switch piece.Kind() {
	case Pawn:
		return classifyPawn(p, m, piece)
	case Knight:
		if KnightAttack(from).Has(to) {
			return Valid
		}
		return IllegalForPieceKind
	case Bishop:
		if ClassifyLine(from, to) != LineDiagonal {
			return IllegalForPieceKind
		}
		if FirstOccupiedBetween(from, to, p.Occupied()) != SquareNone {
			return PathBlocked
		}
		return Valid
	case Rook:
		line := ClassifyLine(from, to)
		if line != LineRank && line != LineFile {
			return IllegalForPieceKind
		}
		if FirstOccupiedBetween(from, to, p.Occupied()) != SquareNone {
			return PathBlocked
		}
		return Valid
	case Queen:
		line := ClassifyLine(from, to)
		if line != LineRank && line != LineFile && line != LineDiagonal {
			return IllegalForPieceKind
		}
		if FirstOccupiedBetween(from, to, p.Occupied()) != SquareNone {
			return PathBlocked
		}
		return Valid
	case King:
		return classifyKing(p, m, piece)
	default:
		return IllegalForPieceKind
	}
}

func classifyPawn(p *Position, m Move, piece Piece) MoveValidity {
	from, to := m.FromSquare(), m.ToSquare()
	color := piece.Color()
	fwd := 1
	startRank, promoRank := Rank2, Rank8
	if color == Black {
		fwd = -1
		startRank, promoRank = Rank7, Rank1
	}

	dr := SignedDistance(to.Rank(), from.Rank())
	df := SignedDistanceF(to.File(), from.File())
	dest := p.Get(to)

	needsPromotion := to.Rank() == promoRank
	if needsPromotion && m.Promotion == NoKind {
		return IllegalForPieceKind
	}
	if !needsPromotion && m.Promotion != NoKind {
		return IllegalForPieceKind
	}

	switch {
	case df == 0 && dr == fwd:
		if dest != NoPiece {
			return IllegalForPieceKind
		}
		return Valid
	case df == 0 && dr == 2*fwd:
		if from.Rank() != startRank {
			return IllegalForPieceKind
		}
		if dest != NoPiece {
			return IllegalForPieceKind
		}
		midRank := Rank((int(from.Rank()) + int(to.Rank())) / 2)
		if p.Occupied().Has(NewSquare(midRank, from.File())) {
			return PathBlocked
		}
		return Valid
	case (df == 1 || df == -1) && dr == fwd:
		if dest != NoPiece && dest.Color() != color {
			return Valid
		}
		if to == p.EnPassant {
			return Valid
		}
		return IllegalForPieceKind
	default:
		return IllegalForPieceKind
	}
}

func classifyKing(p *Position, m Move, piece Piece) MoveValidity {
	from, to := m.FromSquare(), m.ToSquare()
	if KingAttack(from).Has(to) {
		return Valid
	}

	// Castling: king moves two files along its home rank.
	if from.Rank() != to.Rank() || DistanceF(from.File(), to.File()) != 2 {
		return IllegalForPieceKind
	}
	color := piece.Color()
	kingside := to.File() == FileG
	var haveRight bool
	var pathSquares []Square
	homeRank := Rank1
	if color == Black {
		homeRank = Rank8
	}
	switch {
	case color == White && kingside:
		haveRight = p.CastleWhiteKingside
		pathSquares = []Square{NewSquare(Rank1, FileF), NewSquare(Rank1, FileG)}
	case color == White && !kingside:
		haveRight = p.CastleWhiteQueenside
		pathSquares = []Square{NewSquare(Rank1, FileD), NewSquare(Rank1, FileC), NewSquare(Rank1, FileB)}
	case color == Black && kingside:
		haveRight = p.CastleBlackKingside
		pathSquares = []Square{NewSquare(Rank8, FileF), NewSquare(Rank8, FileG)}
	default:
		haveRight = p.CastleBlackQueenside
		pathSquares = []Square{NewSquare(Rank8, FileD), NewSquare(Rank8, FileC), NewSquare(Rank8, FileB)}
	}
	if from.Rank() != homeRank || !haveRight {
		return IllegalForPieceKind
	}
	for _, sq := range pathSquares {
		if p.Occupied().Has(sq) {
			return PathBlocked
		}
	}
	if IsAttacked(p, from, color.Other()) != SquareNone {
		return LeavesKingInCheck
	}
	transit := NewSquare(homeRank, (from.File()+to.File())/2)
	if IsAttacked(p, transit, color.Other()) != SquareNone {
		return LeavesKingInCheck
	}
	if IsAttacked(p, to, color.Other()) != SquareNone {
		return LeavesKingInCheck
	}
	return Valid
}

// leavesKingInCheck plays m on a scratch clone of p and tests whether
// mover's own king is attacked afterward.
func leavesKingInCheck(p *Position, m Move, mover Color) bool {
	cp := p.Clone()
	cp.ApplyMove(m)
	return IsCheck(cp, mover)
}

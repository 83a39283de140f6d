// Package movetext parses and formats chess moves in four/five character
// coordinate notation (e.g. "e2e4", "a7a8q"), kept separate from engine so
// the core position/rules package carries no string-formatting concern
// beyond FEN.
package movetext

import (
	"fmt"

	"github.com/tholman/chessbot/engine"
)

var promoLetterToKind = map[byte]engine.Kind{
	'q': engine.Queen, 'r': engine.Rook, 'b': engine.Bishop, 'n': engine.Knight,
}

var kindToPromoLetter = map[engine.Kind]byte{
	engine.Queen: 'q', engine.Rook: 'r', engine.Bishop: 'b', engine.Knight: 'n',
}

// ParseMove parses the four/five character coordinate move text format.
// Square letters are expected lowercase, ranks '1'..'8', and the optional
// promotion letter is case-sensitive, one of q,r,b,n. No separators are
// allowed between fields.
func ParseMove(s string) (engine.Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return engine.Move{}, fmt.Errorf("movetext: malformed move %q", s)
	}
	from, err := engine.SquareFromString(s[0:2])
	if err != nil {
		return engine.Move{}, fmt.Errorf("movetext: malformed move %q: %w", s, err)
	}
	to, err := engine.SquareFromString(s[2:4])
	if err != nil {
		return engine.Move{}, fmt.Errorf("movetext: malformed move %q: %w", s, err)
	}
	if len(s) == 4 {
		return engine.NewMove(from, to), nil
	}
	k, ok := promoLetterToKind[s[4]]
	if !ok {
		return engine.Move{}, fmt.Errorf("movetext: malformed move %q: bad promotion letter", s)
	}
	return engine.NewPromotion(from, to, k), nil
}

// FormatMove renders m in the coordinate format that ParseMove accepts.
func FormatMove(m engine.Move) string {
	s := m.FromSquare().String() + m.ToSquare().String()
	if m.Promotion != engine.NoKind {
		s += string(kindToPromoLetter[m.Promotion])
	}
	return s
}

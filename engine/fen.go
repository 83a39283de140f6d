// fen.go implements FEN parsing and emission, splitting the record into
// its whitespace-delimited fields and reporting a byte offset into the
// original string on failure.
package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// FENError reports a FEN string that could not be parsed, carrying the
// byte offset of the offending field.
type FENError struct {
	FEN    string
	Offset int
	Reason string
}

func (e *FENError) Error() string {
	return fmt.Sprintf("engine: invalid FEN at offset %d: %s (%q)", e.Offset, e.Reason, e.FEN)
}

// ParseFEN parses a Forsyth-Edwards Notation string into a Position.
// Parsing is permissive about surrounding whitespace and accepts four to
// six whitespace-separated fields; a missing halfmove clock defaults to 0
// and a missing fullmove number to 1.
func ParseFEN(fen string) (*Position, error) {
	trimmed := strings.TrimSpace(fen)
	fields := strings.Fields(trimmed)
	if len(fields) < 4 {
		return nil, &FENError{FEN: fen, Offset: 0, Reason: "expected at least 4 space-separated fields"}
	}

	p := NewEmptyPosition()
	offset := 0

	if err := parseBoard(p, fields[0], offset); err != nil {
		return nil, err
	}
	offset += len(fields[0]) + 1

	switch fields[1] {
	case "w":
		p.SideToMove = White
	case "b":
		p.SideToMove = Black
	default:
		return nil, &FENError{FEN: fen, Offset: offset, Reason: "side to move must be 'w' or 'b'"}
	}
	offset += len(fields[1]) + 1

	if fields[2] != "-" {
		for _, c := range fields[2] {
			switch c {
			case 'K':
				p.CastleWhiteKingside = true
			case 'Q':
				p.CastleWhiteQueenside = true
			case 'k':
				p.CastleBlackKingside = true
			case 'q':
				p.CastleBlackQueenside = true
			default:
				return nil, &FENError{FEN: fen, Offset: offset, Reason: "unrecognized castling rights letter"}
			}
		}
	}
	offset += len(fields[2]) + 1

	if fields[3] == "-" {
		p.EnPassant = SquareNone
	} else {
		sq, err := SquareFromString(fields[3])
		if err != nil {
			return nil, &FENError{FEN: fen, Offset: offset, Reason: "malformed en passant square"}
		}
		p.EnPassant = sq
	}
	offset += len(fields[3]) + 1

	// Halfmove clock and fullmove number are optional; default to 0/1,
	// matching permissive FEN parsers in the wild.
	p.HalfmoveClock = 0
	p.FullmoveNumber = 1
	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return nil, &FENError{FEN: fen, Offset: offset, Reason: "malformed halfmove clock"}
		}
		p.HalfmoveClock = uint16(n)
		offset += len(fields[4]) + 1
	}
	if len(fields) >= 6 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return nil, &FENError{FEN: fen, Offset: offset, Reason: "malformed fullmove number"}
		}
		p.FullmoveNumber = uint16(n)
	}

	return p, nil
}

func parseBoard(p *Position, field string, baseOffset int) error {
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return &FENError{FEN: field, Offset: baseOffset, Reason: "board must have 8 ranks"}
	}
	off := baseOffset
	for i, rankStr := range ranks {
		r := Rank(7 - i)
		f := FileA
		for _, c := range rankStr {
			if c >= '1' && c <= '8' {
				f += File(c - '0')
				continue
			}
			if f > FileH {
				return &FENError{FEN: field, Offset: off, Reason: "rank overflows 8 files"}
			}
			piece, ok := PieceFromSAN(byte(c))
			if !ok {
				return &FENError{FEN: field, Offset: off, Reason: "unrecognized piece letter"}
			}
			p.Put(NewSquare(r, f), piece)
			f++
		}
		if f != FileH+1 {
			return &FENError{FEN: field, Offset: off, Reason: "rank does not cover exactly 8 files"}
		}
		off += len(rankStr) + 1
	}
	return nil
}

// FEN renders p in Forsyth-Edwards Notation. ParseFEN(p.FEN()) round-trips
// to a Position equal to p.
func (p *Position) FEN() string {
	var sb strings.Builder
	for r := Rank8; ; r-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			piece := p.Get(NewSquare(r, f))
			if piece == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(piece.ToSAN())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r == Rank1 {
			break
		}
		sb.WriteByte('/')
	}

	sb.WriteByte(' ')
	if p.SideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	castle := ""
	if p.CastleWhiteKingside {
		castle += "K"
	}
	if p.CastleWhiteQueenside {
		castle += "Q"
	}
	if p.CastleBlackKingside {
		castle += "k"
	}
	if p.CastleBlackQueenside {
		castle += "q"
	}
	if castle == "" {
		castle = "-"
	}
	sb.WriteString(castle)

	sb.WriteByte(' ')
	sb.WriteString(p.EnPassant.String())

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(int(p.HalfmoveClock)))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(int(p.FullmoveNumber)))

	return sb.String()
}

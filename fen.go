package chess

import (
	"fmt"
	"strconv"
	"strings"
)

// StartPositionFEN is the FEN of the standard chess starting position.
const StartPositionFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FEN parses a Forsyth-Edwards Notation string into a Position. It accepts
// both standard castling letters (KQkq) and Chess960/Shredder-FEN file
// letters (A-H / a-h), recording the named file as that color's rook home
// so castling moves decode correctly from a non-standard rook start.
func FEN(s string) (*Position, error) {
	return decodeFEN(s)
}

func decodeFEN(s string) (*Position, error) {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) < 4 {
		return nil, fmt.Errorf("%w: %q has too few fields", ErrInvalidFEN, s)
	}
	for len(fields) < 6 {
		if len(fields) == 4 {
			fields = append(fields, "0")
		} else {
			fields = append(fields, "1")
		}
	}

	board, err := boardFromFEN(fields[0])
	if err != nil {
		return nil, err
	}

	var turn Color
	switch fields[1] {
	case "w":
		turn = White
	case "b":
		turn = Black
	default:
		return nil, fmt.Errorf("%w: %q invalid turn field %q", ErrInvalidFEN, s, fields[1])
	}

	castle, rookFile, err := parseCastlingField(fields[2], board)
	if err != nil {
		return nil, err
	}

	epSquare := NoSquare
	if fields[3] != "-" {
		sq, ok := strToSquareMap[strings.ToLower(fields[3])]
		if !ok {
			return nil, fmt.Errorf("%w: %q invalid en passant field %q", ErrInvalidFEN, s, fields[3])
		}
		epSquare = sq
	}

	halfMove, err := strconv.Atoi(fields[4])
	if err != nil {
		return nil, fmt.Errorf("%w: %q invalid half-move field: %v", ErrInvalidFEN, s, err)
	}
	moveCount, err := strconv.Atoi(fields[5])
	if err != nil {
		return nil, fmt.Errorf("%w: %q invalid full-move field: %v", ErrInvalidFEN, s, err)
	}

	pos := NewPositionAtTime(board, turn, castle, epSquare, halfMove, moveCount)
	pos.rookFile = rookFile
	pos.inCheck = isInCheck(board, turn)
	return pos, nil
}

func boardFromFEN(s string) (*Board, error) {
	rows := strings.Split(s, "/")
	if len(rows) != 8 {
		return nil, fmt.Errorf("%w: board field %q must have 8 ranks", ErrInvalidFEN, s)
	}
	m := map[Square]Piece{}
	for i, row := range rows {
		rank := Rank(7 - i)
		file := File(0)
		for _, c := range row {
			if c >= '1' && c <= '8' {
				file += File(c - '0')
				continue
			}
			p, ok := fenPieceMap[byte(c)]
			if !ok {
				return nil, fmt.Errorf("%w: board field %q has invalid piece char %q", ErrInvalidFEN, s, c)
			}
			if file > 7 {
				return nil, fmt.Errorf("%w: board field %q rank %d overflows", ErrInvalidFEN, s, 8-i)
			}
			m[NewSquare(file, rank)] = p
			file++
		}
		if file != 8 {
			return nil, fmt.Errorf("%w: board field %q rank %d doesn't sum to 8 files", ErrInvalidFEN, s, 8-i)
		}
	}
	return NewBoard(m), nil
}

// parseCastlingField decodes both the standard KQkq and the Chess960
// file-letter forms of the castling availability field.
func parseCastlingField(field string, board *Board) (CastlingRights, [2][2]File, error) {
	rookFile := defaultRookFiles
	if field == "-" {
		return NoCastlingRights, rookFile, nil
	}
	var cr CastlingRights
	for _, c := range field {
		switch c {
		case 'K':
			cr |= WhiteKingSide
		case 'Q':
			cr |= WhiteQueenSide
		case 'k':
			cr |= BlackKingSide
		case 'q':
			cr |= BlackQueenSide
		case 'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H':
			f := File(c - 'A')
			side, right := chess960Side(board, White, f)
			rookFile[White][sideIndex(side)] = f
			cr |= right
		case 'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h':
			f := File(c - 'a')
			side, right := chess960Side(board, Black, f)
			rookFile[Black][sideIndex(side)] = f
			cr |= right
		default:
			return 0, rookFile, fmt.Errorf("%w: invalid castling field %q", ErrInvalidFEN, field)
		}
	}
	return cr, rookFile, nil
}

func sideIndex(side CastlingSide) int {
	if side == QueenSide {
		return 1
	}
	return 0
}

// chess960Side infers king-side vs queen-side for an X-FEN rook file by
// comparing it against the king's file on that color's back rank.
func chess960Side(board *Board, c Color, rookFile File) (CastlingSide, CastlingRights) {
	kingSq := board.kingSquare(c)
	side := KingSide
	if kingSq != NoSquare && rookFile < kingSq.File() {
		side = QueenSide
	}
	return side, castlingRight(c, side)
}

// FEN returns the position's Forsyth-Edwards Notation.
func (pos *Position) FEN() string {
	b := pos.board.String()
	t := pos.turn.String()
	c := pos.castleRights.String()
	sq := "-"
	if pos.enPassantSquare != NoSquare {
		sq = pos.enPassantSquare.String()
	}
	return fmt.Sprintf("%s %s %s %s %d %d", b, t, c, sq, pos.halfMoveClock, pos.moveCount)
}

package chess

import "fmt"

// Square is a board square, 0 = a1 ... 63 = h8, rank-major file-minor.
type Square int8

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	// NoSquare is the sentinel for "no square" (e.g. no en-passant target).
	NoSquare Square = -1
)

const numOfSquaresInBoard = 64
const numOfSquaresInRow = 8

// NewSquare builds a Square from a file and rank.
func NewSquare(f File, r Rank) Square {
	return Square(int(r)*8 + int(f))
}

// File returns the file (0=a .. 7=h) of the square.
func (sq Square) File() File {
	return File(int(sq) % 8)
}

// Rank returns the rank (0=1st .. 7=8th) of the square.
func (sq Square) Rank() Rank {
	return Rank(int(sq) / 8)
}

// String returns the algebraic square name, e.g. "e4".
func (sq Square) String() string {
	if sq == NoSquare {
		return "-"
	}
	return fmt.Sprintf("%s%s", sq.File(), sq.Rank())
}

var strToSquareMap = func() map[string]Square {
	m := make(map[string]Square, 64)
	for sq := Square(0); sq < 64; sq++ {
		m[sq.String()] = sq
	}
	return m
}()

// File is a board file, 0=a .. 7=h.
type File int8

func (f File) String() string {
	if f < 0 || f > 7 {
		return "?"
	}
	return string(rune('a' + int(f)))
}

// Rank is a board rank, 0=1st .. 7=8th.
type Rank int8

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

func (r Rank) String() string {
	if r < 0 || r > 7 {
		return "?"
	}
	return string(rune('1' + int(r)))
}

// Direction is a signed square offset used to shift bitboards.
type Direction int8

const (
	North     Direction = 8
	South     Direction = -8
	East      Direction = 1
	West      Direction = -1
	NorthEast Direction = 9
	NorthWest Direction = 7
	SouthEast Direction = -7
	SouthWest Direction = -9
)

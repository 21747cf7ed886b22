package chess

import (
	"bytes"
	"crypto/md5"
	"encoding/binary"
	"errors"
)

// Position represents the state of the game without regard to its
// outcome. A Position is immutable: Do returns a new Position rather
// than mutating the receiver, the same way the teacher's Update did,
// so a caller can hold onto any ancestor position as a free undo stack
// without a separate arena or generation counter.
type Position struct {
	board           *Board
	turn            Color
	castleRights    CastlingRights
	rookFile        [2][2]File // [Color][CastlingSide], Chess960 rook home files
	enPassantSquare Square
	halfMoveClock   int
	moveCount       int
	inCheck         bool
	validMoves      []Move
}

// defaultRookFiles is the standard-chess rook home files (queen-side A,
// king-side H) shared by both colors.
var defaultRookFiles = [2][2]File{
	{File(7), File(0)}, // White: KingSide->H, QueenSide->A
	{File(7), File(0)}, // Black: KingSide->H, QueenSide->A
}

// NewPosition returns a position with standard (non-Chess960) rook homes.
func NewPosition(board *Board, turn Color, castle CastlingRights, epSquare Square) *Position {
	return NewPositionAtTime(board, turn, castle, epSquare, 0, 1)
}

func NewPositionAtTime(board *Board, turn Color, castle CastlingRights, epSquare Square, halfmove, moveCount int) *Position {
	return &Position{
		board:           board,
		turn:            turn,
		castleRights:    castle,
		rookFile:        defaultRookFiles,
		enPassantSquare: epSquare,
		halfMoveClock:   halfmove,
		moveCount:       moveCount,
		inCheck:         isInCheck(board, turn),
	}
}

// StartingPosition returns the standard chess starting position.
func StartingPosition() *Position {
	pos, err := decodeFEN(StartPositionFEN)
	if err != nil {
		panic("chess: built-in start FEN failed to parse: " + err.Error())
	}
	return pos
}

// rookStartSquare returns the home square of c's rook on side, honoring
// Chess960 rook files recorded from an X-FEN castling field.
func (pos *Position) rookStartSquare(c Color, side CastlingSide) Square {
	idx := 0
	if side == QueenSide {
		idx = 1
	}
	f := pos.rookFile[c][idx]
	if f < 0 || f > 7 {
		return NoSquare
	}
	return NewSquare(f, c.BackRank())
}

// Do returns a new position resulting from playing m, which must be one
// of the moves returned by ValidMoves for this position; it is not
// re-validated.
func (pos *Position) Do(m Move) *Position {
	moveCount := pos.moveCount
	if pos.turn == Black {
		moveCount++
	}
	movingType := m.Moving()
	isPawnOrCapture := movingType == Pawn || m.IsCapture()

	newBoard := pos.board.clone()
	newBoard.do(pos.turn, m)

	ncr := pos.updateCastleRights(m)
	halfMove := pos.halfMoveClock
	if isPawnOrCapture {
		halfMove = 0
	} else {
		halfMove++
	}

	next := &Position{
		board:           newBoard,
		turn:            pos.turn.Other(),
		castleRights:    ncr,
		rookFile:        pos.rookFile,
		enPassantSquare: pos.updateEnPassantSquare(m),
		halfMoveClock:   halfMove,
		moveCount:       moveCount,
	}
	next.inCheck = isInCheck(newBoard, next.turn)
	return next
}

// ValidMoves returns the legal moves for the position, newly allocated
// so the caller may freely mutate the returned slice.
func (pos *Position) ValidMoves() []Move {
	pos.ensureValidMoves()
	return append([]Move(nil), pos.validMoves...)
}

func (pos *Position) ensureValidMoves() {
	if pos.validMoves == nil {
		pos.validMoves = generateMoves(pos)
	}
}

// Status returns the position's status: Checkmate, Stalemate, or NoMethod.
func (pos *Position) Status() Method {
	pos.ensureValidMoves()
	hasMove := len(pos.validMoves) > 0
	switch {
	case !pos.inCheck && !hasMove:
		return Stalemate
	case pos.inCheck && !hasMove:
		return Checkmate
	}
	return NoMethod
}

// Board returns the position's board.
func (pos *Position) Board() *Board {
	return pos.board
}

// Turn returns the color to move next.
func (pos *Position) Turn() Color {
	return pos.turn
}

// InCheck reports whether the side to move is in check.
func (pos *Position) InCheck() bool {
	return pos.inCheck
}

func (pos *Position) MoveCount() int {
	return pos.moveCount
}

func (pos *Position) HalfMoveClock() int {
	return pos.halfMoveClock
}

func (pos *Position) EnPassantSquare() Square {
	return pos.enPassantSquare
}

// CastleRights returns the castling rights of the position.
func (pos *Position) CastleRights() CastlingRights {
	return pos.castleRights
}

// String implements the fmt.Stringer interface and returns a FEN string.
func (pos *Position) String() string {
	return pos.FEN()
}

// Hash returns a unique hash of the position.
func (pos *Position) Hash() [16]byte {
	b, _ := pos.MarshalBinary()
	return md5.Sum(b)
}

// MarshalText implements the encoding.TextMarshaler interface, encoding
// the position's FEN.
func (pos *Position) MarshalText() (text []byte, err error) {
	return []byte(pos.String()), nil
}

// UnmarshalText implements the encoding.TextUnarshaler interface,
// assuming the data is in the FEN format.
func (pos *Position) UnmarshalText(text []byte) error {
	cp, err := decodeFEN(string(text))
	if err != nil {
		return err
	}
	*pos = *cp
	return nil
}

const (
	bitsCastleWhiteKing uint8 = 1 << iota
	bitsCastleWhiteQueen
	bitsCastleBlackKing
	bitsCastleBlackQueen
	bitsTurn
	bitsHasEnPassant
)

// MarshalBinary implements the encoding.BinaryMarshaler interface.
func (pos *Position) MarshalBinary() (data []byte, err error) {
	boardBytes, err := pos.board.MarshalBinary()
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(boardBytes)
	if err := binary.Write(buf, binary.BigEndian, uint8(pos.halfMoveClock)); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, binary.BigEndian, uint16(pos.moveCount)); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, binary.BigEndian, pos.enPassantSquare); err != nil {
		return nil, err
	}
	var b uint8
	if pos.castleRights.Has(WhiteKingSide) {
		b |= bitsCastleWhiteKing
	}
	if pos.castleRights.Has(WhiteQueenSide) {
		b |= bitsCastleWhiteQueen
	}
	if pos.castleRights.Has(BlackKingSide) {
		b |= bitsCastleBlackKing
	}
	if pos.castleRights.Has(BlackQueenSide) {
		b |= bitsCastleBlackQueen
	}
	if pos.turn == Black {
		b |= bitsTurn
	}
	if pos.enPassantSquare != NoSquare {
		b |= bitsHasEnPassant
	}
	if err := binary.Write(buf, binary.BigEndian, b); err != nil {
		return nil, err
	}
	return buf.Bytes(), err
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
func (pos *Position) UnmarshalBinary(data []byte) error {
	if len(data) != 101 {
		return errors.New("chess: position binary data should consist of 101 bytes")
	}
	board := &Board{}
	if err := board.UnmarshalBinary(data[:96]); err != nil {
		return err
	}
	pos.board = board
	buf := bytes.NewBuffer(data[96:])
	var halfMove uint8
	if err := binary.Read(buf, binary.BigEndian, &halfMove); err != nil {
		return err
	}
	pos.halfMoveClock = int(halfMove)
	var moveCount uint16
	if err := binary.Read(buf, binary.BigEndian, &moveCount); err != nil {
		return err
	}
	pos.moveCount = int(moveCount)
	if err := binary.Read(buf, binary.BigEndian, &pos.enPassantSquare); err != nil {
		return err
	}
	var b uint8
	if err := binary.Read(buf, binary.BigEndian, &b); err != nil {
		return err
	}
	pos.castleRights = NoCastlingRights
	pos.turn = White
	if b&bitsCastleWhiteKing != 0 {
		pos.castleRights |= WhiteKingSide
	}
	if b&bitsCastleWhiteQueen != 0 {
		pos.castleRights |= WhiteQueenSide
	}
	if b&bitsCastleBlackKing != 0 {
		pos.castleRights |= BlackKingSide
	}
	if b&bitsCastleBlackQueen != 0 {
		pos.castleRights |= BlackQueenSide
	}
	if b&bitsTurn != 0 {
		pos.turn = Black
	}
	if b&bitsHasEnPassant == 0 {
		pos.enPassantSquare = NoSquare
	}
	pos.rookFile = defaultRookFiles
	pos.validMoves = nil
	pos.inCheck = isInCheck(pos.board, pos.turn)
	return nil
}

func (pos *Position) copy() *Position {
	return &Position{
		board:           pos.board.clone(),
		turn:            pos.turn,
		castleRights:    pos.castleRights,
		rookFile:        pos.rookFile,
		enPassantSquare: pos.enPassantSquare,
		halfMoveClock:   pos.halfMoveClock,
		moveCount:       pos.moveCount,
		inCheck:         pos.inCheck,
	}
}

func (pos *Position) updateCastleRights(m Move) CastlingRights {
	cr := pos.castleRights
	turn := pos.turn
	from, to := m.From(), m.To()

	if m.Moving() == King {
		if turn == White {
			cr &^= WhiteKingSide | WhiteQueenSide
		} else {
			cr &^= BlackKingSide | BlackQueenSide
		}
	}
	revokeIfRookMoved := func(sq Square) {
		if sq == pos.rookStartSquare(White, KingSide) {
			cr &^= WhiteKingSide
		}
		if sq == pos.rookStartSquare(White, QueenSide) {
			cr &^= WhiteQueenSide
		}
		if sq == pos.rookStartSquare(Black, KingSide) {
			cr &^= BlackKingSide
		}
		if sq == pos.rookStartSquare(Black, QueenSide) {
			cr &^= BlackQueenSide
		}
	}
	revokeIfRookMoved(from)
	if m.IsCastling() {
		// to already encodes the rook-from square for castling; handled above.
		return cr
	}
	revokeIfRookMoved(to)
	return cr
}

func (pos *Position) updateEnPassantSquare(m Move) Square {
	if !m.IsDoublePush() {
		return NoSquare
	}
	if pos.turn == White {
		return Square(m.To() - 8)
	}
	return Square(m.To() + 8)
}

func (pos *Position) samePosition(pos2 *Position) bool {
	return pos.board.Eq(pos2.board) &&
		pos.turn == pos2.turn &&
		pos.castleRights == pos2.castleRights &&
		pos.enPassantSquare == pos2.enPassantSquare
}

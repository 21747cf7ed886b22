package chess

import "strings"

// MoveType is a bit-flag set describing what kind of move a Move encodes,
// per spec.md §4.D. Flags are independent: a promoting capture sets both
// Capture and Promotion.
type MoveType uint8

const (
	Quiet MoveType = 1 << iota
	Capture
	EnPassant
	DoublePush
	Promotion
	Castle
)

// Move is a compact, value-typed encoding of a single chess move: origin
// and destination square, the move-type flags, and the moving/captured/
// promoted piece types. It packs into a uint32 so Moves are free to copy
// and compare with ==.
//
// Layout (low bit first): from[6] to[6] type[6] moving[3] captured[3] promoted[3].
// The three piece-type fields use a private 3-bit encoding (see packPT/
// unpackPT) since a Move never needs to distinguish a piece's color - the
// mover's color is always the position's side to move, and a captured
// piece always belongs to the other side.
//
// The castle encoding is Chess960-compatible: Castle moves store the
// king's origin as From and the *rook's* origin square as To (see
// spec.md §4.D and §9); Position.Do and the notation renderer translate
// that to the standard king-destination square.
type Move uint32

const (
	moveFromShift     = 0
	moveToShift       = 6
	moveTypeShift     = 12
	moveMovingShift   = 18
	moveCapturedShift = 21
	movePromotedShift = 24

	moveSquareMask = 0x3F
	moveTypeMask   = 0x3F
	movePieceMask  = 0x7

	noPT = 0x7 // packed sentinel for NoPieceType
)

// NullMove is the distinguished zero value, returned only by explicit
// null-move paths (e.g. a failed decode). IsNull is true only for it.
const NullMove Move = 0

func packPT(t PieceType) uint32 {
	if t == NoPieceType {
		return noPT
	}
	return uint32(t)
}

func unpackPT(v uint32) PieceType {
	if v == noPT {
		return NoPieceType
	}
	return PieceType(v)
}

// newMove builds a Move from its logical fields.
func newMove(from, to Square, typ MoveType, moving, captured, promoted PieceType) Move {
	return Move(uint32(from)<<moveFromShift |
		uint32(to)<<moveToShift |
		uint32(typ)<<moveTypeShift |
		packPT(moving)<<moveMovingShift |
		packPT(captured)<<moveCapturedShift |
		packPT(promoted)<<movePromotedShift)
}

// NewQuietMove encodes a non-capturing, non-special move.
func NewQuietMove(piece PieceType, from, to Square) Move {
	return newMove(from, to, Quiet, piece, NoPieceType, NoPieceType)
}

// NewCaptureMove encodes a capture (optionally also a promotion, pass
// promoted=NoPieceType when it is not).
func NewCaptureMove(piece, captured PieceType, from, to Square, promoted PieceType) Move {
	typ := Capture
	if promoted != NoPieceType {
		typ |= Promotion
	}
	return newMove(from, to, typ, piece, captured, promoted)
}

// NewEnPassantMove encodes an en-passant capture.
func NewEnPassantMove(from, to Square) Move {
	return newMove(from, to, Capture|EnPassant, Pawn, Pawn, NoPieceType)
}

// NewDoublePushMove encodes a pawn double push.
func NewDoublePushMove(from, to Square) Move {
	return newMove(from, to, Quiet|DoublePush, Pawn, NoPieceType, NoPieceType)
}

// NewPromotionMove encodes a non-capturing promotion.
func NewPromotionMove(from, to Square, promoted PieceType) Move {
	return newMove(from, to, Quiet|Promotion, Pawn, NoPieceType, promoted)
}

// NewCastleMove encodes castling with the Chess960-compatible
// king-from/rook-from convention (spec.md §4.D, §9).
func NewCastleMove(kingFrom, rookFrom Square) Move {
	return newMove(kingFrom, rookFrom, Castle, King, NoPieceType, NoPieceType)
}

func (m Move) field(shift int, mask uint32) uint32 {
	return (uint32(m) >> uint(shift)) & mask
}

// From returns the move's origin square (the king's origin for castling).
func (m Move) From() Square { return Square(m.field(moveFromShift, moveSquareMask)) }

// To returns the move's destination square. For castling this is the
// *rook's* origin square, per spec.md §4.D; use CastleKingDestination for
// the square the king actually lands on.
func (m Move) To() Square { return Square(m.field(moveToShift, moveSquareMask)) }

// Type returns the move-type flag set.
func (m Move) Type() MoveType { return MoveType(m.field(moveTypeShift, moveTypeMask)) }

// Moving returns the type of the piece making the move.
func (m Move) Moving() PieceType { return unpackPT(m.field(moveMovingShift, movePieceMask)) }

// Captured returns the type of the captured piece, or NoPieceType.
func (m Move) Captured() PieceType { return unpackPT(m.field(moveCapturedShift, movePieceMask)) }

// Promoted returns the type of the promoted-to piece, or NoPieceType.
func (m Move) Promoted() PieceType { return unpackPT(m.field(movePromotedShift, movePieceMask)) }

// Has reports whether every flag in want is set on the move's type.
func (m Move) Has(want MoveType) bool { return m.Type()&want == want }

// IsNull reports whether m is the distinguished null move.
func (m Move) IsNull() bool { return m == NullMove }

// IsCapture reports whether the move captures a piece (including en passant).
func (m Move) IsCapture() bool { return m.Has(Capture) }

// IsEnPassant reports whether the move is an en-passant capture.
func (m Move) IsEnPassant() bool { return m.Has(EnPassant) }

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool { return m.Has(Promotion) }

// IsCastling reports whether the move is a castle.
func (m Move) IsCastling() bool { return m.Has(Castle) }

// IsDoublePush reports whether the move is a pawn double push.
func (m Move) IsDoublePush() bool { return m.Has(DoublePush) }

// CastleSide reports which side a castling move castles toward, by
// comparing the rook-from square (stored in To) against the king-from
// square (stored in From).
func (m Move) CastleSide() CastlingSide {
	if m.To() > m.From() {
		return KingSide
	}
	return QueenSide
}

// CastleKingDestination returns the standard king-destination square for a
// castling move (g-file king-side, c-file queen-side), mirrored by the
// king's starting rank - the same square in both standard chess and
// Chess960, per spec.md §4.E.
func (m Move) CastleKingDestination() Square {
	rank := m.From().Rank()
	if m.CastleSide() == KingSide {
		return NewSquare(File(6), rank)
	}
	return NewSquare(File(2), rank)
}

// CastleRookDestination returns the standard rook-destination square for a
// castling move (f-file king-side, d-file queen-side).
func (m Move) CastleRookDestination() Square {
	rank := m.From().Rank()
	if m.CastleSide() == KingSide {
		return NewSquare(File(5), rank)
	}
	return NewSquare(File(3), rank)
}

// String renders the move as a bare UCI move string, useful for debugging
// and logging; it is not notation-aware (no disambiguation, no check
// suffix) - see Position.Notate for that.
func (m Move) String() string {
	if m.IsNull() {
		return "(none)"
	}
	var sb strings.Builder
	if m.IsCastling() {
		sb.WriteString(m.From().String())
		sb.WriteString(m.CastleKingDestination().String())
		return sb.String()
	}
	sb.WriteString(m.From().String())
	sb.WriteString(m.To().String())
	if p := m.Promoted(); p != NoPieceType {
		sb.WriteString(p.String())
	}
	return sb.String()
}

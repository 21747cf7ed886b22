package chess

import "errors"

// Sentinel errors returned by the package's parse and validation paths.
// Callers should compare with errors.Is, since most are wrapped with
// additional context via fmt.Errorf("%w", ...).
var (
	// ErrInvalidFEN is returned when a FEN string doesn't describe a
	// well-formed position.
	ErrInvalidFEN = errors.New("chess: invalid FEN")
	// ErrInvalidMoveNotation is returned by Position.DecodeMove when a move
	// string matches no legal move in any of the supported notations,
	// whether the text is malformed or names an illegal move.
	ErrInvalidMoveNotation = errors.New("chess: invalid move notation")
	// ErrInvalidMove is returned by Game.Move when the given Move isn't
	// among the legal moves of the game's current position.
	ErrInvalidMove = errors.New("chess: illegal move")
)

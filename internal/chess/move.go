package chess

// Move records a committed half-move with enough detail for a renderer to
// produce move text.
type Move struct {
	// Class of move (quiet, capture, en passant, castle).
	Class MoveClass

	// The colour that made the move.
	Mover Colour

	// The kind of piece that moved.
	Kind Kind

	// Source and destination squares.
	From Square
	To   Square

	// The piece captured (kind None if no capture) and the square it stood on.
	// For en passant this is not the destination.
	Captured   Piece
	CapturedOn Square

	// Rook relocation for castling moves.
	RookFrom Square
	RookTo   Square
}

// IsCapture returns true if this move removed an opposing piece.
func (m *Move) IsCapture() bool {
	return m.Class == CaptureMove || m.Class == EnPassantCapture
}

// IsCastle returns true if this move is a castling move.
func (m *Move) IsCastle() bool {
	switch m.Class {
	case KingsideCastle, QueensideCastle:
		return true
	default:
		return false
	}
}

// ResetsClock reports whether the move resets the half-move clock: captures
// and castling do, pawn pushes do not.
func (m *Move) ResetsClock() bool {
	return m.IsCapture() || m.IsCastle()
}

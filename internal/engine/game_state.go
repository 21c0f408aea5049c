package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsStalemate returns true if colour is not in check and has no legal move.
func IsStalemate(board *chess.Board, colour chess.Colour) bool {
	return Rules{}.IsStalemate(board, colour)
}

// IsMated returns true if colour is in check and has no legal move. Unlike
// IsCheckmate, blocking the check or taking the checker counts as a way out.
func IsMated(board *chess.Board, colour chess.Colour) bool {
	return Rules{}.IsMated(board, colour)
}

// IsStalemate is IsStalemate with the legal moves counted under r.
func (r Rules) IsStalemate(board *chess.Board, colour chess.Colour) bool {
	return !IsInCheck(board, colour) && !r.HasLegalMoves(board, colour)
}

// IsMated is IsMated with the legal moves counted under r.
func (r Rules) IsMated(board *chess.Board, colour chess.Colour) bool {
	return IsInCheck(board, colour) && !r.HasLegalMoves(board, colour)
}

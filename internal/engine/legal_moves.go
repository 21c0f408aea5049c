package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// LegalDestinations returns the pseudo-legal destinations of the piece on from
// that do not leave its own king attacked, under the default rules.
func LegalDestinations(board *chess.Board, from chess.Square) chess.SquareSet {
	return Rules{}.LegalDestinations(board, from)
}

// HasLegalMoves returns true if the given colour has at least one legal move
// under the default rules.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	return Rules{}.HasLegalMoves(board, colour)
}

// LegalDestinations is LegalDestinations with castles the executor would
// reject under r removed.
func (r Rules) LegalDestinations(board *chess.Board, from chess.Square) chess.SquareSet {
	piece := board.At(from)
	if piece.IsNone() {
		return 0
	}

	var legal chess.SquareSet
	for _, capture := range []bool{false, true} {
		for _, to := range PseudoLegalMoves(board, from, !capture, capture).Squares() {
			if !capture && r.CheckCastlingTransit && isCastlingMove(piece, from, to) &&
				castlingPathAttacked(board, from, to, piece.Colour) {
				continue
			}
			if tryMove(board, planMove(board, from, to, capture)) {
				legal = legal.Add(to)
			}
		}
	}
	return legal
}

// HasLegalMoves returns true if colour has at least one legal move under r.
func (r Rules) HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if piece.IsNone() || piece.Colour != colour {
				continue
			}
			if !r.LegalDestinations(board, chess.Sq(row, col)).Empty() {
				return true
			}
		}
	}
	return false
}

// AllLegalMovesByColour unions LegalDestinations over every piece of the colour.
func AllLegalMovesByColour(board *chess.Board, colour chess.Colour) chess.SquareSet {
	var moves chess.SquareSet
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if piece.IsNone() || piece.Colour != colour {
				continue
			}
			moves = moves.Union(LegalDestinations(board, chess.Sq(row, col)))
		}
	}
	return moves
}

// tryMove makes a move on a copied board and checks if it leaves the king in check.
func tryMove(board *chess.Board, move *chess.Move) bool {
	testBoard := board.Copy()
	commit(testBoard, move)
	return !IsInCheck(testBoard, move.Mover)
}

// Package engine provides chess move generation, validation and board manipulation.
package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

var (
	knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// PseudoLegalMoves returns the squares the piece on from could reach under its
// movement rules, without regard to the safety of its own king.
// quiet selects moves onto empty squares, capture selects moves onto opposing
// pieces (and the en passant landing square).
func PseudoLegalMoves(board *chess.Board, from chess.Square, quiet, capture bool) chess.SquareSet {
	piece := board.At(from)

	switch piece.Kind {
	case chess.Pawn:
		return pawnMoves(board, from, piece, quiet, capture)
	case chess.Rook:
		return slideMoves(board, from, piece, straightDirs, quiet, capture)
	case chess.Knight:
		return stepMoves(board, from, piece, knightOffsets, quiet, capture)
	case chess.Bishop:
		return slideMoves(board, from, piece, diagonalDirs, quiet, capture)
	case chess.Queen:
		return slideMoves(board, from, piece, straightDirs, quiet, capture).
			Union(slideMoves(board, from, piece, diagonalDirs, quiet, capture))
	case chess.King:
		moves := stepMoves(board, from, piece, kingOffsets, quiet, capture)
		if quiet {
			moves = moves.Union(castlingMoves(board, from, piece))
		}
		return moves
	}

	return 0
}

// stepMoves handles the fixed-offset jumpers (knight and king).
func stepMoves(board *chess.Board, from chess.Square, piece chess.Piece, offsets [][2]int, quiet, capture bool) chess.SquareSet {
	var moves chess.SquareSet
	for _, offset := range offsets {
		to := from.Offset(offset[0], offset[1])
		if !to.OnBoard() {
			continue
		}
		target := board.At(to)
		if (quiet && target.IsNone()) || (capture && piece.IsOppositeColour(target)) {
			moves = moves.Add(to)
		}
	}
	return moves
}

// AllMovesByColour unions the pseudo-legal destinations (quiet and capture) of
// every piece of the given colour.
func AllMovesByColour(board *chess.Board, colour chess.Colour) chess.SquareSet {
	var moves chess.SquareSet
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if piece.IsNone() || piece.Colour != colour {
				continue
			}
			moves = moves.Union(PseudoLegalMoves(board, chess.Sq(row, col), true, true))
		}
	}
	return moves
}

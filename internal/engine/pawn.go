package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// pawnMoves generates pushes (quiet) and diagonal captures including en passant.
// A pawn on the last row has no forward moves: promotion is not supported.
func pawnMoves(board *chess.Board, from chess.Square, pawn chess.Piece, quiet, capture bool) chess.SquareSet {
	var moves chess.SquareSet
	dir := chess.ColourOffset(pawn.Colour)

	if quiet {
		one := from.Offset(dir, 0)
		if one.OnBoard() && board.At(one).IsNone() {
			moves = moves.Add(one)
			two := from.Offset(2*dir, 0)
			if from.Row == chess.PawnRow(pawn.Colour) && board.At(two).IsNone() {
				moves = moves.Add(two)
			}
		}
	}

	if capture {
		for dc := -1; dc <= 1; dc += 2 {
			to := from.Offset(dir, dc)
			if !to.OnBoard() {
				continue
			}
			if pawn.IsOppositeColour(board.At(to)) || isEnPassantTarget(board, from, to, pawn) {
				moves = moves.Add(to)
			}
		}
	}

	return moves
}

// isEnPassantTarget reports whether a pawn on from may capture en passant by
// landing on to: the square beside it holds an opposing pawn that has just
// advanced two squares, and the landing square is empty.
func isEnPassantTarget(board *chess.Board, from, to chess.Square, pawn chess.Piece) bool {
	if !board.At(to).IsNone() {
		return false
	}
	passed := board.At(passedPawnSquare(from, to))
	return passed.Kind == chess.Pawn && passed.EnPassantEligible && pawn.IsOppositeColour(passed)
}

// passedPawnSquare returns the square of the pawn removed by an en passant
// capture from -> to: the destination column on the mover's row.
func passedPawnSquare(from, to chess.Square) chess.Square {
	return chess.Sq(from.Row, to.Col)
}

// clearEnPassant drops en passant eligibility from every pawn of the colour.
func clearEnPassant(board *chess.Board, colour chess.Colour) {
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			p := board.Squares[row][col]
			if p.Kind == chess.Pawn && p.Colour == colour && p.EnPassantEligible {
				p.EnPassantEligible = false
				board.Set(chess.Sq(row, col), p)
			}
		}
	}
}

package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// slideMoves walks each direction until it leaves the board or meets a piece.
// An opposing blocker is a capture target; a friendly one is not.
func slideMoves(board *chess.Board, from chess.Square, piece chess.Piece, dirs [][2]int, quiet, capture bool) chess.SquareSet {
	var moves chess.SquareSet
	for _, dir := range dirs {
		to := from.Offset(dir[0], dir[1])
		for to.OnBoard() {
			target := board.At(to)
			if !target.IsNone() {
				if capture && piece.IsOppositeColour(target) {
					moves = moves.Add(to)
				}
				break // Blocked
			}
			if quiet {
				moves = moves.Add(to)
			}
			to = to.Offset(dir[0], dir[1])
		}
	}
	return moves
}

// isPathClear reports whether every square strictly between from and to on the
// same row is empty.
func isPathClear(board *chess.Board, from, to chess.Square) bool {
	if from.Row != to.Row {
		return false
	}
	step := sign(to.Col - from.Col)
	for col := from.Col + step; col != to.Col; col += step {
		if !board.At(chess.Sq(from.Row, col)).IsNone() {
			return false
		}
	}
	return true
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

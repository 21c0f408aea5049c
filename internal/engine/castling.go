package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// castlingMoves returns the king's castling destinations: two columns towards
// a same-colour corner rook, when neither piece has moved and every square
// between them is empty. Attacks on the king's path are not considered here.
func castlingMoves(board *chess.Board, from chess.Square, king chess.Piece) chess.SquareSet {
	var moves chess.SquareSet
	if king.HasMoved || from != kingHome(king.Colour) {
		return moves
	}

	for _, kingside := range []bool{true, false} {
		rookFrom := castlingRookSquare(from, kingside)
		rook := board.At(rookFrom)
		if rook.Kind != chess.Rook || !rook.IsSameColour(king) || rook.HasMoved {
			continue
		}
		if !isPathClear(board, from, rookFrom) {
			continue
		}
		to := from.Offset(0, 2)
		if !kingside {
			to = from.Offset(0, -2)
		}
		moves = moves.Add(to)
	}
	return moves
}

// kingHome returns the starting square of the colour's king.
func kingHome(colour chess.Colour) chess.Square {
	return chess.Sq(chess.HomeRow(colour), 4)
}

// castlingRookSquare returns the corner square holding the castling rook.
func castlingRookSquare(kingFrom chess.Square, kingside bool) chess.Square {
	if kingside {
		return chess.Sq(kingFrom.Row, chess.BoardSize-1)
	}
	return chess.Sq(kingFrom.Row, 0)
}

// isCastlingMove reports whether a king move from -> to is a castle.
func isCastlingMove(piece chess.Piece, from, to chess.Square) bool {
	return piece.Kind == chess.King && from.Row == to.Row && abs(to.Col-from.Col) == 2
}

// castlingRookMove returns where the rook starts and lands for a castle whose
// king travels from -> to. The rook ends adjacent to the king, on the side it came from.
func castlingRookMove(kingFrom, kingTo chess.Square) (rookFrom, rookTo chess.Square) {
	kingside := kingTo.Col > kingFrom.Col
	rookFrom = castlingRookSquare(kingFrom, kingside)
	if kingside {
		rookTo = chess.Sq(kingTo.Row, kingTo.Col-1)
	} else {
		rookTo = chess.Sq(kingTo.Row, kingTo.Col+1)
	}
	return rookFrom, rookTo
}

// castlingPathAttacked reports whether the king's start, transit or destination
// square is attacked by the opponent.
func castlingPathAttacked(board *chess.Board, kingFrom, kingTo chess.Square, colour chess.Colour) bool {
	step := sign(kingTo.Col - kingFrom.Col)
	for col := kingFrom.Col; ; col += step {
		if isSquareAttacked(board, chess.Sq(kingFrom.Row, col), colour.Opposite()) {
			return true
		}
		if col == kingTo.Col {
			return false
		}
	}
}

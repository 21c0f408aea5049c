package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// DrawReason names the condition that drew a game. The empty value means no draw.
type DrawReason string

const (
	NoDraw               DrawReason = ""
	FiftyMoveRule        DrawReason = "50-move rule"
	ThreefoldRepetition  DrawReason = "threefold repetition"
	Stalemate            DrawReason = "stalemate"
	InsufficientMaterial DrawReason = "insufficient material"
)

// Draw thresholds.
const (
	// FiftyMoveLimit is the half-move clock value that draws the game.
	FiftyMoveLimit = 50

	// RepetitionLimit is the number of occurrences of a position that draws the game.
	RepetitionLimit = 3
)

// DrawState is the input to draw detection after a half-move.
type DrawState struct {
	// The half-move clock after the move.
	HalfMoveClock int

	// Canonical position keys in play order, current position last.
	History []string

	// The side to move next.
	ToMove chess.Colour
}

// DetectDraw evaluates the draw conditions in fixed priority order and returns
// the first that holds: fifty-move rule, threefold repetition, stalemate,
// insufficient material.
func DetectDraw(board *chess.Board, state DrawState, rules Rules) DrawReason {
	if state.HalfMoveClock >= FiftyMoveLimit {
		return FiftyMoveRule
	}

	if n := len(state.History); n > 0 && countOccurrences(state.History, state.History[n-1]) >= RepetitionLimit {
		return ThreefoldRepetition
	}

	if rules.IsStalemate(board, state.ToMove) {
		return Stalemate
	}

	if HasBareKings(board) {
		return InsufficientMaterial
	}
	if rules.ExtendedInsufficientMaterial && HasInsufficientMaterial(board) {
		return InsufficientMaterial
	}

	return NoDraw
}

// countOccurrences counts how often key appears in history.
func countOccurrences(history []string, key string) int {
	count := 0
	for _, h := range history {
		if h == key {
			count++
		}
	}
	return count
}

// HasBareKings returns true if exactly one piece per side remains.
func HasBareKings(board *chess.Board) bool {
	return board.Count(chess.White) == 1 && board.Count(chess.Black) == 1
}

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(board *chess.Board) bool {
	var whitePieces, blackPieces []chess.Kind
	var whiteBishopOnLight, blackBishopOnLight bool

	// Count pieces for each side
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]

			// Kings don't count for material
			if piece.IsNone() || piece.Kind == chess.King {
				continue
			}

			// Any pawn, rook, or queen means sufficient material
			if piece.Kind == chess.Pawn || piece.Kind == chess.Rook || piece.Kind == chess.Queen {
				return false
			}

			if piece.Colour == chess.White {
				whitePieces = append(whitePieces, piece.Kind)
				if piece.Kind == chess.Bishop {
					whiteBishopOnLight = isLightSquare(chess.Sq(row, col))
				}
			} else {
				blackPieces = append(blackPieces, piece.Kind)
				if piece.Kind == chess.Bishop {
					blackBishopOnLight = isLightSquare(chess.Sq(row, col))
				}
			}
		}
	}

	// K vs K
	if len(whitePieces) == 0 && len(blackPieces) == 0 {
		return true
	}

	// K+B vs K or K+N vs K
	if len(whitePieces) == 0 && len(blackPieces) == 1 {
		return blackPieces[0] == chess.Bishop || blackPieces[0] == chess.Knight
	}
	if len(blackPieces) == 0 && len(whitePieces) == 1 {
		return whitePieces[0] == chess.Bishop || whitePieces[0] == chess.Knight
	}

	// K+B vs K+B (same color bishops)
	if len(whitePieces) == 1 && len(blackPieces) == 1 &&
		whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop {
		return whiteBishopOnLight == blackBishopOnLight
	}

	return false
}

// isLightSquare returns true if the given square is a light square.
func isLightSquare(sq chess.Square) bool {
	return (sq.Row+sq.Col)%2 == 1
}

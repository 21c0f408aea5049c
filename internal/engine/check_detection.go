package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// attackKey identifies a cached attack map.
type attackKey struct {
	version uint64
	colour  chess.Colour
}

// AttackTracker computes and caches opponent attack maps for one board.
// The cache is keyed by (board version, colour) and must be invalidated after
// every successful mutation; the Executor does this.
type AttackTracker struct {
	cache map[attackKey]chess.SquareSet

	// computing guards against re-entrant computation for a colour. A nested
	// request for the same colour gets an empty map instead of recursing.
	computing [2]bool
}

// NewAttackTracker creates a tracker with an empty cache.
func NewAttackTracker() *AttackTracker {
	return &AttackTracker{cache: make(map[attackKey]chess.SquareSet)}
}

// Invalidate drops every cached attack map.
func (t *AttackTracker) Invalidate() {
	clear(t.cache)
}

// AttackMap returns the squares attacked by the opponents of colour: the union
// of the capture destinations of every opposing piece except the king.
func (t *AttackTracker) AttackMap(board *chess.Board, colour chess.Colour) chess.SquareSet {
	key := attackKey{version: board.Version(), colour: colour}
	if attacks, ok := t.cache[key]; ok {
		return attacks
	}
	if t.computing[colour] {
		return 0
	}

	t.computing[colour] = true
	attacks := opponentAttacks(board, colour)
	t.computing[colour] = false

	t.cache[key] = attacks
	return attacks
}

// opponentAttacks builds an attack map without touching any cache. Kings are
// skipped so king move generation never feeds back into itself.
func opponentAttacks(board *chess.Board, colour chess.Colour) chess.SquareSet {
	var attacks chess.SquareSet
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if piece.IsNone() || piece.Kind == chess.King || piece.Colour == colour {
				continue
			}
			attacks = attacks.Union(PseudoLegalMoves(board, chess.Sq(row, col), false, true))
		}
	}
	return attacks
}

// IsCheck returns true if the piece on sq stands on a square its opponents attack.
// It is meaningful for kings.
func (t *AttackTracker) IsCheck(board *chess.Board, sq chess.Square) bool {
	piece := board.At(sq)
	if piece.IsNone() {
		return false
	}
	return t.AttackMap(board, piece.Colour).Has(sq)
}

// InCheck returns true if the given colour's king is attacked.
func (t *AttackTracker) InCheck(board *chess.Board, colour chess.Colour) bool {
	king := board.KingSquare(colour)
	if !king.OnBoard() || board.At(king).Kind != chess.King {
		return false
	}
	return t.IsCheck(board, king)
}

// KingCannotEscape simulates every pseudo-legal destination of the king on sq
// and returns true when each one still leaves it in check. An empty candidate
// set also returns true. The board is not modified.
func KingCannotEscape(board *chess.Board, sq chess.Square) bool {
	king := board.At(sq)
	if king.Kind != chess.King {
		return false
	}

	for _, to := range PseudoLegalMoves(board, sq, true, true).Squares() {
		trial := board.Copy()
		trial.Vacate(sq)
		trial.Set(to, chess.NewPiece(chess.King, king.Colour))
		trial.SetKingSquare(king.Colour, to)
		if !opponentAttacks(trial, king.Colour).Has(to) {
			return false
		}
	}
	return true
}

// IsCheckmate runs KingCannotEscape for colour's king. It does not require
// the king to be in check, so a king with no free square also reads as mated;
// IsMated is the full-rules test.
func IsCheckmate(board *chess.Board, colour chess.Colour) bool {
	return KingCannotEscape(board, board.KingSquare(colour))
}

// IsInCheck returns true if the given colour's king is attacked by any piece,
// kings included. It uses no cache and is safe on scratch boards.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king := board.KingSquare(colour)
	if !king.OnBoard() || board.At(king).Kind != chess.King {
		var found bool
		king, found = findKing(board, colour)
		if !found {
			return false // No king found
		}
	}
	return isSquareAttacked(board, king, colour.Opposite())
}

// findKing finds the king of the given colour on the board.
func findKing(board *chess.Board, colour chess.Colour) (chess.Square, bool) {
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			if p := board.Squares[row][col]; p.Kind == chess.King && p.Colour == colour {
				return chess.Sq(row, col), true
			}
		}
	}
	return chess.Square{}, false
}

// isSquareAttacked returns true if the square is attacked by the given colour.
func isSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	// Check pawn attacks: a pawn attacks from one row behind, in its own direction.
	pawnRow := sq.Row - chess.ColourOffset(byColour)
	for dc := -1; dc <= 1; dc += 2 {
		p := board.At(chess.Sq(pawnRow, sq.Col+dc))
		if p.Kind == chess.Pawn && p.Colour == byColour {
			return true
		}
	}

	// Check knight and king attacks
	if attackedByStepper(board, sq, byColour, chess.Knight, knightOffsets) ||
		attackedByStepper(board, sq, byColour, chess.King, kingOffsets) {
		return true
	}

	// Check sliding pieces along diagonals and straight lines
	return attackedBySlider(board, sq, byColour, chess.Bishop, diagonalDirs) ||
		attackedBySlider(board, sq, byColour, chess.Rook, straightDirs)
}

func attackedByStepper(board *chess.Board, sq chess.Square, byColour chess.Colour, kind chess.Kind, offsets [][2]int) bool {
	for _, offset := range offsets {
		p := board.At(sq.Offset(offset[0], offset[1]))
		if p.Kind == kind && p.Colour == byColour {
			return true
		}
	}
	return false
}

// attackedBySlider looks along dirs for the first piece; kind or a queen of
// byColour attacks sq.
func attackedBySlider(board *chess.Board, sq chess.Square, byColour chess.Colour, kind chess.Kind, dirs [][2]int) bool {
	for _, dir := range dirs {
		to := sq.Offset(dir[0], dir[1])
		for to.OnBoard() {
			p := board.At(to)
			if !p.IsNone() {
				if p.Colour == byColour && (p.Kind == kind || p.Kind == chess.Queen) {
					return true
				}
				break // Blocked
			}
			to = to.Offset(dir[0], dir[1])
		}
	}
	return false
}

package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Rules holds the optional rule variations. The zero value reproduces the
// default behaviour.
type Rules struct {
	// CheckCastlingTransit rejects castling out of, through or into check.
	// Off by default: castling is only gated on unmoved pieces and empty squares.
	CheckCastlingTransit bool

	// ExtendedInsufficientMaterial also treats K+B vs K, K+N vs K and
	// same-colour bishops as dead positions, not just bare kings.
	ExtendedInsufficientMaterial bool
}

// Executor validates and commits moves on a board.
type Executor struct {
	rules   Rules
	attacks *AttackTracker
}

// NewExecutor creates an executor with its own attack tracker.
func NewExecutor(rules Rules) *Executor {
	return &Executor{
		rules:   rules,
		attacks: NewAttackTracker(),
	}
}

// Rules returns the rule variations in force.
func (e *Executor) Rules() Rules {
	return e.rules
}

// Attacks returns the executor's attack tracker.
func (e *Executor) Attacks() *AttackTracker {
	return e.attacks
}

// MovePiece moves the piece on from to the empty square to, castling when a
// king travels two columns. The board is untouched if an error is returned.
func (e *Executor) MovePiece(board *chess.Board, from, to chess.Square, mover chess.Colour) (*chess.Move, error) {
	return e.execute(board, from, to, mover, false)
}

// TakePiece captures with the piece on from, landing on to. En passant
// captures remove the passed pawn instead of the destination occupant.
// The board is untouched if an error is returned.
func (e *Executor) TakePiece(board *chess.Board, from, to chess.Square, mover chess.Colour) (*chess.Move, error) {
	return e.execute(board, from, to, mover, true)
}

func (e *Executor) execute(board *chess.Board, from, to chess.Square, mover chess.Colour, capture bool) (*chess.Move, error) {
	move, err := e.validate(board, from, to, mover, capture)
	if err != nil {
		return nil, err
	}
	commit(board, move)
	e.attacks.Invalidate()
	return move, nil
}

// validate checks every precondition and returns the planned move.
func (e *Executor) validate(board *chess.Board, from, to chess.Square, mover chess.Colour, capture bool) (*chess.Move, error) {
	if !from.OnBoard() || !to.OnBoard() {
		return nil, errors.Wrapf(errors.ErrIllegalDestination, "%v-%v", from, to)
	}

	piece := board.At(from)
	if piece.IsNone() {
		return nil, errors.Wrapf(errors.ErrEmptySquare, "no piece on %v", from)
	}
	if piece.Colour != mover {
		return nil, errors.Wrapf(errors.ErrWrongTurn, "%v %v on %v", piece.Colour, piece.Kind, from)
	}

	if capture {
		target := board.At(to)
		if piece.IsSameColour(target) {
			return nil, errors.Wrapf(errors.ErrInvalidCaptureTarget, "own %v on %v", target.Kind, to)
		}
		if target.IsNone() && !(piece.Kind == chess.Pawn && isEnPassantTarget(board, from, to, piece)) {
			return nil, errors.Wrapf(errors.ErrInvalidCaptureTarget, "nothing to take on %v", to)
		}
	}

	if !PseudoLegalMoves(board, from, !capture, capture).Has(to) {
		return nil, errors.Wrapf(errors.ErrIllegalDestination, "%v cannot reach %v from %v", piece.Kind, to, from)
	}

	if !capture && isCastlingMove(piece, from, to) && e.rules.CheckCastlingTransit &&
		castlingPathAttacked(board, from, to, piece.Colour) {
		return nil, errors.Wrapf(errors.ErrIllegalDestination, "castling %v-%v passes an attacked square", from, to)
	}

	return planMove(board, from, to, capture), nil
}

// planMove classifies the move from -> to without checking it.
func planMove(board *chess.Board, from, to chess.Square, capture bool) *chess.Move {
	piece := board.At(from)
	move := &chess.Move{
		Class: chess.QuietMove,
		Mover: piece.Colour,
		Kind:  piece.Kind,
		From:  from,
		To:    to,
	}

	switch {
	case capture && board.At(to).IsNone():
		move.Class = chess.EnPassantCapture
		move.CapturedOn = passedPawnSquare(from, to)
		move.Captured = board.At(move.CapturedOn)
	case capture:
		move.Class = chess.CaptureMove
		move.CapturedOn = to
		move.Captured = board.At(to)
	case isCastlingMove(piece, from, to):
		move.Class = chess.QueensideCastle
		if to.Col > from.Col {
			move.Class = chess.KingsideCastle
		}
		move.RookFrom, move.RookTo = castlingRookMove(from, to)
	}
	return move
}

// commit applies a planned move to the board.
func commit(board *chess.Board, move *chess.Move) {
	colour := move.Mover

	// Eligibility lasts for a single opponent ply.
	clearEnPassant(board, colour)

	if move.Class == chess.EnPassantCapture {
		board.Vacate(move.CapturedOn)
	}

	if move.IsCastle() {
		rook := board.At(move.RookFrom)
		rook.HasMoved = true
		board.Vacate(move.RookFrom)
		board.Set(move.RookTo, rook)
	}

	piece := board.At(move.From)
	piece.HasMoved = true
	piece.EnPassantEligible = piece.Kind == chess.Pawn && abs(move.To.Row-move.From.Row) == 2
	board.Vacate(move.From)
	board.Set(move.To, piece)

	// Update king position if king moved
	if piece.Kind == chess.King {
		board.SetKingSquare(colour, move.To)
	}

	if move.Captured.Kind == chess.King {
		board.SetKingSquare(colour.Opposite(), chess.Square{Row: -1, Col: -1})
		if colour == chess.White {
			board.WhiteWon = true
		} else {
			board.BlackWon = true
		}
	}
}

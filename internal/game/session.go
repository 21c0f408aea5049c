// Package game tracks a single game of chess: whose turn it is, the move
// counters, repetition history and how the game ended.
package game

import (
	"github.com/google/uuid"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/notation"
)

// Session owns the board and game state for one game. It is not safe for
// concurrent use; the caller passes it by pointer to whatever drives the game.
type Session struct {
	ID uuid.UUID

	cfg   *config.Config
	board *chess.Board
	exec  *engine.Executor

	initialFEN    string
	turn          chess.Colour
	moveNumber    int
	halfMoveClock int

	// Position keys in play order, one per half-move played.
	history []string

	drawReason engine.DrawReason
	moves      []chess.Move
}

// NewSession creates a session at the standard starting position.
// A nil cfg uses the defaults.
func NewSession(cfg *config.Config) *Session {
	s := newSession(cfg)
	s.Reset()
	return s
}

// NewSessionFromFEN creates a session from a FEN string.
func NewSessionFromFEN(cfg *config.Config, fen string) (*Session, error) {
	pos, err := engine.NewPositionFromFEN(fen)
	if err != nil {
		return nil, err
	}
	s := newSession(cfg)
	s.start(pos)
	return s, nil
}

func newSession(cfg *config.Config) *Session {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Session{
		ID:  uuid.New(),
		cfg: cfg,
		exec: engine.NewExecutor(engine.Rules{
			CheckCastlingTransit:         cfg.Rules.StrictCastling,
			ExtendedInsufficientMaterial: cfg.Rules.ExtendedInsufficientMaterial,
		}),
	}
}

// Reset sets up the standard starting position and forgets all history.
func (s *Session) Reset() {
	board := chess.NewBoard()
	board.Reset()
	s.start(&engine.Position{Board: board, ToMove: chess.White, MoveNumber: 1})
}

func (s *Session) start(pos *engine.Position) {
	s.board = pos.Board
	s.turn = pos.ToMove
	s.moveNumber = pos.MoveNumber
	s.halfMoveClock = pos.HalfMoveClock
	s.initialFEN = engine.PositionToFEN(pos)
	s.history = nil
	s.drawReason = engine.NoDraw
	s.moves = nil
	s.exec.Attacks().Invalidate()
}

// MovePiece attempts a quiet move for mover and reports whether it was made.
func (s *Session) MovePiece(from, to chess.Square, mover chess.Colour) bool {
	_, err := s.play(from, to, mover, false)
	return err == nil
}

// TakePiece attempts a capture, en passant included, and reports whether it was made.
func (s *Session) TakePiece(from, to chess.Square, mover chess.Colour) bool {
	_, err := s.play(from, to, mover, true)
	return err == nil
}

// Castle moves mover's king two columns towards the chosen rook.
func (s *Session) Castle(kingside bool, mover chess.Colour) bool {
	from, to := castlingSquares(kingside, mover)
	_, err := s.castle(from, to, mover)
	return err == nil
}

// Apply plays a parsed command for the side to move. Failures are returned
// as *errors.MoveError.
func (s *Session) Apply(cmd notation.Command) error {
	var err error
	from, to := cmd.From, cmd.To

	switch cmd.Kind {
	case notation.Quiet:
		_, err = s.play(from, to, s.turn, false)
	case notation.Capture:
		_, err = s.play(from, to, s.turn, true)
	case notation.CastleKingside, notation.CastleQueenside:
		from, to = castlingSquares(cmd.Kind == notation.CastleKingside, s.turn)
		_, err = s.castle(from, to, s.turn)
	default:
		err = errors.ErrInvalidNotation
	}

	if err != nil {
		return &errors.MoveError{
			Err:      err,
			Ply:      len(s.moves) + 1,
			MoveText: cmd.Text,
			From:     from.String(),
			To:       to.String(),
		}
	}
	return nil
}

// castlingSquares returns the king's home square and its castling destination.
func castlingSquares(kingside bool, mover chess.Colour) (from, to chess.Square) {
	row := chess.HomeRow(mover)
	if kingside {
		return chess.Sq(row, 4), chess.Sq(row, 6)
	}
	return chess.Sq(row, 4), chess.Sq(row, 2)
}

func (s *Session) castle(from, to chess.Square, mover chess.Colour) (*chess.Move, error) {
	if king := s.board.At(from); king.Kind != chess.King || king.Colour != mover {
		return nil, errors.Wrapf(errors.ErrIllegalDestination, "no %v king on %v", mover, from)
	}
	return s.play(from, to, mover, false)
}

func (s *Session) play(from, to chess.Square, mover chess.Colour, capture bool) (*chess.Move, error) {
	if s.IsOver() {
		return nil, errors.ErrGameOver
	}
	if mover != s.turn {
		return nil, errors.Wrapf(errors.ErrWrongTurn, "%v to move", s.turn)
	}

	var move *chess.Move
	var err error
	if capture {
		move, err = s.exec.TakePiece(s.board, from, to, mover)
	} else {
		move, err = s.exec.MovePiece(s.board, from, to, mover)
	}
	if err != nil {
		return nil, err
	}

	s.record(move)
	return move, nil
}

// record updates the counters, history and draw state after a committed move.
func (s *Session) record(move *chess.Move) {
	s.moves = append(s.moves, *move)
	s.cfg.Logf(2, "%d. %s %s\n", s.moveNumber, move.Mover, notation.Annotate(move))

	if move.ResetsClock() {
		s.halfMoveClock = 0
	} else {
		s.halfMoveClock++
	}
	if s.turn == chess.Black {
		s.moveNumber++
	}
	s.turn = s.turn.Opposite()
	s.history = append(s.history, engine.PositionKey(s.board, s.turn))

	if s.board.WhiteWon || s.board.BlackWon {
		s.cfg.Logf(2, "%s\n", s.Result())
		return
	}

	s.drawReason = engine.DetectDraw(s.board, engine.DrawState{
		HalfMoveClock: s.halfMoveClock,
		History:       s.history,
		ToMove:        s.turn,
	}, s.exec.Rules())
	if s.drawReason != engine.NoDraw {
		s.cfg.Logf(2, "%s\n", s.Result())
	}
}

// AllMovesByColour returns every pseudo-legal destination for colour's pieces.
func (s *Session) AllMovesByColour(colour chess.Colour) chess.SquareSet {
	return engine.AllMovesByColour(s.board, colour)
}

// IsCheckmate reports whether every move of the side to move's king leaves
// it attacked. Only king moves are considered, and the king need not be in
// check; see IsMated.
func (s *Session) IsCheckmate() bool {
	return engine.IsCheckmate(s.board, s.turn)
}

// IsMated reports whether the side to move is in check with no legal move.
// The session does not end the game on it; that is left to the caller.
func (s *Session) IsMated() bool {
	return s.exec.Rules().IsMated(s.board, s.turn)
}

// InCheck reports whether the side to move is in check.
func (s *Session) InCheck() bool {
	return s.exec.Attacks().InCheck(s.board, s.turn)
}

// PieceAt returns the piece on sq.
func (s *Session) PieceAt(sq chess.Square) chess.Piece {
	return s.board.At(sq)
}

// WhiteWon reports whether White has captured the black king.
func (s *Session) WhiteWon() bool {
	return s.board.WhiteWon
}

// BlackWon reports whether Black has captured the white king.
func (s *Session) BlackWon() bool {
	return s.board.BlackWon
}

// IsDraw reports whether a draw has been declared.
func (s *Session) IsDraw() bool {
	return s.drawReason != engine.NoDraw
}

// DrawReason returns the reason the game was drawn, or NoDraw.
func (s *Session) DrawReason() engine.DrawReason {
	return s.drawReason
}

// IsOver reports whether the game has ended by king capture or draw.
func (s *Session) IsOver() bool {
	return s.WhiteWon() || s.BlackWon() || s.IsDraw()
}

// Result describes how the game ended, or returns "" while it is in progress.
func (s *Session) Result() string {
	switch {
	case s.WhiteWon():
		return "White wins"
	case s.BlackWon():
		return "Black wins"
	case s.IsDraw():
		return "Game drawn by " + string(s.drawReason)
	}
	return ""
}

func (s *Session) Turn() chess.Colour  { return s.turn }
func (s *Session) MoveNumber() int     { return s.moveNumber }
func (s *Session) HalfMoveClock() int  { return s.halfMoveClock }
func (s *Session) InitialFEN() string  { return s.initialFEN }
func (s *Session) Rules() engine.Rules { return s.exec.Rules() }

// History returns a copy of the position keys seen so far.
func (s *Session) History() []string {
	return append([]string(nil), s.history...)
}

// Moves returns a copy of the moves played so far.
func (s *Session) Moves() []chess.Move {
	return append([]chess.Move(nil), s.moves...)
}

// LastMove returns the most recent move, or nil before the first move.
func (s *Session) LastMove() *chess.Move {
	if len(s.moves) == 0 {
		return nil
	}
	m := s.moves[len(s.moves)-1]
	return &m
}

// Board returns a copy of the current board.
func (s *Session) Board() *chess.Board {
	return s.board.Copy()
}

// FEN returns the current position as a six-field FEN string.
func (s *Session) FEN() string {
	return engine.PositionToFEN(&engine.Position{
		Board:         s.board,
		ToMove:        s.turn,
		HalfMoveClock: s.halfMoveClock,
		MoveNumber:    s.moveNumber,
	})
}

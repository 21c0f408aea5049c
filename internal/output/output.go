// Package output renders boards and game records for the terminal and for files.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/movelog"
	"github.com/lgbarn/chess-rules-go/internal/notation"
)

// RenderBoard writes the board from rank 8 down to rank 1, one cell per
// square: " WR |" for a piece and "    |" for an empty square.
func RenderBoard(w io.Writer, board *chess.Board) error {
	var sb strings.Builder

	sb.WriteByte('\n')
	for row := chess.BoardSize - 1; row >= 0; row-- {
		sb.WriteByte('|')
		for col := 0; col < chess.BoardSize; col++ {
			sb.WriteByte(' ')
			sb.WriteString(board.Squares[row][col].String())
			sb.WriteString(" |")
		}
		fmt.Fprintf(&sb, " %d\n", row+1)
	}

	sb.WriteByte(' ')
	for col := 0; col < chess.BoardSize; col++ {
		fmt.Fprintf(&sb, "  %c  ", 'a'+col)
	}
	sb.WriteByte('\n')

	_, err := io.WriteString(w, strings.TrimRight(sb.String(), " \n")+"\n")
	return err
}

// numberedMove is a played move with its full-move number and log text.
type numberedMove struct {
	Number int
	Text   string
	Move   chess.Move
}

// numberedMoves pairs every move in the session with its move number,
// counting from the move number of the starting position.
func numberedMoves(s *game.Session) []numberedMove {
	number := 1
	if pos, err := engine.NewPositionFromFEN(s.InitialFEN()); err == nil {
		number = pos.MoveNumber
	}

	moves := s.Moves()
	result := make([]numberedMove, 0, len(moves))
	for i := range moves {
		m := moves[i]
		result = append(result, numberedMove{Number: number, Text: notation.Annotate(&m), Move: m})
		if m.Mover == chess.Black {
			number++
		}
	}
	return result
}

// Termination describes why the game stopped, or "" while it is in progress.
func Termination(s *game.Session) string {
	switch {
	case s.WhiteWon(), s.BlackWon():
		return "king captured"
	case s.IsDraw():
		return string(s.DrawReason())
	case s.IsMated():
		return "checkmate"
	}
	return ""
}

// ResultCode returns "1-0", "0-1", "1/2-1/2" or "*".
func ResultCode(s *game.Session) string {
	switch {
	case s.WhiteWon():
		return "1-0"
	case s.BlackWon():
		return "0-1"
	case s.IsDraw():
		return "1/2-1/2"
	case s.IsMated() && s.Turn() == chess.Black:
		return "1-0"
	case s.IsMated():
		return "0-1"
	}
	return "*"
}

// OutputGame writes a text record of the game: an identifying header, the
// moves laid out as in the move log, and the result.
func OutputGame(s *game.Session, w io.Writer) error {
	fmt.Fprintf(w, "Game %s\n", s.ID)
	if fen := s.InitialFEN(); fen != engine.InitialFEN {
		fmt.Fprintf(w, "Start %s\n", fen)
	}
	fmt.Fprintln(w)

	log := movelog.New(w)
	for _, m := range numberedMoves(s) {
		log.LogMove(m.Move.Mover, m.Number, m.Text)
	}

	switch {
	case s.IsDraw():
		log.LogDraw(string(s.DrawReason()))
	case s.IsOver():
		log.LogResult(s.Result())
	case s.IsMated():
		log.LogResult(fmt.Sprintf("Checkmate! %s wins", s.Turn().Opposite()))
	default:
		log.LogResult(ResultCode(s))
	}
	return log.Close()
}

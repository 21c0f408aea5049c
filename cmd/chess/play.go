// play.go - Interactive and replay game loops
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/movelog"
	"github.com/lgbarn/chess-rules-go/internal/notation"
	"github.com/lgbarn/chess-rules-go/internal/output"
)

const (
	promptFormat = "%s, Enter your move: "
	invalidMove  = "Invalid move. Try again."
	exitCommand  = "exit"
)

// Player drives a session from text input and keeps the move log.
type Player struct {
	cfg     *config.Config
	session *game.Session
	out     io.Writer       // board, prompts and announcements
	log     *movelog.Logger // nil when the move log is disabled
}

// NewPlayer creates a player writing its display to out.
func NewPlayer(cfg *config.Config, s *game.Session, out io.Writer, log *movelog.Logger) *Player {
	return &Player{cfg: cfg, session: s, out: out, log: log}
}

// newSession starts from cfg.StartFEN, or the standard position when it is empty.
func newSession(cfg *config.Config) (*game.Session, error) {
	if cfg.StartFEN == "" {
		return game.NewSession(cfg), nil
	}
	return game.NewSessionFromFEN(cfg, cfg.StartFEN)
}

// openMoveLog creates the move log file for s, or returns nil if logging is off.
func openMoveLog(cfg *config.Config, s *game.Session, now time.Time) (*movelog.Logger, error) {
	if cfg.MoveLog.Disabled {
		return nil, nil
	}
	log, err := movelog.Create(cfg.MoveLog.Dir, now, s.ID.String())
	if err != nil {
		return nil, err
	}
	cfg.Logf(1, "Logging moves to %s\n", log.Path())
	return log, nil
}

// finished reports whether the game accepts no further moves.
func finished(s *game.Session) bool {
	return s.IsOver() || s.IsMated()
}

// Play parses and applies one move, then records it in the move log.
func (p *Player) Play(text string) error {
	cmd, err := notation.Parse(text)
	if err != nil {
		return err
	}
	if err := p.session.Apply(cmd); err != nil {
		return err
	}

	last := p.session.LastMove()
	number := p.session.MoveNumber()
	if last.Mover == chess.Black {
		number--
	}
	if p.log != nil {
		if err := p.log.LogMove(last.Mover, number, notation.Annotate(last)); err != nil {
			p.cfg.Logf(1, "Error writing move log: %v\n", err)
		}
	}
	return nil
}

// Announce reports how the game ended on the display and in the move log.
// It does nothing while the game is in progress.
func (p *Player) Announce() {
	s := p.session
	var line string

	switch {
	case s.IsOver():
		line = s.Result()
	case s.IsMated():
		line = fmt.Sprintf("Checkmate! %s wins", s.Turn().Opposite())
	default:
		return
	}
	fmt.Fprintln(p.out, line)

	if p.log == nil {
		return
	}
	var err error
	if s.IsDraw() {
		err = p.log.LogDraw(string(s.DrawReason()))
	} else {
		err = p.log.LogResult(line)
	}
	if err != nil {
		p.cfg.Logf(1, "Error writing move log: %v\n", err)
	}
}

// RunInteractive prompts for moves on in until the game ends, the input
// runs out or the player types exit.
func (p *Player) RunInteractive(in io.Reader) error {
	scanner := bufio.NewScanner(in)

	for {
		if err := output.RenderBoard(p.out, p.session.Board()); err != nil {
			return err
		}
		if finished(p.session) {
			p.Announce()
			return nil
		}
		if p.session.InCheck() {
			fmt.Fprintf(p.out, "%s is in check.\n", p.session.Turn())
		}

		fmt.Fprintf(p.out, promptFormat, p.session.Turn())
		if !scanner.Scan() {
			fmt.Fprintln(p.out)
			return scanner.Err()
		}

		text := strings.TrimSpace(scanner.Text())
		if text == exitCommand {
			return nil
		}
		if err := p.Play(text); err != nil {
			fmt.Fprintln(p.out, invalidMove)
			p.cfg.Logf(2, "%v\n", err)
		}
	}
}

// RunReplay applies one move per line from r. Blank lines and lines starting
// with # are skipped. The first rejected move stops the replay; its error
// carries the file name and line number.
func (p *Player) RunReplay(r io.Reader, name string) error {
	scanner := bufio.NewScanner(r)
	line := 0

	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		if finished(p.session) {
			return &chesserrors.ParseError{Err: chesserrors.ErrGameOver, File: name, Line: line, Got: text}
		}

		if err := p.Play(text); err != nil {
			var parseErr *chesserrors.ParseError
			if errors.As(err, &parseErr) {
				parseErr.File = name
				parseErr.Line = line
				return parseErr
			}
			return fmt.Errorf("%s:%d: %w", name, line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}

	p.Announce()
	return nil
}

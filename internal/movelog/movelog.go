// Package movelog writes the human-readable record of a game: one text file
// per game, one line per full move.
package movelog

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Layouts for the file name and header lines.
const (
	fileDateLayout   = "2006.01.02"
	headerTimeLayout = "15:04:05"
	headerDateLayout = "02/01/2006"
)

// Logger appends moves to a move log.
type Logger struct {
	w      io.Writer
	closer io.Closer
	path   string

	// Set after White's move until Black's move finishes the line.
	pending bool
}

// New creates a logger that writes to w. No header is written.
func New(w io.Writer) *Logger {
	return &Logger{w: w}
}

// Create makes dir if needed and opens a new log file named after the date,
// yyyy.MM.dd.txt, or yyyy.MM.dd(n).txt if that name is taken. The header is
// the time, the date, an optional game line, then a blank line.
func Create(dir string, now time.Time, gameID string) (*Logger, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating move log directory: %w", err)
	}

	f, path, err := openUnique(dir, now.Format(fileDateLayout))
	if err != nil {
		return nil, err
	}

	l := &Logger{w: f, closer: f, path: path}
	if err := l.writeHeader(now, gameID); err != nil {
		f.Close()
		return nil, err
	}
	return l, nil
}

// openUnique creates base.txt in dir, or the first free base(n).txt.
func openUnique(dir, base string) (*os.File, string, error) {
	name := base + ".txt"
	for counter := 1; ; counter++ {
		path := filepath.Join(dir, name)
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			return f, path, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return nil, "", fmt.Errorf("creating move log: %w", err)
		}
		name = fmt.Sprintf("%s(%d).txt", base, counter)
	}
}

func (l *Logger) writeHeader(now time.Time, gameID string) error {
	if _, err := fmt.Fprintf(l.w, "%s\n%s\n", now.Format(headerTimeLayout), now.Format(headerDateLayout)); err != nil {
		return err
	}
	if gameID != "" {
		if _, err := fmt.Fprintf(l.w, "Game %s\n", gameID); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(l.w)
	return err
}

// Path returns the file the logger writes to, or "" for New.
func (l *Logger) Path() string {
	return l.path
}

// LogMove records a half-move. White opens the line with the move number,
// Black's move is indented and closes it.
func (l *Logger) LogMove(mover chess.Colour, moveNumber int, text string) error {
	var err error
	if mover == chess.White {
		if err = l.finishLine(); err != nil {
			return err
		}
		_, err = fmt.Fprintf(l.w, "%d. %s", moveNumber, text)
		l.pending = true
	} else {
		_, err = fmt.Fprintf(l.w, "    %s\n", text)
		l.pending = false
	}
	return err
}

// LogDraw records a drawn game.
func (l *Logger) LogDraw(reason string) error {
	return l.LogResult("Game drawn by " + reason)
}

// LogResult records a line of free text such as the winner, on its own line.
func (l *Logger) LogResult(text string) error {
	if err := l.finishLine(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(l.w, text)
	return err
}

// finishLine ends a line left open by White's move.
func (l *Logger) finishLine() error {
	if !l.pending {
		return nil
	}
	l.pending = false
	_, err := fmt.Fprintln(l.w)
	return err
}

// Close finishes any open line and closes the underlying file.
func (l *Logger) Close() error {
	err := l.finishLine()
	if l.closer != nil {
		if cerr := l.closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

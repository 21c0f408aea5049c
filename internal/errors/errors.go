// Package errors provides sentinel errors and error types for the chess engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrWrongTurn indicates the piece on the source square belongs to the side not moving.
	ErrWrongTurn = errors.New("wrong turn")

	// ErrIllegalDestination indicates the destination is not reachable by the piece.
	ErrIllegalDestination = errors.New("illegal destination")

	// ErrInvalidCaptureTarget indicates a capture onto an own piece or an empty square.
	ErrInvalidCaptureTarget = errors.New("invalid capture target")

	// ErrEmptySquare indicates there is no piece on the source square.
	ErrEmptySquare = errors.New("no piece on source square")

	// ErrGameOver indicates a move was submitted after the game ended.
	ErrGameOver = errors.New("game is over")

	// ErrInvalidNotation indicates move text that is not in a recognised form.
	ErrInvalidNotation = errors.New("invalid move notation")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps errors with move context: the ply it happened on, the text
// that was submitted and the squares involved. It implements the error
// interface and supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err      error  // The underlying error
	Ply      int    // 1-based half-move number (0 if not applicable)
	MoveText string // The move text that caused the error (if applicable)
	From     string // Source square in coordinate notation (if known)
	To       string // Destination square in coordinate notation (if known)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}

	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	if e.From != "" && e.To != "" {
		parts = append(parts, fmt.Sprintf("%s-%s", e.From, e.To))
	}

	context := strings.Join(parts, ", ")

	switch {
	case context == "" && e.Err != nil:
		return e.Err.Error()
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", context, e.Err)
	case context == "":
		return "move error"
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError reports move text that could not be read, with its location
// when the text came from a replay file.
type ParseError struct {
	Err      error  // The underlying error
	File     string // Replay file name (empty for interactive input)
	Line     int    // 1-based line in File
	Expected string // Accepted forms
	Got      string // The rejected text
}

// location returns "file:line", "line N" or "".
func (e *ParseError) location() string {
	switch {
	case e.File != "" && e.Line > 0:
		return fmt.Sprintf("%s:%d", e.File, e.Line)
	case e.File != "":
		return e.File
	case e.Line > 0:
		return fmt.Sprintf("line %d", e.Line)
	}
	return ""
}

// Error returns the location, the rejected text and the cause, omitting
// whatever is unknown.
func (e *ParseError) Error() string {
	var parts []string
	if loc := e.location(); loc != "" {
		parts = append(parts, loc)
	}

	switch {
	case e.Expected != "" && e.Got != "":
		parts = append(parts, fmt.Sprintf("expected %s, got %q", e.Expected, e.Got))
	case e.Expected != "":
		parts = append(parts, "expected "+e.Expected)
	case e.Got != "":
		parts = append(parts, fmt.Sprintf("unexpected %q", e.Got))
	}
	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}

	if len(parts) == 0 {
		return "parse error"
	}
	return strings.Join(parts, ": ")
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

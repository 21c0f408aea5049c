package output

import (
	"io"

	"github.com/lgbarn/chess-rules-go/internal/game"
)

// GameWriter is the interface for writing finished games to output.
// Different implementations handle different output formats (text, JSON).
type GameWriter interface {
	// WriteGame writes a single game to the output.
	WriteGame(s *game.Session) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewGameWriter returns a JSON writer when asJSON is set, otherwise a text writer.
func NewGameWriter(w io.Writer, asJSON bool) GameWriter {
	if asJSON {
		return NewJSONWriterSingle(w)
	}
	return NewTextWriter(w)
}

// TextWriter writes games as plain text records.
type TextWriter struct {
	w       io.Writer
	written int
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WriteGame writes a game record. Records are separated by a blank line.
func (tw *TextWriter) WriteGame(s *game.Session) error {
	if tw.written > 0 {
		if _, err := io.WriteString(tw.w, "\n"); err != nil {
			return err
		}
	}
	tw.written++
	return OutputGame(s, tw.w)
}

// Flush flushes the text writer (no-op as it writes immediately).
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes games in JSON format.
// It buffers games and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	games  []*JSONGame
	single bool // If true, write each game immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches games and writes them as an array on Close().
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:     w,
		games: make([]*JSONGame, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each game immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		single: true,
	}
}

// WriteGame converts the game and writes it immediately in single mode,
// or buffers it for batch output. The snapshot is taken now, so later moves
// on the same session do not change a buffered record.
func (jw *JSONWriter) WriteGame(s *game.Session) error {
	jsonGame := GameToJSON(s)
	if jw.single {
		return encodeJSON(jw.w, jsonGame)
	}

	jw.games = append(jw.games, jsonGame)
	return nil
}

// Flush writes all buffered games as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.games) == 0 {
		return nil
	}

	err := encodeJSON(jw.w, &JSONOutput{Games: jw.games})

	// Clear buffer after writing
	jw.games = jw.games[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

// Package notation parses the coordinate move forms accepted at the prompt and
// renders committed moves as move-log text.
package notation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// CommandKind distinguishes the three accepted move forms.
type CommandKind int

const (
	Quiet           CommandKind = iota // e2e4
	Capture                            // e4xd5
	CastleKingside                     // O-O
	CastleQueenside                    // O-O-O
)

// String returns the string representation of a command kind.
func (k CommandKind) String() string {
	switch k {
	case Quiet:
		return "move"
	case Capture:
		return "capture"
	case CastleKingside:
		return "kingside castle"
	case CastleQueenside:
		return "queenside castle"
	default:
		return "unknown"
	}
}

// Castling tokens.
const (
	KingsideToken  = "O-O"
	QueensideToken = "O-O-O"
)

// Command is a decoded move request. From and To are unset for castling,
// whose squares depend on the side to move.
type Command struct {
	Kind CommandKind
	From chess.Square
	To   chess.Square
	Text string
}

// IsCastle returns true if the command is a castling token.
func (c Command) IsCastle() bool {
	return c.Kind == CastleKingside || c.Kind == CastleQueenside
}

// String returns the text the command was parsed from.
func (c Command) String() string {
	return c.Text
}

var (
	moveRegex = regexp.MustCompile(`^([a-h][1-8])([a-h][1-8])$`)
	takeRegex = regexp.MustCompile(`^([a-h][1-8])x([a-h][1-8])$`)
)

// Parse decodes move text. Surrounding whitespace is ignored; anything other
// than a coordinate pair, a coordinate pair with an x, or a castling token
// returns a *errors.ParseError wrapping ErrInvalidNotation.
func Parse(text string) (Command, error) {
	text = strings.TrimSpace(text)
	cmd := Command{Text: text}

	switch text {
	case KingsideToken:
		cmd.Kind = CastleKingside
		return cmd, nil
	case QueensideToken:
		cmd.Kind = CastleQueenside
		return cmd, nil
	}

	m := moveRegex.FindStringSubmatch(text)
	if m != nil {
		cmd.Kind = Quiet
	} else if m = takeRegex.FindStringSubmatch(text); m != nil {
		cmd.Kind = Capture
	} else {
		return Command{}, &errors.ParseError{
			Err:      errors.ErrInvalidNotation,
			Expected: "e2e4, e4xd5, O-O or O-O-O",
			Got:      text,
		}
	}

	// The patterns guarantee both squares are on the board.
	cmd.From, _ = ParseSquare(m[1])
	cmd.To, _ = ParseSquare(m[2])
	return cmd, nil
}

// ParseSquare converts coordinate text such as "e4" to a square.
func ParseSquare(s string) (chess.Square, error) {
	if len(s) != 2 {
		return chess.Square{}, fmt.Errorf("invalid square %q: %w", s, errors.ErrInvalidNotation)
	}
	sq, ok := chess.SquareAt(chess.Col(s[0]), chess.Rank(s[1]))
	if !ok {
		return chess.Square{}, fmt.Errorf("invalid square %q: %w", s, errors.ErrInvalidNotation)
	}
	return sq, nil
}

// FormatSquare returns the coordinate text of a square, e.g. "e4".
func FormatSquare(sq chess.Square) string {
	return sq.String()
}

// Annotate renders a committed move as move-log text: castling tokens, or the
// piece letter (omitted for pawns), the source square, and the destination
// preceded by x for captures. For example "Ng1f3", "e4xd5", "O-O".
func Annotate(move *chess.Move) string {
	switch move.Class {
	case chess.KingsideCastle:
		return KingsideToken
	case chess.QueensideCastle:
		return QueensideToken
	}

	var sb strings.Builder
	if move.Kind != chess.Pawn && move.Kind != chess.None {
		sb.WriteByte(move.Kind.Letter())
	}
	sb.WriteString(FormatSquare(move.From))
	if move.IsCapture() {
		sb.WriteByte('x')
	}
	sb.WriteString(FormatSquare(move.To))
	return sb.String()
}

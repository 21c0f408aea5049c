package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/notation"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	ID          string     `json:"id"`
	InitialFEN  string     `json:"initialFEN,omitempty"`
	FinalFEN    string     `json:"finalFEN"`
	Result      string     `json:"result"`
	Termination string     `json:"termination,omitempty"`
	PlyCount    int        `json:"plyCount"`
	Moves       []JSONMove `json:"moves,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber,omitempty"`
	Color      string `json:"color"` // "white" or "black"
	Text       string `json:"text"`
	From       string `json:"from"`
	To         string `json:"to"`
	Piece      string `json:"piece"`
	Captured   string `json:"captured,omitempty"`
	Castle     string `json:"castle,omitempty"` // "kingside" or "queenside"
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// OutputGameJSON writes a single game as indented JSON.
func OutputGameJSON(s *game.Session, w io.Writer) error {
	return encodeJSON(w, GameToJSON(s))
}

func encodeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// GameToJSON converts a session to JSON format. The initial FEN is only
// included when the game did not start from the standard position.
func GameToJSON(s *game.Session) *JSONGame {
	jg := &JSONGame{
		ID:          s.ID.String(),
		FinalFEN:    s.FEN(),
		Result:      ResultCode(s),
		Termination: Termination(s),
	}
	if fen := s.InitialFEN(); fen != engine.InitialFEN {
		jg.InitialFEN = fen
	}

	for _, m := range numberedMoves(s) {
		jg.Moves = append(jg.Moves, convertMove(m))
	}
	jg.PlyCount = len(jg.Moves)
	return jg
}

// convertMove converts a single move to JSON format.
func convertMove(m numberedMove) JSONMove {
	jm := JSONMove{
		Color: colorName(m.Move.Mover),
		Text:  m.Text,
		From:  notation.FormatSquare(m.Move.From),
		To:    notation.FormatSquare(m.Move.To),
		Piece: pieceTypeName(m.Move.Kind),
	}

	// Move numbers only on White's moves, as in written notation.
	if m.Move.Mover == chess.White {
		jm.MoveNumber = m.Number
	}

	if m.Move.IsCapture() {
		jm.Captured = pieceTypeName(m.Move.Captured.Kind)
	}

	switch m.Move.Class {
	case chess.KingsideCastle:
		jm.Castle = "kingside"
	case chess.QueensideCastle:
		jm.Castle = "queenside"
	}
	return jm
}

// colorName returns "white" or "black".
func colorName(c chess.Colour) string {
	return strings.ToLower(c.String())
}

// pieceTypeName returns the piece type as a string.
func pieceTypeName(k chess.Kind) string {
	switch k {
	case chess.Pawn:
		return "pawn"
	case chess.Knight:
		return "knight"
	case chess.Bishop:
		return "bishop"
	case chess.Rook:
		return "rook"
	case chess.Queen:
		return "queen"
	case chess.King:
		return "king"
	default:
		return ""
	}
}

package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Position is a board plus the game counters carried by a FEN record.
type Position struct {
	Board         *chess.Board
	ToMove        chess.Colour
	HalfMoveClock int
	MoveNumber    int
}

// pieceLetter returns the FEN letter for a piece: uppercase for White.
func pieceLetter(p chess.Piece) byte {
	letter := p.Kind.Letter()
	if p.Colour == chess.Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// NewPositionFromFEN parses a FEN string. Only the placement field is required;
// missing fields default to White to move, no castling, no en passant, clock 0
// and move 1.
func NewPositionFromFEN(fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	pos := &Position{
		Board:      chess.NewBoard(),
		ToMove:     chess.White,
		MoveNumber: 1,
	}

	if err := parsePiecePositions(pos.Board, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(pos, parts); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(pos.Board, parts); err != nil {
		return nil, err
	}
	if err := parseEnPassant(pos, parts); err != nil {
		return nil, err
	}
	if err := parseClocks(pos, parts); err != nil {
		return nil, err
	}

	pos.Board.LocateKings()
	return pos, nil
}

// NewBoardFromFEN creates a board from a FEN string, discarding the counters.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	pos, err := NewPositionFromFEN(fen)
	if err != nil {
		return nil, err
	}
	return pos.Board, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
// Pawns off their starting row are marked as moved.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("expected %d ranks, got %d: %w", chess.BoardSize, len(ranks), errors.ErrInvalidFEN)
	}

	for i, rankText := range ranks {
		row := chess.BoardSize - 1 - i
		col := 0
		for _, c := range rankText {
			if c >= '1' && c <= '8' {
				col += int(c - '0')
				continue
			}
			kind := chess.KindFromLetter(byte(c))
			if kind == chess.None {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			if col >= chess.BoardSize {
				return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
			}

			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}
			piece := chess.NewPiece(kind, colour)
			if kind == chess.Pawn && row != chess.PawnRow(colour) {
				piece.HasMoved = true
			}
			board.Set(chess.Sq(row, col), piece)
			col++
		}
		if col != chess.BoardSize {
			return fmt.Errorf("rank %d has %d files: %w", row+1, col, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(pos *Position, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		pos.ToMove = chess.White
	case "b":
		pos.ToMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// castlingRight pairs a FEN castling letter with the pieces it concerns.
type castlingRight struct {
	letter   byte
	colour   chess.Colour
	kingside bool
}

var castlingRights = []castlingRight{
	{'K', chess.White, true},
	{'Q', chess.White, false},
	{'k', chess.Black, true},
	{'q', chess.Black, false},
}

// parseCastlingRights translates the castling field into HasMoved flags.
// A king or corner rook without a matching right is treated as moved.
func parseCastlingRights(board *chess.Board, parts []string) error {
	field := "-"
	if len(parts) >= 3 {
		field = parts[2]
	}

	granted := make(map[byte]bool)
	if field != "-" {
		for i := 0; i < len(field); i++ {
			switch c := field[i]; c {
			case 'K', 'Q', 'k', 'q':
				granted[c] = true
			default:
				return fmt.Errorf("invalid castling availability: %s: %w", field, errors.ErrInvalidFEN)
			}
		}
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		kingSq := kingHome(colour)
		kingHasRight := false
		for _, right := range castlingRights {
			if right.colour != colour {
				continue
			}
			rookSq := castlingRookSquare(kingSq, right.kingside)
			if granted[right.letter] {
				kingHasRight = true
				continue
			}
			markMoved(board, rookSq, chess.Rook, colour)
		}
		if !kingHasRight {
			markMoved(board, kingSq, chess.King, colour)
		}
	}

	// Kings away from home can never castle.
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			if p := board.Squares[row][col]; p.Kind == chess.King && chess.Sq(row, col) != kingHome(p.Colour) {
				markMoved(board, chess.Sq(row, col), chess.King, p.Colour)
			}
		}
	}
	return nil
}

// markMoved sets HasMoved on the piece at sq if it is of the given kind and colour.
func markMoved(board *chess.Board, sq chess.Square, kind chess.Kind, colour chess.Colour) {
	p := board.At(sq)
	if p.Kind == kind && p.Colour == colour && !p.HasMoved {
		p.HasMoved = true
		board.Set(sq, p)
	}
}

// parseEnPassant marks the pawn that just passed the en passant square as eligible.
func parseEnPassant(pos *Position, parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	field := parts[3]
	if len(field) != 2 {
		return fmt.Errorf("invalid en passant square: %s: %w", field, errors.ErrInvalidFEN)
	}
	target, ok := chess.SquareAt(chess.Col(field[0]), chess.Rank(field[1]))
	if !ok {
		return fmt.Errorf("invalid en passant square: %s: %w", field, errors.ErrInvalidFEN)
	}

	passer := pos.ToMove.Opposite()
	pawnSq := target.Offset(chess.ColourOffset(passer), 0)
	pawn := pos.Board.At(pawnSq)
	if pawn.Kind == chess.Pawn && pawn.Colour == passer {
		pawn.EnPassantEligible = true
		pos.Board.Set(pawnSq, pawn)
	}
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(pos *Position, parts []string) error {
	if len(parts) >= 5 {
		n, err := strconv.Atoi(parts[4])
		if err != nil || n < 0 {
			return fmt.Errorf("invalid halfmove clock: %s: %w", parts[4], errors.ErrInvalidFEN)
		}
		pos.HalfMoveClock = n
	}
	if len(parts) >= 6 {
		n, err := strconv.Atoi(parts[5])
		if err != nil || n < 1 {
			return fmt.Errorf("invalid fullmove number: %s: %w", parts[5], errors.ErrInvalidFEN)
		}
		pos.MoveNumber = n
	}
	return nil
}

// PositionToFEN converts a position to a full six-field FEN string.
func PositionToFEN(pos *Position) string {
	return fmt.Sprintf("%s %d %d", PositionKey(pos.Board, pos.ToMove), pos.HalfMoveClock, pos.MoveNumber)
}

// PositionKey returns the first four FEN fields: placement, side to move,
// castling availability and en passant square. Two positions with the same
// key are the same position for repetition purposes.
func PositionKey(board *chess.Board, toMove chess.Colour) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	sb.WriteByte(byte(unicode.ToLower(rune(toMove.Letter()))))
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)
	sb.WriteByte(' ')
	writeEnPassant(&sb, board, toMove)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := chess.BoardSize - 1; row >= 0; row-- {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if piece.IsNone() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(pieceLetter(piece))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeCastlingRights derives castling availability from the HasMoved flags.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	hasCastling := false
	for _, right := range castlingRights {
		kingSq := kingHome(right.colour)
		king := board.At(kingSq)
		rook := board.At(castlingRookSquare(kingSq, right.kingside))
		if king.Kind != chess.King || king.Colour != right.colour || king.HasMoved {
			continue
		}
		if rook.Kind != chess.Rook || rook.Colour != right.colour || rook.HasMoved {
			continue
		}
		sb.WriteByte(right.letter)
		hasCastling = true
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// writeEnPassant writes the square behind an eligible pawn of the side that
// just moved, or '-'.
func writeEnPassant(sb *strings.Builder, board *chess.Board, toMove chess.Colour) {
	passer := toMove.Opposite()
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			p := board.Squares[row][col]
			if p.Kind == chess.Pawn && p.Colour == passer && p.EnPassantEligible {
				sb.WriteString(chess.Sq(row, col).Offset(-chess.ColourOffset(passer), 0).String())
				return
			}
		}
	}
	sb.WriteByte('-')
}

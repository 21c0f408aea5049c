// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Letter returns 'W' or 'B'.
func (c Colour) Letter() byte {
	if c == White {
		return 'W'
	}
	return 'B'
}

// Kind represents a chess piece type. None marks an empty square.
type Kind int

const (
	None Kind = iota
	Pawn
	Rook
	Knight
	Bishop
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Rook", "Knight", "Bishop", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{'.', 'P', 'R', 'N', 'B', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts an uppercase or lowercase piece letter to a kind.
func KindFromLetter(c byte) Kind {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'R', 'r':
		return Rook
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return None
	}
}

// MoveClass categorizes different types of chess moves.
type MoveClass int

const (
	QuietMove MoveClass = iota
	CaptureMove
	EnPassantCapture
	KingsideCastle
	QueensideCastle
)

// String returns the string representation of a move class.
func (mc MoveClass) String() string {
	switch mc {
	case QuietMove:
		return "quiet"
	case CaptureMove:
		return "capture"
	case EnPassantCapture:
		return "en passant"
	case KingsideCastle:
		return "kingside castle"
	case QueensideCastle:
		return "queenside castle"
	default:
		return "unknown"
	}
}

// Rank represents a chess rank (row) - '1' to '8'.
type Rank byte

// Col represents a chess file (column) - 'a' to 'h'.
type Col byte

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	RankBase  = '1'
	ColBase   = 'a'
	FirstRank = RankBase
	LastRank  = RankBase + BoardSize - 1
	FirstCol  = ColBase
	LastCol   = ColBase + BoardSize - 1
)

// RankConvert converts a rank character to a row index, or -1 if out of range.
func RankConvert(rank Rank) int {
	if rank >= FirstRank && rank <= LastRank {
		return int(rank - RankBase)
	}
	return -1
}

// ColConvert converts a column character to a column index, or -1 if out of range.
func ColConvert(col Col) int {
	if col >= FirstCol && col <= LastCol {
		return int(col - ColBase)
	}
	return -1
}

// ToRank converts a row index back to a rank character.
func ToRank(r int) Rank {
	return Rank(r + int(RankBase))
}

// ToCol converts a column index back to a column character.
func ToCol(c int) Col {
	return Col(c + int(ColBase))
}

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// HomeRow returns the back row of the given colour.
func HomeRow(colour Colour) int {
	if colour == White {
		return 0
	}
	return BoardSize - 1
}

// PawnRow returns the starting row of the given colour's pawns.
func PawnRow(colour Colour) int {
	if colour == White {
		return 1
	}
	return BoardSize - 2
}

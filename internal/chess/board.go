package chess

// Board represents a chess board with all state the rules need.
type Board struct {
	// The board squares, Squares[row][col]. Empty squares hold a None piece.
	Squares [BoardSize][BoardSize]Piece

	// Keep track of where the two kings are for check detection.
	WhiteKing Square
	BlackKing Square

	// Set the moment a king is captured.
	WhiteWon bool
	BlackWon bool

	// Incremented on every write so cached attack maps can be keyed on it.
	version uint64
}

// backRank is the standard piece order from file a to file h.
var backRank = [BoardSize]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	b := &Board{}
	b.Clear()
	return b
}

// Clear empties every square and forgets the win flags.
func (b *Board) Clear() {
	b.Squares = [BoardSize][BoardSize]Piece{}
	b.WhiteKing = Square{Row: -1, Col: -1}
	b.BlackKing = Square{Row: -1, Col: -1}
	b.WhiteWon = false
	b.BlackWon = false
	b.version++
}

// Reset sets up the standard chess starting position.
func (b *Board) Reset() {
	b.Clear()
	for col := 0; col < BoardSize; col++ {
		b.Squares[0][col] = W(backRank[col])
		b.Squares[1][col] = W(Pawn)
		b.Squares[6][col] = B(Pawn)
		b.Squares[7][col] = B(backRank[col])
	}
	b.WhiteKing = Sq(0, 4)
	b.BlackKing = Sq(7, 4)
}

// At returns the piece on the given square. Off-board squares read as empty.
func (b *Board) At(sq Square) Piece {
	if !sq.OnBoard() {
		return Piece{}
	}
	return b.Squares[sq.Row][sq.Col]
}

// Get returns the piece at the given coordinates (using char coords 'a'-'h', '1'-'8').
func (b *Board) Get(col Col, rank Rank) Piece {
	sq, ok := SquareAt(col, rank)
	if !ok {
		return Piece{}
	}
	return b.At(sq)
}

// Set places a piece on a square. Writes to off-board squares are ignored.
// King squares are not updated; use Place for setup or SetKingSquare after a move.
func (b *Board) Set(sq Square, p Piece) {
	if !sq.OnBoard() {
		return
	}
	b.Squares[sq.Row][sq.Col] = p
	b.version++
}

// Vacate replaces the occupant of sq with a fresh empty cell.
func (b *Board) Vacate(sq Square) {
	b.Set(sq, Piece{})
}

// Place puts a fresh piece on sq and tracks it if it is a king.
func (b *Board) Place(kind Kind, colour Colour, sq Square) {
	b.Set(sq, NewPiece(kind, colour))
	if kind == King {
		b.SetKingSquare(colour, sq)
	}
}

// KingSquare returns the tracked king square for the given colour.
func (b *Board) KingSquare(colour Colour) Square {
	if colour == White {
		return b.WhiteKing
	}
	return b.BlackKing
}

// SetKingSquare updates the tracked king square for the given colour.
func (b *Board) SetKingSquare(colour Colour, sq Square) {
	if colour == White {
		b.WhiteKing = sq
	} else {
		b.BlackKing = sq
	}
}

// LocateKings rescans the grid and resynchronises the tracked king squares.
func (b *Board) LocateKings() {
	b.WhiteKing = Square{Row: -1, Col: -1}
	b.BlackKing = Square{Row: -1, Col: -1}
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if p := b.Squares[row][col]; p.Kind == King {
				b.SetKingSquare(p.Colour, Sq(row, col))
			}
		}
	}
}

// Version returns the mutation counter.
func (b *Board) Version() uint64 {
	return b.version
}

// Count returns the number of pieces of the given colour.
func (b *Board) Count(colour Colour) int {
	count := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if p := b.Squares[row][col]; !p.IsNone() && p.Colour == colour {
				count++
			}
		}
	}
	return count
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// SameGrid reports whether both boards hold the same kind and colour on every square.
func (b *Board) SameGrid(other *Board) bool {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if !b.Squares[row][col].Is(other.Squares[row][col]) {
				return false
			}
		}
	}
	return true
}

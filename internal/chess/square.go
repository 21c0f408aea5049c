package chess

import (
	"math/bits"
	"strings"
)

// Square is a board coordinate. Row 0 is rank '1', Col 0 is file 'a'.
type Square struct {
	Row int
	Col int
}

// Sq is shorthand for Square{Row: row, Col: col}.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// SquareAt builds a square from file and rank characters. ok is false when either
// character is off the board.
func SquareAt(col Col, rank Rank) (sq Square, ok bool) {
	c := ColConvert(col)
	r := RankConvert(rank)
	if c < 0 || r < 0 {
		return Square{}, false
	}
	return Square{Row: r, Col: c}, true
}

// OnBoard reports whether the square lies inside the 8x8 grid.
func (s Square) OnBoard() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// Offset returns the square shifted by the given row and column deltas.
func (s Square) Offset(dRow, dCol int) Square {
	return Square{Row: s.Row + dRow, Col: s.Col + dCol}
}

// String returns the square in coordinate notation, e.g. "e4".
func (s Square) String() string {
	if !s.OnBoard() {
		return "??"
	}
	return string([]byte{byte(ToCol(s.Col)), byte(ToRank(s.Row))})
}

// index returns the bit index used by SquareSet.
func (s Square) index() uint {
	return uint(s.Row*BoardSize + s.Col)
}

// SquareSet is an occupancy grid with one bit per square (bit = row*8 + col).
type SquareSet uint64

// Add returns the set with sq included. Off-board squares are ignored.
func (ss SquareSet) Add(sq Square) SquareSet {
	if !sq.OnBoard() {
		return ss
	}
	return ss | 1<<sq.index()
}

// Has reports whether sq is in the set.
func (ss SquareSet) Has(sq Square) bool {
	if !sq.OnBoard() {
		return false
	}
	return ss&(1<<sq.index()) != 0
}

// Union returns the logical OR of the two sets.
func (ss SquareSet) Union(other SquareSet) SquareSet {
	return ss | other
}

// Empty reports whether no square is set.
func (ss SquareSet) Empty() bool {
	return ss == 0
}

// Count returns the number of squares in the set.
func (ss SquareSet) Count() int {
	return bits.OnesCount64(uint64(ss))
}

// Squares lists the set's squares from a1 upwards, file first.
func (ss SquareSet) Squares() []Square {
	squares := make([]Square, 0, ss.Count())
	for rest := uint64(ss); rest != 0; rest &= rest - 1 {
		i := bits.TrailingZeros64(rest)
		squares = append(squares, Square{Row: i / BoardSize, Col: i % BoardSize})
	}
	return squares
}

// Grid expands the set into a row-major boolean grid.
func (ss SquareSet) Grid() [BoardSize][BoardSize]bool {
	var grid [BoardSize][BoardSize]bool
	for _, sq := range ss.Squares() {
		grid[sq.Row][sq.Col] = true
	}
	return grid
}

// String lists the squares, e.g. "e3 e4".
func (ss SquareSet) String() string {
	names := make([]string, 0, ss.Count())
	for _, sq := range ss.Squares() {
		names = append(names, sq.String())
	}
	return strings.Join(names, " ")
}

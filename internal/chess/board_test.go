package chess

import (
	"testing"
)

func sq(name string) Square {
	s, ok := SquareAt(Col(name[0]), Rank(name[1]))
	if !ok {
		panic("bad square " + name)
	}
	return s
}

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	if n := b.Count(White) + b.Count(Black); n != 0 {
		t.Errorf("NewBoard() has %d pieces, want 0", n)
	}
	if b.WhiteKing.OnBoard() || b.BlackKing.OnBoard() {
		t.Errorf("king squares = %v, %v, want off board", b.WhiteKing, b.BlackKing)
	}
	if b.WhiteWon || b.BlackWon {
		t.Error("new board has a winner")
	}
}

func TestBoardReset(t *testing.T) {
	b := NewBoard()
	b.Reset()

	tests := []struct {
		square string
		want   Piece
	}{
		{"a1", W(Rook)},
		{"b1", W(Knight)},
		{"c1", W(Bishop)},
		{"d1", W(Queen)},
		{"e1", W(King)},
		{"h1", W(Rook)},
		{"e2", W(Pawn)},
		{"e4", Piece{}},
		{"d7", B(Pawn)},
		{"d8", B(Queen)},
		{"e8", B(King)},
		{"g8", B(Knight)},
	}

	for _, tt := range tests {
		t.Run(tt.square, func(t *testing.T) {
			got := b.At(sq(tt.square))
			if !got.Is(tt.want) {
				t.Errorf("At(%s) = %q, want %q", tt.square, got, tt.want)
			}
			if got.HasMoved || got.EnPassantEligible {
				t.Errorf("At(%s) has flags set: %+v", tt.square, got)
			}
		})
	}

	if b.Count(White) != 16 || b.Count(Black) != 16 {
		t.Errorf("Count = %d/%d, want 16/16", b.Count(White), b.Count(Black))
	}
	if b.KingSquare(White) != sq("e1") || b.KingSquare(Black) != sq("e8") {
		t.Errorf("king squares = %v, %v", b.KingSquare(White), b.KingSquare(Black))
	}
}

func TestBoardGet(t *testing.T) {
	b := NewBoard()
	b.Reset()

	tests := []struct {
		name string
		col  Col
		rank Rank
		want Piece
	}{
		{"queen", 'd', '1', W(Queen)},
		{"pawn", 'h', '7', B(Pawn)},
		{"empty", 'c', '5', Piece{}},
		{"file off board", 'i', '1', Piece{}},
		{"rank off board", 'a', '9', Piece{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Get(tt.col, tt.rank); !got.Is(tt.want) {
				t.Errorf("Get(%c, %c) = %q, want %q", tt.col, tt.rank, got, tt.want)
			}
		})
	}
}

func TestBoardWritesBumpVersion(t *testing.T) {
	b := NewBoard()
	start := b.Version()

	b.Set(sq("d4"), W(Knight))
	afterSet := b.Version()
	if afterSet <= start {
		t.Errorf("Set did not bump version: %d -> %d", start, afterSet)
	}

	b.Vacate(sq("d4"))
	if b.Version() <= afterSet {
		t.Errorf("Vacate did not bump version: %d -> %d", afterSet, b.Version())
	}
	if !b.At(sq("d4")).IsNone() {
		t.Errorf("At(d4) = %q after Vacate, want empty", b.At(sq("d4")))
	}

	before := b.Version()
	b.Set(Sq(8, 0), W(Rook))
	if b.Version() != before {
		t.Error("off-board Set bumped version")
	}
	if !b.At(Sq(8, 0)).IsNone() {
		t.Error("off-board square reads as occupied")
	}
}

func TestBoardPlace(t *testing.T) {
	b := NewBoard()
	b.Place(King, Black, sq("g8"))
	b.Place(Rook, White, sq("a1"))

	if b.KingSquare(Black) != sq("g8") {
		t.Errorf("KingSquare(Black) = %v, want g8", b.KingSquare(Black))
	}
	if b.KingSquare(White).OnBoard() {
		t.Errorf("KingSquare(White) = %v, want off board", b.KingSquare(White))
	}
	if got := b.At(sq("a1")); !got.Is(W(Rook)) || got.HasMoved {
		t.Errorf("At(a1) = %+v, want unmoved white rook", got)
	}
}

func TestBoardLocateKings(t *testing.T) {
	b := NewBoard()
	b.Set(sq("b2"), W(King))
	b.Set(sq("h8"), B(King))

	b.LocateKings()

	if b.WhiteKing != sq("b2") || b.BlackKing != sq("h8") {
		t.Errorf("LocateKings() = %v, %v, want b2, h8", b.WhiteKing, b.BlackKing)
	}
}

func TestBoardCopy(t *testing.T) {
	b := NewBoard()
	b.Reset()

	c := b.Copy()
	c.Vacate(sq("e2"))
	c.Set(sq("e4"), W(Pawn))
	c.BlackWon = true

	if !b.At(sq("e2")).Is(W(Pawn)) {
		t.Error("Copy shares squares with the original")
	}
	if b.BlackWon {
		t.Error("Copy shares win flags with the original")
	}
	if b.SameGrid(c) {
		t.Error("SameGrid() = true after modifying the copy")
	}
}

func TestBoardSameGrid(t *testing.T) {
	a := NewBoard()
	a.Reset()
	b := NewBoard()
	b.Reset()

	moved := b.At(sq("a1"))
	moved.HasMoved = true
	b.Set(sq("a1"), moved)

	if !a.SameGrid(b) {
		t.Error("SameGrid() = false, want flags ignored")
	}

	b.Vacate(sq("a1"))
	if a.SameGrid(b) {
		t.Error("SameGrid() = true, want false after a1 emptied")
	}
}

func TestSquare(t *testing.T) {
	tests := []struct {
		name    string
		sq      Square
		want    string
		onBoard bool
	}{
		{"a1", Sq(0, 0), "a1", true},
		{"h8", Sq(7, 7), "h8", true},
		{"e4", Sq(3, 4), "e4", true},
		{"below", Sq(-1, 0), "??", false},
		{"right", Sq(0, 8), "??", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sq.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			if got := tt.sq.OnBoard(); got != tt.onBoard {
				t.Errorf("OnBoard() = %v, want %v", got, tt.onBoard)
			}
		})
	}
}

func TestSquareAt(t *testing.T) {
	tests := []struct {
		col    Col
		rank   Rank
		want   Square
		wantOK bool
	}{
		{'a', '1', Sq(0, 0), true},
		{'e', '4', Sq(3, 4), true},
		{'h', '8', Sq(7, 7), true},
		{'i', '1', Square{}, false},
		{'a', '0', Square{}, false},
		{'A', '1', Square{}, false},
	}

	for _, tt := range tests {
		t.Run(string([]byte{byte(tt.col), byte(tt.rank)}), func(t *testing.T) {
			got, ok := SquareAt(tt.col, tt.rank)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("SquareAt() = %v, %v, want %v, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestSquareOffset(t *testing.T) {
	if got := sq("e4").Offset(1, -1); got != sq("d5") {
		t.Errorf("Offset(1, -1) = %v, want d5", got)
	}
	if got := sq("h8").Offset(1, 0); got.OnBoard() {
		t.Errorf("Offset(1, 0) from h8 = %v, want off board", got)
	}
}

func TestSquareSet(t *testing.T) {
	var set SquareSet
	if !set.Empty() {
		t.Error("zero SquareSet is not empty")
	}

	set = set.Add(sq("e4")).Add(sq("a1")).Add(sq("e3")).Add(sq("e4")).Add(Sq(9, 9))

	if got := set.Count(); got != 3 {
		t.Errorf("Count() = %d, want 3", got)
	}
	if got := set.String(); got != "a1 e3 e4" {
		t.Errorf("String() = %q, want %q", got, "a1 e3 e4")
	}
	if !set.Has(sq("e3")) || set.Has(sq("e5")) || set.Has(Sq(-1, 0)) {
		t.Errorf("Has() wrong for %v", set)
	}

	grid := set.Grid()
	if !grid[0][0] || !grid[2][4] || !grid[3][4] || grid[4][4] {
		t.Errorf("Grid() does not match %v", set)
	}

	other := SquareSet(0).Add(sq("h8")).Add(sq("a1"))
	if got := set.Union(other).String(); got != "a1 e3 e4 h8" {
		t.Errorf("Union() = %q", got)
	}
}

func TestPiece(t *testing.T) {
	tests := []struct {
		name       string
		a, b       Piece
		is         bool
		opposite   bool
		sameColour bool
	}{
		{"same kind and colour", W(Knight), W(Knight), true, false, true},
		{"moved flag ignored", Piece{Kind: Rook, Colour: Black, HasMoved: true}, B(Rook), true, false, true},
		{"different colour", W(Pawn), B(Pawn), false, true, false},
		{"different kind", W(Pawn), W(Queen), false, false, true},
		{"both empty", Piece{}, Piece{Colour: White}, true, false, false},
		{"one empty", Piece{}, B(King), false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Is(tt.b); got != tt.is {
				t.Errorf("Is() = %v, want %v", got, tt.is)
			}
			if got := tt.a.IsOppositeColour(tt.b); got != tt.opposite {
				t.Errorf("IsOppositeColour() = %v, want %v", got, tt.opposite)
			}
			if got := tt.a.IsSameColour(tt.b); got != tt.sameColour {
				t.Errorf("IsSameColour() = %v, want %v", got, tt.sameColour)
			}
		})
	}
}

func TestPieceString(t *testing.T) {
	tests := []struct {
		piece Piece
		want  string
	}{
		{W(Knight), "WN"},
		{B(Queen), "BQ"},
		{W(King), "WK"},
		{B(Pawn), "BP"},
		{Piece{}, "  "},
	}

	for _, tt := range tests {
		if got := tt.piece.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestMoveResetsClock(t *testing.T) {
	tests := []struct {
		name string
		move Move
		want bool
	}{
		{"knight move", Move{Class: QuietMove, Kind: Knight}, false},
		{"pawn push", Move{Class: QuietMove, Kind: Pawn}, false},
		{"capture", Move{Class: CaptureMove, Kind: Bishop}, true},
		{"en passant", Move{Class: EnPassantCapture, Kind: Pawn}, true},
		{"castle", Move{Class: QueensideCastle, Kind: King}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.move.ResetsClock(); got != tt.want {
				t.Errorf("ResetsClock() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKindFromLetter(t *testing.T) {
	for _, k := range []Kind{Pawn, Rook, Knight, Bishop, Queen, King} {
		if got := KindFromLetter(k.Letter()); got != k {
			t.Errorf("KindFromLetter(%c) = %v, want %v", k.Letter(), got, k)
		}
		if got := KindFromLetter(k.Letter() + 'a' - 'A'); got != k {
			t.Errorf("KindFromLetter(lower %c) = %v, want %v", k.Letter(), got, k)
		}
	}
	if got := KindFromLetter('x'); got != None {
		t.Errorf("KindFromLetter('x') = %v, want None", got)
	}
}

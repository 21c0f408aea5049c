package chess

// Piece is the value stored in every board cell. Empty squares hold a piece of
// kind None; a vacated square is assigned the zero Piece, never patched in place.
type Piece struct {
	Kind   Kind
	Colour Colour

	// HasMoved is set on the first move and never cleared. Castling needs it.
	HasMoved bool

	// EnPassantEligible marks a pawn that has just advanced two squares.
	EnPassantEligible bool
}

// NewPiece creates an unmoved piece of the given kind and colour.
func NewPiece(kind Kind, colour Colour) Piece {
	return Piece{Kind: kind, Colour: colour}
}

// W creates a white piece.
func W(kind Kind) Piece {
	return NewPiece(kind, White)
}

// B creates a black piece.
func B(kind Kind) Piece {
	return NewPiece(kind, Black)
}

// IsNone reports whether the cell is empty.
func (p Piece) IsNone() bool {
	return p.Kind == None
}

// Is compares pieces by kind and colour, ignoring the per-cell flags.
// Two empty cells are always equal.
func (p Piece) Is(other Piece) bool {
	if p.IsNone() || other.IsNone() {
		return p.IsNone() && other.IsNone()
	}
	return p.Kind == other.Kind && p.Colour == other.Colour
}

// IsOppositeColour reports whether other is a real piece of the other colour.
func (p Piece) IsOppositeColour(other Piece) bool {
	return !p.IsNone() && !other.IsNone() && p.Colour != other.Colour
}

// IsSameColour reports whether other is a real piece of the same colour.
func (p Piece) IsSameColour(other Piece) bool {
	return !p.IsNone() && !other.IsNone() && p.Colour == other.Colour
}

// String returns the two-letter form used by the board printer, e.g. "WN".
// Empty squares render as "  ".
func (p Piece) String() string {
	if p.IsNone() {
		return "  "
	}
	return string([]byte{p.Colour.Letter(), p.Kind.Letter()})
}

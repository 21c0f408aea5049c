package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Distinct verifies that no two sentinels match each other.
func TestSentinelErrors_Distinct(t *testing.T) {
	sentinels := []error{
		ErrWrongTurn,
		ErrIllegalDestination,
		ErrInvalidCaptureTarget,
		ErrEmptySquare,
		ErrGameOver,
		ErrInvalidNotation,
		ErrInvalidFEN,
		ErrInvalidConfig,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("errors.Is(%v, %v) = true, want false", a, b)
			}
		}
	}
}

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("failed to parse position: %w", ErrInvalidFEN)

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Errorf("errors.Is(wrapped, ErrInvalidFEN) = false, want true")
	}
}

// TestMoveError_Error verifies the error message format
func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *MoveError
		contains []string
		want     string
	}{
		{
			name: "full context",
			err: &MoveError{
				Err:      ErrWrongTurn,
				Ply:      12,
				MoveText: "e7e5",
				From:     "e7",
				To:       "e5",
			},
			contains: []string{"ply 12", "e7e5", "e7-e5", "wrong turn"},
		},
		{
			name: "minimal context",
			err: &MoveError{
				Err: ErrGameOver,
			},
			want: "game is over",
		},
		{
			name: "no underlying error",
			err:  &MoveError{MoveText: "O-O"},
			want: `move "O-O"`,
		},
		{
			name: "empty",
			err:  &MoveError{},
			want: "move error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
				}
			}
			if tt.want != "" && msg != tt.want {
				t.Errorf("MoveError.Error() = %q, want %q", msg, tt.want)
			}
		})
	}
}

// TestMoveError_Unwrap verifies that MoveError properly implements Unwrap
func TestMoveError_Unwrap(t *testing.T) {
	moveErr := &MoveError{
		Err:      Wrap(ErrIllegalDestination, "knight cannot reach e5"),
		Ply:      1,
		MoveText: "g1e5",
	}

	// errors.Is should work through both wrappers
	if !errors.Is(moveErr, ErrIllegalDestination) {
		t.Error("errors.Is(moveErr, ErrIllegalDestination) = false, want true")
	}
}

// TestMoveError_As verifies that errors.As works with MoveError
func TestMoveError_As(t *testing.T) {
	moveErr := &MoveError{
		Err:      ErrInvalidCaptureTarget,
		Ply:      24,
		MoveText: "e2xe3",
	}

	// Wrap it further
	wrapped := fmt.Errorf("replay failed: %w", moveErr)

	var extractedErr *MoveError
	if !errors.As(wrapped, &extractedErr) {
		t.Fatal("errors.As() could not extract MoveError")
	}

	if extractedErr.Ply != 24 {
		t.Errorf("extractedErr.Ply = %d, want 24", extractedErr.Ply)
	}
	if extractedErr.MoveText != "e2xe3" {
		t.Errorf("extractedErr.MoveText = %q, want %q", extractedErr.MoveText, "e2xe3")
	}
}

// TestParseError_Error verifies ParseError formatting
func TestParseError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ParseError
		want string
	}{
		{
			name: "file location",
			err: &ParseError{
				Err:      ErrInvalidNotation,
				File:     "game.txt",
				Line:     7,
				Expected: "coordinate move",
				Got:      "Nf3",
			},
			want: `game.txt:7: expected coordinate move, got "Nf3": invalid move notation`,
		},
		{
			name: "line only",
			err:  &ParseError{Err: ErrInvalidNotation, Line: 4, Got: "zz"},
			want: `line 4: unexpected "zz": invalid move notation`,
		},
		{
			name: "bare error",
			err:  &ParseError{Err: ErrInvalidNotation},
			want: "invalid move notation",
		},
		{
			name: "nothing",
			err:  &ParseError{},
			want: "parse error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ParseError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestParseError_Unwrap verifies ParseError implements Unwrap
func TestParseError_Unwrap(t *testing.T) {
	parseErr := &ParseError{
		Err:  ErrInvalidNotation,
		File: "moves.txt",
		Line: 1,
	}

	if !errors.Is(parseErr, ErrInvalidNotation) {
		t.Error("errors.Is(parseErr, ErrInvalidNotation) = false, want true")
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	original := ErrInvalidFEN
	wrapped := Wrap(original, "parsing FEN string")

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("Wrap should preserve the underlying error")
	}

	msg := wrapped.Error()
	if !containsIgnoreCase(msg, "parsing FEN string") {
		t.Errorf("Wrap should include context, got %q", msg)
	}

	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	original := ErrIllegalDestination
	wrapped := Wrapf(original, "%s cannot reach %s", "Rook", "b2")

	if !errors.Is(wrapped, ErrIllegalDestination) {
		t.Error("Wrapf should preserve the underlying error")
	}

	msg := wrapped.Error()
	if !containsIgnoreCase(msg, "Rook cannot reach b2") {
		t.Errorf("Wrapf should include formatted context, got %q", msg)
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

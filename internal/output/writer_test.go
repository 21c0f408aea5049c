package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// TestTextWriter_WriteGame verifies text writer outputs the move list and result
func TestTextWriter_WriteGame(t *testing.T) {
	s := testutil.MustNewSession(t, "")
	testutil.MustPlay(t, s, "e2e4 e7e5 g1f3")

	var buf bytes.Buffer
	writer := NewTextWriter(&buf)
	if err := writer.WriteGame(s); err != nil {
		t.Fatalf("WriteGame failed: %v", err)
	}
	if err := writer.WriteGame(s); err != nil {
		t.Fatalf("WriteGame failed: %v", err)
	}

	output := buf.String()
	testutil.AssertContains(t, output, "Game "+s.ID.String())
	testutil.AssertContains(t, output, "1. e2e4    e7e5\n")
	if got := strings.Count(output, "2. Ng1f3\n*\n"); got != 2 {
		t.Errorf("record count = %d, want 2", got)
	}
	testutil.AssertContains(t, output, "*\n\nGame ")
}

// TestJSONWriter_WriteGame verifies JSON writer outputs correct format
func TestJSONWriter_WriteGame(t *testing.T) {
	s := testutil.MustNewSession(t, "")
	testutil.MustPlay(t, s, "e2e4 d7d5 e4xd5")

	var buf bytes.Buffer
	writer := NewJSONWriter(&buf)
	if err := writer.WriteGame(s); err != nil {
		t.Fatalf("WriteGame failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Error("batch writer wrote before Flush")
	}

	if err := writer.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	var got JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}

	want := JSONOutput{Games: []*JSONGame{{
		ID:       s.ID.String(),
		FinalFEN: "rnbqkbnr/ppp1pppp/8/3P4/8/8/PPPP1PPP/RNBQKBNR b KQkq - 0 2",
		Result:   "*",
		PlyCount: 3,
		Moves: []JSONMove{
			{MoveNumber: 1, Color: "white", Text: "e2e4", From: "e2", To: "e4", Piece: "pawn"},
			{Color: "black", Text: "d7d5", From: "d7", To: "d5", Piece: "pawn"},
			{MoveNumber: 2, Color: "white", Text: "e4xd5", From: "e4", To: "d5", Piece: "pawn", Captured: "pawn"},
		},
	}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("JSON mismatch (-want +got):\n%s", diff)
	}
}

// TestJSONWriter_Snapshot verifies buffered records ignore later moves
func TestJSONWriter_Snapshot(t *testing.T) {
	s := testutil.MustNewSession(t, "")
	testutil.MustPlay(t, s, "e2e4")

	var buf bytes.Buffer
	writer := NewJSONWriter(&buf)
	writer.WriteGame(s)
	testutil.MustPlay(t, s, "e7e5")
	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	var got JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(got.Games) != 1 || got.Games[0].PlyCount != 1 {
		t.Errorf("buffered record = %+v, want one game of 1 ply", got.Games)
	}
}

// TestJSONWriterSingle verifies single mode writes each game immediately
func TestJSONWriterSingle(t *testing.T) {
	s := testutil.MustNewSession(t, "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1")
	testutil.MustPlay(t, s, "O-O O-O-O")

	var buf bytes.Buffer
	writer := NewJSONWriterSingle(&buf)
	if err := writer.WriteGame(s); err != nil {
		t.Fatalf("WriteGame failed: %v", err)
	}

	var got JSONGame
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	want := JSONGame{
		InitialFEN: "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
		FinalFEN:   "2kr3r/pppppppp/8/8/8/8/PPPPPPPP/R4RK1 w - - 0 2",
		Result:     "*",
		PlyCount:   2,
		Moves: []JSONMove{
			{MoveNumber: 1, Color: "white", Text: "O-O", From: "e1", To: "g1", Piece: "king", Castle: "kingside"},
			{Color: "black", Text: "O-O-O", From: "e8", To: "c8", Piece: "king", Castle: "queenside"},
		},
	}
	if diff := cmp.Diff(want, got, cmpopts.IgnoreFields(JSONGame{}, "ID")); diff != "" {
		t.Errorf("JSON mismatch (-want +got):\n%s", diff)
	}

	if err := writer.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
}

// TestGameWriter_Interface verifies that writers implement the interface
func TestGameWriter_Interface(t *testing.T) {
	var buf bytes.Buffer

	var _ GameWriter = NewTextWriter(&buf)
	var _ GameWriter = NewJSONWriter(&buf)

	if _, ok := NewGameWriter(&buf, true).(*JSONWriter); !ok {
		t.Error("NewGameWriter(json) should return a JSON writer")
	}
	if _, ok := NewGameWriter(&buf, false).(*TextWriter); !ok {
		t.Error("NewGameWriter(text) should return a text writer")
	}
}

// TestJSONWriter_EmptyFlush verifies Flush with nothing buffered writes nothing
func TestJSONWriter_EmptyFlush(t *testing.T) {
	var buf bytes.Buffer
	writer := NewJSONWriter(&buf)
	if err := writer.Flush(); err != nil {
		t.Errorf("Flush failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("empty Flush wrote %q", buf.String())
	}
}

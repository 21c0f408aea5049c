// Package testutil provides shared test utilities for the chess-rules-go project.
// These utilities reduce code duplication across test files and provide
// consistent test setup helpers.
package testutil

import (
	"io"
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/notation"
)

// QuietConfig returns a configuration that writes nothing and keeps no move log.
func QuietConfig() *config.Config {
	return config.NewConfigBuilder().
		WithVerbosity(0).
		WithOutput(io.Discard).
		WithLogFile(io.Discard).
		WithoutMoveLog().
		Build()
}

// PlayTestGame starts a session from fen (the standard position when empty)
// and plays the space-separated moves. It returns nil if the FEN is invalid
// or any move is rejected.
func PlayTestGame(fen, moves string) *game.Session {
	s, err := newTestSession(fen)
	if err != nil {
		return nil
	}
	if Play(s, moves) != nil {
		return nil
	}
	return s
}

// Play applies the space-separated moves to s, stopping at the first failure.
func Play(s *game.Session, moves string) error {
	for _, text := range strings.Fields(moves) {
		cmd, err := notation.Parse(text)
		if err != nil {
			return err
		}
		if err := s.Apply(cmd); err != nil {
			return err
		}
	}
	return nil
}

// MustNewSession starts a session from fen, or the standard position when fen
// is empty. It calls t.Fatal if the FEN is invalid.
func MustNewSession(t testing.TB, fen string) *game.Session {
	t.Helper()
	s, err := newTestSession(fen)
	if err != nil {
		t.Fatalf("NewSessionFromFEN(%q) error: %v", fen, err)
	}
	return s
}

// MustPlay applies the space-separated moves to s.
// It calls t.Fatal on the first rejected move.
func MustPlay(t testing.TB, s *game.Session, moves string) {
	t.Helper()
	if err := Play(s, moves); err != nil {
		t.Fatalf("playing %q: %v", moves, err)
	}
}

func newTestSession(fen string) (*game.Session, error) {
	if fen == "" {
		return game.NewSession(QuietConfig()), nil
	}
	return game.NewSessionFromFEN(QuietConfig(), fen)
}

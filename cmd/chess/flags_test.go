package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

// ---------------------------------------------------------------------------
// applyRulesFlags
// ---------------------------------------------------------------------------

func TestApplyRulesFlags(t *testing.T) {
	t.Run("defaults leave rules off", func(t *testing.T) {
		cfg := config.NewConfig()
		applyRulesFlags(cfg)
		if cfg.Rules.StrictCastling || cfg.Rules.ExtendedInsufficientMaterial {
			t.Errorf("Rules = %+v, want zero value", cfg.Rules)
		}
	})

	t.Run("strict castling", func(t *testing.T) {
		defer saveRestoreBool(strictCastling, true)()
		cfg := config.NewConfig()
		applyRulesFlags(cfg)
		if !cfg.Rules.StrictCastling {
			t.Error("StrictCastling = false, want true")
		}
	})

	t.Run("extended material", func(t *testing.T) {
		defer saveRestoreBool(extendedMaterial, true)()
		cfg := config.NewConfig()
		applyRulesFlags(cfg)
		if !cfg.Rules.ExtendedInsufficientMaterial {
			t.Error("ExtendedInsufficientMaterial = false, want true")
		}
	})
}

// ---------------------------------------------------------------------------
// applyMoveLogFlags
// ---------------------------------------------------------------------------

func TestApplyMoveLogFlags(t *testing.T) {
	t.Run("directory", func(t *testing.T) {
		defer saveRestoreString(moveLogDir, "records")()
		cfg := config.NewConfig()
		applyMoveLogFlags(cfg)
		if cfg.MoveLog.Dir != "records" {
			t.Errorf("MoveLog.Dir = %q, want %q", cfg.MoveLog.Dir, "records")
		}
		if cfg.MoveLog.Disabled {
			t.Error("MoveLog.Disabled = true, want false")
		}
	})

	t.Run("disabled", func(t *testing.T) {
		defer saveRestoreBool(noMoveLog, true)()
		cfg := config.NewConfig()
		applyMoveLogFlags(cfg)
		if !cfg.MoveLog.Disabled {
			t.Error("MoveLog.Disabled = false, want true")
		}
	})
}

// ---------------------------------------------------------------------------
// applyFlags
// ---------------------------------------------------------------------------

func TestApplyFlags(t *testing.T) {
	t.Run("verbosity and start position", func(t *testing.T) {
		defer saveRestoreInt(verbosity, 2)()
		defer saveRestoreString(startFEN, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")()
		cfg := config.NewConfig()
		applyFlags(cfg)
		if cfg.Verbosity != 2 {
			t.Errorf("Verbosity = %d, want 2", cfg.Verbosity)
		}
		if cfg.StartFEN != "4k3/8/8/8/8/8/8/4K3 w - - 0 1" {
			t.Errorf("StartFEN = %q", cfg.StartFEN)
		}
	})

	t.Run("quiet wins over verbosity", func(t *testing.T) {
		defer saveRestoreInt(verbosity, 2)()
		defer saveRestoreBool(quiet, true)()
		cfg := config.NewConfig()
		applyFlags(cfg)
		if cfg.Verbosity != 0 {
			t.Errorf("Verbosity = %d, want 0", cfg.Verbosity)
		}
	})
}

// ---------------------------------------------------------------------------
// optionsFromFlags
// ---------------------------------------------------------------------------

func TestOptionsFromFlags(t *testing.T) {
	tests := []struct {
		name   string
		output string
		json   bool
		replay string
		want   runOptions
	}{
		{"interactive", "", false, "", runOptions{workers: 3}},
		{"output file", "game.txt", false, "", runOptions{workers: 3, record: true}},
		{"json", "", true, "", runOptions{workers: 3, record: true, asJSON: true}},
		{"replay", "", false, "moves.txt", runOptions{workers: 3, replay: "moves.txt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreString(outputFile, tt.output)()
			defer saveRestoreBool(jsonOutput, tt.json)()
			defer saveRestoreString(replayPath, tt.replay)()
			defer saveRestoreInt(workers, 3)()

			got := optionsFromFlags()
			if diff := cmp.Diff(tt.want, got, cmp.AllowUnexported(runOptions{}), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("optionsFromFlags() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	// Game setup
	startFEN   = flag.String("fen", "", "Start from this FEN position instead of the standard one")
	replayPath = flag.String("replay", "", "Play the moves in this file (one per line) instead of reading stdin")
	workers    = flag.Int("workers", 0, "Number of games replayed at once when files are given as arguments (0 = one per CPU core)")

	// Rule variations
	strictCastling   = flag.Bool("strict-castling", false, "Forbid castling out of, through or into check")
	extendedMaterial = flag.Bool("extended-material", false, "Also draw K+B v K, K+N v K and same-colour bishops")

	// Move log
	moveLogDir = flag.String("logdir", config.DefaultMoveLogDir, "Directory for move log files")
	noMoveLog  = flag.Bool("nolog", false, "Don't write a move log")

	// Output options
	outputFile = flag.String("o", "", "Write the game record to this file (default: stdout)")
	jsonOutput = flag.Bool("json", false, "Write the game record in JSON format")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	verbosity = flag.Int("v", 1, "Diagnostic level: 0 silent, 1 results, 2 every move")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no diagnostics)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyRulesFlags(cfg)
	applyMoveLogFlags(cfg)

	cfg.StartFEN = *startFEN
	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
}

// applyRulesFlags configures the optional rule variations.
func applyRulesFlags(cfg *config.Config) {
	cfg.Rules.StrictCastling = *strictCastling
	cfg.Rules.ExtendedInsufficientMaterial = *extendedMaterial
}

// applyMoveLogFlags configures where moves are logged.
func applyMoveLogFlags(cfg *config.Config) {
	cfg.MoveLog.Dir = *moveLogDir
	cfg.MoveLog.Disabled = *noMoveLog
}

// chess is a two-player chess game for the terminal that enforces the rules
// and records every game in a move log.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/movelog"
	"github.com/lgbarn/chess-rules-go/internal/output"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-rules-go version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts := optionsFromFlags()
	if len(opts.files) > 0 {
		if err := replayFiles(cfg, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	session, err := newSession(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	moveLog, err := openMoveLog(cfg, session, time.Now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runErr := runGame(cfg, session, moveLog, opts, os.Stdin, os.Stdout)

	if moveLog != nil {
		moveLog.Close() //nolint:errcheck,gosec // G104: cleanup on exit
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}

// runOptions selects where moves come from and what is written afterwards.
type runOptions struct {
	replay  string   // replay file; empty for interactive play
	files   []string // batch replay files from the command line
	workers int
	record  bool // write the game record after interactive play
	asJSON  bool
}

// optionsFromFlags builds the run options from command-line flags.
func optionsFromFlags() runOptions {
	return runOptions{
		replay:  *replayPath,
		files:   flag.Args(),
		workers: *workers,
		record:  *outputFile != "" || *jsonOutput,
		asJSON:  *jsonOutput,
	}
}

// runGame plays the game from the replay file, or interactively on in and
// display, then writes the game record. Replays always produce a record.
func runGame(cfg *config.Config, session *game.Session, moveLog *movelog.Logger, opts runOptions, in io.Reader, display io.Writer) error {
	if opts.replay != "" {
		file, err := os.Open(opts.replay) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			return fmt.Errorf("opening replay file: %w", err)
		}
		defer file.Close()

		p := NewPlayer(cfg, session, io.Discard, moveLog)
		if err := p.RunReplay(file, opts.replay); err != nil {
			return err
		}
		return writeRecord(cfg, session, opts.asJSON)
	}

	p := NewPlayer(cfg, session, display, moveLog)
	if err := p.RunInteractive(in); err != nil {
		return err
	}
	if opts.record {
		return writeRecord(cfg, session, opts.asJSON)
	}
	return nil
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

// writeRecord writes the finished game to cfg.OutputFile in the chosen format.
func writeRecord(cfg *config.Config, session *game.Session, asJSON bool) error {
	writer := output.NewGameWriter(cfg.OutputFile, asJSON)
	if err := writer.WriteGame(session); err != nil {
		return err
	}
	return writer.Close()
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess [options] [replay files...]\n\n")
	fmt.Fprintf(os.Stderr, "A two-player chess game. Moves are read from stdin, or from -replay.\n")
	fmt.Fprintf(os.Stderr, "Replay files given as arguments are played in parallel and written as records.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nMove notation:\n")
	fmt.Fprintf(os.Stderr, "  e2e4   Move the piece on e2 to the empty square e4\n")
	fmt.Fprintf(os.Stderr, "  e4xd5  Capture with the piece on e4 on d5 (also en passant)\n")
	fmt.Fprintf(os.Stderr, "  O-O    Castle kingside\n")
	fmt.Fprintf(os.Stderr, "  O-O-O  Castle queenside\n")
	fmt.Fprintf(os.Stderr, "  exit   Quit the game\n")
}

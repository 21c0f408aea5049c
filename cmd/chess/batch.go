// batch.go - Parallel replay of several move files
package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// replayFiles replays every file in opts.files in its own session and writes
// one record per successful replay, in argument order. Batch games keep no
// move log. Failed replays are reported on the log and skipped.
func replayFiles(cfg *config.Config, opts runOptions) error {
	numWorkers := opts.workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if numWorkers > len(opts.files) {
		numWorkers = len(opts.files)
	}

	// Sessions share no writers across goroutines.
	gameCfg := *cfg
	gameCfg.Verbosity = 0
	gameCfg.LogFile = io.Discard
	gameCfg.OutputFile = io.Discard

	results := worker.Run(opts.files, func(job worker.Job) worker.Result {
		return replayFile(&gameCfg, job)
	}, worker.WithWorkers(numWorkers), worker.WithBufferSize(len(opts.files)))

	var writer output.GameWriter
	if opts.asJSON {
		writer = output.NewJSONWriter(cfg.OutputFile)
	} else {
		writer = output.NewTextWriter(cfg.OutputFile)
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			cfg.Logf(1, "%v\n", r.Err)
			continue
		}
		cfg.Logf(1, "%s: %s\n", r.Name, output.ResultCode(r.Session))
		if err := writer.WriteGame(r.Session); err != nil {
			return err
		}
	}
	if err := writer.Close(); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d replays failed", failed, len(results))
	}
	return nil
}

// replayFile runs on a worker goroutine.
func replayFile(cfg *config.Config, job worker.Job) worker.Result {
	result := worker.Result{Index: job.Index, Name: job.Name}

	file, err := os.Open(job.Name) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		result.Err = fmt.Errorf("opening replay file: %w", err)
		return result
	}
	defer file.Close()

	s, err := newSession(cfg)
	if err != nil {
		result.Err = err
		return result
	}
	result.Session = s
	result.Err = NewPlayer(cfg, s, io.Discard, nil).RunReplay(file, job.Name)
	return result
}

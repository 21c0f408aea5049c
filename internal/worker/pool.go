// Package worker replays independent games on a pool of goroutines.
package worker

import (
	"sort"
	"sync"

	"github.com/lgbarn/chess-rules-go/internal/game"
)

// Job names one game to replay.
type Job struct {
	Index int // Position in the caller's list, used to restore order
	Name  string
}

// Result is the outcome of a single job.
type Result struct {
	Index   int
	Name    string
	Session *game.Session // Final state; may be partial when Err is set
	Err     error
}

// ReplayFunc replays one job. It runs on a worker goroutine, so it must not
// share a session or writer with other jobs.
type ReplayFunc func(job Job) Result

// Pool runs jobs on a fixed number of goroutines.
type Pool struct {
	numWorkers int
	bufferSize int
	jobs       chan Job
	results    chan Result
	replay     ReplayFunc
	wg         sync.WaitGroup
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the job and result channel capacity.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool. Defaults to 1 worker and a buffer of 10.
func NewPool(replay ReplayFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers: 1,
		bufferSize: 10,
		replay:     replay,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.jobs = make(chan Job, p.bufferSize)
	p.results = make(chan Result, p.bufferSize)
	return p
}

// Start launches the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.work()
	}
}

func (p *Pool) work() {
	defer p.wg.Done()
	for job := range p.jobs {
		p.results <- p.replay(job)
	}
}

// Submit queues a job. It blocks while the job buffer is full.
func (p *Pool) Submit(job Job) {
	p.jobs <- job
}

// Close stops accepting jobs, waits for the workers and then closes Results.
func (p *Pool) Close() {
	close(p.jobs)
	p.wg.Wait()
	close(p.results)
}

// Results returns the channel results arrive on, in completion order.
func (p *Pool) Results() <-chan Result {
	return p.results
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Run replays every named game and returns the results in the order of names.
func Run(names []string, replay ReplayFunc, opts ...PoolOption) []Result {
	pool := NewPool(replay, opts...)
	pool.Start()

	go func() {
		for i, name := range names {
			pool.Submit(Job{Index: i, Name: name})
		}
		pool.Close()
	}()

	results := make([]Result, 0, len(names))
	for r := range pool.Results() {
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Index < results[j].Index
	})
	return results
}

// Package workerpool runs CPU-bound work on a fixed set of goroutines fed by
// a bounded queue.
package workerpool

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"hashsvc/config"
	domainerrors "hashsvc/internal/domain/errors"
	"hashsvc/internal/errors"

	"go.uber.org/fx"
)

// Params defines the parameters required for the worker pool
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// Pool executes submitted jobs on a fixed number of workers.
type Pool struct {
	logger  *slog.Logger
	workers int
	jobs    chan func()

	mu      sync.RWMutex
	started bool
	closed  bool
	wg      sync.WaitGroup
}

// New builds the pool from config and ties it to the fx lifecycle.
func New(params Params) *Pool {
	p := NewPool(params.Config.Hashing.Workers, params.Config.Hashing.QueueSize, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			p.Start()

			return nil
		},
		OnStop: p.Stop,
	})

	return p
}

// NewPool returns a pool that is not yet running. Non-positive sizes are
// raised to one worker and an unbuffered queue.
func NewPool(workers, queueSize int, logger *slog.Logger) *Pool {
	if workers <= 0 {
		workers = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}

	return &Pool{
		logger:  logger,
		workers: workers,
		jobs:    make(chan func(), queueSize),
	}
}

// Start launches the workers. Calling it again is a no-op.
func (p *Pool) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started || p.closed {
		return
	}
	p.started = true

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}

	p.logger.Info("Worker pool started",
		slog.Int("workers", p.workers),
		slog.Int("queue_size", cap(p.jobs)),
	)
}

// Stop refuses new jobs, lets the workers finish everything already queued
// and waits for them until ctx is done.
func (p *Pool) Stop(ctx context.Context) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()

		return nil
	}
	p.closed = true
	close(p.jobs)
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.logger.Info("Worker pool stopped")

		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "worker pool drain")
	}
}

// Submit queues fn, blocking until a slot frees up or ctx is done. It returns
// ErrPoolUnavailable when the pool is stopped or the wait is abandoned.
func (p *Pool) Submit(ctx context.Context, fn func()) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return errors.Wrap(domainerrors.ErrPoolUnavailable, "pool stopped")
	}

	select {
	case p.jobs <- fn:
		return nil
	case <-ctx.Done():
		return errors.Wrapf(domainerrors.ErrPoolUnavailable, "queue wait: %v", ctx.Err())
	}
}

// Run executes fn on the pool and waits for its result. A job that has
// started always runs to completion; if ctx ends first its result is
// discarded.
func Run[T any](ctx context.Context, p *Pool, fn func() (T, error)) (T, error) {
	type outcome struct {
		value T
		err   error
	}

	// Buffered so a worker never blocks on a caller that has gone away.
	resultCh := make(chan outcome, 1)

	err := p.Submit(ctx, func() {
		var out outcome
		defer func() {
			if r := recover(); r != nil {
				out = outcome{err: errors.Errorf("job panicked: %v", r)}
			}
			resultCh <- out
		}()

		out.value, out.err = fn()
	})
	if err != nil {
		var zero T

		return zero, err
	}

	select {
	case out := <-resultCh:
		return out.value, out.err
	case <-ctx.Done():
		var zero T

		return zero, errors.Wrapf(domainerrors.ErrPoolUnavailable, "result wait: %v", ctx.Err())
	}
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()

	for job := range p.jobs {
		p.execute(id, job)
	}
}

func (p *Pool) execute(id int, job func()) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("Worker recovered from panic",
				slog.Int("worker", id),
				slog.String("panic", fmt.Sprint(r)),
			)
		}
	}()

	job()
}

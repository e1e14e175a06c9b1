package workerpool

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"hashsvc/config"
	domainerrors "hashsvc/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func startedPool(t *testing.T, workers, queueSize int) *Pool {
	t.Helper()

	p := NewPool(workers, queueSize, discardLogger())
	p.Start()
	t.Cleanup(func() {
		_ = p.Stop(context.Background())
	})

	return p
}

func TestRun_ReturnsValue(t *testing.T) {
	p := startedPool(t, 2, 2)

	got, err := Run(context.Background(), p, func() (string, error) {
		return "done", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "done", got)
}

func TestRun_PropagatesError(t *testing.T) {
	p := startedPool(t, 1, 0)
	boom := errors.New("boom")

	_, err := Run(context.Background(), p, func() (int, error) {
		return 0, boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestRun_RecoversPanic(t *testing.T) {
	p := startedPool(t, 1, 0)

	_, err := Run(context.Background(), p, func() (bool, error) {
		panic("bad job")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad job")

	// The worker survives the panic.
	ok, err := Run(context.Background(), p, func() (bool, error) { return true, nil })
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSubmit_CancelledWhileQueueFull(t *testing.T) {
	// Never started, unbuffered: no slot will ever free up.
	p := NewPool(1, 0, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := p.Submit(ctx, func() {})
	assert.True(t, errors.Is(err, domainerrors.ErrPoolUnavailable))
}

func TestSubmit_AfterStop(t *testing.T) {
	p := NewPool(1, 1, discardLogger())
	p.Start()
	require.NoError(t, p.Stop(context.Background()))

	err := p.Submit(context.Background(), func() {})
	assert.True(t, errors.Is(err, domainerrors.ErrPoolUnavailable))

	_, err = Run(context.Background(), p, func() (int, error) { return 1, nil })
	assert.True(t, errors.Is(err, domainerrors.ErrPoolUnavailable))
}

func TestStop_DrainsQueuedJobs(t *testing.T) {
	p := NewPool(1, 4, discardLogger())

	var ran atomic.Int32
	for i := 0; i < 4; i++ {
		require.NoError(t, p.Submit(context.Background(), func() { ran.Add(1) }))
	}

	p.Start()
	require.NoError(t, p.Stop(context.Background()))
	assert.Equal(t, int32(4), ran.Load())
}

func TestStartStop_Idempotent(t *testing.T) {
	p := NewPool(2, 0, discardLogger())
	p.Start()
	p.Start()

	require.NoError(t, p.Stop(context.Background()))
	require.NoError(t, p.Stop(context.Background()))
}

func TestRun_CallerLeavesRunningJobFinishes(t *testing.T) {
	p := startedPool(t, 1, 0)

	started := make(chan struct{})
	release := make(chan struct{})
	var finished atomic.Bool

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		_, err := Run(ctx, p, func() (int, error) {
			close(started)
			<-release
			finished.Store(true)

			return 1, nil
		})
		errCh <- err
	}()

	<-started
	cancel()

	err := <-errCh
	assert.True(t, errors.Is(err, domainerrors.ErrPoolUnavailable))

	close(release)
	require.NoError(t, p.Stop(context.Background()))
	assert.True(t, finished.Load())
}

func TestStop_HonoursDeadline(t *testing.T) {
	p := NewPool(1, 0, discardLogger())
	p.Start()

	release := make(chan struct{})
	started := make(chan struct{})
	require.NoError(t, p.Submit(context.Background(), func() {
		close(started)
		<-release
	}))
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := p.Stop(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	close(release)
}

func TestNew_RunsOnLifecycle(t *testing.T) {
	cfg := config.Default()
	cfg.Hashing.Workers = 4
	cfg.Hashing.QueueSize = 8

	lc := fxtest.NewLifecycle(t)
	p := New(Params{Lc: lc, Config: cfg, Logger: discardLogger()})
	lc.RequireStart()

	var (
		wg      sync.WaitGroup
		total   atomic.Int64
		workers = 32
	)
	for i := 1; i <= workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()

			v, err := Run(context.Background(), p, func() (int, error) { return n, nil })
			assert.NoError(t, err)
			total.Add(int64(v))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int64(workers*(workers+1)/2), total.Load())
	lc.RequireStop()
}

// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"hashsvc/config"
	deliverycontext "hashsvc/internal/delivery/context"
	"hashsvc/internal/domain/entity"
	domainerrors "hashsvc/internal/domain/errors"
	"hashsvc/internal/domain/service"
	"hashsvc/internal/errors"
	"hashsvc/internal/infra/workerpool"
	"hashsvc/internal/usecase"
)

// hashingService implements the HashingUsecase interface.
type hashingService struct {
	engine      service.HashEngine
	pool        *workerpool.Pool
	defaultCost int
	logger      *slog.Logger
}

// NewHashingService is the constructor for hashingService.
func NewHashingService(
	engine service.HashEngine,
	pool *workerpool.Pool,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.HashingUsecase {
	return &hashingService{
		engine:      engine,
		pool:        pool,
		defaultCost: cfg.Hashing.DefaultCost,
		logger:      logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *hashingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Hash computes a fresh artifact on the worker pool.
func (srv *hashingService) Hash(ctx context.Context, job entity.HashJob) (string, error) {
	spec := entity.ParseHashSpec(job.HashingAlgorithm, srv.defaultCost)
	attrs := []any{
		slog.String("algorithm", spec.Algorithm.String()),
		slog.Int("cost", spec.Cost),
	}

	start := time.Now()
	artifact, err := workerpool.Run(ctx, srv.pool, func() (string, error) {
		return srv.engine.Compute(job.PlainText, spec)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to compute hash", append(attrs, slog.Any("error", err))...)

		return "", srv.mapError(err)
	}

	srv.log(ctx).Debug("Computed hash", append(attrs, slog.Duration("duration", time.Since(start)))...)

	return artifact, nil
}

// Match verifies a plaintext against an artifact on the worker pool.
func (srv *hashingService) Match(ctx context.Context, job entity.VerifyJob) (bool, error) {
	start := time.Now()
	matches, err := workerpool.Run(ctx, srv.pool, func() (bool, error) {
		return srv.engine.Verify(job.PlainText, job.Hash)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to verify hash", slog.Any("error", err))

		return false, srv.mapError(err)
	}

	srv.log(ctx).Debug("Verified hash",
		slog.Bool("matches", matches),
		slog.Duration("duration", time.Since(start)),
	)

	return matches, nil
}

// Inspect only parses the artifact, so it runs inline.
func (srv *hashingService) Inspect(ctx context.Context, artifact string) (entity.ArtifactInfo, error) {
	info, err := srv.engine.Inspect(artifact)
	if err != nil {
		srv.log(ctx).Error("Failed to inspect hash", slog.Any("error", err))

		return entity.ArtifactInfo{}, srv.mapError(err)
	}

	return info, nil
}

func (srv *hashingService) Algorithms(_ context.Context) usecase.AlgorithmCatalog {
	return usecase.AlgorithmCatalog{
		Algorithms:  srv.engine.Algorithms(),
		DefaultCost: srv.defaultCost,
	}
}

// mapError keeps engine AppErrors as they are and turns pool rejections into
// a 503. Anything else becomes an opaque internal error.
func (srv *hashingService) mapError(err error) error {
	if errors.Is(err, domainerrors.ErrPoolUnavailable) {
		return errors.Join(domainerrors.ErrServiceUnavailable, err)
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return errors.Join(domainerrors.ErrInternalError, err)
}

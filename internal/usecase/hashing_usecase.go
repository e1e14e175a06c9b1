package usecase

import (
	"context"

	"hashsvc/internal/domain/entity"
)

// AlgorithmCatalog lists what callers may request.
type AlgorithmCatalog struct {
	Algorithms  []entity.AlgorithmInfo
	DefaultCost int
}

// HashingUsecase defines the interface for password hashing use cases
type HashingUsecase interface {
	// Hash resolves the job's algorithm identifier and returns a new artifact
	Hash(ctx context.Context, job entity.HashJob) (string, error)

	// Match reports whether the job's plaintext produced its artifact
	Match(ctx context.Context, job entity.VerifyJob) (bool, error)

	// Inspect returns the algorithm and cost embedded in an artifact
	Inspect(ctx context.Context, artifact string) (entity.ArtifactInfo, error)

	// Algorithms lists the supported algorithms and the default cost
	Algorithms(ctx context.Context) AlgorithmCatalog
}

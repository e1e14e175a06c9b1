// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import "hashsvc/internal/domain/entity"

// PasswordHasher is a single adaptive hashing primitive.
// Implementations must be immutable and safe for concurrent use.
type PasswordHasher interface {
	// Algorithm reports which primitive this hasher implements.
	Algorithm() entity.Algorithm

	// Hash produces a self-describing artifact with a fresh salt.
	Hash(plainText string, cost int) (string, error)

	// Verify recomputes the digest with the parameters embedded in artifact
	// and compares it in constant time.
	Verify(plainText, artifact string) (bool, error)

	// Inspect parses the embedded parameters without hashing.
	Inspect(artifact string) (entity.ArtifactInfo, error)

	// Recognizes reports whether artifact carries this hasher's prefix.
	Recognizes(artifact string) bool
}

// HashEngine dispatches to the PasswordHasher for an algorithm or artifact.
type HashEngine interface {
	// Compute hashes plainText per spec. Failures are *errors.HashComputationError.
	Compute(plainText string, spec entity.HashSpec) (string, error)

	// Verify checks plainText against artifact. Structural problems are
	// *errors.ArtifactMalformedError, never a false result.
	Verify(plainText, artifact string) (bool, error)

	// Inspect returns the algorithm and cost embedded in artifact.
	Inspect(artifact string) (entity.ArtifactInfo, error)

	// Algorithms lists the registered algorithms and their cost ranges.
	Algorithms() []entity.AlgorithmInfo
}

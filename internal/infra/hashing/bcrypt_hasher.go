// Package hashing provides the concrete password hashing primitives and the
// engine that dispatches between them.
package hashing

import (
	"strings"

	"hashsvc/internal/domain/entity"
	domainerrors "hashsvc/internal/domain/errors"
	"hashsvc/internal/domain/service"
	"hashsvc/internal/errors"

	"golang.org/x/crypto/bcrypt"
)

// bcryptArtifactSize is the length of a Modular Crypt Format bcrypt hash.
const bcryptArtifactSize = 60

// bcryptMaxPlainText is the byte limit bcrypt places on its input.
const bcryptMaxPlainText = 72

var bcryptPrefixes = []string{"$2a$", "$2b$", "$2y$"}

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct{}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher() service.PasswordHasher {
	return &bcryptHasher{}
}

func (h *bcryptHasher) Algorithm() entity.Algorithm {
	return entity.AlgorithmBcrypt
}

// Hash generates a salted hash from a plaintext using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(plainText string, cost int) (string, error) {
	if !h.Algorithm().CostRange().Contains(cost) {
		return "", errors.Wrapf(domainerrors.ErrCostOutOfRange, "bcrypt cost %d", cost)
	}
	if len(plainText) > bcryptMaxPlainText {
		return "", errors.Wrapf(domainerrors.ErrPlainTextTooLong, "bcrypt accepts at most %d bytes", bcryptMaxPlainText)
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(plainText), cost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt.GenerateFromPassword")
	}

	return string(bytes), nil
}

// Verify compares a plaintext with a bcrypt hash.
func (h *bcryptHasher) Verify(plainText, artifact string) (bool, error) {
	if _, err := h.Inspect(artifact); err != nil {
		return false, err
	}

	err := bcrypt.CompareHashAndPassword([]byte(artifact), []byte(plainText))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		// Salt or digest failed to decode.
		return false, errors.Join(domainerrors.ErrArtifactMalformed, err)
	}
}

// Inspect extracts the work factor from a bcrypt hash.
func (h *bcryptHasher) Inspect(artifact string) (entity.ArtifactInfo, error) {
	if !h.Recognizes(artifact) {
		return entity.ArtifactInfo{}, errors.Wrap(domainerrors.ErrUnsupportedArtifact, "not a bcrypt hash")
	}
	if len(artifact) != bcryptArtifactSize {
		return entity.ArtifactInfo{}, errors.Wrapf(domainerrors.ErrArtifactMalformed, "bcrypt hash must be %d bytes", bcryptArtifactSize)
	}

	cost, err := bcrypt.Cost([]byte(artifact))
	if err != nil {
		return entity.ArtifactInfo{}, errors.Join(domainerrors.ErrArtifactMalformed, err)
	}

	return entity.ArtifactInfo{Algorithm: entity.AlgorithmBcrypt, Cost: cost}, nil
}

func (h *bcryptHasher) Recognizes(artifact string) bool {
	for _, prefix := range bcryptPrefixes {
		if strings.HasPrefix(artifact, prefix) {
			return true
		}
	}

	return false
}

package hashing

import (
	"testing"

	"hashsvc/config"
	"hashsvc/internal/domain/entity"
	domainerrors "hashsvc/internal/domain/errors"
	"hashsvc/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) service.HashEngine {
	t.Helper()

	return NewEngine(NewBcryptHasher(), newTestScrypt(t), newTestArgon2id(t))
}

func TestNew_FromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Hashing.Argon2.Memory = 64

	engine, err := New(Params{Config: cfg})
	require.NoError(t, err)

	names := make([]entity.Algorithm, 0, 3)
	for _, info := range engine.Algorithms() {
		names = append(names, info.Algorithm)
		assert.Equal(t, info.Algorithm.CostRange(), info.CostRange)
	}
	assert.Equal(t, entity.Algorithms(), names)
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Hashing.Scrypt.R = 1000

	_, err := New(Params{Config: cfg})
	assert.Error(t, err)
}

func TestEngine_RoundTripEveryAlgorithm(t *testing.T) {
	engine := newTestEngine(t)

	specs := []entity.HashSpec{
		{Algorithm: entity.AlgorithmBcrypt, Cost: 4},
		{Algorithm: entity.AlgorithmScrypt, Cost: 4},
		{Algorithm: entity.AlgorithmArgon2id, Cost: 1},
	}

	for _, spec := range specs {
		t.Run(spec.Algorithm.String(), func(t *testing.T) {
			for _, plainText := range []string{"", "abcd", "pässwörd", "with spaces and $ signs"} {
				artifact, err := engine.Compute(plainText, spec)
				require.NoError(t, err)

				ok, err := engine.Verify(plainText, artifact)
				require.NoError(t, err)
				assert.True(t, ok, "plaintext %q", plainText)

				ok, err = engine.Verify(plainText+"x", artifact)
				require.NoError(t, err)
				assert.False(t, ok)

				info, err := engine.Inspect(artifact)
				require.NoError(t, err)
				assert.Equal(t, entity.ArtifactInfo{Algorithm: spec.Algorithm, Cost: spec.Cost}, info)
			}
		})
	}
}

func TestEngine_ComputeTwiceDiffersButBothVerify(t *testing.T) {
	engine := newTestEngine(t)
	spec := entity.HashSpec{Algorithm: entity.AlgorithmBcrypt, Cost: 4}

	first, err := engine.Compute("abcd", spec)
	require.NoError(t, err)
	second, err := engine.Compute("abcd", spec)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	for _, artifact := range []string{first, second} {
		ok, err := engine.Verify("abcd", artifact)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestEngine_ComputeFailuresAreHashComputationErrors(t *testing.T) {
	engine := newTestEngine(t)

	_, err := engine.Compute("abcd", entity.HashSpec{Algorithm: entity.AlgorithmBcrypt, Cost: 1})
	var computeErr *domainerrors.HashComputationError
	require.True(t, errors.As(err, &computeErr))
	assert.True(t, errors.Is(err, domainerrors.ErrCostOutOfRange))
	assert.Equal(t, 500, computeErr.HTTPCode())
	assert.Empty(t, computeErr.Details())

	_, err = engine.Compute("abcd", entity.HashSpec{Algorithm: entity.Algorithm(42), Cost: 4})
	assert.True(t, errors.As(err, &computeErr))
}

func TestEngine_VerifyMalformedIsAnError(t *testing.T) {
	engine := newTestEngine(t)

	for _, artifact := range []string{
		"",
		"not-a-hash",
		"$2b$04$short",
		"$1$md5crypt$abcdefgh",
		"$scrypt$ln=4,r=8,p=1$",
		"$argon2id$v=19$m=64,t=1,p=1",
	} {
		t.Run(artifact, func(t *testing.T) {
			ok, err := engine.Verify("abba", artifact)
			assert.False(t, ok)

			var malformed *domainerrors.ArtifactMalformedError
			require.True(t, errors.As(err, &malformed), "got %v", err)
			assert.Equal(t, domainerrors.CodeInternalError, malformed.ErrorCode())

			_, err = engine.Inspect(artifact)
			assert.True(t, errors.As(err, &malformed))
		})
	}
}

func TestEngine_VerifyKnownBcryptHash(t *testing.T) {
	engine := newTestEngine(t)

	ok, err := engine.Verify("abba", knownBcryptHash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = engine.Verify("different", knownBcryptHash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEngine_ErrorsLookIdenticalToClients(t *testing.T) {
	engine := newTestEngine(t)

	_, computeErr := engine.Compute("abcd", entity.HashSpec{Algorithm: entity.AlgorithmBcrypt, Cost: 99})
	_, verifyErr := engine.Verify("abcd", "garbage")

	var a, b domainerrors.AppError
	require.True(t, errors.As(computeErr, &a))
	require.True(t, errors.As(verifyErr, &b))
	assert.Equal(t, a.HTTPCode(), b.HTTPCode())
	assert.Equal(t, a.ErrorCode(), b.ErrorCode())
	assert.Equal(t, a.Message(), b.Message())
}

func TestNewEngine_LaterHasherReplacesEarlier(t *testing.T) {
	engine := NewEngine(NewBcryptHasher(), NewBcryptHasher())

	assert.Len(t, engine.Algorithms(), 1)
}

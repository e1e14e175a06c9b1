package hashing

import (
	"strings"
	"testing"

	"hashsvc/internal/domain/entity"
	domainerrors "hashsvc/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// knownBcryptHash is "abba" hashed at cost 4 by an independent bcrypt implementation.
const knownBcryptHash = "$2b$04$Lk1f9qGCdObNRJXASf2SnO//2jv3e6mf9E8/3IPtW1YtpZ6ffdMgm"

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasher()

	hash, err := hasher.Hash("abcd", 4)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$04$"))
	assert.Len(t, hash, bcryptArtifactSize)

	ok, err := hasher.Verify("abcd", hash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBcryptHasher_HashUsesRequestedCost(t *testing.T) {
	hasher := NewBcryptHasher()

	hash, err := hasher.Hash("StrongPass123!", 6)
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 6, cost)
}

func TestBcryptHasher_SaltsEveryHash(t *testing.T) {
	hasher := NewBcryptHasher()

	first, err := hasher.Hash("same", 4)
	require.NoError(t, err)
	second, err := hasher.Hash("same", 4)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	for _, h := range []string{first, second} {
		ok, err := hasher.Verify("same", h)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestBcryptHasher_CostRangeMatchesPrimitive(t *testing.T) {
	r := entity.AlgorithmBcrypt.CostRange()
	assert.Equal(t, bcrypt.MinCost, r.Min)
	assert.Equal(t, bcrypt.MaxCost, r.Max)
}

func TestBcryptHasher_RejectsOutOfRangeCost(t *testing.T) {
	hasher := NewBcryptHasher()

	for _, cost := range []int{0, 1, 3, 32, 99} {
		_, err := hasher.Hash("abcd", cost)
		assert.True(t, errors.Is(err, domainerrors.ErrCostOutOfRange), "cost %d", cost)
	}
}

func TestBcryptHasher_RejectsLongPlainText(t *testing.T) {
	hasher := NewBcryptHasher()

	_, err := hasher.Hash(strings.Repeat("a", 73), 4)
	assert.True(t, errors.Is(err, domainerrors.ErrPlainTextTooLong))

	_, err = hasher.Hash(strings.Repeat("a", 72), 4)
	assert.NoError(t, err)
}

func TestBcryptHasher_VerifyKnownHash(t *testing.T) {
	hasher := NewBcryptHasher()

	ok, err := hasher.Verify("abba", knownBcryptHash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = hasher.Verify("different", knownBcryptHash)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = hasher.Verify("", knownBcryptHash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBcryptHasher_VerifyMalformed(t *testing.T) {
	hasher := NewBcryptHasher()

	tests := []struct {
		name     string
		artifact string
	}{
		{name: "truncated", artifact: knownBcryptHash[:40]},
		{name: "trailing bytes", artifact: knownBcryptHash + "x"},
		{name: "bad cost", artifact: "$2b$99$" + knownBcryptHash[7:]},
		{name: "non numeric cost", artifact: "$2b$xx$" + knownBcryptHash[7:]},
		{name: "invalid salt alphabet", artifact: "$2b$04$" + strings.Repeat("!", 53)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := hasher.Verify("abba", tt.artifact)
			assert.False(t, ok)
			assert.True(t, errors.Is(err, domainerrors.ErrArtifactMalformed), "got %v", err)
		})
	}
}

func TestBcryptHasher_Inspect(t *testing.T) {
	hasher := NewBcryptHasher()

	info, err := hasher.Inspect(knownBcryptHash)
	require.NoError(t, err)
	assert.Equal(t, entity.AlgorithmBcrypt, info.Algorithm)
	assert.Equal(t, 4, info.Cost)

	_, err = hasher.Inspect("$argon2id$v=19$m=8,t=1,p=1$c2FsdHNhbHQ$ZGlnZXN0ZGln")
	assert.True(t, errors.Is(err, domainerrors.ErrUnsupportedArtifact))
}

func TestBcryptHasher_KeepsPrimitiveError(t *testing.T) {
	hasher := NewBcryptHasher()

	_, err := hasher.Inspect("$2b$99$" + knownBcryptHash[7:])
	assert.True(t, errors.Is(err, domainerrors.ErrArtifactMalformed))

	var costErr bcrypt.InvalidCostError
	assert.True(t, errors.As(err, &costErr), "got %v", err)
}

func TestBcryptHasher_Recognizes(t *testing.T) {
	hasher := NewBcryptHasher()

	assert.True(t, hasher.Recognizes("$2a$04$..."))
	assert.True(t, hasher.Recognizes("$2b$04$..."))
	assert.True(t, hasher.Recognizes("$2y$04$..."))
	assert.False(t, hasher.Recognizes("$scrypt$ln=4"))
	assert.False(t, hasher.Recognizes("plain"))
}

package hashing

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"strings"

	"hashsvc/internal/domain/entity"
	domainerrors "hashsvc/internal/domain/errors"
	"hashsvc/internal/domain/service"
	"hashsvc/internal/errors"

	"golang.org/x/crypto/argon2"
)

const argon2idID = "argon2id"

const (
	// DefaultArgon2Memory is the memory cost in KiB (19 MiB).
	DefaultArgon2Memory uint32 = 19 * 1024
	// DefaultArgon2Threads is the degree of parallelism.
	DefaultArgon2Threads uint8 = 1
	// DefaultArgon2MaxMemory caps the memory an artifact may demand on verify.
	DefaultArgon2MaxMemory uint32 = 256 * 1024
)

// Argon2Options configures memory and parallelism. The cost is the number
// of passes and comes with each request.
type Argon2Options struct {
	Memory    uint32
	Threads   uint8
	MaxMemory uint32
}

type argon2idHasher struct {
	memory    uint32
	threads   uint8
	maxMemory uint32
}

// NewArgon2idHasher validates opts and returns an Argon2id PasswordHasher.
func NewArgon2idHasher(opts Argon2Options) (service.PasswordHasher, error) {
	if opts.Threads < 1 {
		return nil, errors.Errorf("argon2 threads must be >= 1, got %d", opts.Threads)
	}
	if opts.Memory < 8*uint32(opts.Threads) {
		return nil, errors.Errorf("argon2 memory %d KiB must be >= 8*threads", opts.Memory)
	}
	if opts.MaxMemory < opts.Memory {
		return nil, errors.Errorf("argon2 max memory %d KiB below memory %d KiB", opts.MaxMemory, opts.Memory)
	}

	return &argon2idHasher{memory: opts.Memory, threads: opts.Threads, maxMemory: opts.MaxMemory}, nil
}

func (h *argon2idHasher) Algorithm() entity.Algorithm {
	return entity.AlgorithmArgon2id
}

// Hash derives a key with cost passes and a fresh salt, encoded as
// $argon2id$v=19$m=<memory>,t=<cost>,p=<threads>$<salt>$<digest>.
func (h *argon2idHasher) Hash(plainText string, cost int) (string, error) {
	if !h.Algorithm().CostRange().Contains(cost) {
		return "", errors.Wrapf(domainerrors.ErrCostOutOfRange, "argon2id cost %d", cost)
	}

	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrap(err, "rand.Read")
	}

	digest := argon2.IDKey([]byte(plainText), salt, uint32(cost), h.memory, h.threads, keySize)

	return encodePHC(argon2idID, fmt.Sprintf("v=%d", argon2.Version), []phcParam{
		{key: "m", value: int(h.memory)},
		{key: "t", value: cost},
		{key: "p", value: int(h.threads)},
	}, salt, digest), nil
}

// Verify recomputes the digest with the embedded parameters.
func (h *argon2idHasher) Verify(plainText, artifact string) (bool, error) {
	parsed, err := h.decode(artifact)
	if err != nil {
		return false, err
	}

	digest := argon2.IDKey([]byte(plainText), parsed.salt,
		uint32(parsed.params["t"]), uint32(parsed.params["m"]), uint8(parsed.params["p"]), uint32(len(parsed.digest)))

	return subtle.ConstantTimeCompare(digest, parsed.digest) == 1, nil
}

func (h *argon2idHasher) Inspect(artifact string) (entity.ArtifactInfo, error) {
	parsed, err := h.decode(artifact)
	if err != nil {
		return entity.ArtifactInfo{}, err
	}

	return entity.ArtifactInfo{Algorithm: entity.AlgorithmArgon2id, Cost: parsed.params["t"]}, nil
}

func (h *argon2idHasher) Recognizes(artifact string) bool {
	return strings.HasPrefix(artifact, "$"+argon2idID+"$")
}

func (h *argon2idHasher) decode(artifact string) (*phcArtifact, error) {
	if !h.Recognizes(artifact) {
		return nil, errors.Wrap(domainerrors.ErrUnsupportedArtifact, "not an argon2id hash")
	}

	parsed, err := decodePHC(artifact, argon2idID, true, "m", "t", "p")
	if err != nil {
		return nil, err
	}

	version, err := parsePHCParams(parsed.version)
	if err != nil {
		return nil, err
	}
	if v, ok := version["v"]; !ok || v != argon2.Version {
		return nil, errors.Wrapf(domainerrors.ErrArtifactMalformed, "unsupported argon2 version %q", parsed.version)
	}

	m, t, p := parsed.params["m"], parsed.params["t"], parsed.params["p"]
	if !h.Algorithm().CostRange().Contains(t) {
		return nil, errors.Wrapf(domainerrors.ErrArtifactMalformed, "argon2id t=%d out of range", t)
	}
	if p < 1 || p > 255 {
		return nil, errors.Wrapf(domainerrors.ErrArtifactMalformed, "argon2id p=%d out of range", p)
	}
	if m < 8*p || m > int(h.maxMemory) {
		return nil, errors.Wrapf(domainerrors.ErrArtifactMalformed, "argon2id m=%d out of range", m)
	}

	return parsed, nil
}

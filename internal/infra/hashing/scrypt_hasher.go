package hashing

import (
	"crypto/rand"
	"crypto/subtle"
	"strings"

	"hashsvc/internal/domain/entity"
	domainerrors "hashsvc/internal/domain/errors"
	"hashsvc/internal/domain/service"
	"hashsvc/internal/errors"

	"golang.org/x/crypto/scrypt"
)

const scryptID = "scrypt"

const (
	// DefaultScryptR is the block size parameter.
	DefaultScryptR = 8
	// DefaultScryptP is the parallelization parameter.
	DefaultScryptP = 1
	// DefaultScryptMaxMemory in KiB covers the full cost range at r=8.
	DefaultScryptMaxMemory = 1024 * 1024

	scryptMaxR = 32
	scryptMaxP = 16
)

// ScryptOptions configures the block size and parallelism. The cost is the
// log2 of N and comes with each request.
type ScryptOptions struct {
	R int
	P int

	// MaxMemory in KiB bounds 128*r*N for both new hashes and verified artifacts.
	MaxMemory uint64
}

type scryptHasher struct {
	r         int
	p         int
	maxMemory uint64
}

// NewScryptHasher validates opts and returns an scrypt PasswordHasher.
func NewScryptHasher(opts ScryptOptions) (service.PasswordHasher, error) {
	if opts.R < 1 || opts.R > scryptMaxR || opts.P < 1 || opts.P > scryptMaxP {
		return nil, errors.Errorf("scrypt options out of range: r=%d p=%d", opts.R, opts.P)
	}
	minCost := entity.AlgorithmScrypt.CostRange().Min
	if need := scryptMemoryKiB(minCost, opts.R); opts.MaxMemory < need {
		return nil, errors.Errorf("scrypt maxMemory %d KiB is below the %d KiB needed at cost %d", opts.MaxMemory, need, minCost)
	}

	return &scryptHasher{r: opts.R, p: opts.P, maxMemory: opts.MaxMemory}, nil
}

// scryptMemoryKiB is the working set of scrypt.Key, 128*r*N bytes.
func scryptMemoryKiB(ln, r int) uint64 {
	return (uint64(r) << uint(ln)) / 8
}

func (h *scryptHasher) Algorithm() entity.Algorithm {
	return entity.AlgorithmScrypt
}

// Hash derives a key from plainText with N = 2^cost and a fresh salt.
// The artifact format is $scrypt$ln=<cost>,r=<r>,p=<p>$<salt>$<digest>.
func (h *scryptHasher) Hash(plainText string, cost int) (string, error) {
	if !h.Algorithm().CostRange().Contains(cost) {
		return "", errors.Wrapf(domainerrors.ErrCostOutOfRange, "scrypt cost %d", cost)
	}
	if need := scryptMemoryKiB(cost, h.r); need > h.maxMemory {
		return "", errors.Wrapf(domainerrors.ErrCostOutOfRange, "scrypt cost %d needs %d KiB, limit %d KiB", cost, need, h.maxMemory)
	}

	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrap(err, "rand.Read")
	}

	digest, err := scrypt.Key([]byte(plainText), salt, 1<<cost, h.r, h.p, keySize)
	if err != nil {
		return "", errors.Wrap(err, "scrypt.Key")
	}

	return encodePHC(scryptID, "", []phcParam{
		{key: "ln", value: cost},
		{key: "r", value: h.r},
		{key: "p", value: h.p},
	}, salt, digest), nil
}

// Verify recomputes the digest with the embedded parameters.
func (h *scryptHasher) Verify(plainText, artifact string) (bool, error) {
	parsed, err := h.decode(artifact)
	if err != nil {
		return false, err
	}

	digest, err := scrypt.Key([]byte(plainText), parsed.salt,
		1<<parsed.params["ln"], parsed.params["r"], parsed.params["p"], len(parsed.digest))
	if err != nil {
		return false, errors.Join(domainerrors.ErrArtifactMalformed, err)
	}

	return subtle.ConstantTimeCompare(digest, parsed.digest) == 1, nil
}

func (h *scryptHasher) Inspect(artifact string) (entity.ArtifactInfo, error) {
	parsed, err := h.decode(artifact)
	if err != nil {
		return entity.ArtifactInfo{}, err
	}

	return entity.ArtifactInfo{Algorithm: entity.AlgorithmScrypt, Cost: parsed.params["ln"]}, nil
}

func (h *scryptHasher) Recognizes(artifact string) bool {
	return strings.HasPrefix(artifact, "$"+scryptID+"$")
}

func (h *scryptHasher) decode(artifact string) (*phcArtifact, error) {
	if !h.Recognizes(artifact) {
		return nil, errors.Wrap(domainerrors.ErrUnsupportedArtifact, "not an scrypt hash")
	}

	parsed, err := decodePHC(artifact, scryptID, false, "ln", "r", "p")
	if err != nil {
		return nil, err
	}

	ln, r, p := parsed.params["ln"], parsed.params["r"], parsed.params["p"]
	if !h.Algorithm().CostRange().Contains(ln) {
		return nil, errors.Wrapf(domainerrors.ErrArtifactMalformed, "scrypt ln=%d out of range", ln)
	}
	if r < 1 || r > scryptMaxR || p < 1 || p > scryptMaxP {
		return nil, errors.Wrapf(domainerrors.ErrArtifactMalformed, "scrypt r=%d p=%d out of range", r, p)
	}
	if need := scryptMemoryKiB(ln, r); need > h.maxMemory {
		return nil, errors.Wrapf(domainerrors.ErrArtifactMalformed, "scrypt needs %d KiB, limit %d KiB", need, h.maxMemory)
	}

	return parsed, nil
}

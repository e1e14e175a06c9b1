package hashing

import (
	"hashsvc/config"
	"hashsvc/internal/domain/entity"
	domainerrors "hashsvc/internal/domain/errors"
	"hashsvc/internal/domain/service"
	"hashsvc/internal/errors"

	"go.uber.org/fx"
)

// Params defines the parameters required for the hash engine
type Params struct {
	fx.In

	Config *config.Config
}

// New builds the engine with every supported algorithm, tuned from config.
func New(params Params) (service.HashEngine, error) {
	hashingCfg := params.Config.Hashing

	scryptHasher, err := NewScryptHasher(ScryptOptions{
		R:         hashingCfg.Scrypt.R,
		P:         hashingCfg.Scrypt.P,
		MaxMemory: hashingCfg.Scrypt.MaxMemory,
	})
	if err != nil {
		return nil, err
	}

	argon2Hasher, err := NewArgon2idHasher(Argon2Options{
		Memory:    hashingCfg.Argon2.Memory,
		Threads:   hashingCfg.Argon2.Threads,
		MaxMemory: hashingCfg.Argon2.MaxMemory,
	})
	if err != nil {
		return nil, err
	}

	return NewEngine(NewBcryptHasher(), scryptHasher, argon2Hasher), nil
}

type engine struct {
	hashers map[entity.Algorithm]service.PasswordHasher
	order   []entity.Algorithm
}

// NewEngine registers hashers by algorithm. A later hasher replaces an
// earlier one for the same algorithm.
func NewEngine(hashers ...service.PasswordHasher) service.HashEngine {
	e := &engine{hashers: make(map[entity.Algorithm]service.PasswordHasher, len(hashers))}
	for _, h := range hashers {
		if _, exists := e.hashers[h.Algorithm()]; !exists {
			e.order = append(e.order, h.Algorithm())
		}
		e.hashers[h.Algorithm()] = h
	}

	return e
}

func (e *engine) Compute(plainText string, spec entity.HashSpec) (string, error) {
	h, ok := e.hashers[spec.Algorithm]
	if !ok {
		return "", domainerrors.NewHashComputationError(
			errors.Errorf("no hasher registered for %s", spec.Algorithm))
	}

	artifact, err := h.Hash(plainText, spec.Cost)
	if err != nil {
		return "", domainerrors.NewHashComputationError(err)
	}

	return artifact, nil
}

func (e *engine) Verify(plainText, artifact string) (bool, error) {
	h, err := e.hasherFor(artifact)
	if err != nil {
		return false, err
	}

	matches, err := h.Verify(plainText, artifact)
	if err != nil {
		return false, domainerrors.NewArtifactMalformedError(err)
	}

	return matches, nil
}

func (e *engine) Inspect(artifact string) (entity.ArtifactInfo, error) {
	h, err := e.hasherFor(artifact)
	if err != nil {
		return entity.ArtifactInfo{}, err
	}

	info, err := h.Inspect(artifact)
	if err != nil {
		return entity.ArtifactInfo{}, domainerrors.NewArtifactMalformedError(err)
	}

	return info, nil
}

func (e *engine) Algorithms() []entity.AlgorithmInfo {
	infos := make([]entity.AlgorithmInfo, 0, len(e.order))
	for _, alg := range e.order {
		infos = append(infos, entity.AlgorithmInfo{Algorithm: alg, CostRange: alg.CostRange()})
	}

	return infos
}

func (e *engine) hasherFor(artifact string) (service.PasswordHasher, error) {
	for _, alg := range e.order {
		if h := e.hashers[alg]; h.Recognizes(artifact) {
			return h, nil
		}
	}

	return nil, domainerrors.NewArtifactMalformedError(
		errors.Wrap(domainerrors.ErrUnsupportedArtifact, "no hasher recognises artifact"))
}

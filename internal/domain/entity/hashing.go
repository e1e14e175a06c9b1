// Package entity contains the transient values that flow through a hashing
// request. Nothing here has identity beyond a single call.
package entity

import (
	"strconv"
	"strings"
)

// Algorithm is the closed set of supported password hashing primitives.
type Algorithm int

const (
	AlgorithmBcrypt Algorithm = iota
	AlgorithmScrypt
	AlgorithmArgon2id
)

// DefaultAlgorithm is used when an identifier names no known algorithm.
const DefaultAlgorithm = AlgorithmBcrypt

// IdentifierSeparator splits an algorithm identifier such as "bcrypt-12".
const IdentifierSeparator = "-"

var algorithmNames = map[Algorithm]string{
	AlgorithmBcrypt:   "bcrypt",
	AlgorithmScrypt:   "scrypt",
	AlgorithmArgon2id: "argon2id",
}

// String returns the tag used in identifiers and responses.
func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}

	return "unknown"
}

// CostRange returns the work factors accepted by the algorithm.
func (a Algorithm) CostRange() CostRange {
	switch a {
	case AlgorithmBcrypt:
		return CostRange{Min: 4, Max: 31} // log2 rounds
	case AlgorithmScrypt:
		return CostRange{Min: 4, Max: 20} // log2 N
	case AlgorithmArgon2id:
		return CostRange{Min: 1, Max: 16} // passes over memory
	default:
		return CostRange{}
	}
}

// Algorithms lists every supported algorithm in a stable order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgorithmBcrypt, AlgorithmScrypt, AlgorithmArgon2id}
}

// ParseAlgorithm maps a tag to an Algorithm. Matching ignores case.
func ParseAlgorithm(tag string) (Algorithm, bool) {
	tag = strings.ToLower(strings.TrimSpace(tag))
	for alg, name := range algorithmNames {
		if name == tag {
			return alg, true
		}
	}

	return DefaultAlgorithm, false
}

// CostRange is an inclusive work-factor interval.
type CostRange struct {
	Min int `json:"minCost"`
	Max int `json:"maxCost"`
}

// Contains reports whether cost lies within the range.
func (r CostRange) Contains(cost int) bool {
	return cost >= r.Min && cost <= r.Max
}

// HashSpec is a resolved algorithm identifier.
type HashSpec struct {
	Algorithm Algorithm
	Cost      int
}

// ParseHashSpec resolves a client-supplied identifier.
//
// The cost is the segment after the last separator when it parses as an
// unsigned 32-bit integer, and defaultCost otherwise. The algorithm is the
// segment before the first separator, falling back to DefaultAlgorithm.
// Range checks are left to the hash engine.
func ParseHashSpec(identifier string, defaultCost int) HashSpec {
	spec := HashSpec{Algorithm: DefaultAlgorithm, Cost: defaultCost}

	head, _, _ := strings.Cut(identifier, IdentifierSeparator)
	if alg, ok := ParseAlgorithm(head); ok {
		spec.Algorithm = alg
	}

	idx := strings.LastIndex(identifier, IdentifierSeparator)
	if idx < 0 {
		return spec
	}

	cost, err := strconv.ParseUint(identifier[idx+len(IdentifierSeparator):], 10, 32)
	if err != nil {
		return spec
	}
	spec.Cost = int(cost)

	return spec
}

// HashJob asks for a new artifact. PlainText must never be logged or echoed.
type HashJob struct {
	PlainText        string
	HashingAlgorithm string
}

// VerifyJob asks whether PlainText matches a previously produced artifact.
type VerifyJob struct {
	PlainText string
	Hash      string
}

// ArtifactInfo is the metadata embedded in an artifact.
type ArtifactInfo struct {
	Algorithm Algorithm
	Cost      int
}

// AlgorithmInfo describes a supported algorithm.
type AlgorithmInfo struct {
	Algorithm Algorithm
	CostRange CostRange
}

package hashing

import (
	"encoding/base64"
	"strconv"
	"strings"

	domainerrors "hashsvc/internal/domain/errors"
	"hashsvc/internal/errors"
)

const (
	// saltSize is the random salt length in bytes for PHC-style artifacts.
	saltSize = 16
	// keySize is the derived digest length in bytes for PHC-style artifacts.
	keySize = 32
	// minDecodedSize and maxDecodedSize bound salt and digest when parsing.
	minDecodedSize = 8
	maxDecodedSize = 64
)

// phcEncoding is standard base64 without padding, as used by PHC strings.
var phcEncoding = base64.RawStdEncoding

// phcArtifact is a split "$id$[v=..$]params$salt$digest" string.
type phcArtifact struct {
	id      string
	version string
	params  map[string]int
	salt    []byte
	digest  []byte
}

// encodePHC renders id, optional version, ordered params, salt and digest.
func encodePHC(id, version string, params []phcParam, salt, digest []byte) string {
	var b strings.Builder
	b.WriteString("$")
	b.WriteString(id)
	if version != "" {
		b.WriteString("$")
		b.WriteString(version)
	}
	b.WriteString("$")
	for i, p := range params {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(p.key)
		b.WriteString("=")
		b.WriteString(strconv.Itoa(p.value))
	}
	b.WriteString("$")
	b.WriteString(phcEncoding.EncodeToString(salt))
	b.WriteString("$")
	b.WriteString(phcEncoding.EncodeToString(digest))

	return b.String()
}

type phcParam struct {
	key   string
	value int
}

// decodePHC parses an artifact with the given id. withVersion selects the
// six-segment argon2 layout over the five-segment scrypt layout.
func decodePHC(artifact, id string, withVersion bool, required ...string) (*phcArtifact, error) {
	want := 5
	if withVersion {
		want = 6
	}

	parts := strings.Split(artifact, "$")
	if len(parts) != want || parts[0] != "" {
		return nil, errors.Wrapf(domainerrors.ErrArtifactMalformed, "expected %d segments, got %d", want-1, len(parts)-1)
	}
	if parts[1] != id {
		return nil, errors.Wrapf(domainerrors.ErrArtifactMalformed, "unexpected identifier %q", parts[1])
	}

	out := &phcArtifact{id: id}
	rest := parts[2:]
	if withVersion {
		out.version = rest[0]
		rest = rest[1:]
	}

	params, err := parsePHCParams(rest[0])
	if err != nil {
		return nil, err
	}
	for _, key := range required {
		if _, ok := params[key]; !ok {
			return nil, errors.Wrapf(domainerrors.ErrArtifactMalformed, "missing parameter %q", key)
		}
	}
	out.params = params

	if out.salt, err = phcEncoding.DecodeString(rest[1]); err != nil {
		return nil, errors.Wrap(domainerrors.ErrArtifactMalformed, "invalid salt encoding")
	}
	if out.digest, err = phcEncoding.DecodeString(rest[2]); err != nil {
		return nil, errors.Wrap(domainerrors.ErrArtifactMalformed, "invalid digest encoding")
	}
	for _, b := range [][]byte{out.salt, out.digest} {
		if len(b) < minDecodedSize || len(b) > maxDecodedSize {
			return nil, errors.Wrapf(domainerrors.ErrArtifactMalformed,
				"salt and digest must be %d to %d bytes", minDecodedSize, maxDecodedSize)
		}
	}

	return out, nil
}

// parsePHCParams parses "k=v,k=v" into non-negative integers.
func parsePHCParams(segment string) (map[string]int, error) {
	params := make(map[string]int)
	for _, kv := range strings.Split(segment, ",") {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return nil, errors.Wrapf(domainerrors.ErrArtifactMalformed, "invalid parameter %q", kv)
		}
		if _, dup := params[key]; dup {
			return nil, errors.Wrapf(domainerrors.ErrArtifactMalformed, "duplicate parameter %q", key)
		}
		n, err := strconv.ParseUint(value, 10, 32)
		if err != nil {
			return nil, errors.Wrapf(domainerrors.ErrArtifactMalformed, "invalid value for %q", key)
		}
		params[key] = int(n)
	}

	return params, nil
}

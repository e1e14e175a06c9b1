package main

import (
	"fmt"
	"io"
	"strings"

	"hashsvc/internal/domain/entity"

	"github.com/pkg/errors"
)

func (c *cli) handleHash(args []string) (int, error) {
	fs := c.newFlagSet("hash")
	alg := fs.String("alg", "bcrypt", "Algorithm identifier, e.g. bcrypt-10 or argon2id-3")
	if err := fs.Parse(args); err != nil {
		return exitError, errors.Wrap(err, "failed to parse hash flags")
	}

	plainText, err := readPlainText(c.stdin)
	if err != nil {
		return exitError, err
	}

	spec := entity.ParseHashSpec(*alg, c.cfg.Hashing.DefaultCost)
	artifact, err := c.engine.Compute(plainText, spec)
	if err != nil {
		return exitError, err
	}

	fmt.Fprintln(c.stdout, artifact)

	return exitOK, nil
}

func (c *cli) handleMatch(args []string) (int, error) {
	fs := c.newFlagSet("match")
	hash := fs.String("hash", "", "Artifact to check against")
	if err := fs.Parse(args); err != nil {
		return exitError, errors.Wrap(err, "failed to parse match flags")
	}

	if *hash == "" {
		return exitError, errors.New("-hash flag is required for match command")
	}

	plainText, err := readPlainText(c.stdin)
	if err != nil {
		return exitError, err
	}

	matches, err := c.engine.Verify(plainText, *hash)
	if err != nil {
		return exitMalformed, err
	}

	fmt.Fprintln(c.stdout, matches)

	return exitOK, nil
}

// readPlainText reads stdin and drops a single trailing line ending, so
// `echo secret | hashctl hash` hashes "secret".
func readPlainText(r io.Reader) (string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return "", errors.Wrap(err, "failed to read plaintext from stdin")
	}

	s := string(raw)
	if trimmed, ok := strings.CutSuffix(s, "\r\n"); ok {
		return trimmed, nil
	}

	return strings.TrimSuffix(s, "\n"), nil
}

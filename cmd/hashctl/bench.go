package main

import (
	"fmt"
	"time"

	"hashsvc/internal/domain/entity"
	"hashsvc/internal/util"

	"github.com/pkg/errors"
)

const benchPlainText = "correct horse battery staple"

func (c *cli) handleBench(args []string) (int, error) {
	fs := c.newFlagSet("bench")
	algTag := fs.String("alg", "bcrypt", "Algorithm to benchmark (bcrypt, scrypt, argon2id)")
	from := fs.Int("from", 0, "Lowest cost to time (defaults to the algorithm minimum)")
	to := fs.Int("to", 0, "Highest cost to time (defaults to -from + 4)")
	if err := fs.Parse(args); err != nil {
		return exitError, errors.Wrap(err, "failed to parse bench flags")
	}

	alg, ok := entity.ParseAlgorithm(*algTag)
	if !ok {
		return exitError, errors.Errorf("unknown algorithm %q", *algTag)
	}

	costRange := alg.CostRange()
	low, high := *from, *to
	if low == 0 {
		low = costRange.Min
	}
	if high == 0 {
		high = min(low+4, costRange.Max)
	}
	if !costRange.Contains(low) || !costRange.Contains(high) || low > high {
		return exitError, errors.Errorf("cost range %d..%d invalid for %s (allowed %d..%d)",
			low, high, alg, costRange.Min, costRange.Max)
	}

	c.printBenchHeader(alg)

	for cost := low; cost <= high; cost++ {
		start := time.Now()
		if _, err := c.engine.Compute(benchPlainText, entity.HashSpec{Algorithm: alg, Cost: cost}); err != nil {
			return exitError, err
		}
		fmt.Fprintf(c.stdout, "  %s-%-3d %s\n", alg, cost, util.FormatDuration(time.Since(start)))
	}

	return exitOK, nil
}

func (c *cli) printBenchHeader(alg entity.Algorithm) {
	hashingCfg := c.cfg.Hashing

	switch alg {
	case entity.AlgorithmScrypt:
		fmt.Fprintf(c.stdout, "scrypt (r=%d, p=%d)\n", hashingCfg.Scrypt.R, hashingCfg.Scrypt.P)
	case entity.AlgorithmArgon2id:
		fmt.Fprintf(c.stdout, "argon2id (memory=%s, threads=%d)\n",
			util.FormatBytes(int64(hashingCfg.Argon2.Memory)*1024), hashingCfg.Argon2.Threads)
	default:
		fmt.Fprintf(c.stdout, "%s\n", alg)
	}
}

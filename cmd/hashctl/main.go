package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"hashsvc/config"
	"hashsvc/internal/domain/service"
	"hashsvc/internal/infra/hashing"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - hash:  Hash a plaintext read from stdin
// - match: Check a plaintext from stdin against an artifact
// - bench: Time one hash per cost to pick a deployment default

const (
	exitOK        = 0
	exitError     = 1
	exitMalformed = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type cli struct {
	cfg    *config.Config
	engine service.HashEngine
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		printUsage(stderr)

		return exitError
	}

	cfg := config.Default()
	engine, err := hashing.New(hashing.Params{Config: cfg})
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)

		return exitError
	}

	c := &cli{cfg: cfg, engine: engine, stdin: stdin, stdout: stdout, stderr: stderr}

	code, err := c.runSubcommand(args[0], args[1:])
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}

	return code
}

func (c *cli) runSubcommand(name string, args []string) (int, error) {
	switch name {
	case "hash":
		return c.handleHash(args)
	case "match":
		return c.handleMatch(args)
	case "bench":
		return c.handleBench(args)
	default:
		printUsage(c.stderr)

		return exitError, errors.Errorf("unknown subcommand %q", name)
	}
}

func (c *cli) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.stderr)

	return fs
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: hashctl <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  hash     Hash the plaintext read from stdin")
	fmt.Fprintln(w, "  match    Check the plaintext read from stdin against -hash")
	fmt.Fprintln(w, "  bench    Time one hash per cost between -from and -to")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Use 'hashctl <command> -h' for more information about a command.")
}

// Command implementations are in their respective files

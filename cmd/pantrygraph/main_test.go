package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/specialistvlad/pantrygraph/internal/cli"
	"github.com/specialistvlad/pantrygraph/internal/testutil"
	"github.com/stretchr/testify/require"
)

func TestRun_Query(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	args := []string{"-c", testutil.WritePantry(t), "subs", "chicken"}
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := run(out, errOut, args)

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, "tofu\nseitan\n", out.String())
}

func TestRun_Help(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	args := []string{"--help"}
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := run(out, errOut, args)

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when help is requested")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	args := []string{"--this-is-not-a-valid-flag"}
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := run(out, errOut, args)

	// --- Assert ---
	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr), "run() should return an ExitError when argument parsing fails")
	require.Equal(t, 2, exitErr.Code)
	require.Contains(t, exitErr.Message, "unknown flag: --this-is-not-a-valid-flag")
}

func TestRun_BrokenConfig(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// A config file with a syntax error fails the build, not the parse.
	dir := testutil.WriteFiles(t, map[string]string{
		"main.hcl": "graph {\n  seeds = [\n",
	})
	args := []string{"-c", dir, "build"}
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := run(out, errOut, args)

	// --- Assert ---
	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	require.Equal(t, 1, exitErr.Code)
	require.Contains(t, exitErr.Message, "failed to parse")
}

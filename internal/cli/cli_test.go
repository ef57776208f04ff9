package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/specialistvlad/pantrygraph/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the command tree against the pantry fixture.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := Execute(append([]string{"--config", testutil.WritePantry(t)}, args...), &out, &errOut)
	return out.String(), errOut.String(), err
}

func TestExecute_Queries(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		args []string
		want string
	}{
		{name: "pick by synonym", args: []string{"pick", "bean curd"}, want: "tofu\n"},
		{name: "pick with filter", args: []string{"pick", "tofu", "--prop", ".tofu"}, want: "tofu\n"},
		{name: "search", args: []string{"search", "tofu"}, want: "tofu\ntofurkey\n"},
		{name: "search limit", args: []string{"search", "tofu", "-n", "1"}, want: "tofu\n"},
		{name: "search groups", args: []string{"search", "substitutes"}, want: "chicken substitutes\nbeef substitutes\n"},
		{name: "subs", args: []string{"subs", "chicken"}, want: "tofu\nseitan\n"},
		{name: "subs filtered", args: []string{"subs", "seitan", "-p", "tofu"}, want: "tofu\n"},
		{name: "props inherited", args: []string{"props", "tofurkey"}, want: "tofu\n-meat\n"},
		{name: "props declared", args: []string{"props", "tofu", "--declared"}, want: ".tofu\n-meat\n"},
		{name: "has cancelled", args: []string{"has", "tofurkey", "meat"}, want: "false\n"},
		{name: "has inherited", args: []string{"has", "hen", "base"}, want: "true\n"},
		{name: "lineage", args: []string{"lineage", "tofurkey"}, want: "tofu\nturkey\nprotein\npoultry\nmeat\nsolid food\n"},
		{name: "has negative", args: []string{"has", "tofurkey", "-meat"}, want: "true\n"},
		{name: "common", args: []string{"common", "beef", "hen"}, want: "meat\n"},
		{name: "origin", args: []string{"origin", "catfish", "base"}, want: "meat\n"},
		{name: "origin negative", args: []string{"origin", "tofurkey", "-meat"}, want: "tofu\n"},
		{name: "members", args: []string{"members", "poultry"}, want: "chicken\nturkey\ntofurkey\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			out, _, err := execute(t, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestExecute_Build(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "build")
	require.NoError(t, err)
	assert.Regexp(t, `^graph [0-9a-f-]{36}: \d+ nodes, 0 warnings\n$`, out)
}

func TestExecute_LogsGoToErrorStream(t *testing.T) {
	t.Parallel()

	out, errOut, err := execute(t, "--log-level", "info", "pick", "hen")
	require.NoError(t, err)
	assert.Equal(t, "chicken\n", out)
	assert.Contains(t, errOut, "Graph built.")
}

func TestExecute_Help(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	err := Execute(nil, &out, &errOut)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Usage:")
	assert.Contains(t, out.String(), "subs")
}

func TestExecute_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		args     []string
		wantCode int
		wantMsg  string
	}{
		{name: "unknown flag", args: []string{"pick", "--nope", "x"}, wantCode: 2, wantMsg: "unknown flag: --nope"},
		{name: "unknown command", args: []string{"cook"}, wantCode: 2, wantMsg: `unknown command "cook"`},
		{name: "missing argument", args: []string{"subs"}, wantCode: 2, wantMsg: "accepts 1 arg(s)"},
		{name: "bad filter", args: []string{"search", "x", "--prop", "-"}, wantCode: 2, wantMsg: "invalid --prop"},
		{name: "bad property", args: []string{"has", "tofu", "."}, wantCode: 2, wantMsg: "empty"},
		{name: "bad log level", args: []string{"--log-level", "loud", "build"}, wantCode: 2, wantMsg: "invalid log level"},
		{name: "no match", args: []string{"subs", "chikn"}, wantCode: 1, wantMsg: `no node matches "chikn"`},
		{name: "pick miss", args: []string{"pick", "chikn"}, wantCode: 1, wantMsg: `no node matches "chikn"`},
		{name: "no shared ancestor", args: []string{"common", "food", "apple"}, wantCode: 1, wantMsg: "share no ancestor"},
		{name: "no origin", args: []string{"origin", "apple", "meat"}, wantCode: 1, wantMsg: "no ancestor of apple claims meat"},
		{name: "origin arity", args: []string{"origin", "apple"}, wantCode: 2, wantMsg: "accepts 2 arg(s)"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, _, err := execute(t, tc.args...)
			require.Error(t, err)

			var exitErr *ExitError
			require.True(t, errors.As(err, &exitErr), "expected an ExitError, got %T", err)
			assert.Equal(t, tc.wantCode, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.wantMsg)
		})
	}
}

func TestExecute_BuildFailure(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	err := Execute([]string{"--config", t.TempDir(), "build"}, &out, &errOut)

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 1, exitErr.Code)
	assert.Contains(t, exitErr.Message, "failed to load configuration")
}

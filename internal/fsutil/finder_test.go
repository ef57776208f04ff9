package fsutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, files ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, f := range files {
		p := filepath.Join(root, f)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, nil, 0o600))
	}
	return root
}

func TestFindFiles(t *testing.T) {
	root := writeTree(t,
		"b.hcl",
		"a/meat.HCL",
		"a/notes.txt",
		"a/deep/fish.hcl",
		".git/config.hcl",
		"table.csv",
	)

	testCases := []struct {
		name string
		exts []string
		want []string
	}{
		{
			name: "single extension, case-insensitive",
			exts: []string{".hcl"},
			want: []string{"a/deep/fish.hcl", "a/meat.HCL", "b.hcl"},
		},
		{
			name: "several extensions",
			exts: []string{".csv", ".txt"},
			want: []string{"a/notes.txt", "table.csv"},
		},
		{
			name: "no match",
			exts: []string{".yaml"},
			want: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FindFiles(root, tc.exts...)
			require.NoError(t, err)

			var rel []string
			for _, p := range got {
				r, err := filepath.Rel(root, p)
				require.NoError(t, err)
				rel = append(rel, filepath.ToSlash(r))
			}
			assert.Equal(t, tc.want, rel)
		})
	}
}

func TestFindFiles_Errors(t *testing.T) {
	_, err := FindFiles(t.TempDir())
	assert.True(t, errors.Is(err, ErrNoExtensions))

	_, err = FindFiles(filepath.Join(t.TempDir(), "missing"), ".hcl")
	assert.Error(t, err)
}

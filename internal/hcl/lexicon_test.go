package hcl

import (
	"testing"

	"github.com/specialistvlad/pantrygraph/internal/lexicon"
	"github.com/specialistvlad/pantrygraph/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLexicon(t *testing.T) {
	ctx, _ := testutil.NewContext(t)
	dir := testutil.WriteFiles(t, map[string]string{
		"01_food.hcl": `
concept "food.n.02" {
  name     = "food"
  lemmas   = ["food", "solid food"]
  hyponyms = ["meat.n.01"]
}
`,
		"02_meat.hcl": `
concept "meat.n.01" {
  lemmas = ["meat"]
}
`,
	})

	entries, err := LoadLexicon(ctx, dir)
	require.NoError(t, err)
	assert.Equal(t, []lexicon.Entry{
		{ID: "food.n.02", Name: "food", Lemmas: []string{"food", "solid food"}, Hyponyms: []lexicon.ConceptID{"meat.n.01"}},
		{ID: "meat.n.01", Lemmas: []string{"meat"}},
	}, entries)

	src, err := lexicon.NewStatic(entries...)
	require.NoError(t, err)
	hypers, err := src.Hypernyms("meat.n.01")
	require.NoError(t, err)
	assert.Equal(t, []lexicon.ConceptID{"food.n.02"}, hypers)
}

func TestLoadLexicon_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "lemmas not a list", content: "concept \"a\" {\n lemmas = { x = 1 }\n}\n", wantErr: "'lemmas' must be a list of strings"},
		{name: "unknown block", content: "recipe \"a\" {}\n", wantErr: "failed to decode lexicon file"},
		{name: "variable reference", content: "concept \"a\" {\n hyponyms = [var.b]\n}\n", wantErr: "invalid value for 'hyponyms'"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, _ := testutil.NewContext(t)
			dir := testutil.WriteFiles(t, map[string]string{"lex.hcl": tc.content})
			_, err := LoadLexicon(ctx, dir)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

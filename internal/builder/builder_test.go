package builder_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/pantrygraph/internal/builder"
	"github.com/specialistvlad/pantrygraph/internal/lexicon"
	"github.com/specialistvlad/pantrygraph/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLexicon is a small food hierarchy where cheeseburger is reachable from
// both hamburger and cheese.
func testLexicon(t *testing.T) *lexicon.Static {
	t.Helper()
	src, err := lexicon.NewStatic(
		lexicon.Entry{ID: "food.n.02", Name: "solid food", Lemmas: []string{"food", "solid food"}, Hyponyms: []lexicon.ConceptID{"meat.n.01", "dairy.n.01"}},
		lexicon.Entry{ID: "meat.n.01", Name: "meat", Lemmas: []string{"meat"}, Hyponyms: []lexicon.ConceptID{"beef.n.02", "poultry.n.02"}},
		lexicon.Entry{ID: "beef.n.02", Name: "beef", Lemmas: []string{"beef", "boeuf"}, Hyponyms: []lexicon.ConceptID{"hamburger.n.01"}},
		lexicon.Entry{ID: "hamburger.n.01", Name: "hamburger", Lemmas: []string{"hamburger", "burger"}, Hyponyms: []lexicon.ConceptID{"cheeseburger.n.01"}},
		lexicon.Entry{ID: "poultry.n.02", Name: "poultry", Lemmas: []string{"poultry"}, Hyponyms: []lexicon.ConceptID{"chicken.n.01"}},
		lexicon.Entry{ID: "chicken.n.01", Name: "chicken", Lemmas: []string{"chicken"}},
		lexicon.Entry{ID: "dairy.n.01", Name: "dairy product", Lemmas: []string{"dairy product", "dairy"}, Hyponyms: []lexicon.ConceptID{"cheese.n.01"}},
		lexicon.Entry{ID: "cheese.n.01", Name: "cheese", Lemmas: []string{"cheese"}, Hyponyms: []lexicon.ConceptID{"cheeseburger.n.01"}},
		lexicon.Entry{ID: "cheeseburger.n.01", Name: "cheeseburger", Lemmas: []string{"cheeseburger"}},
	)
	require.NoError(t, err)
	return src
}

func newBuilder(t *testing.T, opts ...builder.Option) *builder.Builder {
	t.Helper()
	b, err := builder.New(testLexicon(t), opts...)
	require.NoError(t, err)
	return b
}

func nodeNames(b *builder.Builder) []string {
	return testutil.Names(b.Graph().Index().Nodes())
}

func TestNew(t *testing.T) {
	b := newBuilder(t)
	g := b.Graph()
	require.NotNil(t, g)
	assert.Equal(t, builder.DefaultRootName, g.Root().Name())
	assert.Equal(t, 1, g.Len())
	assert.Empty(t, b.Warnings())

	b = newBuilder(t, builder.WithRootName("pantry"))
	assert.Equal(t, "pantry", b.Graph().Root().Name())

	_, err := builder.New(testLexicon(t), builder.WithRootName(""))
	assert.True(t, errors.Is(err, builder.ErrBuildFailed))
}

func TestExpand_Unbounded(t *testing.T) {
	ctx, logs := testutil.NewContext(t)
	b := newBuilder(t)

	require.NoError(t, b.Expand(ctx, []lexicon.ConceptID{"food.n.02"}, -1))

	expected := []string{
		"food", "solid food", "meat", "dairy product", "beef", "poultry",
		"hamburger", "cheeseburger", "chicken", "cheese",
	}
	if diff := cmp.Diff(expected, nodeNames(b)); diff != "" {
		t.Errorf("node order mismatch (-want +got):\n%s", diff)
	}

	g := b.Graph()
	cheeseburger := testutil.MustLookup(t, g.Index(), "cheeseburger")
	assert.Equal(t, []string{"hamburger", "cheese"}, testutil.Names(cheeseburger.Parents()), "diamond captured without duplication")
	assert.Equal(t, []string{"solid food"}, testutil.Names(g.Root().Children()))
	assert.Equal(t, []string{"beef", "boeuf"}, testutil.MustLookup(t, g.Index(), "beef").Lemmas())
	assert.Contains(t, logs.String(), "Expansion complete.")
}

func TestExpand_DepthZero(t *testing.T) {
	ctx, _ := testutil.NewContext(t)
	b := newBuilder(t)

	require.NoError(t, b.Expand(ctx, []lexicon.ConceptID{"food.n.02"}, 0))
	assert.Equal(t, []string{"food", "solid food"}, nodeNames(b))
}

func TestExpand_CrossLinksBeyondDepth(t *testing.T) {
	ctx, _ := testutil.NewContext(t)
	b := newBuilder(t)

	require.NoError(t, b.Expand(ctx, []lexicon.ConceptID{"food.n.02"}, 3))

	idx := b.Graph().Index()
	hamburger := testutil.MustLookup(t, idx, "hamburger")
	cheeseburger := testutil.MustLookup(t, idx, "cheeseburger")

	// hamburger sits at the depth limit and was never expanded; the second
	// pass still links it to cheeseburger.
	assert.True(t, hamburger.HasChild(cheeseburger))
	assert.Equal(t, []string{"cheese", "hamburger"}, testutil.Names(cheeseburger.Parents()))
}

func TestExpand_ReexpandsWithMoreDepth(t *testing.T) {
	ctx, _ := testutil.NewContext(t)
	b := newBuilder(t)

	require.NoError(t, b.Expand(ctx, []lexicon.ConceptID{"food.n.02", "meat.n.01"}, 2))

	idx := b.Graph().Index()
	_, ok := idx.Lookup("hamburger")
	assert.True(t, ok, "meat reached first at depth 1, then as a seed at depth 2")
	_, ok = idx.Lookup("chicken")
	assert.True(t, ok)
	_, ok = idx.Lookup("cheeseburger")
	assert.False(t, ok)
	assert.Equal(t, []string{"solid food", "meat"}, testutil.Names(b.Graph().Root().Children()))
}

func TestExpand_RenamesOnNameClash(t *testing.T) {
	ctx, _ := testutil.NewContext(t)
	src, err := lexicon.NewStatic(
		lexicon.Entry{ID: "food.n.02", Name: "solid food", Hyponyms: []lexicon.ConceptID{"beef.n.01", "beef.n.02"}},
		lexicon.Entry{ID: "beef.n.01", Name: "beef", Lemmas: []string{"beef"}},
		lexicon.Entry{ID: "beef.n.02", Name: "beef", Lemmas: []string{"boeuf"}},
	)
	require.NoError(t, err)
	b, err := builder.New(src)
	require.NoError(t, err)

	require.NoError(t, b.Expand(ctx, []lexicon.ConceptID{"food.n.02"}, -1))

	assert.Equal(t, []string{"food", "solid food", "beef", "beef.n.02"}, nodeNames(b))
	require.Len(t, b.Warnings(), 1)
	assert.Equal(t, builder.WarnRenamed, b.Warnings()[0].Kind)
	assert.Equal(t, "beef.n.02", b.Warnings()[0].Entry)
}

func TestExpand_SeedNamedLikeRootBecomesRoot(t *testing.T) {
	ctx, _ := testutil.NewContext(t)
	src, err := lexicon.NewStatic(
		lexicon.Entry{ID: "food.n.01", Name: "food", Lemmas: []string{"food", "nutrient"}, Hyponyms: []lexicon.ConceptID{"meat.n.01"}},
		lexicon.Entry{ID: "food.n.02", Name: "solid food", Hyponyms: []lexicon.ConceptID{"meat.n.01"}},
		lexicon.Entry{ID: "meat.n.01", Name: "meat"},
	)
	require.NoError(t, err)
	b, err := builder.New(src)
	require.NoError(t, err)

	require.NoError(t, b.Expand(ctx, []lexicon.ConceptID{"food.n.01", "food.n.02"}, -1))

	g := b.Graph()
	assert.Empty(t, b.Warnings())
	assert.Equal(t, []string{"food", "solid food", "meat"}, nodeNames(b))
	assert.Equal(t, []string{"food", "nutrient"}, g.Root().Lemmas())
	assert.Equal(t, []string{"solid food", "meat"}, testutil.Names(g.Root().Children()))

	meat, ok := g.Lookup("meat")
	require.True(t, ok)
	assert.Equal(t, []string{"food", "solid food"}, testutil.Names(meat.Parents()))

	// A category row naming "food" now resolves to the merged root.
	n, ok := g.PickOne("nutrient", nil)
	require.True(t, ok)
	assert.Same(t, g.Root(), n)
}

func TestExpand_SourceErrors(t *testing.T) {
	ctx, _ := testutil.NewContext(t)
	b := newBuilder(t)

	err := b.Expand(ctx, []lexicon.ConceptID{"nonexistent.n.01"}, -1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, builder.ErrBuildFailed))
	assert.True(t, errors.Is(err, lexicon.ErrUnknownConcept))
}

func TestExpand_Cancelled(t *testing.T) {
	ctx, _ := testutil.NewContext(t)
	ctx, cancel := context.WithCancel(ctx)
	cancel()

	err := newBuilder(t).Expand(ctx, []lexicon.ConceptID{"food.n.02"}, -1)
	assert.True(t, errors.Is(err, context.Canceled))
}

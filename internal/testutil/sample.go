package testutil

import (
	"testing"

	"github.com/specialistvlad/pantrygraph/internal/property"
	"github.com/specialistvlad/pantrygraph/internal/taxonomy"
	"github.com/stretchr/testify/require"
)

// sampleNode describes one node of the sample taxonomy.
type sampleNode struct {
	name    string
	props   []string
	parents []string
	cancels []string
}

// sampleTaxonomy is a small food hierarchy exercising multiple inheritance
// and a cancellation. Parents always precede their children.
var sampleTaxonomy = []sampleNode{
	{name: "food"},
	{name: "fruit", props: []string{"fruit"}, parents: []string{"food"}},
	{name: "protein", props: []string{"protein"}, parents: []string{"food"}},
	{name: "animal product", props: []string{"animal"}, parents: []string{"food"}},
	{name: "eggs", parents: []string{"animal product"}},
	{name: "dairy", props: []string{"dairy"}, parents: []string{"animal product"}},
	{name: "cheese", props: []string{"base"}, parents: []string{"dairy"}},
	{name: "meat", props: []string{"meat", "base"}, parents: []string{"animal product", "protein"}},
	{name: "red meat", props: []string{"base"}, parents: []string{"meat"}},
	{name: "beef", parents: []string{"red meat"}},
	{name: "fish", props: []string{"fish", "base"}, parents: []string{"meat", "protein"}},
	{name: "rockfish", parents: []string{"fish"}},
	{name: "catfish", parents: []string{"fish"}},
	{name: "poultry", props: []string{"poultry", "base"}, parents: []string{"meat", "protein"}},
	{name: "chicken", parents: []string{"poultry"}},
	{name: "turkey", parents: []string{"poultry"}},
	{name: "tofu", props: []string{"tofu", "-meat"}, parents: []string{"protein"}},
	{name: "tofurkey", parents: []string{"tofu", "turkey"}, cancels: []string{"meat"}},
}

// SampleIndex builds the sample taxonomy. Every node carries its own name as
// an alias.
func SampleIndex(t *testing.T) *taxonomy.Index {
	t.Helper()
	idx := taxonomy.NewIndex()
	for _, s := range sampleTaxonomy {
		n, err := idx.Create(s.name, s.name)
		require.NoError(t, err)
		for _, raw := range s.props {
			n.AddProperty(property.MustParse(raw))
		}
		for _, p := range s.parents {
			require.NoError(t, n.AddParent(MustLookup(t, idx, p)))
		}
		for _, c := range s.cancels {
			require.NoError(t, n.AddCancel(MustLookup(t, idx, c)))
		}
	}
	return idx
}

// MustLookup returns the node named name or fails the test.
func MustLookup(t *testing.T, idx *taxonomy.Index, name string) *taxonomy.Node {
	t.Helper()
	n, ok := idx.Lookup(name)
	require.True(t, ok, "node %q not found", name)
	return n
}

// Names maps nodes to their canonical names, preserving order.
func Names(nodes []*taxonomy.Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Name())
	}
	return out
}

package builder

import (
	"testing"

	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/specialistvlad/pantrygraph/internal/lexicon"
	"github.com/specialistvlad/pantrygraph/internal/tables"
	"github.com/specialistvlad/pantrygraph/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	ctx, _ := testutil.NewContext(t)
	src, err := lexicon.NewStatic(
		lexicon.Entry{ID: "a", Hyponyms: []lexicon.ConceptID{"b", "c"}},
		lexicon.Entry{ID: "b"},
		lexicon.Entry{ID: "c"},
	)
	require.NoError(t, err)

	expansion := promtest.ToFloat64(nodesCreated.WithLabelValues("expansion"))
	rows := promtest.ToFloat64(rowsMerged.WithLabelValues(string(tables.KindSynonym)))
	autoCreated := promtest.ToFloat64(warningsTotal.WithLabelValues(string(WarnAutoCreated)))

	b, err := New(src)
	require.NoError(t, err)
	require.NoError(t, b.Expand(ctx, []lexicon.ConceptID{"a"}, -1))

	syn := tables.New("syn")
	syn.Add("b", "bee")
	syn.Add("x", "ex")
	require.NoError(t, b.MergeSynonyms(ctx, syn))

	assert.Equal(t, 3.0, promtest.ToFloat64(nodesCreated.WithLabelValues("expansion"))-expansion)
	assert.Equal(t, 2.0, promtest.ToFloat64(rowsMerged.WithLabelValues(string(tables.KindSynonym)))-rows)
	assert.Equal(t, 1.0, promtest.ToFloat64(warningsTotal.WithLabelValues(string(WarnAutoCreated)))-autoCreated)
}

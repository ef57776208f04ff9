package builder

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/pantrygraph/internal/ctxlog"
	"github.com/specialistvlad/pantrygraph/internal/graph"
	"github.com/specialistvlad/pantrygraph/internal/lexicon"
	"github.com/specialistvlad/pantrygraph/internal/taxonomy"
)

// DefaultRootName names the synthetic root unless WithRootName overrides it.
const DefaultRootName = "food"

// lexiconTable is the Warning.Table value for anomalies met during expansion.
const lexiconTable = "lexicon"

// Builder accumulates one graph. It is not safe for concurrent use.
type Builder struct {
	source   lexicon.Source
	rootName string

	index    *taxonomy.Index
	root     *taxonomy.Node
	graph    *graph.Graph
	concepts map[lexicon.ConceptID]*taxonomy.Node
	order    []lexicon.ConceptID
	warnings []Warning
	// rootBound is set once a seed concept has been merged into the root.
	rootBound bool
}

// Option configures a Builder.
type Option func(*Builder)

// WithRootName sets the name of the synthetic root node.
func WithRootName(name string) Option {
	return func(b *Builder) { b.rootName = name }
}

// New creates a builder drawing concepts from source. The graph starts with
// only the synthetic root.
func New(source lexicon.Source, opts ...Option) (*Builder, error) {
	b := &Builder{
		source:   source,
		rootName: DefaultRootName,
		index:    taxonomy.NewIndex(),
		concepts: make(map[lexicon.ConceptID]*taxonomy.Node),
	}
	for _, opt := range opts {
		opt(b)
	}

	root, err := b.index.Create(b.rootName, b.rootName)
	if err != nil {
		return nil, fmt.Errorf("%w: creating root: %w", ErrBuildFailed, err)
	}
	b.root = root
	b.graph = graph.New(b.index, root)
	nodesCreated.WithLabelValues("root").Inc()
	return b, nil
}

// Graph returns the graph under construction.
func (b *Builder) Graph() *graph.Graph { return b.graph }

// Warnings returns every warning recorded so far, in order.
func (b *Builder) Warnings() []Warning {
	out := make([]Warning, len(b.warnings))
	copy(out, b.warnings)
	return out
}

// warn records, logs and counts a warning.
func (b *Builder) warn(ctx context.Context, w Warning) {
	b.warnings = append(b.warnings, w)
	warningsTotal.WithLabelValues(string(w.Kind)).Inc()
	ctxlog.FromContext(ctx).Warn("Graph construction warning.",
		"kind", w.Kind,
		"table", w.Table,
		"entry", w.Entry,
		"message", w.Message,
	)
}

// seed returns the node for a seed concept. The first seed whose name equals
// the root name is merged into the root: its aliases are added to the root and
// its hyponyms hang directly below it.
func (b *Builder) seed(ctx context.Context, id lexicon.ConceptID) (*taxonomy.Node, error) {
	if _, ok := b.concepts[id]; ok || b.rootBound {
		return b.concept(ctx, id)
	}
	name, err := b.source.Name(id)
	if err != nil {
		return nil, fmt.Errorf("%w: name of %s: %w", ErrBuildFailed, id, err)
	}
	if name != b.rootName {
		return b.concept(ctx, id)
	}
	aliases, err := b.source.Aliases(id)
	if err != nil {
		return nil, fmt.Errorf("%w: aliases of %s: %w", ErrBuildFailed, id, err)
	}
	for _, a := range aliases {
		b.root.AddLemma(a)
	}
	b.rootBound = true
	b.concepts[id] = b.root
	b.order = append(b.order, id)
	ctxlog.FromContext(ctx).Debug("Seed merged into root.", "concept", id, "root", b.rootName)
	return b.root, nil
}

// concept returns the node for id, creating it from the lexicon on first use.
func (b *Builder) concept(ctx context.Context, id lexicon.ConceptID) (*taxonomy.Node, error) {
	if n, ok := b.concepts[id]; ok {
		return n, nil
	}

	name, err := b.source.Name(id)
	if err != nil {
		return nil, fmt.Errorf("%w: name of %s: %w", ErrBuildFailed, id, err)
	}
	aliases, err := b.source.Aliases(id)
	if err != nil {
		return nil, fmt.Errorf("%w: aliases of %s: %w", ErrBuildFailed, id, err)
	}

	n, err := b.index.Create(name, aliases...)
	if errors.Is(err, taxonomy.ErrDuplicateName) && name != string(id) {
		b.warn(ctx, Warning{
			Kind:    WarnRenamed,
			Table:   lexiconTable,
			Entry:   string(id),
			Message: fmt.Sprintf("name %q already taken, using the concept id", name),
		})
		n, err = b.index.Create(string(id), aliases...)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: concept %s: %w", ErrBuildFailed, id, err)
	}

	b.concepts[id] = n
	b.order = append(b.order, id)
	nodesCreated.WithLabelValues("expansion").Inc()
	return n, nil
}

package builder

import (
	"context"
	"fmt"

	"github.com/specialistvlad/pantrygraph/internal/ctxlog"
	"github.com/specialistvlad/pantrygraph/internal/property"
	"github.com/specialistvlad/pantrygraph/internal/substitute"
	"github.com/specialistvlad/pantrygraph/internal/tables"
	"github.com/specialistvlad/pantrygraph/internal/taxonomy"
)

// groupSuffix is appended to a base concept's name to name its substitution
// group.
const groupSuffix = " substitutes"

// Merge applies t as a table of kind k.
func (b *Builder) Merge(ctx context.Context, k tables.Kind, t *tables.Table) error {
	switch k {
	case tables.KindCategory:
		return b.MergeCategories(ctx, t)
	case tables.KindSubstitution:
		return b.MergeSubstitutions(ctx, t)
	case tables.KindProperty:
		return b.MergeProperties(ctx, t)
	case tables.KindSynonym:
		return b.MergeSynonyms(ctx, t)
	case tables.KindCancellation:
		return b.MergeCancellations(ctx, t)
	default:
		return fmt.Errorf("%w: %w: %q", ErrBuildFailed, tables.ErrUnknownKind, k)
	}
}

// MergeCategories makes every member a child of its row's category. A
// category that does not resolve is created under the root; members that do
// not resolve are created under the category.
func (b *Builder) MergeCategories(ctx context.Context, t *tables.Table) error {
	return b.mergeRows(ctx, tables.KindCategory, t, func(row tables.Row) error {
		head, created, err := b.resolve(row.Category)
		if err != nil {
			return err
		}
		if created {
			b.link(ctx, t, row.Category, b.root, head)
		}
		for _, m := range row.Members {
			member, _, err := b.resolve(m)
			if err != nil {
				return err
			}
			b.link(ctx, t, row.Category, head, member)
		}
		return nil
	})
}

// MergeSubstitutions creates, for each row, a substitution group named after
// the base concept, parented under the root, with the base as its first child
// followed by every alternative.
func (b *Builder) MergeSubstitutions(ctx context.Context, t *tables.Table) error {
	return b.mergeRows(ctx, tables.KindSubstitution, t, func(row tables.Row) error {
		base, _, err := b.resolve(row.Category)
		if err != nil {
			return err
		}
		group, ok, err := b.group(ctx, t, row.Category, base)
		if err != nil || !ok {
			return err
		}
		b.link(ctx, t, row.Category, group, base)
		for _, alt := range row.Members {
			n, _, err := b.resolve(alt)
			if err != nil {
				return err
			}
			b.link(ctx, t, row.Category, group, n)
		}
		return nil
	})
}

// group returns the substitution group of base, creating it on first use.
// It reports false when the group's name is held by an ordinary node.
func (b *Builder) group(ctx context.Context, t *tables.Table, entry string, base *taxonomy.Node) (*taxonomy.Node, bool, error) {
	name := base.Name() + groupSuffix
	if g, ok := b.index.Lookup(name); ok {
		if !substitute.IsGroup(g) {
			b.warn(ctx, Warning{
				Kind:    WarnRejectedEdge,
				Table:   t.Name,
				Entry:   entry,
				Message: fmt.Sprintf("node %q exists and is not a substitution group", name),
			})
			return nil, false, nil
		}
		return g, true, nil
	}

	g, err := b.index.Create(name)
	if err != nil {
		return nil, false, fmt.Errorf("%w: creating group %q: %w", ErrBuildFailed, name, err)
	}
	g.AddProperty(substitute.GroupProperty)
	nodesCreated.WithLabelValues("merge").Inc()
	b.link(ctx, t, entry, b.root, g)
	return g, true, nil
}

// MergeProperties attaches each row's property tokens to its concept. A
// concept that does not resolve is created under the root and flagged.
func (b *Builder) MergeProperties(ctx context.Context, t *tables.Table) error {
	return b.mergeRows(ctx, tables.KindProperty, t, func(row tables.Row) error {
		n, err := b.resolveFlagged(ctx, t, row.Category)
		if err != nil {
			return err
		}
		for _, token := range row.Members {
			p, err := property.Parse(token)
			if err == nil && p.Tag == substitute.GroupTag {
				err = fmt.Errorf("tag %q is reserved", p.Tag)
			}
			if err != nil {
				b.warn(ctx, Warning{Kind: WarnBadProperty, Table: t.Name, Entry: row.Category, Message: err.Error()})
				continue
			}
			n.AddProperty(p)
		}
		return nil
	})
}

// MergeSynonyms adds each row's members as aliases of its concept. A concept
// that does not resolve is created under the root and flagged.
func (b *Builder) MergeSynonyms(ctx context.Context, t *tables.Table) error {
	return b.mergeRows(ctx, tables.KindSynonym, t, func(row tables.Row) error {
		n, err := b.resolveFlagged(ctx, t, row.Category)
		if err != nil {
			return err
		}
		for _, alias := range row.Members {
			n.AddLemma(alias)
		}
		return nil
	})
}

// MergeCancellations makes each row's concept cancel the listed ancestors.
// Nothing is created: unresolved names are flagged and skipped.
func (b *Builder) MergeCancellations(ctx context.Context, t *tables.Table) error {
	return b.mergeRows(ctx, tables.KindCancellation, t, func(row tables.Row) error {
		n, ok := b.index.PickOne(row.Category, nil)
		if !ok {
			b.warn(ctx, Warning{Kind: WarnUnresolved, Table: t.Name, Entry: row.Category, Message: "concept not found"})
			return nil
		}
		for _, target := range row.Members {
			c, ok := b.index.PickOne(target, nil)
			if !ok {
				b.warn(ctx, Warning{Kind: WarnUnresolved, Table: t.Name, Entry: row.Category, Message: fmt.Sprintf("cancelled concept %q not found", target)})
				continue
			}
			if err := n.AddCancel(c); err != nil {
				b.warn(ctx, Warning{Kind: WarnRejectedEdge, Table: t.Name, Entry: row.Category, Message: err.Error()})
			}
		}
		return nil
	})
}

func (b *Builder) mergeRows(ctx context.Context, k tables.Kind, t *tables.Table, apply func(tables.Row) error) error {
	logger := ctxlog.FromContext(ctx).With("kind", k, "table", t.Name)
	before := b.index.Len()
	for _, row := range t.Rows() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := apply(row); err != nil {
			return err
		}
		rowsMerged.WithLabelValues(string(k)).Inc()
	}
	logger.Debug("Table merged.", "rows", t.Len(), "nodes_created", b.index.Len()-before)
	return nil
}

// resolve finds term with PickOne or creates a node named term, aliased by
// its own name.
func (b *Builder) resolve(term string) (*taxonomy.Node, bool, error) {
	if n, ok := b.index.PickOne(term, nil); ok {
		return n, false, nil
	}
	n, err := b.index.Create(term, term)
	if err != nil {
		return nil, false, fmt.Errorf("%w: creating %q: %w", ErrBuildFailed, term, err)
	}
	nodesCreated.WithLabelValues("merge").Inc()
	return n, true, nil
}

// resolveFlagged is resolve for tables that are not expected to introduce
// concepts: a created node is placed under the root and flagged.
func (b *Builder) resolveFlagged(ctx context.Context, t *tables.Table, term string) (*taxonomy.Node, error) {
	n, created, err := b.resolve(term)
	if err != nil {
		return nil, err
	}
	if created {
		b.warn(ctx, Warning{Kind: WarnAutoCreated, Table: t.Name, Entry: term, Message: "concept not found, node created under the root"})
		b.link(ctx, t, term, b.root, n)
	}
	return n, nil
}

// link adds a parent edge, flagging edges the taxonomy refuses.
func (b *Builder) link(ctx context.Context, t *tables.Table, entry string, parent, child *taxonomy.Node) {
	if err := parent.AddChild(child); err != nil {
		b.warn(ctx, Warning{Kind: WarnRejectedEdge, Table: t.Name, Entry: entry, Message: err.Error()})
	}
}

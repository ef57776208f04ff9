package graph

import (
	"github.com/google/uuid"
	"github.com/specialistvlad/pantrygraph/internal/property"
	"github.com/specialistvlad/pantrygraph/internal/substitute"
	"github.com/specialistvlad/pantrygraph/internal/taxonomy"
)

// Graph is a built taxonomy rooted at a synthetic root node.
type Graph struct {
	id    uuid.UUID
	index *taxonomy.Index
	root  *taxonomy.Node
}

// New wraps idx with root as the graph root. root must belong to idx.
func New(idx *taxonomy.Index, root *taxonomy.Node) *Graph {
	return &Graph{id: uuid.New(), index: idx, root: root}
}

// ID identifies this build in logs and metrics.
func (g *Graph) ID() uuid.UUID { return g.id }

// Index returns the underlying index.
func (g *Graph) Index() *taxonomy.Index { return g.index }

// Root returns the synthetic root node.
func (g *Graph) Root() *taxonomy.Node { return g.root }

// Len returns the number of nodes, root included.
func (g *Graph) Len() int { return g.index.Len() }

// Lookup returns the node with the given canonical name.
func (g *Graph) Lookup(name string) (*taxonomy.Node, bool) {
	return g.index.Lookup(name)
}

// PickOne resolves query to a single node satisfying filter.
func (g *Graph) PickOne(query string, filter []property.Property) (*taxonomy.Node, bool) {
	return g.index.PickOne(query, filter)
}

// Search returns every node matching query and filter, up to limit.
func (g *Graph) Search(query string, filter []property.Property, limit int) []*taxonomy.Node {
	return g.index.Search(query, filter, limit)
}

// Substitutes returns the alternatives for n satisfying filter.
func (g *Graph) Substitutes(n *taxonomy.Node, filter []property.Property) []*taxonomy.Node {
	return substitute.Substitutes(n, filter)
}

// HasProperty reports whether p holds for n.
func (g *Graph) HasProperty(n *taxonomy.Node, p property.Property) bool {
	return taxonomy.HasProperty(n, p)
}

// EffectiveProperties resolves the claims holding for n.
func (g *Graph) EffectiveProperties(n *taxonomy.Node, mode taxonomy.Mode) []property.Property {
	return taxonomy.EffectiveProperties(n, mode)
}

// Lineage lists the structural ancestors of n, nearest first, stopping
// before the root.
func (g *Graph) Lineage(n *taxonomy.Node) []*taxonomy.Node {
	var out []*taxonomy.Node
	for _, a := range taxonomy.AncestorsBreadthFirst(n) {
		if a.ID() != g.root.ID() {
			out = append(out, a)
		}
	}
	return out
}

// SharedAncestor returns the ancestor of a nearest to b, ranked by b's
// breadth-first lineage. The root counts as an ancestor.
func (g *Graph) SharedAncestor(a, b *taxonomy.Node) (*taxonomy.Node, bool) {
	return taxonomy.SharedAncestor(a, b)
}

// FirstAncestorWith returns n or its nearest structural ancestor claiming p.
func (g *Graph) FirstAncestorWith(n *taxonomy.Node, p property.Property) (*taxonomy.Node, bool) {
	return taxonomy.FirstAncestorWith(n, p)
}

// Members lists every node below n in pre-order, excluding n.
func (g *Graph) Members(n *taxonomy.Node) []*taxonomy.Node {
	var out []*taxonomy.Node
	for d := range taxonomy.Descendants(n) {
		if d.ID() != n.ID() {
			out = append(out, d)
		}
	}
	return out
}

package taxonomy

import (
	"fmt"
	"slices"
	"strings"

	"github.com/specialistvlad/pantrygraph/internal/property"
)

// NewIndex creates an empty index.
func NewIndex() *Index {
	return &Index{
		byName: make(map[string]NodeID),
		lemmas: make(map[string][]NodeID),
	}
}

// Create adds a new node named name to the index, registering the given
// aliases. It fails if the name is empty or already taken.
func (idx *Index) Create(name string, lemmas ...string) (*Node, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if _, exists := idx.byName[name]; exists {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	n := &Node{
		id:    NodeID(len(idx.nodes)),
		name:  name,
		index: idx,
	}
	idx.nodes = append(idx.nodes, n)
	for _, l := range lemmas {
		if l != "" && !slices.Contains(n.lemmas, l) {
			n.lemmas = append(n.lemmas, l)
		}
	}
	if err := idx.Register(n); err != nil {
		// Unreachable: the name was checked above.
		return nil, err
	}
	return n, nil
}

// Register inserts n under its canonical name and each of its aliases.
// Registering the same node again is a no-op; a name held by another node is
// an error.
func (idx *Index) Register(n *Node) error {
	if n == nil || n.index != idx {
		return ErrForeignNode
	}
	if existing, ok := idx.byName[n.name]; ok && existing != n.id {
		return fmt.Errorf("%w: %q", ErrDuplicateName, n.name)
	}
	idx.byName[n.name] = n.id
	for _, l := range n.lemmas {
		idx.registerLemma(l, n.id)
	}
	return nil
}

func (idx *Index) registerLemma(alias string, id NodeID) {
	ids, known := idx.lemmas[alias]
	if !known {
		idx.lemmaOrder = append(idx.lemmaOrder, alias)
	}
	idx.lemmas[alias] = appendUnique(ids, id)
}

// Len returns the number of nodes in the index.
func (idx *Index) Len() int { return len(idx.nodes) }

// Nodes returns every node in creation order.
func (idx *Index) Nodes() []*Node { return slices.Clone(idx.nodes) }

// Lookup returns the node with the given canonical name.
func (idx *Index) Lookup(name string) (*Node, bool) {
	id, ok := idx.byName[name]
	if !ok {
		return nil, false
	}
	return idx.nodes[id], true
}

// LookupLemma returns the nodes registered under alias, in registration order.
func (idx *Index) LookupLemma(alias string) []*Node {
	return idx.resolve(idx.lemmas[alias])
}

// Search returns the nodes whose name or alias contains query and whose
// declared properties satisfy filter. Name matches come first, then alias
// matches; duplicates are dropped. An empty query selects every node. A
// limit of zero or less means no limit.
func (idx *Index) Search(query string, filter []property.Property, limit int) []*Node {
	var results []*Node
	seen := make(map[NodeID]bool)
	full := func() bool { return limit > 0 && len(results) >= limit }
	add := func(n *Node) {
		if seen[n.id] || !AllPropertiesMatch(n, filter) {
			return
		}
		seen[n.id] = true
		results = append(results, n)
	}

	for _, n := range idx.nodes {
		if full() {
			return results
		}
		if query == "" || strings.Contains(n.name, query) {
			add(n)
		}
	}
	if query == "" {
		return results
	}
	for _, alias := range idx.lemmaOrder {
		if !strings.Contains(alias, query) {
			continue
		}
		for _, id := range idx.lemmas[alias] {
			if full() {
				return results
			}
			add(idx.nodes[id])
		}
	}
	return results
}

// PickOne resolves query to a single node satisfying filter. Resolution tries,
// in order: the first node overall when query is empty, an exact name, an
// exact alias, and finally the first alias containing query. A miss returns
// false.
func (idx *Index) PickOne(query string, filter []property.Property) (*Node, bool) {
	if query == "" {
		for _, n := range idx.nodes {
			if AllPropertiesMatch(n, filter) {
				return n, true
			}
		}
		return nil, false
	}
	if n, ok := idx.Lookup(query); ok && AllPropertiesMatch(n, filter) {
		return n, true
	}
	if n, ok := idx.firstMatching(idx.lemmas[query], filter); ok {
		return n, true
	}
	for _, alias := range idx.lemmaOrder {
		if !strings.Contains(alias, query) {
			continue
		}
		if n, ok := idx.firstMatching(idx.lemmas[alias], filter); ok {
			return n, true
		}
	}
	return nil, false
}

func (idx *Index) firstMatching(ids []NodeID, filter []property.Property) (*Node, bool) {
	for _, id := range ids {
		if n := idx.nodes[id]; AllPropertiesMatch(n, filter) {
			return n, true
		}
	}
	return nil, false
}

func (idx *Index) resolve(ids []NodeID) []*Node {
	out := make([]*Node, 0, len(ids))
	for _, id := range ids {
		out = append(out, idx.nodes[id])
	}
	return out
}

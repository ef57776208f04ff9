package taxonomy

import (
	"fmt"
	"slices"

	"github.com/specialistvlad/pantrygraph/internal/property"
)

// ID returns the node's arena identifier.
func (n *Node) ID() NodeID { return n.id }

// Name returns the canonical name.
func (n *Node) Name() string { return n.name }

// Index returns the index that owns the node.
func (n *Node) Index() *Index { return n.index }

// String implements fmt.Stringer.
func (n *Node) String() string { return fmt.Sprintf("<Node %s>", n.name) }

// Lemmas returns a copy of the node's aliases.
func (n *Node) Lemmas() []string { return slices.Clone(n.lemmas) }

// Properties returns a copy of the node's own property claims.
func (n *Node) Properties() []property.Property { return slices.Clone(n.properties) }

// Parents returns the direct parents in insertion order.
func (n *Node) Parents() []*Node { return n.index.resolve(n.parents) }

// Children returns the direct children in insertion order.
func (n *Node) Children() []*Node { return n.index.resolve(n.children) }

// Cancels returns the cancelled parents in insertion order.
func (n *Node) Cancels() []*Node { return n.index.resolve(n.cancels) }

// HasParent reports whether p is a direct parent of n.
func (n *Node) HasParent(p *Node) bool {
	return p != nil && p.index == n.index && slices.Contains(n.parents, p.id)
}

// HasChild reports whether c is a direct child of n.
func (n *Node) HasChild(c *Node) bool {
	return c != nil && c.index == n.index && slices.Contains(n.children, c.id)
}

// AddParent links p as a parent of n. See AddChild.
func (n *Node) AddParent(p *Node) error {
	if p == nil {
		return fmt.Errorf("%w: nil node", ErrForeignNode)
	}
	return p.AddChild(n)
}

// AddChild links c as a child of n and n as a parent of c. Repeating the call
// has no further effect.
func (n *Node) AddChild(c *Node) error {
	if err := n.sameIndex(c); err != nil {
		return err
	}
	if n.id == c.id {
		return fmt.Errorf("%w: %s -> %s", ErrSelfEdge, n.name, c.name)
	}
	n.children = appendUnique(n.children, c.id)
	c.parents = appendUnique(c.parents, n.id)
	return nil
}

// AddCancel marks p as a parent whose ancestry is pruned when walking upward
// from n. p need not be a direct parent: the cancellation travels with the walk.
func (n *Node) AddCancel(p *Node) error {
	if err := n.sameIndex(p); err != nil {
		return err
	}
	if n.id == p.id {
		return fmt.Errorf("%w: %s cancels itself", ErrSelfEdge, n.name)
	}
	n.cancels = appendUnique(n.cancels, p.id)
	return nil
}

// AddLemma adds an alias to the node and registers it in the owning index.
// Empty aliases are ignored.
func (n *Node) AddLemma(alias string) {
	if alias == "" {
		return
	}
	if !slices.Contains(n.lemmas, alias) {
		n.lemmas = append(n.lemmas, alias)
	}
	n.index.registerLemma(alias, n.id)
}

// AddProperty adds a claim to the node. Repeating a claim has no effect.
func (n *Node) AddProperty(p property.Property) {
	if !property.Contains(n.properties, p) {
		n.properties = append(n.properties, p)
	}
}

func (n *Node) sameIndex(other *Node) error {
	if other == nil {
		return fmt.Errorf("%w: nil node", ErrForeignNode)
	}
	if other.index != n.index {
		return fmt.Errorf("%w: %s and %s", ErrForeignNode, n.name, other.name)
	}
	return nil
}

func appendUnique(ids []NodeID, id NodeID) []NodeID {
	if slices.Contains(ids, id) {
		return ids
	}
	return append(ids, id)
}

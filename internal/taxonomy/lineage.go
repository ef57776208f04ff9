package taxonomy

import (
	"slices"

	"github.com/specialistvlad/pantrygraph/internal/property"
)

// AncestorsBreadthFirst lists every structural ancestor of n, nearest first.
// Cancellations are ignored; n itself is not included.
func AncestorsBreadthFirst(n *Node) []*Node {
	idx := n.index
	var out []*Node
	seen := map[NodeID]bool{n.id: true}
	queue := slices.Clone(n.parents)
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if seen[id] {
			continue
		}
		seen[id] = true
		cur := idx.nodes[id]
		out = append(out, cur)
		queue = append(queue, cur.parents...)
	}
	return out
}

// SharedAncestor returns the ancestor of a that is nearest to b in b's
// breadth-first ancestor order.
func SharedAncestor(a, b *Node) (*Node, bool) {
	if a.index != b.index {
		return nil, false
	}
	rank := make(map[NodeID]int)
	for i, anc := range AncestorsBreadthFirst(b) {
		rank[anc.id] = i
	}
	var best *Node
	bestRank := len(rank)
	for _, anc := range AncestorsBreadthFirst(a) {
		if r, ok := rank[anc.id]; ok && r < bestRank {
			best, bestRank = anc, r
		}
	}
	return best, best != nil
}

// FirstAncestorWith returns n when it claims p, otherwise the nearest
// structural ancestor claiming p.
func FirstAncestorWith(n *Node, p property.Property) (*Node, bool) {
	if property.Contains(n.properties, p) {
		return n, true
	}
	for _, anc := range AncestorsBreadthFirst(n) {
		if property.Contains(anc.properties, p) {
			return anc, true
		}
	}
	return nil, false
}

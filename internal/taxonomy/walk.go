package taxonomy

import (
	"iter"

	"github.com/specialistvlad/pantrygraph/internal/property"
)

// cancelSet is the set of parents pruned on the current path. Sets are never
// mutated once built, so frames share them freely.
type cancelSet map[NodeID]struct{}

// with returns s extended by ids, or s itself when ids adds nothing.
func (s cancelSet) with(ids []NodeID) cancelSet {
	grows := false
	for _, id := range ids {
		if _, ok := s[id]; !ok {
			grows = true
			break
		}
	}
	if !grows {
		return s
	}
	out := make(cancelSet, len(s)+len(ids))
	for id := range s {
		out[id] = struct{}{}
	}
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out
}

func (s cancelSet) subsetOf(other cancelSet) bool {
	if len(s) > len(other) {
		return false
	}
	for id := range s {
		if _, ok := other[id]; !ok {
			return false
		}
	}
	return true
}

type walkFrame struct {
	id      NodeID
	cancels cancelSet
}

// Ancestors walks upward from n in pre-order, n first, parents in insertion
// order, pruning cancelled parents. Only nodes whose declared properties
// satisfy filter are yielded; the walk still passes through the others.
// Each node is yielded at most once. Stop early by breaking out of the range.
//
// A node reached again is re-expanded only when the new path prunes strictly
// less than every earlier visit, which keeps cyclic input finite.
func Ancestors(n *Node, filter []property.Property) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		idx := n.index
		expanded := make(map[NodeID][]cancelSet)
		yielded := make(map[NodeID]bool)
		stack := []walkFrame{{id: n.id}}

		for len(stack) > 0 {
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if covered(expanded[f.id], f.cancels) {
				continue
			}
			expanded[f.id] = append(expanded[f.id], f.cancels)

			cur := idx.nodes[f.id]
			if !yielded[f.id] {
				yielded[f.id] = true
				if AllPropertiesMatch(cur, filter) && !yield(cur) {
					return
				}
			}

			active := f.cancels.with(cur.cancels)
			// Push in reverse so the first parent is expanded first.
			for i := len(cur.parents) - 1; i >= 0; i-- {
				p := cur.parents[i]
				if _, pruned := active[p]; pruned {
					continue
				}
				stack = append(stack, walkFrame{id: p, cancels: active})
			}
		}
	}
}

// covered reports whether an earlier visit already explored at least as much
// as a visit pruning cancels would.
func covered(previous []cancelSet, cancels cancelSet) bool {
	for _, p := range previous {
		if p.subsetOf(cancels) {
			return true
		}
	}
	return false
}

// Descendants walks downward from n in pre-order, n first, children in
// insertion order. Each node is yielded once. Cancellations do not apply.
func Descendants(n *Node) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		idx := n.index
		visited := make(map[NodeID]bool)
		stack := []NodeID{n.id}
		for len(stack) > 0 {
			id := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if visited[id] {
				continue
			}
			visited[id] = true
			cur := idx.nodes[id]
			if !yield(cur) {
				return
			}
			for i := len(cur.children) - 1; i >= 0; i-- {
				if c := cur.children[i]; !visited[c] {
					stack = append(stack, c)
				}
			}
		}
	}
}

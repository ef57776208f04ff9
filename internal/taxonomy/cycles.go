package taxonomy

import "fmt"

// DetectCycles checks the child edges of the whole index for cycles and
// returns an ErrCycle naming the first node found on one.
//
// Walks tolerate cycles, so a cycle is a data-quality signal rather than a
// fault. The search is an iterative three-colour depth-first search.
func (idx *Index) DetectCycles() error {
	const (
		white = iota
		grey
		black
	)
	color := make([]int, len(idx.nodes))

	type frame struct {
		id   NodeID
		next int
	}

	for _, root := range idx.nodes {
		if color[root.id] != white {
			continue
		}
		stack := []frame{{id: root.id}}
		color[root.id] = grey
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			children := idx.nodes[top.id].children
			if top.next == len(children) {
				color[top.id] = black
				stack = stack[:len(stack)-1]
				continue
			}
			child := children[top.next]
			top.next++
			switch color[child] {
			case grey:
				return fmt.Errorf("%w involving node '%s'", ErrCycle, idx.nodes[child].name)
			case white:
				color[child] = grey
				stack = append(stack, frame{id: child})
			}
		}
	}
	return nil
}

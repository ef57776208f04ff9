// Package substitute finds interchangeable concepts through substitution
// groups: synthetic nodes marked with GroupProperty whose children are
// alternatives for one another.
package substitute

import (
	"github.com/specialistvlad/pantrygraph/internal/property"
	"github.com/specialistvlad/pantrygraph/internal/taxonomy"
)

// GroupTag is the reserved tag marking substitution-group nodes.
const GroupTag = "substitution-group"

// GroupProperty is the local claim carried by every substitution-group node.
var GroupProperty = property.Loc(GroupTag)

// IsGroup reports whether n is a substitution-group node.
func IsGroup(n *taxonomy.Node) bool {
	return property.Contains(n.Properties(), GroupProperty)
}

// Substitutes returns the alternatives for n whose declared properties satisfy
// filter. Groups are taken in ancestor-walk order from n and children keep
// insertion order within a group. n itself is never returned, and a node in
// several groups is returned once.
func Substitutes(n *taxonomy.Node, filter []property.Property) []*taxonomy.Node {
	var out []*taxonomy.Node
	seen := map[taxonomy.NodeID]bool{n.ID(): true}
	for group := range taxonomy.Ancestors(n, []property.Property{GroupProperty}) {
		for _, c := range group.Children() {
			if seen[c.ID()] {
				continue
			}
			seen[c.ID()] = true
			if taxonomy.AllPropertiesMatch(c, filter) {
				out = append(out, c)
			}
		}
	}
	return out
}

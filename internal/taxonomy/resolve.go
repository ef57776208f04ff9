package taxonomy

import (
	"github.com/specialistvlad/pantrygraph/internal/property"
)

// EffectiveProperties resolves the claims that hold for n.
//
// In Declared mode only n's own claims are reported, positive ones as local.
// In Inherited mode n's local claims come first, followed by the non-local
// claims of every node on the ancestor walk in walk order. A local claim
// shadows inherited claims on the same tag.
func EffectiveProperties(n *Node, mode Mode) []property.Property {
	if mode == Declared {
		out := make([]property.Property, 0, len(n.properties))
		for _, p := range n.properties {
			if lp := p.AsLocal(); !property.Contains(out, lp) {
				out = append(out, lp)
			}
		}
		return out
	}

	var out []property.Property
	shadowed := make(map[string]bool)
	for _, p := range n.properties {
		if p.Polarity == property.Local {
			out = append(out, p)
			shadowed[p.Tag] = true
		}
	}
	for a := range Ancestors(n, nil) {
		for _, p := range a.properties {
			if p.Polarity == property.Local || shadowed[p.Tag] || property.Contains(out, p) {
				continue
			}
			out = append(out, p)
		}
	}
	return out
}

// HasProperty reports whether p is claimed by n or by any node on its
// ancestor walk. Local claims only count on n itself, where they also
// satisfy a positive request.
func HasProperty(n *Node, p property.Property) bool {
	switch p.Polarity {
	case property.Local:
		return property.Contains(n.properties, p)
	case property.Positive:
		if property.Contains(n.properties, property.Loc(p.Tag)) {
			return true
		}
	}
	for a := range Ancestors(n, nil) {
		if property.Contains(a.properties, p) {
			return true
		}
	}
	return false
}

// AllPropertiesMatch reports whether every required property matches the
// declared properties of n. An empty requirement always matches.
func AllPropertiesMatch(n *Node, required []property.Property) bool {
	if len(required) == 0 {
		return true
	}
	return property.MatchesAll(required, EffectiveProperties(n, Declared))
}

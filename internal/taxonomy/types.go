package taxonomy

import (
	"errors"

	"github.com/specialistvlad/pantrygraph/internal/property"
)

// NodeID addresses a node inside its Index. IDs are dense and assigned in
// creation order.
type NodeID int

var (
	// ErrEmptyName is returned when a node is created without a canonical name.
	ErrEmptyName = errors.New("node name cannot be empty")
	// ErrDuplicateName is returned when a name already maps to a different node.
	ErrDuplicateName = errors.New("node name already registered to a different node")
	// ErrForeignNode is returned when an operation mixes nodes of two indexes.
	ErrForeignNode = errors.New("node belongs to a different index")
	// ErrSelfEdge is returned when an edge would connect a node to itself.
	ErrSelfEdge = errors.New("self-referential edge not allowed")
	// ErrCycle is returned by DetectCycles.
	ErrCycle = errors.New("cycle detected")
)

// Node is a single taxonomy entry. It is created by Index.Create and mutated
// only through its Add* methods.
type Node struct {
	// id is the arena slot of the node.
	id NodeID
	// name is the canonical name, unique within the index.
	name string
	// lemmas are alternate lookup keys, in insertion order.
	lemmas []string
	// properties are the node's own claims, in insertion order.
	properties []property.Property
	// parents and children mirror each other across the index.
	parents  []NodeID
	children []NodeID
	// cancels names parents whose ancestry is pruned when walking up from here.
	cancels []NodeID
	// index owns the node; it never changes.
	index *Index
}

// Index owns every node of one graph and maps names and aliases to them.
type Index struct {
	// nodes is the arena, indexed by NodeID.
	nodes []*Node
	// byName maps a canonical name to its node.
	byName map[string]NodeID
	// lemmas maps an alias to the nodes using it, in registration order.
	lemmas map[string][]NodeID
	// lemmaOrder records aliases in first-registration order.
	lemmaOrder []string
}

// Mode selects how EffectiveProperties resolves a node.
type Mode int

const (
	// Inherited collects the node's local claims plus everything inherited
	// through the ancestor walk.
	Inherited Mode = iota
	// Declared reports only the node's own claims, with positive claims
	// treated as local.
	Declared
)

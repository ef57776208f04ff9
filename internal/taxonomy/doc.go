/*
Package taxonomy holds the concept graph: nodes, the index that owns them and
the property resolver that answers inheritance questions over them.

# Storage

Nodes live in an arena owned by an Index and refer to one another by NodeID.
Parent, child and cancel edges are identifier lists, so the mutual parent/child
references never form owning pointer cycles. A node's index is fixed when the
index creates it.

# Inheritance

Properties flow from ancestors to descendants. The ancestor walk is a
pre-order depth-first traversal over parents in insertion order. Every node may
name cancelled parents: when the walk passes through such a node, the union of
its cancellations and those collected so far prunes the matching parents from
every path that continues upward.

	animal ── meat ── poultry ── turkey ──┐
	                                      ├── tofurkey (cancels meat)
	                           tofu ──────┘

Walking from tofurkey visits tofurkey, tofu, turkey, poultry and stops there:
meat is cancelled for every path starting at tofurkey.

# Concurrency

The package does no locking. Queries may run concurrently with each other but
not with any mutator; callers serialize writers.
*/
package taxonomy

// Package graph provides the query handle over one built taxonomy.
//
// # Why Graph Package Exists
//
// The builder, the CLI and any embedding service need one value that stands
// for "the graph" without sharing global state. Graph is that handle: it pairs
// a taxonomy.Index with its synthetic root and exposes the read-only query
// interface (lookup, search, substitution and property queries).
//
// # Lifecycle
//
// 1. **Created** by the builder once expansion begins
// 2. **Populated** by the builder's expansion and table merges
// 3. **Queried** by callers after construction returns
// 4. **Discarded** by the caller; nothing is persisted
//
// # Thread-Safety
//
// Queries only read the index and may run concurrently once construction has
// finished. A Graph must not be queried while the builder is still merging.
package graph

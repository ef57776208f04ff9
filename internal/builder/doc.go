/*
Package builder constructs a taxonomy graph from a lexical hierarchy and a set
of curated tables. It acts as the bridge between the external sources (the
'lexicon' and 'tables' packages) and the query handle (the 'graph' package).

The primary artifact produced by this package is a populated *graph.Graph.

Construction is a multi-phase process:

 1. Expansion: starting from one or more seed concepts, the builder descends the
    lexicon's hyponyms depth-first, creating one node per newly-encountered
    concept and reusing nodes that already exist. Shared descendants reached
    along several paths are therefore created once. Descent is bounded by a
    maximum depth; a negative depth is unbounded.

 2. Cross-linking: once expansion has finished, every concept node is visited
    again and each of its hypernyms that is already present in the graph gets a
    parent edge. This catches join points invisible from a single downward
    descent.

 3. Curated merges: category, substitution, property, synonym and cancellation
    tables are applied in that order. Each row resolves its terms with
    PickOne and creates missing nodes on demand. Substitution rows
    additionally create a substitution-group node between the base concept and
    its alternatives.

Anomalies in table data never stop construction. They are collected as
Warnings, logged, and counted. Errors from the lexicon source are fatal and
wrapped with ErrBuildFailed; the caller discards the partial graph.
*/
package builder

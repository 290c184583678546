/*
Package graph owns the position ontology: the set of positions and the
directed, possibly-cyclic adjacency of transitions between them.

The structure is deliberately small: a map of positions by ID plus a
per-source ordered edge list. Nothing here needs shortest paths or
connectivity queries, so no general-purpose graph library is involved;
direct-neighbor lookups are the whole contract.

The graph is write-once in practice: populate it at startup, then share
it read-only across any number of sessions. Mutating it while a session
is walking is unsupported.
*/
package graph

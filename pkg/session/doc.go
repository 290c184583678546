/*
Package session implements a stateful walk over a position graph.

A Session tracks exactly one live variable, the current position ID, plus
two append-only logs: the path history and the drills earned so far. It is
designed for a single goroutine; if several sessions share one graph, the
graph must be read-only by the time the first session starts walking.
*/
package session

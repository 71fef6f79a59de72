/*
Package editor implements the authoring session for one automation graph.

An Editor is the only path by which a graph changes during a session: node
creation with catalog defaults, scoped patches against the selected node,
connect/disconnect, and the button/keyword sub-list editors. Every mutation
preserves the graph invariants (single start node, unique ids, valid edge
endpoints).

Mutations are synchronous and the session is not safe for concurrent use; the
save pipeline is the only asynchronous step, and the session enforces at most
one save in flight.
*/
package editor

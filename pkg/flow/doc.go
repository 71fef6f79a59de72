// Package flow defines the automation workflow graph core: the node and edge
// data model, the kind-specific configuration union, the defaults catalog,
// and the bidirectional transform between a persisted automation record and
// an editable in-memory graph.
//
// The editable graph always contains exactly one synthetic start node (fixed
// id "start"); the persisted form never does. BuildGraph materializes the
// start node on read, BuildSaveRequest strips it (and every edge it sources)
// on write.
package flow

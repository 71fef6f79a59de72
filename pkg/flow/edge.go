package flow

import "github.com/google/uuid"

// EdgeKindCustom is the rendering kind carried by every editor edge.
const EdgeKindCustom = "custom"

// Edge is a directed transition between two nodes.
type Edge struct {
	ID       string `json:"id"`
	Source   string `json:"source"`
	Target   string `json:"target"`
	Animated bool   `json:"animated"`
	Kind     string `json:"type"`
}

// NewEdge creates an edge with a fresh id and editor defaults.
func NewEdge(source, target string) Edge {
	return Edge{
		ID:       uuid.NewString(),
		Source:   source,
		Target:   target,
		Animated: true,
		Kind:     EdgeKindCustom,
	}
}

// Key returns the directed connection identity. Two edges with the same key
// are duplicates regardless of their ids.
func (e Edge) Key() string { return e.Source + "\x1f" + e.Target }

// NormalizeEdges collapses the edge set to one edge per (source, target) key,
// preserving first-seen order. Idempotent: a canonical set passes through
// unchanged.
func NormalizeEdges(edges []Edge) []Edge {
	seen := make(map[string]struct{}, len(edges))
	out := make([]Edge, 0, len(edges))
	for _, e := range edges {
		key := e.Key()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, e)
	}
	return out
}

// NeedsCompaction reports whether the edge set has outgrown the opportunistic
// normalization bound. Repeated interactive connects tolerate transient
// duplicates; this keeps the set from growing unchecked between saves.
func NeedsCompaction(edgeCount, nodeCount int) bool {
	return edgeCount > 2*nodeCount
}

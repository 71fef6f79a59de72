package flow

import (
	"log/slog"
	"sort"

	"github.com/rahultadvi/chatflow/internal/logging"
)

// Graph is an editable automation graph: the synthetic start node plus every
// persisted node, and the canonical edge set.
type Graph struct {
	Nodes []Node
	Edges []Edge
}

// NodeByID returns the node with the given id.
func (g Graph) NodeByID(id string) (Node, bool) {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// BuildGraph converts a persisted record into an editable graph. A nil
// record, or one without persisted nodes, is the "new automation" signal and
// yields a graph holding only the start node.
//
// Structural problems in the record (unknown kinds, edges with missing
// endpoints) are recovered locally: the offending row is discarded with a log
// entry and deserialization continues.
func BuildGraph(rec *Record, logger *slog.Logger) Graph {
	if logger == nil {
		logger = logging.NewNop()
	}

	g := Graph{Nodes: []Node{StartNode()}}
	if rec == nil || len(rec.Nodes) == 0 {
		return g
	}

	// Stored position is an order index; sorting it fixes the canonical
	// read order used for fallback edge synthesis.
	sorted := make([]NodeRecord, len(rec.Nodes))
	copy(sorted, rec.Nodes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Position < sorted[j].Position
	})

	ids := map[string]struct{}{StartNodeID: {}}
	for i, nr := range sorted {
		node, ok := buildNode(nr, i, logger)
		if !ok {
			continue
		}
		if _, dup := ids[node.ID]; dup {
			logger.Warn("discarding node with duplicate id", "node", node.ID)
			continue
		}
		ids[node.ID] = struct{}{}
		g.Nodes = append(g.Nodes, node)
	}

	if len(rec.Edges) > 0 {
		g.Edges = explicitEdges(rec.Edges, ids, logger)
	} else {
		g.Edges = chainEdges(g.Nodes)
	}
	return g
}

func buildNode(nr NodeRecord, index int, logger *slog.Logger) (Node, bool) {
	if nr.NodeID == "" || !nr.Type.Valid() || nr.Type == KindStart {
		logger.Warn("discarding invalid persisted node", "node", nr.NodeID, "type", nr.Type)
		return Node{}, false
	}

	label := DefaultLabel(nr.Type)
	if l, ok := nr.Data["label"].(string); ok && l != "" {
		label = l
	}

	pos := FallbackPosition(index)
	if nr.X != nil && nr.Y != nil {
		pos = Position{X: *nr.X, Y: *nr.Y}
	}

	cfg, err := DecodeConfig(nr.Type, nr.Data)
	if err != nil {
		logger.Warn("falling back to default config", "node", nr.NodeID, "err", err)
		cfg, _ = DefaultConfig(nr.Type)
	}

	return Node{ID: nr.NodeID, Kind: nr.Type, Label: label, Position: pos, Config: cfg}, true
}

// explicitEdges normalizes the persisted edge rows: either endpoint spelling
// is accepted, rows referencing missing nodes are discarded, and the result
// is deduplicated by the directed (source, target) key.
func explicitEdges(rows []EdgeRecord, ids map[string]struct{}, logger *slog.Logger) []Edge {
	edges := make([]Edge, 0, len(rows))
	for _, er := range rows {
		src, dst := er.From(), er.To()
		if _, ok := ids[src]; !ok || src == "" {
			logger.Warn("discarding edge with missing endpoint", "edge", er.ID, "source", src, "target", dst)
			continue
		}
		if _, ok := ids[dst]; !ok || dst == "" {
			logger.Warn("discarding edge with missing endpoint", "edge", er.ID, "source", src, "target", dst)
			continue
		}
		e := NewEdge(src, dst)
		if er.ID != "" {
			e.ID = er.ID
		}
		edges = append(edges, e)
	}
	return NormalizeEdges(edges)
}

// chainEdges synthesizes the linear fallback chain start -> first -> second
// -> ... for records persisted without explicit edges.
func chainEdges(nodes []Node) []Edge {
	edges := make([]Edge, 0, len(nodes))
	prev := StartNodeID
	for _, n := range nodes {
		if n.IsStart() {
			continue
		}
		if n.ID == prev {
			continue
		}
		edges = append(edges, NewEdge(prev, n.ID))
		prev = n.ID
	}
	return NormalizeEdges(edges)
}

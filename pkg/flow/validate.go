package flow

import (
	"errors"
	"fmt"
)

// ValidateGraph checks the structural invariants that must hold after every
// mutation:
//
//  1. exactly one start node, with the fixed id and kind;
//  2. unique node ids;
//  3. every edge references existing nodes, nothing points at start, and
//     start sources at most one edge;
//  4. no two edges share the same directed (source, target) key;
//  5. every non-start node carries the configuration of its own kind.
//
// All violations are reported, not just the first.
func ValidateGraph(g Graph) error {
	var errs []error

	starts := 0
	ids := make(map[string]struct{}, len(g.Nodes))
	for _, n := range g.Nodes {
		if _, dup := ids[n.ID]; dup {
			errs = append(errs, fmt.Errorf("duplicate node id %q", n.ID))
			continue
		}
		ids[n.ID] = struct{}{}

		if n.IsStart() {
			starts++
			if n.Kind != KindStart {
				errs = append(errs, fmt.Errorf("node %q must have the start kind, got %q", n.ID, n.Kind))
			}
			continue
		}
		if n.Kind == KindStart {
			errs = append(errs, fmt.Errorf("node %q has the start kind but not the start id", n.ID))
			continue
		}
		if !n.Kind.Valid() {
			errs = append(errs, fmt.Errorf("node %q: %w: %q", n.ID, ErrUnknownKind, n.Kind))
			continue
		}
		if n.Config == nil {
			errs = append(errs, fmt.Errorf("node %q has no configuration", n.ID))
		} else if n.Config.Kind() != n.Kind {
			errs = append(errs, fmt.Errorf("node %q is %q but carries %q configuration", n.ID, n.Kind, n.Config.Kind()))
		}
	}
	if starts != 1 {
		errs = append(errs, fmt.Errorf("graph must contain exactly one start node, found %d", starts))
	}

	keys := make(map[string]struct{}, len(g.Edges))
	startOut := 0
	for _, e := range g.Edges {
		if e.Source == StartNodeID {
			startOut++
		}
		if _, ok := ids[e.Source]; !ok {
			errs = append(errs, fmt.Errorf("edge %q references missing source %q", e.ID, e.Source))
		}
		if _, ok := ids[e.Target]; !ok {
			errs = append(errs, fmt.Errorf("edge %q references missing target %q", e.ID, e.Target))
		}
		if e.Target == StartNodeID {
			errs = append(errs, fmt.Errorf("edge %q points at the start node", e.ID))
		}
		if _, dup := keys[e.Key()]; dup {
			errs = append(errs, fmt.Errorf("duplicate connection %s -> %s", e.Source, e.Target))
		}
		keys[e.Key()] = struct{}{}
	}
	if startOut > 1 {
		errs = append(errs, fmt.Errorf("the start node has %d outgoing edges, at most one is allowed", startOut))
	}

	return errors.Join(errs...)
}

// Unreachable crawls the graph from the start node and returns the ids of
// nodes no path reaches. Orphans are legal while authoring, so this is a
// warning surface, not a validation failure.
func Unreachable(g Graph) []string {
	adjacent := make(map[string][]string, len(g.Nodes))
	for _, e := range g.Edges {
		adjacent[e.Source] = append(adjacent[e.Source], e.Target)
	}

	visited := make(map[string]bool, len(g.Nodes))
	queue := []string{StartNodeID}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if visited[current] {
			continue
		}
		visited[current] = true
		queue = append(queue, adjacent[current]...)
	}

	var orphans []string
	for _, n := range g.Nodes {
		if !visited[n.ID] {
			orphans = append(orphans, n.ID)
		}
	}
	return orphans
}

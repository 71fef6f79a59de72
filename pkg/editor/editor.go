package editor

import (
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/rahultadvi/chatflow/internal/logging"
	"github.com/rahultadvi/chatflow/pkg/flow"
	"github.com/rahultadvi/chatflow/pkg/ports"
	"github.com/rahultadvi/chatflow/pkg/schema"
)

// ErrNoSelection is returned by sub-list editors when no node is selected.
var ErrNoSelection = errors.New("no node selected")

// ErrNotReplyNode is returned when a button or media operation targets a
// node whose kind carries neither.
var ErrNotReplyNode = errors.New("selected node does not carry buttons or media")

// ErrNotConditionsNode is returned when a keyword operation targets a node
// that is not a conditions node.
var ErrNotConditionsNode = errors.New("selected node does not carry keywords")

// Editor is a single-session authoring surface over one automation graph.
type Editor struct {
	logger *slog.Logger
	cache  ports.ListingCache

	id            string
	name          string
	description   string
	trigger       string
	triggerConfig map[string]any

	nodes    []flow.Node
	edges    []flow.Edge
	selected string

	saving atomic.Bool
}

// Option configures the Editor.
type Option func(*Editor)

// WithLogger configures a logger for recovered read-path problems and save
// diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Editor) { e.logger = logger }
}

// WithListingCache wires the automation listing cache that successful saves
// invalidate.
func WithListingCache(cache ports.ListingCache) Option {
	return func(e *Editor) { e.cache = cache }
}

// New opens an editor session. A nil record starts a new automation: a graph
// holding only the start node.
func New(rec *flow.Record, opts ...Option) *Editor {
	e := &Editor{
		logger:        logging.NewNop(),
		triggerConfig: map[string]any{},
	}
	for _, opt := range opts {
		opt(e)
	}

	if rec != nil {
		e.id = rec.ID
		e.name = rec.Name
		e.description = rec.Description
		e.trigger = rec.Trigger
		if rec.TriggerConfig != nil {
			e.triggerConfig = rec.TriggerConfig
		}
	}

	g := flow.BuildGraph(rec, e.logger)
	e.nodes = g.Nodes
	e.edges = g.Edges
	return e
}

// ID returns the persisted automation id, empty for a not-yet-saved session.
func (e *Editor) ID() string { return e.id }

// Name returns the automation name.
func (e *Editor) Name() string { return e.name }

// SetName sets the automation name.
func (e *Editor) SetName(name string) { e.name = name }

// Description returns the automation description.
func (e *Editor) Description() string { return e.description }

// SetDescription sets the automation description.
func (e *Editor) SetDescription(description string) { e.description = description }

// Trigger returns the trigger event class.
func (e *Editor) Trigger() string { return e.trigger }

// SetTrigger sets the trigger event class and its configuration.
func (e *Editor) SetTrigger(trigger string, config map[string]any) {
	e.trigger = trigger
	if config == nil {
		config = map[string]any{}
	}
	e.triggerConfig = config
}

// Graph returns the current graph. Node configs are shared references; treat
// the result as read-only and route changes through the mutation API.
func (e *Editor) Graph() flow.Graph {
	nodes := make([]flow.Node, len(e.nodes))
	copy(nodes, e.nodes)
	edges := make([]flow.Edge, len(e.edges))
	copy(edges, e.edges)
	return flow.Graph{Nodes: nodes, Edges: edges}
}

// Selected returns the currently selected node.
func (e *Editor) Selected() (flow.Node, bool) {
	n := e.node(e.selected)
	if n == nil {
		return flow.Node{}, false
	}
	return *n, true
}

// Select marks the node with the given id as selected. Returns false when
// the id is unknown; the previous selection is kept in that case.
func (e *Editor) Select(id string) bool {
	if e.node(id) == nil {
		return false
	}
	e.selected = id
	return true
}

// Deselect clears the selection.
func (e *Editor) Deselect() { e.selected = "" }

// AddNode creates a node of the given kind with its catalog defaults and a
// fresh id, places it below the existing nodes, and selects it.
// Requesting the start kind or one outside the enumeration fails with
// ErrUnknownKind.
func (e *Editor) AddNode(kind flow.NodeKind) (flow.Node, error) {
	if kind == flow.KindStart || !kind.Valid() {
		return flow.Node{}, fmt.Errorf("%w: %q", flow.ErrUnknownKind, kind)
	}

	cfg, err := flow.DefaultConfig(kind)
	if err != nil {
		return flow.Node{}, err
	}

	n := flow.Node{
		ID:       uuid.NewString(),
		Kind:     kind,
		Label:    flow.DefaultLabel(kind),
		Position: flow.FallbackPosition(len(e.nodes) - 1),
		Config:   cfg,
	}
	e.nodes = append(e.nodes, n)
	e.selected = n.ID
	return n, nil
}

// DeleteNode removes a node and every edge touching it. Deleting the start
// node or an unknown id is a no-op. Attachments owned by the node are
// released.
func (e *Editor) DeleteNode(id string) {
	if id == flow.StartNodeID {
		return
	}
	idx := -1
	for i, n := range e.nodes {
		if n.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}

	releaseAttachments(&e.nodes[idx])
	e.nodes = append(e.nodes[:idx], e.nodes[idx+1:]...)

	kept := e.edges[:0]
	for _, edge := range e.edges {
		if edge.Source == id || edge.Target == id {
			continue
		}
		kept = append(kept, edge)
	}
	e.edges = kept

	if e.selected == id {
		e.selected = ""
	}
}

// PatchSelected shallow-merges a partial field map into the selected node's
// configuration. A no-op when nothing is selected. Fields outside the
// selected kind's schema fail the whole patch.
func (e *Editor) PatchSelected(patch map[string]any) error {
	n := e.node(e.selected)
	if n == nil || len(patch) == 0 {
		return nil
	}

	if err := schema.ValidatePatch(FieldSchema(n.Kind), patch); err != nil {
		return err
	}
	return flow.PatchConfig(n.Config, patch)
}

// Connect appends a new animated edge between two existing nodes. Duplicate
// connections are tolerated transiently; normalization collapses them once
// the set outgrows the compaction bound, and always before a save.
func (e *Editor) Connect(source, target string) (flow.Edge, error) {
	if e.node(source) == nil {
		return flow.Edge{}, fmt.Errorf("connect: source %q not in graph", source)
	}
	if e.node(target) == nil {
		return flow.Edge{}, fmt.Errorf("connect: target %q not in graph", target)
	}
	if target == flow.StartNodeID {
		return flow.Edge{}, fmt.Errorf("connect: the start node accepts no incoming edges")
	}
	if source == target {
		return flow.Edge{}, fmt.Errorf("connect: %q cannot connect to itself", source)
	}

	edge := flow.NewEdge(source, target)
	e.edges = append(e.edges, edge)

	if flow.NeedsCompaction(len(e.edges), len(e.nodes)) {
		e.edges = flow.NormalizeEdges(e.edges)
	}
	return edge, nil
}

// Disconnect removes exactly the identified edge. Unknown ids are a no-op.
func (e *Editor) Disconnect(edgeID string) {
	for i, edge := range e.edges {
		if edge.ID == edgeID {
			e.edges = append(e.edges[:i], e.edges[i+1:]...)
			return
		}
	}
}

// Normalize collapses the edge set to one edge per directed connection.
func (e *Editor) Normalize() {
	e.edges = flow.NormalizeEdges(e.edges)
}

// Close tears down the session, releasing every attachment still owned by
// the graph.
func (e *Editor) Close() {
	for i := range e.nodes {
		releaseAttachments(&e.nodes[i])
	}
	e.selected = ""
}

func (e *Editor) node(id string) *flow.Node {
	if id == "" {
		return nil
	}
	for i := range e.nodes {
		if e.nodes[i].ID == id {
			return &e.nodes[i]
		}
	}
	return nil
}

func releaseAttachments(n *flow.Node) {
	switch cfg := n.Config.(type) {
	case *flow.CustomReplyConfig:
		cfg.Parts().ReleaseAll()
	case *flow.UserReplyConfig:
		cfg.Parts().ReleaseAll()
	}
}

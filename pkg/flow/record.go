package flow

// Record is the persisted form of an automation as exchanged with the
// persistence API. The synthetic start node never appears in it.
type Record struct {
	ID            string         `json:"id,omitempty" yaml:"id,omitempty"`
	Name          string         `json:"name" yaml:"name"`
	Description   string         `json:"description,omitempty" yaml:"description,omitempty"`
	Trigger       string         `json:"trigger" yaml:"trigger"`
	TriggerConfig map[string]any `json:"triggerConfig,omitempty" yaml:"triggerConfig,omitempty"`
	Nodes         []NodeRecord   `json:"automation_nodes,omitempty" yaml:"nodes,omitempty"`
	Edges         []EdgeRecord   `json:"automation_edges,omitempty" yaml:"edges,omitempty"`
}

// NodeRecord is a persisted node row.
type NodeRecord struct {
	NodeID string   `json:"nodeId" yaml:"nodeId"`
	Type   NodeKind `json:"type" yaml:"type"`

	// Position is an author-assigned order index, not a coordinate. It is
	// the canonical read order and drives fallback edge synthesis.
	Position int `json:"position" yaml:"position"`

	// Optional canvas geometry. When absent the deserializer assigns a
	// column layout.
	X *float64 `json:"positionX,omitempty" yaml:"positionX,omitempty"`
	Y *float64 `json:"positionY,omitempty" yaml:"positionY,omitempty"`

	// Data carries the label and the kind-specific configuration fields.
	Data map[string]any `json:"data,omitempty" yaml:"data,omitempty"`
}

// EdgeRecord is a persisted edge row. Older records name the endpoints
// sourceNodeId/targetNodeId; both spellings are accepted.
type EdgeRecord struct {
	ID           string `json:"id,omitempty" yaml:"id,omitempty"`
	Source       string `json:"source,omitempty" yaml:"source,omitempty"`
	Target       string `json:"target,omitempty" yaml:"target,omitempty"`
	SourceNodeID string `json:"sourceNodeId,omitempty" yaml:"sourceNodeId,omitempty"`
	TargetNodeID string `json:"targetNodeId,omitempty" yaml:"targetNodeId,omitempty"`
}

// From returns the source endpoint under either field name.
func (e EdgeRecord) From() string {
	if e.Source != "" {
		return e.Source
	}
	return e.SourceNodeID
}

// To returns the target endpoint under either field name.
func (e EdgeRecord) To() string {
	if e.Target != "" {
		return e.Target
	}
	return e.TargetNodeID
}

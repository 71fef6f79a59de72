package flow

// StartNodeID is the fixed identifier of the synthetic entry node.
const StartNodeID = "start"

// NodeKind identifies the behavior of a workflow step.
type NodeKind string

const (
	// KindStart is the synthetic entry node. It exists exactly once per
	// graph, is never persisted, and cannot be created or deleted by the
	// editor.
	KindStart NodeKind = "start"
	// KindConditions matches incoming messages against keywords.
	KindConditions NodeKind = "conditions"
	// KindCustomReply sends a message and continues.
	KindCustomReply NodeKind = "custom_reply"
	// KindUserReply asks a question and waits for the contact's answer.
	KindUserReply NodeKind = "user_reply"
	// KindTimeGap pauses the conversation for a fixed delay.
	KindTimeGap NodeKind = "time_gap"
	// KindSendTemplate sends an approved message template.
	KindSendTemplate NodeKind = "send_template"
	// KindAssignUser hands the conversation to a team member.
	KindAssignUser NodeKind = "assign_user"
)

// Kinds lists every node kind the editor can instantiate. The start kind is
// excluded: only the deserializer materializes it.
func Kinds() []NodeKind {
	return []NodeKind{
		KindConditions,
		KindCustomReply,
		KindUserReply,
		KindTimeGap,
		KindSendTemplate,
		KindAssignUser,
	}
}

// Valid reports whether k belongs to the closed kind enumeration.
func (k NodeKind) Valid() bool {
	switch k {
	case KindStart, KindConditions, KindCustomReply, KindUserReply,
		KindTimeGap, KindSendTemplate, KindAssignUser:
		return true
	}
	return false
}

func (k NodeKind) String() string { return string(k) }

// Position is a geometric canvas coordinate.
type Position struct {
	X float64 `json:"x" yaml:"x" mapstructure:"x"`
	Y float64 `json:"y" yaml:"y" mapstructure:"y"`
}

// Node is a single step in the editable workflow graph.
type Node struct {
	ID       string   `json:"id"`
	Kind     NodeKind `json:"kind"`
	Label    string   `json:"label"`
	Position Position `json:"position"`

	// Config holds the kind-specific configuration. It is nil only for the
	// start node.
	Config Config `json:"config,omitempty"`
}

// IsStart reports whether n is the synthetic entry node.
func (n Node) IsStart() bool { return n.ID == StartNodeID }

// Canonical geometry: the start node sits at the top of the column the
// deserializer lays persisted nodes into.
const (
	startX = 200
	startY = 20

	fallbackX     = 200
	fallbackYBase = 140
	fallbackYStep = 140
)

// StartNode returns the synthetic entry node at its canonical position.
func StartNode() Node {
	return Node{
		ID:       StartNodeID,
		Kind:     KindStart,
		Label:    DefaultLabel(KindStart),
		Position: Position{X: startX, Y: startY},
	}
}

// FallbackPosition is the geometric placement for the index-th node when the
// persisted record carries no coordinates.
func FallbackPosition(index int) Position {
	return Position{X: fallbackX, Y: float64(fallbackYBase + fallbackYStep*index)}
}

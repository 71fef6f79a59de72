package flow

import "fmt"

// MediaPart is one binary attachment in the outbound multipart request. The
// field name follows the {nodeId}_{mediaClass}File convention.
type MediaPart struct {
	Field    string
	Filename string
	MIME     string
	Data     []byte
}

// PartField returns the multipart field name for a node's attachment class.
func PartField(nodeID string, class MediaClass) string {
	return fmt.Sprintf("%s_%sFile", nodeID, class)
}

// SaveRequest is the outbound persistence payload assembled by the save
// pipeline. Nodes exclude the start node; edges exclude everything it
// sources.
type SaveRequest struct {
	Name          string
	Description   string
	Trigger       string
	TriggerConfig map[string]any
	Nodes         []NodeRecord
	Edges         []EdgeRecord
	Parts         []MediaPart
}

// BuildSaveRequest serializes a graph plus the automation's outer fields into
// a persistence request.
//
// The name must be non-empty (ErrMissingName otherwise). The edge set is
// normalized before start-sourced edges are stripped; the stored entry point
// is the node with the lowest order index, so the start connection itself is
// never persisted.
func BuildSaveRequest(name, description, trigger string, triggerConfig map[string]any, g Graph) (*SaveRequest, error) {
	if name == "" {
		return nil, ErrMissingName
	}

	req := &SaveRequest{
		Name:          name,
		Description:   description,
		Trigger:       trigger,
		TriggerConfig: triggerConfig,
		Nodes:         make([]NodeRecord, 0, len(g.Nodes)),
		Edges:         []EdgeRecord{},
	}

	order := 0
	for _, n := range g.Nodes {
		if n.IsStart() {
			continue
		}
		order++

		data, err := EncodeConfig(n.Config)
		if err != nil {
			return nil, err
		}
		data["label"] = n.Label

		x, y := n.Position.X, n.Position.Y
		req.Nodes = append(req.Nodes, NodeRecord{
			NodeID:   n.ID,
			Type:     n.Kind,
			Position: order,
			X:        &x,
			Y:        &y,
			Data:     data,
		})

		req.Parts = append(req.Parts, mediaParts(n)...)
	}

	for _, e := range NormalizeEdges(g.Edges) {
		if e.Source == StartNodeID {
			continue
		}
		req.Edges = append(req.Edges, EdgeRecord{ID: e.ID, Source: e.Source, Target: e.Target})
	}

	return req, nil
}

func mediaParts(n Node) []MediaPart {
	var parts *ReplyParts
	switch cfg := n.Config.(type) {
	case *CustomReplyConfig:
		parts = cfg.Parts()
	case *UserReplyConfig:
		parts = cfg.Parts()
	default:
		return nil
	}

	var out []MediaPart
	for _, class := range MediaClasses() {
		a := parts.Attachment(class)
		if a == nil || len(a.Data) == 0 {
			continue
		}
		out = append(out, MediaPart{
			Field:    PartField(n.ID, class),
			Filename: a.Filename,
			MIME:     a.MIME,
			Data:     a.Data,
		})
	}
	return out
}

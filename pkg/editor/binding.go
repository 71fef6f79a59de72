package editor

import (
	"context"

	"github.com/rahultadvi/chatflow/pkg/flow"
	"github.com/rahultadvi/chatflow/pkg/ports"
	"github.com/rahultadvi/chatflow/pkg/refdata"
	"github.com/rahultadvi/chatflow/pkg/schema"
)

// FieldSchema returns the patchable field schema for a node kind. Buttons and
// attachments have identity semantics and are edited through their dedicated
// operations, so they are not part of the patch surface. Keywords may also be
// replaced wholesale.
func FieldSchema(kind flow.NodeKind) schema.Schema {
	switch kind {
	case flow.KindConditions:
		return schema.Schema{
			"conditionType": schema.Enum(
				string(flow.ConditionKeyword),
				string(flow.ConditionContains),
				string(flow.ConditionEquals),
				string(flow.ConditionStartsWith),
			),
			"keywords": schema.Slice(schema.String()),
			"matchType": schema.Enum(
				string(flow.MatchAny),
				string(flow.MatchAll),
			),
		}
	case flow.KindCustomReply:
		return schema.Schema{"message": schema.String()}
	case flow.KindUserReply:
		return schema.Schema{"question": schema.String()}
	case flow.KindTimeGap:
		return schema.Schema{"delaySeconds": schema.NonNegativeInt()}
	case flow.KindSendTemplate:
		return schema.Schema{"templateId": schema.String()}
	case flow.KindAssignUser:
		return schema.Schema{"assigneeId": schema.String()}
	}
	// Start node: nothing is editable.
	return schema.Schema{}
}

// TemplateOptions returns the templates a send_template node may reference:
// the catalog filtered to approved entries.
func TemplateOptions(ctx context.Context, catalog ports.TemplateCatalog) ([]refdata.Template, error) {
	templates, err := catalog.Templates(ctx)
	if err != nil {
		return nil, err
	}
	return refdata.ApprovedTemplates(templates), nil
}

// AssigneeOptions returns the team members an assign_user node may reference.
func AssigneeOptions(ctx context.Context, directory ports.TeamDirectory) ([]refdata.TeamMember, error) {
	return directory.Members(ctx)
}

package flow

import "fmt"

// DefaultLabel returns the catalog label for a node kind. Used by node
// creation and as the deserializer's fallback when a persisted node carries
// no label of its own.
func DefaultLabel(kind NodeKind) string {
	switch kind {
	case KindStart:
		return "Start"
	case KindConditions:
		return "Conditions"
	case KindCustomReply:
		return "Custom Reply"
	case KindUserReply:
		return "User Reply"
	case KindTimeGap:
		return "Time Gap"
	case KindSendTemplate:
		return "Send Template"
	case KindAssignUser:
		return "Assign User"
	}
	return string(kind)
}

// DefaultConfig returns a fresh default configuration for kind. Every kind
// in the enumeration has an entry; the start node's is nil because it
// carries no configuration. Extending NodeKind without extending this switch
// surfaces immediately as ErrUnknownKind in tests.
func DefaultConfig(kind NodeKind) (Config, error) {
	switch kind {
	case KindStart:
		return nil, nil
	case KindConditions:
		return &ConditionsConfig{
			ConditionType: ConditionKeyword,
			Keywords:      []string{},
			MatchType:     MatchAny,
		}, nil
	case KindCustomReply:
		return &CustomReplyConfig{ReplyParts: ReplyParts{Buttons: []Button{}}}, nil
	case KindUserReply:
		return &UserReplyConfig{ReplyParts: ReplyParts{Buttons: []Button{}}}, nil
	case KindTimeGap:
		return &TimeGapConfig{DelaySeconds: 60}, nil
	case KindSendTemplate:
		return &SendTemplateConfig{}, nil
	case KindAssignUser:
		return &AssignUserConfig{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}

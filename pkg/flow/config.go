package flow

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"
)

// Config is the kind-specific configuration of a node. Exactly one
// implementation exists per editable kind, so a kind switch over configs is
// exhaustive and fields can never bleed across kinds.
type Config interface {
	Kind() NodeKind
}

// ConditionType selects how a conditions node matches incoming text.
type ConditionType string

const (
	ConditionKeyword    ConditionType = "keyword"
	ConditionContains   ConditionType = "contains"
	ConditionEquals     ConditionType = "equals"
	ConditionStartsWith ConditionType = "starts_with"
)

// MatchType selects whether any or all keywords must match.
type MatchType string

const (
	MatchAny MatchType = "any"
	MatchAll MatchType = "all"
)

// ButtonAction selects what pressing a reply button does.
type ButtonAction string

const (
	// ButtonNext advances to the connected node.
	ButtonNext ButtonAction = "next"
	// ButtonCustom carries a caller-defined value.
	ButtonCustom ButtonAction = "custom"
)

// Button is a quick-reply button attached to a message or question node.
// Its id is unique within the owning node.
type Button struct {
	ID     string       `json:"id" yaml:"id" mapstructure:"id"`
	Text   string       `json:"text" yaml:"text" mapstructure:"text"`
	Action ButtonAction `json:"action" yaml:"action" mapstructure:"action"`
	Value  string       `json:"value,omitempty" yaml:"value,omitempty" mapstructure:"value,omitempty"`
}

// NewButton creates a button with a fresh id.
func NewButton(text string, action ButtonAction, value string) Button {
	return Button{ID: uuid.NewString(), Text: text, Action: action, Value: value}
}

// ConditionsConfig configures a conditions node.
type ConditionsConfig struct {
	ConditionType ConditionType `json:"conditionType" yaml:"conditionType" mapstructure:"conditionType"`
	Keywords      []string      `json:"keywords" yaml:"keywords" mapstructure:"keywords"`
	MatchType     MatchType     `json:"matchType" yaml:"matchType" mapstructure:"matchType"`
}

func (*ConditionsConfig) Kind() NodeKind { return KindConditions }

// ReplyParts is the button and media block shared by the two reply kinds.
type ReplyParts struct {
	Buttons     []Button                   `json:"buttons" yaml:"buttons" mapstructure:"buttons"`
	Attachments map[MediaClass]*Attachment `json:"attachments,omitempty" yaml:"attachments,omitempty" mapstructure:"attachments,omitempty"`
}

// Attachment returns the attachment for class, or nil.
func (p *ReplyParts) Attachment(class MediaClass) *Attachment {
	return p.Attachments[class]
}

// SetAttachment binds an attachment for its media class, releasing any
// attachment it replaces.
func (p *ReplyParts) SetAttachment(class MediaClass, a *Attachment) {
	if prev := p.Attachments[class]; prev != nil {
		prev.Release()
	}
	if p.Attachments == nil {
		p.Attachments = make(map[MediaClass]*Attachment)
	}
	p.Attachments[class] = a
}

// RemoveAttachment releases and unbinds the attachment for class.
func (p *ReplyParts) RemoveAttachment(class MediaClass) {
	if prev := p.Attachments[class]; prev != nil {
		prev.Release()
		delete(p.Attachments, class)
	}
}

// ReleaseAll releases every attachment. Called on node deletion and session
// teardown.
func (p *ReplyParts) ReleaseAll() {
	for class, a := range p.Attachments {
		if a != nil {
			a.Release()
		}
		delete(p.Attachments, class)
	}
}

// CustomReplyConfig configures a custom_reply node: a message sent to the
// contact, optionally with quick-reply buttons and media.
type CustomReplyConfig struct {
	Message    string `json:"message" yaml:"message" mapstructure:"message"`
	ReplyParts `mapstructure:",squash" yaml:",inline"`
}

func (*CustomReplyConfig) Kind() NodeKind { return KindCustomReply }

// Parts exposes the shared button/media block.
func (c *CustomReplyConfig) Parts() *ReplyParts { return &c.ReplyParts }

// UserReplyConfig configures a user_reply node: a question the runtime asks
// and waits on.
type UserReplyConfig struct {
	Question   string `json:"question" yaml:"question" mapstructure:"question"`
	ReplyParts `mapstructure:",squash" yaml:",inline"`
}

func (*UserReplyConfig) Kind() NodeKind { return KindUserReply }

// Parts exposes the shared button/media block.
func (c *UserReplyConfig) Parts() *ReplyParts { return &c.ReplyParts }

// TimeGapConfig configures a time_gap node.
type TimeGapConfig struct {
	// DelaySeconds is the pause before the runtime continues. Never negative.
	DelaySeconds int `json:"delaySeconds" yaml:"delaySeconds" mapstructure:"delaySeconds"`
}

func (*TimeGapConfig) Kind() NodeKind { return KindTimeGap }

// SendTemplateConfig configures a send_template node. An empty TemplateID
// means no template has been picked yet.
type SendTemplateConfig struct {
	TemplateID string `json:"templateId" yaml:"templateId" mapstructure:"templateId"`
}

func (*SendTemplateConfig) Kind() NodeKind { return KindSendTemplate }

// AssignUserConfig configures an assign_user node. An empty AssigneeID means
// no team member has been picked yet.
type AssignUserConfig struct {
	AssigneeID string `json:"assigneeId" yaml:"assigneeId" mapstructure:"assigneeId"`
}

func (*AssignUserConfig) Kind() NodeKind { return KindAssignUser }

// DecodeConfig builds a typed configuration for kind from a persisted data
// map. Unknown keys are ignored: the read path recovers from structural noise
// instead of failing.
func DecodeConfig(kind NodeKind, data map[string]any) (Config, error) {
	cfg, err := DefaultConfig(kind)
	if err != nil {
		return nil, err
	}
	if cfg == nil || len(data) == 0 {
		return cfg, nil
	}
	if err := decodeInto(data, cfg); err != nil {
		return nil, fmt.Errorf("decode %s config: %w", kind, err)
	}
	return cfg, nil
}

// EncodeConfig flattens a typed configuration into the persisted data map
// shape. Raw attachment bytes are excluded; they travel as multipart parts.
func EncodeConfig(cfg Config) (map[string]any, error) {
	if cfg == nil {
		return map[string]any{}, nil
	}
	out := make(map[string]any)
	if err := mapstructure.Decode(cfg, &out); err != nil {
		return nil, fmt.Errorf("encode %s config: %w", cfg.Kind(), err)
	}
	return out, nil
}

// PatchConfig shallow-merges a partial field map into cfg. Fields absent from
// patch keep their current value; a key outside the config's schema fails the
// whole patch.
func PatchConfig(cfg Config, patch map[string]any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      cfg,
		ErrorUnused: true,
		TagName:     "mapstructure",
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(patch); err != nil {
		return fmt.Errorf("patch %s config: %w", cfg.Kind(), err)
	}
	return nil
}

func decodeInto(data map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return err
	}
	return dec.Decode(data)
}

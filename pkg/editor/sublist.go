package editor

import (
	"fmt"

	"github.com/rahultadvi/chatflow/pkg/flow"
)

// Sub-list editors. They operate only on the currently selected node's
// configuration: removal never reorders surviving entries, addition always
// appends.

// AddButton appends a button with a fresh id to the selected reply node.
func (e *Editor) AddButton(text string, action flow.ButtonAction, value string) (flow.Button, error) {
	parts, err := e.selectedParts()
	if err != nil {
		return flow.Button{}, err
	}
	btn := flow.NewButton(text, action, value)
	parts.Buttons = append(parts.Buttons, btn)
	return btn, nil
}

// UpdateButton rewrites the button with the given id in place.
func (e *Editor) UpdateButton(id, text string, action flow.ButtonAction, value string) error {
	parts, err := e.selectedParts()
	if err != nil {
		return err
	}
	for i := range parts.Buttons {
		if parts.Buttons[i].ID == id {
			parts.Buttons[i].Text = text
			parts.Buttons[i].Action = action
			parts.Buttons[i].Value = value
			return nil
		}
	}
	return fmt.Errorf("button %q not found", id)
}

// RemoveButton deletes the button with the given id. Unknown ids are a
// no-op.
func (e *Editor) RemoveButton(id string) error {
	parts, err := e.selectedParts()
	if err != nil {
		return err
	}
	for i := range parts.Buttons {
		if parts.Buttons[i].ID == id {
			parts.Buttons = append(parts.Buttons[:i], parts.Buttons[i+1:]...)
			return nil
		}
	}
	return nil
}

// AddKeyword appends a keyword to the selected conditions node.
func (e *Editor) AddKeyword(word string) error {
	cfg, err := e.selectedConditions()
	if err != nil {
		return err
	}
	cfg.Keywords = append(cfg.Keywords, word)
	return nil
}

// UpdateKeyword rewrites the keyword at index in place.
func (e *Editor) UpdateKeyword(index int, word string) error {
	cfg, err := e.selectedConditions()
	if err != nil {
		return err
	}
	if index < 0 || index >= len(cfg.Keywords) {
		return fmt.Errorf("keyword index %d out of range", index)
	}
	cfg.Keywords[index] = word
	return nil
}

// RemoveKeyword deletes the keyword at index, keeping the order of the
// survivors.
func (e *Editor) RemoveKeyword(index int) error {
	cfg, err := e.selectedConditions()
	if err != nil {
		return err
	}
	if index < 0 || index >= len(cfg.Keywords) {
		return fmt.Errorf("keyword index %d out of range", index)
	}
	cfg.Keywords = append(cfg.Keywords[:index], cfg.Keywords[index+1:]...)
	return nil
}

func (e *Editor) selectedParts() (*flow.ReplyParts, error) {
	n := e.node(e.selected)
	if n == nil {
		return nil, ErrNoSelection
	}
	switch cfg := n.Config.(type) {
	case *flow.CustomReplyConfig:
		return cfg.Parts(), nil
	case *flow.UserReplyConfig:
		return cfg.Parts(), nil
	}
	return nil, ErrNotReplyNode
}

func (e *Editor) selectedConditions() (*flow.ConditionsConfig, error) {
	n := e.node(e.selected)
	if n == nil {
		return nil, ErrNoSelection
	}
	cfg, ok := n.Config.(*flow.ConditionsConfig)
	if !ok {
		return nil, ErrNotConditionsNode
	}
	return cfg, nil
}

package editor

import (
	"fmt"

	"github.com/rahultadvi/chatflow/pkg/flow"
)

// AttachMedia binds raw media bytes to the selected reply node under the
// given class. A previous attachment of the same class is released before it
// is replaced, so the handle and its preview reference never outlive the
// binding.
func (e *Editor) AttachMedia(class flow.MediaClass, filename, mime string, data []byte) (*flow.Attachment, error) {
	if !class.Valid() {
		return nil, fmt.Errorf("unknown media class %q", class)
	}
	parts, err := e.selectedParts()
	if err != nil {
		return nil, err
	}

	a := flow.NewAttachment(filename, mime, data)
	parts.SetAttachment(class, a)
	return a, nil
}

// RemoveMedia releases and unbinds the selected node's attachment for the
// given class. Removing an absent class is a no-op.
func (e *Editor) RemoveMedia(class flow.MediaClass) error {
	parts, err := e.selectedParts()
	if err != nil {
		return err
	}
	parts.RemoveAttachment(class)
	return nil
}

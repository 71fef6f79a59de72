package editor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahultadvi/chatflow/pkg/editor"
	"github.com/rahultadvi/chatflow/pkg/flow"
)

func TestButtons(t *testing.T) {
	e := editor.New(nil)
	e.AddNode(flow.KindCustomReply)

	first, err := e.AddButton("Yes", flow.ButtonNext, "")
	require.NoError(t, err)
	second, err := e.AddButton("No", flow.ButtonCustom, "decline-flow")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	require.NoError(t, e.UpdateButton(first.ID, "Yes please", flow.ButtonNext, ""))

	selected, _ := e.Selected()
	buttons := selected.Config.(*flow.CustomReplyConfig).Buttons
	require.Len(t, buttons, 2)
	assert.Equal(t, "Yes please", buttons[0].Text)
	assert.Equal(t, "No", buttons[1].Text)

	require.NoError(t, e.RemoveButton(first.ID))
	selected, _ = e.Selected()
	buttons = selected.Config.(*flow.CustomReplyConfig).Buttons
	require.Len(t, buttons, 1)
	assert.Equal(t, second.ID, buttons[0].ID, "removal keeps the survivors' order")

	// Removing an unknown id is a no-op; updating one is not.
	assert.NoError(t, e.RemoveButton("no-such-button"))
	assert.Error(t, e.UpdateButton("no-such-button", "x", flow.ButtonNext, ""))
}

func TestButtons_RequireReplyNode(t *testing.T) {
	e := editor.New(nil)

	_, err := e.AddButton("Yes", flow.ButtonNext, "")
	assert.ErrorIs(t, err, editor.ErrNoSelection)

	e.AddNode(flow.KindTimeGap)
	_, err = e.AddButton("Yes", flow.ButtonNext, "")
	assert.ErrorIs(t, err, editor.ErrNotReplyNode)
}

func TestKeywords(t *testing.T) {
	e := editor.New(nil)
	e.AddNode(flow.KindConditions)

	require.NoError(t, e.AddKeyword("hi"))
	require.NoError(t, e.AddKeyword("hello"))
	require.NoError(t, e.AddKeyword("hey"))

	require.NoError(t, e.UpdateKeyword(1, "howdy"))
	require.NoError(t, e.RemoveKeyword(0))

	selected, _ := e.Selected()
	assert.Equal(t, []string{"howdy", "hey"}, selected.Config.(*flow.ConditionsConfig).Keywords)
}

func TestKeywords_IndexOutOfRange(t *testing.T) {
	e := editor.New(nil)
	e.AddNode(flow.KindConditions)
	require.NoError(t, e.AddKeyword("hi"))

	assert.Error(t, e.UpdateKeyword(-1, "x"))
	assert.Error(t, e.UpdateKeyword(1, "x"))
	assert.Error(t, e.RemoveKeyword(1))
}

func TestKeywords_RequireConditionsNode(t *testing.T) {
	e := editor.New(nil)

	assert.ErrorIs(t, e.AddKeyword("hi"), editor.ErrNoSelection)

	e.AddNode(flow.KindCustomReply)
	assert.ErrorIs(t, e.AddKeyword("hi"), editor.ErrNotConditionsNode)
}

package components

import (
	"github.com/tessro/cadenza/internal/core"
	"github.com/tessro/cadenza/internal/tui/styles"
)

// CloseButton sits in the window's title bar and owns the close action.
type CloseButton struct {
	Label  string
	action core.CloseAction
}

// NewCloseButton creates a close button. action may be nil.
func NewCloseButton(action core.CloseAction) *CloseButton {
	return &CloseButton{
		Label:  "Close player",
		action: action,
	}
}

// Press runs the close action, if any.
func (c *CloseButton) Press() error {
	return core.RunClose(c.action)
}

// Render renders the button glyph.
func (c *CloseButton) Render(s *styles.Styles) string {
	return s.Close.Render("✕")
}

package core

//go:generate mockgen -destination=mocks/close_action_mock.go -package=mocks github.com/tessro/cadenza/internal/core CloseAction

// CloseAction is the command run when the player window is closed.
type CloseAction interface {
	Close() error
}

// CloseFunc adapts a plain function to a CloseAction.
type CloseFunc func() error

// Close calls f.
func (f CloseFunc) Close() error {
	if f == nil {
		return nil
	}
	return f()
}

// RunClose runs action if one is set.
func RunClose(action CloseAction) error {
	if action == nil {
		return nil
	}
	return action.Close()
}

package entity

// CommandErrorKind classifies the recoverable failures of panel commands.
type CommandErrorKind int

const (
	// KindInvalidURL means the input was not a well-formed URL.
	KindInvalidURL CommandErrorKind = iota + 1
	// KindWindowNotFound means the target panel is not registered.
	KindWindowNotFound
)

// CommandError is returned to the control panel as a plain message.
// Its Error text is part of the command surface and must stay stable.
type CommandError struct {
	Kind  CommandErrorKind
	Label PanelLabel
}

var (
	// ErrInvalidURL matches any CommandError of kind KindInvalidURL.
	ErrInvalidURL = &CommandError{Kind: KindInvalidURL}
	// ErrWindowNotFound matches any CommandError of kind KindWindowNotFound.
	ErrWindowNotFound = &CommandError{Kind: KindWindowNotFound}
)

// NewWindowNotFoundError reports that the panel with the given label is absent.
func NewWindowNotFoundError(label PanelLabel) *CommandError {
	return &CommandError{Kind: KindWindowNotFound, Label: label}
}

func (e *CommandError) Error() string {
	switch e.Kind {
	case KindInvalidURL:
		return "Invalid URL format"
	case KindWindowNotFound:
		if e.Label == "" {
			return "Window not found"
		}
		return e.Label.DisplayName() + " window not found"
	default:
		return "Command failed"
	}
}

// Is matches on kind only, so errors.Is(err, ErrWindowNotFound) holds for any label.
func (e *CommandError) Is(target error) bool {
	t, ok := target.(*CommandError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Package notify holds the toast values the update loop hands to the view.
// The core only produces toasts; how long they stay on screen is the
// caller's business.
package notify

// Severity selects toast styling.
type Severity int

const (
	SeverityDefault Severity = iota
	SeverityDestructive
)

// Toast is a single notification surfaced to the user.
type Toast struct {
	Title    string
	Message  string
	Severity Severity
}

// New returns a default-severity toast.
func New(title, message string) Toast {
	return Toast{Title: title, Message: message, Severity: SeverityDefault}
}

// Destructive returns an error-severity toast.
func Destructive(title, message string) Toast {
	return Toast{Title: title, Message: message, Severity: SeverityDestructive}
}

// Zero reports whether no toast is set.
func (t Toast) Zero() bool {
	return t == Toast{}
}

package network

import "fmt"

// IntegrityError marks malformed topology data at build time. The rebuild
// that produced it must be discarded wholesale.
type IntegrityError struct {
	Reason  string
	LineRef string
}

func (e *IntegrityError) Error() string {
	if e.LineRef != "" {
		return fmt.Sprintf("network integrity: %s (line %s)", e.Reason, e.LineRef)
	}

	return fmt.Sprintf("network integrity: %s", e.Reason)
}

package reactenv

import (
	"fmt"
	"strings"
)

// Error codes for resolution diagnostics.
const (
	ErrCodeMissing = "missing"
	ErrCodeEmpty   = "empty"
	ErrCodeSource  = "source"
)

// Diagnostic aggregates advisory problems from a resolution pass. It is
// emitted through the store's logger in development mode and never interrupts
// the accessor flow: callers always receive a best-effort mapping alongside it.
type Diagnostic struct {
	KeyErrors []KeyError
	Prefixes  []string // Active prefix set, included as a hint
}

// Error formats the diagnostic as a multi-line message with a prefix hint.
func (d *Diagnostic) Error() string {
	if len(d.KeyErrors) == 0 {
		return "env resolution flagged no problems"
	}

	var b strings.Builder
	if len(d.KeyErrors) == 1 {
		b.WriteString("env resolution flagged 1 problem\n")
	} else {
		fmt.Fprintf(&b, "env resolution flagged %d problems\n", len(d.KeyErrors))
	}

	for _, ke := range d.KeyErrors {
		fmt.Fprintf(&b, "  - %s: %s (%s)\n", ke.Key, ke.Code, ke.Message)
	}

	if len(d.Prefixes) > 0 {
		fmt.Fprintf(&b, "  hint: recognized prefixes: %s\n", strings.Join(d.Prefixes, ", "))
	}

	return strings.TrimRight(b.String(), "\n")
}

// MissingKeys returns the required keys flagged as missing or empty, in the
// order they were checked.
func (d *Diagnostic) MissingKeys() []string {
	var keys []string
	for _, ke := range d.KeyErrors {
		if ke.Code == ErrCodeMissing || ke.Code == ErrCodeEmpty {
			keys = append(keys, ke.Key)
		}
	}
	return keys
}

// KeyError represents a single advisory problem.
type KeyError struct {
	Key     string // Variable key, or source name for source failures
	Code    string // Error code (e.g., "missing", "empty", "source")
	Message string // Human-readable description
}

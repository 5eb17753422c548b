package classkit

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes.
const (
	CodeProtected          = "protected"
	CodeProtectionConflict = "protection_conflict"
	CodeLinearizeError     = "linearize_error"
	CodeUnknownParam       = "unknown_param"
	CodeUnknownAttribute   = "unknown_attribute"
	CodeInvalidParam       = "invalid_param"
	CodeMissingValue       = "missing_value"
	CodeAbstractClass      = "abstract_class"
	CodeReservedAttribute  = "reserved_attribute"
	// Classfile loading (document semantics)
	CodeParseError     = "parse_error"
	CodeInvalidType    = "invalid_type"
	CodeDuplicateClass = "duplicate_class"
	CodeUnknownBase    = "unknown_base"
)

// Issue represents a single construction or access failure.
type Issue struct {
	Class   string // Target class (or instance's class) name.
	Attr    string // Offending attribute name, empty when class-wide.
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints.
	// Params carries structured parameters (e.g., {"owner":"A"}) for i18n and
	// observability.
	Params map[string]any
}

// Issues is a collection of failures that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. protected at Emitter.fit: 'fit' is protected by 'A'
		fmt.Fprintf(b, "%s at %s", it.Code, it.Class)
		if it.Attr != "" {
			fmt.Fprintf(b, ".%s", it.Attr)
		}
		if it.Message != "" {
			fmt.Fprintf(b, ": %s", it.Message)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

package schema

import (
	"fmt"
	"strings"
)

// Violation is a single mismatch between a document and its schema.
type Violation struct {
	InstanceLocation string // JSON pointer into the document ("" is the root)
	KeywordLocation  string // JSON pointer into the schema to the failing keyword
	Message          string // Human-readable reason, including expected vs actual
}

func (v Violation) String() string {
	loc := v.InstanceLocation
	if loc == "" {
		loc = "(root)"
	}
	return fmt.Sprintf("%s: %s", loc, v.Message)
}

// ValidationFailure reports every violation found in a document.
type ValidationFailure struct {
	Violations []Violation
}

func (e *ValidationFailure) Error() string {
	if len(e.Violations) == 1 {
		return e.Violations[0].String()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d validation errors:", len(e.Violations))
	for i, v := range e.Violations {
		fmt.Fprintf(&sb, "\n  %d. %s", i+1, v)
	}
	return sb.String()
}

// Violations returns all violations if err is a *ValidationFailure.
// Otherwise returns nil.
func Violations(err error) []Violation {
	if failure, ok := err.(*ValidationFailure); ok {
		return failure.Violations
	}
	return nil
}

// CompileError reports a schema that is itself invalid and could not be
// compiled.
type CompileError struct {
	Err error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("invalid schema: %v", e.Err)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}

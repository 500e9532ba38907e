// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

type (
	// ActionableError attaches user guidance to a failure: the operation that
	// was attempted, the resource it ran against, and concrete next steps.
	// The CLI prints the guidance; errors.Is and errors.As still reach the
	// wrapped cause.
	ActionableError struct {
		// Operation is a verb phrase naming the attempt, e.g. "scan
		// definitions" or "invoke generation tool".
		Operation string

		// Resource is the file, directory, key, or tool involved. Optional.
		Resource string

		// Suggestions are remediation steps, printed one per line.
		Suggestions []string

		// Cause is the underlying error. Optional.
		Cause error
	}

	// ErrorContext assembles an ActionableError fluently:
	//
	//	return issue.NewErrorContext().
	//		WithOperation("scan definitions").
	//		WithResource(dir).
	//		WithSuggestion("Pass the definitions root with --directory").
	//		Wrap(err).
	//		BuildError()
	//
	// Build snapshots the accumulated state, so one context may wrap several
	// causes in turn.
	ErrorContext struct {
		operation   string
		resource    string
		suggestions []string
		cause       error
	}
)

// NewErrorContext starts an empty builder.
func NewErrorContext() *ErrorContext {
	return &ErrorContext{}
}

// Error renders the one-line form:
//
//	failed to <operation>: <resource>: <cause>
//
// with absent parts omitted.
func (e *ActionableError) Error() string {
	parts := []string{"failed to " + e.Operation}
	if e.Resource != "" {
		parts = append(parts, e.Resource)
	}
	if e.Cause != nil {
		parts = append(parts, e.Cause.Error())
	}
	return strings.Join(parts, ": ")
}

// Unwrap exposes the cause to the errors package.
func (e *ActionableError) Unwrap() error {
	return e.Cause
}

// Format renders the multi-line terminal form: the Error line, then the
// suggestion bullets. Verbose mode appends the cause chain, one numbered
// line per wrapped error.
func (e *ActionableError) Format(verbose bool) string {
	var b strings.Builder
	b.WriteString(e.Error())

	if len(e.Suggestions) > 0 {
		b.WriteByte('\n')
		for _, s := range e.Suggestions {
			b.WriteString("\n  • ")
			b.WriteString(s)
		}
	}

	if verbose && e.Cause != nil {
		b.WriteString("\n\nError chain:")
		for i, err := 1, e.Cause; err != nil; i, err = i+1, errors.Unwrap(err) {
			fmt.Fprintf(&b, "\n  %d. %s", i, err)
		}
	}

	return b.String()
}

// WithOperation sets the verb phrase naming the attempt.
func (c *ErrorContext) WithOperation(operation string) *ErrorContext {
	c.operation = operation
	return c
}

// WithResource sets the file, directory, key, or tool involved.
func (c *ErrorContext) WithResource(resource string) *ErrorContext {
	c.resource = resource
	return c
}

// WithSuggestion appends one remediation step. Call repeatedly for more.
func (c *ErrorContext) WithSuggestion(suggestion string) *ErrorContext {
	c.suggestions = append(c.suggestions, suggestion)
	return c
}

// Wrap records the underlying cause, replacing any previous one.
func (c *ErrorContext) Wrap(cause error) *ErrorContext {
	c.cause = cause
	return c
}

// Build snapshots the context into an ActionableError. Without an operation
// there is nothing to report, and Build returns nil.
func (c *ErrorContext) Build() *ActionableError {
	if c.operation == "" {
		return nil
	}
	return &ActionableError{
		Operation:   c.operation,
		Resource:    c.resource,
		Suggestions: slices.Clone(c.suggestions),
		Cause:       c.cause,
	}
}

// BuildError is Build typed as error for direct use in return statements.
// The indirection matters: a typed nil *ActionableError stuffed into an error
// interface would compare non-nil.
func (c *ErrorContext) BuildError() error {
	if err := c.Build(); err != nil {
		return err
	}
	return nil
}

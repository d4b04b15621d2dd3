// Package errors defines the error types surfaced by go-ofx. All of them
// abort a parsing run; non-fatal conditions travel over the diagnostics
// channel instead and never produce an error value.
package errors

import (
	"errors"
	"fmt"

	"github.com/reactsoft/go-ofx/schema"
)

// ErrNotDocument is returned when the input does not contain the document
// root marker at all. It is surfaced before any parsing begins.
var ErrNotDocument = errors.New("ofx: not an OFX document")

// SyntaxError reports malformed tag syntax: a missing '<' or '>', an
// unterminated quoted attribute, or input exhaustion in the middle of a
// tag. Offset is the byte position the tokenizer had reached.
type SyntaxError struct {
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("ofx: syntax error at offset %d: %s", e.Offset, e.Msg)
}

// CloseMismatchError reports a close tag that could not be resolved against
// the pending tags or the name of the container it arrived under.
type CloseMismatchError struct {
	Tag       string
	Container string
}

func (e *CloseMismatchError) Error() string {
	return fmt.Sprintf("ofx: mismatch for </%s>, expecting </%s>", e.Tag, e.Container)
}

// UnbalancedStackError reports containers left open at the end of the
// document.
type UnbalancedStackError struct {
	Depth int
}

func (e *UnbalancedStackError) Error() string {
	return fmt.Sprintf("ofx: stack not empty at end of document (%d open containers)", e.Depth)
}

// DecodeError reports leaf text that does not parse as its schema-declared
// kind. Datetime leaves never produce this error; they degrade to strings.
type DecodeError struct {
	Element string
	Kind    schema.Kind
	Text    string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("ofx: <%s> failed to parse %q as a %s", e.Element, e.Text, e.Kind)
}

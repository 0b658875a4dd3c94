// ==============================================================================================
// FILE: eval/errors.go
// ==============================================================================================
// PURPOSE: Runtime errors. Unlike the teacher, which embeds an object.Error value into the
//          value stream and checks isError(obj) after every Eval call, Execute returns errors
//          through Go's own error channel — idiomatic for this layer since a runtime error here
//          is a genuine interpreter fault, not a Mython-visible value (Mython exceptions are a
//          Non-goal). See SPEC_FULL.md's "Error handling" ambient section.
// ==============================================================================================

package eval

import (
	"fmt"

	"mython/object"
)

// RuntimeError is a Mython evaluation failure: a bad operand type, an unknown name, a division
// by zero, a missing field or method, or anything else not caught by the lexer or parser.
type RuntimeError struct {
	Message string
}

func (e *RuntimeError) Error() string { return e.Message }

func newError(format string, args ...any) error {
	return &RuntimeError{Message: fmt.Sprintf(format, args...)}
}

// returnSignal is the internal non-local-exit mechanism a `return` statement raises. It is an
// error only so it propagates through the same return path as a genuine RuntimeError without a
// parallel plumbing; MethodBody is the only place that's allowed to catch it.
type returnSignal struct {
	Value *object.ObjectHolder
}

func (r *returnSignal) Error() string { return "return statement outside of a method body" }

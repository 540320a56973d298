//
// Copyright 2013-2014 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lil

// Error kind constants
const (
	errNone       = iota // no error recorded
	errDefault           // generic evaluation error
	errUnbalanced        // unclosed brace, bracket, or quote
	errFixHead           // position must be patched to the dispatch site
)

// Error describes a failure recorded in the interpreter's error slot.
// It carries the byte offset into the source that was being parsed
// when the error was raised. Error implements the error interface.
type Error struct {
	Kind int    // one of the err* constants
	Pos  int    // byte offset into the source being parsed
	Msg  string // human readable description
}

// Error returns the string representation of the error.
func (e *Error) Error() string {
	return e.Msg
}

// SetError records an error in the interpreter's error slot. The
// position is patched to the dispatch site of the current command by
// the evaluator, so that errors raised inside a builtin point at the
// call and not at whatever the builtin happened to be parsing. Once
// the slot is set all further parsing and evaluation is suppressed
// until the slot is read with Err or cleared by the 'try' builtin.
func (i *Interp) SetError(msg string) {
	if i.errKind != errNone {
		return
	}
	i.errKind = errFixHead
	i.errPos = 0
	i.errMsg = msg
}

// setError records an error at the given source position.
func (i *Interp) setError(kind, pos int, msg string) {
	if i.errKind != errNone {
		return
	}
	i.errKind = kind
	i.errPos = pos
	i.errMsg = msg
}

// hasError indicates whether the error slot is occupied.
func (i *Interp) hasError() bool {
	return i.errKind != errNone
}

// Err reads the error slot, returning the recorded message and source
// position. Reading the slot clears it, re-enabling evaluation.
func (i *Interp) Err() (string, int, bool) {
	if i.errKind == errNone {
		return "", 0, false
	}
	msg, pos := i.errMsg, i.errPos
	i.errKind = errNone
	i.errMsg = ""
	i.errPos = 0
	return msg, pos, true
}

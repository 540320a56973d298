//
// Copyright 2013-2014 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lil

// List is an ordered, growable sequence of values.
type List struct {
	v []*Value
}

// NewList constructs an empty list.
func NewList() *List {
	return &List{}
}

// Append adds a value to the end of the list.
func (l *List) Append(v *Value) {
	l.v = append(l.v, v)
}

// Len returns the number of values in the list.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.v)
}

// At returns the value at the given zero-based index, or nil when the
// index is out of range.
func (l *List) At(idx int) *Value {
	if l == nil || idx < 0 || idx >= len(l.v) {
		return nil
	}
	return l.v[idx]
}

// needsEscape indicates whether a list entry must be escaped when the
// list is serialized, so that parsing the serialized form yields the
// entry back as a single word. Empty entries and entries containing
// whitespace or punctuation qualify.
func needsEscape(s string) bool {
	if len(s) == 0 {
		return true
	}
	for k := 0; k < len(s); k++ {
		if isPunct(s[k]) || isWhite(s[k]) || isEOL(s[k]) {
			return true
		}
	}
	return false
}

// ToValue serializes the list into a single value with entries
// separated by spaces. With escape set, entries that need it are
// wrapped in braces; literal braces inside an entry are emitted as a
// closing brace, a quoted escape sequence, and a reopening brace, so
// that word concatenation reassembles the entry on re-parse.
func (l *List) ToValue(escape bool) *Value {
	val := &Value{}
	for idx, item := range l.v {
		if idx > 0 {
			val.AppendByte(' ')
		}
		s := item.String()
		if escape && needsEscape(s) {
			val.AppendByte('{')
			for k := 0; k < len(s); k++ {
				switch s[k] {
				case '{':
					val.AppendString(`}"\o"{`)
				case '}':
					val.AppendString(`}"\c"{`)
				default:
					val.AppendByte(s[k])
				}
			}
			val.AppendByte('}')
		} else {
			val.AppendValue(item)
		}
	}
	return val
}

// isWhite indicates whether the byte is non-terminating ASCII
// whitespace (line terminators are classified by isEOL).
func isWhite(c byte) bool {
	return c == ' ' || c == '\t' || c == '\v' || c == '\f'
}

// isEOL indicates whether the byte terminates a command line.
func isEOL(c byte) bool {
	return c == '\n' || c == '\r' || c == ';'
}

// isPunct indicates whether the byte is ASCII punctuation.
func isPunct(c byte) bool {
	return (c >= '!' && c <= '/') || (c >= ':' && c <= '@') ||
		(c >= '[' && c <= '`') || (c >= '{' && c <= '~')
}

//
// Copyright 2013-2014 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lil

import (
	"strconv"
)

// Value is the universal datum of the interpreter: an owned byte
// string. A nil *Value is treated as the empty string everywhere.
// Values are immutable from the script's point of view; the append
// methods exist for construction by the parser and by builtins.
type Value struct {
	b []byte
}

// NewValue constructs a value holding a copy of the given string.
func NewValue(s string) *Value {
	return &Value{b: []byte(s)}
}

// NewValueBytes constructs a value holding a copy of the given bytes.
func NewValueBytes(b []byte) *Value {
	v := &Value{b: make([]byte, len(b))}
	copy(v.b, b)
	return v
}

// IntValue constructs a value holding the decimal representation of
// the given integer.
func IntValue(n int64) *Value {
	return &Value{b: strconv.AppendInt(nil, n, 10)}
}

// Clone returns an independent copy of the value. Cloning nil yields
// an empty value.
func (v *Value) Clone() *Value {
	if v == nil {
		return &Value{}
	}
	return NewValueBytes(v.b)
}

// Len returns the length of the value in bytes.
func (v *Value) Len() int {
	if v == nil {
		return 0
	}
	return len(v.b)
}

// String returns the value contents as a string.
func (v *Value) String() string {
	if v == nil {
		return ""
	}
	return string(v.b)
}

// AppendByte appends a single byte to the value.
func (v *Value) AppendByte(c byte) {
	v.b = append(v.b, c)
}

// AppendString appends the bytes of the given string to the value.
func (v *Value) AppendString(s string) {
	v.b = append(v.b, s...)
}

// AppendValue appends the contents of another value. Appending nil is
// a no-op.
func (v *Value) AppendValue(o *Value) {
	if o != nil {
		v.b = append(v.b, o.b...)
	}
}

// Int converts the value to a signed integer the way C's strtoll with
// base zero would: optional leading whitespace and sign, then a
// decimal, hexadecimal (0x), or octal (leading 0) digit run. Trailing
// bytes are ignored and an entirely non-numeric value converts to 0.
func (v *Value) Int() int64 {
	s := v.String()
	p := 0
	for p < len(s) && (s[p] == ' ' || s[p] == '\t' || s[p] == '\n' || s[p] == '\r' || s[p] == '\v' || s[p] == '\f') {
		p++
	}
	neg := false
	if p < len(s) && (s[p] == '+' || s[p] == '-') {
		neg = s[p] == '-'
		p++
	}
	base := 10
	if p+1 < len(s) && s[p] == '0' && (s[p+1] == 'x' || s[p+1] == 'X') {
		base = 16
		p += 2
	} else if p < len(s) && s[p] == '0' {
		base = 8
	}
	end := p
	for end < len(s) && digitVal(s[end]) < base {
		end++
	}
	if end == p {
		return 0
	}
	// accumulate with wraparound, matching two's-complement overflow
	var acc uint64
	for k := p; k < end; k++ {
		acc = acc*uint64(base) + uint64(digitVal(s[k]))
	}
	res := int64(acc)
	if neg {
		res = -res
	}
	return res
}

// digitVal returns the numeric value of the byte as a digit, or 255
// when the byte is not a digit in any supported base.
func digitVal(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return 255
}

// Bool converts the value to a boolean. The empty value is false, as
// is any value consisting solely of zeros with at most one dot (so
// "0", "00", and "0.0" are false while "0.0.0" is true). Everything
// else, numeric or not, is true.
func (v *Value) Bool() bool {
	if v.Len() == 0 {
		return false
	}
	dots := 0
	for _, c := range v.b {
		if c != '0' && c != '.' {
			return true
		}
		if c == '.' {
			if dots > 0 {
				return true
			}
			dots++
		}
	}
	return false
}

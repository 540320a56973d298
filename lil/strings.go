//
// Copyright 2013-2014 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lil

import (
	"strings"
)

// defaultTrimSet is the whitespace removed by trim and friends when
// no character set is given.
const defaultTrimSet = " \f\n\r\t\v"

// commandChar implements the 'char' command: the single byte with
// the given code.
func commandChar(i *Interp, args []*Value) *Value {
	if len(args) == 0 {
		return nil
	}
	v := &Value{}
	v.AppendByte(byte(args[0].Int()))
	return v
}

// commandCharat implements the 'charat' command: the character of
// the string at the given index, or the empty value out of range.
func commandCharat(i *Interp, args []*Value) *Value {
	if len(args) < 2 {
		return nil
	}
	s := args[0].String()
	idx := args[1].Int()
	if idx < 0 || idx >= int64(len(s)) {
		return nil
	}
	v := &Value{}
	v.AppendByte(s[idx])
	return v
}

// commandCodeat implements the 'codeat' command: the byte value of
// the string at the given index, or the empty value out of range.
func commandCodeat(i *Interp, args []*Value) *Value {
	if len(args) < 2 {
		return nil
	}
	s := args[0].String()
	idx := args[1].Int()
	if idx < 0 || idx >= int64(len(s)) {
		return nil
	}
	return IntValue(int64(s[idx]))
}

// commandSubstr implements the 'substr' command: the bytes from the
// start index up to but not including the end index, which defaults
// to the end of the string.
func commandSubstr(i *Interp, args []*Value) *Value {
	if len(args) < 2 {
		return nil
	}
	s := args[0].String()
	from := args[1].Int()
	if from < 0 {
		from = 0
	}
	to := int64(len(s))
	if len(args) > 2 {
		to = args[2].Int()
		if to > int64(len(s)) {
			to = int64(len(s))
		}
	}
	if from >= to {
		return nil
	}
	return NewValue(s[from:to])
}

// commandStrpos implements the 'strpos' command: the index of the
// first occurrence of the needle, or -1 when absent.
func commandStrpos(i *Interp, args []*Value) *Value {
	if len(args) < 2 {
		return IntValue(-1)
	}
	hay := args[0].String()
	start := int64(0)
	if len(args) > 2 {
		start = args[2].Int()
		if start < 0 {
			start = 0
		}
		if start > int64(len(hay)) {
			return IntValue(-1)
		}
	}
	pos := strings.Index(hay[start:], args[1].String())
	if pos < 0 {
		return IntValue(-1)
	}
	return IntValue(start + int64(pos))
}

// commandLength implements the 'length' command: the total length
// of the arguments as if they were joined with single spaces.
func commandLength(i *Interp, args []*Value) *Value {
	total := 0
	for k, a := range args {
		if k > 0 {
			total++
		}
		total += a.Len()
	}
	return IntValue(int64(total))
}

// trimSet returns the characters to trim for the given arguments.
func trimSet(args []*Value) string {
	if len(args) > 1 {
		return args[1].String()
	}
	return defaultTrimSet
}

// commandTrim implements the 'trim' command.
func commandTrim(i *Interp, args []*Value) *Value {
	if len(args) == 0 {
		return nil
	}
	return NewValue(strings.Trim(args[0].String(), trimSet(args)))
}

// commandLtrim implements the 'ltrim' command.
func commandLtrim(i *Interp, args []*Value) *Value {
	if len(args) == 0 {
		return nil
	}
	return NewValue(strings.TrimLeft(args[0].String(), trimSet(args)))
}

// commandRtrim implements the 'rtrim' command.
func commandRtrim(i *Interp, args []*Value) *Value {
	if len(args) == 0 {
		return nil
	}
	return NewValue(strings.TrimRight(args[0].String(), trimSet(args)))
}

// commandStrcmp implements the 'strcmp' command: the raw signed
// comparison of the two strings. Only the sign is contractual.
func commandStrcmp(i *Interp, args []*Value) *Value {
	if len(args) < 2 {
		return nil
	}
	a := args[0].String()
	b := args[1].String()
	for k := 0; k < len(a) && k < len(b); k++ {
		if a[k] != b[k] {
			return IntValue(int64(a[k]) - int64(b[k]))
		}
	}
	return IntValue(int64(len(a) - len(b)))
}

// commandStreq implements the 'streq' command.
func commandStreq(i *Interp, args []*Value) *Value {
	if len(args) < 2 {
		return nil
	}
	return IntValue(boolInt(args[0].String() == args[1].String()))
}

// commandRepstr implements the 'repstr' command: the string
// repeated the given number of times.
func commandRepstr(i *Interp, args []*Value) *Value {
	if len(args) < 2 {
		return nil
	}
	n := args[1].Int()
	if n <= 0 {
		return nil
	}
	return NewValue(strings.Repeat(args[0].String(), int(n)))
}

// commandSplit implements the 'split' command: the string is split
// on every occurrence of any separator byte (default space) and the
// pieces, empty ones included, form the resulting list.
func commandSplit(i *Interp, args []*Value) *Value {
	if len(args) == 0 {
		return nil
	}
	sep := " "
	if len(args) > 1 {
		sep = args[1].String()
		if sep == "" {
			return args[0].Clone()
		}
	}
	s := args[0].String()
	list := NewList()
	cur := &Value{}
	for k := 0; k < len(s); k++ {
		if strings.IndexByte(sep, s[k]) >= 0 {
			list.Append(cur)
			cur = &Value{}
		} else {
			cur.AppendByte(s[k])
		}
	}
	list.Append(cur)
	return list.ToValue(true)
}

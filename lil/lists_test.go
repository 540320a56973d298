//
// Copyright 2013-2014 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandList(t *testing.T) {
	runAndCompare(t, map[string]string{
		"list a b c":     "a b c",
		"list a {b c} d": "a {b c} d",
		"list":           "",
		"list {}":        "{}",
	})
}

func TestCommandCount(t *testing.T) {
	runAndCompare(t, map[string]string{
		"count {a b c}":   "3",
		"count {}":        "0",
		"count {a {b c}}": "2",
		"count":           "0",
	})
}

func TestCommandIndex(t *testing.T) {
	runAndCompare(t, map[string]string{
		"index {a {b c} d} 0": "a",
		"index {a {b c} d} 1": "b c",
		"index {a {b c} d} 5": "",
		"index {a b} -1":      "",
	})
}

func TestCommandIndexof(t *testing.T) {
	runAndCompare(t, map[string]string{
		"indexof {a b c} c": "2",
		"indexof {a b c} a": "0",
		"indexof {a b c} z": "",
	})
}

func TestCommandAppend(t *testing.T) {
	runAndCompare(t, map[string]string{
		"append l x y; set l":                       "x y",
		"set l {a}; append l {b c}; set l":          "a {b c}",
		"func f {} {append global gl q}\nf\nset gl": "q",
	})
}

func TestCommandSlice(t *testing.T) {
	runAndCompare(t, map[string]string{
		"slice {a b c d} 1 3":  "b c",
		"slice {a b c d} 2":    "c d",
		"slice {a b c d} -2 2": "a b",
		"slice {a b c d} 3 1":  "",
		"slice {a b} 0 99":     "a b",
	})
}

func TestCommandFilter(t *testing.T) {
	runAndCompare(t, map[string]string{
		"filter {1 2 3 4} {$x > 2}":   "3 4",
		"filter n {1 2 3 4} {$n < 2}": "1",
		"filter {1 2 3} {0}":          "",
	})
}

func TestCommandForeach(t *testing.T) {
	runAndCompare(t, map[string]string{
		"foreach {a b c} {quote v$i}": "va vb vc",
		"foreach e {a b} {quote x$e}": "xa xb",
		// empty iteration results are dropped
		"foreach {a b c} {if {0} {quote y}}": "",
	})
}

func TestCommandLmap(t *testing.T) {
	runAndCompare(t, map[string]string{
		"lmap {1 2 3} p q; quote $p$q":    "12",
		"lmap {1} p q; quote <${p}|${q}>": "<1|>",
	})
}

func TestCommandConcat(t *testing.T) {
	runAndCompare(t, map[string]string{
		"concat {a b} {c d}":   "a b c d",
		"concat {a {b c}} {d}": "a {b c} d",
	})
}

//
// round trips
//

func TestListValueRoundTrip(t *testing.T) {
	entries := [][]string{
		{"a", "b", "c"},
		{"a", "b c", "d"},
		{"", "x", ""},
		{"{braced}", "it's", `qu"oted`},
		{"semi;colon", "dollar$sign", "bracket[open"},
	}
	for _, want := range entries {
		list := NewList()
		for _, s := range want {
			list.Append(NewValue(s))
		}
		interp := New()
		back := interp.SubstToList(list.ToValue(true))
		require.Equal(t, len(want), back.Len(), "entries: %q", want)
		got := make([]string, back.Len())
		for k := 0; k < back.Len(); k++ {
			got[k] = back.At(k).String()
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("round trip mismatch for %q (-want +got):\n%s", want, diff)
		}
	}
}

func TestListAPI(t *testing.T) {
	list := NewList()
	assert.Equal(t, 0, list.Len())
	assert.Nil(t, list.At(0))
	list.Append(NewValue("one"))
	list.Append(NewValue("two"))
	assert.Equal(t, 2, list.Len())
	assert.Equal(t, "two", list.At(1).String())
	assert.Nil(t, list.At(2))
	assert.Nil(t, list.At(-1))
	assert.Equal(t, "one two", list.ToValue(false).String())
}

//
// Copyright 2013-2014 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//
// Word forms
//

func TestParserBracedLiteral(t *testing.T) {
	runAndCompare(t, map[string]string{
		"quote {hello}":             "hello",
		"quote {a b  c}":            "a b  c",
		"quote {nested {braces} x}": "nested {braces} x",
		"quote {$novar [nocmd]}":    "$novar [nocmd]",
		"quote {}":                  "",
	})
}

func TestParserQuotedStrings(t *testing.T) {
	runAndCompare(t, map[string]string{
		"quote \"hello there\"":    "hello there",
		"quote 'single style'":     "single style",
		"quote \"it's quoted\"":    "it's quoted",
		"quote \"tab\\there\"":     "tab\there",
		"quote \"nl\\nend\"":       "nl\nend",
		"quote \"\\o\\c\"":         "{}",
		"quote \"odd \\q escape\"": "odd q escape",
		"set v 5; quote \"v=$v\"":  "v=5",
		"quote \"r=[quote x]\"":    "r=x",
	})
}

func TestParserConcatenation(t *testing.T) {
	runAndCompare(t, map[string]string{
		"set b X; quote a$b\"c\"":  "aXc",
		"quote a{b}'c'":            "abc",
		"quote [quote a][quote b]": "ab",
	})
}

func TestParserBracketCommand(t *testing.T) {
	runAndCompare(t, map[string]string{
		"quote [quote inner]":        "inner",
		"quote [quote [quote deep]]": "deep",
		// terminators are whitespace inside brackets
		"quote [quote a\nb]":          "a b",
		"quote [quote a;b]":           "a b",
		"set x [set y 3]; quote $x$y": "33",
	})
}

func TestParserDollarForms(t *testing.T) {
	runAndCompare(t, map[string]string{
		"set abc 5; quote $abc":       "5",
		"set abc 5; quote ${abc}":     "5",
		"set a 1; set b a; quote $$b": "1",
	})
}

//
// Lines, comments, continuation
//

func TestParserSeparators(t *testing.T) {
	runAndCompare(t, map[string]string{
		"set a 1; set b 2; quote $a$b":   "12",
		"set a 1\nset b 2\nquote $a$b":   "12",
		"set a 1\r\nset b 2\rquote $a$b": "12",
		";;;quote late;;;":               "late",
	})
}

func TestParserComments(t *testing.T) {
	runAndCompare(t, map[string]string{
		"# leading comment\nquote ok": "ok",
		"quote ok # trailing\n":       "ok",
		// a semicolon ends a single-line comment like a newline does
		"# a; quote first\nquote second":  "second",
		"quote a ## spanning\nlines ## b": "a b",
		"### three\nquote after":          "after",
	})
}

func TestParserLineContinuation(t *testing.T) {
	runAndCompare(t, map[string]string{
		"quote a \\\nb":     "a b",
		"quote a \\\n\n\nb": "a b",
	})
}

//
// Errors
//

func TestParserUnbalanced(t *testing.T) {
	runForError(t, map[string]string{
		"quote {unclosed":  "expected }",
		"quote [set a":     "expected ]",
		"quote \"unclosed": "expected \"",
		"quote 'unclosed":  "expected '",
	})
}

func TestParserErrorPosition(t *testing.T) {
	interp := New()
	interp.Parse("quote ok; quote {bad", false)
	msg, pos, ok := interp.Err()
	require.True(t, ok)
	assert.Equal(t, "expected }", msg)
	assert.Equal(t, 16, pos)
}

//
// Quote transparency and list round trips
//

func TestParserQuoteTransparency(t *testing.T) {
	inputs := []string{
		"plain",
		"with spaces and\ttabs",
		"specials $ [ ] \" '",
		"balanced {inner} braces",
	}
	for _, s := range inputs {
		interp := New()
		res, err := interp.Run("quote {" + s + "}")
		require.NoError(t, err, "input: %s", s)
		assert.Equal(t, s, res.String(), "input: %s", s)
	}
}

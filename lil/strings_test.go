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

func TestCommandCharAndCodes(t *testing.T) {
	runAndCompare(t, map[string]string{
		"char 65":         "A",
		"charat hello 1":  "e",
		"charat hello 99": "",
		"codeat hello 0":  "104",
		"codeat hello -1": "",
	})
}

func TestCommandSubstr(t *testing.T) {
	runAndCompare(t, map[string]string{
		"substr hello 1 3":  "el",
		"substr hello 2":    "llo",
		"substr hello 3 99": "lo",
		"substr hello 4 2":  "",
	})
}

func TestCommandStrpos(t *testing.T) {
	runAndCompare(t, map[string]string{
		"strpos hello ll":  "2",
		"strpos hello zz":  "-1",
		"strpos hello l 3": "3",
		"strpos hello h 1": "-1",
	})
}

func TestCommandLength(t *testing.T) {
	runAndCompare(t, map[string]string{
		"length hello":   "5",
		"length a b":     "3",
		"length {a b} c": "5",
		"length":         "0",
	})
}

func TestCommandTrims(t *testing.T) {
	runAndCompare(t, map[string]string{
		"trim \"  hi  \"":  "hi",
		"ltrim \"  hi  \"": "hi  ",
		"rtrim \"  hi  \"": "  hi",
		"trim xxhixx x":    "hi",
		"ltrim xxhixx x":   "hixx",
		"rtrim xxhixx x":   "xxhi",
	})
}

func TestCommandStrcmpSign(t *testing.T) {
	interp := New()
	// only the sign of strcmp is contractual
	res, err := interp.Run("strcmp abc abd")
	require.NoError(t, err)
	assert.Negative(t, res.Int())

	res, err = interp.Run("strcmp abd abc")
	require.NoError(t, err)
	assert.Positive(t, res.Int())

	res, err = interp.Run("strcmp same same")
	require.NoError(t, err)
	assert.Zero(t, res.Int())

	res, err = interp.Run("strcmp ab abc")
	require.NoError(t, err)
	assert.Negative(t, res.Int())
}

func TestCommandStreq(t *testing.T) {
	runAndCompare(t, map[string]string{
		"streq a a":   "1",
		"streq a b":   "0",
		"streq {} {}": "1",
	})
}

func TestCommandRepstr(t *testing.T) {
	runAndCompare(t, map[string]string{
		"repstr ab 3": "ababab",
		"repstr ab 0": "",
		"repstr ab 1": "ab",
	})
}

func TestCommandSplit(t *testing.T) {
	runAndCompare(t, map[string]string{
		"split {a b c}":          "a b c",
		"split a,b,c ,":          "a b c",
		"count [split a,,c ,]":   "3",
		"index [split a,,c ,] 1": "",
		"split a:b,c ,:":         "a b c",
	})
}

//
// Copyright 2013-2014 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lil

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringMapPutGet(t *testing.T) {
	var m stringMap
	assert.Nil(t, m.get("missing"))
	m.put("a", 1)
	m.put("b", 2)
	assert.Equal(t, 1, m.get("a"))
	assert.Equal(t, 2, m.get("b"))
}

func TestStringMapReplaceInPlace(t *testing.T) {
	var m stringMap
	m.put("key", "first")
	m.put("key", "second")
	assert.Equal(t, "second", m.get("key"))
}

func TestStringMapNilTombstone(t *testing.T) {
	var m stringMap
	m.put("key", "value")
	m.put("key", nil)
	assert.Nil(t, m.get("key"))
}

func TestStringMapManyKeys(t *testing.T) {
	// more keys than buckets forces chaining within buckets
	var m stringMap
	for k := 0; k < 1000; k++ {
		m.put(fmt.Sprintf("key%d", k), k)
	}
	for k := 0; k < 1000; k++ {
		assert.Equal(t, k, m.get(fmt.Sprintf("key%d", k)))
	}
}

func TestDJB2(t *testing.T) {
	// reference values for the classic hash
	assert.Equal(t, uint32(5381), djb2(""))
	assert.Equal(t, uint32(5381*33+uint32('a')), djb2("a"))
}

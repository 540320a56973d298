//
// Copyright 2013-2014 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	assert.Equal(t, 0, c.MaxParseDepth)
	assert.Equal(t, DefaultDollarPrefix, c.DollarPrefix)
	assert.Equal(t, DefaultLogLevel, c.LogLevel)
	assert.Equal(t, DefaultPrompt, c.Prompt)
}

func TestApplyOverlay(t *testing.T) {
	c := DefaultConfig()
	c.Apply(Config{MaxParseDepth: 128, Prompt: "> "})
	assert.Equal(t, 128, c.MaxParseDepth)
	assert.Equal(t, "> ", c.Prompt)
	// untouched fields keep their defaults
	assert.Equal(t, DefaultDollarPrefix, c.DollarPrefix)
	assert.Equal(t, DefaultLogLevel, c.LogLevel)
}

func TestApplyIgnoresZeroValues(t *testing.T) {
	c := DefaultConfig()
	c.Apply(Config{})
	assert.Equal(t, DefaultConfig(), c)
}

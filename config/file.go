//
// Copyright 2013-2014 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package config

import (
	"os"

	"github.com/adrg/xdg"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultPath locates the config file in the XDG config home,
// creating the parent directory when necessary.
func DefaultPath() (string, error) {
	path, err := xdg.ConfigFile("golil/config.yaml")
	if err != nil {
		return "", errors.Wrapf(err, "xdg.ConfigFile")
	}
	return path, nil
}

// Load reads and parses the config file at the given path, layered
// over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	c := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return c, errors.Wrapf(err, "os.ReadFile")
	}
	var overlay Config
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return c, errors.Wrapf(err, "yaml.Unmarshal")
	}
	c.Apply(overlay)
	return c, nil
}

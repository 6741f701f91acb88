// Copyright (C) 2026 tinycbor contributors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Package config loads optional defaults for the cborpack
// command-line tool from a YAML file. cbordump does not load a
// configuration file.
package config

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

// Config holds the tunable defaults for the command-line tools. The
// zero value is not valid; use Default to obtain sane defaults before
// overlaying a loaded file.
type Config struct {
	// Capacity is the initial Stream capacity, in bytes, used by
	// cborpack; the Stream is made larger when the inputs need more.
	Capacity int `json:"capacity"`
	// IndentWidth is a per-nesting-level indent width. It is loaded
	// but not consulted: the walker always indents by 2 spaces.
	IndentWidth int `json:"indentWidth"`
	// KnownTags lists extra tag numbers to treat as datetime tags. It
	// is loaded but not consulted: the walker recognizes only tags 0
	// and 1.
	KnownTags []uint64 `json:"knownTags"`
}

// Default returns the built-in defaults, matching the codec's own
// constants when no configuration file is supplied.
func Default() Config {
	return Config{
		Capacity:    4096,
		IndentWidth: 2,
		KnownTags:   nil,
	}
}

// Load reads path and unmarshals it as YAML over a copy of Default.
// Fields absent from the file keep their default value.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config loads project configuration for the token pipeline.
package config

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/wmtokens/cssvars"
	"bennypowers.dev/wmtokens/tokens"
)

// DefaultOrigin is the origin of a local Storybook.
const DefaultOrigin = "http://localhost:6006"

// Config is the project configuration.
type Config struct {
	// Tokens lists the token-definition files (paths or globs).
	Tokens []FileSpec `yaml:"tokens" json:"tokens" validate:"dive"`

	// Document is an HTML preview page whose stylesheets are read.
	Document string `yaml:"document" json:"document"`

	// Stylesheets are CSS files read when no Document is set.
	Stylesheets []string `yaml:"stylesheets" json:"stylesheets" validate:"dive,required"`

	// Origin decides which <link> stylesheets of Document are same-origin.
	Origin string `yaml:"origin" json:"origin" validate:"omitempty,origin"`

	// CacheSize bounds the number of preview documents kept in memory.
	CacheSize int `yaml:"cacheSize" json:"cacheSize" validate:"min=1"`

	// State is the state used for labels.
	State string `yaml:"state" json:"state" validate:"omitempty,state"`
}

// FileSpec is a token file, optionally restricted to some components.
// It can be written as a plain path or as an object.
type FileSpec struct {
	Path       string   `yaml:"path" json:"path" validate:"required"`
	Components []string `yaml:"components" json:"components" validate:"dive,required"`
}

// UnmarshalYAML handles both string and object forms for FileSpec.
func (f *FileSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		f.Path = node.Value
		return nil
	}

	type rawFileSpec FileSpec
	return node.Decode((*rawFileSpec)(f))
}

// UnmarshalJSON handles both string and object forms for FileSpec.
func (f *FileSpec) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f.Path = s
		return nil
	}

	type rawFileSpec FileSpec
	return json.Unmarshal(data, (*rawFileSpec)(f))
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Origin:    DefaultOrigin,
		CacheSize: cssvars.DefaultRegistrySize,
		State:     tokens.DefaultState,
	}
}

// TokenPaths returns the path of every FileSpec.
func (c *Config) TokenPaths() []string {
	paths := make([]string, 0, len(c.Tokens))
	for _, spec := range c.Tokens {
		paths = append(paths, spec.Path)
	}
	return paths
}

// ComponentsFor returns the components selected for a token file path, or
// nil when the whole file is used.
func (c *Config) ComponentsFor(path string) []string {
	for _, spec := range c.Tokens {
		if spec.Path == path {
			return spec.Components
		}
	}
	return nil
}

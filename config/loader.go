/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	wmfs "bennypowers.dev/wmtokens/fs"
)

// ConfigFileName is the base name of the config file without extension.
const ConfigFileName = "wm-tokens"

// ConfigDir is the directory where config files are stored.
const ConfigDir = ".config"

// configExtensions are the supported config file extensions in priority order.
var configExtensions = []string{".yaml", ".yml", ".json"}

// Load searches for .config/wm-tokens.{yaml,yml,json} from rootDir.
// Unset fields keep their defaults. Returns nil if no config found (not an error).
func Load(filesystem wmfs.FileSystem, rootDir string) (*Config, error) {
	for _, ext := range configExtensions {
		configPath := filepath.Join(rootDir, ConfigDir, ConfigFileName+ext)
		if !filesystem.Exists(configPath) {
			continue
		}

		data, err := filesystem.ReadFile(configPath)
		if err != nil {
			return nil, err
		}

		cfg := Default()
		switch ext {
		case ".yaml", ".yml":
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
			}
		case ".json":
			if err := json.Unmarshal(jsonc.ToJSON(data), cfg); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
			}
		}

		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", configPath, err)
		}
		return cfg, nil
	}

	return nil, nil
}

// LoadOrDefault returns config or defaults if not found.
func LoadOrDefault(filesystem wmfs.FileSystem, rootDir string) *Config {
	cfg, err := Load(filesystem, rootDir)
	if err != nil || cfg == nil {
		return Default()
	}
	return cfg
}

// ExpandTokens expands glob patterns in Tokens and returns absolute paths,
// each paired with the spec it came from.
func (c *Config) ExpandTokens(filesystem wmfs.FileSystem, rootDir string) ([]ExpandedFile, error) {
	var result []ExpandedFile
	for _, spec := range c.Tokens {
		paths, err := expandFilePath(filesystem, rootDir, spec.Path)
		if err != nil {
			return nil, err
		}
		for _, p := range paths {
			result = append(result, ExpandedFile{Path: p, Spec: spec})
		}
	}
	return result, nil
}

// ExpandedFile is a token file matched by a FileSpec.
type ExpandedFile struct {
	Path string
	Spec FileSpec
}

// ExpandStylesheets expands glob patterns in Stylesheets.
func (c *Config) ExpandStylesheets(filesystem wmfs.FileSystem, rootDir string) ([]string, error) {
	var result []string
	for _, pattern := range c.Stylesheets {
		paths, err := expandFilePath(filesystem, rootDir, pattern)
		if err != nil {
			return nil, err
		}
		result = append(result, paths...)
	}
	return result, nil
}

// DocumentPath returns Document made absolute against rootDir, or "".
func (c *Config) DocumentPath(rootDir string) string {
	if c.Document == "" || filepath.IsAbs(c.Document) {
		return c.Document
	}
	return filepath.Join(rootDir, c.Document)
}

// expandFilePath expands a single file path which may contain globs.
func expandFilePath(filesystem wmfs.FileSystem, rootDir, pattern string) ([]string, error) {
	if !filepath.IsAbs(pattern) {
		pattern = filepath.Join(rootDir, pattern)
	}

	if !containsGlob(pattern) {
		// Not a glob, return the path directly (errors handled when file is read)
		return []string{pattern}, nil
	}

	return expandGlob(filesystem, pattern)
}

// containsGlob returns true if the pattern contains glob characters.
func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

// expandGlob walks the non-glob prefix of pattern and matches with doublestar.
// Matches are sorted for a stable merge order.
func expandGlob(filesystem wmfs.FileSystem, pattern string) ([]string, error) {
	baseDir := pattern
	for containsGlob(baseDir) {
		baseDir = filepath.Dir(baseDir)
	}

	relPattern := strings.TrimPrefix(pattern, baseDir)
	relPattern = strings.TrimPrefix(relPattern, string(filepath.Separator))

	var matches []string
	err := fs.WalkDir(filesystem, baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		relPath := strings.TrimPrefix(path, baseDir)
		relPath = strings.TrimPrefix(relPath, string(filepath.Separator))
		if ok, _ := doublestar.Match(relPattern, filepath.ToSlash(relPath)); ok {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.Sort(matches)
	return matches, nil
}

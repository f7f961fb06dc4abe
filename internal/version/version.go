/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package version reports the wm-tokens build version.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// Set at build time via -ldflags "-X".
var (
	Version   = "dev"
	GitCommit = "unknown"
	GitTag    = "unknown"
	BuildTime = "unknown"
	GitDirty  = ""
)

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	GitTag    string `json:"gitTag"`
	BuildTime string `json:"buildTime"`
	Dirty     bool   `json:"dirty"`
}

// Get returns the version string. ldflags win, then the module version
// recorded by `go install`, then tag plus short commit.
func Get() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	if GitTag == "unknown" || GitCommit == "unknown" {
		return "dev"
	}

	v := GitTag
	if short := shortCommit(); short != "" && !strings.HasSuffix(GitTag, short) {
		v += "-" + short
	}
	if GitDirty == "dirty" {
		v += "-dirty"
	}
	return v
}

// Full returns the version with the commit, when known.
func Full() string {
	if GitCommit == "unknown" {
		return Get()
	}
	return fmt.Sprintf("%s (commit: %s)", Get(), GitCommit)
}

// Info returns the build information.
func Info() BuildInfo {
	return BuildInfo{
		Version:   Get(),
		GitCommit: GitCommit,
		GitTag:    GitTag,
		BuildTime: BuildTime,
		Dirty:     GitDirty == "dirty",
	}
}

func shortCommit() string {
	if len(GitCommit) > 7 {
		return GitCommit[:7]
	}
	return GitCommit
}

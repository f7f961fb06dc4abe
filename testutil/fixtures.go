/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package testutil provides fixture loading for package tests.
package testutil

import (
	"flag"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"bennypowers.dev/wmtokens/internal/mapfs"
)

// update rewrites golden files with actual output: go test ./... -update
var update = flag.Bool("update", false, "update golden files with actual output")

// testdataDir finds the repository's testdata directory from a package
// directory at most two levels deep.
func testdataDir(t *testing.T) string {
	t.Helper()
	for _, dir := range []string{"testdata", filepath.Join("..", "testdata"), filepath.Join("..", "..", "testdata")} {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	t.Fatal("no testdata directory above the package")
	return ""
}

// NewFixtureFS loads every file under testdata/fixtureDir into an in-memory
// filesystem, rooted at rootPath.
func NewFixtureFS(t *testing.T, fixtureDir string, rootPath string) *mapfs.MapFileSystem {
	t.Helper()

	base := filepath.Join(testdataDir(t), fixtureDir)
	mfs := mapfs.New()
	err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(base, path)
		if err != nil {
			return err
		}
		mfs.AddFile(filepath.Join(rootPath, rel), string(content), 0644)
		return nil
	})
	if err != nil {
		t.Fatalf("loading fixtures %s: %v", fixtureDir, err)
	}
	return mfs
}

// LoadFixtureFile reads testdata/fixturePath.
func LoadFixtureFile(t *testing.T, fixturePath string) []byte {
	t.Helper()
	content, err := os.ReadFile(filepath.Join(testdataDir(t), fixturePath))
	if err != nil {
		t.Fatalf("reading fixture: %v", err)
	}
	return content
}

// UpdateGoldenFile writes actual to testdata/goldenPath when -update is set.
func UpdateGoldenFile(t *testing.T, goldenPath string, actual []byte) {
	t.Helper()
	if !*update {
		return
	}
	target := filepath.Join(testdataDir(t), goldenPath)
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		t.Fatalf("creating golden dir: %v", err)
	}
	if err := os.WriteFile(target, actual, 0644); err != nil {
		t.Fatalf("writing golden file: %v", err)
	}
	t.Logf("updated %s", target)
}

/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package workspace loads the project named by the global CLI flags.
package workspace

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/wmtokens/cssvars"
	"bennypowers.dev/wmtokens/fs"
	"bennypowers.dev/wmtokens/internal/logger"
	"bennypowers.dev/wmtokens/load"
)

// Keys of the global settings, shared by flags, environment and viper.
const (
	KeyRoot       = "root"
	KeyTokens     = "tokens"
	KeyDocument   = "document"
	KeyStylesheet = "stylesheet"
	KeyOrigin     = "origin"
	KeyDebug      = "debug"
)

// Workspace is a loaded project with its extractor registry.
type Workspace struct {
	Project  *load.Project
	Registry *cssvars.Registry
}

// Options builds load options from the global settings.
func Options(filesystem fs.FileSystem) load.Options {
	return load.Options{
		Root:        viper.GetString(KeyRoot),
		FS:          filesystem,
		Files:       viper.GetStringSlice(KeyTokens),
		Document:    viper.GetString(KeyDocument),
		Stylesheets: viper.GetStringSlice(KeyStylesheet),
		Origin:      viper.GetString(KeyOrigin),
		Logger:      logger.L(),
	}
}

// Open loads the project from the OS filesystem.
func Open(ctx context.Context) (*Workspace, error) {
	return OpenFS(ctx, fs.NewOSFileSystem())
}

// OpenFS loads the project from filesystem.
func OpenFS(ctx context.Context, filesystem fs.FileSystem) (*Workspace, error) {
	p, err := load.Load(ctx, Options(filesystem))
	if err != nil {
		return nil, err
	}
	reg, err := cssvars.NewRegistry(p.Config.CacheSize, logger.L())
	if err != nil {
		return nil, fmt.Errorf("failed to create extractor registry: %w", err)
	}
	return &Workspace{Project: p, Registry: reg}, nil
}

// Reload loads the project again, keeping the registry. The previous
// document's extractor is invalidated so its variables are read afresh.
func (w *Workspace) Reload(ctx context.Context, filesystem fs.FileSystem) error {
	p, err := load.Load(ctx, Options(filesystem))
	if err != nil {
		return err
	}
	w.Registry.Invalidate(w.Project.DocumentID)
	if p.DocumentID != w.Project.DocumentID {
		w.Registry.Remove(w.Project.DocumentID)
	}
	w.Project = p
	return nil
}

// ReloadDocument reads the preview document again and invalidates its
// extractor. The project is replaced, not mutated, so holders of the
// previous one keep a consistent view.
func (w *Workspace) ReloadDocument() error {
	doc, err := w.Project.ReloadDocument()
	if err != nil {
		return err
	}
	p := *w.Project
	p.Document = doc
	w.Project = &p
	w.Registry.Invalidate(p.DocumentID)
	return nil
}

// ComponentArg validates that args holds exactly one known component.
func (w *Workspace) ComponentArg(args []string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("missing component; available: %v", w.Project.Tree.Keys())
	}
	if _, ok := w.Project.Tree.Component(args[0]); !ok {
		return "", fmt.Errorf("unknown component %q; available: %v", args[0], w.Project.Tree.Keys())
	}
	return args[0], nil
}

// CompleteComponents offers component keys for shell completion.
func CompleteComponents(cmd *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	w, err := Open(cmd.Context())
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return w.Project.Tree.Keys(), cobra.ShellCompDirectiveNoFileComp
}

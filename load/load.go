/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package load provides a high-level API for loading a project: its config,
// token trees and preview document.
package load

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"slices"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"bennypowers.dev/wmtokens/config"
	"bennypowers.dev/wmtokens/document"
	"bennypowers.dev/wmtokens/fs"
	"bennypowers.dev/wmtokens/tokentree"
)

// ErrNoTokenFiles indicates that neither options nor config name a token file.
var ErrNoTokenFiles = errors.New("no token files configured")

// Options configures how a project is loaded. Set fields take precedence
// over the config file.
type Options struct {
	// Root is the project directory. Defaults to the working directory.
	Root string

	// FS is the filesystem to use. Defaults to OS filesystem if nil.
	FS fs.FileSystem

	// Files are token files or globs.
	Files []string

	// Document is an HTML preview page.
	Document string

	// Stylesheets are CSS files used when there is no Document.
	Stylesheets []string

	// Origin of the preview document.
	Origin string

	Logger *zap.Logger
}

// Project is a loaded project.
type Project struct {
	Root   string
	Config *config.Config
	Tree   *tokentree.Tree
	// Files are the token files read, in merge order.
	Files []string
	// Document is nil when no preview is configured.
	Document *document.Page
	// DocumentID identifies the preview document in a cssvars.Registry.
	DocumentID string

	filesystem fs.FileSystem
	loader     *document.Loader
	docPath    string
	sheets     []string
	origin     string
}

// Load loads the project described by opts and the config file.
//
// Every token file is read even when some fail; the failures are returned
// together.
func Load(ctx context.Context, opts Options) (*Project, error) {
	filesystem := opts.FS
	if filesystem == nil {
		filesystem = fs.NewOSFileSystem()
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	root := opts.Root
	if root == "" {
		root = "."
	}
	if !filepath.IsAbs(root) {
		absRoot, err := filepath.Abs(root)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve root path: %w", err)
		}
		root = absRoot
	}

	cfg, err := config.Load(filesystem, root)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = config.Default()
	}
	applyOptions(cfg, opts)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p := &Project{
		Root:       root,
		Config:     cfg,
		filesystem: filesystem,
		loader:     document.NewLoader(filesystem, log),
		origin:     cfg.Origin,
	}

	if err := p.loadTokens(ctx, log); err != nil {
		return nil, err
	}

	p.docPath = cfg.DocumentPath(root)
	if p.docPath == "" {
		if p.sheets, err = cfg.ExpandStylesheets(filesystem, root); err != nil {
			return nil, fmt.Errorf("failed to expand stylesheets: %w", err)
		}
	}
	if p.Document, err = p.ReloadDocument(); err != nil {
		return nil, err
	}
	return p, nil
}

func applyOptions(cfg *config.Config, opts Options) {
	if len(opts.Files) > 0 {
		cfg.Tokens = make([]config.FileSpec, 0, len(opts.Files))
		for _, f := range opts.Files {
			cfg.Tokens = append(cfg.Tokens, config.FileSpec{Path: f})
		}
	}
	if opts.Document != "" {
		cfg.Document = opts.Document
	}
	if len(opts.Stylesheets) > 0 {
		cfg.Stylesheets = opts.Stylesheets
		if opts.Document == "" {
			cfg.Document = ""
		}
	}
	if opts.Origin != "" {
		cfg.Origin = opts.Origin
	}
}

func (p *Project) loadTokens(ctx context.Context, log *zap.Logger) error {
	if len(p.Config.Tokens) == 0 {
		return ErrNoTokenFiles
	}
	files, err := p.Config.ExpandTokens(p.filesystem, p.Root)
	if err != nil {
		return fmt.Errorf("failed to expand token files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: globs matched nothing", ErrNoTokenFiles)
	}

	var (
		trees []*tokentree.Tree
		errs  error
	)
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		tree, err := tokentree.ParseFile(p.filesystem, f.Path)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		for _, skip := range tree.Skipped {
			log.Debug("skipped token entry",
				zap.String("path", f.Path),
				zap.String("key", skip.Key),
				zap.Int("line", skip.Line),
				zap.String("reason", skip.Reason))
		}
		if len(f.Spec.Components) > 0 {
			tree = tree.Only(f.Spec.Components...)
		}
		log.Debug("loaded token file", zap.String("path", f.Path), zap.Int("components", tree.Len()))
		trees = append(trees, tree)
		p.Files = append(p.Files, f.Path)
	}
	if errs != nil {
		return errs
	}

	p.Tree = tokentree.Merge(trees...)
	return nil
}

// ReloadDocument reads the preview document again. It returns nil when the
// project has no preview.
func (p *Project) ReloadDocument() (*document.Page, error) {
	switch {
	case p.docPath != "":
		p.DocumentID = p.docPath
		return p.loader.LoadHTML(p.docPath, p.origin)
	case len(p.sheets) > 0:
		p.DocumentID = p.sheets[0]
		return p.loader.LoadCSS(p.origin, p.sheets...)
	default:
		return nil, nil
	}
}

// PreviewFiles lists the files the preview document is read from: the HTML
// page and its same-origin stylesheets, or the configured CSS files.
func (p *Project) PreviewFiles() []string {
	if p.docPath == "" {
		return slices.Clone(p.sheets)
	}
	files := []string{p.docPath}
	if p.Document == nil {
		return files
	}
	base := path.Dir(p.docPath)
	for _, s := range p.Document.StyleSheets() {
		sheet, ok := s.(*document.Sheet)
		if !ok || sheet.CrossOrigin() || sheet.Href() == "" {
			continue
		}
		u, err := url.Parse(sheet.Href())
		if err != nil || u.Path == "" {
			continue
		}
		local := u.Path
		if !path.IsAbs(local) {
			local = path.Join(base, local)
		}
		files = append(files, local)
	}
	return files
}

/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package document

import (
	"fmt"
	"net/url"
	"path"
	"strings"

	ts "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_html "github.com/tree-sitter/tree-sitter-html/bindings/go"
	"go.uber.org/zap"

	"bennypowers.dev/wmtokens/fs"
)

// Loader builds preview documents from files.
type Loader struct {
	fs  fs.FileSystem
	log *zap.Logger
}

// NewLoader creates a loader reading from filesystem.
func NewLoader(filesystem fs.FileSystem, log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{fs: filesystem, log: log.Named("document")}
}

// LoadCSS builds a page from stylesheet files, in order.
func (l *Loader) LoadCSS(origin string, paths ...string) (*Page, error) {
	page := NewPage(origin)
	for _, p := range paths {
		data, err := l.fs.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("failed to read stylesheet %s: %w", p, err)
		}
		if err := page.AddStyleSheet(p, data); err != nil {
			l.log.Warn("stylesheet parsed partially", zap.String("href", p), zap.Error(err))
		}
	}
	return page, nil
}

// LoadHTML builds a page from an HTML preview file.
//
// <style> blocks become inline sheets. <link rel="stylesheet"> elements are
// read relative to the HTML file when they share the page's origin, and are
// attached as cross-origin sheets otherwise. The style attribute of <html>
// becomes the root inline style.
func (l *Loader) LoadHTML(htmlPath, origin string) (*Page, error) {
	src, err := l.fs.ReadFile(htmlPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", htmlPath, err)
	}

	parser := ts.NewParser()
	defer parser.Close()
	if err := parser.SetLanguage(ts.NewLanguage(tree_sitter_html.Language())); err != nil {
		return nil, fmt.Errorf("failed to load HTML grammar: %w", err)
	}

	tree := parser.Parse(src, nil)
	if tree == nil {
		return nil, fmt.Errorf("failed to parse %s", htmlPath)
	}
	defer tree.Close()

	page := NewPage(origin)
	base := path.Dir(htmlPath)
	l.walk(tree.RootNode(), src, page, base)
	return page, nil
}

func (l *Loader) walk(node *ts.Node, src []byte, page *Page, base string) {
	if node == nil {
		return
	}

	switch node.Kind() {
	case "style_element":
		for i := uint(0); i < node.NamedChildCount(); i++ {
			child := node.NamedChild(i)
			if child != nil && child.Kind() == "raw_text" {
				if err := page.AddStyleSheet("", []byte(child.Utf8Text(src))); err != nil {
					l.log.Warn("inline style parsed partially", zap.Error(err))
				}
			}
		}
		return

	case "element":
		tag, attrs := startTag(node, src)
		switch tag {
		case "html":
			if style, ok := attrs["style"]; ok {
				page.SetRootStyle(style)
			}
		case "link":
			if isStylesheetLink(attrs) {
				l.attachLink(page, base, attrs["href"])
			}
		}
	}

	for i := uint(0); i < node.NamedChildCount(); i++ {
		l.walk(node.NamedChild(i), src, page, base)
	}
}

func isStylesheetLink(attrs map[string]string) bool {
	for rel := range strings.FieldsSeq(strings.ToLower(attrs["rel"])) {
		if rel == "stylesheet" {
			return attrs["href"] != ""
		}
	}
	return false
}

// attachLink resolves a <link> href against the page origin.
func (l *Loader) attachLink(page *Page, base, href string) {
	u, err := url.Parse(href)
	if err != nil {
		l.log.Debug("ignoring malformed stylesheet href", zap.String("href", href), zap.Error(err))
		return
	}

	if u.Host != "" && !sameOrigin(u, page.Origin()) {
		l.log.Debug("cross-origin stylesheet", zap.String("href", href))
		_ = page.AddCrossOriginStyleSheet(href, nil)
		return
	}

	local := u.Path
	if !path.IsAbs(local) {
		local = path.Join(base, local)
	}
	data, err := l.fs.ReadFile(local)
	if err != nil {
		l.log.Warn("stylesheet not found", zap.String("href", href), zap.String("path", local))
		return
	}
	if err := page.AddStyleSheet(href, data); err != nil {
		l.log.Warn("stylesheet parsed partially", zap.String("href", href), zap.Error(err))
	}
}

func sameOrigin(u *url.URL, origin string) bool {
	o, err := url.Parse(origin)
	if err != nil || o.Host == "" {
		return false
	}
	scheme := u.Scheme
	if scheme == "" {
		scheme = o.Scheme
	}
	return strings.EqualFold(scheme, o.Scheme) && strings.EqualFold(u.Host, o.Host)
}

// startTag returns the tag name and attributes of an element.
func startTag(element *ts.Node, src []byte) (string, map[string]string) {
	attrs := make(map[string]string)
	for i := uint(0); i < element.NamedChildCount(); i++ {
		tagNode := element.NamedChild(i)
		if tagNode == nil {
			continue
		}
		if kind := tagNode.Kind(); kind != "start_tag" && kind != "self_closing_tag" {
			continue
		}

		var name string
		for j := uint(0); j < tagNode.NamedChildCount(); j++ {
			child := tagNode.NamedChild(j)
			if child == nil {
				continue
			}
			switch child.Kind() {
			case "tag_name":
				name = strings.ToLower(child.Utf8Text(src))
			case "attribute":
				key, value := attribute(child, src)
				if key != "" {
					attrs[key] = value
				}
			}
		}
		return name, attrs
	}
	return "", attrs
}

func attribute(node *ts.Node, src []byte) (string, string) {
	var key, value string
	for i := uint(0); i < node.NamedChildCount(); i++ {
		child := node.NamedChild(i)
		if child == nil {
			continue
		}
		switch child.Kind() {
		case "attribute_name":
			key = strings.ToLower(child.Utf8Text(src))
		case "attribute_value":
			value = child.Utf8Text(src)
		case "quoted_attribute_value":
			for j := uint(0); j < child.NamedChildCount(); j++ {
				if v := child.NamedChild(j); v != nil && v.Kind() == "attribute_value" {
					value = v.Utf8Text(src)
				}
			}
		}
	}
	return key, value
}

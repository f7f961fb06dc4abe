/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cssvars extracts design-system custom properties from a preview
// document and resolves token references against them.
//
// Extraction results are cached until ClearCache is called. The extractor
// cannot tell when a document reloads; whoever owns the document must clear
// the cache when it does (see the watch package).
package cssvars

import (
	"errors"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"bennypowers.dev/wmtokens/catalog"
	"bennypowers.dev/wmtokens/document"
)

// Variables maps a CSS variable name to its value.
type Variables map[string]string

// ReferenceMap maps a token reference, braces included, to a resolved value.
type ReferenceMap map[string]string

var referencePattern = regexp.MustCompile(`\{[^}]+\}`)

// Extractor reads variables from documents and builds reference maps.
type Extractor struct {
	cache   *Cache
	prefix  string
	entries []catalog.Entry
	log     *zap.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithCache makes the extractor use the given cache.
func WithCache(c *Cache) Option {
	return func(e *Extractor) { e.cache = c }
}

// WithLogger sets the extractor's logger.
func WithLogger(log *zap.Logger) Option {
	return func(e *Extractor) {
		if log != nil {
			e.log = log
		}
	}
}

// WithPrefix overrides the reserved variable prefix (default "--wm-").
func WithPrefix(prefix string) Option {
	return func(e *Extractor) { e.prefix = prefix }
}

// New creates an Extractor with its own cache.
func New(opts ...Option) *Extractor {
	e := &Extractor{
		prefix:  catalog.VariablePrefix,
		entries: catalog.Entries(),
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.cache == nil {
		e.cache = NewCache()
	}
	e.log = e.log.Named("cssvars")
	return e
}

// Cache returns the extractor's cache.
func (e *Extractor) Cache() *Cache {
	return e.cache
}

// ExtractVariables scans the root-scope rules of every readable stylesheet
// and records each prefixed custom property, preferring its computed value.
//
// A nil or unready document yields an empty map that is not cached. The
// scan of a ready document is cached, even when empty, and returned as-is
// by later calls until ClearCache.
func (e *Extractor) ExtractVariables(doc document.Document) Variables {
	if vars, ok := e.cache.variables(); ok {
		return vars
	}
	if doc == nil || !doc.Ready() {
		return Variables{}
	}

	vars := make(Variables)
	for _, sheet := range doc.StyleSheets() {
		rules, err := sheet.Rules()
		if err != nil {
			if errors.Is(err, document.ErrCrossOrigin) {
				e.log.Debug("skipping inaccessible stylesheet", zap.String("href", sheet.Href()))
			} else {
				e.log.Debug("skipping unreadable stylesheet", zap.String("href", sheet.Href()), zap.Error(err))
			}
			continue
		}
		for _, rule := range rules {
			if !rule.TargetsRoot() {
				continue
			}
			for _, decl := range rule.Declarations {
				if !strings.HasPrefix(decl.Property, e.prefix) {
					continue
				}
				if computed, ok := doc.ComputedValue(decl.Property); ok && computed != "" {
					vars[decl.Property] = computed
				} else {
					vars[decl.Property] = strings.TrimSpace(decl.Value)
				}
			}
		}
	}

	e.log.Debug("extracted variables", zap.Int("count", len(vars)))
	return e.cache.storeVariables(vars)
}

// BuildReferenceMap joins the primitives catalog with extracted variables.
// References whose variable was not extracted are left out.
// The result is cached once it is non-empty or the variables it joins came
// from a cached scan.
func (e *Extractor) BuildReferenceMap(vars Variables) ReferenceMap {
	if refs, ok := e.cache.references(); ok {
		return refs
	}

	refs := make(ReferenceMap)
	for _, entry := range e.entries {
		if v, ok := vars[entry.Variable]; ok {
			refs[entry.Reference] = v
		}
	}
	if len(refs) == 0 && !e.cache.Populated() {
		return refs
	}
	return e.cache.storeReferences(refs)
}

// ClearCache drops both cached maps.
func (e *Extractor) ClearCache() {
	e.cache.Clear()
}

// ResolveReference replaces every {reference} in text found in refs.
// Unknown references are left verbatim.
func ResolveReference(text string, refs ReferenceMap) string {
	if len(refs) == 0 || !strings.Contains(text, "{") {
		return text
	}
	return referencePattern.ReplaceAllStringFunc(text, func(match string) string {
		if v, ok := refs[match]; ok {
			return v
		}
		return match
	})
}

// References returns every {reference} that occurs in text, in order.
func References(text string) []string {
	return referencePattern.FindAllString(text, -1)
}

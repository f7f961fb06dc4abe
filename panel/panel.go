/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package panel drives a token editing panel for one component: it loads
// the component's tokens against a preview document, exposes one control per
// token, and renders the user's edits as override CSS.
package panel

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/mazznoer/csscolorparser"
	"go.uber.org/zap"

	"bennypowers.dev/wmtokens/cssvars"
	"bennypowers.dev/wmtokens/document"
	"bennypowers.dev/wmtokens/matcher"
	"bennypowers.dev/wmtokens/tokens"
	"bennypowers.dev/wmtokens/tokentree"
)

var (
	// ErrUnknownToken is returned when editing a token the component does not have.
	ErrUnknownToken = errors.New("unknown token")

	// ErrInvalidValue is returned when a value does not fit the token's control.
	ErrInvalidValue = errors.New("invalid value")

	// ErrNotLoaded is returned when editing before Load.
	ErrNotLoaded = errors.New("panel not loaded")
)

// Panel is the token panel of one component.
type Panel struct {
	tree         *tokentree.Tree
	componentKey string
	extractor    *cssvars.Extractor
	log          *zap.Logger

	mu    sync.RWMutex
	cfg   *tokens.ComponentConfig
	state string
	edits map[string]string
}

// Option configures a Panel.
type Option func(*Panel)

// WithExtractor sets the extractor, typically one from a cssvars.Registry.
func WithExtractor(e *cssvars.Extractor) Option {
	return func(p *Panel) { p.extractor = e }
}

// WithLogger sets the panel's logger.
func WithLogger(log *zap.Logger) Option {
	return func(p *Panel) {
		if log != nil {
			p.log = log
		}
	}
}

// New creates a panel for componentKey of tree.
func New(tree *tokentree.Tree, componentKey string, opts ...Option) *Panel {
	p := &Panel{
		tree:         tree,
		componentKey: componentKey,
		log:          zap.NewNop(),
		state:        tokens.DefaultState,
		edits:        make(map[string]string),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.log = p.log.Named("panel").With(zap.String("component", componentKey))
	if p.extractor == nil {
		p.extractor = cssvars.New(cssvars.WithLogger(p.log))
	}
	return p
}

// Load extracts the document's variables and parses the component against
// them. doc may be nil, in which case catalog fallbacks are used. Edits
// survive reloads.
func (p *Panel) Load(doc document.Document) error {
	vars := p.extractor.ExtractVariables(doc)
	refs := p.extractor.BuildReferenceMap(vars)

	cfg, err := tokens.ParseComponentTokens(p.tree, p.componentKey, refs)
	if err != nil {
		return err
	}
	p.log.Debug("loaded component",
		zap.Int("variables", len(vars)),
		zap.Int("references", len(refs)),
		zap.Int("tokens", len(cfg.Tokens)),
		zap.Int("variants", len(cfg.VariantKeys)))

	p.mu.Lock()
	defer p.mu.Unlock()
	p.cfg = cfg
	return nil
}

// Reload clears the extractor's cache and loads doc again.
func (p *Panel) Reload(doc document.Document) error {
	p.extractor.ClearCache()
	return p.Load(doc)
}

// Config returns the parsed configuration, or nil before Load.
func (p *Panel) Config() *tokens.ComponentConfig {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.cfg
}

// States returns the component's available states.
func (p *Panel) States() []string {
	return tokens.DetectAvailableStates(p.tree, p.componentKey)
}

// State returns the selected state.
func (p *Panel) State() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state
}

// SetState selects the state used for labels. It does not change which
// tokens are shown.
func (p *Panel) SetState(state string) {
	if state == "" {
		state = tokens.DefaultState
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = state
}

// Set records an edit of token name.
func (p *Panel) Set(name, value string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	def, err := p.lookup(name)
	if err != nil {
		return err
	}
	value = strings.TrimSpace(value)
	if err := validate(def, value); err != nil {
		return err
	}
	p.edits[name] = value
	return nil
}

// Unset drops the edit of token name.
func (p *Panel) Unset(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.edits, name)
}

// Reset drops every edit.
func (p *Panel) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	clear(p.edits)
}

// Edits returns a copy of the current edits, keyed by token name.
func (p *Panel) Edits() map[string]string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return maps.Clone(p.edits)
}

// lookup finds name among base and variant tokens.
func (p *Panel) lookup(name string) (tokens.Definition, error) {
	if p.cfg == nil {
		return tokens.Definition{}, ErrNotLoaded
	}
	if i := slices.IndexFunc(p.cfg.Tokens, func(d tokens.Definition) bool { return d.Name == name }); i >= 0 {
		return p.cfg.Tokens[i], nil
	}
	for _, k := range p.cfg.VariantKeys {
		defs := p.cfg.Variants[k]
		if i := slices.IndexFunc(defs, func(d tokens.Definition) bool { return d.Name == name }); i >= 0 {
			return defs[i], nil
		}
	}
	return tokens.Definition{}, fmt.Errorf("%w: %s", ErrUnknownToken, name)
}

func validate(def tokens.Definition, value string) error {
	if value == "" {
		return fmt.Errorf("%w: empty value for %s", ErrInvalidValue, def.Name)
	}
	switch def.ControlType {
	case tokens.ControlColor:
		if _, err := csscolorparser.Parse(value); err != nil {
			return fmt.Errorf("%w: %s is not a color: %w", ErrInvalidValue, value, err)
		}
	case tokens.ControlSelect:
		if !slices.Contains(def.Options, value) {
			return fmt.Errorf("%w: %s is not one of %s", ErrInvalidValue, value, strings.Join(def.Options, ", "))
		}
	case tokens.ControlNumber:
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return fmt.Errorf("%w: %s is not a number", ErrInvalidValue, value)
		}
	}
	return nil
}

// tokensFor returns the merged tokens for className. Callers hold p.mu.
func (p *Panel) tokensFor(className string) []tokens.Definition {
	if p.cfg == nil {
		return nil
	}
	return matcher.TokensForClassName(p.cfg, className, p.tree, p.componentKey)
}

// Variant returns the variant matched by className.
func (p *Panel) Variant(className string) (matcher.Result, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.cfg == nil {
		return matcher.Result{}, false
	}
	return matcher.Match(className, p.cfg, p.tree, p.componentKey)
}

/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"bennypowers.dev/wmtokens/catalog"
	"bennypowers.dev/wmtokens/cssvars"
	"bennypowers.dev/wmtokens/matcher"
	"bennypowers.dev/wmtokens/tokens"
)

var errNoProject = errors.New("no project loaded")

type listComponentsInput struct{}

type componentSummary struct {
	Key      string   `json:"key"`
	Selector string   `json:"selector"`
	Shape    string   `json:"shape"`
	Variants []string `json:"variants"`
	States   []string `json:"states"`
}

type listComponentsOutput struct {
	Components []componentSummary `json:"components"`
}

func (s *Server) listComponents(_ context.Context, _ *mcp.CallToolRequest, _ listComponentsInput) (*mcp.CallToolResult, listComponentsOutput, error) {
	p := s.current()
	if p == nil {
		return nil, listComponentsOutput{}, errNoProject
	}

	out := listComponentsOutput{Components: []componentSummary{}}
	for _, key := range p.Tree.Keys() {
		c, _ := p.Tree.Component(key)
		cfg, err := p.Component(s.registry, key, s.log)
		if err != nil {
			return nil, listComponentsOutput{}, err
		}
		out.Components = append(out.Components, componentSummary{
			Key:      key,
			Selector: cfg.Selector,
			Shape:    c.Shape().String(),
			Variants: cfg.VariantKeys,
			States:   tokens.DetectAvailableStates(p.Tree, key),
		})
	}
	return nil, out, nil
}

type componentInput struct {
	Component string `json:"component" jsonschema:"component key, such as btn"`
}

type parseComponentOutput struct {
	Component tokens.ComponentConfig `json:"component"`
}

func (s *Server) parseComponent(_ context.Context, _ *mcp.CallToolRequest, in componentInput) (*mcp.CallToolResult, parseComponentOutput, error) {
	p := s.current()
	if p == nil {
		return nil, parseComponentOutput{}, errNoProject
	}
	cfg, err := p.Component(s.registry, in.Component, s.log)
	if err != nil {
		return nil, parseComponentOutput{}, err
	}
	return nil, parseComponentOutput{Component: *cfg}, nil
}

type matchVariantInput struct {
	Component string `json:"component" jsonschema:"component key, such as btn"`
	ClassName string `json:"className" jsonschema:"space-separated class list of the element"`
}

type matchVariantOutput struct {
	Matched  bool                `json:"matched"`
	Variant  string              `json:"variant,omitempty"`
	Strategy string              `json:"strategy,omitempty"`
	Tokens   []tokens.Definition `json:"tokens"`
}

func (s *Server) matchVariant(_ context.Context, _ *mcp.CallToolRequest, in matchVariantInput) (*mcp.CallToolResult, matchVariantOutput, error) {
	p := s.current()
	if p == nil {
		return nil, matchVariantOutput{}, errNoProject
	}
	cfg, err := p.Component(s.registry, in.Component, s.log)
	if err != nil {
		return nil, matchVariantOutput{}, err
	}

	out := matchVariantOutput{
		Tokens: matcher.TokensForClassName(cfg, in.ClassName, p.Tree, in.Component),
	}
	if res, ok := matcher.Match(in.ClassName, cfg, p.Tree, in.Component); ok {
		out.Matched = true
		out.Variant = res.Variant
		out.Strategy = res.Strategy
	}
	return nil, out, nil
}

type listStatesOutput struct {
	States []string `json:"states"`
}

func (s *Server) listStates(_ context.Context, _ *mcp.CallToolRequest, in componentInput) (*mcp.CallToolResult, listStatesOutput, error) {
	p := s.current()
	if p == nil {
		return nil, listStatesOutput{}, errNoProject
	}
	if _, ok := p.Tree.Component(in.Component); !ok {
		return nil, listStatesOutput{}, fmt.Errorf("%w: %q", tokens.ErrComponentNotFound, in.Component)
	}
	return nil, listStatesOutput{States: tokens.DetectAvailableStates(p.Tree, in.Component)}, nil
}

type resolveReferenceInput struct {
	Text string `json:"text" jsonschema:"text containing {path.value} references"`
}

type reference struct {
	Reference string `json:"reference"`
	Variable  string `json:"variable,omitempty"`
	// Source is "document", "fallback" or "unknown".
	Source string `json:"source"`
}

type resolveReferenceOutput struct {
	Resolved   string      `json:"resolved"`
	References []reference `json:"references"`
}

func (s *Server) resolveReference(_ context.Context, _ *mcp.CallToolRequest, in resolveReferenceInput) (*mcp.CallToolResult, resolveReferenceOutput, error) {
	p := s.current()
	if p == nil {
		return nil, resolveReferenceOutput{}, errNoProject
	}
	refs := p.References(s.registry, s.log)

	out := resolveReferenceOutput{
		Resolved:   tokens.ResolveValue(in.Text, refs),
		References: []reference{},
	}
	for _, ref := range cssvars.References(in.Text) {
		r := reference{Reference: ref, Source: "unknown"}
		if entry, ok := catalog.Lookup(ref); ok {
			r.Variable = entry.Variable
			r.Source = "fallback"
		}
		if _, ok := refs[ref]; ok {
			r.Source = "document"
		}
		out.References = append(out.References, r)
	}
	return nil, out, nil
}

type renderCSSInput struct {
	Component string            `json:"component" jsonschema:"component key, such as btn"`
	Edits     map[string]string `json:"edits" jsonschema:"CSS custom property names mapped to new values"`
}

type rejectedEdit struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

type renderCSSOutput struct {
	CSS      string         `json:"css"`
	Rejected []rejectedEdit `json:"rejected"`
}

func (s *Server) renderCSS(_ context.Context, _ *mcp.CallToolRequest, in renderCSSInput) (*mcp.CallToolResult, renderCSSOutput, error) {
	p := s.current()
	if p == nil {
		return nil, renderCSSOutput{}, errNoProject
	}
	pn, err := p.Panel(s.registry, in.Component, s.log)
	if err != nil {
		return nil, renderCSSOutput{}, err
	}

	out := renderCSSOutput{Rejected: []rejectedEdit{}}
	for _, name := range slices.Sorted(maps.Keys(in.Edits)) {
		if err := pn.Set(name, in.Edits[name]); err != nil {
			s.log.Debug("rejected edit", zap.String("name", name), zap.Error(err))
			out.Rejected = append(out.Rejected, rejectedEdit{Name: name, Reason: err.Error()})
		}
	}
	out.CSS = pn.CSS()
	return nil, out, nil
}

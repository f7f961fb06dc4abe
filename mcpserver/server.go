/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package mcpserver exposes a loaded project as Model Context Protocol tools.
package mcpserver

import (
	"context"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"bennypowers.dev/wmtokens/cssvars"
	"bennypowers.dev/wmtokens/internal/version"
	"bennypowers.dev/wmtokens/load"
)

// Name is the implementation name reported to clients.
const Name = "wm-tokens"

// Server serves one project. The project can be swapped while serving.
type Server struct {
	registry *cssvars.Registry
	log      *zap.Logger

	mu      sync.RWMutex
	project *load.Project
}

// New creates a server for p. Extractors for the preview come from reg.
func New(p *load.Project, reg *cssvars.Registry, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{project: p, registry: reg, log: log.Named("mcp")}
}

// SetProject replaces the served project.
func (s *Server) SetProject(p *load.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.project = p
}

func (s *Server) current() *load.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.project
}

// MCP builds the protocol server with every tool registered.
func (s *Server) MCP() *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    Name,
		Version: version.Get(),
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_components",
		Description: "List the components defined by the project's token files",
	}, s.listComponents)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "parse_component",
		Description: "Parse a component's tokens, resolving references against the preview document",
	}, s.parseComponent)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "match_variant",
		Description: "Find the variant a CSS class name selects and the tokens that apply to it",
	}, s.matchVariant)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_states",
		Description: "List the interaction states a component defines tokens for",
	}, s.listStates)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "resolve_reference",
		Description: "Resolve {path.value} references in text against the preview document, falling back to catalog defaults",
	}, s.resolveReference)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "render_css",
		Description: "Render token overrides as a CSS rule on the component's selector",
	}, s.renderCSS)

	return server
}

// Run serves over stdio until ctx is done or the client disconnects.
func (s *Server) Run(ctx context.Context) error {
	s.log.Info("serving over stdio")
	return s.MCP().Run(ctx, &mcp.StdioTransport{})
}

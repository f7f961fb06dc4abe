/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package mcp provides the mcp command.
package mcp

import (
	"context"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"bennypowers.dev/wmtokens/cmd/workspace"
	"bennypowers.dev/wmtokens/fs"
	"bennypowers.dev/wmtokens/internal/logger"
	"bennypowers.dev/wmtokens/mcpserver"
	"bennypowers.dev/wmtokens/watch"
)

// Cmd is the mcp cobra command.
var Cmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the project's component tokens over MCP on stdio",
	Long: `Run a Model Context Protocol server on stdin/stdout exposing tools to list
components, parse their tokens, match variants and render CSS overrides.

Logs go to stderr only with --debug, since stdout carries the protocol.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("watch", false, "Reload the project when its files change")
}

func run(cmd *cobra.Command, _ []string) error {
	watching, _ := cmd.Flags().GetBool("watch")

	if viper.GetBool(workspace.KeyDebug) {
		logger.SetOutput(os.Stderr)
	} else {
		logger.SetOutput(io.Discard)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	filesystem := fs.NewOSFileSystem()
	ws, err := workspace.OpenFS(ctx, filesystem)
	if err != nil {
		return err
	}
	srv := mcpserver.New(ws.Project, ws.Registry, logger.L())

	if watching {
		w, err := startWatcher(ctx, ws, filesystem, srv)
		if err != nil {
			return err
		}
		defer w.Close()
	}
	return srv.Run(ctx)
}

// startWatcher reloads ws on changes and hands the new project to srv.
func startWatcher(ctx context.Context, ws *workspace.Workspace, filesystem fs.FileSystem, srv *mcpserver.Server) (*watch.Watcher, error) {
	log := logger.L()
	var mu sync.Mutex
	w, err := watch.New(func(ev watch.Event) {
		mu.Lock()
		defer mu.Unlock()
		var err error
		if ev.Kind == watch.Tokens {
			err = ws.Reload(ctx, filesystem)
		} else {
			err = ws.ReloadDocument()
		}
		if err != nil {
			log.Error("reload failed", zap.String("file", ev.Path), zap.Error(err))
			return
		}
		srv.SetProject(ws.Project)
	}, watch.WithLogger(log))
	if err != nil {
		return nil, err
	}
	if err := w.Add(watch.Tokens, ws.Project.Files...); err != nil {
		return nil, err
	}
	if err := w.Add(watch.Preview, ws.Project.PreviewFiles()...); err != nil {
		return nil, err
	}
	go func() {
		if err := w.Run(ctx); err != nil {
			log.Error("watcher stopped", zap.Error(err))
		}
	}()
	return w, nil
}

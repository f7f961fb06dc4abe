/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package watch provides the watch command.
package watch

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"bennypowers.dev/wmtokens/cmd/render"
	"bennypowers.dev/wmtokens/cmd/workspace"
	"bennypowers.dev/wmtokens/fs"
	"bennypowers.dev/wmtokens/internal/logger"
	"bennypowers.dev/wmtokens/tokens"
	watchlib "bennypowers.dev/wmtokens/watch"
)

// Cmd is the watch cobra command.
var Cmd = &cobra.Command{
	Use:   "watch <component>",
	Short: "Print a component's tokens again whenever its sources change",
	Long: `Watch the token files and the preview document. A change to a token file
reloads the project; a change to the preview re-reads its variables.`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: workspace.CompleteComponents,
	RunE:              run,
}

func init() {
	Cmd.Flags().StringP("class", "c", "", "Class list of the element, to apply its variant")
	Cmd.Flags().StringP("format", "f", "table", "Output format: table, markdown, json, css, names")
	Cmd.Flags().Duration("debounce", watchlib.DefaultDebounce, "Quiet period before reloading")
}

// session re-renders one component as files change.
type session struct {
	mu        sync.Mutex
	ws        *workspace.Workspace
	fs        fs.FileSystem
	key       string
	className string
	format    string
	out       io.Writer
	log       *zap.Logger
}

func run(cmd *cobra.Command, args []string) error {
	className, _ := cmd.Flags().GetString("class")
	format, _ := cmd.Flags().GetString("format")
	debounce, _ := cmd.Flags().GetDuration("debounce")

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	filesystem := fs.NewOSFileSystem()
	ws, err := workspace.OpenFS(ctx, filesystem)
	if err != nil {
		return err
	}
	key, err := ws.ComponentArg(args)
	if err != nil {
		return err
	}

	s := &session{
		ws:        ws,
		fs:        filesystem,
		key:       key,
		className: className,
		format:    format,
		out:       cmd.OutOrStdout(),
		log:       logger.L(),
	}
	if err := s.render(); err != nil {
		return err
	}

	w, err := watchlib.New(func(ev watchlib.Event) { s.handle(ctx, ev) },
		watchlib.WithDebounce(debounce),
		watchlib.WithLogger(logger.L()))
	if err != nil {
		return err
	}
	if err := w.Add(watchlib.Tokens, ws.Project.Files...); err != nil {
		return err
	}
	if err := w.Add(watchlib.Preview, ws.Project.PreviewFiles()...); err != nil {
		return err
	}
	logger.Info("watching %d files, press Ctrl+C to stop", w.Files())
	return w.Run(ctx)
}

func (s *session) handle(ctx context.Context, ev watchlib.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.log.Info("changed", zap.String("file", ev.Path), zap.Stringer("kind", ev.Kind))
	var err error
	switch ev.Kind {
	case watchlib.Tokens:
		err = s.ws.Reload(ctx, s.fs)
	case watchlib.Preview:
		err = s.ws.ReloadDocument()
	}
	if err != nil {
		s.log.Error("reload failed", zap.Error(err))
		return
	}
	fmt.Fprintf(s.out, "\n# %s\n", time.Now().Format(time.TimeOnly))
	if err := s.render(); err != nil {
		s.log.Error("render failed", zap.Error(err))
	}
}

func (s *session) render() error {
	pn, err := s.ws.Project.Panel(s.ws.Registry, s.key, s.log)
	if err != nil {
		return err
	}
	controls := pn.Controls(s.className)
	defs := make([]tokens.Definition, 0, len(controls))
	for _, c := range controls {
		defs = append(defs, c.Definition)
	}
	return render.Write(s.out, s.format, pn.Config().Selector, render.ComputeRows(defs))
}

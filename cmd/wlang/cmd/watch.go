package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/wlang/pkg/core/error"
	mdwlog "github.com/msto63/wlang/pkg/core/log"
	"github.com/msto63/wlang/pkg/lang/frontend"
)

func newWatchCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-parse a file whenever it changes",
		Long: `Parses the file once, then again after every change, printing the
syntax tree or the diagnostic each time. Runs until interrupted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, opts)
			if err != nil {
				return err
			}

			path := args[0]
			out := cmd.OutOrStdout()
			render := func() {
				fmt.Fprintf(out, "== %s (%s)\n", path, time.Now().Format("15:04:05"))
				data, err := os.ReadFile(path)
				if err != nil {
					fmt.Fprintln(out, err.Error())
					return
				}
				res, err := s.engine.Parse(cmd.Context(), string(data))
				if err != nil {
					fmt.Fprintln(out, err.Error())
					return
				}
				text, err := frontend.Render(res.Program, s.format, s.style)
				if err != nil {
					fmt.Fprintln(out, err.Error())
					return
				}
				fmt.Fprint(out, text)
			}

			render()
			return watchFile(cmd.Context(), path, s.cfg.Watch.Debounce.Duration, s.logger.WithName("wlang.watch"), render)
		},
	}
}

// watchFile calls onChange after writes to path have settled for the
// debounce delay. The parent directory is watched so that editors which
// replace the file on save are followed. It returns when ctx is done.
func watchFile(ctx context.Context, path string, debounce time.Duration, logger *mdwlog.Logger, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return mdwerror.Wrap(err, "failed to create file watcher").
			WithCode(mdwerror.CodeIO).
			WithOperation("cmd.watchFile")
	}
	defer watcher.Close()

	target, err := filepath.Abs(path)
	if err != nil {
		return mdwerror.Wrap(err, "failed to resolve path").WithCode(mdwerror.CodeIO)
	}
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return mdwerror.Wrap(err, fmt.Sprintf("failed to watch %s", path)).
			WithCode(mdwerror.CodeIO).
			WithOperation("cmd.watchFile")
	}
	logger.Info("Watching file", mdwlog.Fields{"path": target, "debounce": debounce.String()})

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Stopping file watcher (context cancelled)")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			name, err := filepath.Abs(event.Name)
			if err != nil || name != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			logger.Debug("File changed", mdwlog.Fields{"op": event.Op.String()})
			timer.Reset(debounce)

		case <-timer.C:
			onChange()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.ErrorWithErr("Watcher error", err)
		}
	}
}

package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/hupe1980/lloyd/internal/config"
	"github.com/spf13/cobra"
)

func NewWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-cluster whenever the input changes",
		Long: `Run once, then watch the local input file and run again after every change.

Only the local storage backend can be watched.`,
		Args: cobra.NoArgs,
		RunE: runWatch,
	}

	addJobFlags(cmd)
	cmd.Flags().Duration("debounce", 500*time.Millisecond, "Debounce window for batching changes")
	return cmd
}

func runWatch(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if b := s.cfg.Storage.Backend; b != config.BackendLocal && b != "" {
		return fmt.Errorf("watch requires the local storage backend, got %q", b)
	}
	debounce, _ := cmd.Flags().GetDuration("debounce")

	input := filepath.Join(s.cfg.Storage.Root, filepath.FromSlash(s.input))
	output := filepath.Join(s.cfg.Storage.Root, filepath.FromSlash(s.output))

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Editors often replace the file, so watch its directory.
	if err := watcher.Add(filepath.Dir(input)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(input), err)
	}

	rerun := func() {
		if err := runJob(cmd, s); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "run error: %v\n", err)
		}
	}

	rerun()
	fmt.Fprintf(cmd.OutOrStdout(), "Watching %s for changes...\n", input)

	timer := time.NewTimer(0)
	if !timer.Stop() {
		<-timer.C
	}
	pending := false

	for {
		select {
		case <-cmd.Context().Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !shouldRerun(event, input, output) {
				continue
			}
			if !pending {
				timer.Reset(debounce)
				pending = true
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "watch error: %v\n", err)
		case <-timer.C:
			pending = false
			rerun()
		}
	}
}

// shouldRerun reports whether event changed the input file. Events on the
// output file are ignored so a run never triggers itself.
func shouldRerun(event fsnotify.Event, input, output string) bool {
	name := filepath.Clean(event.Name)
	if name == filepath.Clean(output) || name != filepath.Clean(input) {
		return false
	}

	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}

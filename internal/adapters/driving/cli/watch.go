package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/bordermap/internal/logger"
)

const watchDebounce = 300 * time.Millisecond

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-export the map whenever its file changes",
	Long: `Watch --file and regenerate the configured exports each time it is
written. Stops on interrupt.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	if err := openMap(cmd); err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	reexport := func() error {
		if err := openMap(cmd); err != nil {
			return err
		}
		files, err := documentService.Export(cmd.Context())
		if err != nil {
			return err
		}
		printSuccess(w, "Exported %d file(s)", len(files))
		return nil
	}

	if err := reexport(); err != nil {
		return err
	}
	fmt.Fprintln(w, mutedStyle.Render("Watching "+mapFile+" (Ctrl+C to stop)"))

	return watchFile(cmd.Context(), mapFile, watchDebounce, func() {
		if err := reexport(); err != nil {
			printError(w, err)
		}
	})
}

// watchFile calls onChange after path is written or replaced, coalescing
// bursts of events within debounce. The parent directory is watched so
// editors that save by rename are seen. Blocks until ctx is done.
func watchFile(ctx context.Context, path string, debounce time.Duration, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer watcher.Close()

	target, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", path, err)
	}
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}

	log := logger.Scope("watch")
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			name, _ := filepath.Abs(event.Name)
			if name != target || !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			log.Debug("%s %s", event.Op, event.Name)
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(debounce)
			fire = timer.C

		case <-fire:
			fire = nil
			onChange()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("watcher error: %v", err)
		}
	}
}

package cli

import (
	"context"
	"fmt"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/mediq-labs/mediq-cli/internal/extractors"
	"github.com/mediq-labs/mediq-cli/internal/logger"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Auto-ingest documents dropped into a directory",
	Long: `Watches a directory and ingests every supported file written into it.
Re-writing a file replaces the stored record (last write wins), so a file
still being copied settles on its final content. Stop with Ctrl-C.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	dir := args[0]

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	supported := make(map[string]bool)
	for _, ext := range extractors.Defaults().SupportedExtensions() {
		supported[ext] = true
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd.Printf("Watching %s (supported: %s)\n", dir, strings.Join(extractors.Defaults().SupportedExtensions(), ", "))

	for {
		select {
		case <-ctx.Done():
			cmd.Println("Stopped.")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if !supported[strings.ToLower(filepath.Ext(event.Name))] {
				continue
			}
			report, err := ingestService.IngestPaths(ctx, []string{event.Name})
			if err != nil {
				return err
			}
			for _, patient := range report.Stored {
				cmd.Printf("Stored record for %s\n", patient)
			}
			for _, w := range report.Warnings {
				cmd.Printf("Warning: %s: %s\n", w.File, w.Reason)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error: %v", err)
		}
	}
}

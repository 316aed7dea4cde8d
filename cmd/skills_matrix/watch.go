package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/jonathan/skills-matrix/internal/config"
	"github.com/jonathan/skills-matrix/internal/loader"
	"github.com/jonathan/skills-matrix/internal/observability"
	"github.com/jonathan/skills-matrix/internal/workbook"
	"github.com/spf13/cobra"
)

var (
	watchOutput    string
	watchWebOutput string
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rebuild the workbook and web data when sources change",
	Long:  "Watches the data directory and, once changes settle, regenerates the workbook and the web data bundle. Runs until interrupted.",
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchOutput, "output", "o", "output/skills_matrix.xlsx", "Path to output .xlsx file")
	watchCmd.Flags().StringVar(&watchWebOutput, "web-output", "web/static/data/skills-data.json", "Path to output JSON file")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("web-output") {
		settings.WebOutput = watchWebOutput
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	sources := newSourceWatcher(watcher)
	if err := sources.addTree(settings.DataDir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", settings.DataDir, err)
	}

	rebuild := func() {
		if err := rebuildAll(cmd, settings); err != nil {
			log.Printf("Rebuild failed: %v", err)
		}
	}

	log.Printf("Watching %s for changes (Ctrl+C to stop)", settings.DataDir)
	rebuild()

	debounce := time.Duration(settings.WatchDebounceMS) * time.Millisecond
	timer := time.NewTimer(time.Hour)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Printf("Stopped watching %s", settings.DataDir)
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if sources.handle(event) {
				timer.Reset(debounce)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("Watcher error: %v", err)
		case <-timer.C:
			log.Printf("Sources changed, rebuilding")
			rebuild()
		}
	}
}

// sourceWatcher keeps the set of watched directories so that removing or
// renaming a category directory triggers a rebuild.
type sourceWatcher struct {
	watcher *fsnotify.Watcher
	dirs    map[string]bool
}

func newSourceWatcher(watcher *fsnotify.Watcher) *sourceWatcher {
	return &sourceWatcher{watcher: watcher, dirs: make(map[string]bool)}
}

// addTree adds root and every directory below it; fsnotify watches are
// not recursive.
func (s *sourceWatcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if err := s.watcher.Add(path); err != nil {
			return err
		}
		s.dirs[path] = true
		return nil
	})
}

// forget drops dir and everything below it from the watched set.
func (s *sourceWatcher) forget(dir string) {
	prefix := dir + string(filepath.Separator)
	for path := range s.dirs {
		if path == dir || strings.HasPrefix(path, prefix) {
			delete(s.dirs, path)
		}
	}
}

// handle updates the watched set for event and reports whether the event
// can change the generated outputs.
func (s *sourceWatcher) handle(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	if (event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)) && s.dirs[event.Name] {
		s.forget(event.Name)
		return true
	}
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := s.addTree(event.Name); err != nil {
				log.Printf("Failed to watch %s: %v", event.Name, err)
			}
			return true
		}
	}
	return isSourceEvent(event)
}

// isSourceEvent reports whether a file event can change the generated outputs.
func isSourceEvent(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	return filepath.Ext(event.Name) == loader.CategoryFileExt
}

// rebuildAll regenerates the workbook and the web data bundle. A
// validation failure skips the workbook but not the bundle, which is built
// from unvalidated sources.
func rebuildAll(cmd *cobra.Command, settings config.Settings) error {
	var workbookErr error

	cfg, categories, err := loadCatalog(settings.DataDir, true)
	if err != nil {
		workbookErr = err
	} else if errs := loader.ValidateSkills(cfg, categories); len(errs) > 0 {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintValidationErrors(errs)
		workbookErr = loader.NewValidationError(errs)
	} else {
		outputPath := workbookOutput(watchOutput, cmd.Flags().Changed("output"), settings, cfg)
		stats, err := workbook.Generate(cfg, categories, outputPath)
		if err != nil {
			workbookErr = err
		} else {
			observability.NewPrinter(cmd.OutOrStdout()).PrintGenerationStats(stats, outputPath)
		}
	}

	if err := buildWebData(cmd, settings.DataDir, settings.WebOutput); err != nil {
		if workbookErr != nil {
			return fmt.Errorf("%v; %w", workbookErr, err)
		}
		return err
	}

	if workbookErr != nil {
		return fmt.Errorf("workbook not regenerated: %w", workbookErr)
	}
	return nil
}

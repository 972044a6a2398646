package cmd

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/ipverse/ipv-cli/pkg/ui"
)

var watchCompanyID string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch drafts and re-validate on save",
	Long: `Watch the drafts directory and re-validate every draft on change.

Each save prints the first violation per draft, or a clean bill. Pass
--company to validate against a selected company; without it every draft
reports the company violation first.

Press Ctrl+C to stop.`,
	RunE: runWatchDrafts,
}

func init() {
	watchCmd.Flags().StringVarP(&watchCompanyID, "company", "c", "", "Company id to validate against")
}

func runWatchDrafts(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(appWorkspace.DraftsPath); err != nil {
		return fmt.Errorf("failed to watch drafts directory: %w", err)
	}

	fmt.Println(ui.FormatRocket("Watching drafts..."))
	fmt.Println(ui.FormatMuted("Directory: " + appWorkspace.DraftsPath))
	fmt.Println(ui.FormatMuted("Press Ctrl+C to stop"))
	fmt.Println()

	// Debounce timer to avoid double runs on editor save patterns
	var debounceTimer *time.Timer
	debounceDuration := time.Duration(appConfig.WatchDebounceMS) * time.Millisecond

	check := func() {
		statuses, err := draftService.CheckAll(ctx, watchCompanyID)
		if err != nil {
			fmt.Println(ui.FormatError("Check failed: " + err.Error()))
			return
		}

		clean := 0
		for _, s := range statuses {
			if s.Violation == nil {
				clean++
				continue
			}
			fmt.Printf("%s %s %s\n",
				ui.FormatError("✘"),
				ui.StyleBold.Render(s.Slug),
				ui.StyleMuted.Render(s.Violation.Error()))
		}

		if clean == len(statuses) {
			fmt.Println(ui.FormatSuccess(fmt.Sprintf("All %d drafts pass validation", len(statuses))))
		} else {
			fmt.Println(ui.FormatMuted(fmt.Sprintf("%d/%d drafts pass", clean, len(statuses))))
		}
		fmt.Println()
	}

	// Initial pass before the first change
	check()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			// Only care about draft files
			if filepath.Ext(event.Name) != ".yaml" {
				continue
			}
			baseName := filepath.Base(event.Name)
			if strings.HasPrefix(baseName, ".") || strings.HasPrefix(baseName, "~") {
				continue
			}

			if event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Write) ||
				event.Has(fsnotify.Remove) ||
				event.Has(fsnotify.Rename) {

				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(debounceDuration, check)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Println(ui.FormatError("Watcher error: " + err.Error()))
		}
	}
}

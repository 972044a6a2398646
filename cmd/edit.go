package cmd

import (
	"fmt"
	"strings"

	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/ipverse/ipv-cli/internal/core/ports"
	"github.com/ipverse/ipv-cli/internal/core/services"
	"github.com/ipverse/ipv-cli/pkg/ui"
)

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:     "edit [slug]",
	Short:   "Edit a stored draft in your editor",
	Aliases: []string{"e"},
	Long: `Edit a stored draft's YAML file in your editor.
If no slug is provided, shows an interactive list to select from.

Examples:
  ipv edit
  ipv edit ledger-archive`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEdit,
}

func runEdit(cmd *cobra.Command, args []string) error {
	stored, err := pickDraft(args)
	if err != nil || stored == nil {
		return err
	}

	fmt.Println(ui.FormatInfo("Editing: " + stored.Draft.Title))
	fmt.Println()

	draftPath := appWorkspace.GetDraftPath(stored.Slug + ".yaml")
	if err := OpenEditorAtLine(draftPath, 1); err != nil {
		fmt.Println(ui.FormatError("Failed to open editor: " + err.Error()))
		fmt.Println(ui.FormatInfo("You can manually edit: " + draftPath))
		return err
	}

	return nil
}

// pickDraft resolves a draft from an optional slug argument, falling back to
// the fuzzy finder. A nil, nil return means nothing was selected.
func pickDraft(args []string) (*ports.StoredDraft, error) {
	ctx := getContext()

	resp, err := draftService.List(ctx, services.ListDraftsRequest{})
	if err != nil {
		fmt.Println(ui.FormatError("Failed to list drafts"))
		return nil, err
	}
	if resp.Total == 0 {
		fmt.Println(ui.FormatWarning("No drafts found"))
		fmt.Println(ui.FormatInfo("Save one from the wizard with Ctrl+D"))
		return nil, nil
	}

	if len(args) > 0 {
		query := strings.ToLower(args[0])
		for i := range resp.Drafts {
			if resp.Drafts[i].Slug == query {
				return &resp.Drafts[i], nil
			}
		}
		fmt.Println(ui.FormatWarning("No draft found matching: " + args[0]))
		return nil, nil
	}

	idx, err := fuzzyfinder.Find(
		resp.Drafts,
		func(i int) string { return resp.Drafts[i].Draft.Title },
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			d := resp.Drafts[i].Draft
			return fmt.Sprintf("Title: %s\nSlug: %s\nCategory: %s\nGoal: %s\nRisk: %s",
				d.Title,
				resp.Drafts[i].Slug,
				d.Category,
				d.FundingGoal,
				d.RiskLevel)
		}),
	)
	if err != nil {
		// User cancelled (Ctrl+C or ESC)
		fmt.Println(ui.FormatInfo("Operation cancelled."))
		return nil, nil
	}

	return &resp.Drafts[idx], nil
}

package cmd

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/ipverse/ipv-cli/internal/core/services"
	"github.com/ipverse/ipv-cli/pkg/ui"
)

var (
	submitCompanyID string
	submitKeep      bool
)

// submitCmd represents the submit command
var submitCmd = &cobra.Command{
	Use:   "submit [slug]",
	Short: "Submit a stored draft",
	Long: `Validate and submit a stored draft without the wizard.

The draft is validated, sent to the backend, and on success its metadata
document is pinned to IPFS. The draft is removed after a successful
submission unless --keep is given.

Examples:
  ipv submit --company abc123
  ipv submit ledger-archive --company abc123`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSubmit,
}

func init() {
	submitCmd.Flags().StringVarP(&submitCompanyID, "company", "c", "", "Company id to submit on behalf of")
	submitCmd.Flags().BoolVarP(&submitKeep, "keep", "k", false, "Keep the draft after a successful submission")
}

func runSubmit(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	stored, err := pickDraft(args)
	if err != nil || stored == nil {
		return err
	}

	fmt.Println(ui.FormatRocket("Submitting: " + stored.Draft.Title))
	fmt.Println()

	resp, err := submitProjectService.Execute(getContext(), services.SubmitProjectRequest{
		Draft:     stored.Draft,
		CompanyID: submitCompanyID,
	})
	if err != nil {
		fmt.Println(ui.FormatError(err.Error()))
		if services.IsValidation(err) {
			fmt.Println(ui.FormatInfo("Fix the draft with: ipv edit " + stored.Slug))
		}
		return err
	}

	fmt.Println(ui.FormatSuccess("Project created successfully!"))
	fmt.Println()
	fmt.Println(ui.RenderKeyValue("Title", resp.Project.Title))
	if resp.Project.ID != "" {
		fmt.Println(ui.RenderKeyValue("ID", resp.Project.ID))
	}

	if resp.ContentAddress != "" {
		fmt.Println(ui.RenderKeyValue("Metadata CID", resp.ContentAddress))
		if appConfig.CopyCIDToClipboard {
			if err := clipboard.WriteAll(resp.ContentAddress); err == nil {
				fmt.Println(ui.FormatMuted("CID copied to clipboard"))
			}
		}
	} else if resp.PinError != nil {
		// The record exists; the missing pin is reported quietly
		fmt.Println(ui.FormatMuted("Metadata pin skipped: " + resp.PinError.Error()))
	}

	if !submitKeep {
		if err := draftService.Delete(getContext(), stored.Slug); err == nil {
			fmt.Println(ui.FormatMuted("Draft removed: " + stored.Slug))
		}
	}

	return nil
}

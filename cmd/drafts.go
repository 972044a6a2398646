package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ipverse/ipv-cli/internal/core/services"
	"github.com/ipverse/ipv-cli/pkg/ui"
)

var draftsCmd = &cobra.Command{
	Use:     "drafts",
	Short:   "List stored project drafts",
	Aliases: []string{"dr"},
	Long: `List the project drafts stored in your workspace. (alias: dr)

Ordering follows the default_sort and reverse_sort config settings.

Drafts are saved from the wizard with Ctrl+D, edited with 'ipv edit'
and submitted with 'ipv submit'.`,
	RunE: runDrafts,
}

var draftsDeleteCmd = &cobra.Command{
	Use:   "delete <slug>",
	Short: "Delete a stored draft",
	Args:  cobra.ExactArgs(1),
	RunE:  runDraftsDelete,
}

func init() {
	draftsCmd.AddCommand(draftsDeleteCmd)
}

func runDrafts(cmd *cobra.Command, args []string) error {
	resp, err := draftService.List(getContext(), services.ListDraftsRequest{
		SortBy:  appConfig.DefaultSort,
		Reverse: appConfig.ReverseSort,
	})
	if err != nil {
		fmt.Println(ui.FormatError("Failed to list drafts"))
		return err
	}

	if resp.Total == 0 {
		fmt.Println(ui.FormatWarning("No drafts found"))
		fmt.Println(ui.FormatInfo("Save one from the wizard with Ctrl+D"))
		return nil
	}

	table := ui.NewTable([]ui.TableColumn{
		{Header: "Slug", Width: 20},
		{Header: "Title", Width: 28},
		{Header: "Category", Width: 12},
		{Header: "Goal", Width: 10, Align: "right"},
	})
	table.MaxWidth = appConfig.TableWidth
	for _, stored := range resp.Drafts {
		table.AddRow([]string{
			stored.Slug,
			stored.Draft.Title,
			stored.Draft.Category,
			stored.Draft.FundingGoal,
		})
	}

	fmt.Println(ui.FormatTitle("Drafts"))
	fmt.Println()
	fmt.Print(table.Render())
	fmt.Println()
	fmt.Println(ui.FormatMuted(fmt.Sprintf("Total: %d drafts", resp.Total)))

	return nil
}

func runDraftsDelete(cmd *cobra.Command, args []string) error {
	slug := args[0]

	if err := draftService.Delete(getContext(), slug); err != nil {
		fmt.Println(ui.FormatError("Failed to delete draft"))
		cmd.SilenceUsage = true
		return err
	}

	fmt.Println(ui.FormatSuccess("Draft deleted: " + slug))
	return nil
}

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ipverse/ipv-cli/internal/core/services"
	"github.com/ipverse/ipv-cli/pkg/ui"
)

var projectsCmd = &cobra.Command{
	Use:     "projects",
	Short:   "List submitted projects",
	Aliases: []string{"ls"},
	Long: `List the projects persisted on the platform. (alias: ls)

Ordering follows the default_sort and reverse_sort config settings.
Use 'ipv projects delete <id>' to remove one.`,
	RunE: runProjects,
}

var projectsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a submitted project",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectsDelete,
}

func init() {
	projectsCmd.AddCommand(projectsDeleteCmd)
}

func runProjects(cmd *cobra.Command, args []string) error {
	resp, err := projectDirectoryService.Execute(getContext(), services.ListProjectsRequest{
		SortBy:  appConfig.DefaultSort,
		Reverse: appConfig.ReverseSort,
	})
	if err != nil {
		fmt.Println(ui.FormatError("Failed to list projects"))
		return err
	}

	if resp.Total == 0 {
		fmt.Println(ui.FormatWarning("No projects found"))
		fmt.Println(ui.FormatInfo("Create your first project with: ipv new"))
		return nil
	}

	table := ui.NewTable([]ui.TableColumn{
		{Header: "ID", Width: 12},
		{Header: "Title", Width: 28},
		{Header: "Category", Width: 12},
		{Header: "Goal", Width: 10, Align: "right"},
		{Header: "Risk", Width: 6},
		{Header: "Status", Width: 10},
	})
	table.MaxWidth = appConfig.TableWidth
	for _, p := range resp.Projects {
		table.AddRow([]string{
			p.ID,
			p.Title,
			p.Category,
			strconv.FormatFloat(p.FundingGoal, 'f', -1, 64),
			p.RiskLevel,
			p.Status,
		})
	}

	fmt.Println(ui.FormatTitle("Projects"))
	fmt.Println()
	fmt.Print(table.Render())
	fmt.Println()
	fmt.Println(ui.FormatMuted(fmt.Sprintf("Total: %d projects", resp.Total)))

	return nil
}

func runProjectsDelete(cmd *cobra.Command, args []string) error {
	id := args[0]

	if err := projectDirectoryService.Delete(getContext(), id); err != nil {
		fmt.Println(ui.FormatError("Failed to delete project"))
		cmd.SilenceUsage = true
		return err
	}

	fmt.Println(ui.FormatSuccess("Project deleted: " + id))
	return nil
}

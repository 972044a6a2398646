package cmd

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/spf13/cobra"

	"github.com/ipverse/ipv-cli/internal/core/domain"
	"github.com/ipverse/ipv-cli/internal/core/services"
	"github.com/ipverse/ipv-cli/pkg/ui"
)

var statsOpen bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Chart funding goals by category",
	Long: `Summarize the submitted projects and render a funding-by-category
bar chart as an HTML file in the exports directory.

Example:
  ipv stats --open`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().BoolVarP(&statsOpen, "open", "o", false, "Open the chart in your browser")
}

func runStats(cmd *cobra.Command, args []string) error {
	resp, err := projectDirectoryService.Execute(getContext(), services.ListProjectsRequest{})
	if err != nil {
		fmt.Println(ui.FormatError("Failed to list projects"))
		return err
	}

	if resp.Total == 0 {
		fmt.Println(ui.FormatWarning("No projects to chart"))
		return nil
	}

	// Aggregate funding goals per category, keeping the platform's
	// category order
	totals := make(map[string]float64)
	counts := make(map[string]int)
	for _, p := range resp.Projects {
		totals[p.Category] += p.FundingGoal
		counts[p.Category]++
	}

	var labels []string
	var values []opts.BarData
	for _, category := range domain.Categories {
		if counts[category] == 0 {
			continue
		}
		labels = append(labels, category)
		values = append(values, opts.BarData{Value: totals[category]})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Funding Goals by Category",
			Subtitle: fmt.Sprintf("%d projects", resp.Total),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(labels).AddSeries("Funding Goal", values)

	outPath := appWorkspace.GetExportPath("funding-by-category.html")
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	if err := bar.Render(f); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}

	// Terminal summary alongside the chart
	table := ui.NewTable([]ui.TableColumn{
		{Header: "Category", Width: 12},
		{Header: "Projects", Width: 8, Align: "right"},
		{Header: "Total Goal", Width: 12, Align: "right"},
	})
	for _, category := range labels {
		table.AddRow([]string{
			category,
			fmt.Sprintf("%d", counts[category]),
			fmt.Sprintf("%.0f", totals[category]),
		})
	}

	fmt.Println(ui.FormatTitle("Project Stats"))
	fmt.Println()
	fmt.Print(table.Render())
	fmt.Println()
	fmt.Println(ui.FormatSuccess("Chart written: " + outPath))

	if statsOpen {
		if err := OpenFile(outPath, ""); err != nil {
			fmt.Println(ui.FormatWarning("Could not open browser: " + err.Error()))
		}
	}

	return nil
}

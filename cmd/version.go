package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/ipverse/ipv-cli/pkg/ui"
)

// Set at build time through -ldflags
var (
	Version = "dev"
	Commit  = "none"
	BuiltAt = "unknown"
)

var versionCmd = &cobra.Command{
	Use:     "version",
	Short:   "Show the ipv version",
	Aliases: []string{"v"},
	Long:    `Show the installed ipv version and how it was built. (alias: v)`,
	Run:     runVersion,
}

func runVersion(cmd *cobra.Command, args []string) {
	fmt.Printf("%s %s\n", ui.StyleTitle.Render("ipv"), Version)
	fmt.Println(ui.FormatMuted(fmt.Sprintf("commit %s, built %s", Commit, BuiltAt)))
	fmt.Println(ui.FormatMuted(fmt.Sprintf("%s %s/%s", runtime.Version(), runtime.GOOS, runtime.GOARCH)))
}

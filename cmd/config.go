package cmd

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/ipverse/ipv-cli/pkg/config"
	"github.com/ipverse/ipv-cli/pkg/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Edit the ipv configuration file",
	Long: `Open the workspace config file in your editor, creating it with
default values if it does not exist yet.`,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	path := appWorkspace.ConfigPath

	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Println(ui.FormatInfo("No config file yet, writing defaults to " + path))
		if err := config.DefaultConfig().Save(path); err != nil {
			return fmt.Errorf("failed to write default config: %w", err)
		}
	}

	fmt.Println(ui.FormatInfo("Opening config: " + path))

	editor := GetPreferredEditor()

	c := exec.Command(editor, path)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	return c.Run()
}

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ipverse/ipv-cli/pkg/config"
	"github.com/ipverse/ipv-cli/pkg/ui"
	"github.com/ipverse/ipv-cli/pkg/workspace"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the ipv workspace",
	Long: `Initialize the ipv workspace directory structure.

This creates the managed workspace at ~/.local/share/ipv/ with the following structure:
  - drafts/     : Project drafts awaiting submission
  - exports/    : Generated reports and charts
  - config.yaml : Global configuration`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	// Create workspace instance
	ws, err := workspace.New()
	if err != nil {
		fmt.Println(ui.FormatError("Failed to determine workspace location"))
		return err
	}

	// Check if already initialized
	if ws.Exists() {
		fmt.Println(ui.FormatWarning("Workspace already initialized"))
		fmt.Println(ui.FormatMuted("Location: " + ws.RootPath))
		return nil
	}

	// Initialize the workspace
	fmt.Println(ui.FormatRocket("Initializing ipv workspace..."))
	fmt.Println()

	if err := ws.Initialize(); err != nil {
		fmt.Println(ui.FormatError("Failed to initialize workspace"))
		return err
	}

	// Create default config
	if err := createDefaultConfig(ws); err != nil {
		fmt.Println(ui.FormatWarning("Failed to create default config: " + err.Error()))
		// Don't fail - config is optional
	}

	// Create a .env template for API credentials
	if err := createEnvTemplate(ws); err != nil {
		fmt.Println(ui.FormatWarning("Failed to create .env template: " + err.Error()))
	} else {
		fmt.Println(ui.FormatSuccess("Credentials template (.env.example) created"))
	}

	// Success message
	fmt.Println(ui.FormatSuccess("Workspace initialized successfully!"))
	fmt.Println()
	fmt.Println(ui.RenderKeyValue("Location", ws.RootPath))
	fmt.Println()
	fmt.Println(ui.FormatInfo("Directory structure:"))
	fmt.Println(ui.FormatMuted("  drafts/     - Project drafts (.yaml files)"))
	fmt.Println(ui.FormatMuted("  exports/    - Generated reports and charts"))
	fmt.Println()
	fmt.Println(ui.FormatInfo("Next steps:"))
	fmt.Println(ui.FormatMuted("  1. Set IPV_API_TOKEN and PINATA_JWT in your environment or a .env file"))
	fmt.Println(ui.FormatMuted("  2. Start the project wizard: ipv new"))
	fmt.Println(ui.FormatMuted("  3. Check your setup: ipv doctor"))

	return nil
}

func createDefaultConfig(ws *workspace.Workspace) error {
	configDir := filepath.Dir(ws.ConfigPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	return config.DefaultConfig().Save(ws.ConfigPath)
}

func createEnvTemplate(ws *workspace.Workspace) error {
	content := `# IPV credentials
# Copy to .env in the directory you run ipv from, or export these directly.

# Bearer token for the platform backend
IPV_API_TOKEN=

# Pinata JWT for IPFS metadata pinning
PINATA_JWT=
`
	path := filepath.Join(ws.RootPath, ".env.example")
	return os.WriteFile(path, []byte(content), 0644)
}

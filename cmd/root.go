package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ipverse/ipv-cli/internal/adapters/api"
	"github.com/ipverse/ipv-cli/internal/adapters/pinata"
	"github.com/ipverse/ipv-cli/internal/adapters/repository"
	"github.com/ipverse/ipv-cli/internal/core/services"
	"github.com/ipverse/ipv-cli/pkg/config"
	"github.com/ipverse/ipv-cli/pkg/ui"
	"github.com/ipverse/ipv-cli/pkg/workspace"
)

var (
	// Global workspace and config instances
	appWorkspace *workspace.Workspace
	appConfig    *config.Config

	// Services
	submitProjectService    *services.SubmitProjectService
	createCompanyService    *services.CreateCompanyService
	listCompaniesService    *services.ListCompaniesService
	projectDirectoryService *services.ProjectDirectoryService
	draftService            *services.DraftService

	// Adapters
	draftRepo *repository.DraftRepository
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ipv",
	Short: "IPV - Tokenized IP project manager",
	Long: ui.StyleTitle.Render("IPV") + " - Tokenized IP Project Manager\n\n" +
		"A CLI for drafting, validating and submitting tokenized intellectual\n" +
		"property projects, with metadata published to IPFS.",
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Add subcommands
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(companiesCmd)
	rootCmd.AddCommand(projectsCmd)
	rootCmd.AddCommand(draftsCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(statsCmd)
}

// initializeApp initializes the application components
func initializeApp(cmd *cobra.Command, args []string) error {
	// Skip initialization for init command
	if cmd.Name() == "init" || cmd.Name() == "version" {
		return nil
	}

	// Secrets can live in a local .env file; a missing file is fine
	_ = godotenv.Load()

	// Create workspace instance
	ws, err := workspace.New()
	if err != nil {
		return fmt.Errorf("failed to initialize workspace: %w", err)
	}
	appWorkspace = ws

	// Check if workspace exists
	if !appWorkspace.Exists() {
		fmt.Println(ui.FormatError("Workspace not initialized"))
		fmt.Println(ui.FormatInfo("Run 'ipv init' to initialize the workspace"))
		os.Exit(1)
	}

	// Load config
	cfg, err := config.Load(appWorkspace.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	appConfig = cfg
	ui.SetTheme(appConfig.ColorTheme)

	timeout := time.Duration(appConfig.RequestTimeout) * time.Second

	// Initialize adapters
	client := api.NewClient(appConfig.APIBaseURL, appConfig.APIToken(), timeout)
	projectAPI := api.NewProjectClient(client)
	companyAPI := api.NewCompanyClient(client)
	publisher := pinata.NewPublisher(appConfig.PinataBaseURL, appConfig.PinataJWT(), timeout)
	draftRepo = repository.NewDraftRepository(appWorkspace)

	// Initialize services
	submitProjectService = services.NewSubmitProjectService(projectAPI, publisher, appConfig.PinVisibility)
	createCompanyService = services.NewCreateCompanyService(companyAPI)
	listCompaniesService = services.NewListCompaniesService(companyAPI)
	projectDirectoryService = services.NewProjectDirectoryService(projectAPI)
	draftService = services.NewDraftService(draftRepo)

	return nil
}

// getContext returns a context for operations
func getContext() context.Context {
	return context.Background()
}

package cmd

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/ipverse/ipv-cli/internal/core/services"
	"github.com/ipverse/ipv-cli/pkg/ui"

	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the health of your ipv installation",
	Long: `Diagnose issues with your IPV setup.

Checks for:
  - Workspace directory integrity
  - Configuration file existence
  - API and Pinata credentials
  - Backend and Pinata reachability
  - Draft integrity`,
	Run: runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) {
	fmt.Println(ui.FormatTitle("🏥 IPV Doctor"))
	fmt.Println()

	// 1. Check Workspace Structure
	checkStep("Workspace Directory", func() error {
		if !appWorkspace.Exists() {
			return fmt.Errorf("not found at %s", appWorkspace.RootPath)
		}
		return nil
	})

	checkStep("Drafts Directory", func() error {
		if _, err := os.Stat(appWorkspace.DraftsPath); os.IsNotExist(err) {
			return fmt.Errorf("missing at %s", appWorkspace.DraftsPath)
		}
		return nil
	})

	checkStep("Exports Directory", func() error {
		if _, err := os.Stat(appWorkspace.ExportsPath); os.IsNotExist(err) {
			return fmt.Errorf("missing at %s", appWorkspace.ExportsPath)
		}
		return nil
	})

	// 2. Check Config
	checkStep("Configuration File", func() error {
		if _, err := os.Stat(appWorkspace.ConfigPath); os.IsNotExist(err) {
			return fmt.Errorf("missing at %s", appWorkspace.ConfigPath)
		}
		return nil
	})

	checkStep("Backend URL", func() error {
		if _, err := url.ParseRequestURI(appConfig.APIBaseURL); err != nil {
			return fmt.Errorf("invalid: %s", appConfig.APIBaseURL)
		}
		return nil
	})

	// 3. Check Credentials
	checkStep("API Token ("+appConfig.APITokenEnv+")", func() error {
		if appConfig.APIToken() == "" {
			return fmt.Errorf("not set (required for submissions)")
		}
		return nil
	})

	checkStep("Pinata JWT ("+appConfig.PinataJWTEnv+")", func() error {
		if appConfig.PinataJWT() == "" {
			return fmt.Errorf("not set (metadata publishing will fail)")
		}
		return nil
	})

	// 4. Check Connectivity
	checkStep("Backend Reachability", func() error {
		return ping(appConfig.APIBaseURL)
	})

	checkStep("Pinata Reachability", func() error {
		return ping(appConfig.PinataBaseURL)
	})

	// 5. Check Environment
	checkStep("EDITOR Variable", func() error {
		if os.Getenv("EDITOR") == "" && appConfig.Editor == "" {
			return fmt.Errorf("not set (using fallback 'vi')")
		}
		return nil
	})

	fmt.Println()
	fmt.Println(ui.FormatInfo("Checking draft integrity..."))

	checkStep("Draft Files", func() error {
		resp, err := draftService.List(getContext(), services.ListDraftsRequest{})
		if err != nil {
			return err
		}

		brokenCount := 0
		for _, stored := range resp.Drafts {
			if stored.Draft.Title == "" {
				if brokenCount == 0 {
					fmt.Println()
				}
				fmt.Printf("    %s.yaml (missing title)\n", stored.Slug)
				brokenCount++
			}
		}

		if brokenCount > 0 {
			return fmt.Errorf("found %d malformed drafts", brokenCount)
		}
		return nil
	})
}

// ping issues a short GET against the base URL. Any HTTP response counts as
// reachable; only transport failures are errors.
func ping(baseURL string) error {
	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(baseURL)
	if err != nil {
		return fmt.Errorf("unreachable: %v", err)
	}
	resp.Body.Close()
	return nil
}

// checkStep runs a check function and prints the result nicely
func checkStep(name string, check func() error) {
	err := check()
	if err == nil {
		fmt.Printf("%s %s\n", ui.FormatSuccess("✔"), name)
	} else {
		fmt.Printf("%s %s\n", ui.FormatError("✘"), name)
		fmt.Printf("    %s\n", ui.StyleMuted.Render(err.Error()))
	}
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ipverse/ipv-cli/internal/core/domain"
	"github.com/ipverse/ipv-cli/internal/core/services"
	"github.com/ipverse/ipv-cli/pkg/ui"
)

var companiesCmd = &cobra.Command{
	Use:     "companies",
	Short:   "List registered companies",
	Aliases: []string{"co"},
	Long: `List the companies registered on the platform. (alias: co)

Projects are always submitted on behalf of a company; use
'ipv companies new' to register one.`,
	RunE: runCompanies,
}

func init() {
	companiesCmd.AddCommand(companyNewCmd)
}

func runCompanies(cmd *cobra.Command, args []string) error {
	resp, err := listCompaniesService.Execute(getContext())
	if err != nil {
		fmt.Println(ui.FormatError("Failed to list companies"))
		return err
	}

	if resp.Total == 0 {
		fmt.Println(ui.FormatWarning("No companies registered"))
		fmt.Println(ui.FormatInfo("Register one with: ipv companies new"))
		return nil
	}

	table := ui.NewTable([]ui.TableColumn{
		{Header: "ID", Width: 12},
		{Header: "Name", Width: 30},
	})
	for _, c := range resp.Companies {
		table.AddRow([]string{c.ID, c.Name})
	}

	fmt.Println(ui.FormatTitle("Companies"))
	fmt.Println()
	fmt.Print(table.Render())
	fmt.Println()
	fmt.Println(ui.FormatMuted(fmt.Sprintf("Total: %d companies", resp.Total)))

	return nil
}

var (
	companyName        string
	companyDescription string
	companyEmail       string
	companyPhone       string
	companyAddress     string
)

var companyNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Register a new company",
	Long: `Register a new company on the platform.

Example:
  ipv companies new \
    --name "Northbound IP Holdings" \
    --description "Licensing and custody of patent portfolios." \
    --email ops@northbound.example \
    --phone "+15550001111" \
    --address "200 Harbor Way, Suite 4, Oakland CA"`,
	RunE: runCompanyNew,
}

func init() {
	companyNewCmd.Flags().StringVarP(&companyName, "name", "n", "", "Company name")
	companyNewCmd.Flags().StringVarP(&companyDescription, "description", "d", "", "Company description")
	companyNewCmd.Flags().StringVarP(&companyEmail, "email", "e", "", "Contact email")
	companyNewCmd.Flags().StringVarP(&companyPhone, "phone", "p", "", "Contact phone")
	companyNewCmd.Flags().StringVarP(&companyAddress, "address", "a", "", "Company address")
	companyNewCmd.MarkFlagRequired("name")
}

func runCompanyNew(cmd *cobra.Command, args []string) error {
	input := domain.CompanyInput{
		Name:         companyName,
		Description:  companyDescription,
		ContactEmail: companyEmail,
		ContactPhone: companyPhone,
		Address:      companyAddress,
	}

	// Surface constraint violations without the cobra usage dump
	if err := domain.ValidateCompany(input); err != nil {
		fmt.Println(ui.FormatError(err.Error()))
		cmd.SilenceUsage = true
		return err
	}

	fmt.Println(ui.FormatRocket("Registering company..."))

	resp, err := createCompanyService.Execute(getContext(), services.CreateCompanyRequest{Input: input})
	if err != nil {
		fmt.Println(ui.FormatError("Failed to register company"))
		cmd.SilenceUsage = true
		return err
	}

	fmt.Println(ui.FormatSuccess("Company registered!"))
	fmt.Println()
	fmt.Println(ui.RenderKeyValue("Name", resp.Company.Name))
	if resp.Company.ID != "" {
		fmt.Println(ui.RenderKeyValue("ID", resp.Company.ID))
	}

	return nil
}

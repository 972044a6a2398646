package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/ipverse/ipv-cli/internal/core/domain"
	"github.com/ipverse/ipv-cli/internal/core/services"
	"github.com/ipverse/ipv-cli/pkg/ui"
)

var newDraftSlug string

// newCmd represents the new command
var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Launch the project submission wizard",
	Long: `Launch the interactive three-step project wizard.

Steps:
  1. Basic Info : title, description, category, IP type
  2. Financial  : tokens, pricing, funding goal, dates, returns, risk
  3. Media      : project image and review

Controls:
  - Tab/↓      : Next field
  - Shift+Tab/↑: Previous field
  - Enter      : Next field / next step
  - Esc        : Previous step
  - Ctrl+S     : Submit (last step only)
  - Ctrl+D     : Save as draft and quit
  - Ctrl+X     : Remove attached image
  - Ctrl+C     : Quit`,
	RunE: runNew,
}

func init() {
	newCmd.Flags().StringVarP(&newDraftSlug, "draft", "d", "", "Resume a stored draft by slug")
}

func runNew(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	// Load companies up front for the selector. A backend failure is not
	// fatal: the wizard still runs and submission reports the violation.
	var companies []domain.Company
	if resp, err := listCompaniesService.Execute(ctx); err != nil {
		fmt.Println(ui.FormatWarning("Could not load companies: " + err.Error()))
	} else {
		companies = resp.Companies
	}

	companyID := ""
	companyName := ""
	if len(companies) > 0 {
		idx, err := fuzzyfinder.Find(
			companies,
			func(i int) string { return companies[i].Name },
			fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
				if i == -1 {
					return ""
				}
				return fmt.Sprintf("Company: %s\nID: %s", companies[i].Name, companies[i].ID)
			}),
		)
		if err != nil {
			// Cancelled: continue without a company, submission will flag it
			fmt.Println(ui.FormatInfo("No company selected."))
		} else {
			companyID = companies[idx].ID
			companyName = companies[idx].Name
		}
	}

	// Resume a stored draft when requested
	form := domain.NewProjectForm()
	form.SelectCompany(companyID)
	if newDraftSlug != "" {
		draft, err := draftService.Get(ctx, newDraftSlug)
		if err != nil {
			fmt.Println(ui.FormatError("Draft not found: " + newDraftSlug))
			return err
		}
		form = domain.NewProjectFormWith(*draft, companyID)
	}

	m := newWizardModel(form, companyName)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running wizard: %w", err)
	}

	return nil
}

// --- Wizard Model ---

// bannerDuration is how long submission feedback stays visible
const bannerDuration = 5 * time.Second

// Field indexes into wizardModel.inputs
const (
	fieldTitle = iota
	fieldDescription
	fieldCategory
	fieldIPType
	fieldTotalTokens
	fieldTokenPrice
	fieldFundingGoal
	fieldStartDate
	fieldEndDate
	fieldExpectedReturns
	fieldRiskLevel
	fieldImagePath
	fieldCount
)

// fieldSpec ties an input to its draft field name and wizard step
type fieldSpec struct {
	name  string
	label string
	step  int
}

var wizardFields = [fieldCount]fieldSpec{
	fieldTitle:           {"title", "Title", 1},
	fieldDescription:     {"description", "Description", 1},
	fieldCategory:        {"category", "Category", 1},
	fieldIPType:          {"ipType", "IP Type", 1},
	fieldTotalTokens:     {"totalTokens", "Total Tokens", 2},
	fieldTokenPrice:      {"tokenPrice", "Token Price", 2},
	fieldFundingGoal:     {"FundingGoal", "Funding Goal", 2},
	fieldStartDate:       {"startDate", "Start Date (YYYY-MM-DD)", 2},
	fieldEndDate:         {"endDate", "End Date (YYYY-MM-DD)", 2},
	fieldExpectedReturns: {"expectedReturns", "Expected Returns (%)", 2},
	fieldRiskLevel:       {"riskLevel", "Risk Level (low/medium/high)", 2},
	fieldImagePath:       {"", "Image File Path", 3},
}

type wizardModel struct {
	form        *domain.ProjectForm
	companyName string
	inputs      [fieldCount]textinput.Model
	focus       int
	spinner     spinner.Model
	busy        bool

	message       string
	messageStyle  lipgloss.Style
	messageExpiry time.Time
	quitting      bool
}

func newWizardModel(form *domain.ProjectForm, companyName string) wizardModel {
	m := wizardModel{
		form:        form,
		companyName: companyName,
	}

	placeholders := [fieldCount]string{
		fieldTitle:           "My IP Project",
		fieldDescription:     "What this project tokenizes",
		fieldCategory:        strings.Join(domain.Categories, ", "),
		fieldIPType:          "Patent, Trademark, Copyright...",
		fieldTotalTokens:     "1000",
		fieldTokenPrice:      "0.05",
		fieldFundingGoal:     "50000",
		fieldStartDate:       "2025-01-01",
		fieldEndDate:         "2025-06-01",
		fieldExpectedReturns: "12",
		fieldRiskLevel:       "medium",
		fieldImagePath:       "./artwork.png",
	}

	initial := [fieldCount]string{
		fieldTitle:           form.Draft.Title,
		fieldDescription:     form.Draft.Description,
		fieldCategory:        form.Draft.Category,
		fieldIPType:          form.Draft.IPType,
		fieldTotalTokens:     form.Draft.TotalTokens,
		fieldTokenPrice:      form.Draft.TokenPrice,
		fieldFundingGoal:     form.Draft.FundingGoal,
		fieldStartDate:       form.Draft.StartDate,
		fieldEndDate:         form.Draft.EndDate,
		fieldExpectedReturns: form.Draft.ExpectedReturns,
		fieldRiskLevel:       form.Draft.RiskLevel,
	}

	for i := 0; i < fieldCount; i++ {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 200
		ti.Width = 50
		ti.SetValue(initial[i])
		m.inputs[i] = ti
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = ui.StylePrimary
	m.spinner = sp

	m.focus = m.firstFieldOfStep()
	m.inputs[m.focus].Focus()

	return m
}

func (m wizardModel) Init() tea.Cmd {
	return textinput.Blink
}

// Messages

type submitResultMsg struct {
	resp *services.SubmitProjectResponse
	err  error
}

type clearMessageMsg struct{}

func (m wizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "esc":
			if m.busy {
				return m, nil
			}
			m.syncDraft()
			m.form.Back()
			return m.refocus()

		case "enter", "tab", "down":
			if m.busy {
				return m, nil
			}
			m.syncDraft()
			if msg.String() == "enter" && m.focus == m.lastFieldOfStep() {
				m.form.Next()
			} else {
				m.advanceFocus()
			}
			return m.refocus()

		case "shift+tab", "up":
			if m.busy {
				return m, nil
			}
			m.syncDraft()
			m.retreatFocus()
			return m.refocus()

		case "ctrl+s":
			// Submit is only armed on the last step, and the busy flag
			// blocks double submission
			if m.busy || !m.form.OnLastStep() {
				return m, nil
			}
			m.syncDraft()
			if err := m.attachImage(); err != nil {
				return m.showMessage(err.Error(), ui.StyleBannerError)
			}
			m.busy = true
			return m, tea.Batch(m.spinner.Tick, m.submit())

		case "ctrl+d":
			if m.busy {
				return m, nil
			}
			m.syncDraft()
			if _, err := draftService.Save(getContext(), services.SaveDraftRequest{Draft: m.form.Draft}); err != nil {
				return m.showMessage(err.Error(), ui.StyleBannerError)
			}
			m.quitting = true
			return m, tea.Quit

		case "ctrl+x":
			if m.busy {
				return m, nil
			}
			m.form.RemoveImage()
			m.inputs[fieldImagePath].SetValue("")
			return m, nil
		}

	case submitResultMsg:
		m.busy = false
		if msg.err != nil {
			return m.showMessage(msg.err.Error(), ui.StyleBannerError)
		}

		text := "Project created successfully!"
		if msg.resp.ContentAddress != "" {
			text += " CID: " + msg.resp.ContentAddress
			if appConfig != nil && appConfig.CopyCIDToClipboard {
				if err := clipboard.WriteAll(msg.resp.ContentAddress); err == nil {
					text += " (copied)"
				}
			}
		}

		if m.form.Editing {
			// A resumed draft is consumed by a successful submission
			if newDraftSlug != "" {
				_ = draftService.Delete(getContext(), newDraftSlug)
			}
		} else {
			// Clear the form for the next entry and land back on step 1
			m.form.Reset()
			for i := range m.inputs {
				m.inputs[i].SetValue("")
			}
			for m.form.Step > domain.FirstStep {
				m.form.Back()
			}
		}

		updated, cmd := m.showMessage(text, ui.StyleBanner)
		w := updated.(wizardModel)
		w2, cmd2 := w.refocus()
		return w2, tea.Batch(cmd, cmd2)

	case clearMessageMsg:
		if time.Now().After(m.messageExpiry) {
			m.message = ""
		}
		return m, nil

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// showMessage sets a transient banner that clears after bannerDuration
func (m wizardModel) showMessage(text string, style lipgloss.Style) (tea.Model, tea.Cmd) {
	m.message = text
	m.messageStyle = style
	m.messageExpiry = time.Now().Add(bannerDuration)
	return m, tea.Tick(bannerDuration, func(time.Time) tea.Msg {
		return clearMessageMsg{}
	})
}

// syncDraft merges every input value into the draft through the form
func (m *wizardModel) syncDraft() {
	for i, spec := range wizardFields {
		if spec.name == "" {
			continue
		}
		m.form.SetField(spec.name, strings.TrimSpace(m.inputs[i].Value()))
	}
}

// attachImage reads the file named on step 3, if any, into the image slot
func (m *wizardModel) attachImage() error {
	path := strings.TrimSpace(m.inputs[fieldImagePath].Value())
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot read image: %v", err)
	}
	m.form.SetImage(data, mimeTypeForPath(path))
	return nil
}

func mimeTypeForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".svg":
		return "image/svg+xml"
	default:
		return "application/octet-stream"
	}
}

func (m wizardModel) submit() tea.Cmd {
	req := services.SubmitProjectRequest{
		Draft:     m.form.Draft,
		CompanyID: m.form.CompanyID,
		Editing:   m.form.Editing,
	}
	return func() tea.Msg {
		resp, err := submitProjectService.Execute(getContext(), req)
		return submitResultMsg{resp: resp, err: err}
	}
}

// Focus helpers

func (m wizardModel) firstFieldOfStep() int {
	for i, spec := range wizardFields {
		if spec.step == m.form.Step {
			return i
		}
	}
	return 0
}

func (m wizardModel) lastFieldOfStep() int {
	last := 0
	for i, spec := range wizardFields {
		if spec.step == m.form.Step {
			last = i
		}
	}
	return last
}

func (m *wizardModel) advanceFocus() {
	for i := m.focus + 1; i < fieldCount; i++ {
		if wizardFields[i].step == m.form.Step {
			m.focus = i
			return
		}
	}
	m.focus = m.firstFieldOfStep()
}

func (m *wizardModel) retreatFocus() {
	for i := m.focus - 1; i >= 0; i-- {
		if wizardFields[i].step == m.form.Step {
			m.focus = i
			return
		}
	}
	m.focus = m.lastFieldOfStep()
}

// refocus moves input focus to the current step after a step change
func (m wizardModel) refocus() (tea.Model, tea.Cmd) {
	if wizardFields[m.focus].step != m.form.Step {
		m.focus = m.firstFieldOfStep()
	}
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	return m, m.inputs[m.focus].Focus()
}

// View

func (m wizardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(ui.FormatTitle("New Project"))
	b.WriteString("\n\n")

	// Step indicator
	parts := make([]string, len(domain.StepNames))
	for i, name := range domain.StepNames {
		step := i + 1
		label := fmt.Sprintf("%d. %s", step, name)
		switch {
		case step == m.form.Step:
			parts[i] = ui.StyleStepActive.Render(label)
		case step < m.form.Step:
			parts[i] = ui.StyleStepDone.Render(label)
		default:
			parts[i] = ui.StyleStepIdle.Render(label)
		}
	}
	b.WriteString(strings.Join(parts, ui.StyleMuted.Render("  →  ")))
	b.WriteString("\n\n")

	// Company line
	if m.companyName != "" {
		b.WriteString(ui.RenderKeyValue("Company", m.companyName))
	} else {
		b.WriteString(ui.RenderKeyValue("Company", ui.StyleWarning.Render("none selected")))
	}
	b.WriteString("\n\n")

	// Step fields
	for i, spec := range wizardFields {
		if spec.step != m.form.Step {
			continue
		}
		label := spec.label
		if i == m.focus {
			b.WriteString(ui.StylePrimary.Render("› " + label))
		} else {
			b.WriteString(ui.StyleMuted.Render("  " + label))
		}
		b.WriteString("\n  ")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}

	// Review block on the last step
	if m.form.OnLastStep() {
		b.WriteString("\n")
		b.WriteString(ui.StyleHeader.Render("Review"))
		b.WriteString("\n")
		b.WriteString(ui.RenderKeyValue("  Title", m.form.Draft.Title) + "\n")
		b.WriteString(ui.RenderKeyValue("  Category", m.form.Draft.Category) + "\n")
		b.WriteString(ui.RenderKeyValue("  Funding Goal", m.form.Draft.FundingGoal) + "\n")
		b.WriteString(ui.RenderKeyValue("  Dates", m.form.Draft.StartDate+" to "+m.form.Draft.EndDate) + "\n")
		image := "none"
		if m.form.ImagePreview != "" {
			image = "attached"
		}
		b.WriteString(ui.RenderKeyValue("  Image", image) + "\n")
	}

	b.WriteString("\n")
	if m.busy {
		b.WriteString(m.spinner.View() + " Submitting...")
		b.WriteString("\n")
	} else if m.form.OnLastStep() {
		b.WriteString(ui.FormatInfo("Ctrl+S to submit"))
		b.WriteString("\n")
	}

	if m.message != "" && time.Now().Before(m.messageExpiry) {
		b.WriteString("\n")
		b.WriteString(m.messageStyle.Render(m.message))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(ui.StyleMuted.Render("enter: next • esc: back • ctrl+s: submit • ctrl+d: save draft • ctrl+c: quit"))
	b.WriteString("\n")

	return b.String()
}

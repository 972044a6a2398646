package domain

import (
	"encoding/base64"
	"fmt"
)

// Wizard step boundaries
const (
	FirstStep = 1
	LastStep  = 3
)

// Step display names, indexed by step-1
var StepNames = []string{"Basic Info", "Financial", "Media & Review"}

// ProjectForm owns the draft record, the selected company id and the wizard
// step position. It performs no validation of its own: a user can reach the
// last step with empty required fields, and ValidateProject is the single
// gate at submission time.
type ProjectForm struct {
	Draft        DraftProject
	CompanyID    string
	Step         int
	ImagePreview string
	Editing      bool
}

// NewProjectForm creates a form holding an empty draft at step 1
func NewProjectForm() *ProjectForm {
	return &ProjectForm{
		Draft: NewDraftProject(),
		Step:  FirstStep,
	}
}

// NewProjectFormWith pre-populates the form for edit flows
func NewProjectFormWith(initial DraftProject, companyID string) *ProjectForm {
	f := &ProjectForm{
		Draft:     initial,
		CompanyID: companyID,
		Step:      FirstStep,
		Editing:   true,
	}
	if initial.Images == nil {
		f.Draft.Images = []string{}
	} else if len(initial.Images) > 0 {
		f.ImagePreview = initial.Images[0]
	}
	if initial.Documents == nil {
		f.Draft.Documents = []Attachment{}
	}
	return f
}

// SetField merges one scalar field into the draft by its form name.
// No validation is performed; unknown names are ignored.
func (f *ProjectForm) SetField(name, value string) {
	switch name {
	case "title":
		f.Draft.Title = value
	case "description":
		f.Draft.Description = value
	case "category":
		f.Draft.Category = value
	case "ipType":
		f.Draft.IPType = value
	case "totalTokens":
		f.Draft.TotalTokens = value
	case "tokenPrice":
		f.Draft.TokenPrice = value
	case "FundingGoal":
		f.Draft.FundingGoal = value
	case "startDate":
		f.Draft.StartDate = value
	case "endDate":
		f.Draft.EndDate = value
	case "expectedReturns":
		f.Draft.ExpectedReturns = value
	case "riskLevel":
		f.Draft.RiskLevel = value
	}
}

// SelectCompany records the externally selected company id. The id rides
// along into the submission payload only, never into the draft itself.
func (f *ProjectForm) SelectCompany(id string) {
	f.CompanyID = id
}

// SetImage encodes user-selected file bytes as a data URI, replaces the
// image sequence with that single entry and updates the preview.
// Empty input is a no-op.
func (f *ProjectForm) SetImage(data []byte, mimeType string) {
	if len(data) == 0 {
		return
	}
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	uri := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))
	f.Draft.Images = []string{uri}
	f.ImagePreview = uri
}

// RemoveImage clears the preview and empties the image sequence
func (f *ProjectForm) RemoveImage() {
	f.ImagePreview = ""
	f.Draft.Images = []string{}
}

// Next advances the wizard step, clamped to the last step
func (f *ProjectForm) Next() {
	if f.Step < LastStep {
		f.Step++
	}
}

// Back retreats the wizard step, clamped to the first step
func (f *ProjectForm) Back() {
	if f.Step > FirstStep {
		f.Step--
	}
}

// OnLastStep reports whether the submit control is active
func (f *ProjectForm) OnLastStep() bool {
	return f.Step == LastStep
}

// Reset restores the draft and preview to the empty initial shape.
// The step position is left untouched; callers decide where the wizard
// lands after a successful submission.
func (f *ProjectForm) Reset() {
	f.Draft = NewDraftProject()
	f.ImagePreview = ""
}

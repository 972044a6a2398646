package domain

import (
	"reflect"
	"strings"
	"testing"
)

func TestProjectForm_SetField(t *testing.T) {
	f := NewProjectForm()

	f.SetField("title", "Ledger Archive")
	f.SetField("totalTokens", "1000")
	f.SetField("FundingGoal", "50000")
	f.SetField("riskLevel", "medium")
	f.SetField("bogus", "ignored")

	if f.Draft.Title != "Ledger Archive" {
		t.Errorf("Title = %q", f.Draft.Title)
	}
	if f.Draft.TotalTokens != "1000" {
		t.Errorf("TotalTokens = %q", f.Draft.TotalTokens)
	}
	if f.Draft.FundingGoal != "50000" {
		t.Errorf("FundingGoal = %q", f.Draft.FundingGoal)
	}
	if f.Draft.RiskLevel != "medium" {
		t.Errorf("RiskLevel = %q", f.Draft.RiskLevel)
	}
}

func TestProjectForm_StepClamping(t *testing.T) {
	f := NewProjectForm()

	f.Back()
	if f.Step != FirstStep {
		t.Errorf("Back below first step: Step = %d", f.Step)
	}

	f.Next()
	f.Next()
	if !f.OnLastStep() {
		t.Errorf("expected last step, got %d", f.Step)
	}

	f.Next()
	if f.Step != LastStep {
		t.Errorf("Next beyond last step: Step = %d", f.Step)
	}
}

func TestProjectForm_StepsDoNotValidate(t *testing.T) {
	// An empty form can walk all the way to the submit step; the validator
	// is the single gate
	f := NewProjectForm()
	f.Next()
	f.Next()
	if !f.OnLastStep() {
		t.Fatalf("empty form blocked before last step")
	}
}

func TestProjectForm_SetImage(t *testing.T) {
	f := NewProjectForm()

	f.SetImage(nil, "image/png")
	if len(f.Draft.Images) != 0 {
		t.Error("SetImage with no bytes should be a no-op")
	}

	f.SetImage([]byte("fake-png"), "image/png")
	if len(f.Draft.Images) != 1 {
		t.Fatalf("Images length = %d, want 1", len(f.Draft.Images))
	}
	if !strings.HasPrefix(f.Draft.Images[0], "data:image/png;base64,") {
		t.Errorf("image is not a data URI: %q", f.Draft.Images[0])
	}
	if f.ImagePreview != f.Draft.Images[0] {
		t.Error("preview does not match the stored image")
	}

	// A second upload replaces, never appends
	f.SetImage([]byte("other"), "image/jpeg")
	if len(f.Draft.Images) != 1 {
		t.Errorf("Images length after replace = %d, want 1", len(f.Draft.Images))
	}

	f.RemoveImage()
	if len(f.Draft.Images) != 0 || f.ImagePreview != "" {
		t.Error("RemoveImage did not clear image state")
	}
}

func TestProjectForm_ResetRestoresInitialShape(t *testing.T) {
	f := NewProjectForm()
	f.SetField("title", "Ledger Archive")
	f.SetField("description", "A rights ledger.")
	f.SetImage([]byte("img"), "image/png")
	f.SelectCompany("abc123")
	f.Next()

	f.Reset()

	if !reflect.DeepEqual(f.Draft, NewDraftProject()) {
		t.Errorf("Reset draft = %+v, want empty initial shape", f.Draft)
	}
	if f.ImagePreview != "" {
		t.Error("Reset left an image preview behind")
	}
	// Step and company selection are not the form's business to reset
	if f.Step != 2 {
		t.Errorf("Reset moved the step: %d", f.Step)
	}
	if f.CompanyID != "abc123" {
		t.Errorf("Reset cleared the company selection: %q", f.CompanyID)
	}
}

func TestNewProjectFormWith_EditFlow(t *testing.T) {
	initial := fullDraft()
	f := NewProjectFormWith(initial, "abc123")

	if !f.Editing {
		t.Error("Editing flag not set")
	}
	if f.Draft.Title != "Ledger Archive" {
		t.Errorf("initial data not applied: %q", f.Draft.Title)
	}
	if f.ImagePreview == "" {
		t.Error("preview not derived from initial images")
	}
}

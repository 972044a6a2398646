package domain

import (
	"testing"
	"time"
)

func localMidnightInstant(t *testing.T, date string) string {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		t.Fatal(err)
	}
	return parsed.UTC().Format(time.RFC3339)
}

func TestNormalizeProject(t *testing.T) {
	sub, err := NormalizeProject(fullDraft(), "abc123")
	if err != nil {
		t.Fatalf("NormalizeProject returned error: %v", err)
	}

	if sub.TotalTokens != 1000 {
		t.Errorf("TotalTokens = %v, want 1000", sub.TotalTokens)
	}
	if sub.TokenPrice != 0.05 {
		t.Errorf("TokenPrice = %v, want 0.05", sub.TokenPrice)
	}
	if sub.FundingGoal != 50000 {
		t.Errorf("FundingGoal = %v, want 50000", sub.FundingGoal)
	}
	if sub.ExpectedReturns != 12 {
		t.Errorf("ExpectedReturns = %v, want 12", sub.ExpectedReturns)
	}
	if sub.CompanyID != "abc123" {
		t.Errorf("CompanyID = %q", sub.CompanyID)
	}

	if want := localMidnightInstant(t, "2025-01-01"); sub.StartDate != want {
		t.Errorf("StartDate = %q, want %q", sub.StartDate, want)
	}
	if want := localMidnightInstant(t, "2025-06-01"); sub.EndDate != want {
		t.Errorf("EndDate = %q, want %q", sub.EndDate, want)
	}
}

func TestNormalizeProject_NoDateOrderingCheck(t *testing.T) {
	// End before start is accepted; ordering is deliberately not enforced
	d := fullDraft()
	d.StartDate = "2025-06-01"
	d.EndDate = "2025-01-01"
	if _, err := NormalizeProject(d, "abc123"); err != nil {
		t.Errorf("reversed dates should normalize, got %v", err)
	}
}

func TestNormalizeProject_BadDate(t *testing.T) {
	d := fullDraft()
	d.StartDate = "01/01/2025"
	if _, err := NormalizeProject(d, "abc123"); err == nil {
		t.Error("expected error for non-ISO date input")
	}
}

func TestBuildProjectMetadata(t *testing.T) {
	sub, err := NormalizeProject(fullDraft(), "abc123")
	if err != nil {
		t.Fatal(err)
	}

	meta := BuildProjectMetadata(sub, []string{"https://cdn/x.png", "https://cdn/y.png"})
	if meta.ProjectName != "Ledger Archive" {
		t.Errorf("ProjectName = %q", meta.ProjectName)
	}
	if meta.TotalToken != "1000" {
		t.Errorf("TotalToken = %q, want \"1000\"", meta.TotalToken)
	}
	if meta.TokenPrice != "0.05" {
		t.Errorf("TokenPrice = %q, want \"0.05\"", meta.TokenPrice)
	}
	if meta.ProImage != "https://cdn/x.png" {
		t.Errorf("ProImage = %q, want first server image", meta.ProImage)
	}

	// No server images: proImage stays empty
	meta = BuildProjectMetadata(sub, nil)
	if meta.ProImage != "" {
		t.Errorf("ProImage = %q, want empty", meta.ProImage)
	}
}

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Ledger Archive", "ledger-archive"},
		{"  Spaced  Out  ", "spaced-out"},
		{"Symbols & Stuff!", "symbols-stuff"},
		{"UPPER case", "upper-case"},
	}

	for _, tt := range tests {
		if got := GenerateSlug(tt.title); got != tt.want {
			t.Errorf("GenerateSlug(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestCategoryAndRiskSets(t *testing.T) {
	if !IsValidCategory("Patents") {
		t.Error("Patents should be a valid category")
	}
	if IsValidCategory("Stocks") {
		t.Error("Stocks should not be a valid category")
	}
	if !IsValidRiskLevel("medium") {
		t.Error("medium should be a valid risk level")
	}
	if IsValidRiskLevel("extreme") {
		t.Error("extreme should not be a valid risk level")
	}
}

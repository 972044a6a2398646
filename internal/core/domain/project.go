package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Categories is the fixed set of project categories accepted by the platform
var Categories = []string{
	"Music",
	"Games",
	"Characters",
	"Art",
	"Patents",
	"Antiques",
	"Technology",
	"Culture",
}

// RiskLevels is the fixed set of risk levels accepted by the platform
var RiskLevels = []string{"low", "medium", "high"}

// Attachment references a supporting document on a draft
type Attachment struct {
	Name string `yaml:"name" json:"name"`
	URL  string `yaml:"url" json:"url"`
}

// DraftProject is the in-progress project record edited across the wizard.
// Numeric fields stay as user-entered strings and are coerced only at
// submission time; dates stay as 2006-01-02 input strings.
type DraftProject struct {
	Title           string       `yaml:"title" json:"title"`
	Description     string       `yaml:"description" json:"description"`
	Category        string       `yaml:"category" json:"category"`
	IPType          string       `yaml:"ip_type" json:"ipType"`
	TotalTokens     string       `yaml:"total_tokens" json:"totalTokens"`
	TokenPrice      string       `yaml:"token_price" json:"tokenPrice"`
	FundingGoal     string       `yaml:"funding_goal" json:"FundingGoal"`
	StartDate       string       `yaml:"start_date" json:"startDate"`
	EndDate         string       `yaml:"end_date" json:"endDate"`
	ExpectedReturns string       `yaml:"expected_returns" json:"expectedReturns"`
	RiskLevel       string       `yaml:"risk_level" json:"riskLevel"`
	Images          []string     `yaml:"images" json:"images"`
	Documents       []Attachment `yaml:"documents" json:"documents"`
}

// NewDraftProject returns the empty initial shape of a draft
func NewDraftProject() DraftProject {
	return DraftProject{
		Images:    []string{},
		Documents: []Attachment{},
	}
}

// ProjectSubmission is the normalized payload sent to Create-Project.
// The FundingGoal key keeps the capitalization the backend expects.
type ProjectSubmission struct {
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	Category        string       `json:"category"`
	IPType          string       `json:"ipType"`
	TotalTokens     float64      `json:"totalTokens"`
	TokenPrice      float64      `json:"tokenPrice"`
	FundingGoal     float64      `json:"FundingGoal"`
	StartDate       string       `json:"startDate"`
	EndDate         string       `json:"endDate"`
	ExpectedReturns float64      `json:"expectedReturns"`
	RiskLevel       string       `json:"riskLevel"`
	Images          []string     `json:"images"`
	Documents       []Attachment `json:"documents"`
	CompanyID       string       `json:"companyId"`
}

// Company is a {id, name} pair from the company listing endpoint
type Company struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CreatedProject is the persisted record the backend returns on creation
type CreatedProject struct {
	ID     string   `json:"id"`
	Title  string   `json:"title"`
	Images []string `json:"images"`
}

// ProjectListing is a persisted project as returned by the directory endpoint
type ProjectListing struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Category    string  `json:"category"`
	Status      string  `json:"status"`
	FundingGoal float64 `json:"FundingGoal"`
	RiskLevel   string  `json:"riskLevel"`
}

// NormalizeProject converts a validated draft into the submission payload:
// the four numeric strings become numbers and both date strings become
// ISO-8601 instants (calendar date at local midnight, rendered in UTC).
// Callers must run ValidateProject first; a coercion failure here is a bug
// or an unvalidated draft.
func NormalizeProject(d DraftProject, companyID string) (ProjectSubmission, error) {
	totalTokens, err := parseAmount("total tokens", d.TotalTokens)
	if err != nil {
		return ProjectSubmission{}, err
	}
	tokenPrice, err := parseAmount("token price", d.TokenPrice)
	if err != nil {
		return ProjectSubmission{}, err
	}
	fundingGoal, err := parseAmount("funding goal", d.FundingGoal)
	if err != nil {
		return ProjectSubmission{}, err
	}
	expectedReturns, err := parseAmount("expected returns", d.ExpectedReturns)
	if err != nil {
		return ProjectSubmission{}, err
	}

	startDate, err := toInstant(d.StartDate)
	if err != nil {
		return ProjectSubmission{}, fmt.Errorf("invalid start date: %w", err)
	}
	endDate, err := toInstant(d.EndDate)
	if err != nil {
		return ProjectSubmission{}, fmt.Errorf("invalid end date: %w", err)
	}

	images := d.Images
	if images == nil {
		images = []string{}
	}
	documents := d.Documents
	if documents == nil {
		documents = []Attachment{}
	}

	return ProjectSubmission{
		Title:           d.Title,
		Description:     d.Description,
		Category:        d.Category,
		IPType:          d.IPType,
		TotalTokens:     totalTokens,
		TokenPrice:      tokenPrice,
		FundingGoal:     fundingGoal,
		StartDate:       startDate,
		EndDate:         endDate,
		ExpectedReturns: expectedReturns,
		RiskLevel:       d.RiskLevel,
		Images:          images,
		Documents:       documents,
		CompanyID:       companyID,
	}, nil
}

func parseAmount(field, value string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", field, value)
	}
	return v, nil
}

// toInstant converts a 2006-01-02 input string to an RFC 3339 instant.
// The calendar date is anchored at local midnight; no timezone is captured
// from the user and start/end ordering is not checked.
func toInstant(value string) (string, error) {
	t, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return "", err
	}
	return t.UTC().Format(time.RFC3339), nil
}

// GenerateSlug creates a filename-friendly slug from a project title
// Converts "Ledger Archive" -> "ledger-archive"
func GenerateSlug(title string) string {
	slug := strings.ToLower(title)

	reg := regexp.MustCompile(`[^a-z0-9]+`)
	slug = reg.ReplaceAllString(slug, "-")

	slug = strings.Trim(slug, "-")

	reg = regexp.MustCompile(`-+`)
	slug = reg.ReplaceAllString(slug, "-")

	return slug
}

// IsValidCategory checks membership in the fixed category set
func IsValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// IsValidRiskLevel checks membership in the fixed risk level set
func IsValidRiskLevel(level string) bool {
	for _, l := range RiskLevels {
		if l == level {
			return true
		}
	}
	return false
}

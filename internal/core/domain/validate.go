package domain

import (
	"errors"
	"strconv"
	"strings"
)

// Violation messages shown to the user, one per failed check. The wording
// matches what the platform frontends have always shown.
var (
	ErrCompanyNotSelected     = errors.New("Please select a company.")
	ErrTitleRequired          = errors.New("Project name is required.")
	ErrCategoryRequired       = errors.New("Category is required.")
	ErrCategoryUnknown        = errors.New("Please select a valid category.")
	ErrIPTypeRequired         = errors.New("IP Type is required.")
	ErrDescriptionRequired    = errors.New("Description is required.")
	ErrTotalTokensInvalid     = errors.New("Total tokens must be greater than 0.")
	ErrTokenPriceInvalid      = errors.New("Token price must be greater than 0.")
	ErrFundingGoalInvalid     = errors.New("Funding goal must be greater than 0.")
	ErrExpectedReturnsInvalid = errors.New("Expected returns must be 0 or more.")
	ErrStartDateRequired      = errors.New("Start date is required.")
	ErrEndDateRequired        = errors.New("End date is required.")
	ErrRiskLevelRequired      = errors.New("Risk level is required.")
	ErrRiskLevelUnknown       = errors.New("Risk level must be low, medium or high.")
	ErrImageRequired          = errors.New("Project image is required.")
)

// ValidateProject checks a draft plus the externally selected company id and
// returns the first violation, or nil when every required field is present
// and every numeric constraint holds.
//
// The checks run in a fixed order and short-circuit: only one violation is
// ever reported per call. Callers fixing one error and resubmitting may
// encounter the next one. The company check precedes all field checks.
func ValidateProject(d DraftProject, companyID string) error {
	if companyID == "" {
		return ErrCompanyNotSelected
	}
	if strings.TrimSpace(d.Title) == "" {
		return ErrTitleRequired
	}
	if d.Category == "" {
		return ErrCategoryRequired
	}
	// The browser forms picked these from fixed selects; free-text entry
	// needs the membership checked here
	if !IsValidCategory(d.Category) {
		return ErrCategoryUnknown
	}
	if strings.TrimSpace(d.IPType) == "" {
		return ErrIPTypeRequired
	}
	if strings.TrimSpace(d.Description) == "" {
		return ErrDescriptionRequired
	}
	if !isPositive(d.TotalTokens) {
		return ErrTotalTokensInvalid
	}
	if !isPositive(d.TokenPrice) {
		return ErrTokenPriceInvalid
	}
	if !isPositive(d.FundingGoal) {
		return ErrFundingGoalInvalid
	}
	if !isNonNegative(d.ExpectedReturns) {
		return ErrExpectedReturnsInvalid
	}
	if d.StartDate == "" {
		return ErrStartDateRequired
	}
	if d.EndDate == "" {
		return ErrEndDateRequired
	}
	if d.RiskLevel == "" {
		return ErrRiskLevelRequired
	}
	if !IsValidRiskLevel(d.RiskLevel) {
		return ErrRiskLevelUnknown
	}
	if len(d.Images) == 0 {
		return ErrImageRequired
	}

	return nil
}

func isPositive(value string) bool {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	return err == nil && v > 0
}

func isNonNegative(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	return err == nil && v >= 0
}

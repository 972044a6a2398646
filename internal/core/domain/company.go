package domain

import (
	"errors"
	"regexp"
	"strings"
)

// CompanyInput is the registration payload for a new company
type CompanyInput struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`
	Address      string `json:"address"`
}

var (
	ErrCompanyNameTooShort        = errors.New("Company name must be at least 2 characters")
	ErrCompanyDescriptionTooShort = errors.New("Description must be at least 10 characters")
	ErrCompanyEmailInvalid        = errors.New("Invalid email address")
	ErrCompanyPhoneTooShort       = errors.New("Contact phone must be at least 10 characters")
	ErrCompanyAddressTooShort     = errors.New("Address must be at least 10 characters")
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateCompany checks the registration constraints in field order and
// returns the first violation, or nil
func ValidateCompany(in CompanyInput) error {
	if len(strings.TrimSpace(in.Name)) < 2 {
		return ErrCompanyNameTooShort
	}
	if len(strings.TrimSpace(in.Description)) < 10 {
		return ErrCompanyDescriptionTooShort
	}
	if !emailRegex.MatchString(in.ContactEmail) {
		return ErrCompanyEmailInvalid
	}
	if len(strings.TrimSpace(in.ContactPhone)) < 10 {
		return ErrCompanyPhoneTooShort
	}
	if len(strings.TrimSpace(in.Address)) < 10 {
		return ErrCompanyAddressTooShort
	}

	return nil
}

// BuildCompanyMetadata derives the IPFS-bound company document
func BuildCompanyMetadata(in CompanyInput) CompanyMetadata {
	return CompanyMetadata{
		Name:         in.Name,
		ContactEmail: in.ContactEmail,
		ContactPhone: in.ContactPhone,
		Address:      in.Address,
		Description:  in.Description,
	}
}

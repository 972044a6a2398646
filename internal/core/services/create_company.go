package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ipverse/ipv-cli/internal/core/domain"
	"github.com/ipverse/ipv-cli/internal/core/ports"
)

// CreateCompanyService handles company registration. Unlike project
// submission this is a single persistence call; no metadata publish follows.
type CreateCompanyService struct {
	companies ports.CompanyAPI
}

// NewCreateCompanyService creates a new company registration service
func NewCreateCompanyService(companies ports.CompanyAPI) *CreateCompanyService {
	return &CreateCompanyService{companies: companies}
}

// CreateCompanyRequest represents a company registration attempt
type CreateCompanyRequest struct {
	Input domain.CompanyInput
}

// CreateCompanyResponse represents a successful registration
type CreateCompanyResponse struct {
	Company domain.Company
}

// Execute validates and registers a new company
func (s *CreateCompanyService) Execute(ctx context.Context, req CreateCompanyRequest) (*CreateCompanyResponse, error) {
	if err := domain.ValidateCompany(req.Input); err != nil {
		return nil, &ValidationError{Reason: err}
	}

	res, err := s.companies.Create(ctx, req.Input)
	if err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}
	if !res.Success {
		if res.Error != "" {
			return nil, errors.New(res.Error)
		}
		return nil, errors.New("Unknown error occurred")
	}

	return &CreateCompanyResponse{Company: res.Company}, nil
}

package services

import (
	"context"
	"fmt"

	"github.com/ipverse/ipv-cli/internal/core/domain"
	"github.com/ipverse/ipv-cli/internal/core/ports"
)

// ListCompaniesService fetches {id, name} pairs for the company selector
type ListCompaniesService struct {
	companies ports.CompanyAPI
}

// NewListCompaniesService creates a new company listing service
func NewListCompaniesService(companies ports.CompanyAPI) *ListCompaniesService {
	return &ListCompaniesService{companies: companies}
}

// ListCompaniesResponse carries the selector entries
type ListCompaniesResponse struct {
	Companies []domain.Company
	Total     int
}

// Execute fetches the company listing
func (s *ListCompaniesService) Execute(ctx context.Context) (*ListCompaniesResponse, error) {
	companies, err := s.companies.ListNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}

	return &ListCompaniesResponse{
		Companies: companies,
		Total:     len(companies),
	}, nil
}

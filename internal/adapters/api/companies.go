package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ipverse/ipv-cli/internal/core/domain"
	"github.com/ipverse/ipv-cli/internal/core/ports"
)

// CompanyClient implements the backend company operations
type CompanyClient struct {
	client *Client
}

// NewCompanyClient creates a company client over the shared backend client
func NewCompanyClient(client *Client) *CompanyClient {
	return &CompanyClient{client: client}
}

// Ensure it implements the interface
var _ ports.CompanyAPI = (*CompanyClient)(nil)

type listCompaniesEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    struct {
		Companies []domain.Company `json:"companies"`
	} `json:"data"`
}

type createCompanyEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Data    struct {
		Company domain.Company `json:"company"`
	} `json:"data"`
}

// ListNames returns {id, name} pairs for the company selector
func (c *CompanyClient) ListNames(ctx context.Context) ([]domain.Company, error) {
	var envelope listCompaniesEnvelope
	if err := c.client.doJSON(ctx, http.MethodGet, "/companies/names-and-ids", nil, &envelope); err != nil {
		return nil, err
	}
	if !envelope.Success {
		if envelope.Message != "" {
			return nil, fmt.Errorf("%s", envelope.Message)
		}
		return nil, fmt.Errorf("backend rejected the company listing request")
	}

	return envelope.Data.Companies, nil
}

// Create registers a new company
func (c *CompanyClient) Create(ctx context.Context, in domain.CompanyInput) (*ports.CreateCompanyResult, error) {
	var envelope createCompanyEnvelope
	if err := c.client.doJSON(ctx, http.MethodPost, "/companies/createcompany", in, &envelope); err != nil {
		return nil, err
	}

	return &ports.CreateCompanyResult{
		Success: envelope.Success,
		Error:   envelope.Error,
		Company: envelope.Data.Company,
	}, nil
}

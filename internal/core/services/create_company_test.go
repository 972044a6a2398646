package services

import (
	"context"
	"errors"
	"testing"

	"github.com/ipverse/ipv-cli/internal/core/domain"
	"github.com/ipverse/ipv-cli/internal/core/ports"
	"github.com/ipverse/ipv-cli/internal/core/ports/mocks"
)

func testCompanyInput() domain.CompanyInput {
	return domain.CompanyInput{
		Name:         "Northbound IP Holdings",
		Description:  "Licensing and custody of patent portfolios.",
		ContactEmail: "ops@northbound.example",
		ContactPhone: "+15550001111",
		Address:      "200 Harbor Way, Suite 4, Oakland CA",
	}
}

func TestCreateCompanyService_Execute(t *testing.T) {
	tests := []struct {
		name        string
		input       domain.CompanyInput
		setupMocks  func(*mocks.MockCompanyAPI)
		expectError bool
		errorMsg    string
		wantCreates int
	}{
		{
			name:        "successful registration",
			input:       testCompanyInput(),
			setupMocks:  func(c *mocks.MockCompanyAPI) {},
			expectError: false,
			wantCreates: 1,
		},
		{
			name: "invalid input makes no network call",
			input: domain.CompanyInput{
				Name: "A",
			},
			setupMocks:  func(c *mocks.MockCompanyAPI) {},
			expectError: true,
			errorMsg:    "at least 2 characters",
			wantCreates: 0,
		},
		{
			name:  "backend error is surfaced",
			input: testCompanyInput(),
			setupMocks: func(c *mocks.MockCompanyAPI) {
				c.SetResult(&ports.CreateCompanyResult{Success: false, Error: "name already registered"})
			},
			expectError: true,
			errorMsg:    "name already registered",
			wantCreates: 1,
		},
		{
			name:  "backend failure without message uses fallback",
			input: testCompanyInput(),
			setupMocks: func(c *mocks.MockCompanyAPI) {
				c.SetResult(&ports.CreateCompanyResult{Success: false})
			},
			expectError: true,
			errorMsg:    "Unknown error",
			wantCreates: 1,
		},
		{
			name:  "transport error is wrapped",
			input: testCompanyInput(),
			setupMocks: func(c *mocks.MockCompanyAPI) {
				c.SetCreateError(errors.New("connection refused"))
			},
			expectError: true,
			errorMsg:    "failed to create company",
			wantCreates: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			companies := mocks.NewMockCompanyAPI()
			tt.setupMocks(companies)

			service := NewCreateCompanyService(companies)
			resp, err := service.Execute(context.Background(), CreateCompanyRequest{Input: tt.input})

			if tt.expectError {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.errorMsg != "" && !contains(err.Error(), tt.errorMsg) {
					t.Errorf("error = %q, want it to contain %q", err.Error(), tt.errorMsg)
				}
			} else {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if resp.Company.Name == "" {
					t.Error("response missing company")
				}
			}

			if got := len(companies.CreateCalls()); got != tt.wantCreates {
				t.Errorf("Create called %d times, want %d", got, tt.wantCreates)
			}
		})
	}
}

func TestListCompaniesService_Execute(t *testing.T) {
	companies := mocks.NewMockCompanyAPI()
	companies.SetCompanies([]domain.Company{
		{ID: "c1", Name: "Northbound"},
		{ID: "c2", Name: "Southgate"},
	})

	service := NewListCompaniesService(companies)
	resp, err := service.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Total != 2 {
		t.Errorf("Total = %d, want 2", resp.Total)
	}

	companies.SetListError(errors.New("boom"))
	if _, err := service.Execute(context.Background()); err == nil {
		t.Error("expected error when listing fails")
	}
}

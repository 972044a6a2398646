package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ipverse/ipv-cli/internal/core/domain"
)

func testSubmission() domain.ProjectSubmission {
	return domain.ProjectSubmission{
		Title:           "Ledger Archive",
		Description:     "A rights ledger.",
		Category:        "Patents",
		IPType:          "Patent",
		TotalTokens:     1000,
		TokenPrice:      0.05,
		FundingGoal:     50000,
		StartDate:       "2025-01-01T00:00:00Z",
		EndDate:         "2025-06-01T00:00:00Z",
		ExpectedReturns: 12,
		RiskLevel:       "medium",
		Images:          []string{"data:image/png;base64,aGk="},
		Documents:       []domain.Attachment{},
		CompanyID:       "abc123",
	}
}

func TestProjectClient_Create(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/projects/createproject" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"message": "Project created",
			"data": map[string]any{
				"project": map[string]any{
					"id":     "p1",
					"title":  "Ledger Archive",
					"images": []string{"https://cdn.example/p1.png"},
				},
			},
		})
	}))
	defer server.Close()

	client := NewProjectClient(NewClient(server.URL, "token123", 5*time.Second))
	res, err := client.Create(context.Background(), testSubmission())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if !res.Success {
		t.Error("Success = false, want true")
	}
	if res.Project.ID != "p1" {
		t.Errorf("Project.ID = %q, want p1", res.Project.ID)
	}
	if len(res.Project.Images) != 1 {
		t.Errorf("Project.Images length = %d, want 1", len(res.Project.Images))
	}
	if gotAuth != "Bearer token123" {
		t.Errorf("Authorization = %q, want Bearer token123", gotAuth)
	}

	// The funding goal key keeps its backend capitalization on the wire
	if _, ok := gotBody["FundingGoal"]; !ok {
		t.Error("request body missing FundingGoal key")
	}
	if _, ok := gotBody["fundingGoal"]; ok {
		t.Error("request body has lowercase fundingGoal key")
	}
	if gotBody["companyId"] != "abc123" {
		t.Errorf("companyId = %v, want abc123", gotBody["companyId"])
	}
}

func TestProjectClient_CreateRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"message": "A project with this title already exists",
		})
	}))
	defer server.Close()

	client := NewProjectClient(NewClient(server.URL, "", 5*time.Second))
	res, err := client.Create(context.Background(), testSubmission())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if res.Success {
		t.Error("Success = true, want false")
	}
	if res.Message != "A project with this title already exists" {
		t.Errorf("Message = %q", res.Message)
	}
}

func TestProjectClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/projects" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": map[string]any{
				"projects": []map[string]any{
					{"id": "p1", "title": "Ledger Archive", "category": "Patents", "FundingGoal": 50000, "riskLevel": "medium"},
					{"id": "p2", "title": "Score Vault", "category": "Music", "FundingGoal": 12000, "riskLevel": "low"},
				},
			},
		})
	}))
	defer server.Close()

	client := NewProjectClient(NewClient(server.URL, "", 5*time.Second))
	projects, err := client.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}

	if len(projects) != 2 {
		t.Fatalf("got %d projects, want 2", len(projects))
	}
	if projects[0].FundingGoal != 50000 {
		t.Errorf("FundingGoal = %v, want 50000", projects[0].FundingGoal)
	}
}

func TestProjectClient_Delete(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method = %s, want DELETE", r.Method)
		}
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))
	defer server.Close()

	client := NewProjectClient(NewClient(server.URL, "", 5*time.Second))
	if err := client.Delete(context.Background(), "p1"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if gotPath != "/projects/p1" {
		t.Errorf("path = %q, want /projects/p1", gotPath)
	}
}

func TestCompanyClient_ListNames(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/companies/names-and-ids" {
			t.Errorf("path = %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": map[string]any{
				"companies": []map[string]any{
					{"id": "c1", "name": "Northbound"},
					{"id": "c2", "name": "Southgate"},
				},
			},
		})
	}))
	defer server.Close()

	client := NewCompanyClient(NewClient(server.URL, "", 5*time.Second))
	companies, err := client.ListNames(context.Background())
	if err != nil {
		t.Fatalf("ListNames returned error: %v", err)
	}

	if len(companies) != 2 {
		t.Fatalf("got %d companies, want 2", len(companies))
	}
	if companies[0].ID != "c1" || companies[0].Name != "Northbound" {
		t.Errorf("unexpected first company: %+v", companies[0])
	}
}

func TestCompanyClient_Create(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/companies/createcompany" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"error":   "name already registered",
		})
	}))
	defer server.Close()

	client := NewCompanyClient(NewClient(server.URL, "", 5*time.Second))
	res, err := client.Create(context.Background(), domain.CompanyInput{Name: "Northbound"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if res.Success {
		t.Error("Success = true, want false")
	}
	if res.Error != "name already registered" {
		t.Errorf("Error = %q", res.Error)
	}
}

func TestClient_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewProjectClient(NewClient(server.URL, "", 1*time.Second))
	if _, err := client.Create(context.Background(), testSubmission()); err == nil {
		t.Error("expected error against a closed server")
	}
}

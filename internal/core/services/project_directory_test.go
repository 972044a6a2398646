package services

import (
	"context"
	"testing"

	"github.com/ipverse/ipv-cli/internal/core/domain"
	"github.com/ipverse/ipv-cli/internal/core/ports/mocks"
)

func TestProjectDirectoryService_Execute(t *testing.T) {
	projects := mocks.NewMockProjectAPI()
	projects.SetListings([]domain.ProjectListing{
		{ID: "p2", Title: "Score Vault", Category: "Music"},
		{ID: "p1", Title: "Ledger Archive", Category: "Patents"},
	})

	service := NewProjectDirectoryService(projects)
	resp, err := service.Execute(context.Background(), ListProjectsRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Total != 2 {
		t.Fatalf("Total = %d, want 2", resp.Total)
	}
	if resp.Projects[0].Title != "Ledger Archive" {
		t.Errorf("first project = %q, want titles sorted", resp.Projects[0].Title)
	}
}

func TestProjectDirectoryService_Ordering(t *testing.T) {
	projects := mocks.NewMockProjectAPI()
	projects.SetListings([]domain.ProjectListing{
		{ID: "p2", Title: "Score Vault", Category: "Music", FundingGoal: 80000},
		{ID: "p1", Title: "Ledger Archive", Category: "Patents", FundingGoal: 50000},
	})
	service := NewProjectDirectoryService(projects)

	tests := []struct {
		name      string
		req       ListProjectsRequest
		wantFirst string
	}{
		{"by title reversed", ListProjectsRequest{SortBy: "title", Reverse: true}, "p2"},
		{"by category", ListProjectsRequest{SortBy: "category"}, "p2"},
		{"by goal", ListProjectsRequest{SortBy: "goal"}, "p1"},
		{"unknown key falls back to title", ListProjectsRequest{SortBy: "date"}, "p1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := service.Execute(context.Background(), tt.req)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := resp.Projects[0].ID; got != tt.wantFirst {
				t.Errorf("first project = %q, want %q", got, tt.wantFirst)
			}
		})
	}
}

func TestProjectDirectoryService_Delete(t *testing.T) {
	projects := mocks.NewMockProjectAPI()
	service := NewProjectDirectoryService(projects)

	if err := service.Delete(context.Background(), ""); err == nil {
		t.Error("expected error for empty id")
	}

	if err := service.Delete(context.Background(), "p1"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if got := projects.Deleted(); len(got) != 1 || got[0] != "p1" {
		t.Errorf("Deleted = %v, want [p1]", got)
	}
}

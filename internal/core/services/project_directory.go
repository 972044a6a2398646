package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/ipverse/ipv-cli/internal/core/domain"
	"github.com/ipverse/ipv-cli/internal/core/ports"
)

// ProjectDirectoryService lists and removes persisted projects
type ProjectDirectoryService struct {
	projects ports.ProjectAPI
}

// NewProjectDirectoryService creates a new project directory service
func NewProjectDirectoryService(projects ports.ProjectAPI) *ProjectDirectoryService {
	return &ProjectDirectoryService{projects: projects}
}

// ListProjectsRequest selects the ordering of the directory listing.
// SortBy accepts "title", "category" or "goal"; anything else falls
// back to title. Reverse flips the order.
type ListProjectsRequest struct {
	SortBy  string
	Reverse bool
}

// ListProjectsResponse carries the persisted project directory
type ListProjectsResponse struct {
	Projects []domain.ProjectListing
	Total    int
}

// Execute fetches the directory in the requested order
func (s *ProjectDirectoryService) Execute(ctx context.Context, req ListProjectsRequest) (*ListProjectsResponse, error) {
	projects, err := s.projects.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	sort.Slice(projects, func(i, j int) bool {
		var less bool
		switch req.SortBy {
		case "category":
			less = projects[i].Category < projects[j].Category
		case "goal":
			less = projects[i].FundingGoal < projects[j].FundingGoal
		default:
			less = projects[i].Title < projects[j].Title
		}
		if req.Reverse {
			return !less
		}
		return less
	})

	return &ListProjectsResponse{
		Projects: projects,
		Total:    len(projects),
	}, nil
}

// Delete removes a persisted project by id
func (s *ProjectDirectoryService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("project id cannot be empty")
	}
	if err := s.projects.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ipverse/ipv-cli/internal/core/domain"
	"github.com/ipverse/ipv-cli/internal/core/ports"
)

// ProjectClient implements the backend project operations
type ProjectClient struct {
	client *Client
}

// NewProjectClient creates a project client over the shared backend client
func NewProjectClient(client *Client) *ProjectClient {
	return &ProjectClient{client: client}
}

// Ensure it implements the interface
var _ ports.ProjectAPI = (*ProjectClient)(nil)

type createProjectEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    struct {
		Project domain.CreatedProject `json:"project"`
	} `json:"data"`
}

type listProjectsEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    struct {
		Projects []domain.ProjectListing `json:"projects"`
	} `json:"data"`
}

type deleteProjectEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Create persists a normalized project submission
func (p *ProjectClient) Create(ctx context.Context, sub domain.ProjectSubmission) (*ports.CreateProjectResult, error) {
	var envelope createProjectEnvelope
	if err := p.client.doJSON(ctx, http.MethodPost, "/projects/createproject", sub, &envelope); err != nil {
		return nil, err
	}

	return &ports.CreateProjectResult{
		Success: envelope.Success,
		Message: envelope.Message,
		Project: envelope.Data.Project,
	}, nil
}

// List returns the persisted project directory
func (p *ProjectClient) List(ctx context.Context) ([]domain.ProjectListing, error) {
	var envelope listProjectsEnvelope
	if err := p.client.doJSON(ctx, http.MethodGet, "/projects", nil, &envelope); err != nil {
		return nil, err
	}
	if !envelope.Success {
		if envelope.Message != "" {
			return nil, fmt.Errorf("%s", envelope.Message)
		}
		return nil, fmt.Errorf("backend rejected the project listing request")
	}

	return envelope.Data.Projects, nil
}

// Delete removes a persisted project by id
func (p *ProjectClient) Delete(ctx context.Context, id string) error {
	var envelope deleteProjectEnvelope
	path := "/projects/" + url.PathEscape(id)
	if err := p.client.doJSON(ctx, http.MethodDelete, path, nil, &envelope); err != nil {
		return err
	}
	if !envelope.Success {
		if envelope.Message != "" {
			return fmt.Errorf("%s", envelope.Message)
		}
		return fmt.Errorf("backend rejected the delete request")
	}

	return nil
}

package ports

import (
	"context"

	"github.com/ipverse/ipv-cli/internal/core/domain"
)

// CreateProjectResult is the backend's Create-Project response envelope
type CreateProjectResult struct {
	Success bool
	Message string
	Project domain.CreatedProject
}

// CreateCompanyResult is the backend's Create-Company response envelope.
// The backend reports failure through Error rather than Message here.
type CreateCompanyResult struct {
	Success bool
	Error   string
	Company domain.Company
}

// ProjectAPI defines the port for backend project operations
type ProjectAPI interface {
	// Create persists a normalized project submission
	Create(ctx context.Context, sub domain.ProjectSubmission) (*CreateProjectResult, error)

	// List returns the persisted project directory
	List(ctx context.Context) ([]domain.ProjectListing, error)

	// Delete removes a persisted project by id
	Delete(ctx context.Context, id string) error
}

// CompanyAPI defines the port for backend company operations
type CompanyAPI interface {
	// ListNames returns {id, name} pairs for the company selector
	ListNames(ctx context.Context) ([]domain.Company, error)

	// Create registers a new company
	Create(ctx context.Context, in domain.CompanyInput) (*CreateCompanyResult, error)
}

// PinOptions carries the pin name and searchable keyvalues
type PinOptions struct {
	Name      string
	Keyvalues map[string]string
}

// Publisher defines the port for content-addressed metadata publishing
type Publisher interface {
	// PinJSON publishes a document and returns its content address
	PinJSON(ctx context.Context, doc any, visibility string, opts PinOptions) (string, error)
}

// DraftRepository defines the port for local draft persistence
type DraftRepository interface {
	// List returns all stored drafts with their slugs
	List(ctx context.Context) ([]StoredDraft, error)

	// Save persists a draft under the given slug
	Save(ctx context.Context, slug string, draft domain.DraftProject) error

	// Get retrieves a draft by slug
	Get(ctx context.Context, slug string) (*domain.DraftProject, error)

	// Exists checks if a draft with the given slug exists
	Exists(ctx context.Context, slug string) bool

	// Delete removes a draft by slug
	Delete(ctx context.Context, slug string) error
}

// StoredDraft pairs a draft with its storage identity
type StoredDraft struct {
	Slug  string
	Draft domain.DraftProject
}

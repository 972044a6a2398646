package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ipverse/ipv-cli/internal/core/domain"
	"github.com/ipverse/ipv-cli/internal/core/ports"
)

// genericCreateFailure is shown when the backend rejects a submission
// without supplying a message
const genericCreateFailure = "Failed to create project"

// ValidationError marks a local, pre-network violation. No backend call has
// been made when one of these comes back.
type ValidationError struct {
	Reason error
}

func (e *ValidationError) Error() string { return e.Reason.Error() }
func (e *ValidationError) Unwrap() error { return e.Reason }

// IsValidation reports whether err is a local validation violation
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// SubmitProjectService orchestrates the two-phase submission: validate and
// normalize the draft, create the backend record, then publish the derived
// metadata document to content-addressed storage.
type SubmitProjectService struct {
	projects   ports.ProjectAPI
	publisher  ports.Publisher
	visibility string
}

// NewSubmitProjectService creates a new submission service
func NewSubmitProjectService(projects ports.ProjectAPI, publisher ports.Publisher, visibility string) *SubmitProjectService {
	if visibility == "" {
		visibility = "public"
	}
	return &SubmitProjectService{
		projects:   projects,
		publisher:  publisher,
		visibility: visibility,
	}
}

// SubmitProjectRequest represents one submission attempt
type SubmitProjectRequest struct {
	Draft     domain.DraftProject
	CompanyID string
	Editing   bool
}

// SubmitProjectResponse represents the outcome of a successful creation.
// ContentAddress is set when the metadata pin succeeded; PinError carries
// the swallowed pin failure otherwise. Exactly one of the two is set.
type SubmitProjectResponse struct {
	Project        domain.CreatedProject
	Metadata       domain.ProjectMetadata
	ContentAddress string
	PinError       error
}

// Execute runs one submission attempt.
//
// A validation violation aborts before any network call. A create failure
// (transport or success:false) aborts before the metadata publish. A publish
// failure does NOT fail the submission: the backend record already exists and
// the caller's success feedback must stand, so the error is only carried back
// in PinError for muted reporting. This leaves a record without a metadata
// document; the backend owns reconciliation.
func (s *SubmitProjectService) Execute(ctx context.Context, req SubmitProjectRequest) (*SubmitProjectResponse, error) {
	// Validate first; the validator is the single gate
	if err := domain.ValidateProject(req.Draft, req.CompanyID); err != nil {
		return nil, &ValidationError{Reason: err}
	}

	sub, err := domain.NormalizeProject(req.Draft, req.CompanyID)
	if err != nil {
		return nil, &ValidationError{Reason: err}
	}

	res, err := s.projects.Create(ctx, sub)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	if !res.Success {
		msg := res.Message
		if msg == "" {
			msg = genericCreateFailure
		}
		return nil, errors.New(msg)
	}

	meta := domain.BuildProjectMetadata(sub, res.Project.Images)
	resp := &SubmitProjectResponse{
		Project:  res.Project,
		Metadata: meta,
	}

	cid, pinErr := s.publisher.PinJSON(ctx, meta, s.visibility, ports.PinOptions{
		Name: sub.Title + "-metadata",
		Keyvalues: map[string]string{
			"type":         "project_metadata",
			"project_name": sub.Title,
		},
	})
	if pinErr != nil {
		resp.PinError = pinErr
	} else {
		resp.ContentAddress = cid
	}

	return resp, nil
}

package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/ipverse/ipv-cli/internal/core/domain"
	"github.com/ipverse/ipv-cli/internal/core/ports"
)

// DraftService manages locally stored project drafts
type DraftService struct {
	drafts ports.DraftRepository
}

// NewDraftService creates a new draft service
func NewDraftService(drafts ports.DraftRepository) *DraftService {
	return &DraftService{drafts: drafts}
}

// SaveDraftRequest persists an in-progress draft under its title slug
type SaveDraftRequest struct {
	Draft domain.DraftProject
}

// SaveDraftResponse reports where the draft landed
type SaveDraftResponse struct {
	Slug string
}

// Save stores a draft. A draft needs at least a title to derive its slug;
// everything else can stay empty until submission.
func (s *DraftService) Save(ctx context.Context, req SaveDraftRequest) (*SaveDraftResponse, error) {
	if strings.TrimSpace(req.Draft.Title) == "" {
		return nil, &ValidationError{Reason: domain.ErrTitleRequired}
	}

	slug := domain.GenerateSlug(req.Draft.Title)
	if err := s.drafts.Save(ctx, slug, req.Draft); err != nil {
		return nil, fmt.Errorf("failed to save draft: %w", err)
	}

	return &SaveDraftResponse{Slug: slug}, nil
}

// ListDraftsRequest selects the ordering of the draft listing. SortBy
// accepts "slug", "title" or "category"; anything else falls back to
// slug. Reverse flips the order.
type ListDraftsRequest struct {
	SortBy  string
	Reverse bool
}

// ListDraftsResponse carries stored drafts
type ListDraftsResponse struct {
	Drafts []ports.StoredDraft
	Total  int
}

// List returns all stored drafts in the requested order
func (s *DraftService) List(ctx context.Context, req ListDraftsRequest) (*ListDraftsResponse, error) {
	drafts, err := s.drafts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list drafts: %w", err)
	}

	sort.Slice(drafts, func(i, j int) bool {
		var less bool
		switch req.SortBy {
		case "title":
			less = drafts[i].Draft.Title < drafts[j].Draft.Title
		case "category":
			less = drafts[i].Draft.Category < drafts[j].Draft.Category
		default:
			less = drafts[i].Slug < drafts[j].Slug
		}
		if req.Reverse {
			return !less
		}
		return less
	})

	return &ListDraftsResponse{Drafts: drafts, Total: len(drafts)}, nil
}

// Get retrieves one draft by slug
func (s *DraftService) Get(ctx context.Context, slug string) (*domain.DraftProject, error) {
	return s.drafts.Get(ctx, slug)
}

// Delete removes one draft by slug
func (s *DraftService) Delete(ctx context.Context, slug string) error {
	return s.drafts.Delete(ctx, slug)
}

// DraftStatus pairs a stored draft with its current violation, if any
type DraftStatus struct {
	Slug      string
	Title     string
	Violation error
}

// CheckAll validates every stored draft against an optional company id.
// Drafts are checked with the validator's usual ordering, so each draft
// reports at most one violation.
func (s *DraftService) CheckAll(ctx context.Context, companyID string) ([]DraftStatus, error) {
	resp, err := s.List(ctx, ListDraftsRequest{})
	if err != nil {
		return nil, err
	}

	statuses := make([]DraftStatus, 0, resp.Total)
	for _, stored := range resp.Drafts {
		statuses = append(statuses, DraftStatus{
			Slug:      stored.Slug,
			Title:     stored.Draft.Title,
			Violation: domain.ValidateProject(stored.Draft, companyID),
		})
	}

	return statuses, nil
}

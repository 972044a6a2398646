package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ipverse/ipv-cli/internal/core/domain"
	"github.com/ipverse/ipv-cli/internal/core/ports"
	"github.com/ipverse/ipv-cli/pkg/workspace"
	"gopkg.in/yaml.v3"
)

// DraftRepository stores drafts as YAML files in the workspace drafts directory
type DraftRepository struct {
	workspace *workspace.Workspace
	mu        sync.RWMutex
}

// NewDraftRepository creates a new file-based draft repository
func NewDraftRepository(ws *workspace.Workspace) *DraftRepository {
	return &DraftRepository{
		workspace: ws,
	}
}

// Ensure it implements the interface
var _ ports.DraftRepository = (*DraftRepository)(nil)

// List returns all stored drafts
func (r *DraftRepository) List(ctx context.Context) ([]ports.StoredDraft, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries, err := os.ReadDir(r.workspace.DraftsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read drafts directory: %w", err)
	}

	var drafts []ports.StoredDraft
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".yaml" {
			continue
		}

		slug := strings.TrimSuffix(entry.Name(), ".yaml")
		draft, err := r.read(slug)
		if err != nil {
			continue
		}
		drafts = append(drafts, ports.StoredDraft{Slug: slug, Draft: *draft})
	}

	return drafts, nil
}

// Save writes a draft under its slug, overwriting any previous version
func (r *DraftRepository) Save(ctx context.Context, slug string, draft domain.DraftProject) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := yaml.Marshal(&draft)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}

	path := r.workspace.GetDraftPath(slug + ".yaml")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write draft file: %w", err)
	}

	return nil
}

// Get retrieves a draft by its slug
func (r *DraftRepository) Get(ctx context.Context, slug string) (*domain.DraftProject, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.read(slug)
}

// Exists reports whether a draft with the given slug is stored
func (r *DraftRepository) Exists(ctx context.Context, slug string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, err := os.Stat(r.workspace.GetDraftPath(slug + ".yaml"))
	return err == nil
}

// Delete removes a draft by its slug
func (r *DraftRepository) Delete(ctx context.Context, slug string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	path := r.workspace.GetDraftPath(slug + ".yaml")
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("draft not found: %s", slug)
	}

	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}

	return nil
}

func (r *DraftRepository) read(slug string) (*domain.DraftProject, error) {
	data, err := os.ReadFile(r.workspace.GetDraftPath(slug + ".yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("draft not found: %s", slug)
		}
		return nil, fmt.Errorf("failed to read draft file: %w", err)
	}

	var draft domain.DraftProject
	if err := yaml.Unmarshal(data, &draft); err != nil {
		return nil, fmt.Errorf("failed to parse draft file: %w", err)
	}

	return &draft, nil
}

package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/ipverse/ipv-cli/internal/core/domain"
	"github.com/ipverse/ipv-cli/internal/core/ports"
)

// MockProjectAPI is a mock implementation of the ProjectAPI interface for testing
type MockProjectAPI struct {
	mu          sync.Mutex
	createCalls []domain.ProjectSubmission
	result      *ports.CreateProjectResult
	createErr   error
	listings    []domain.ProjectListing
	deleted     []string
}

// NewMockProjectAPI creates a mock that reports success with no images
func NewMockProjectAPI() *MockProjectAPI {
	return &MockProjectAPI{
		result: &ports.CreateProjectResult{Success: true},
	}
}

// SetResult fixes the envelope returned by Create
func (m *MockProjectAPI) SetResult(res *ports.CreateProjectResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.result = res
}

// SetCreateError makes Create fail at the transport level
func (m *MockProjectAPI) SetCreateError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.createErr = err
}

// SetListings fixes the directory returned by List
func (m *MockProjectAPI) SetListings(listings []domain.ProjectListing) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listings = listings
}

func (m *MockProjectAPI) Create(ctx context.Context, sub domain.ProjectSubmission) (*ports.CreateProjectResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.createCalls = append(m.createCalls, sub)
	if m.createErr != nil {
		return nil, m.createErr
	}
	res := *m.result
	return &res, nil
}

func (m *MockProjectAPI) List(ctx context.Context) ([]domain.ProjectListing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.ProjectListing(nil), m.listings...), nil
}

func (m *MockProjectAPI) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleted = append(m.deleted, id)
	return nil
}

// CreateCalls returns the submissions passed to Create
func (m *MockProjectAPI) CreateCalls() []domain.ProjectSubmission {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.ProjectSubmission(nil), m.createCalls...)
}

// Deleted returns the ids passed to Delete
func (m *MockProjectAPI) Deleted() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.deleted...)
}

// --- MockCompanyAPI ---

type MockCompanyAPI struct {
	mu          sync.Mutex
	companies   []domain.Company
	listErr     error
	createCalls []domain.CompanyInput
	result      *ports.CreateCompanyResult
	createErr   error
}

func NewMockCompanyAPI() *MockCompanyAPI {
	return &MockCompanyAPI{
		result: &ports.CreateCompanyResult{Success: true},
	}
}

func (m *MockCompanyAPI) SetCompanies(companies []domain.Company) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.companies = companies
}

func (m *MockCompanyAPI) SetListError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listErr = err
}

func (m *MockCompanyAPI) SetResult(res *ports.CreateCompanyResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.result = res
}

func (m *MockCompanyAPI) SetCreateError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.createErr = err
}

func (m *MockCompanyAPI) ListNames(ctx context.Context) ([]domain.Company, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	return append([]domain.Company(nil), m.companies...), nil
}

func (m *MockCompanyAPI) Create(ctx context.Context, in domain.CompanyInput) (*ports.CreateCompanyResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.createCalls = append(m.createCalls, in)
	if m.createErr != nil {
		return nil, m.createErr
	}
	res := *m.result
	if res.Company.Name == "" {
		res.Company.Name = in.Name
	}
	return &res, nil
}

func (m *MockCompanyAPI) CreateCalls() []domain.CompanyInput {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.CompanyInput(nil), m.createCalls...)
}

// --- MockPublisher ---

type PinCall struct {
	Doc        any
	Visibility string
	Opts       ports.PinOptions
}

type MockPublisher struct {
	mu         sync.Mutex
	calls      []PinCall
	cid        string
	shouldFail bool
	failError  error
}

func NewMockPublisher() *MockPublisher {
	return &MockPublisher{
		cid: "bafkreifakecid",
	}
}

func (m *MockPublisher) SetCID(cid string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cid = cid
}

func (m *MockPublisher) SetShouldFail(fail bool, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.shouldFail = fail
	m.failError = err
}

func (m *MockPublisher) PinJSON(ctx context.Context, doc any, visibility string, opts ports.PinOptions) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, PinCall{Doc: doc, Visibility: visibility, Opts: opts})
	if m.shouldFail {
		if m.failError != nil {
			return "", m.failError
		}
		return "", fmt.Errorf("pin failed for %s", opts.Name)
	}
	return m.cid, nil
}

func (m *MockPublisher) Calls() []PinCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]PinCall(nil), m.calls...)
}

// --- MockDraftRepository ---

type MockDraftRepository struct {
	mu     sync.RWMutex
	drafts map[string]domain.DraftProject
}

func NewMockDraftRepository() *MockDraftRepository {
	return &MockDraftRepository{
		drafts: make(map[string]domain.DraftProject),
	}
}

func (m *MockDraftRepository) List(ctx context.Context) ([]ports.StoredDraft, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	stored := make([]ports.StoredDraft, 0, len(m.drafts))
	for slug, d := range m.drafts {
		stored = append(stored, ports.StoredDraft{Slug: slug, Draft: d})
	}
	return stored, nil
}

func (m *MockDraftRepository) Save(ctx context.Context, slug string, draft domain.DraftProject) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drafts[slug] = draft
	return nil
}

func (m *MockDraftRepository) Get(ctx context.Context, slug string) (*domain.DraftProject, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.drafts[slug]
	if !ok {
		return nil, fmt.Errorf("draft not found: %s", slug)
	}
	return &d, nil
}

func (m *MockDraftRepository) Exists(ctx context.Context, slug string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.drafts[slug]
	return ok
}

func (m *MockDraftRepository) Delete(ctx context.Context, slug string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.drafts[slug]; !ok {
		return fmt.Errorf("draft not found: %s", slug)
	}
	delete(m.drafts, slug)
	return nil
}

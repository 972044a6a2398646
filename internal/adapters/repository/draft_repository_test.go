package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ipverse/ipv-cli/internal/core/domain"
	"github.com/ipverse/ipv-cli/pkg/workspace"
)

func testWorkspace(t *testing.T) *workspace.Workspace {
	t.Helper()
	root := t.TempDir()

	ws := &workspace.Workspace{
		RootPath:    root,
		DraftsPath:  filepath.Join(root, "drafts"),
		ExportsPath: filepath.Join(root, "exports"),
		ConfigPath:  filepath.Join(root, "config.yaml"),
	}
	if err := ws.Initialize(); err != nil {
		t.Fatalf("failed to initialize workspace: %v", err)
	}
	return ws
}

func testDraft() domain.DraftProject {
	d := domain.NewDraftProject()
	d.Title = "Ledger Archive"
	d.Category = "Patents"
	d.TotalTokens = "1000"
	d.Images = []string{"data:image/png;base64,aGk="}
	return d
}

func TestDraftRepository_SaveAndGet(t *testing.T) {
	repo := NewDraftRepository(testWorkspace(t))
	ctx := context.Background()

	if err := repo.Save(ctx, "ledger-archive", testDraft()); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	got, err := repo.Get(ctx, "ledger-archive")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.Title != "Ledger Archive" {
		t.Errorf("Title = %q, want Ledger Archive", got.Title)
	}
	if got.Category != "Patents" {
		t.Errorf("Category = %q, want Patents", got.Category)
	}
	if len(got.Images) != 1 {
		t.Errorf("Images length = %d, want 1", len(got.Images))
	}
}

func TestDraftRepository_GetMissing(t *testing.T) {
	repo := NewDraftRepository(testWorkspace(t))

	if _, err := repo.Get(context.Background(), "nope"); err == nil {
		t.Error("expected error for missing draft")
	}
}

func TestDraftRepository_List(t *testing.T) {
	ws := testWorkspace(t)
	repo := NewDraftRepository(ws)
	ctx := context.Background()

	if err := repo.Save(ctx, "alpha", testDraft()); err != nil {
		t.Fatal(err)
	}
	if err := repo.Save(ctx, "beta", testDraft()); err != nil {
		t.Fatal(err)
	}

	// Non-yaml files are skipped
	if err := os.WriteFile(filepath.Join(ws.DraftsPath, "notes.txt"), []byte("hi"), 0644); err != nil {
		t.Fatal(err)
	}

	drafts, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(drafts) != 2 {
		t.Errorf("got %d drafts, want 2", len(drafts))
	}
}

func TestDraftRepository_ExistsAndDelete(t *testing.T) {
	repo := NewDraftRepository(testWorkspace(t))
	ctx := context.Background()

	if repo.Exists(ctx, "alpha") {
		t.Error("Exists = true before save")
	}

	if err := repo.Save(ctx, "alpha", testDraft()); err != nil {
		t.Fatal(err)
	}
	if !repo.Exists(ctx, "alpha") {
		t.Error("Exists = false after save")
	}

	if err := repo.Delete(ctx, "alpha"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if repo.Exists(ctx, "alpha") {
		t.Error("Exists = true after delete")
	}
	if err := repo.Delete(ctx, "alpha"); err == nil {
		t.Error("expected error deleting a missing draft")
	}
}

func TestDraftRepository_SaveOverwrites(t *testing.T) {
	repo := NewDraftRepository(testWorkspace(t))
	ctx := context.Background()

	first := testDraft()
	if err := repo.Save(ctx, "alpha", first); err != nil {
		t.Fatal(err)
	}

	second := testDraft()
	second.TotalTokens = "2500"
	if err := repo.Save(ctx, "alpha", second); err != nil {
		t.Fatal(err)
	}

	got, err := repo.Get(ctx, "alpha")
	if err != nil {
		t.Fatal(err)
	}
	if got.TotalTokens != "2500" {
		t.Errorf("TotalTokens = %q, want 2500", got.TotalTokens)
	}
}

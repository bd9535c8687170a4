package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"svw.info/squaredaway/internal/domain"
	"svw.info/squaredaway/internal/ports"
)

var _ ports.Storage = (*FS)(nil)
var _ ports.Storage = (*SQLite)(nil)

func testPuzzle(id string, width, height int) *domain.Puzzle {
	return &domain.Puzzle{
		ID:     id,
		Name:   "fixture " + id,
		Width:  width,
		Height: height,
		Shading: domain.ClueSet{
			Rows: []domain.Clue{{1}},
			Cols: []domain.Clue{{1}},
		},
		Erasing: domain.ClueSet{
			Rows: []domain.Clue{{0}},
			Cols: []domain.Clue{{0}},
		},
		Solution:  []string{"1"},
		CreatedAt: 1700000000,
	}
}

// storageRoundTrip exercises the Storage contract shared by both
// backends.
func storageRoundTrip(t *testing.T, s ports.Storage) {
	t.Helper()
	ctx := context.Background()

	p := testPuzzle("p-one", 1, 1)
	if err := s.Save(ctx, p); err != nil {
		t.Fatal(err)
	}

	got, err := s.Load(ctx, "p-one")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, p) {
		t.Fatalf("loaded puzzle differs:\ngot  %+v\nwant %+v", got, p)
	}

	if _, err := s.Load(ctx, "nope"); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing puzzle: err = %v, want ErrNotExist", err)
	}

	if err := s.Save(ctx, &domain.Puzzle{}); err == nil {
		t.Fatal("puzzle without ID accepted")
	}

	// Save is an upsert.
	p.Name = "renamed"
	if err := s.Save(ctx, p); err != nil {
		t.Fatal(err)
	}
	got, err = s.Load(ctx, "p-one")
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "renamed" {
		t.Fatalf("upsert lost the rename: %q", got.Name)
	}

	metas, err := s.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(metas) != 1 || metas[0].ID != "p-one" || metas[0].Name != "renamed" {
		t.Fatalf("List = %+v", metas)
	}
}

func TestFSRoundTrip(t *testing.T) {
	storageRoundTrip(t, NewFS(t.TempDir()))
}

func TestFSBucketsBySize(t *testing.T) {
	dir := t.TempDir()
	s := NewFS(dir)
	ctx := context.Background()

	small := testPuzzle("tiny", 5, 5)
	large := testPuzzle("huge", 30, 30)
	if err := s.Save(ctx, small); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(ctx, large); err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(filepath.Join(dir, "small", "tiny.json")); err != nil {
		t.Errorf("small puzzle not in small/: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "large", "huge.json")); err != nil {
		t.Errorf("large puzzle not in large/: %v", err)
	}

	metas, err := s.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(metas) != 2 {
		t.Fatalf("List found %d puzzles, want 2", len(metas))
	}
}

func TestFSLoadsLegacyFlatFiles(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	// A file saved before bucketing lives directly under the root.
	if err := NewFS(dir).Save(ctx, testPuzzle("old", 3, 3)); err != nil {
		t.Fatal(err)
	}
	legacy := filepath.Join(dir, "old.json")
	if err := os.Rename(filepath.Join(dir, "small", "old.json"), legacy); err != nil {
		t.Fatal(err)
	}

	got, err := NewFS(dir).Load(ctx, "old")
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != "old" {
		t.Fatalf("loaded %q", got.ID)
	}
}

func TestSQLiteRoundTrip(t *testing.T) {
	s, err := NewSQLite(filepath.Join(t.TempDir(), "puzzles.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	storageRoundTrip(t, s)
}

func TestSQLiteListOrdersByCreation(t *testing.T) {
	s, err := NewSQLite(filepath.Join(t.TempDir(), "puzzles.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	ctx := context.Background()

	older := testPuzzle("older", 3, 3)
	older.CreatedAt = 100
	newer := testPuzzle("newer", 3, 3)
	newer.CreatedAt = 200
	if err := s.Save(ctx, older); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(ctx, newer); err != nil {
		t.Fatal(err)
	}

	metas, err := s.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(metas) != 2 || metas[0].ID != "newer" || metas[1].ID != "older" {
		t.Fatalf("List = %+v, want newest first", metas)
	}
}

func TestSQLiteReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "puzzles.db")
	ctx := context.Background()

	s, err := NewSQLite(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Save(ctx, testPuzzle("keep", 3, 3)); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s, err = NewSQLite(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	got, err := s.Load(ctx, "keep")
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != "keep" {
		t.Fatalf("loaded %q after reopen", got.ID)
	}
}

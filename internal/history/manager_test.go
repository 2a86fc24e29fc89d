package history

import (
	"errors"
	"testing"
)

func TestManagerAddAndGet(t *testing.T) {
	m := NewManager(10)
	b := newBlock("git status")
	m.AddBlock(b)

	if got := m.Get(b.ID); got == nil || got.ID != b.ID {
		t.Error("Get() did not return the added block")
	}
	if len(m.Blocks()) != 1 {
		t.Errorf("Blocks() length = %d, want 1", len(m.Blocks()))
	}
}

func TestManagerToggleBookmark(t *testing.T) {
	m := NewManager(10)
	b := newBlock("ls")
	m.AddBlock(b)

	if err := m.ToggleBookmark(b.ID); err != nil {
		t.Fatalf("ToggleBookmark() error = %v", err)
	}
	if !b.IsBookmarked() {
		t.Error("block should be bookmarked after toggle")
	}

	if err := m.ToggleBookmark(b.ID); err != nil {
		t.Fatalf("second ToggleBookmark() error = %v", err)
	}
	if b.IsBookmarked() {
		t.Error("toggle twice should restore the original bookmark state")
	}
}

func TestManagerToggleBookmarkNotFound(t *testing.T) {
	m := NewManager(10)
	b := newBlock("ls")
	m.AddBlock(b)

	err := m.ToggleBookmark("nonexistent-id")
	if !errors.Is(err, ErrBlockNotFound) {
		t.Fatalf("ToggleBookmark() error = %v, want ErrBlockNotFound", err)
	}

	// History untouched by the failed toggle.
	if len(m.Blocks()) != 1 || b.IsBookmarked() {
		t.Error("failed toggle must leave history unchanged")
	}
}

func TestManagerSearchAndBookmarked(t *testing.T) {
	m := NewManager(10)
	a := newBlock("git pull")
	b := newBlock("make test")
	m.AddBlock(a)
	m.AddBlock(b)

	if got := m.Search("git"); len(got) != 1 || got[0].ID != a.ID {
		t.Error("Search() through manager returned wrong result")
	}

	if err := m.ToggleBookmark(b.ID); err != nil {
		t.Fatalf("ToggleBookmark() error = %v", err)
	}
	if got := m.Bookmarked(); len(got) != 1 || got[0].ID != b.ID {
		t.Error("Bookmarked() through manager returned wrong result")
	}
}

func TestManagerNavigation(t *testing.T) {
	m := NewManager(10)
	a := newBlock("first")
	b := newBlock("second")
	m.AddBlock(a)
	m.AddBlock(b)

	if got := m.NavigateUp(); got == nil || got.ID != b.ID {
		t.Error("NavigateUp() through manager should land on the newest block")
	}
	if got := m.NavigateUp(); got == nil || got.ID != a.ID {
		t.Error("NavigateUp() should move to the older block")
	}
	if got := m.NavigateDown(); got == nil || got.ID != b.ID {
		t.Error("NavigateDown() should move back toward the newest block")
	}
}

func TestManagerHistoryAccess(t *testing.T) {
	m := NewManager(7)
	if m.History() == nil {
		t.Fatal("History() should expose the underlying history")
	}
	if m.History().maxSize != 7 {
		t.Errorf("underlying maxSize = %d, want 7", m.History().maxSize)
	}
}

package ui

import (
	"testing"

	"github.com/five82/skinnova/internal/view"
)

func TestScreenRegionVisibility(t *testing.T) {
	s := NewScreen(view.PageCart)

	if _, ok := s.Region(view.RegionCartSummary); ok {
		t.Fatalf("unwritten region reported visible")
	}

	s.Replace(view.RegionCartSummary, "summary")
	if got, ok := s.Region(view.RegionCartSummary); !ok || got != "summary" {
		t.Fatalf("Region = (%q, %v), want (summary, true)", got, ok)
	}

	s.Show(view.RegionCartSummary, false)
	if _, ok := s.Region(view.RegionCartSummary); ok {
		t.Fatalf("hidden region reported visible")
	}

	s.Show(view.RegionCartSummary, true)
	if _, ok := s.Region(view.RegionCartSummary); !ok {
		t.Fatalf("shown region reported hidden")
	}
}

func TestScreenCursor(t *testing.T) {
	s := NewScreen(view.PageHome)

	s.MoveCursor(5, 3)
	if got := s.Cursor(); got != 2 {
		t.Fatalf("Cursor = %d, want 2", got)
	}
	s.MoveCursor(-10, 3)
	if got := s.Cursor(); got != 0 {
		t.Fatalf("Cursor = %d, want 0", got)
	}
	s.MoveCursor(2, 3)
	s.ClampCursor(1)
	if got := s.Cursor(); got != 0 {
		t.Fatalf("Cursor after clamp = %d, want 0", got)
	}

	s.MoveCursor(1, 3)
	s.SetPage(view.PageWishlist)
	if s.Cursor() != 0 || s.ActivePage() != view.PageWishlist {
		t.Fatalf("SetPage did not reset cursor or page")
	}
}

func TestScreenWishlistIndicators(t *testing.T) {
	s := NewScreen(view.PageHome)
	s.SetWishlistActive("p1", true)
	if !s.WishlistActive("p1") || s.WishlistActive("p2") {
		t.Fatalf("wishlist indicators wrong")
	}
}

// Screen must satisfy the synchronizer's contract.
var _ view.Surface = (*Screen)(nil)

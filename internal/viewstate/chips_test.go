package viewstate

import "testing"

func TestDefaultChipsPage(t *testing.T) {
	// Before the split the second-half slots face the viewer, after it
	// the first-half ones do.
	if got := DefaultChipsPage(12); got != 1 {
		t.Fatalf("DefaultChipsPage(12) = %d, want 1", got)
	}
	if got := DefaultChipsPage(22); got != 0 {
		t.Fatalf("DefaultChipsPage(22) = %d, want 0", got)
	}
}

func TestChipsPagerSwipe(t *testing.T) {
	pager := NewChipsPager(22)

	if got := pager.Swipe(-39); got != 0 {
		t.Fatalf("below-threshold swipe moved to page %d", got)
	}
	if got := pager.Swipe(-40); got != 1 {
		t.Fatalf("leftward swipe = page %d, want 1", got)
	}
	// Clamped, no wrap.
	if got := pager.Swipe(-120); got != 1 {
		t.Fatalf("swipe past the end = page %d, want 1", got)
	}
	if got := pager.Swipe(55); got != 0 {
		t.Fatalf("rightward swipe = page %d, want 0", got)
	}
	if got := pager.Swipe(55); got != 0 {
		t.Fatalf("swipe past the start = page %d, want 0", got)
	}
}

func TestChipsPagerSelect(t *testing.T) {
	pager := NewChipsPager(3)
	if pager.Page() != 1 {
		t.Fatalf("start page = %d, want 1", pager.Page())
	}
	if got := pager.Select(0); got != 0 {
		t.Fatalf("Select(0) = %d", got)
	}
	if got := pager.Select(7); got != 1 {
		t.Fatalf("Select(7) = %d, want clamp to 1", got)
	}
	if got := pager.Select(-2); got != 0 {
		t.Fatalf("Select(-2) = %d, want clamp to 0", got)
	}
}

package viewstate

import "testing"

func TestPrefsThemeRoundTrip(t *testing.T) {
	store := openTestStore(t)

	prefs := NewPrefs(store)
	if prefs.Theme() != ThemeSystem {
		t.Fatalf("default theme = %q", prefs.Theme())
	}

	if err := prefs.SetTheme(ThemeDark); err != nil {
		t.Fatalf("SetTheme: %v", err)
	}
	if err := store.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	reloaded := NewPrefs(store)
	if reloaded.Theme() != ThemeDark {
		t.Fatalf("reloaded theme = %q, want dark", reloaded.Theme())
	}
}

func TestPrefsRejectsUnknownTheme(t *testing.T) {
	prefs := NewPrefs(nil)
	if err := prefs.SetTheme("sepia"); err == nil {
		t.Fatal("unknown theme accepted")
	}
	if prefs.Theme() != ThemeSystem {
		t.Fatalf("theme changed to %q on rejected input", prefs.Theme())
	}
}

func TestMatchCardsToggle(t *testing.T) {
	var cards MatchCards

	if got := cards.Toggle(2203); got != 2203 {
		t.Fatalf("Toggle = %d, want 2203", got)
	}
	// A different card replaces the expansion.
	if got := cards.Toggle(2204); got != 2204 {
		t.Fatalf("Toggle = %d, want 2204", got)
	}
	// Second tap collapses.
	if got := cards.Toggle(2204); got != 0 {
		t.Fatalf("Toggle = %d, want collapsed", got)
	}

	cards.Toggle(2201)
	cards.Collapse()
	if cards.Expanded() != 0 {
		t.Fatal("Collapse left a fixture expanded")
	}
}

package viewstate

import "testing"

func TestParseSubpage(t *testing.T) {
	got, err := ParseSubpage("")
	if err != nil || got != SubpageMatches {
		t.Fatalf("ParseSubpage(\"\") = %v, %v", got, err)
	}
	got, err = ParseSubpage("feed")
	if err != nil || got != SubpageFeed {
		t.Fatalf("ParseSubpage(feed) = %v, %v", got, err)
	}
	if _, err := ParseSubpage("settings"); err == nil {
		t.Fatal("unknown view accepted")
	}
}

func TestNavTranslation(t *testing.T) {
	nav := Nav(SubpageDefcon)
	if nav.Index != 2 {
		t.Fatalf("index = %d, want 2", nav.Index)
	}
	if nav.TranslateX != -50 {
		t.Fatalf("translateX = %v, want -50", nav.TranslateX)
	}
	if len(nav.Subpages) != 4 || nav.Subpages[0] != SubpageMatches {
		t.Fatalf("subpages = %v", nav.Subpages)
	}

	first := Nav(SubpageMatches)
	if first.Index != 0 || first.TranslateX != 0 {
		t.Fatalf("matches nav = %+v", first)
	}
}

package feed

import (
	"testing"
	"time"
)

func intPtr(v int) *int { return &v }

func TestImpactLeagueOfFour(t *testing.T) {
	// Viewer captains the player, two managers start him, one benches
	// him. A +3 event should come out a full +3.0 ahead of the league.
	got := Impact(3, intPtr(2), []int{2, 1, 1, 0})
	if got == nil {
		t.Fatal("Impact returned nil for a known league")
	}
	if *got != 3.0 {
		t.Fatalf("Impact = %v, want 3.0", *got)
	}
}

func TestImpactNegativeForUnownedPlayer(t *testing.T) {
	// Viewer does not own the scorer; everyone else starts him.
	got := Impact(6, intPtr(0), []int{0, 1, 1, 1})
	if got == nil {
		t.Fatal("Impact returned nil for a known league")
	}
	if *got != -4.5 {
		t.Fatalf("Impact = %v, want -4.5", *got)
	}
}

func TestImpactRoundsToOneDecimal(t *testing.T) {
	got := Impact(1, intPtr(1), []int{1, 1, 0})
	if got == nil {
		t.Fatal("Impact returned nil for a known league")
	}
	if *got != 0.3 {
		t.Fatalf("Impact = %v, want 0.3", *got)
	}
}

func TestImpactUnknownInputs(t *testing.T) {
	if got := Impact(3, nil, []int{1, 1}); got != nil {
		t.Fatalf("Impact with unknown viewer = %v, want nil", *got)
	}
	if got := Impact(3, intPtr(2), nil); got != nil {
		t.Fatalf("Impact with unknown league = %v, want nil", *got)
	}
}

func TestSortEventsOrdering(t *testing.T) {
	early := time.Date(2026, 8, 15, 15, 0, 0, 0, time.UTC)
	late := time.Date(2026, 8, 16, 16, 30, 0, 0, time.UTC)
	kickoffs := map[int64]time.Time{100: early, 101: late}

	events := []Event{
		{ID: 1, FixtureID: 100, OccurredAt: early.Add(20 * time.Minute)},
		{ID: 2, FixtureID: 101, OccurredAt: late.Add(5 * time.Minute)},
		{ID: 3, FixtureID: 100, OccurredAt: early.Add(70 * time.Minute)},
		{ID: 4, FixtureID: 101, OccurredAt: late.Add(5 * time.Minute)},
		{ID: 5, FixtureID: 999, OccurredAt: late.Add(90 * time.Minute)},
	}

	sorted := SortEvents(events, kickoffs)

	// Later kickoff first, then occurredAt desc within fixture, ID
	// desc on timestamp ties, unknown fixtures last.
	wantIDs := []int64{4, 2, 3, 1, 5}
	for i, id := range wantIDs {
		if sorted[i].ID != id {
			t.Fatalf("sorted[%d].ID = %d, want %d", i, sorted[i].ID, id)
		}
	}
}

func TestSortEventsIsTotal(t *testing.T) {
	kickoff := time.Date(2026, 8, 15, 15, 0, 0, 0, time.UTC)
	kickoffs := map[int64]time.Time{100: kickoff, 101: kickoff}

	at := kickoff.Add(30 * time.Minute)
	events := []Event{
		{ID: 7, FixtureID: 100, OccurredAt: at},
		{ID: 9, FixtureID: 101, OccurredAt: at},
		{ID: 8, FixtureID: 100, OccurredAt: at},
	}

	once := SortEvents(events, kickoffs)
	twice := SortEvents(once, kickoffs)
	for i := range once {
		if once[i].ID != twice[i].ID {
			t.Fatalf("sorting twice changed position %d: %d vs %d", i, once[i].ID, twice[i].ID)
		}
	}
	if once[0].ID != 9 || once[1].ID != 8 || once[2].ID != 7 {
		t.Fatalf("tied timestamps should fall back to ID desc, got %d,%d,%d", once[0].ID, once[1].ID, once[2].ID)
	}
}

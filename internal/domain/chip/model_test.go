package chip

import "testing"

func TestUsageFromPlays(t *testing.T) {
	plays := []Play{
		{Name: "wildcard", Gameweek: 3},
		{Name: "bboost", Gameweek: 9},
		{Name: "wildcard", Gameweek: 22},
	}

	usage := UsageFromPlays(plays)

	if len(usage) != 3 {
		t.Fatalf("usage size = %d, want 3", len(usage))
	}
	if usage[SlotWildcard] != 3 {
		t.Fatalf("wc1 = %d, want 3", usage[SlotWildcard])
	}
	if usage[SlotBenchBoost] != 9 {
		t.Fatalf("bb = %d, want 9", usage[SlotBenchBoost])
	}
	if usage[SlotWildcard2] != 22 {
		t.Fatalf("wc2 = %d, want 22", usage[SlotWildcard2])
	}
	if _, ok := usage[SlotFreeHit]; ok {
		t.Fatal("fh must stay absent")
	}
	if err := usage.Validate(); err != nil {
		t.Fatalf("valid usage rejected: %v", err)
	}
}

func TestUsageFromPlaysNormalizesNames(t *testing.T) {
	usage := UsageFromPlays([]Play{
		{Name: "Bench_Boost", Gameweek: 5},
		{Name: "TRIPLE_CAPTAIN", Gameweek: 26},
		{Name: "mystery", Gameweek: 7},
	})

	if usage[SlotBenchBoost] != 5 {
		t.Fatalf("bb = %d, want 5", usage[SlotBenchBoost])
	}
	if usage[SlotTripleCaptain2] != 26 {
		t.Fatalf("tc2 = %d, want 26", usage[SlotTripleCaptain2])
	}
	if len(usage) != 2 {
		t.Fatalf("unknown chip names must be dropped, got %v", usage)
	}
}

func TestUsageValidate(t *testing.T) {
	good := Usage{SlotWildcard: 8, SlotFreeHit: 12, SlotWildcard2: 28}
	if err := good.Validate(); err != nil {
		t.Fatalf("cross-half reuse of a gameweek number is fine, got %v", err)
	}

	sameHalf := Usage{SlotWildcard: 8, SlotFreeHit: 8}
	if err := sameHalf.Validate(); err == nil {
		t.Fatal("two first-half slots cannot share a gameweek")
	}

	wrongHalf := Usage{SlotWildcard2: 8}
	if err := wrongHalf.Validate(); err == nil {
		t.Fatal("a second-half slot cannot record a first-half gameweek")
	}
}

func TestTripleCaptainActiveAt(t *testing.T) {
	usage := Usage{SlotTripleCaptain: 6, SlotTripleCaptain2: 31}

	if !usage.TripleCaptainActiveAt(6) || !usage.TripleCaptainActiveAt(31) {
		t.Fatal("expected triple captain active in both recorded gameweeks")
	}
	if usage.TripleCaptainActiveAt(7) {
		t.Fatal("triple captain must be inactive outside its gameweeks")
	}
}

package pick

import "testing"

func TestEffectiveMultiplier(t *testing.T) {
	tests := []struct {
		name string
		pick Pick
		tc   bool
		want int
	}{
		{name: "plain starter", pick: Pick{Position: 5, Multiplier: 1}, want: 1},
		{name: "captain encoded", pick: Pick{Position: 3, Multiplier: 2, IsCaptain: true}, want: 2},
		{name: "captain inferred", pick: Pick{Position: 3, Multiplier: 1, IsCaptain: true}, want: 2},
		{name: "triple captain keeps stored value", pick: Pick{Position: 3, Multiplier: 1, IsCaptain: true}, tc: true, want: 1},
		{name: "triple captain encoded", pick: Pick{Position: 3, Multiplier: 3, IsCaptain: true}, tc: true, want: 3},
		{name: "benched", pick: Pick{Position: 13, Multiplier: 0}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pick.EffectiveMultiplier(tt.tc); got != tt.want {
				t.Fatalf("EffectiveMultiplier = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMultiplierFor(t *testing.T) {
	picks := []Pick{
		{PlayerID: 10, Position: 1, Multiplier: 1},
		{PlayerID: 20, Position: 2, Multiplier: 2, IsCaptain: true},
		{PlayerID: 30, Position: 13, Multiplier: 0},
	}

	if got := MultiplierFor(picks, 10, false); got != 1 {
		t.Fatalf("starter multiplier = %d, want 1", got)
	}
	if got := MultiplierFor(picks, 20, false); got != 2 {
		t.Fatalf("captain multiplier = %d, want 2", got)
	}
	if got := MultiplierFor(picks, 30, false); got != 0 {
		t.Fatalf("bench multiplier = %d, want 0", got)
	}
	if got := MultiplierFor(picks, 99, false); got != 0 {
		t.Fatalf("unowned multiplier = %d, want 0", got)
	}
}

func TestEffectivePointsReversesAutoSub(t *testing.T) {
	points := map[int64]int{10: 2, 55: 8}

	subbedIn := Pick{PlayerID: 10, Position: 11, Multiplier: 1, AutoSubbedIn: true, ReplacedPlayerID: 55}
	if got := subbedIn.EffectivePoints(points, false); got != 8 {
		t.Fatalf("auto-sub reversal points = %d, want replaced player's 8", got)
	}

	captainSub := Pick{PlayerID: 10, Position: 11, Multiplier: 2, IsCaptain: true, AutoSubbedIn: true, ReplacedPlayerID: 55}
	if got := captainSub.EffectivePoints(points, false); got != 16 {
		t.Fatalf("pick multiplier stays authoritative through the sub, got %d want 16", got)
	}

	plain := Pick{PlayerID: 10, Position: 4, Multiplier: 1}
	if got := plain.EffectivePoints(points, false); got != 2 {
		t.Fatalf("plain points = %d, want 2", got)
	}
}

func TestStreaks(t *testing.T) {
	tests := []struct {
		name string
		in   []int
		want string
	}{
		{name: "empty", in: nil, want: ""},
		{name: "single", in: []int{7}, want: "7"},
		{name: "one run", in: []int{3, 4, 5}, want: "3-5"},
		{name: "runs and singles", in: []int{1, 2, 3, 7, 10, 11}, want: "1-3,7,10-11"},
		{name: "unsorted with duplicates", in: []int{11, 10, 10, 2, 1, 3}, want: "1-3,10-11"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Streaks(tt.in); got != tt.want {
				t.Fatalf("Streaks(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestLeaguePicksByManager(t *testing.T) {
	league := LeaguePicks{
		Picks: []Pick{
			{ManagerID: 1, PlayerID: 10, Position: 1},
			{ManagerID: 1, PlayerID: 11, Position: 2},
			{ManagerID: 2, PlayerID: 10, Position: 1},
		},
		ManagerCount: 2,
	}

	grouped := league.ByManager()
	if len(grouped) != 2 || len(grouped[1]) != 2 || len(grouped[2]) != 1 {
		t.Fatalf("unexpected grouping: %v", grouped)
	}
}

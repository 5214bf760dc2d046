package player

import "testing"

func TestDefconThreshold(t *testing.T) {
	tests := []struct {
		position Position
		want     int
	}{
		{PositionGoalkeeper, DefconNotApplicable},
		{PositionDefender, 10},
		{PositionMidfielder, 12},
		{PositionForward, 12},
		{Position(0), DefconNotApplicable},
		{Position(7), DefconNotApplicable},
	}

	for _, tt := range tests {
		if got := tt.position.DefconThreshold(); got != tt.want {
			t.Fatalf("DefconThreshold(%d) = %d, want %d", tt.position, got, tt.want)
		}
	}
}

func TestPositionLabel(t *testing.T) {
	tests := []struct {
		position Position
		want     string
	}{
		{PositionGoalkeeper, "GK"},
		{PositionDefender, "DEF"},
		{PositionMidfielder, "MID"},
		{PositionForward, "FWD"},
		{Position(5), ""},
	}

	for _, tt := range tests {
		if got := tt.position.Label(); got != tt.want {
			t.Fatalf("Label(%d) = %q, want %q", tt.position, got, tt.want)
		}
	}
}

func TestPlayerValidate(t *testing.T) {
	valid := Player{ID: 427, WebName: "Haaland", Position: PositionForward, TeamID: 13}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid player, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Player)
	}{
		{name: "missing id", mutate: func(p *Player) { p.ID = 0 }},
		{name: "missing name", mutate: func(p *Player) { p.WebName = "" }},
		{name: "bad position", mutate: func(p *Player) { p.Position = 9 }},
		{name: "missing team", mutate: func(p *Player) { p.TeamID = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			if err := p.Validate(); err == nil {
				t.Fatal("expected validation error, got nil")
			}
		})
	}
}

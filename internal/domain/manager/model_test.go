package manager

import (
	"testing"

	"github.com/fplpulse/fplpulse/internal/domain/stat"
)

func TestParsePerformanceWindow(t *testing.T) {
	tests := []struct {
		in      string
		want    PerformanceWindow
		wantErr bool
	}{
		{in: "all", want: WindowAll},
		{in: "last6", want: WindowLast6},
		{in: "last12", want: WindowLast12},
		{in: "", want: WindowAll},
		{in: "last3", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParsePerformanceWindow(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("ParsePerformanceWindow(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParsePerformanceWindow(%q) unexpected error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParsePerformanceWindow(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	if WindowLast6.Gameweeks() != 6 || WindowLast12.Gameweeks() != 12 || WindowAll.Gameweeks() != 0 {
		t.Fatal("unexpected window sizes")
	}
}

func TestValidPerformanceKey(t *testing.T) {
	for _, key := range []stat.Key{stat.KeyPoints, stat.KeyBPS, stat.KeyGoals, stat.KeyAssists} {
		if !ValidPerformanceKey(key) {
			t.Fatalf("%s should be a valid performance key", key)
		}
	}
	if ValidPerformanceKey(stat.KeyExpectedConceded) {
		t.Fatal("xGC is not a performance chart key")
	}
}

func TestTransferImpactNet(t *testing.T) {
	impact := TransferImpact{PlayerInPoints: 9, PlayerOutPoints: 2, HitCost: 4}
	if got := impact.Net(); got != 3 {
		t.Fatalf("Net = %d, want 3", got)
	}

	free := TransferImpact{PlayerInPoints: 2, PlayerOutPoints: 8}
	if got := free.Net(); got != -6 {
		t.Fatalf("Net = %d, want -6", got)
	}
}

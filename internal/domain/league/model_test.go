package league

import "testing"

func TestTransferSummaryCap(t *testing.T) {
	var in []TransferCount
	for i := 0; i < 20; i++ {
		in = append(in, TransferCount{PlayerID: int64(i + 1), WebName: string(rune('A' + i)), Count: i})
	}

	capped := TransferSummary{In: in}.Cap()
	if len(capped.In) != TopTransfersLimit {
		t.Fatalf("capped to %d entries, want %d", len(capped.In), TopTransfersLimit)
	}
	if capped.In[0].Count != 19 {
		t.Fatalf("first entry count = %d, want 19", capped.In[0].Count)
	}
	if capped.In[len(capped.In)-1].Count != 5 {
		t.Fatalf("last entry count = %d, want 5", capped.In[len(capped.In)-1].Count)
	}
	// Input untouched.
	if in[0].Count != 0 {
		t.Fatal("Cap mutated its input")
	}
}

func TestTransferSummaryCapTiesByName(t *testing.T) {
	summary := TransferSummary{
		Out: []TransferCount{
			{PlayerID: 1, WebName: "Salah", Count: 4},
			{PlayerID: 2, WebName: "Haaland", Count: 4},
			{PlayerID: 3, WebName: "Isak", Count: 7},
		},
	}

	capped := summary.Cap()
	want := []string{"Isak", "Haaland", "Salah"}
	for i, name := range want {
		if capped.Out[i].WebName != name {
			t.Fatalf("out[%d] = %s, want %s", i, capped.Out[i].WebName, name)
		}
	}
}

func TestStandingMovement(t *testing.T) {
	tests := []struct {
		name string
		s    Standing
		want int
	}{
		{name: "climbed", s: Standing{Rank: 2, LastRank: 5}, want: 3},
		{name: "dropped", s: Standing{Rank: 7, LastRank: 4}, want: -3},
		{name: "held", s: Standing{Rank: 3, LastRank: 3}, want: 0},
		{name: "new entry", s: Standing{Rank: 3, LastRank: 0}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.Movement(); got != tt.want {
				t.Fatalf("Movement = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSortCaptainCounts(t *testing.T) {
	counts := []CaptainCount{
		{PlayerID: 1, WebName: "Salah", Count: 3},
		{PlayerID: 2, WebName: "Haaland", Count: 8},
		{PlayerID: 3, WebName: "Palmer", Count: 3},
	}

	sorted := SortCaptainCounts(counts)
	want := []string{"Haaland", "Palmer", "Salah"}
	for i, name := range want {
		if sorted[i].WebName != name {
			t.Fatalf("sorted[%d] = %s, want %s", i, sorted[i].WebName, name)
		}
	}
}

package team

import "testing"

func TestAbbreviate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "short name unchanged", in: "Arsenal", want: "Arsenal"},
		{name: "exactly ten unchanged", in: "Sunderland", want: "Sunderland"},
		{name: "eleven truncates", in: "Aston Villa", want: "Aston Vil…"},
		{name: "long name truncates", in: "Wolverhampton Wanderers", want: "Wolverham…"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Abbreviate(tt.in)
			if got != tt.want {
				t.Fatalf("Abbreviate(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if len([]rune(tt.in)) > abbreviateLimit {
				if got := len([]rune(got)); got != abbreviateLimit {
					t.Fatalf("abbreviated length = %d, want %d", got, abbreviateLimit)
				}
			}
		})
	}
}

package view

import "testing"

func fptr(v float64) *float64 { return &v }

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		name string
		in   *float64
		want string
	}{
		{"nil", nil, "—"},
		{"plain", fptr(999), "999"},
		{"zero", fptr(0), "0"},
		{"thousands", fptr(1234), "1.2K"},
		{"large thousands", fptr(152431), "152.4K"},
		{"millions", fptr(1_000_000), "1.0M"},
		{"mid millions", fptr(6_920_000), "6.9M"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatNumber(tc.in); got != tc.want {
				t.Fatalf("FormatNumber = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFormatNumberTwoDecimals(t *testing.T) {
	cases := []struct {
		name string
		in   *float64
		want string
	}{
		{"nil", nil, "—"},
		{"plain", fptr(999), "999"},
		{"thousands", fptr(88_012), "88.01K"},
		{"millions", fptr(6_920_000), "6.92M"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatNumberTwoDecimals(tc.in); got != tc.want {
				t.Fatalf("FormatNumberTwoDecimals = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFormatInt64(t *testing.T) {
	if got := FormatInt64(nil); got != "—" {
		t.Fatalf("FormatInt64(nil) = %q, want em-dash", got)
	}
	rank := int64(152431)
	if got := FormatInt64(&rank); got != "152.4K" {
		t.Fatalf("FormatInt64 = %q, want 152.4K", got)
	}
}

func TestFormatPrice(t *testing.T) {
	cases := []struct {
		name string
		in   *float64
		want string
	}{
		{"nil", nil, "—"},
		{"team value", fptr(102.7), "£102.7M"},
		{"whole number drops decimal", fptr(100), "£100M"},
		{"upper band", fptr(105.5), "£105.5M"},
		{"raw backend value", fptr(105_500_000), "£105.5M"},
		{"bank balance", fptr(1.3), "£1.3M"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatPrice(tc.in); got != tc.want {
				t.Fatalf("FormatPrice = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestAbbreviateTeamName(t *testing.T) {
	if got := AbbreviateTeamName("Manchester City"); got != "Mancheste…" {
		t.Fatalf("AbbreviateTeamName = %q, want Mancheste…", got)
	}
	if got := AbbreviateTeamName("Arsenal"); got != "Arsenal" {
		t.Fatalf("AbbreviateTeamName = %q, want Arsenal unchanged", got)
	}
}

package utils

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Café Premium", "cafe-premium"},
		{"Hash", "hash"},
		{"  Gelato   41  ", "gelato-41"},
		{"Crème Brûlée!!", "creme-brulee"},
		{"--already--slugged--", "already-slugged"},
		{"ÉÀÜ", "eau"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	for _, in := range []string{"Café Premium", "Weed Import", "Hash 2.0"} {
		once := Slugify(in)
		if twice := Slugify(once); twice != once {
			t.Errorf("Slugify not idempotent: %q -> %q -> %q", in, once, twice)
		}
	}
}

func TestFCurrency(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{35, "35"},
		{12.5, "12.5"},
		{12.349, "12.35"},
		{1250, "1,250"},
	}

	for _, tt := range tests {
		if got := FCurrency(tt.in); got != tt.want {
			t.Errorf("FCurrency(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

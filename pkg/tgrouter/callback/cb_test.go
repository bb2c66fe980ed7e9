package callback

import "testing"

func TestRoundTrip(t *testing.T) {
	tests := []CallbackData{
		{Query: "product", Value: "seed-cali-x"},
		{Query: "cart"},
		{Query: "category", Value: "hash"},
		{Query: "noop"},
	}

	for _, cd := range tests {
		data := cd.String()
		if got := Query(data); got != cd.Query {
			t.Fatalf("Query(%q) = %q, want %q", data, got, cd.Query)
		}
		if got := Value(data); got != cd.Value {
			t.Fatalf("Value(%q) = %q, want %q", data, got, cd.Value)
		}
	}
}

func TestMalformedData(t *testing.T) {
	for _, data := range []string{"", "cart", "value:only", "query:cart"} {
		if got := Query(data); got != "" {
			t.Fatalf("Query(%q) = %q, want empty", data, got)
		}
		if got := Value(data); got != "" {
			t.Fatalf("Value(%q) = %q, want empty", data, got)
		}
	}
}

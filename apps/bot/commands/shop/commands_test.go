package shop

import (
	"testing"

	"vershash/internal/structs"
)

func TestCartItemCarriesTierLabel(t *testing.T) {
	p := structs.Product{
		ID:      "p1",
		Name:    "Cali X",
		Price:   50,
		Pricing: []structs.PriceTier{{Label: "10g", Price: 90}, {Label: "5g", Price: 50}},
	}

	item := cartItem(p)
	if item.Name != "Cali X (5g)" {
		t.Fatalf("expected cheapest tier label in name, got %q", item.Name)
	}
	if item.Price != 50 {
		t.Fatalf("expected cheapest tier price, got %v", item.Price)
	}
	if item.Quantity != 1 {
		t.Fatalf("expected quantity 1, got %d", item.Quantity)
	}
}

func TestCartItemFlatPrice(t *testing.T) {
	item := cartItem(structs.Product{ID: "p2", Name: "Amnesia", Price: 35})

	if item.Name != "Amnesia" {
		t.Fatalf("flat-priced product must keep its bare name, got %q", item.Name)
	}
	if item.Price != 35 {
		t.Fatalf("expected flat price, got %v", item.Price)
	}
}

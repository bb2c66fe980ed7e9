package structs

import "testing"

func TestDisplayPriceUsesCheapestTier(t *testing.T) {
	p := Product{
		Price: 50,
		Pricing: []PriceTier{
			{Label: "10g", Price: 90},
			{Label: "5g", Price: 50},
			{Label: "25g", Price: 200},
		},
	}

	if got := p.DisplayPrice(); got != 50 {
		t.Fatalf("expected cheapest tier 50, got %v", got)
	}
}

func TestDisplayPriceFallsBackToFlatPrice(t *testing.T) {
	p := Product{Price: 35}
	if got := p.DisplayPrice(); got != 35 {
		t.Fatalf("expected flat price 35, got %v", got)
	}
}

func TestSanitizePricingDropsIncompleteTiers(t *testing.T) {
	req := CreateProduct{
		Pricing: []PriceTier{
			{Label: "5g", Price: 40},
			{Label: "", Price: 75},
			{Label: "10g", Price: 0},
			{Label: "25g", Price: -3},
			{Label: "50g", Price: 300},
		},
	}

	req.SanitizePricing()

	if len(req.Pricing) != 2 {
		t.Fatalf("expected 2 surviving tiers, got %d: %+v", len(req.Pricing), req.Pricing)
	}
	if req.Pricing[0].Label != "5g" || req.Pricing[1].Label != "50g" {
		t.Fatalf("wrong tiers kept: %+v", req.Pricing)
	}
}

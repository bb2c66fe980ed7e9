package structs

import "time"

type PriceTier struct {
	Label string  `json:"label"`
	Price float64 `json:"price"`
}

type Product struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Price       float64     `json:"price"`
	Pricing     []PriceTier `json:"pricing,omitempty"`
	Category    string      `json:"category"`
	Description string      `json:"description,omitempty"`
	Image       string      `json:"image"`
	Video       string      `json:"video,omitempty"`
	Images      []string    `json:"images,omitempty"`
	Quantity    int64       `json:"quantity"`
	Available   bool        `json:"available"`
	Tag         string      `json:"tag,omitempty"`
	TagColor    string      `json:"tag_color,omitempty"`
	Origin      string      `json:"origin,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// CheapestTier reports the lowest-priced tier when tiered pricing is
// present.
func (p Product) CheapestTier() (PriceTier, bool) {
	if len(p.Pricing) == 0 {
		return PriceTier{}, false
	}
	min := p.Pricing[0]
	for _, tier := range p.Pricing[1:] {
		if tier.Price < min.Price {
			min = tier
		}
	}
	return min, true
}

// DisplayPrice is the price the storefront shows: the cheapest tier when
// tiered pricing is present, the flat price otherwise.
func (p Product) DisplayPrice() float64 {
	if tier, ok := p.CheapestTier(); ok {
		return tier.Price
	}
	return p.Price
}

type CreateProduct struct {
	Name        string      `json:"name"`
	Price       float64     `json:"price"`
	Pricing     []PriceTier `json:"pricing"`
	Category    string      `json:"category"`
	Description string      `json:"description"`
	Image       string      `json:"image"`
	Video       string      `json:"video"`
	Images      []string    `json:"images"`
	Quantity    int64       `json:"quantity"`
	Available   bool        `json:"available"`
	Tag         string      `json:"tag"`
	TagColor    string      `json:"tag_color"`
	Origin      string      `json:"origin"`
}

// SanitizePricing keeps only tiers that carry both a label and a positive
// price; incomplete rows are dropped silently at save time.
func (r *CreateProduct) SanitizePricing() {
	kept := r.Pricing[:0]
	for _, tier := range r.Pricing {
		if tier.Label != "" && tier.Price > 0 {
			kept = append(kept, tier)
		}
	}
	r.Pricing = kept
}

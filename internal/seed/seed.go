package seed

import (
	"time"

	"vershash/internal/structs"
)

// Bundled catalog served when no store is configured or the store is
// unreachable. Read-only; writes still require a live store.

var seededAt = time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

func Products() []structs.Product {
	return []structs.Product{
		{
			ID:        "seed-cali-x",
			Name:      "Cali X",
			Price:     50,
			Pricing:   []structs.PriceTier{{Label: "5g", Price: 50}, {Label: "10g", Price: 90}, {Label: "25g", Price: 200}},
			Category:  "hash",
			Image:     "https://images.unsplash.com/photo-1603909223429-69bb7101f420",
			Quantity:  25,
			Available: true,
			Tag:       "NOUVEAU",
			TagColor:  "#22c55e",
			Origin:    "Californie",
			CreatedAt: seededAt,
			UpdatedAt: seededAt,
		},
		{
			ID:        "seed-mousse-or",
			Name:      "Mousseux Or",
			Price:     40,
			Pricing:   []structs.PriceTier{{Label: "5g", Price: 40}, {Label: "10g", Price: 75}},
			Category:  "hash",
			Image:     "https://images.unsplash.com/photo-1536819114556-1e10f967fb61",
			Quantity:  40,
			Available: true,
			Origin:    "Maroc",
			CreatedAt: seededAt,
			UpdatedAt: seededAt,
		},
		{
			ID:          "seed-amnesia",
			Name:        "Amnesia Haze",
			Price:       35,
			Category:    "weed",
			Description: "Classique sativa, effet puissant.",
			Image:       "https://images.unsplash.com/photo-1603386329225-868f9b1ee6c9",
			Quantity:    30,
			Available:   true,
			Tag:         "BEST-SELLER",
			TagColor:    "#eab308",
			CreatedAt:   seededAt,
			UpdatedAt:   seededAt,
		},
		{
			ID:        "seed-gelato",
			Name:      "Gelato 41",
			Price:     45,
			Pricing:   []structs.PriceTier{{Label: "3.5g", Price: 45}, {Label: "7g", Price: 85}},
			Category:  "weed",
			Image:     "https://images.unsplash.com/photo-1616690002178-b6dd1df0b1b5",
			Quantity:  15,
			Available: true,
			Origin:    "Espagne",
			CreatedAt: seededAt,
			UpdatedAt: seededAt,
		},
	}
}

func Categories() []structs.Category {
	return []structs.Category{
		{ID: "seed-cat-hash", Name: "Hash", Slug: "hash", Order: 1, Active: true, CreatedAt: seededAt, UpdatedAt: seededAt},
		{ID: "seed-cat-weed", Name: "Weed", Slug: "weed", Order: 2, Active: true, CreatedAt: seededAt, UpdatedAt: seededAt},
	}
}

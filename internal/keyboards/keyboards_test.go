package keyboards

import (
	"testing"

	"vershash/internal/structs"
)

func socials(n int) []structs.SocialLink {
	out := make([]structs.SocialLink, n)
	for i := range out {
		out[i] = structs.SocialLink{ID: "s", Name: "link", URL: "https://example.com", Enabled: true}
	}
	return out
}

func TestWelcomeChunksSocialsPerRow(t *testing.T) {
	cfg := structs.BotConfig{Socials: socials(5), ButtonsPerRow: 2}

	kb := Welcome(cfg)

	// 5 socials at 2 per row = 3 rows, plus the catalogue/cart row.
	if len(kb.InlineKeyboard) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(kb.InlineKeyboard))
	}
	if len(kb.InlineKeyboard[0]) != 2 || len(kb.InlineKeyboard[2]) != 1 {
		t.Fatalf("bad chunking: %d/%d/%d", len(kb.InlineKeyboard[0]), len(kb.InlineKeyboard[1]), len(kb.InlineKeyboard[2]))
	}
}

func TestWelcomeSkipsDisabledSocials(t *testing.T) {
	cfg := structs.BotConfig{
		Socials: []structs.SocialLink{
			{Name: "on", URL: "https://a", Enabled: true},
			{Name: "off", URL: "https://b", Enabled: false},
			{Name: "nourl", Enabled: true},
		},
		ButtonsPerRow: 4,
	}

	kb := Welcome(cfg)

	// one social row + catalogue/cart row
	if len(kb.InlineKeyboard) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(kb.InlineKeyboard))
	}
	if len(kb.InlineKeyboard[0]) != 1 {
		t.Fatalf("disabled socials must be skipped, row has %d buttons", len(kb.InlineKeyboard[0]))
	}
}

func TestWelcomeMiniAppRowComesFirst(t *testing.T) {
	cfg := structs.BotConfig{
		MiniApp:       structs.MiniApp{URL: "https://shop.example", Text: "Boutique"},
		ButtonsPerRow: 1,
	}

	kb := Welcome(cfg)

	if len(kb.InlineKeyboard) != 2 {
		t.Fatalf("expected mini-app row plus nav row, got %d rows", len(kb.InlineKeyboard))
	}
	btn := kb.InlineKeyboard[0][0]
	if btn.WebApp == nil || btn.WebApp.URL != "https://shop.example" {
		t.Fatalf("first row must carry the mini-app button: %+v", btn)
	}
}

func TestCategoriesSkipInactive(t *testing.T) {
	kb := Categories([]structs.Category{
		{Name: "Hash", Slug: "hash", Active: true},
		{Name: "Hidden", Slug: "hidden", Active: false},
	})

	// one category row + back row
	if len(kb.InlineKeyboard) != 2 {
		t.Fatalf("inactive category leaked into the keyboard: %d rows", len(kb.InlineKeyboard))
	}
}

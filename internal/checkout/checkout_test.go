package checkout

import (
	"strings"
	"testing"

	"vershash/internal/structs"
)

func TestMessage(t *testing.T) {
	items := []structs.CartItem{
		{ID: "a", Name: "Cali X", Price: 10, Quantity: 2},
		{ID: "b", Name: "Amnesia", Price: 5, Quantity: 3},
	}

	msg := Message(items, 35)

	if !strings.Contains(msg, "Cali X x2 — 20€") {
		t.Fatalf("missing first line: %q", msg)
	}
	if !strings.Contains(msg, "Amnesia x3 — 15€") {
		t.Fatalf("missing second line: %q", msg)
	}
	if !strings.HasSuffix(msg, "Total: 35€") {
		t.Fatalf("missing total: %q", msg)
	}
}

func TestLinkSubstitutesEscapedMessage(t *testing.T) {
	link := Link("https://t.me/vershash?text={message}", "Commande: 2 x Cali")

	if strings.Contains(link, "{message}") {
		t.Fatalf("placeholder survived: %q", link)
	}
	if strings.Contains(link, " ") {
		t.Fatalf("message not URL-escaped: %q", link)
	}
	if !strings.HasPrefix(link, "https://t.me/vershash?text=") {
		t.Fatalf("template mangled: %q", link)
	}
}

func TestLinkWithoutPlaceholder(t *testing.T) {
	const template = "https://t.me/vershash"
	if got := Link(template, "anything"); got != template {
		t.Fatalf("template without placeholder must pass through, got %q", got)
	}
}

func TestTarget(t *testing.T) {
	if got := Target("https://t.me/vershash?text={message}"); got != "https://t.me/vershash" {
		t.Fatalf("unexpected target %q", got)
	}
}

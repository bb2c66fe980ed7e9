package cart

import (
	"testing"

	"vershash/internal/structs"
	"vershash/pkg/logger"
)

func newTestService() Service {
	return New(Params{Logger: logger.New("error")})
}

func TestAddMergesById(t *testing.T) {
	svc := newTestService()

	svc.Add(1, structs.CartItem{ID: "p1", Name: "Cali X", Price: 10, Quantity: 1})
	svc.Add(1, structs.CartItem{ID: "p1", Name: "Cali X", Price: 10, Quantity: 2})

	items := svc.Items(1)
	if len(items) != 1 {
		t.Fatalf("expected a single merged line, got %d", len(items))
	}
	if items[0].Quantity != 3 {
		t.Fatalf("expected merged quantity 3, got %d", items[0].Quantity)
	}
}

func TestCartsAreIsolatedByChat(t *testing.T) {
	svc := newTestService()

	svc.Add(1, structs.CartItem{ID: "p1", Price: 10, Quantity: 1})
	svc.Add(2, structs.CartItem{ID: "p2", Price: 5, Quantity: 1})

	if len(svc.Items(1)) != 1 || len(svc.Items(2)) != 1 {
		t.Fatal("carts leaked between chats")
	}
	if svc.Items(1)[0].ID != "p1" {
		t.Fatalf("wrong item in chat 1 cart: %s", svc.Items(1)[0].ID)
	}
}

func TestUpdateQuantityClampsAtOne(t *testing.T) {
	svc := newTestService()
	svc.Add(1, structs.CartItem{ID: "p1", Price: 10, Quantity: 2})

	svc.UpdateQuantity(1, "p1", -5)

	items := svc.Items(1)
	if len(items) != 1 {
		t.Fatal("decrement must not remove the line")
	}
	if items[0].Quantity != 1 {
		t.Fatalf("expected quantity clamped to 1, got %d", items[0].Quantity)
	}

	svc.UpdateQuantity(1, "p1", 3)
	if got := svc.Items(1)[0].Quantity; got != 4 {
		t.Fatalf("expected quantity 4 after +3, got %d", got)
	}
}

func TestSubtotal(t *testing.T) {
	svc := newTestService()
	svc.Add(7, structs.CartItem{ID: "a", Price: 10, Quantity: 2})
	svc.Add(7, structs.CartItem{ID: "b", Price: 5, Quantity: 3})

	if got := svc.Subtotal(7); got != 35 {
		t.Fatalf("expected subtotal 35, got %v", got)
	}
}

func TestRemoveAndClear(t *testing.T) {
	svc := newTestService()
	svc.Add(1, structs.CartItem{ID: "a", Price: 10, Quantity: 1})
	svc.Add(1, structs.CartItem{ID: "b", Price: 5, Quantity: 1})

	svc.Remove(1, "a")
	if items := svc.Items(1); len(items) != 1 || items[0].ID != "b" {
		t.Fatalf("unexpected cart after remove: %+v", items)
	}

	svc.Clear(1)
	if len(svc.Items(1)) != 0 {
		t.Fatal("expected empty cart after clear")
	}
	if svc.Subtotal(1) != 0 {
		t.Fatal("expected zero subtotal after clear")
	}
}

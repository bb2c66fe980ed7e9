package cart

import (
	"sync"

	"vershash/internal/structs"
	"vershash/pkg/logger"

	"go.uber.org/fx"
)

var (
	Module = fx.Provide(New)
)

type (
	Params struct {
		fx.In
		Logger logger.Logger
	}

	// Service keeps one cart per chat in process memory for the lifetime of
	// the conversation. Nothing here is persisted.
	Service interface {
		Add(chatID int64, item structs.CartItem)
		UpdateQuantity(chatID int64, itemID string, delta int64)
		Remove(chatID int64, itemID string)
		Items(chatID int64) []structs.CartItem
		Subtotal(chatID int64) float64
		Clear(chatID int64)
	}

	service struct {
		logger logger.Logger

		m     sync.Mutex
		carts map[int64][]structs.CartItem
	}
)

func New(p Params) Service {
	return &service{
		logger: p.Logger,
		carts:  map[int64][]structs.CartItem{},
	}
}

// Add merges by item id: a repeated add sums quantities instead of creating
// a duplicate line.
func (s *service) Add(chatID int64, item structs.CartItem) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	s.m.Lock()
	defer s.m.Unlock()

	items := s.carts[chatID]
	for i := range items {
		if items[i].ID == item.ID {
			items[i].Quantity += item.Quantity
			return
		}
	}
	s.carts[chatID] = append(items, item)
}

// UpdateQuantity clamps at 1: the line never drops out through decrements,
// removal is the explicit Remove action.
func (s *service) UpdateQuantity(chatID int64, itemID string, delta int64) {
	s.m.Lock()
	defer s.m.Unlock()

	items := s.carts[chatID]
	for i := range items {
		if items[i].ID == itemID {
			q := items[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			items[i].Quantity = q
			return
		}
	}
}

func (s *service) Remove(chatID int64, itemID string) {
	s.m.Lock()
	defer s.m.Unlock()

	items := s.carts[chatID]
	for i := range items {
		if items[i].ID == itemID {
			s.carts[chatID] = append(items[:i], items[i+1:]...)
			return
		}
	}
}

func (s *service) Items(chatID int64) []structs.CartItem {
	s.m.Lock()
	defer s.m.Unlock()

	items := s.carts[chatID]
	out := make([]structs.CartItem, len(items))
	copy(out, items)
	return out
}

func (s *service) Subtotal(chatID int64) float64 {
	s.m.Lock()
	defer s.m.Unlock()

	var total float64
	for _, item := range s.carts[chatID] {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

func (s *service) Clear(chatID int64) {
	s.m.Lock()
	defer s.m.Unlock()

	delete(s.carts, chatID)
}

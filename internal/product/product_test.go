package product

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"vershash/internal/notify"
	"vershash/internal/seed"
	"vershash/internal/structs"
	"vershash/pkg/cache"
	"vershash/pkg/logger"
)

type fakeRepo struct {
	products    []structs.Product
	listCalls   int
	unavailable bool
}

func (f *fakeRepo) Create(_ context.Context, req structs.CreateProduct) (structs.Product, error) {
	if f.unavailable {
		return structs.Product{}, fmt.Errorf("insert product: %w", structs.ErrStoreUnavailable)
	}
	p := structs.Product{ID: "generated", Name: req.Name, Price: req.Price, Pricing: req.Pricing, Category: req.Category, Image: req.Image, Quantity: req.Quantity, Available: req.Available}
	f.products = append(f.products, p)
	return p, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (structs.Product, error) {
	if f.unavailable {
		return structs.Product{}, structs.ErrStoreUnavailable
	}
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return structs.Product{}, structs.ErrNotFound
}

func (f *fakeRepo) GetList(_ context.Context) ([]structs.Product, error) {
	f.listCalls++
	if f.unavailable {
		return nil, fmt.Errorf("query failed: %w", structs.ErrStoreUnavailable)
	}
	return f.products, nil
}

func (f *fakeRepo) Update(_ context.Context, id string, req structs.CreateProduct) (structs.Product, error) {
	for i, p := range f.products {
		if p.ID == id {
			f.products[i].Name = req.Name
			return f.products[i], nil
		}
	}
	return structs.Product{}, structs.ErrNotFound
}

func (f *fakeRepo) Delete(_ context.Context, id string) error {
	for i, p := range f.products {
		if p.ID == id {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return nil
		}
	}
	return structs.ErrNotFound
}

func newTestService(repo *fakeRepo) Service {
	lg := logger.New("error")
	return New(Params{
		ProductRepo: repo,
		Cache:       cache.NewWithTTL(lg, time.Minute),
		Notify:      notify.New(notify.Params{Logger: lg, Config: noSyncConfig{}}),
		Logger:      lg,
	})
}

type noSyncConfig struct{}

func (noSyncConfig) Get(string) interface{}          { return nil }
func (noSyncConfig) GetBool(string) bool             { return false }
func (noSyncConfig) GetFloat64(string) float64       { return 0 }
func (noSyncConfig) GetInt(string) int               { return 0 }
func (noSyncConfig) GetInt64(string) int64           { return 0 }
func (noSyncConfig) GetString(string) string         { return "" }
func (noSyncConfig) GetStringSlice(string) []string  { return nil }
func (noSyncConfig) GetDuration(string) time.Duration { return 0 }

func TestGetListIsCached(t *testing.T) {
	repo := &fakeRepo{products: []structs.Product{{ID: "p1", Name: "Cali X"}}}
	svc := newTestService(repo)

	if _, err := svc.GetList(context.Background()); err != nil {
		t.Fatalf("first GetList: %v", err)
	}
	if _, err := svc.GetList(context.Background()); err != nil {
		t.Fatalf("second GetList: %v", err)
	}

	if repo.listCalls != 1 {
		t.Fatalf("expected one repo hit within the TTL, got %d", repo.listCalls)
	}
}

func TestCreateInvalidatesListCache(t *testing.T) {
	repo := &fakeRepo{products: []structs.Product{{ID: "p1", Name: "Cali X"}}}
	svc := newTestService(repo)

	_, _ = svc.GetList(context.Background())

	_, err := svc.Create(context.Background(), structs.CreateProduct{
		Name: "Gelato", Image: "https://img", Price: 45, Category: "weed",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	list, err := svc.GetList(context.Background())
	if err != nil {
		t.Fatalf("GetList after create: %v", err)
	}
	if repo.listCalls != 2 {
		t.Fatalf("create must invalidate the list cache, repo hits = %d", repo.listCalls)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 products after create, got %d", len(list))
	}
}

func TestGetListFallsBackToSeedWhenStoreUnavailable(t *testing.T) {
	svc := newTestService(&fakeRepo{unavailable: true})

	list, err := svc.GetList(context.Background())
	if err != nil {
		t.Fatalf("GetList with unavailable store: %v", err)
	}
	if len(list) != len(seed.Products()) {
		t.Fatalf("expected the bundled seed, got %d products", len(list))
	}
}

func TestCreateValidationNamesField(t *testing.T) {
	svc := newTestService(&fakeRepo{})

	tests := []struct {
		req   structs.CreateProduct
		field string
	}{
		{structs.CreateProduct{Image: "i", Price: 1, Category: "c"}, "name"},
		{structs.CreateProduct{Name: "n", Price: 1, Category: "c"}, "image"},
		{structs.CreateProduct{Name: "n", Image: "i", Category: "c"}, "price"},
		{structs.CreateProduct{Name: "n", Image: "i", Price: 1}, "category"},
		{structs.CreateProduct{Name: "n", Image: "i", Price: 1, Category: "c", Quantity: -1}, "quantity"},
	}

	for _, tt := range tests {
		_, err := svc.Create(context.Background(), tt.req)
		if !errors.Is(err, structs.ErrBadRequest) {
			t.Errorf("field %s: expected ErrBadRequest, got %v", tt.field, err)
			continue
		}
		if !strings.Contains(err.Error(), tt.field) {
			t.Errorf("error %q does not name field %q", err.Error(), tt.field)
		}
	}
}

func TestCreateAcceptsTieredPricingWithoutFlatPrice(t *testing.T) {
	svc := newTestService(&fakeRepo{})

	_, err := svc.Create(context.Background(), structs.CreateProduct{
		Name: "Cali X", Image: "https://img", Category: "hash",
		Pricing: []structs.PriceTier{{Label: "5g", Price: 50}},
	})
	if err != nil {
		t.Fatalf("tiered pricing must satisfy the price requirement: %v", err)
	}
}

func TestDeleteMissingProduct(t *testing.T) {
	svc := newTestService(&fakeRepo{})

	if err := svc.Delete(context.Background(), "ghost"); !errors.Is(err, structs.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

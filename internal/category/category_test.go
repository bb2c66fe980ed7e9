package category

import (
	"context"
	"errors"
	"testing"
	"time"

	"vershash/internal/notify"
	"vershash/internal/structs"
	"vershash/pkg/cache"
	"vershash/pkg/logger"
)

type fakeRepo struct {
	categories  []structs.Category
	deletedRefs []string
}

func (f *fakeRepo) Create(_ context.Context, name, slug string, order int64, active bool) (structs.Category, error) {
	for _, c := range f.categories {
		if c.Name == name || c.Slug == slug {
			return structs.Category{}, structs.ErrUniqueViolation
		}
	}
	c := structs.Category{ID: "generated", Name: name, Slug: slug, Order: order, Active: active}
	f.categories = append(f.categories, c)
	return c, nil
}

func (f *fakeRepo) GetList(_ context.Context) ([]structs.Category, error) {
	return f.categories, nil
}

func (f *fakeRepo) Update(_ context.Context, id, name, slug string, order int64, active bool) (structs.Category, error) {
	for i := range f.categories {
		if f.categories[i].ID == id {
			f.categories[i].Name = name
			f.categories[i].Slug = slug
			f.categories[i].Order = order
			f.categories[i].Active = active
			return f.categories[i], nil
		}
	}
	return structs.Category{}, structs.ErrNotFound
}

func (f *fakeRepo) Delete(_ context.Context, ref string) error {
	f.deletedRefs = append(f.deletedRefs, ref)
	for i, c := range f.categories {
		if c.ID == ref || c.Slug == ref {
			f.categories = append(f.categories[:i], f.categories[i+1:]...)
			return nil
		}
	}
	return structs.ErrNotFound
}

type noopConfig struct{}

func (noopConfig) Get(string) interface{}           { return nil }
func (noopConfig) GetBool(string) bool              { return false }
func (noopConfig) GetFloat64(string) float64        { return 0 }
func (noopConfig) GetInt(string) int                { return 0 }
func (noopConfig) GetInt64(string) int64            { return 0 }
func (noopConfig) GetString(string) string          { return "" }
func (noopConfig) GetStringSlice(string) []string   { return nil }
func (noopConfig) GetDuration(string) time.Duration { return 0 }

func newTestService(repo *fakeRepo) Service {
	lg := logger.New("error")
	return New(Params{
		CategoryRepo: repo,
		Cache:        cache.NewWithTTL(lg, time.Minute),
		Notify:       notify.New(notify.Params{Logger: lg, Config: noopConfig{}}),
		Logger:       lg,
	})
}

func TestCreateRegeneratesSlugFromName(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)

	resp, err := svc.Create(context.Background(), structs.CreateCategory{
		Name: "Café Premium",
		Slug: "client-supplied-garbage",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if resp.Slug != "cafe-premium" {
		t.Fatalf("expected slug regenerated from name, got %q", resp.Slug)
	}
}

func TestUpdateRecomputesSlug(t *testing.T) {
	repo := &fakeRepo{categories: []structs.Category{{ID: "c1", Name: "Old", Slug: "old"}}}
	svc := newTestService(repo)

	resp, err := svc.Update(context.Background(), "c1", structs.CreateCategory{Name: "Nouvelle Sélection"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if resp.Slug != "nouvelle-selection" {
		t.Fatalf("expected recomputed slug, got %q", resp.Slug)
	}
}

func TestCreateDefaultsActiveToTrue(t *testing.T) {
	svc := newTestService(&fakeRepo{})

	resp, err := svc.Create(context.Background(), structs.CreateCategory{Name: "Hash"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !resp.Active {
		t.Fatal("category must default to active")
	}
}

func TestDeleteResolvesIdThenSlug(t *testing.T) {
	repo := &fakeRepo{categories: []structs.Category{{ID: "c1", Name: "Hash", Slug: "hash"}}}
	svc := newTestService(repo)

	if err := svc.Delete(context.Background(), "hash"); err != nil {
		t.Fatalf("delete by slug: %v", err)
	}
	if len(repo.categories) != 0 {
		t.Fatal("category not deleted by slug reference")
	}

	if err := svc.Delete(context.Background(), "ghost"); !errors.Is(err, structs.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing ref, got %v", err)
	}
}

func TestCreateDuplicateName(t *testing.T) {
	repo := &fakeRepo{categories: []structs.Category{{ID: "c1", Name: "Hash", Slug: "hash"}}}
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), structs.CreateCategory{Name: "Hash"})
	if !errors.Is(err, structs.ErrUniqueViolation) {
		t.Fatalf("expected ErrUniqueViolation, got %v", err)
	}
}

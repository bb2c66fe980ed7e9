package settings

import (
	"context"
	"testing"

	"vershash/internal/structs"
	"vershash/pkg/logger"
)

type fakeRepo struct {
	doc       *structs.ShopSettings
	saveCalls int
}

func (f *fakeRepo) Get(context.Context) (structs.ShopSettings, error) {
	if f.doc == nil {
		return structs.ShopSettings{}, structs.ErrNotFound
	}
	return *f.doc, nil
}

func (f *fakeRepo) Save(_ context.Context, s structs.ShopSettings) error {
	f.saveCalls++
	f.doc = &s
	return nil
}

func newTestService(repo *fakeRepo) Service {
	return New(Params{SettingsRepo: repo, Logger: logger.New("error")})
}

func TestGetSynthesizesAndPersistsDefaults(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)

	resp, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	if resp.ShopName != "VERSHASH" || resp.BannerText != "NOUVEAU DROP" {
		t.Fatalf("unexpected defaults: %+v", resp)
	}
	if resp.BackgroundMode != structs.BackgroundColor || resp.BackgroundColor != "#000000" {
		t.Fatalf("expected solid black default background, got %+v", resp)
	}
	if repo.doc == nil {
		t.Fatal("defaults must be persisted on first read")
	}
}

func TestGetIsIdempotent(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)

	first, _ := svc.Get(context.Background())
	second, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("second Get: %v", err)
	}

	if repo.saveCalls != 1 {
		t.Fatalf("defaults must be written once, saves = %d", repo.saveCalls)
	}
	if first.ShopName != second.ShopName || first.BannerText != second.BannerText {
		t.Fatal("repeated reads must answer the same document")
	}
}

func TestPatchMergesShallowly(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)

	name := "VERSHASH 2"
	link := "https://t.me/vershash?text={message}"
	resp, err := svc.Patch(context.Background(), structs.PatchSettings{
		ShopName:  &name,
		OrderLink: &link,
	})
	if err != nil {
		t.Fatalf("Patch: %v", err)
	}

	if resp.ShopName != "VERSHASH 2" {
		t.Fatalf("shop name not merged: %q", resp.ShopName)
	}
	if resp.OrderLink != link {
		t.Fatalf("order link not merged: %q", resp.OrderLink)
	}
	if resp.BannerText != "NOUVEAU DROP" {
		t.Fatalf("omitted field must keep its value, got %q", resp.BannerText)
	}
}

func TestPatchNeverDeletes(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)

	_, _ = svc.Patch(context.Background(), structs.PatchSettings{})

	if repo.doc == nil {
		t.Fatal("settings document must survive an empty patch")
	}
}

package settings

import (
	"context"
	"errors"
	"time"

	"vershash/internal/structs"
	"vershash/pkg/logger"
	settingsRepo "vershash/pkg/repository/postgres/settings_repo"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	Module = fx.Provide(New)
)

type (
	Params struct {
		fx.In
		SettingsRepo settingsRepo.Repo
		Logger       logger.Logger
	}

	Service interface {
		Get(ctx context.Context) (structs.ShopSettings, error)
		Patch(ctx context.Context, req structs.PatchSettings) (structs.ShopSettings, error)
	}

	service struct {
		settingsRepo settingsRepo.Repo
		logger       logger.Logger
	}
)

func New(p Params) Service {
	return &service{
		settingsRepo: p.SettingsRepo,
		logger:       p.Logger,
	}
}

// Defaults is the settings document synthesized on first read.
func Defaults() structs.ShopSettings {
	return structs.ShopSettings{
		ShopName:        "VERSHASH",
		BannerText:      "NOUVEAU DROP",
		BannerSubtext:   "Disponible maintenant",
		BackgroundMode:  structs.BackgroundColor,
		BackgroundColor: "#000000",
		Resellers:       []structs.Reseller{},
		UpdatedAt:       time.Now().UTC(),
	}
}

// Get never answers NotFound: an absent document is replaced by the default
// one, which is persisted so the next read is a plain fetch.
func (s *service) Get(ctx context.Context) (structs.ShopSettings, error) {
	resp, err := s.settingsRepo.Get(ctx)
	if err == nil {
		return resp, nil
	}

	if errors.Is(err, structs.ErrStoreUnavailable) {
		return Defaults(), nil
	}

	if !errors.Is(err, structs.ErrNotFound) {
		s.logger.Error(ctx, "->settingsRepo.Get", zap.Error(err))
		return structs.ShopSettings{}, err
	}

	defaults := Defaults()
	if err := s.settingsRepo.Save(ctx, defaults); err != nil {
		s.logger.Error(ctx, "->settingsRepo.Save defaults", zap.Error(err))
		return structs.ShopSettings{}, err
	}
	return defaults, nil
}

// Patch is a shallow merge: only fields present in the request overwrite the
// stored document.
func (s *service) Patch(ctx context.Context, req structs.PatchSettings) (structs.ShopSettings, error) {
	current, err := s.Get(ctx)
	if err != nil {
		return structs.ShopSettings{}, err
	}

	merge(&current, req)
	current.UpdatedAt = time.Now().UTC()

	if err := s.settingsRepo.Save(ctx, current); err != nil {
		s.logger.Error(ctx, "->settingsRepo.Save", zap.Error(err))
		return structs.ShopSettings{}, err
	}
	return current, nil
}

func merge(dst *structs.ShopSettings, req structs.PatchSettings) {
	if req.ShopName != nil {
		dst.ShopName = *req.ShopName
	}
	if req.BannerText != nil {
		dst.BannerText = *req.BannerText
	}
	if req.BannerSubtext != nil {
		dst.BannerSubtext = *req.BannerSubtext
	}
	if req.BannerImage != nil {
		dst.BannerImage = *req.BannerImage
	}
	if req.BackgroundMode != nil {
		dst.BackgroundMode = *req.BackgroundMode
	}
	if req.BackgroundColor != nil {
		dst.BackgroundColor = *req.BackgroundColor
	}
	if req.GradientFrom != nil {
		dst.GradientFrom = *req.GradientFrom
	}
	if req.GradientTo != nil {
		dst.GradientTo = *req.GradientTo
	}
	if req.BackgroundImg != nil {
		dst.BackgroundImg = *req.BackgroundImg
	}
	if req.OrderLink != nil {
		dst.OrderLink = *req.OrderLink
	}
	if req.Resellers != nil {
		dst.Resellers = *req.Resellers
	}
}

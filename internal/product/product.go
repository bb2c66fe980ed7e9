package product

import (
	"context"
	"errors"

	"vershash/internal/notify"
	"vershash/internal/seed"
	"vershash/internal/structs"
	"vershash/pkg/cache"
	"vershash/pkg/logger"
	productRepo "vershash/pkg/repository/postgres/product_repo"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	Module = fx.Provide(New)
)

const listCacheKey = "products"

type (
	Params struct {
		fx.In
		ProductRepo productRepo.Repo
		Cache       cache.ICache
		Notify      notify.Service
		Logger      logger.Logger
	}

	Service interface {
		Create(ctx context.Context, req structs.CreateProduct) (structs.Product, error)
		GetList(ctx context.Context) ([]structs.Product, error)
		GetByID(ctx context.Context, id string) (structs.Product, error)
		Update(ctx context.Context, id string, req structs.CreateProduct) (structs.Product, error)
		Delete(ctx context.Context, id string) error
	}

	service struct {
		productRepo productRepo.Repo
		cache       cache.ICache
		notify      notify.Service
		logger      logger.Logger
	}
)

func New(p Params) Service {
	return &service{
		productRepo: p.ProductRepo,
		cache:       p.Cache,
		notify:      p.Notify,
		logger:      p.Logger,
	}
}

// validate answers the offending field name so the handler can name it in
// the 400 body.
func validate(req structs.CreateProduct) error {
	switch {
	case req.Name == "":
		return structs.MissingField("name")
	case req.Image == "":
		return structs.MissingField("image")
	case req.Price <= 0 && len(req.Pricing) == 0:
		return structs.MissingField("price")
	case req.Quantity < 0:
		return structs.MissingField("quantity")
	case req.Category == "":
		return structs.MissingField("category")
	}
	return nil
}

func (s *service) Create(ctx context.Context, req structs.CreateProduct) (structs.Product, error) {
	if err := validate(req); err != nil {
		return structs.Product{}, err
	}
	req.SanitizePricing()

	resp, err := s.productRepo.Create(ctx, req)
	if err != nil {
		s.logger.Error(ctx, "->productRepo.Create", zap.Error(err))
		return structs.Product{}, err
	}

	s.cache.Delete(listCacheKey)
	s.notify.CatalogChanged(ctx, "product.created")
	return resp, nil
}

func (s *service) GetList(ctx context.Context) ([]structs.Product, error) {
	var cached []structs.Product
	if err := s.cache.GetObj(listCacheKey, &cached); err == nil {
		return cached, nil
	}

	resp, err := s.productRepo.GetList(ctx)
	if err != nil {
		if errors.Is(err, structs.ErrStoreUnavailable) {
			return seed.Products(), nil
		}
		s.logger.Error(ctx, "->productRepo.GetList", zap.Error(err))
		return nil, err
	}

	if err := s.cache.SaveObj(listCacheKey, resp); err != nil {
		s.logger.Warn(ctx, "cache.SaveObj failed", zap.Error(err))
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (structs.Product, error) {
	resp, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, structs.ErrStoreUnavailable) {
			for _, p := range seed.Products() {
				if p.ID == id {
					return p, nil
				}
			}
			return structs.Product{}, structs.ErrNotFound
		}
		if errors.Is(err, structs.ErrNotFound) {
			return structs.Product{}, err
		}
		s.logger.Error(ctx, "err on s.productRepo.GetByID", zap.Error(err))
		return structs.Product{}, err
	}
	return resp, nil
}

func (s *service) Update(ctx context.Context, id string, req structs.CreateProduct) (structs.Product, error) {
	if err := validate(req); err != nil {
		return structs.Product{}, err
	}
	req.SanitizePricing()

	resp, err := s.productRepo.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, structs.ErrNotFound) {
			return structs.Product{}, err
		}
		s.logger.Error(ctx, "->productRepo.Update", zap.Error(err))
		return structs.Product{}, err
	}

	s.cache.Delete(listCacheKey)
	s.notify.CatalogChanged(ctx, "product.updated")
	return resp, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, structs.ErrNotFound) {
			return err
		}
		s.logger.Error(ctx, "->productRepo.Delete", zap.Error(err))
		return err
	}

	s.cache.Delete(listCacheKey)
	s.notify.CatalogChanged(ctx, "product.deleted")
	return nil
}

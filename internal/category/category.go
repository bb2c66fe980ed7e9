package category

import (
	"context"
	"errors"

	"vershash/internal/notify"
	"vershash/internal/seed"
	"vershash/internal/structs"
	"vershash/pkg/cache"
	"vershash/pkg/logger"
	categoryRepo "vershash/pkg/repository/postgres/category_repo"
	"vershash/pkg/utils"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	Module = fx.Provide(New)
)

const listCacheKey = "categories"

type (
	Params struct {
		fx.In
		CategoryRepo categoryRepo.Repo
		Cache        cache.ICache
		Notify       notify.Service
		Logger       logger.Logger
	}

	Service interface {
		Create(ctx context.Context, req structs.CreateCategory) (structs.Category, error)
		GetList(ctx context.Context) ([]structs.Category, error)
		Update(ctx context.Context, id string, req structs.CreateCategory) (structs.Category, error)
		Delete(ctx context.Context, ref string) error
	}

	service struct {
		categoryRepo categoryRepo.Repo
		cache        cache.ICache
		notify       notify.Service
		logger       logger.Logger
	}
)

func New(p Params) Service {
	return &service{
		categoryRepo: p.CategoryRepo,
		cache:        p.Cache,
		notify:       p.Notify,
		logger:       p.Logger,
	}
}

func (s *service) Create(ctx context.Context, req structs.CreateCategory) (structs.Category, error) {
	if req.Name == "" {
		return structs.Category{}, structs.MissingField("name")
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	// Whatever slug the client sent is ignored; the slug is derived from the
	// name on every write.
	resp, err := s.categoryRepo.Create(ctx, req.Name, utils.Slugify(req.Name), req.Order, active)
	if err != nil {
		if errors.Is(err, structs.ErrUniqueViolation) {
			return structs.Category{}, err
		}
		s.logger.Error(ctx, "->categoryRepo.Create", zap.Error(err))
		return structs.Category{}, err
	}

	s.cache.Delete(listCacheKey)
	s.notify.CatalogChanged(ctx, "category.created")
	return resp, nil
}

func (s *service) GetList(ctx context.Context) ([]structs.Category, error) {
	var cached []structs.Category
	if err := s.cache.GetObj(listCacheKey, &cached); err == nil {
		return cached, nil
	}

	resp, err := s.categoryRepo.GetList(ctx)
	if err != nil {
		if errors.Is(err, structs.ErrStoreUnavailable) {
			return seed.Categories(), nil
		}
		s.logger.Error(ctx, "->categoryRepo.GetList", zap.Error(err))
		return nil, err
	}

	if err := s.cache.SaveObj(listCacheKey, resp); err != nil {
		s.logger.Warn(ctx, "cache.SaveObj failed", zap.Error(err))
	}
	return resp, nil
}

func (s *service) Update(ctx context.Context, id string, req structs.CreateCategory) (structs.Category, error) {
	if req.Name == "" {
		return structs.Category{}, structs.MissingField("name")
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	resp, err := s.categoryRepo.Update(ctx, id, req.Name, utils.Slugify(req.Name), req.Order, active)
	if err != nil {
		if errors.Is(err, structs.ErrNotFound) || errors.Is(err, structs.ErrUniqueViolation) {
			return structs.Category{}, err
		}
		s.logger.Error(ctx, "->categoryRepo.Update", zap.Error(err))
		return structs.Category{}, err
	}

	s.cache.Delete(listCacheKey)
	s.notify.CatalogChanged(ctx, "category.updated")
	return resp, nil
}

func (s *service) Delete(ctx context.Context, ref string) error {
	if err := s.categoryRepo.Delete(ctx, ref); err != nil {
		if errors.Is(err, structs.ErrNotFound) {
			return err
		}
		s.logger.Error(ctx, "->categoryRepo.Delete", zap.Error(err))
		return err
	}

	s.cache.Delete(listCacheKey)
	s.notify.CatalogChanged(ctx, "category.deleted")
	return nil
}

package settingsrepo

import (
	"context"
	"errors"
	"fmt"

	"vershash/internal/structs"
	"vershash/pkg/db"
	"vershash/pkg/logger"

	"github.com/jackc/pgx/v5"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Provide(New)

type (
	Params struct {
		fx.In
		Logger logger.Logger
		DB     db.Querier
	}

	Repo interface {
		Get(ctx context.Context) (structs.ShopSettings, error)
		Save(ctx context.Context, settings structs.ShopSettings) error
	}

	repo struct {
		logger logger.Logger
		db     db.Querier
	}
)

func New(p Params) Repo {
	return &repo{
		logger: p.Logger,
		db:     p.DB,
	}
}

// The settings singleton lives in a single jsonb row with id = 1.

func (r *repo) Get(ctx context.Context) (structs.ShopSettings, error) {
	var settings structs.ShopSettings
	err := r.db.QueryRow(ctx, `SELECT doc FROM shop_settings WHERE id = 1`).Scan(&settings)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return structs.ShopSettings{}, structs.ErrNotFound
		}
		r.logger.Error(ctx, "error querying shop settings", zap.Error(err))
		return structs.ShopSettings{}, fmt.Errorf("error getting shop settings: %w", err)
	}
	return settings, nil
}

func (r *repo) Save(ctx context.Context, settings structs.ShopSettings) error {
	query := `
		INSERT INTO shop_settings (id, doc)
		VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc`

	if _, err := r.db.Exec(ctx, query, settings); err != nil {
		return fmt.Errorf("error saving shop settings: %w", err)
	}
	return nil
}

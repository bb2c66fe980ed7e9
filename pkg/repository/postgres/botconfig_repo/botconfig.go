package botconfigrepo

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
		Get(ctx context.Context) (structs.BotConfig, error)
		Save(ctx context.Context, config structs.BotConfig) error
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

func (r *repo) Get(ctx context.Context) (structs.BotConfig, error) {
	var config structs.BotConfig
	err := r.db.QueryRow(ctx, `SELECT doc FROM bot_config WHERE id = 1`).Scan(&config)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return structs.BotConfig{}, structs.ErrNotFound
		}
		r.logger.Error(ctx, "error querying bot config", zap.Error(err))
		return structs.BotConfig{}, fmt.Errorf("error getting bot config: %w", err)
	}
	return config, nil
}

func (r *repo) Save(ctx context.Context, config structs.BotConfig) error {
	query := `
		INSERT INTO bot_config (id, doc)
		VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc`

	if _, err := r.db.Exec(ctx, query, config); err != nil {
		return fmt.Errorf("error saving bot config: %w", err)
	}
	return nil
}

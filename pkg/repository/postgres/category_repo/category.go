package categoryrepo

import (
	"context"
	"errors"
	"fmt"

	"vershash/internal/structs"
	"vershash/pkg/db"
	"vershash/pkg/logger"
	"vershash/pkg/utils"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
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
		Create(ctx context.Context, name, slug string, order int64, active bool) (structs.Category, error)
		GetList(ctx context.Context) ([]structs.Category, error)
		Update(ctx context.Context, id, name, slug string, order int64, active bool) (structs.Category, error)
		// Delete resolves the reference by primary id first, then by slug;
		// both identifier shapes appear at call sites.
		Delete(ctx context.Context, ref string) error
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

const categoryColumns = `id, name, slug, "order", active, created_at, updated_at`

func scanCategory(row pgx.Row) (structs.Category, error) {
	var c structs.Category
	err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.Order, &c.Active, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func uniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func (r *repo) Create(ctx context.Context, name, slug string, order int64, active bool) (structs.Category, error) {
	r.logger.Info(ctx, "Create category", zap.String("name", name), zap.String("slug", slug))

	query := `
		INSERT INTO category (id, name, slug, "order", active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + categoryColumns

	resp, err := scanCategory(r.db.QueryRow(ctx, query, utils.GenKSUID(), name, slug, order, active))
	if err != nil {
		if uniqueViolation(err) {
			return structs.Category{}, structs.ErrUniqueViolation
		}
		return structs.Category{}, fmt.Errorf("insert category: %w", err)
	}
	return resp, nil
}

func (r *repo) GetList(ctx context.Context) ([]structs.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM category ORDER BY "order" ASC, created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var list []structs.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			r.logger.Error(ctx, "err on rows.Scan", zap.Error(err))
			return nil, fmt.Errorf("row scan failed: %w", err)
		}
		list = append(list, c)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", rows.Err())
	}
	return list, nil
}

func (r *repo) Update(ctx context.Context, id, name, slug string, order int64, active bool) (structs.Category, error) {
	query := `
		UPDATE category
		SET name = $2, slug = $3, "order" = $4, active = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + categoryColumns

	resp, err := scanCategory(r.db.QueryRow(ctx, query, id, name, slug, order, active))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return structs.Category{}, structs.ErrNotFound
		}
		if uniqueViolation(err) {
			return structs.Category{}, structs.ErrUniqueViolation
		}
		r.logger.Error(ctx, "error executing update", zap.Error(err))
		return structs.Category{}, fmt.Errorf("error updating category with ID %s: %w", id, err)
	}
	return resp, nil
}

func (r *repo) Delete(ctx context.Context, ref string) error {
	r.logger.Info(ctx, "Delete category", zap.String("category_ref", ref))

	for _, key := range []string{"id", "slug"} {
		result, err := r.db.Exec(ctx, fmt.Sprintf(`DELETE FROM category WHERE %s = $1`, key), ref)
		if err != nil {
			return fmt.Errorf("error deleting category %s: %w", ref, err)
		}
		if result.RowsAffected() > 0 {
			return nil
		}
	}

	r.logger.Warn(ctx, "no category found with the given reference", zap.String("category_ref", ref))
	return structs.ErrNotFound
}

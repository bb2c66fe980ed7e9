package productrepo

import (
	"context"
	"errors"
	"fmt"

	"vershash/internal/structs"
	"vershash/pkg/db"
	"vershash/pkg/logger"
	"vershash/pkg/utils"

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
		Create(ctx context.Context, req structs.CreateProduct) (structs.Product, error)
		GetByID(ctx context.Context, id string) (structs.Product, error)
		GetList(ctx context.Context) ([]structs.Product, error)
		Update(ctx context.Context, id string, req structs.CreateProduct) (structs.Product, error)
		Delete(ctx context.Context, id string) error
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

const productColumns = `
	id,
	name,
	price,
	pricing,
	category,
	COALESCE(description, ''),
	image,
	COALESCE(video, ''),
	images,
	quantity,
	available,
	COALESCE(tag, ''),
	COALESCE(tag_color, ''),
	COALESCE(origin, ''),
	created_at,
	updated_at
`

func scanProduct(row pgx.Row) (structs.Product, error) {
	var p structs.Product
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Price,
		&p.Pricing,
		&p.Category,
		&p.Description,
		&p.Image,
		&p.Video,
		&p.Images,
		&p.Quantity,
		&p.Available,
		&p.Tag,
		&p.TagColor,
		&p.Origin,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

func (r *repo) Create(ctx context.Context, req structs.CreateProduct) (structs.Product, error) {
	r.logger.Info(ctx, "Create product", zap.String("name", req.Name))

	query := `
		INSERT INTO product (
			id, name, price, pricing, category, description,
			image, video, images, quantity, available, tag, tag_color, origin
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING ` + productColumns

	row := r.db.QueryRow(ctx, query,
		utils.GenKSUID(),
		req.Name,
		req.Price,
		req.Pricing,
		req.Category,
		req.Description,
		req.Image,
		req.Video,
		req.Images,
		req.Quantity,
		req.Available,
		req.Tag,
		req.TagColor,
		req.Origin,
	)

	resp, err := scanProduct(row)
	if err != nil {
		return structs.Product{}, fmt.Errorf("insert product: %w", err)
	}
	return resp, nil
}

func (r *repo) GetByID(ctx context.Context, id string) (structs.Product, error) {
	query := `SELECT ` + productColumns + ` FROM product WHERE id = $1`

	resp, err := scanProduct(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return structs.Product{}, structs.ErrNotFound
		}
		r.logger.Error(ctx, "error querying row", zap.Error(err))
		return structs.Product{}, fmt.Errorf("error getting product by ID: %w", err)
	}
	return resp, nil
}

func (r *repo) GetList(ctx context.Context) ([]structs.Product, error) {
	query := `SELECT ` + productColumns + ` FROM product ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var list []structs.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			r.logger.Error(ctx, "err on rows.Scan", zap.Error(err))
			return nil, fmt.Errorf("row scan failed: %w", err)
		}
		list = append(list, p)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", rows.Err())
	}
	return list, nil
}

// Update replaces every mutable field of the matching document.
func (r *repo) Update(ctx context.Context, id string, req structs.CreateProduct) (structs.Product, error) {
	query := `
		UPDATE product SET
			name = $2,
			price = $3,
			pricing = $4,
			category = $5,
			description = $6,
			image = $7,
			video = $8,
			images = $9,
			quantity = $10,
			available = $11,
			tag = $12,
			tag_color = $13,
			origin = $14,
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + productColumns

	row := r.db.QueryRow(ctx, query,
		id,
		req.Name,
		req.Price,
		req.Pricing,
		req.Category,
		req.Description,
		req.Image,
		req.Video,
		req.Images,
		req.Quantity,
		req.Available,
		req.Tag,
		req.TagColor,
		req.Origin,
	)

	resp, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return structs.Product{}, structs.ErrNotFound
		}
		r.logger.Error(ctx, "error executing update", zap.Error(err))
		return structs.Product{}, fmt.Errorf("error updating product with ID %s: %w", id, err)
	}
	return resp, nil
}

func (r *repo) Delete(ctx context.Context, id string) error {
	r.logger.Info(ctx, "Delete product", zap.String("product_id", id))

	result, err := r.db.Exec(ctx, `DELETE FROM product WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting product with ID %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		r.logger.Warn(ctx, "no product found with the given ID", zap.String("product_id", id))
		return structs.ErrNotFound
	}

	return nil
}

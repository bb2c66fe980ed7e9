package db

import (
	"context"

	"vershash/internal/structs"
	"vershash/pkg/config"
	"vershash/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Options(
	fx.Provide(NewDBConn),
)

// ErrUnavailable is returned by every Querier method when no store
// connection string is configured. Callers that have a static fallback
// (catalog reads) degrade to it instead of failing. Aliased to the shared
// sentinel so errors.Is matches at every layer.
var ErrUnavailable = structs.ErrStoreUnavailable

type Querier interface {
	Available() bool
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, optionsAndArgs ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, optionsAndArgs ...interface{}) pgx.Row
}

type Params struct {
	fx.In
	Config config.IConfig
	Logger logger.Logger
}

type dbConn struct {
	dbPool *pgxpool.Pool
	logger logger.Logger
}

func NewDBConn(params Params) (Querier, error) {

	var (
		dns = params.Config.GetString("database.dns")
		ctx = context.Background()
	)

	if dns == "" {
		params.Logger.Warn(ctx, "DB: no connection string, catalog reads degrade to the bundled seed")
		return &dbConn{logger: params.Logger}, nil
	}

	db, err := pgxpool.New(ctx, dns)
	if err != nil {
		params.Logger.Error(ctx, "Err on pgxpool.New", zap.Error(err))
		return nil, err
	}

	if err = db.Ping(ctx); err != nil {
		params.Logger.Error(ctx, "Err on db.Ping", zap.Error(err))
		return nil, err
	}

	params.Logger.Info(ctx, "DB: Connected successfully")

	return &dbConn{
		dbPool: db,
		logger: params.Logger,
	}, nil
}

func (db *dbConn) Available() bool {
	return db.dbPool != nil
}

func (db *dbConn) Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	if db.dbPool == nil {
		return pgconn.CommandTag{}, ErrUnavailable
	}
	db.logger.Debug(ctx, "DB: Exec sql", zap.String("sql", sql), zap.Any("args", args))
	return db.dbPool.Exec(ctx, sql, args...)
}

func (db *dbConn) Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	if db.dbPool == nil {
		return nil, ErrUnavailable
	}
	db.logger.Debug(ctx, "DB: Query sql", zap.String("sql", sql), zap.Any("args", args))
	return db.dbPool.Query(ctx, sql, args...)
}

func (db *dbConn) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	if db.dbPool == nil {
		return errRow{err: ErrUnavailable}
	}
	db.logger.Debug(ctx, "DB: QueryRow sql", zap.String("sql", sql), zap.Any("args", args))
	return db.dbPool.QueryRow(ctx, sql, args...)
}

type errRow struct{ err error }

func (r errRow) Scan(...interface{}) error { return r.err }

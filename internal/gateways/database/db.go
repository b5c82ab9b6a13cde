package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/amethystbot/amethyst/amethyst/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

const (
	defaultMaxRetries    = 3
	defaultRetryInterval = time.Second
)

type DBConfig struct {
	URL          string
	PoolSize     int
	MaxIdleConns int
	MaxLifetime  int
}

// DB owns the pgx pool used for batches and raw statements and the bun
// handle used by the repositories. Both point at the same database.
type DB struct {
	pool  *pgxpool.Pool
	bunDB *bun.DB
}

// Statement is one parameterised SQL statement inside a Batch.
type Statement struct {
	SQL  string
	Args []any
}

func Stmt(sql string, args ...any) Statement {
	return Statement{SQL: sql, Args: args}
}

func New(ctx context.Context, cfg DBConfig) (*DB, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}

	if cfg.PoolSize > 0 {
		poolConfig.MaxConns = int32(cfg.PoolSize)
	}
	if cfg.MaxIdleConns > 0 {
		poolConfig.MinConns = int32(cfg.MaxIdleConns)
	}
	if cfg.MaxLifetime > 0 {
		poolConfig.MaxConnLifetime = time.Duration(cfg.MaxLifetime) * time.Second
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	for attempt := 1; ; attempt++ {
		err = pool.Ping(ctx)
		if err == nil {
			break
		}
		if attempt == defaultMaxRetries {
			pool.Close()
			return nil, fmt.Errorf("failed to reach database after %d attempts: %w", attempt, err)
		}
		slog.Warn("Database ping failed, retrying",
			slog.String("type", "db"),
			slog.Int("attempt", attempt),
			slog.Any("error", err))
		select {
		case <-ctx.Done():
			pool.Close()
			return nil, ctx.Err()
		case <-time.After(defaultRetryInterval):
		}
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.URL)))
	if cfg.PoolSize > 0 {
		sqldb.SetMaxOpenConns(cfg.PoolSize)
	}

	return &DB{pool: pool, bunDB: bun.NewDB(sqldb, pgdialect.New())}, nil
}

func (db *DB) Pool() *pgxpool.Pool {
	return db.pool
}

func (db *DB) BunDB() *bun.DB {
	return db.bunDB
}

// Batch runs stmts in order inside one transaction and one round-trip.
// Command tags are returned in statement order. Any failure rolls back.
func (db *DB) Batch(ctx context.Context, stmts ...Statement) ([]pgconn.CommandTag, error) {
	if len(stmts) == 0 {
		return nil, nil
	}

	b := &pgx.Batch{}
	args := make([]any, 0, len(stmts))
	for _, s := range stmts {
		b.Queue(s.SQL, s.Args...)
		args = append(args, s.Args)
	}

	ql := logger.NewQueryLogger("batch", fmt.Sprintf("%d statements", len(stmts)), args...)
	tags := make([]pgconn.CommandTag, 0, len(stmts))

	err := pgx.BeginFunc(ctx, db.pool, func(tx pgx.Tx) error {
		br := tx.SendBatch(ctx, b)
		for i := range stmts {
			tag, err := br.Exec()
			if err != nil {
				_ = br.Close()
				return fmt.Errorf("statement %d: %w", i, err)
			}
			tags = append(tags, tag)
		}
		return br.Close()
	})

	var affected int64
	for _, t := range tags {
		affected += t.RowsAffected()
	}
	ql.Log(err, affected)
	if err != nil {
		return nil, err
	}
	return tags, nil
}

func (db *DB) ExecWithLog(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	ql := logger.NewQueryLogger("exec", sql, args...)
	result, err := db.pool.Exec(ctx, sql, args...)
	ql.Log(err, result.RowsAffected())
	return result, err
}

func (db *DB) QueryWithLog(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	ql := logger.NewQueryLogger("query", sql, args...)
	rows, err := db.pool.Query(ctx, sql, args...)
	ql.Log(err, -1)
	return rows, err
}

func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
	if db.bunDB != nil {
		db.bunDB.Close()
	}
}

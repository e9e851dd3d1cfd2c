package postgres

import (
	"context"
	"database/sql"

	"github.com/bizledger/bizledger/internal/config"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/logger"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

type ctxKey string

const txKey ctxKey = "pg_tx"

// Conn is the subset of sqlx operations repositories use. Both *sqlx.DB
// and *sqlx.Tx satisfy it, which lets WithTx route repository calls
// through an open transaction transparently.
type Conn interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error)
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

// IClient is the database handle handed to repositories
type IClient interface {
	Conn(ctx context.Context) Conn
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	Close() error
}

type Client struct {
	db     *sqlx.DB
	logger *logger.Logger
}

// NewClient connects to Postgres using the configured DSN
func NewClient(cfg *config.Configuration, log *logger.Logger) (IClient, error) {
	db, err := sqlx.Connect("postgres", cfg.Postgres.GetDSN())
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to connect to postgres").
			Mark(ierr.ErrDatabase)
	}

	db.SetMaxOpenConns(cfg.Postgres.MaxOpen)
	db.SetMaxIdleConns(cfg.Postgres.MaxIdle)

	log.Infow("connected to postgres",
		"host", cfg.Postgres.Host,
		"database", cfg.Postgres.DBName)

	return &Client{db: db, logger: log}, nil
}

// Conn returns the active transaction from the context if one exists,
// otherwise the pooled connection.
func (c *Client) Conn(ctx context.Context) Conn {
	if tx, ok := ctx.Value(txKey).(*sqlx.Tx); ok {
		return tx
	}
	return c.db
}

// WithTx runs fn inside a transaction. Nested calls reuse the outer
// transaction.
func (c *Client) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey).(*sqlx.Tx); ok {
		return fn(ctx)
	}

	tx, err := c.db.BeginTxx(ctx, nil)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to begin transaction").
			Mark(ierr.ErrDatabase)
	}

	txCtx := context.WithValue(ctx, txKey, tx)
	if err := fn(txCtx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			c.logger.Errorw("transaction rollback failed", "error", rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to commit transaction").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (c *Client) Close() error {
	return c.db.Close()
}

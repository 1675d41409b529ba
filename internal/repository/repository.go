package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=repository.go -destination=mock/repository_mock.go

type QueryI interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

type TxI interface {
	QueryI
	Commit() error
	Rollback() error
}

type DBI interface {
	QueryI
	BeginTxI(ctx context.Context) (TxI, error)
}

type sqlxDB struct {
	*sqlx.DB
}

// NewDB adapts a sqlx handle to DBI.
func NewDB(db *sqlx.DB) DBI {
	return sqlxDB{DB: db}
}

func (d sqlxDB) BeginTxI(ctx context.Context) (TxI, error) {
	tx, err := d.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

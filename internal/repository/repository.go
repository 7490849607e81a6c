package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

type Queries struct {
	db    DBTX
	close func()
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

type Pool interface {
	DBTX
	Close()
}

// NewFromPool returns queries that close the pool on [Queries.Close].
func NewFromPool(pool Pool) *Queries {
	return &Queries{db: pool, close: pool.Close}
}

func (q *Queries) Close() error {
	if q.close != nil {
		q.close()
	}
	return nil
}

package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier est le sous-ensemble commun à *pgxpool.Pool et pgx.Tx. Les
// adaptateurs de ce package sont construits sur un Querier : le même code sert
// en direct sur le pool ou à l'intérieur d'une transaction du TxRunner.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

package infrastructure

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"
)

// NewPool connects to the resume database. The DSN comes from the config
// loader; there is no fallback default because a wrong silent default is
// worse than a loud startup failure.
func NewPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.Connect(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return pool, nil
}

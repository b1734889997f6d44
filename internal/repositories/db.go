package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/parkjy76/gw-stock-chart/internal/middlewares"
)

// ext returns the request-scoped transaction when one is present in the
// context, otherwise the shared connection pool.
func ext(ctx context.Context, db *sqlx.DB) sqlx.ExtContext {
	if tx := middlewares.GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return db
}

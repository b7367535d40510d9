package blobs

import (
	"context"
	"database/sql"
)

// querier is the subset of database/sql used by the SQL repositories.
// Both *sql.DB and *sql.Tx satisfy it.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Package pg bootstraps the PostgreSQL layer: a pgx/v5 connection pool with
// startup retry, goose schema migrations, a health probe, and error helpers
// for translating SQLSTATE codes into domain outcomes (duplicate key, not
// found, check violations).
//
// The API surface is deliberately small; callers work with *pgxpool.Pool
// directly and this package only owns lifecycle concerns.
package pg

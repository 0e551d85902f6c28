// Package database owns the PostgreSQL connection pool, schema migrations,
// and the repositories issuing SQL against pooled connections.
package database

// Package database provides the PostgreSQL connection pool and the
// repository persisting the analysis history.
package database

// Package server exposes the HTTP API: movie search and details, the
// review sentiment analysis endpoints, and the observability routes.
package server

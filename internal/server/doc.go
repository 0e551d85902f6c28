// Package server implements the HTTP server using Echo framework.
//
// Routes: users CRUD (list/create/get), health probes, /metrics, /version.
// Handlers split by domain: handlers_users.go, handlers_health.go.
package server

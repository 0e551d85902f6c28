// Package domain defines the core domain types and interfaces.
//
// No implementation code - just contracts. Interfaces live on the consumer
// side to prevent circular imports.
package domain

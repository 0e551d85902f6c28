// Package app is the application layer. It orchestrates use cases on top of
// the domain repositories and is the only component referencing more than
// one of them.
package app

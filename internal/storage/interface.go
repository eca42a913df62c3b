package storage

import "github.com/nisu0001/bea-apa3.0/internal/models"

// Provider persists the settings document. The application is
// single-threaded around the store: callers mutate the live document and then
// call Save, which rewrites the whole document.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Document access
	Document() *models.Document
	Save() error

	// Utils
	GetConfigPath() string
}

// Package store persists completed onboarding submissions. The in-memory
// store backs demo deployments; the PostgreSQL store is used when a database
// URL is configured.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/onboarding-wizard/internal/types"
)

// Entry is one stored submission. Fields holds the flattened payload; File
// holds upload metadata only, never the bytes.
type Entry struct {
	ID        uuid.UUID         `json:"id"`
	CreatedAt time.Time         `json:"createdAt"`
	Fields    map[string]string `json:"fields"`
	File      *types.FileRef    `json:"file,omitempty"`
}

// Store records submissions and lists them back in insertion order.
type Store interface {
	Save(ctx context.Context, fields map[string]string, file *types.FileRef) (*Entry, error)
	List(ctx context.Context) ([]*Entry, error)
	Close()
}

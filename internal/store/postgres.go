package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/jonathan/onboarding-wizard/internal/types"
)

// PostgresStore persists submissions to PostgreSQL. The flattened payload is
// stored as JSONB alongside the file metadata columns.
type PostgresStore struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// ConnectPostgres establishes a connection pool and verifies it with a ping.
func ConnectPostgres(ctx context.Context, databaseURL string, logger *zap.Logger) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &PostgresStore{pool: pool, logger: logger}, nil
}

// Save inserts a submission row and returns the stored entry.
func (p *PostgresStore) Save(ctx context.Context, fields map[string]string, file *types.FileRef) (*Entry, error) {
	payloadJSON, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal submission payload: %w", err)
	}

	var fileName, fileType string
	var fileSize int64
	if file != nil {
		fileName, fileType, fileSize = file.Filename, file.ContentType, file.Size
	}

	var id uuid.UUID
	var createdAt time.Time
	err = p.pool.QueryRow(ctx,
		`INSERT INTO submissions (payload, file_name, file_type, file_size)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		payloadJSON, fileName, fileType, fileSize,
	).Scan(&id, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save submission: %w", err)
	}

	p.logger.Info("submission saved", zap.String("id", id.String()))
	return &Entry{ID: id, CreatedAt: createdAt, Fields: fields, File: file}, nil
}

// List returns all submissions in insertion order.
func (p *PostgresStore) List(ctx context.Context) ([]*Entry, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT id, created_at, payload, file_name, file_type, file_size
		 FROM submissions ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		var (
			entry       Entry
			payloadJSON []byte
			fileName    string
			fileType    string
			fileSize    int64
		)
		if err := rows.Scan(&entry.ID, &entry.CreatedAt, &payloadJSON, &fileName, &fileType, &fileSize); err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		if err := json.Unmarshal(payloadJSON, &entry.Fields); err != nil {
			return nil, fmt.Errorf("failed to unmarshal submission payload: %w", err)
		}
		if fileName != "" {
			entry.File = &types.FileRef{Filename: fileName, ContentType: fileType, Size: fileSize}
		}
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read submissions: %w", err)
	}
	return entries, nil
}

// Close closes the connection pool.
func (p *PostgresStore) Close() {
	if p.pool != nil {
		p.pool.Close()
	}
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// PostgresStore keeps documents in the documents table as jsonb
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a PostgresStore on an open connection
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Ensure PostgresStore implements DocumentStore
var _ DocumentStore = (*PostgresStore)(nil)

func (s *PostgresStore) Get(ctx context.Context, collection, id string) ([]byte, error) {
	query := `SELECT data FROM documents WHERE collection = $1 AND id = $2`

	var data []byte
	err := s.db.QueryRowContext(ctx, query, collection, id).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		zap.S().Errorf("❌ Error fetching document %s/%s: %v", collection, id, err)
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return data, nil
}

// Set inserts the document or replaces its data if it already exists
func (s *PostgresStore) Set(ctx context.Context, collection, id string, data []byte) error {
	query := `
		INSERT INTO documents (collection, id, data, updated_at)
		VALUES ($1, $2, $3::jsonb, NOW())
		ON CONFLICT (collection, id)
		DO UPDATE SET
			data = EXCLUDED.data,
			updated_at = NOW()
	`

	if _, err := s.db.ExecContext(ctx, query, collection, id, string(data)); err != nil {
		zap.S().Errorf("❌ Error upserting document %s/%s: %v", collection, id, err)
		return fmt.Errorf("failed to set document: %w", err)
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, collection, id string) error {
	query := `DELETE FROM documents WHERE collection = $1 AND id = $2`

	result, err := s.db.ExecContext(ctx, query, collection, id)
	if err != nil {
		zap.S().Errorf("❌ Error deleting document %s/%s: %v", collection, id, err)
		return fmt.Errorf("failed to delete document: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns the collection's documents ordered by id
func (s *PostgresStore) List(ctx context.Context, collection string) ([]Document, error) {
	query := `SELECT id, data FROM documents WHERE collection = $1 ORDER BY id ASC`

	rows, err := s.db.QueryContext(ctx, query, collection)
	if err != nil {
		zap.S().Errorf("❌ Error listing documents in %s: %v", collection, err)
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var doc Document
		if err := rows.Scan(&doc.ID, &doc.Data); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate documents: %w", err)
	}
	return docs, nil
}

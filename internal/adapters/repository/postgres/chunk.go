package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"media-vault/internal/core/domain"
	"media-vault/internal/core/port"

	"github.com/google/uuid"
)

type sqlChunkRepository struct {
	db SQLQuerier
}

// NewSQLChunkRepository creates a new sqlChunkRepository
func NewSQLChunkRepository(db SQLQuerier) port.ChunkRepository {
	return &sqlChunkRepository{db: db}
}

// Upsert stores a chunk row. The (session_id, chunk_index) pair is unique;
// a resubmitted index replaces its previous row atomically, so chunk
// admission needs no cross-chunk lock.
func (s *sqlChunkRepository) Upsert(ctx context.Context, chunk domain.Chunk) error {
	query := `
		INSERT INTO chunk (session_id, chunk_index, size_bytes, checksum_sha256, storage_key)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (session_id, chunk_index)
		DO UPDATE SET size_bytes = EXCLUDED.size_bytes, checksum_sha256 = EXCLUDED.checksum_sha256, storage_key = EXCLUDED.storage_key`

	_, err := s.db.ExecContext(ctx, query, chunk.SessionID, chunk.Index, chunk.SizeBytes, chunk.ChecksumSHA256, chunk.StorageKey)
	if err != nil {
		return fmt.Errorf("error upserting chunk: %w", err)
	}
	return nil
}

func (s *sqlChunkRepository) FindByIndex(ctx context.Context, sessionID uuid.UUID, index int) (*domain.Chunk, error) {
	query := `
		SELECT session_id, chunk_index, size_bytes, checksum_sha256, storage_key, created_at
		FROM chunk
		WHERE session_id = $1 AND chunk_index = $2`

	var row dbChunk
	err := s.db.QueryRowContext(ctx, query, sessionID, index).Scan(
		&row.SessionID,
		&row.Index,
		&row.SizeBytes,
		&row.ChecksumSHA256,
		&row.StorageKey,
		&row.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrChunkNotFound
		}
		return nil, err
	}
	return row.ToDomain(), nil
}

// FindBySession returns a session's chunks ordered by index; assembly
// depends on this order, not on arrival order
func (s *sqlChunkRepository) FindBySession(ctx context.Context, sessionID uuid.UUID) ([]domain.Chunk, error) {
	query := `
		SELECT session_id, chunk_index, size_bytes, checksum_sha256, storage_key, created_at
		FROM chunk
		WHERE session_id = $1
		ORDER BY chunk_index`

	rows, err := s.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var chunks []domain.Chunk
	for rows.Next() {
		var row dbChunk
		if err := rows.Scan(
			&row.SessionID,
			&row.Index,
			&row.SizeBytes,
			&row.ChecksumSHA256,
			&row.StorageKey,
			&row.CreatedAt,
		); err != nil {
			return nil, err
		}
		chunks = append(chunks, *row.ToDomain())
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return chunks, nil
}

func (s *sqlChunkRepository) CountBySession(ctx context.Context, sessionID uuid.UUID) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM chunk WHERE session_id = $1`, sessionID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (s *sqlChunkRepository) DeleteBySession(ctx context.Context, sessionID uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM chunk WHERE session_id = $1`, sessionID)
	if err != nil {
		return fmt.Errorf("error deleting chunks: %w", err)
	}
	return nil
}

type dbChunk struct {
	SessionID      uuid.UUID `db:"session_id"`
	Index          int       `db:"chunk_index"`
	SizeBytes      int64     `db:"size_bytes"`
	ChecksumSHA256 string    `db:"checksum_sha256"`
	StorageKey     string    `db:"storage_key"`
	CreatedAt      time.Time `db:"created_at"`
}

// ToDomain converts db obj to domain
func (c *dbChunk) ToDomain() *domain.Chunk {
	return &domain.Chunk{
		SessionID:      c.SessionID,
		Index:          c.Index,
		SizeBytes:      c.SizeBytes,
		ChecksumSHA256: c.ChecksumSHA256,
		StorageKey:     c.StorageKey,
		CreatedAt:      c.CreatedAt,
	}
}

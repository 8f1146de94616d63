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

type sqlUploadSessionRepository struct {
	db SQLQuerier
}

// NewSQLUploadSessionRepository creates a new sqlUploadSessionRepository
func NewSQLUploadSessionRepository(db SQLQuerier) port.UploadSessionRepository {
	return &sqlUploadSessionRepository{db: db}
}

const sessionColumns = `id, filename, mime_type, declared_size, expected_chunks, expires_at, status, failure_reason, folder_id, owner_id, created_at, updated_at`

// Create creates an upload session
func (s *sqlUploadSessionRepository) Create(ctx context.Context, session domain.UploadSession) error {
	query := `
		INSERT INTO upload_session (
			id, filename, mime_type, declared_size, expected_chunks, expires_at, status, folder_id, owner_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := s.db.ExecContext(
		ctx,
		query,
		session.ID,
		session.Filename,
		session.MimeType,
		session.DeclaredSize,
		session.ExpectedChunks,
		session.ExpiresAt,
		session.Status,
		session.FolderID,
		session.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("error inserting upload session: %w", err)
	}
	return nil
}

func (s *sqlUploadSessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.UploadSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM upload_session WHERE id = $1`

	row, err := scanSession(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUnknownSession
		}
		return nil, err
	}
	return row, nil
}

// TransitionStatus flips the session status only when it still holds the
// expected source status. The conditional update is the serialization point
// for finalize claims and expiry marking: first writer wins.
func (s *sqlUploadSessionRepository) TransitionStatus(ctx context.Context, id uuid.UUID, from, to domain.UploadSessionStatus) (bool, error) {
	query := `UPDATE upload_session SET status = $1, updated_at = now() WHERE id = $2 AND status = $3`

	result, err := s.db.ExecContext(ctx, query, to, id, from)
	if err != nil {
		return false, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	if rows > 0 {
		return true, nil
	}

	var exists bool
	if err := s.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM upload_session WHERE id = $1)`, id).Scan(&exists); err != nil {
		return false, err
	}
	if !exists {
		return false, domain.ErrUnknownSession
	}
	return false, nil
}

// MarkFailed records the surfaced failure reason; failed sessions stay
// queryable until reaped
func (s *sqlUploadSessionRepository) MarkFailed(ctx context.Context, id uuid.UUID, reason string) error {
	query := `UPDATE upload_session SET status = $1, failure_reason = $2, updated_at = now() WHERE id = $3`

	result, err := s.db.ExecContext(ctx, query, domain.UploadSessionStatusFailed, reason, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrUnknownSession
	}
	return nil
}

func (s *sqlUploadSessionRepository) FindReapable(ctx context.Context, now time.Time) ([]domain.UploadSession, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM upload_session s
		WHERE (s.status IN ('pending', 'uploaded') AND s.expires_at < $1)
		   OR (s.status IN ('expired', 'failed', 'completed') AND EXISTS (SELECT 1 FROM chunk c WHERE c.session_id = s.id))`

	rows, err := s.db.QueryContext(ctx, query, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []domain.UploadSession
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, *session)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sessions, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(scanner rowScanner) (*domain.UploadSession, error) {
	var row dbUploadSession
	err := scanner.Scan(
		&row.ID,
		&row.Filename,
		&row.MimeType,
		&row.DeclaredSize,
		&row.ExpectedChunks,
		&row.ExpiresAt,
		&row.Status,
		&row.FailureReason,
		&row.FolderID,
		&row.OwnerID,
		&row.CreatedAt,
		&row.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return row.ToDomain(), nil
}

type dbUploadSession struct {
	ID             uuid.UUID      `db:"id"`
	Filename       string         `db:"filename"`
	MimeType       string         `db:"mime_type"`
	DeclaredSize   int64          `db:"declared_size"`
	ExpectedChunks int            `db:"expected_chunks"`
	ExpiresAt      time.Time      `db:"expires_at"`
	Status         string         `db:"status"`
	FailureReason  sql.NullString `db:"failure_reason"`
	FolderID       *uuid.UUID     `db:"folder_id"`
	OwnerID        string         `db:"owner_id"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
}

// ToDomain converts db obj to domain
func (s *dbUploadSession) ToDomain() *domain.UploadSession {
	return &domain.UploadSession{
		ID:             s.ID,
		Filename:       s.Filename,
		MimeType:       s.MimeType,
		DeclaredSize:   s.DeclaredSize,
		ExpectedChunks: s.ExpectedChunks,
		ExpiresAt:      s.ExpiresAt,
		Status:         domain.UploadSessionStatus(s.Status),
		FailureReason:  s.FailureReason.String,
		FolderID:       s.FolderID,
		OwnerID:        s.OwnerID,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"media-vault/internal/core/domain"
	"media-vault/internal/core/port"

	"github.com/google/uuid"
)

type sqlAssetRepository struct {
	db SQLQuerier
}

// NewSQLAssetRepository creates a new sqlAssetRepository
func NewSQLAssetRepository(db SQLQuerier) port.AssetRepository {
	return &sqlAssetRepository{db: db}
}

const assetColumns = `id, filename, original_name, mime_type, extension, size_bytes, storage_key, checksum_sha256, width, height, duration, folder_id, processing, steps, version, parent_asset_id, is_public, owner_id, created_at, updated_at, deleted_at`

// InsertIfAbsent resolves the dedup race with a single constrained insert:
// the partial unique index on checksum_sha256 makes the insert a no-op when
// a live row already holds the digest, and the loser re-reads the winner.
func (s *sqlAssetRepository) InsertIfAbsent(ctx context.Context, asset domain.Asset) (*domain.Asset, bool, error) {

	steps, err := json.Marshal(asset.Steps)
	if err != nil {
		return nil, false, fmt.Errorf("error encoding steps: %w", err)
	}

	query := `
		INSERT INTO asset (
			id, filename, original_name, mime_type, extension, size_bytes, storage_key,
			checksum_sha256, folder_id, processing, steps, version, parent_asset_id, is_public, owner_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (checksum_sha256) WHERE deleted_at IS NULL DO NOTHING
		RETURNING id`

	// the winner may itself be soft-deleted between attempts, so bound the
	// insert/re-read loop instead of spinning
	for attempt := 0; attempt < 3; attempt++ {
		var insertedID uuid.UUID
		err = s.db.QueryRowContext(
			ctx,
			query,
			asset.ID,
			asset.Filename,
			asset.OriginalName,
			asset.MimeType,
			asset.Extension,
			asset.SizeBytes,
			asset.StorageKey,
			asset.ChecksumSHA256,
			asset.FolderID,
			asset.Processing,
			steps,
			asset.Version,
			asset.ParentAssetID,
			asset.IsPublic,
			asset.OwnerID,
		).Scan(&insertedID)
		if err == nil {
			created, findErr := s.FindByID(ctx, insertedID)
			if findErr != nil {
				return nil, false, findErr
			}
			return created, true, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, false, fmt.Errorf("error inserting asset: %w", err)
		}

		winner, findErr := s.FindByDigest(ctx, asset.ChecksumSHA256)
		if findErr == nil {
			return winner, false, nil
		}
		if !errors.Is(findErr, domain.ErrAssetNotFound) {
			return nil, false, findErr
		}
	}
	return nil, false, fmt.Errorf("could not insert asset with digest %s", asset.ChecksumSHA256)
}

func (s *sqlAssetRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM asset WHERE id = $1 AND deleted_at IS NULL`
	return s.queryOne(ctx, query, id)
}

func (s *sqlAssetRepository) FindByDigest(ctx context.Context, digest string) (*domain.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM asset WHERE checksum_sha256 = $1 AND deleted_at IS NULL`
	return s.queryOne(ctx, query, digest)
}

func (s *sqlAssetRepository) ListByFolder(ctx context.Context, folderID *uuid.UUID) ([]domain.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM asset WHERE folder_id IS NOT DISTINCT FROM $1 AND deleted_at IS NULL ORDER BY created_at`

	rows, err := s.db.QueryContext(ctx, query, folderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assets []domain.Asset
	for rows.Next() {
		asset, err := scanAsset(rows)
		if err != nil {
			return nil, err
		}
		assets = append(assets, *asset)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return assets, nil
}

func (s *sqlAssetRepository) UpdateFolder(ctx context.Context, id uuid.UUID, folderID *uuid.UUID) error {
	query := `UPDATE asset SET folder_id = $1, updated_at = now() WHERE id = $2 AND deleted_at IS NULL`
	return s.execExpectingRow(ctx, query, folderID, id)
}

func (s *sqlAssetRepository) UpdateSteps(ctx context.Context, id uuid.UUID, steps map[domain.ProcessingStep]domain.StepResult, summary domain.AssetProcessingStatus) error {
	encoded, err := json.Marshal(steps)
	if err != nil {
		return fmt.Errorf("error encoding steps: %w", err)
	}
	query := `UPDATE asset SET steps = $1, processing = $2, updated_at = now() WHERE id = $3 AND deleted_at IS NULL`
	return s.execExpectingRow(ctx, query, encoded, summary, id)
}

func (s *sqlAssetRepository) UpdateDimensions(ctx context.Context, id uuid.UUID, width, height *int, duration *float64) error {
	query := `UPDATE asset SET width = $1, height = $2, duration = $3, updated_at = now() WHERE id = $4 AND deleted_at IS NULL`
	return s.execExpectingRow(ctx, query, width, height, duration, id)
}

// SoftDelete tombstones the asset; the row stays resolvable for version
// chains and usage audit, but drops out of every live query
func (s *sqlAssetRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE asset SET deleted_at = now(), updated_at = now() WHERE id = $1 AND deleted_at IS NULL`
	return s.execExpectingRow(ctx, query, id)
}

func (s *sqlAssetRepository) execExpectingRow(ctx context.Context, query string, args ...any) error {
	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrAssetNotFound
	}
	return nil
}

func (s *sqlAssetRepository) queryOne(ctx context.Context, query string, arg any) (*domain.Asset, error) {
	asset, err := scanAsset(s.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAssetNotFound
		}
		return nil, err
	}
	return asset, nil
}

func scanAsset(scanner rowScanner) (*domain.Asset, error) {
	var row dbAsset
	err := scanner.Scan(
		&row.ID,
		&row.Filename,
		&row.OriginalName,
		&row.MimeType,
		&row.Extension,
		&row.SizeBytes,
		&row.StorageKey,
		&row.ChecksumSHA256,
		&row.Width,
		&row.Height,
		&row.Duration,
		&row.FolderID,
		&row.Processing,
		&row.Steps,
		&row.Version,
		&row.ParentAssetID,
		&row.IsPublic,
		&row.OwnerID,
		&row.CreatedAt,
		&row.UpdatedAt,
		&row.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return row.ToDomain()
}

type dbAsset struct {
	ID             uuid.UUID       `db:"id"`
	Filename       string          `db:"filename"`
	OriginalName   string          `db:"original_name"`
	MimeType       string          `db:"mime_type"`
	Extension      string          `db:"extension"`
	SizeBytes      int64           `db:"size_bytes"`
	StorageKey     string          `db:"storage_key"`
	ChecksumSHA256 string          `db:"checksum_sha256"`
	Width          sql.NullInt64   `db:"width"`
	Height         sql.NullInt64   `db:"height"`
	Duration       sql.NullFloat64 `db:"duration"`
	FolderID       *uuid.UUID      `db:"folder_id"`
	Processing     string          `db:"processing"`
	Steps          []byte          `db:"steps"`
	Version        int             `db:"version"`
	ParentAssetID  *uuid.UUID      `db:"parent_asset_id"`
	IsPublic       bool            `db:"is_public"`
	OwnerID        string          `db:"owner_id"`
	CreatedAt      time.Time       `db:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at"`
	DeletedAt      *time.Time      `db:"deleted_at"`
}

// ToDomain converts db obj to domain
func (a *dbAsset) ToDomain() (*domain.Asset, error) {
	var steps map[domain.ProcessingStep]domain.StepResult
	if len(a.Steps) > 0 {
		if err := json.Unmarshal(a.Steps, &steps); err != nil {
			return nil, fmt.Errorf("error decoding steps: %w", err)
		}
	}

	asset := &domain.Asset{
		ID:             a.ID,
		Filename:       a.Filename,
		OriginalName:   a.OriginalName,
		MimeType:       a.MimeType,
		Extension:      a.Extension,
		SizeBytes:      a.SizeBytes,
		StorageKey:     a.StorageKey,
		ChecksumSHA256: a.ChecksumSHA256,
		FolderID:       a.FolderID,
		Processing:     domain.AssetProcessingStatus(a.Processing),
		Steps:          steps,
		Version:        a.Version,
		ParentAssetID:  a.ParentAssetID,
		IsPublic:       a.IsPublic,
		OwnerID:        a.OwnerID,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
		DeletedAt:      a.DeletedAt,
	}
	if a.Width.Valid {
		w := int(a.Width.Int64)
		asset.Width = &w
	}
	if a.Height.Valid {
		h := int(a.Height.Int64)
		asset.Height = &h
	}
	if a.Duration.Valid {
		d := a.Duration.Float64
		asset.Duration = &d
	}
	return asset, nil
}

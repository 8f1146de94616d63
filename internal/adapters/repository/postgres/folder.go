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
	"github.com/lib/pq"
)

type sqlFolderRepository struct {
	db SQLQuerier
}

// NewSQLFolderRepository creates a new sqlFolderRepository
func NewSQLFolderRepository(db SQLQuerier) port.FolderRepository {
	return &sqlFolderRepository{db: db}
}

const folderColumns = `id, name, slug, path, parent_id, depth, materialized_path, sort_order, asset_count, total_size, created_at, updated_at, deleted_at`

// Create creates a folder; a path collision among live folders surfaces as
// ErrFolderPathTaken
func (s *sqlFolderRepository) Create(ctx context.Context, folder domain.Folder) error {
	query := `
		INSERT INTO folder (id, name, slug, path, parent_id, depth, materialized_path, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := s.db.ExecContext(
		ctx,
		query,
		folder.ID,
		folder.Name,
		folder.Slug,
		folder.Path,
		folder.ParentID,
		folder.Depth,
		folder.MaterializedPath,
		folder.SortOrder,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return fmt.Errorf("%w: %s", domain.ErrFolderPathTaken, folder.Path)
		}
		return fmt.Errorf("error inserting folder: %w", err)
	}
	return nil
}

func (s *sqlFolderRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Folder, error) {
	query := `SELECT ` + folderColumns + ` FROM folder WHERE id = $1 AND deleted_at IS NULL`
	return s.queryOne(ctx, query, id)
}

// FindByIDForUpdate locks the folder row until the enclosing transaction
// ends, serializing subtree mutations on the same tree region
func (s *sqlFolderRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Folder, error) {
	query := `SELECT ` + folderColumns + ` FROM folder WHERE id = $1 AND deleted_at IS NULL FOR UPDATE`
	return s.queryOne(ctx, query, id)
}

func (s *sqlFolderRepository) FindChildren(ctx context.Context, parentID *uuid.UUID) ([]domain.Folder, error) {
	query := `SELECT ` + folderColumns + ` FROM folder WHERE parent_id IS NOT DISTINCT FROM $1 AND deleted_at IS NULL ORDER BY sort_order, path`
	return s.queryMany(ctx, query, parentID)
}

// FindSubtree returns the folder and all descendants by materialized-path
// prefix, shallowest first so top-down rewrites see parents before children
func (s *sqlFolderRepository) FindSubtree(ctx context.Context, materializedPrefix string) ([]domain.Folder, error) {
	query := `SELECT ` + folderColumns + ` FROM folder WHERE materialized_path LIKE $1 || '%' AND deleted_at IS NULL ORDER BY depth, path`
	return s.queryMany(ctx, query, materializedPrefix)
}

func (s *sqlFolderRepository) UpdateTreePosition(ctx context.Context, id uuid.UUID, parentID *uuid.UUID, path string, depth int, materializedPath string) error {
	query := `UPDATE folder SET parent_id = $1, path = $2, depth = $3, materialized_path = $4, updated_at = now() WHERE id = $5 AND deleted_at IS NULL`

	result, err := s.db.ExecContext(ctx, query, parentID, path, depth, materializedPath, id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return fmt.Errorf("%w: %s", domain.ErrFolderPathTaken, path)
		}
		return err
	}
	return expectFolderRow(result)
}

func (s *sqlFolderRepository) UpdateName(ctx context.Context, id uuid.UUID, name, slug string) error {
	query := `UPDATE folder SET name = $1, slug = $2, updated_at = now() WHERE id = $3 AND deleted_at IS NULL`

	result, err := s.db.ExecContext(ctx, query, name, slug, id)
	if err != nil {
		return err
	}
	return expectFolderRow(result)
}

// AdjustAggregates shifts the cached count/size. Callers run it in the same
// transaction as the asset mutation that caused the shift; the cache is
// never rebuilt by a background pass.
func (s *sqlFolderRepository) AdjustAggregates(ctx context.Context, id uuid.UUID, deltaCount, deltaSize int64) error {
	query := `UPDATE folder SET asset_count = asset_count + $1, total_size = total_size + $2, updated_at = now() WHERE id = $3 AND deleted_at IS NULL`

	result, err := s.db.ExecContext(ctx, query, deltaCount, deltaSize, id)
	if err != nil {
		return err
	}
	return expectFolderRow(result)
}

func (s *sqlFolderRepository) CountLiveChildren(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM folder WHERE parent_id = $1 AND deleted_at IS NULL`, id).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (s *sqlFolderRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE folder SET deleted_at = now(), updated_at = now() WHERE id = $1 AND deleted_at IS NULL`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return expectFolderRow(result)
}

func expectFolderRow(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrFolderNotFound
	}
	return nil
}

func (s *sqlFolderRepository) queryOne(ctx context.Context, query string, arg any) (*domain.Folder, error) {
	folder, err := scanFolder(s.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrFolderNotFound
		}
		return nil, err
	}
	return folder, nil
}

func (s *sqlFolderRepository) queryMany(ctx context.Context, query string, arg any) ([]domain.Folder, error) {
	rows, err := s.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var folders []domain.Folder
	for rows.Next() {
		folder, err := scanFolder(rows)
		if err != nil {
			return nil, err
		}
		folders = append(folders, *folder)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return folders, nil
}

func scanFolder(scanner rowScanner) (*domain.Folder, error) {
	var row dbFolder
	err := scanner.Scan(
		&row.ID,
		&row.Name,
		&row.Slug,
		&row.Path,
		&row.ParentID,
		&row.Depth,
		&row.MaterializedPath,
		&row.SortOrder,
		&row.AssetCount,
		&row.TotalSize,
		&row.CreatedAt,
		&row.UpdatedAt,
		&row.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return row.ToDomain(), nil
}

type dbFolder struct {
	ID               uuid.UUID  `db:"id"`
	Name             string     `db:"name"`
	Slug             string     `db:"slug"`
	Path             string     `db:"path"`
	ParentID         *uuid.UUID `db:"parent_id"`
	Depth            int        `db:"depth"`
	MaterializedPath string     `db:"materialized_path"`
	SortOrder        int        `db:"sort_order"`
	AssetCount       int64      `db:"asset_count"`
	TotalSize        int64      `db:"total_size"`
	CreatedAt        time.Time  `db:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at"`
	DeletedAt        *time.Time `db:"deleted_at"`
}

// ToDomain converts db obj to domain
func (f *dbFolder) ToDomain() *domain.Folder {
	return &domain.Folder{
		ID:               f.ID,
		Name:             f.Name,
		Slug:             f.Slug,
		Path:             f.Path,
		ParentID:         f.ParentID,
		Depth:            f.Depth,
		MaterializedPath: f.MaterializedPath,
		SortOrder:        f.SortOrder,
		AssetCount:       f.AssetCount,
		TotalSize:        f.TotalSize,
		CreatedAt:        f.CreatedAt,
		UpdatedAt:        f.UpdatedAt,
		DeletedAt:        f.DeletedAt,
	}
}

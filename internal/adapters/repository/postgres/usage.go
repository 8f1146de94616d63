package postgres

import (
	"context"
	"fmt"
	"time"

	"media-vault/internal/core/domain"
	"media-vault/internal/core/port"

	"github.com/google/uuid"
)

type sqlUsageRepository struct {
	db SQLQuerier
}

// NewSQLUsageRepository creates a new sqlUsageRepository
func NewSQLUsageRepository(db SQLQuerier) port.UsageRepository {
	return &sqlUsageRepository{db: db}
}

// Upsert records a usage; re-recording the same tuple updates the usage
// type but keeps the original used_at
func (s *sqlUsageRepository) Upsert(ctx context.Context, usage domain.AssetUsage) error {
	query := `
		INSERT INTO asset_usage (asset_id, entity_type, entity_id, field_name, usage_type, used_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (asset_id, entity_type, entity_id, field_name)
		DO UPDATE SET usage_type = EXCLUDED.usage_type`

	_, err := s.db.ExecContext(ctx, query, usage.AssetID, usage.EntityType, usage.EntityID, usage.FieldName, usage.UsageType, usage.UsedAt)
	if err != nil {
		return fmt.Errorf("error upserting usage: %w", err)
	}
	return nil
}

// Delete removes a usage record; deleting an absent record is a no-op
func (s *sqlUsageRepository) Delete(ctx context.Context, assetID uuid.UUID, entityType, entityID, fieldName string) error {
	query := `DELETE FROM asset_usage WHERE asset_id = $1 AND entity_type = $2 AND entity_id = $3 AND field_name = $4`

	_, err := s.db.ExecContext(ctx, query, assetID, entityType, entityID, fieldName)
	if err != nil {
		return fmt.Errorf("error deleting usage: %w", err)
	}
	return nil
}

func (s *sqlUsageRepository) FindByAsset(ctx context.Context, assetID uuid.UUID) ([]domain.AssetUsage, error) {
	query := `
		SELECT asset_id, entity_type, entity_id, field_name, usage_type, used_at
		FROM asset_usage
		WHERE asset_id = $1
		ORDER BY used_at`

	rows, err := s.db.QueryContext(ctx, query, assetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var usages []domain.AssetUsage
	for rows.Next() {
		var row dbAssetUsage
		if err := rows.Scan(&row.AssetID, &row.EntityType, &row.EntityID, &row.FieldName, &row.UsageType, &row.UsedAt); err != nil {
			return nil, err
		}
		usages = append(usages, *row.ToDomain())
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return usages, nil
}

func (s *sqlUsageRepository) ExistsByAsset(ctx context.Context, assetID uuid.UUID) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM asset_usage WHERE asset_id = $1)`, assetID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

type dbAssetUsage struct {
	AssetID    uuid.UUID `db:"asset_id"`
	EntityType string    `db:"entity_type"`
	EntityID   string    `db:"entity_id"`
	FieldName  string    `db:"field_name"`
	UsageType  string    `db:"usage_type"`
	UsedAt     time.Time `db:"used_at"`
}

// ToDomain converts db obj to domain
func (u *dbAssetUsage) ToDomain() *domain.AssetUsage {
	return &domain.AssetUsage{
		AssetID:    u.AssetID,
		EntityType: u.EntityType,
		EntityID:   u.EntityID,
		FieldName:  u.FieldName,
		UsageType:  domain.UsageType(u.UsageType),
		UsedAt:     u.UsedAt,
	}
}

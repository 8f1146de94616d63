package postgres

import (
	"context"
	"database/sql"

	"media-vault/internal/core/port"
)

type sqlUnitOfWork struct {
	db *sql.DB
	tx *sql.Tx
}

// NewUnitOfWork creates a UnitOfWork over the database handle
func NewUnitOfWork(db *sql.DB) port.UnitOfWork {
	return &sqlUnitOfWork{db: db}
}

func (u *sqlUnitOfWork) querier() SQLQuerier {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *sqlUnitOfWork) SessionRepo() port.UploadSessionRepository {
	return NewSQLUploadSessionRepository(u.querier())
}

func (u *sqlUnitOfWork) ChunkRepo() port.ChunkRepository {
	return NewSQLChunkRepository(u.querier())
}

func (u *sqlUnitOfWork) AssetRepo() port.AssetRepository {
	return NewSQLAssetRepository(u.querier())
}

func (u *sqlUnitOfWork) FolderRepo() port.FolderRepository {
	return NewSQLFolderRepository(u.querier())
}

func (u *sqlUnitOfWork) UsageRepo() port.UsageRepository {
	return NewSQLUsageRepository(u.querier())
}

func (u *sqlUnitOfWork) Execute(ctx context.Context, fn func(uow port.UnitOfWork) error) error {
	tx, err := u.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	uowWithTx := &sqlUnitOfWork{db: u.db, tx: tx}

	if err := fn(uowWithTx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}

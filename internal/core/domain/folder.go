package domain

import (
	"time"

	"github.com/google/uuid"
)

// FolderDeleteStrategy controls what happens to a folder's contents on delete
type FolderDeleteStrategy string

const (
	FolderDeleteRejectIfNonEmpty FolderDeleteStrategy = "rejectIfNonEmpty"
	FolderDeleteCascade          FolderDeleteStrategy = "cascade"
	FolderDeleteReparentToRoot   FolderDeleteStrategy = "reparentChildrenToRoot"
)

// Folder is a node in the asset namespace. MaterializedPath encodes the
// ancestor id chain ("/<rootID>/.../<selfID>/") so subtree membership is a
// prefix test, never a recursive walk. AssetCount and TotalSize are cached
// leaf-local aggregates over live assets assigned directly to the folder;
// they do not roll up to ancestors.
type Folder struct {
	ID               uuid.UUID
	Name             string
	Slug             string
	Path             string
	ParentID         *uuid.UUID
	Depth            int
	MaterializedPath string
	SortOrder        int
	AssetCount       int64
	TotalSize        int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        *time.Time
}

package folder

import (
	"context"
	"log/slog"
	"strings"

	"media-vault/internal/core/domain"
	"media-vault/internal/core/port"

	"github.com/google/uuid"
)

type folderService struct {
	uow    port.UnitOfWork
	logger *slog.Logger
}

// NewFolderService creates a new folder service
func NewFolderService(uow port.UnitOfWork, logger *slog.Logger) port.FolderService {
	return &folderService{uow: uow, logger: logger}
}

// slugify reduces a display name to a lowercase path segment
func slugify(name string) string {
	var b strings.Builder
	prevDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			prevDash = false
		default:
			if !prevDash {
				b.WriteByte('-')
				prevDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// treePosition is the computed placement of a folder under a parent
type treePosition struct {
	path             string
	depth            int
	materializedPath string
}

// placeUnder computes a folder's position from its resolved parent
// (nil parent means root)
func placeUnder(parent *domain.Folder, id uuid.UUID, slug string) treePosition {
	if parent == nil {
		return treePosition{
			path:             "/" + slug,
			depth:            0,
			materializedPath: "/" + id.String() + "/",
		}
	}
	return treePosition{
		path:             parent.Path + "/" + slug,
		depth:            parent.Depth + 1,
		materializedPath: parent.MaterializedPath + id.String() + "/",
	}
}

// repositionSubtree rewrites path, depth and materialized path for a folder
// and all of its descendants after the folder moved to a new position.
// Must run inside the transaction that locked the subtree root. Descendants
// are rewritten by prefix substitution, never by recursive parent walks.
func repositionSubtree(ctx context.Context, uow port.UnitOfWork, root *domain.Folder, newParentID *uuid.UUID, pos treePosition) error {

	subtree, err := uow.FolderRepo().FindSubtree(ctx, root.MaterializedPath)
	if err != nil {
		return err
	}

	depthShift := pos.depth - root.Depth
	for _, node := range subtree {
		newPath := pos.path + strings.TrimPrefix(node.Path, root.Path)
		newMat := pos.materializedPath + strings.TrimPrefix(node.MaterializedPath, root.MaterializedPath)

		parentID := node.ParentID
		if node.ID == root.ID {
			parentID = newParentID
		}

		if err := uow.FolderRepo().UpdateTreePosition(ctx, node.ID, parentID, newPath, node.Depth+depthShift, newMat); err != nil {
			return err
		}
	}
	return nil
}

package persistence

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormWorkspaceRepository keeps workspace state (the recent-documents
// list) in the local database.
type GormWorkspaceRepository struct {
	db *gorm.DB
}

// NewGormWorkspaceRepository creates a new GORM workspace repository
func NewGormWorkspaceRepository(db *gorm.DB) *GormWorkspaceRepository {
	return &GormWorkspaceRepository{db: db}
}

// Touch records that the document at path was opened now. Reopening a
// known path refreshes its timestamp instead of adding a row.
func (r *GormWorkspaceRepository) Touch(ctx context.Context, path, name string) error {
	doc := RecentDocument{
		Path:       path,
		Name:       name,
		LastOpened: time.Now().UTC(),
	}

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "path"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "last_opened", "updated_at"}),
	}).Create(&doc)
	if result.Error != nil {
		return fmt.Errorf("failed to record recent document: %w", result.Error)
	}

	return nil
}

// Recent returns up to limit documents, most recently opened first.
func (r *GormWorkspaceRepository) Recent(ctx context.Context, limit int) ([]RecentDocument, error) {
	var docs []RecentDocument
	result := r.db.WithContext(ctx).
		Order("last_opened desc").
		Limit(limit).
		Find(&docs)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list recent documents: %w", result.Error)
	}

	return docs, nil
}

// Forget removes a path from the recent list. Forgetting an unknown
// path is not an error.
func (r *GormWorkspaceRepository) Forget(ctx context.Context, path string) error {
	result := r.db.WithContext(ctx).Where("path = ?", path).Delete(&RecentDocument{})
	if result.Error != nil {
		return fmt.Errorf("failed to forget recent document: %w", result.Error)
	}

	return nil
}

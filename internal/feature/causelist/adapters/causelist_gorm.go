// Package adapters provides the gorm cause list snapshot store.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"ecourts_backend/internal/feature/causelist/domain/entity"
	"ecourts_backend/internal/feature/causelist/usecase"
)

type causeListGorm struct {
	db *gorm.DB
}

var _ usecase.CauseListRepository = (*causeListGorm)(nil)

// NewCauseListGorm creates a cause list repository backed by db.
func NewCauseListGorm(db *gorm.DB) *causeListGorm {
	return &causeListGorm{db: db}
}

// Create inserts cl.
func (r *causeListGorm) Create(ctx context.Context, cl *entity.CauseList) error {
	return r.db.WithContext(ctx).Create(cl).Error
}

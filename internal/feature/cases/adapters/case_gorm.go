// Package adapters provides the gorm case store.
package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"ecourts_backend/internal/feature/cases/domain/entity"
	"ecourts_backend/internal/feature/cases/usecase"
)

// caseGorm implements usecase.CaseRepository on any gorm dialect.
type caseGorm struct {
	db *gorm.DB
}

var (
	_ usecase.CaseRepository = (*caseGorm)(nil)
	_ usecase.CNRLister      = (*caseGorm)(nil)
)

// NewCaseGorm creates a case repository backed by db.
func NewCaseGorm(db *gorm.DB) *caseGorm {
	return &caseGorm{db: db}
}

// FindByCNR returns the case with cnr, or usecase.ErrCaseNotFound.
func (r *caseGorm) FindByCNR(ctx context.Context, cnr string) (*entity.Case, error) {
	var c entity.Case
	if err := r.db.WithContext(ctx).Where("cnr = ?", cnr).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrCaseNotFound
		}
		return nil, err
	}
	return &c, nil
}

// Create inserts c. Returns usecase.ErrDuplicateCase when the CNR is already stored.
func (r *caseGorm) Create(ctx context.Context, c *entity.Case) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrDuplicateCase
		}
		return err
	}
	return nil
}

// Save writes every column of c, including the caller supplied UpdatedAt.
func (r *caseGorm) Save(ctx context.Context, c *entity.Case) error {
	return r.db.WithContext(ctx).Save(c).Error
}

// ListRecent returns up to limit cases, most recently updated first.
func (r *caseGorm) ListRecent(ctx context.Context, limit int) ([]entity.Case, error) {
	var cases []entity.Case
	err := r.db.WithContext(ctx).
		Order("updated_at DESC, id DESC").
		Limit(limit).
		Find(&cases).Error
	if err != nil {
		return nil, err
	}
	return cases, nil
}

// ListCNRs returns every stored CNR in insertion order.
func (r *caseGorm) ListCNRs(ctx context.Context) ([]string, error) {
	var cnrs []string
	if err := r.db.WithContext(ctx).Model(&entity.Case{}).Order("id").Pluck("cnr", &cnrs).Error; err != nil {
		return nil, err
	}
	return cnrs, nil
}

// ListPage returns cases ordered by ID starting at offset.
func (r *caseGorm) ListPage(ctx context.Context, offset, limit int) ([]entity.Case, error) {
	var cases []entity.Case
	if err := r.db.WithContext(ctx).Order("id").Offset(offset).Limit(limit).Find(&cases).Error; err != nil {
		return nil, err
	}
	return cases, nil
}

// ListHearingsBetween returns up to limit cases whose next hearing falls on a day in [from, to].
func (r *caseGorm) ListHearingsBetween(ctx context.Context, from, to time.Time, limit int) ([]entity.Case, error) {
	var cases []entity.Case
	err := r.hearingWindow(ctx, from, to).
		Order("next_hearing_date, id").
		Limit(limit).
		Find(&cases).Error
	if err != nil {
		return nil, err
	}
	return cases, nil
}

// Count returns the number of stored cases.
func (r *caseGorm) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&entity.Case{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

// CountHearingsBetween returns the number of cases with a next hearing on a day in [from, to].
func (r *caseGorm) CountHearingsBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var n int64
	if err := r.hearingWindow(ctx, from, to).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

// hearingWindow scopes a query to hearing dates within the calendar days from..to inclusive.
// Hearing dates are stored as UTC midnight.
func (r *caseGorm) hearingWindow(ctx context.Context, from, to time.Time) *gorm.DB {
	start := utcDay(from)
	end := utcDay(to).AddDate(0, 0, 1)
	return r.db.WithContext(ctx).Model(&entity.Case{}).
		Where("next_hearing_date >= ? AND next_hearing_date < ?", start, end)
}

// utcDay returns the calendar day of t as midnight UTC.
func utcDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

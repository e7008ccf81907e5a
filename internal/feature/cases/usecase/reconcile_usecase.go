package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"ecourts_backend/internal/feature/cases/domain/entity"
)

// DefaultRecentLimit is the number of cases returned by GET /api/cases.
const DefaultRecentLimit = 20

// stampPrecision is the coarsest timestamp precision of the supported databases.
const stampPrecision = time.Millisecond

// CaseLookup resolves a CNR to case information.
// Implemented by adapters/ecourts; errors are returned only for invalid input.
type CaseLookup interface {
	Lookup(ctx context.Context, cnr string) (entity.LookupResult, error)
	Available(ctx context.Context) bool
}

// CaseRepository persists cases keyed by CNR.
type CaseRepository interface {
	// FindByCNR returns the case with cnr, or ErrCaseNotFound.
	FindByCNR(ctx context.Context, cnr string) (*entity.Case, error)
	// Create inserts c. Returns ErrDuplicateCase when the CNR already exists.
	Create(ctx context.Context, c *entity.Case) error
	// Save updates every column of an existing case.
	Save(ctx context.Context, c *entity.Case) error
	// ListRecent returns up to limit cases, most recently updated first.
	ListRecent(ctx context.Context, limit int) ([]entity.Case, error)
}

// ReconcileUsecase merges lookup results into the case store.
type ReconcileUsecase struct {
	lookup CaseLookup
	cases  CaseRepository
	now    func() time.Time
}

// NewReconcileUsecase creates a ReconcileUsecase.
func NewReconcileUsecase(lookup CaseLookup, cases CaseRepository) *ReconcileUsecase {
	return &ReconcileUsecase{lookup: lookup, cases: cases, now: time.Now}
}

// NormalizeCNR trims and upper-cases a CNR.
func NormalizeCNR(cnr string) string {
	return strings.ToUpper(strings.TrimSpace(cnr))
}

// Reconcile looks up cnr and stores the result. Placeholder data is rejected with ErrDataUnavailable
// and never written. The returned CaseInfo is the lookup payload shown to the user.
func (u *ReconcileUsecase) Reconcile(ctx context.Context, cnr string) (*entity.Case, *entity.CaseInfo, error) {
	cnr = NormalizeCNR(cnr)
	if cnr == "" {
		return nil, nil, fmt.Errorf("%w: CNR number is required", ErrInvalidInput)
	}

	res, err := u.lookup.Lookup(ctx, cnr)
	if err != nil {
		return nil, nil, err
	}
	switch res.Kind {
	case entity.KindRealData:
	case entity.KindPlaceholder:
		slog.Info("lookup returned placeholder data", "cnr", cnr)
		return nil, &res.Info, ErrDataUnavailable
	default:
		return nil, nil, fmt.Errorf("unexpected lookup kind %d for %s", res.Kind, cnr)
	}

	c, err := u.upsert(ctx, cnr, &res.Info)
	if err != nil {
		return nil, nil, err
	}
	return c, &res.Info, nil
}

func (u *ReconcileUsecase) upsert(ctx context.Context, cnr string, info *entity.CaseInfo) (*entity.Case, error) {
	c, err := u.cases.FindByCNR(ctx, cnr)
	switch {
	case err == nil:
		return c, u.update(ctx, c, info)
	case !errors.Is(err, ErrCaseNotFound):
		return nil, fmt.Errorf("find case %s: %w", cnr, err)
	}

	c = &entity.Case{CNR: cnr}
	ApplyCaseInfo(c, info)
	c.UpdatedAt = u.stamp(time.Time{})
	err = u.cases.Create(ctx, c)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, ErrDuplicateCase) {
		return nil, fmt.Errorf("create case %s: %w", cnr, err)
	}

	// A concurrent request inserted the same CNR first; update its row instead.
	slog.Debug("case created concurrently, retrying as update", "cnr", cnr)
	c, err = u.cases.FindByCNR(ctx, cnr)
	if err != nil {
		return nil, fmt.Errorf("find case %s after conflict: %w", cnr, err)
	}
	return c, u.update(ctx, c, info)
}

func (u *ReconcileUsecase) update(ctx context.Context, c *entity.Case, info *entity.CaseInfo) error {
	ApplyCaseInfo(c, info)
	c.UpdatedAt = u.stamp(c.UpdatedAt)
	if err := u.cases.Save(ctx, c); err != nil {
		return fmt.Errorf("save case %s: %w", c.CNR, err)
	}
	return nil
}

// stamp returns the new UpdatedAt value. It is always strictly later than prev.
func (u *ReconcileUsecase) stamp(prev time.Time) time.Time {
	now := u.now().Truncate(stampPrecision)
	if !now.After(prev) {
		now = prev.Truncate(stampPrecision).Add(stampPrecision)
	}
	return now
}

// ListRecent returns the most recently updated cases. A non-positive limit uses DefaultRecentLimit.
func (u *ReconcileUsecase) ListRecent(ctx context.Context, limit int) ([]entity.Case, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	return u.cases.ListRecent(ctx, limit)
}

// ServiceAvailable reports whether the portal answers.
func (u *ReconcileUsecase) ServiceAvailable(ctx context.Context) bool {
	return u.lookup.Available(ctx)
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"ecourts_backend/internal/feature/cases/domain/entity"
	"ecourts_backend/internal/shared/ratelimiter"
)

// CNRLister lists the CNRs of every stored case.
type CNRLister interface {
	ListCNRs(ctx context.Context) ([]string, error)
}

// Reconciler is satisfied by ReconcileUsecase.
type Reconciler interface {
	Reconcile(ctx context.Context, cnr string) (*entity.Case, *entity.CaseInfo, error)
}

// RefreshSummary counts the outcome of a refresh run.
type RefreshSummary struct {
	Total       int
	Updated     int
	Unavailable int
	Failed      int
}

// RefreshUsecase re-reconciles every stored case, one portal call at a time.
type RefreshUsecase struct {
	cases      CNRLister
	reconciler Reconciler
	limiter    ratelimiter.Waiter
}

// NewRefreshUsecase creates a RefreshUsecase.
func NewRefreshUsecase(cases CNRLister, reconciler Reconciler, limiter ratelimiter.Waiter) *RefreshUsecase {
	return &RefreshUsecase{cases: cases, reconciler: reconciler, limiter: limiter}
}

// RefreshAll reconciles every stored CNR. A failure on one case is logged and the run continues;
// only listing failures and context cancellation abort it.
func (u *RefreshUsecase) RefreshAll(ctx context.Context) (RefreshSummary, error) {
	cnrs, err := u.cases.ListCNRs(ctx)
	if err != nil {
		return RefreshSummary{}, fmt.Errorf("list cases: %w", err)
	}

	sum := RefreshSummary{Total: len(cnrs)}
	for _, cnr := range cnrs {
		if err := u.limiter.Wait(ctx); err != nil {
			return sum, err
		}

		_, _, err := u.reconciler.Reconcile(ctx, cnr)
		switch {
		case err == nil:
			sum.Updated++
		case errors.Is(err, ErrDataUnavailable):
			sum.Unavailable++
		default:
			sum.Failed++
			slog.Error("failed to refresh case", "cnr", cnr, "error", err)
		}
	}
	return sum, nil
}

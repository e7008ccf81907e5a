// Package usecase selects and bounds hearing listings.
package usecase

import (
	"context"
	"errors"
	"strings"

	"ecourts_backend/internal/feature/hearings/domain/entity"
)

const (
	// DefaultUpcomingDays is used when no day count is requested.
	DefaultUpcomingDays = 7
	// MaxUpcomingDays bounds the upcoming range.
	MaxUpcomingDays = 30
)

// ErrUnknownListing is returned for a listing type other than today, tomorrow or upcoming.
var ErrUnknownListing = errors.New("unknown hearing listing")

// Generator produces hearing listings.
type Generator interface {
	Today(ctx context.Context) (entity.HearingList, error)
	Tomorrow(ctx context.Context) (entity.HearingList, error)
	Upcoming(ctx context.Context, days int) (entity.HearingList, error)
}

// HearingsUsecase serves hearing listings from a Generator.
type HearingsUsecase struct {
	gen Generator
}

// NewHearingsUsecase creates a HearingsUsecase.
func NewHearingsUsecase(gen Generator) *HearingsUsecase {
	return &HearingsUsecase{gen: gen}
}

// List returns the listing named by kind. An empty kind means today.
// days applies to the upcoming listing; non-positive values use DefaultUpcomingDays.
func (u *HearingsUsecase) List(ctx context.Context, kind string, days int) (entity.HearingList, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", "today":
		return u.gen.Today(ctx)
	case "tomorrow":
		return u.gen.Tomorrow(ctx)
	case "upcoming":
		return u.gen.Upcoming(ctx, ClampDays(days))
	default:
		return entity.HearingList{}, ErrUnknownListing
	}
}

// ClampDays bounds days to 1..MaxUpcomingDays, defaulting non-positive values.
func ClampDays(days int) int {
	if days <= 0 {
		return DefaultUpcomingDays
	}
	return min(days, MaxUpcomingDays)
}

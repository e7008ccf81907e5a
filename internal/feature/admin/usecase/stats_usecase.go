// Package usecase aggregates the counts shown on the dashboards.
package usecase

import (
	"context"
	"fmt"
	"time"

	authusecase "ecourts_backend/internal/feature/auth/usecase"
)

// upcomingDays is how far ahead the upcoming count looks.
const upcomingDays = 7

// CaseCounter counts stored cases and scheduled hearings.
type CaseCounter interface {
	Count(ctx context.Context) (int64, error)
	CountHearingsBetween(ctx context.Context, from, to time.Time) (int64, error)
}

// UserCounter counts accounts by role.
type UserCounter interface {
	CountUsers(ctx context.Context) (authusecase.UserCounts, error)
}

// SizeReporter reports the size of the database in bytes.
type SizeReporter interface {
	Size() (int64, error)
}

// CaseStats counts cases and their next hearings relative to today.
type CaseStats struct {
	Total    int64
	Today    int64
	Tomorrow int64
	// Upcoming counts hearings from the day after tomorrow through the next 7 days.
	Upcoming int64
}

// Stats is the administrator overview.
type Stats struct {
	Users        authusecase.UserCounts
	Cases        CaseStats
	DatabaseSize int64
	LastUpdated  time.Time
}

// StatsUsecase computes dashboard statistics.
type StatsUsecase struct {
	cases CaseCounter
	users UserCounter
	size  SizeReporter
	loc   *time.Location
	now   func() time.Time
}

// NewStatsUsecase creates a StatsUsecase. Calendar days are taken in loc, UTC when nil.
func NewStatsUsecase(cases CaseCounter, users UserCounter, size SizeReporter, loc *time.Location) *StatsUsecase {
	if loc == nil {
		loc = time.UTC
	}
	return &StatsUsecase{cases: cases, users: users, size: size, loc: loc, now: time.Now}
}

// Dashboard returns the case counts shown to every user.
func (u *StatsUsecase) Dashboard(ctx context.Context) (CaseStats, error) {
	var s CaseStats
	var err error

	if s.Total, err = u.cases.Count(ctx); err != nil {
		return CaseStats{}, fmt.Errorf("count cases: %w", err)
	}

	today := u.now().In(u.loc)
	windows := []struct {
		dst      *int64
		from, to int
	}{
		{&s.Today, 0, 0},
		{&s.Tomorrow, 1, 1},
		{&s.Upcoming, 2, upcomingDays},
	}
	for _, w := range windows {
		n, err := u.cases.CountHearingsBetween(ctx, today.AddDate(0, 0, w.from), today.AddDate(0, 0, w.to))
		if err != nil {
			return CaseStats{}, fmt.Errorf("count hearings: %w", err)
		}
		*w.dst = n
	}
	return s, nil
}

// AdminStats returns the administrator overview.
func (u *StatsUsecase) AdminStats(ctx context.Context) (*Stats, error) {
	users, err := u.users.CountUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	cases, err := u.Dashboard(ctx)
	if err != nil {
		return nil, err
	}

	stats := &Stats{Users: users, Cases: cases, LastUpdated: u.now().In(u.loc)}
	if u.size != nil {
		size, err := u.size.Size()
		if err != nil {
			return nil, fmt.Errorf("database size: %w", err)
		}
		stats.DatabaseSize = size
	}
	return stats, nil
}

package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecourts_backend/internal/feature/hearings/domain/entity"
)

// mockGenerator records which listing was requested.
type mockGenerator struct {
	called string
	days   int
}

func (m *mockGenerator) Today(context.Context) (entity.HearingList, error) {
	m.called = "today"
	return entity.HearingList{Total: 1}, nil
}

func (m *mockGenerator) Tomorrow(context.Context) (entity.HearingList, error) {
	m.called = "tomorrow"
	return entity.HearingList{Total: 2}, nil
}

func (m *mockGenerator) Upcoming(_ context.Context, days int) (entity.HearingList, error) {
	m.called = "upcoming"
	m.days = days
	return entity.HearingList{Total: 3, DaysAhead: days}, nil
}

func TestHearingsUsecase_List(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		kind       string
		days       int
		wantCalled string
		wantDays   int
	}{
		{"default is today", "", 0, "today", 0},
		{"today", "today", 0, "today", 0},
		{"tomorrow", "Tomorrow", 0, "tomorrow", 0},
		{"upcoming default days", "upcoming", 0, "upcoming", DefaultUpcomingDays},
		{"upcoming explicit days", "upcoming", 14, "upcoming", 14},
		{"upcoming clamped", "upcoming", 365, "upcoming", MaxUpcomingDays},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			gen := &mockGenerator{}
			_, err := NewHearingsUsecase(gen).List(context.Background(), tt.kind, tt.days)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCalled, gen.called)
			assert.Equal(t, tt.wantDays, gen.days)
		})
	}
}

func TestHearingsUsecase_UnknownKind(t *testing.T) {
	t.Parallel()

	_, err := NewHearingsUsecase(&mockGenerator{}).List(context.Background(), "yesterday", 0)
	assert.ErrorIs(t, err, ErrUnknownListing)
}

func TestClampDays(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultUpcomingDays, ClampDays(-3))
	assert.Equal(t, 1, ClampDays(1))
	assert.Equal(t, MaxUpcomingDays, ClampDays(31))
}

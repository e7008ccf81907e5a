package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHearingDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want *time.Time
	}{
		{"17th November 2025", ptr(time.Date(2025, 11, 17, 0, 0, 0, 0, time.UTC))},
		{"1st January 2026", ptr(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))},
		{"22nd May 2025", ptr(time.Date(2025, 5, 22, 0, 0, 0, 0, time.UTC))},
		{"Next date: 3rd March 2025 (tentative)", ptr(time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC))},
		{"5 August 2025", ptr(time.Date(2025, 8, 5, 0, 0, 0, 0, time.UTC))},
		{"To be fixed", nil},
		{"", nil},
		{"garbage", nil},
		{"17th Novembre 2025", nil},
		{"17th november 2025", nil},
		{"31st February 2025", nil},
		{"0th March 2025", nil},
		{"17/11/2025", nil},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got := ParseHearingDate(tt.in)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.True(t, tt.want.Equal(*got), "want %v, got %v", tt.want, got)
		})
	}
}

func ptr[T any](v T) *T { return &v }

package domain_test

import (
	"testing"
	"time"

	"github.com/fadee/my_expenses_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMonth(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    domain.Month
		wantErr bool
	}{
		{
			name:  "valid month",
			input: "2025-03",
			want:  domain.Month("2025-03"),
		},
		{
			name:  "valid december",
			input: "2024-12",
			want:  domain.Month("2024-12"),
		},
		{
			name:    "month out of range",
			input:   "2025-13",
			wantErr: true,
		},
		{
			name:    "missing zero padding",
			input:   "2025-3",
			wantErr: true,
		},
		{
			name:    "full date instead of month",
			input:   "2025-03-01",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "garbage",
			input:   "notamonth",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseMonth(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMonthOf(t *testing.T) {
	instant := time.Date(2025, time.July, 15, 13, 45, 0, 0, time.UTC)
	assert.Equal(t, domain.Month("2025-07"), domain.MonthOf(instant))
}

func TestMonth_Window(t *testing.T) {
	m := domain.Month("2025-02")

	assert.Equal(t, time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC), m.Start())
	// 2025 is not a leap year, February ends on the 28th.
	assert.Equal(t, time.Date(2025, time.February, 28, 23, 59, 59, 0, time.UTC), m.End())

	leap := domain.Month("2024-02")
	assert.Equal(t, time.Date(2024, time.February, 29, 23, 59, 59, 0, time.UTC), leap.End())
}

func TestMonth_NextAndPrevious(t *testing.T) {
	tests := []struct {
		name     string
		month    domain.Month
		next     domain.Month
		previous domain.Month
	}{
		{
			name:     "mid year",
			month:    domain.Month("2025-06"),
			next:     domain.Month("2025-07"),
			previous: domain.Month("2025-05"),
		},
		{
			name:     "year rollover forward",
			month:    domain.Month("2025-12"),
			next:     domain.Month("2026-01"),
			previous: domain.Month("2025-11"),
		},
		{
			name:     "year rollover backward",
			month:    domain.Month("2025-01"),
			next:     domain.Month("2025-02"),
			previous: domain.Month("2024-12"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.next, tt.month.Next())
			assert.Equal(t, tt.previous, tt.month.Previous())
		})
	}
}

func TestAutoSnapshotNote(t *testing.T) {
	assert.Equal(t, "Auto-saved for 2025-04", domain.AutoSnapshotNote(domain.Month("2025-04")))
}

package model_test

import (
	"testing"
	"time"

	"inn/internal/domains/booking/model"
	"inn/shared/constant"
)

func date(day int) time.Time {
	return time.Date(2026, time.September, day, 0, 0, 0, 0, time.UTC)
}

func TestLive(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		expected bool
	}{
		{
			name:     "pending booking is live",
			status:   constant.BookingStatusPending,
			expected: true,
		},
		{
			name:     "confirmed booking is live",
			status:   constant.BookingStatusConfirmed,
			expected: true,
		},
		{
			name:     "cancelled booking is not live",
			status:   constant.BookingStatusCancelled,
			expected: false,
		},
		{
			name:     "unknown status is not live",
			status:   "something",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := model.Booking{Status: tt.status}
			if result := booking.Live(); result != tt.expected {
				t.Errorf("Live() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestOverlaps(t *testing.T) {
	booking := model.Booking{
		StartDate: date(10),
		EndDate:   date(15),
	}

	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected bool
	}{
		{
			name:     "identical range overlaps",
			start:    date(10),
			end:      date(15),
			expected: true,
		},
		{
			name:     "nested range overlaps",
			start:    date(11),
			end:      date(13),
			expected: true,
		},
		{
			name:     "containing range overlaps",
			start:    date(8),
			end:      date(20),
			expected: true,
		},
		{
			name:     "partial overlap at start",
			start:    date(8),
			end:      date(11),
			expected: true,
		},
		{
			name:     "partial overlap at end",
			start:    date(14),
			end:      date(18),
			expected: true,
		},
		{
			name:     "single shared night overlaps",
			start:    date(14),
			end:      date(15),
			expected: true,
		},
		{
			name:     "back to back checkout day does not overlap",
			start:    date(15),
			end:      date(18),
			expected: false,
		},
		{
			name:     "back to back checkin day does not overlap",
			start:    date(5),
			end:      date(10),
			expected: false,
		},
		{
			name:     "fully before does not overlap",
			start:    date(1),
			end:      date(5),
			expected: false,
		},
		{
			name:     "fully after does not overlap",
			start:    date(20),
			end:      date(25),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := booking.Overlaps(tt.start, tt.end); result != tt.expected {
				t.Errorf("Overlaps(%v, %v) = %v, expected %v", tt.start, tt.end, result, tt.expected)
			}
		})
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name     string
		from     string
		to       string
		expected bool
	}{
		{
			name:     "pending to confirmed",
			from:     constant.BookingStatusPending,
			to:       constant.BookingStatusConfirmed,
			expected: true,
		},
		{
			name:     "pending to cancelled",
			from:     constant.BookingStatusPending,
			to:       constant.BookingStatusCancelled,
			expected: true,
		},
		{
			name:     "pending to pending",
			from:     constant.BookingStatusPending,
			to:       constant.BookingStatusPending,
			expected: false,
		},
		{
			name:     "confirmed to cancelled",
			from:     constant.BookingStatusConfirmed,
			to:       constant.BookingStatusCancelled,
			expected: true,
		},
		{
			name:     "confirmed to confirmed",
			from:     constant.BookingStatusConfirmed,
			to:       constant.BookingStatusConfirmed,
			expected: false,
		},
		{
			name:     "confirmed to pending",
			from:     constant.BookingStatusConfirmed,
			to:       constant.BookingStatusPending,
			expected: false,
		},
		{
			name:     "cancelled to pending",
			from:     constant.BookingStatusCancelled,
			to:       constant.BookingStatusPending,
			expected: false,
		},
		{
			name:     "cancelled to confirmed",
			from:     constant.BookingStatusCancelled,
			to:       constant.BookingStatusConfirmed,
			expected: false,
		},
		{
			name:     "cancelled to cancelled",
			from:     constant.BookingStatusCancelled,
			to:       constant.BookingStatusCancelled,
			expected: false,
		},
		{
			name:     "unknown status cannot transition",
			from:     "something",
			to:       constant.BookingStatusConfirmed,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := model.CanTransition(tt.from, tt.to); result != tt.expected {
				t.Errorf("CanTransition(%q, %q) = %v, expected %v", tt.from, tt.to, result, tt.expected)
			}
		})
	}
}

package dto_test

import (
	"testing"
	"time"

	"inn/internal/domains/booking/model"
	"inn/internal/domains/booking/model/dto"
	"inn/shared/constant"
	"inn/shared/timezone"
)

func TestDates(t *testing.T) {
	tests := []struct {
		name      string
		startDate string
		endDate   string
		wantErr   bool
	}{
		{
			name:      "valid range",
			startDate: "2026-09-01",
			endDate:   "2026-09-04",
			wantErr:   false,
		},
		{
			name:      "invalid start date",
			startDate: "09/01/2026",
			endDate:   "2026-09-04",
			wantErr:   true,
		},
		{
			name:      "invalid end date",
			startDate: "2026-09-01",
			endDate:   "not-a-date",
			wantErr:   true,
		},
		{
			name:      "empty start date",
			startDate: "",
			endDate:   "2026-09-04",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.CreateBookingRequest{
				RoomID:    "room-1",
				StartDate: tt.startDate,
				EndDate:   tt.endDate,
			}

			start, end, err := req.Dates()
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}

			if start.Format(constant.DateOnlyFormat) != tt.startDate {
				t.Errorf("start = %s, expected %s", start.Format(constant.DateOnlyFormat), tt.startDate)
			}
			if end.Format(constant.DateOnlyFormat) != tt.endDate {
				t.Errorf("end = %s, expected %s", end.Format(constant.DateOnlyFormat), tt.endDate)
			}
			if start.Location() != timezone.GetLocation() {
				t.Errorf("start location = %v, expected %v", start.Location(), timezone.GetLocation())
			}
			if start.Hour() != 0 || start.Minute() != 0 || start.Second() != 0 {
				t.Errorf("expected midnight, got %v", start)
			}
		})
	}
}

func TestToModel(t *testing.T) {
	start := time.Date(2026, time.September, 1, 0, 0, 0, 0, timezone.GetLocation())

	tests := []struct {
		name          string
		end           time.Time
		nightlyRate   int64
		expectedPrice int64
	}{
		{
			name:          "three nights",
			end:           start.AddDate(0, 0, 3),
			nightlyRate:   500_000,
			expectedPrice: 1_500_000,
		},
		{
			name:          "single night",
			end:           start.AddDate(0, 0, 1),
			nightlyRate:   750_000,
			expectedPrice: 750_000,
		},
		{
			name:          "week long stay",
			end:           start.AddDate(0, 0, 7),
			nightlyRate:   300_000,
			expectedPrice: 2_100_000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.CreateBookingRequest{RoomID: "room-1"}
			booking := req.ToModel("user-1", start, tt.end, tt.nightlyRate)

			if booking.ID == "" {
				t.Error("expected generated ID, got empty string")
			}
			if booking.RoomID != "room-1" {
				t.Errorf("RoomID = %s, expected room-1", booking.RoomID)
			}
			if booking.UserID != "user-1" {
				t.Errorf("UserID = %s, expected user-1", booking.UserID)
			}
			if booking.Price != tt.expectedPrice {
				t.Errorf("Price = %d, expected %d", booking.Price, tt.expectedPrice)
			}
			if booking.Status != constant.BookingStatusPending {
				t.Errorf("Status = %s, expected %s", booking.Status, constant.BookingStatusPending)
			}
			if !booking.StartDate.Equal(start) {
				t.Errorf("StartDate = %v, expected %v", booking.StartDate, start)
			}
			if !booking.EndDate.Equal(tt.end) {
				t.Errorf("EndDate = %v, expected %v", booking.EndDate, tt.end)
			}
			if booking.CreatedBy != "user-1" || booking.ModifiedBy != "user-1" {
				t.Errorf("metadata actor = %s/%s, expected user-1", booking.CreatedBy, booking.ModifiedBy)
			}
		})
	}
}

func TestToModelPriceAcrossDaylightSaving(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("failed to load location: %v", err)
	}

	tests := []struct {
		name          string
		start         time.Time
		end           time.Time
		expectedPrice int64
	}{
		{
			name:          "one night across spring forward",
			start:         time.Date(2026, time.March, 8, 0, 0, 0, 0, loc),
			end:           time.Date(2026, time.March, 9, 0, 0, 0, 0, loc),
			expectedPrice: 100,
		},
		{
			name:          "one night across fall back",
			start:         time.Date(2026, time.November, 1, 0, 0, 0, 0, loc),
			end:           time.Date(2026, time.November, 2, 0, 0, 0, 0, loc),
			expectedPrice: 100,
		},
		{
			name:          "three nights spanning the shift",
			start:         time.Date(2026, time.March, 7, 0, 0, 0, 0, loc),
			end:           time.Date(2026, time.March, 10, 0, 0, 0, 0, loc),
			expectedPrice: 300,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.CreateBookingRequest{RoomID: "room-1"}
			booking := req.ToModel("user-1", tt.start, tt.end, 100)

			if booking.Price != tt.expectedPrice {
				t.Errorf("Price = %d, expected %d", booking.Price, tt.expectedPrice)
			}
		})
	}
}

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercase passes through",
			input:    "confirmed",
			expected: "confirmed",
		},
		{
			name:     "mixed case is lowered",
			input:    "Confirmed",
			expected: "confirmed",
		},
		{
			name:     "uppercase is lowered",
			input:    "CANCELLED",
			expected: "cancelled",
		},
		{
			name:     "surrounding spaces are trimmed",
			input:    "  pending ",
			expected: "pending",
		},
		{
			name:     "empty string stays empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := dto.NormalizeStatus(tt.input); result != tt.expected {
				t.Errorf("NormalizeStatus(%q) = %q, expected %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestBookingResponseFromModel(t *testing.T) {
	booking := sampleBooking()

	var res dto.BookingResponse
	res.FromModel(booking)

	if res.ID != booking.ID {
		t.Errorf("ID = %s, expected %s", res.ID, booking.ID)
	}
	if res.StartDate != "2026-09-01" {
		t.Errorf("StartDate = %s, expected 2026-09-01", res.StartDate)
	}
	if res.EndDate != "2026-09-04" {
		t.Errorf("EndDate = %s, expected 2026-09-04", res.EndDate)
	}
	if res.Price != booking.Price {
		t.Errorf("Price = %d, expected %d", res.Price, booking.Price)
	}
	if res.Status != booking.Status {
		t.Errorf("Status = %s, expected %s", res.Status, booking.Status)
	}
}

func TestGetBookingsResponseFromModels(t *testing.T) {
	bookings := []model.Booking{sampleBooking(), sampleBooking()}

	var res dto.GetBookingsResponse
	res.FromModels(bookings, 11, 5)

	if len(res.Bookings) != 2 {
		t.Errorf("len(Bookings) = %d, expected 2", len(res.Bookings))
	}
	if res.TotalData != 11 {
		t.Errorf("TotalData = %d, expected 11", res.TotalData)
	}
	if res.TotalPage != 3 {
		t.Errorf("TotalPage = %d, expected 3", res.TotalPage)
	}
}

func sampleBooking() model.Booking {
	var req dto.CreateBookingRequest
	req.RoomID = "room-1"

	start := time.Date(2026, time.September, 1, 0, 0, 0, 0, timezone.GetLocation())
	return req.ToModel("user-1", start, start.AddDate(0, 0, 3), 500_000)
}

package dto

import (
	"strings"
	"time"

	"inn/internal/domains/booking/model"
	"inn/shared"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	gModel "inn/shared/model"
	"inn/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	RoomID    string `json:"room_id"    validate:"required"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date"   validate:"required,datetime=2006-01-02"`
}

// Dates parses the requested stay into a half-open range. Days are the
// booking granularity; the times are midnight in the application timezone.
func (c *CreateBookingRequest) Dates() (start, end time.Time, err error) {
	start, err = timezone.Parse(constant.DateOnlyFormat, c.StartDate)
	if err != nil {
		return start, end, err
	}

	end, err = timezone.Parse(constant.DateOnlyFormat, c.EndDate)
	if err != nil {
		return start, end, err
	}

	return start, end, nil
}

func (c *CreateBookingRequest) ToModel(user string, start, end time.Time, nightlyRate int64) model.Booking {
	return model.Booking{
		ID:        uuid.NewString(),
		RoomID:    c.RoomID,
		UserID:    user,
		StartDate: start,
		EndDate:   end,
		Price:     nightlyRate * nights(start, end),
		Status:    constant.BookingStatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// nights counts calendar nights between two dates. Wall-clock arithmetic
// would be off by an hour around daylight-saving shifts, so both ends are
// rebuilt as plain dates first.
func nights(start, end time.Time) int64 {
	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	endDay := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)

	return int64(endDay.Sub(startDay) / (24 * time.Hour))
}

// NormalizeStatus lowercases a status supplied by a client, so filters
// accept Confirmed and CONFIRMED the same as confirmed.
func NormalizeStatus(status string) string {
	return strings.ToLower(strings.TrimSpace(status))
}

type BookingResponse struct {
	ID        string `json:"id"`
	RoomID    string `json:"room_id"`
	UserID    string `json:"user_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Price     int64  `json:"price"`
	Status    string `json:"status"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.UserID = model.UserID
	r.StartDate = model.StartDate.Format(constant.DateOnlyFormat)
	r.EndDate = model.EndDate.Format(constant.DateOnlyFormat)
	r.Price = model.Price
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type AvailabilityResponse struct {
	RoomID    string `json:"room_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Available bool   `json:"available"`
}
